package config

import (
	"github.com/spf13/viper"
)

// Config holds the process configuration. Backing document paths are
// static configuration, not runtime-discovered.
type Config struct {
	AppPort       string
	StorageDriver string // file, sqlite or postgres
	ProductsFile  string
	CartsFile     string
	UsersFile     string
	DatabaseDSN   string
	RabbitMQURL   string // empty disables the event bridge
	JWTSecret     string
}

// Load reads configuration from environment variables with sane defaults.
func Load() Config {
	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("STORAGE_DRIVER", "file")
	viper.SetDefault("PRODUCTS_FILE", "./dbjson/productsDb.json")
	viper.SetDefault("CARTS_FILE", "./dbjson/cartsDb.json")
	viper.SetDefault("USERS_FILE", "./dbjson/usersDb.json")
	viper.SetDefault("DATABASE_DSN", "")
	viper.SetDefault("RABBITMQ_URL", "")
	viper.SetDefault("JWT_SECRET", "change_me_in_production")
	viper.AutomaticEnv() // Load environment variables

	return Config{
		AppPort:       viper.GetString("APP_PORT"),
		StorageDriver: viper.GetString("STORAGE_DRIVER"),
		ProductsFile:  viper.GetString("PRODUCTS_FILE"),
		CartsFile:     viper.GetString("CARTS_FILE"),
		UsersFile:     viper.GetString("USERS_FILE"),
		DatabaseDSN:   viper.GetString("DATABASE_DSN"),
		RabbitMQURL:   viper.GetString("RABBITMQ_URL"),
		JWTSecret:     viper.GetString("JWT_SECRET"),
	}
}
