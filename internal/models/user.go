package models

// User represents a user of the store. Users round-trip through the users
// document, so the password hash carries a json tag; handlers blank it
// before writing a response.
type User struct {
	ID       string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Username string `json:"username" gorm:"uniqueIndex;type:varchar(100)" validate:"required,min=3,max=100"`
	Email    string `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Password string `json:"password,omitempty" gorm:"type:varchar(255)" validate:"required,min=6"`
}
