package repositories

import (
	"fmt"
	"sync"

	"tienda/internal/models"

	"github.com/google/uuid"
)

// FileUserRepository is the JSON-document implementation of UserRepository.
// Users keep UUID string ids; they are not part of the sequential-id
// contract that products and carts follow.
type FileUserRepository struct {
	file *jsonFile[models.User]
	mu   sync.Mutex
}

// NewFileUserRepository creates a repository backed by the JSON document at
// path.
func NewFileUserRepository(path string) *FileUserRepository {
	return &FileUserRepository{
		file: newJSONFile[models.User](path),
	}
}

// Create appends a new user, assigning a UUID if none is set.
func (r *FileUserRepository) Create(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.file.load()
	if err != nil {
		return err
	}
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	users = append(users, *user)
	return r.file.save(users)
}

// GetByUsername retrieves a user by their username.
func (r *FileUserRepository) GetByUsername(username string) (*models.User, error) {
	return r.find("username", username, func(u models.User) bool {
		return u.Username == username
	})
}

// GetByEmail retrieves a user by their email.
func (r *FileUserRepository) GetByEmail(email string) (*models.User, error) {
	return r.find("email", email, func(u models.User) bool {
		return u.Email == email
	})
}

// GetByID retrieves a user by their ID.
func (r *FileUserRepository) GetByID(id string) (*models.User, error) {
	return r.find("ID", id, func(u models.User) bool {
		return u.ID == id
	})
}

func (r *FileUserRepository) find(field, value string, match func(models.User) bool) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.file.load()
	if err != nil {
		return nil, err
	}
	for i := range users {
		if match(users[i]) {
			return &users[i], nil
		}
	}
	return nil, fmt.Errorf("user with %s %s not found", field, value)
}
