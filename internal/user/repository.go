package user

import (
	"strings"
	"sync"
	"time"
)

// Repository holds the in-memory account registry. There is no backing
// user table; a demo account is seeded at startup.
type Repository interface {
	GetByEmail(email string) (*User, error)
	GetByID(id uint) (*User, error)
	Create(name, email, passwordHash string) (*User, error)
}

type repository struct {
	mu     sync.Mutex
	nextID uint
	users  map[string]*User // keyed by lowercased email
}

func NewRepository() Repository {
	r := &repository{
		nextID: 1,
		users:  make(map[string]*User),
	}

	// Demo account for the first-run experience.
	if hash, err := HashPassword("password123"); err == nil {
		_, _ = r.Create("Demo User", "demo@pharmacart.dev", hash)
	}

	return r
}

func (r *repository) GetByEmail(email string) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[strings.ToLower(email)]
	if !ok {
		return nil, ErrUserNotFound
	}
	copied := *u
	return &copied, nil
}

func (r *repository) GetByID(id uint) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.ID == id {
			copied := *u
			return &copied, nil
		}
	}
	return nil, ErrUserNotFound
}

func (r *repository) Create(name, email, passwordHash string) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := strings.ToLower(email)
	if _, exists := r.users[key]; exists {
		return nil, ErrEmailExists
	}

	u := &User{
		ID:           r.nextID,
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}
	r.nextID++
	r.users[key] = u

	copied := *u
	return &copied, nil
}
