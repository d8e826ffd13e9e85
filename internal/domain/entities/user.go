package entities

import (
	"fmt"
	"strings"

	"user-management-service/internal/domain"
)

// User is the only persisted entity. A zero ID means the record has not been
// stored yet; storage assigns it on insert and it never changes afterwards.
type User struct {
	ID    uint
	Name  string
	Email string
}

func NewUser(name, email string) *User {
	return &User{
		Name:  name,
		Email: email,
	}
}

func (u *User) validate() error {
	if strings.TrimSpace(u.Name) == "" {
		return fmt.Errorf("%w: name must not be empty", domain.ErrInvalidUser)
	}
	if strings.TrimSpace(u.Email) == "" {
		return fmt.Errorf("%w: email must not be empty", domain.ErrInvalidUser)
	}
	return nil
}

// IsPersisted reports whether storage has assigned an ID.
func (u *User) IsPersisted() bool {
	return u.ID != 0
}

// UpdateProfile replaces name and email. The ID is left untouched.
func (u *User) UpdateProfile(name, email string) error {
	u.Name = name
	u.Email = email
	return u.validate()
}
