// Package staff guards the privileged catalog-edit operations. The service
// runs with a single configured coordinator account; there is no user store.
package staff

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/dieti/studyplan/core"
)

var (
	ErrNotConfigured      = errors.New("no coordinator account configured")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type Account struct {
	Name  string `json:"name"`
	Email string `json:"email"`

	passwordHash string
}

// Coordinator returns the configured coordinator account.
func Coordinator() (Account, error) {
	conf := core.Conf.Coordinator
	if conf.Email == "" || conf.PasswordHash == "" {
		return Account{}, ErrNotConfigured
	}
	return Account{
		Name:         conf.Name,
		Email:        conf.Email,
		passwordHash: conf.PasswordHash,
	}, nil
}

func (a Account) CheckPassword(pwd string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(a.passwordHash), []byte(pwd)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// HashPassword produces the bcrypt hash to configure as the coordinator
// password; see the admin CLI.
func HashPassword(pwd string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(pwd), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
