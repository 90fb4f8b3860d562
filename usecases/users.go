package usecases

import (
	"energy-server/auth"
	"energy-server/entities"
	"energy-server/repositories"
	"errors"
	"log"
	"time"
)

// ErrInvalidCredentials covers both unknown email and wrong password so
// login failures do not reveal which addresses are registered.
var ErrInvalidCredentials = errors.New("invalid email or password")

// ValidationError marks an input-presence failure. Handlers keep these
// 400 while store and hashing errors stay a generic 500.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

type UserUseCase struct {
	Users repositories.UserRepository
}

func NewUserUseCase(userRepo repositories.UserRepository) *UserUseCase {
	return &UserUseCase{Users: userRepo}
}

// Register hashes the password and creates the account. A duplicate
// email surfaces from the store's unique constraint, not a pre-check.
func (uc *UserUseCase) Register(email, firstName, lastName, password string) (*entities.User, error) {
	if email == "" {
		return nil, &ValidationError{msg: "email is required"}
	}
	if firstName == "" {
		return nil, &ValidationError{msg: "first name is required"}
	}
	if lastName == "" {
		return nil, &ValidationError{msg: "last name is required"}
	}
	if password == "" {
		return nil, &ValidationError{msg: "password is required"}
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &entities.User{
		Email:        email,
		FirstName:    firstName,
		LastName:     lastName,
		PasswordHash: hash,
	}
	if err := uc.Users.Create(user); err != nil {
		return nil, err
	}

	return user, nil
}

// Login verifies credentials and records the login time. The last-login
// update is best-effort: a failure there is logged, never returned.
func (uc *UserUseCase) Login(email, password string) (*entities.User, error) {
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := uc.Users.GetByEmail(email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.VerifyPassword(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	now := time.Now()
	if err := uc.Users.UpdateLastLogin(user.ID, now); err != nil {
		log.Printf("warning: could not update last login for user %s: %v", user.ID, err)
	} else {
		user.LastLogin = &now
	}

	return user, nil
}

// Profile returns the stored user record. The password hash never
// serializes (json:"-" on the entity), so callers can shape it directly.
func (uc *UserUseCase) Profile(userID string) (*entities.User, error) {
	if userID == "" {
		return nil, errors.New("user id is required")
	}
	return uc.Users.GetByID(userID)
}
