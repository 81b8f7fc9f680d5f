package auth

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"lppm-backend/internal/domain/fault"
	masterDomain "lppm-backend/internal/domain/master"
	"lppm-backend/pkg/token"
)

type Usecase struct {
	users    masterDomain.UserRepository
	secret   []byte
	tokenTTL time.Duration
}

func NewUsecase(users masterDomain.UserRepository, secret []byte, ttl time.Duration) *Usecase {
	return &Usecase{users: users, secret: secret, tokenTTL: ttl}
}

type LoginInput struct {
	Username string
	Password string
}

type LoginOutput struct {
	Token string             `json:"token"`
	User  *masterDomain.User `json:"user"`
}

// Login checks credentials and issues an access token. Unknown username and
// wrong password produce the same message, so callers cannot probe accounts.
func (u *Usecase) Login(ctx context.Context, in LoginInput) (*LoginOutput, error) {
	if in.Username == "" || in.Password == "" {
		return nil, fault.Validation("Username dan password harus diisi")
	}
	user, err := u.users.GetByUsername(ctx, in.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fault.Unauthorized("Username atau password salah")
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, fault.Unauthorized("Username atau password salah")
	}
	if user.Status != "AKTIF" {
		return nil, fault.Forbidden("Akun tidak aktif")
	}
	tok, err := token.Generate(u.secret, user.ID, user.Role, u.tokenTTL)
	if err != nil {
		return nil, err
	}
	return &LoginOutput{Token: tok, User: user}, nil
}

// HashPassword is used by seeding and user creation flows.
func HashPassword(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
