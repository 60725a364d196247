package commands

import (
	"context"
	"crypto/subtle"

	"slotbook/internal/pkg/config"
	"slotbook/internal/pkg/errs"
	"slotbook/internal/pkg/jwt"
	"slotbook/internal/pkg/password"
)

var ErrInvalidCredentials = errs.New("invalid credentials")

type AuthCommands interface {
	// Login checks the admin credentials and returns a signed session token.
	Login(ctx context.Context, email string, plainPassword string) (string, error)
}

type authCommandsImpl struct {
	admin      config.AdminConfig
	jwtService *jwt.Service
}

func NewAuthCommands(admin config.AdminConfig, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{admin: admin, jwtService: jwtService}
}

func (c *authCommandsImpl) Login(_ context.Context, email string, plainPassword string) (string, error) {
	// Constant-time email compare so the two checks leak the same timing
	// whether the email or the password is wrong.
	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(c.admin.Email)) == 1
	passwordErr := password.Compare(c.admin.PasswordHash, plainPassword)
	if !emailOK || passwordErr != nil {
		return "", ErrInvalidCredentials
	}

	token, err := c.jwtService.GenerateSessionToken(email)
	if err != nil {
		return "", errs.Wrap(err, "failed to generate session token")
	}
	return token, nil
}
