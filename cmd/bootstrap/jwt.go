package bootstrap

import (
	"time"

	"slotbook/internal/pkg/config"
	"slotbook/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

func NewJWTService(cfg config.Config) *jwt.Service {
	sessionDuration, err := time.ParseDuration(cfg.JWT.SessionDuration)
	if err != nil {
		panic("invalid SESSION_DURATION: " + err.Error())
	}

	return jwt.NewService(cfg.JWT.Secret, sessionDuration)
}
