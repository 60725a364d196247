package bootstrap

import (
	"slotbook/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		// Narrow views so components depend only on the config they use.
		func(cfg config.Config) config.ServerConfig { return cfg.Server },
		func(cfg config.Config) config.AdminConfig { return cfg.Admin },
		func(cfg config.Config) config.StripeConfig { return cfg.Stripe },
		func(cfg config.Config) config.MailConfig { return cfg.Mail },
		func(cfg config.Config) config.CookieConfig { return cfg.Cookie },
	),
)
