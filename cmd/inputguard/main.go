package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/dreamplanner/inputguard/internal/api"
	"github.com/dreamplanner/inputguard/pkg/binder"
	"github.com/dreamplanner/inputguard/pkg/clientip"
	"github.com/dreamplanner/inputguard/pkg/config"
	"github.com/dreamplanner/inputguard/pkg/environment"
	"github.com/dreamplanner/inputguard/pkg/httpserver"
	"github.com/dreamplanner/inputguard/pkg/i18n"
	"github.com/dreamplanner/inputguard/pkg/logger"
	"github.com/dreamplanner/inputguard/pkg/ratelimiter"
	"github.com/dreamplanner/inputguard/pkg/requestid"
)

type appConfig struct {
	Env             string `env:"APP_ENV" envDefault:"development"`
	Name            string `env:"APP_NAME" envDefault:"inputguard"`
	LogLevel        string `env:"LOG_LEVEL"`
	DefaultLanguage string `env:"DEFAULT_LANGUAGE" envDefault:"en"`
	MaxBodySize     int64  `env:"MAX_BODY_SIZE" envDefault:"1048576"`

	// Headers set by a trusted reverse proxy, e.g. "X-Forwarded-For".
	TrustedProxyHeaders []string `env:"TRUSTED_PROXY_HEADERS" envSeparator:","`

	HTTP      httpserver.Config
	RateLimit ratelimiter.Config
}

func main() {
	var cfg appConfig
	config.MustLoad(&cfg)

	env := environment.Parse(cfg.Env)
	log := logger.New(
		logger.WithEnvironment(env, cfg.Name),
		logger.WithLevelName(cfg.LogLevel),
		logger.WithContextExtractors(requestid.LoggerExtractor(), clientip.LoggerExtractor()),
	)
	logger.SetAsDefault(log)

	if err := run(context.Background(), cfg, env, log); err != nil {
		log.Error("inputguard stopped", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg appConfig, env environment.Environment, log *slog.Logger) error {
	translator, err := i18n.NewTranslator(ctx, i18n.Embedded(),
		i18n.WithDefaultLanguage(cfg.DefaultLanguage),
		i18n.WithLogger(log.With(logger.Component("i18n"))),
		i18n.WithMissingTranslationsLogging(env != environment.Production),
	)
	if err != nil {
		return err
	}

	maxBody := cfg.MaxBodySize
	if maxBody <= 0 {
		maxBody = binder.DefaultMaxJSONSize
	}

	opts := []api.Option{
		api.WithLogger(log),
		api.WithEnvironment(env),
		api.WithMaxBodySize(maxBody),
		api.WithTrustedProxyHeaders(cfg.TrustedProxyHeaders...),
	}

	if cfg.RateLimit.Enabled {
		bucket, err := ratelimiter.NewBucket(cfg.RateLimit)
		if err != nil {
			return err
		}
		defer bucket.Close()
		opts = append(opts, api.WithRateLimiter(bucket))
	}

	handler := api.New(translator, opts...)

	srv := httpserver.NewFromConfig(cfg.HTTP,
		httpserver.WithLogger(log.With(logger.Component("httpserver"))),
	)
	return srv.Run(ctx, handler.Routes())
}
