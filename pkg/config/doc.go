// Package config loads typed configuration from environment variables.
//
// Struct fields are bound with caarlos0/env tags. A .env file in the working
// directory, when present, is loaded once before the first parse. Each
// configuration type is parsed once and cached, so every caller sees the same
// values.
//
//	type Config struct {
//	    Env  string `env:"APP_ENV" envDefault:"development"`
//	    Name string `env:"APP_NAME" envDefault:"inputguard"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
package config
