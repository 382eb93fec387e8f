// Package config loads application configuration from environment variables.
//
// It wraps github.com/joho/godotenv for .env files and
// github.com/caarlos0/env/v11 for struct parsing:
//
//	type Config struct {
//		AppEnv   string `env:"APP_ENV" envDefault:"development"`
//		Capacity int    `env:"FORM_STORE_CAPACITY" envDefault:"10000"`
//	}
//
//	if err := config.LoadEnv("./deploy/.env"); err != nil {
//		log.Fatal(err)
//	}
//	var cfg Config
//	config.MustLoad(&cfg)
//
// Errors are sentinels usable with errors.Is: ErrParsingConfig,
// ErrLoadingEnvFile and ErrNilPointer.
package config
