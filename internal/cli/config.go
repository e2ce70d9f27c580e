package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/dmitrymomot/slugify/pkg/slug"
)

const (
	configName = ".slugify"
	envPrefix  = "SLUGIFY"
)

// Config is the merged result of flags, SLUGIFY_* environment variables and
// the optional config file, in that order of precedence.
type Config struct {
	Locale      string `mapstructure:"locale" validate:"slug_locale"`
	Mode        string `mapstructure:"mode" validate:"oneof=save display"`
	Fallback    string `mapstructure:"fallback"`
	LogLevel    string `mapstructure:"log-level" validate:"oneof=debug info warn error"`
	LogFormat   string `mapstructure:"log-format" validate:"oneof=json text"`
	SentryDSN   string `mapstructure:"sentry-dsn" validate:"omitempty,url"`
	Environment string `mapstructure:"environment"`
	Addr        string `mapstructure:"addr" validate:"omitempty,hostname_port"`
	Workers     int    `mapstructure:"workers" validate:"min=1,max=256"`
	Files       bool   `mapstructure:"files"`
	Plain       bool   `mapstructure:"plain"`
	DryRun      bool   `mapstructure:"dry-run"`
}

// SlugOptions converts the config into options for slug.Make and
// slug.MakeFilename.
func (c Config) SlugOptions() []slug.Option {
	return []slug.Option{
		slug.WithMode(slug.ParseMode(c.Mode)),
		slug.WithLocale(slug.ParseLocale(c.Locale)),
		slug.WithFallback(c.Fallback),
	}
}

var validate *validator.Validate

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("slug_locale", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return s == "" || slug.ParseLocale(s) != slug.LocaleNone
	})
}

// loadConfig reads .env, binds flags and environment to v, reads the config
// file and validates the result.
func loadConfig(v *viper.Viper, flags *pflag.FlagSet, cfgFile string) (Config, error) {
	// A missing .env file is fine.
	_ = godotenv.Load()

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("sentry-dsn", envPrefix+"_SENTRY_DSN", "SENTRY_DSN"); err != nil {
		return Config{}, err
	}
	v.SetDefault("environment", "production")
	v.SetDefault("workers", defaultWorkers)
	if err := v.BindPFlags(flags); err != nil {
		return Config{}, err
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.SetConfigName(configName)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := validate.Struct(cfg); err != nil {
		return Config{}, errors.Join(ErrInvalidConfig, err)
	}
	return cfg, nil
}
