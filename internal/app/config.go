package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/samber/oops"
	"github.com/spf13/viper"

	"lilrsa/internal/logging"
	"lilrsa/internal/primes"
	"lilrsa/internal/store"
)

const (
	// EnvPrefix prefixes environment overrides, e.g. LILRSA_DEFAULT_TIER.
	EnvPrefix = "LILRSA"

	configName = "config"
	configType = "yaml"
	homeDir    = ".lilrsa"
)

// Config holds runtime options for building the app.
type Config struct {
	// Home is the key store directory, e.g. $HOME/.lilrsa.
	Home string `mapstructure:"home" validate:"required"`

	// DefaultTier is used by keygen and demo when --tier is not given.
	DefaultTier int `mapstructure:"default_tier" validate:"gte=0"`

	// LogLevel is a logrus level name.
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=trace debug info warn error"`

	// ScryptN is the scrypt cost used when sealing key records.
	ScryptN int `mapstructure:"scrypt_n" validate:"required,pow2"`
}

// SetDefaults registers the default value of every Config key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("home", defaultHome())
	v.SetDefault("default_tier", primes.DefaultTier)
	v.SetDefault("log_level", logging.DefaultLevel)
	v.SetDefault("scrypt_n", store.DefaultScryptN)
}

// LoadConfig reads Config from v. When cfgFile is empty, config.yaml in the
// configured home directory is used if present.
func LoadConfig(v *viper.Viper, cfgFile string) (Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(v.GetString("home"))
		v.SetConfigName(configName)
		v.SetConfigType(configType)
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return Config{}, oops.Wrapf(err, "read config")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, oops.Wrapf(err, "decode config")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that all fields in Config are valid.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.RegisterValidation("pow2", isPowerOfTwo); err != nil {
		return err
	}
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("validation failed for Config: %w", err)
	}
	return nil
}

// isPowerOfTwo accepts integers greater than one with a single bit set, as
// scrypt requires for N.
func isPowerOfTwo(fl validator.FieldLevel) bool {
	n := fl.Field().Int()
	return n > 1 && n&(n-1) == 0
}

func defaultHome() string {
	dir, err := os.UserHomeDir()
	if err != nil {
		return homeDir
	}
	return filepath.Join(dir, homeDir)
}
