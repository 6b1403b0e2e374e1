package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

type ServerConfig struct {
	Address string `mapstructure:"address"`
	Port    int    `mapstructure:"port"`
	Mode    string `mapstructure:"mode"`
}

type AuthConfig struct {
	Secret      string `mapstructure:"secret"`
	Issuer      string `mapstructure:"issuer"`
	ExpireHours int    `mapstructure:"expire_hours"`
	AnonymousID string `mapstructure:"anonymous_id"`
}

type StorageConfig struct {
	Dir            string `mapstructure:"dir"`
	ExpensesFile   string `mapstructure:"expenses_file"`
	CategoriesFile string `mapstructure:"categories_file"`
	UsersFile      string `mapstructure:"users_file"`
}

type CurrencyConfig struct {
	APIURL       string `mapstructure:"api_url"`
	AccessKey    string `mapstructure:"access_key"`
	RefreshHours int    `mapstructure:"refresh_hours"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Storage  StorageConfig  `mapstructure:"storage"`
	Currency CurrencyConfig `mapstructure:"currency"`
	CORS     CORSConfig     `mapstructure:"cors"`
}

var (
	appConfig *Config
	once      sync.Once
)

// Load loads configuration from given file path (e.g. "config.yaml").
// If path is empty, it defaults to "config.yaml" in current working directory.
func Load(path string) (*Config, error) {
	var err error
	once.Do(func() {
		v := viper.New()

		if path == "" {
			v.SetConfigName("config")
			v.SetConfigType("yaml")
			v.AddConfigPath(".")
		} else {
			v.SetConfigFile(path)
		}

		setDefaults(v)

		// environment overrides, e.g. PT_SERVER_PORT=9000
		v.SetEnvPrefix("PT")
		v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		v.AutomaticEnv()

		if err = v.ReadInConfig(); err != nil {
			err = fmt.Errorf("read config: %w", err)
			return
		}

		var c Config
		if err = v.Unmarshal(&c); err != nil {
			err = fmt.Errorf("unmarshal config: %w", err)
			return
		}

		appConfig = &c
	})

	if err != nil {
		return nil, err
	}
	return appConfig, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.address", "0.0.0.0")
	v.SetDefault("server.port", 8000)
	v.SetDefault("auth.issuer", "pietracker")
	v.SetDefault("auth.expire_hours", 24)
	v.SetDefault("auth.anonymous_id", "public")
	v.SetDefault("storage.dir", "./data")
	v.SetDefault("storage.expenses_file", "expenses.json")
	v.SetDefault("storage.categories_file", "categories.json")
	v.SetDefault("storage.users_file", "users.json")
	v.SetDefault("currency.api_url", "https://api.exchangeratesapi.io/v1")
	v.SetDefault("currency.refresh_hours", 8)
}

// Get returns the loaded global configuration.
// Call Load() once at application startup.
func Get() *Config {
	return appConfig
}
