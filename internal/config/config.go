package config

import (
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Configuration for the journal service.
type Configuration struct {
	Scheme          string             `json:"scheme" mapstructure:"scheme"`
	Host            string             `json:"host" mapstructure:"host"`
	ListenPort      int                `json:"listen_port" mapstructure:"listen_port"`
	ShutdownTimeout time.Duration      `json:"shutdown_timeout" mapstructure:"shutdown_timeout"`
	ReadTimeout     time.Duration      `json:"read_timeout" mapstructure:"read_timeout"`
	WriteTimeout    time.Duration      `json:"write_timeout" mapstructure:"write_timeout"`
	LogLevel        string             `json:"log_level" mapstructure:"log_level"`
	Pretty          bool               `json:"pretty" mapstructure:"pretty"`
	Mongo           MongoConfiguration `json:"mongo" mapstructure:"mongo"`
	Auth            AuthConfiguration  `json:"auth" mapstructure:"auth"`
}

type MongoConfiguration struct {
	// Host set to "skip" selects the in-memory store instead of mongodb.
	Host     string `json:"host" mapstructure:"host"`
	Port     int    `json:"port" mapstructure:"port"`
	Database string `json:"database" mapstructure:"database"`
}

type AuthConfiguration struct {
	Secret     string        `json:"secret" mapstructure:"secret"`
	TokenTTL   time.Duration `json:"token_ttl" mapstructure:"token_ttl"`
	BcryptCost int           `json:"bcrypt_cost" mapstructure:"bcrypt_cost"`
}

func applyDefaultConfig() {
	viper.SetDefault("read_timeout", "30s")
	viper.SetDefault("write_timeout", "30s")
	viper.SetDefault("shutdown_timeout", "30s")
	viper.SetDefault("scheme", "http")
	viper.SetDefault("host", "localhost")
	viper.SetDefault("listen_port", "8082")
	viper.SetDefault("log_level", "info")
	viper.SetDefault("pretty", "false")
	viper.SetDefault("mongo.host", "skip") // localhost
	viper.SetDefault("mongo.port", "27017")
	viper.SetDefault("mongo.database", "tradebook")
	viper.SetDefault("auth.token_ttl", "24h")
	viper.SetDefault("auth.bcrypt_cost", "10")
}

func LoadConfiguration(file string) (*Configuration, error) {
	applyDefaultConfig()
	var cfg Configuration
	viper.SetConfigName(strings.TrimRight(path.Base(file), ".json"))
	viper.AddConfigPath(".")
	viper.AddConfigPath(filepath.Dir(file))
	if err := viper.ReadInConfig(); nil != err {
		return nil, errors.Wrap(err, "failed to read from config file")
	}
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	if err := viper.Unmarshal(&cfg); nil != err {
		return nil, errors.Wrap(err, "failed to unmarshal")
	}
	if cfg.Auth.Secret == "" {
		return nil, errors.New("auth.secret must be configured")
	}
	return &cfg, nil
}
