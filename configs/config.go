package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type LogConfig struct {
	Level    string `mapstructure:"level"`
	Prettify bool   `mapstructure:"prettify"`
}

type RPCBatchSizeConfig struct {
	BlocksPerRequest int `mapstructure:"blocksPerRequest"`
}

type RPCConfig struct {
	URL    string             `mapstructure:"url"`
	Blocks RPCBatchSizeConfig `mapstructure:"blocks"`
}

type ScannerConfig struct {
	BlocksToScan int `mapstructure:"blocksToScan"`
	Concurrency  int `mapstructure:"concurrency"`
}

type BasicAuthConfig struct {
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

type APIConfig struct {
	Host            string          `mapstructure:"host"`
	Listen          string          `mapstructure:"listen"`
	BasicAuth       BasicAuthConfig `mapstructure:"basicAuth"`
	DefaultPageSize int             `mapstructure:"defaultPageSize"`
	MaxPageSize     int             `mapstructure:"maxPageSize"`
}

type StorageConfig struct {
	Metadata StorageConnectionConfig `mapstructure:"metadata"`
}

type StorageConnectionConfig struct {
	Pebble   *PebbleConfig   `mapstructure:"pebble"`
	Badger   *BadgerConfig   `mapstructure:"badger"`
	Memory   *MemoryConfig   `mapstructure:"memory"`
	Sqlite   *SqliteConfig   `mapstructure:"sqlite"`
	Postgres *PostgresConfig `mapstructure:"postgres"`
	Redis    *RedisConfig    `mapstructure:"redis"`
	Remote   *RemoteConfig   `mapstructure:"remote"`
}

type PebbleConfig struct {
	Path string `mapstructure:"path"`
}

type BadgerConfig struct {
	Path     string `mapstructure:"path"`
	InMemory bool   `mapstructure:"inMemory"`
}

type MemoryConfig struct {
	MaxItems int `mapstructure:"maxItems"`
}

type SqliteConfig struct {
	Path string `mapstructure:"path"`
}

type PostgresConfig struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database"`
	SSLMode         string `mapstructure:"sslMode"`
	MaxOpenConns    int    `mapstructure:"maxOpenConns"`
	MaxIdleConns    int    `mapstructure:"maxIdleConns"`
	MaxConnLifetime int    `mapstructure:"maxConnLifetime"`
	ConnectTimeout  int    `mapstructure:"connectTimeout"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"poolSize"`
	Key      string `mapstructure:"key"`
}

// RemoteConfig points at another explorer server exposing /api/storage.
type RemoteConfig struct {
	URL     string `mapstructure:"url"`
	Timeout int    `mapstructure:"timeout"`
}

type Config struct {
	RPC     RPCConfig     `mapstructure:"rpc"`
	Log     LogConfig     `mapstructure:"log"`
	Scanner ScannerConfig `mapstructure:"scanner"`
	API     APIConfig     `mapstructure:"api"`
	Storage StorageConfig `mapstructure:"storage"`
}

var Cfg Config

func setDefaults() {
	viper.SetDefault("rpc.url", "http://127.0.0.1:8545")
	viper.SetDefault("rpc.blocks.blocksPerRequest", 100)
	viper.SetDefault("scanner.blocksToScan", 100)
	viper.SetDefault("scanner.concurrency", 1)
	viper.SetDefault("api.listen", ":3000")
	viper.SetDefault("api.defaultPageSize", 10)
	viper.SetDefault("api.maxPageSize", 100)
}

func LoadConfig(cfgFile string) error {
	setDefaults()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("error reading config file, %s", err)
		}
	} else {
		viper.SetConfigName("config")
		viper.AddConfigPath("./configs")

		if err := viper.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return fmt.Errorf("error reading config file, %s", err)
			}
		}

		viper.SetConfigName("secrets")
		if err := viper.MergeInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return fmt.Errorf("error loading secrets file: %v", err)
			}
		}
	}

	// sets e.g. RPC_URL to rpc.url
	replacer := strings.NewReplacer(".", "_")
	viper.SetEnvKeyReplacer(replacer)

	viper.AutomaticEnv()

	err := viper.Unmarshal(&Cfg)
	if err != nil {
		return fmt.Errorf("error unmarshalling config: %v", err)
	}

	return nil
}
