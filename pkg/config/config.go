package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
)

// Config 是整個應用程式的配置
type Config struct {
	Server ServerConfig
	DB     DBConfig
	Log    LogConfig
	CORS   CORSConfig
}

type ServerConfig struct {
	Address         string
	Mode            string        // gin 模式: debug / release / test
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type DBConfig struct {
	Host            string
	User            string
	Password        string
	Name            string
	Port            int
	SSLMode         string        `mapstructure:"sslmode"`
	TimeZone        string        `mapstructure:"timezone"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	QueryTimeout    time.Duration `mapstructure:"query_timeout"`
}

type LogConfig struct {
	Level  string
	Format string // json 或 console
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// envPrefix 環境變數前綴，例如 MEDALS_DB_HOST 覆蓋 db.host
const envPrefix = "MEDALS"

// Load 讀取配置文件（可選）並套用環境變數覆蓋
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./pkg/config")
	v.AddConfigPath(".")

	return load(v)
}

// LoadFile 從指定路徑讀取配置
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// 沒有配置文件時只用預設值和環境變數
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.address", ":5000")
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.read_timeout", 10*time.Second)
	v.SetDefault("server.write_timeout", 15*time.Second)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)

	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.user", "postgres")
	v.SetDefault("db.password", "")
	v.SetDefault("db.name", "olimpiadas")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.timezone", "UTC")
	v.SetDefault("db.max_open_conns", 10)
	v.SetDefault("db.max_idle_conns", 5)
	v.SetDefault("db.conn_max_lifetime", 30*time.Minute)
	v.SetDefault("db.query_timeout", 5*time.Second)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	v.SetDefault("cors.allowed_origins", []string{"*"})
}

// Validate 檢查必要的配置是否合法
func (c *Config) Validate() error {
	// gin.SetMode 遇到未知模式會 panic，這裡先擋掉
	switch c.Server.Mode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
	default:
		return fmt.Errorf("server.mode must be one of debug, release, test, got %q", c.Server.Mode)
	}
	if c.DB.Host == "" {
		return errors.New("db.host is required")
	}
	if c.DB.Name == "" {
		return errors.New("db.name is required")
	}
	if c.DB.Port <= 0 {
		return fmt.Errorf("db.port must be positive, got %d", c.DB.Port)
	}
	if c.DB.QueryTimeout <= 0 {
		return fmt.Errorf("db.query_timeout must be positive, got %s", c.DB.QueryTimeout)
	}
	return nil
}
