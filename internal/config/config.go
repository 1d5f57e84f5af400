// Package config описывает настройки сервиса PulseFit и их загрузку
// из YAML-файла и переменных окружения.
package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	// EnvLocal — локальный запуск, текстовые логи уровня debug.
	EnvLocal = "local"
	// EnvDev — стенд разработки, JSON-логи уровня debug.
	EnvDev = "dev"
	// EnvProd — боевое окружение, JSON-логи уровня info.
	EnvProd = "prod"
)

// Config общая структура для хранения настроек
type Config struct {
	Env        string `yaml:"env" env:"ENV" env-default:"local"`
	HTTPServer `yaml:"http_server"`
	Database   `yaml:"database"`
	JWTToken   `yaml:"jwttoken"`
}

// HTTPServer структура для настройки сервера
type HTTPServer struct {
	AddressHTTP string        `yaml:"addresshttp" env:"HTTP_ADDRESS" env-default:":8080"`
	TimeoutHTTP time.Duration `yaml:"timeouthttp" env-default:"10s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

// Database структура для настройки пула соединений с PostgreSQL.
//
// InsecureSkipVerify отключает проверку TLS-сертификата сервера БД при любом
// sslmode, включая verify-ca и verify-full: шифрование остаётся, проверка
// цепочки и имени хоста не выполняется. Включать только для провайдеров с
// самоподписанными сертификатами.
type Database struct {
	StorageURL         string        `yaml:"url" env:"DATABASE_URL" env-required:"true"`
	MaxConns           int           `yaml:"max_conns" env:"DATABASE_MAX_CONNS" env-default:"20"`
	ConnIdleTimeout    time.Duration `yaml:"idle_timeout" env-default:"30s"`
	ConnectTimeout     time.Duration `yaml:"connect_timeout" env-default:"2s"`
	InsecureSkipVerify bool          `yaml:"insecure_skip_verify" env:"DATABASE_INSECURE_SKIP_VERIFY"`
}

// JWTToken структура для работы с jwt-токеном
type JWTToken struct {
	JWTSecretKey string        `yaml:"jwt_secret_key" env:"JWT_SECRET" env-required:"true"`
	TokenTTL     time.Duration `yaml:"token_ttl" env-default:"24h"`
}

// Load читает конфиг из файла configPath. Если путь пустой,
// настройки берутся только из переменных окружения.
func Load(configPath string) (*Config, error) {
	const op = "config.Load"

	var cfg Config
	if configPath == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		return &cfg, nil
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("%s: file %s does not exist", op, configPath)
	}
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &cfg, nil
}

// MustLoad загружает конфиг по пути из CONFIG_PATH и завершает процесс при ошибке.
func MustLoad() *Config {
	cfg, err := Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		log.Fatalf("cannot read config: %s", err)
	}
	return cfg
}

// String печатает конфиг без секретов.
func (c *Config) String() string {
	return fmt.Sprintf(
		"Env: %s\n"+
			"HTTPServer:\n"+
			"  Address: %s\n"+
			"  Timeout: %s\n"+
			"  IdleTimeout: %s\n"+
			"Database:\n"+
			"  MaxConns: %d\n"+
			"  IdleTimeout: %s\n"+
			"  ConnectTimeout: %s\n"+
			"  InsecureSkipVerify: %t\n"+
			"JWTToken:\n"+
			"  TokenTTL: %s\n",
		c.Env,
		c.AddressHTTP,
		c.TimeoutHTTP,
		c.HTTPServer.IdleTimeout,
		c.MaxConns,
		c.ConnIdleTimeout,
		c.ConnectTimeout,
		c.InsecureSkipVerify,
		c.TokenTTL,
	)
}
