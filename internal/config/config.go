package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type BotConfig struct {
	Env       string `yaml:"env" env-default:"local"`
	Telegram  `yaml:"telegram"`
	BotDB     `yaml:"bot_db"`
	Redis     `yaml:"redis"`
	Kafka     `yaml:"kafka"`
	Metrics   `yaml:"metrics"`
	LogConfig `yaml:"log_config"`
	Orders    `yaml:"orders"`
}

type Telegram struct {
	Token    string  `yaml:"token" env:"BOT_TOKEN"`
	AdminIDs []int64 `yaml:"admin_ids"`
}

type BotDB struct {
	Dsn            string `yaml:"dsn" env:"BOT_DB_DSN"`
	MigrationsPath string `yaml:"migrations_path" env-default:"migrations"`
}

type Redis struct {
	Addr       string        `yaml:"addr" env-default:"localhost:6379"`
	Password   string        `yaml:"password"`
	SessionTTL time.Duration `yaml:"session_ttl" env-default:"30m"`
}

type Kafka struct {
	Host  string `yaml:"host"`
	Port  string `yaml:"port"`
	Topic string `yaml:"topic" env-default:"order-events"`
}

type Metrics struct {
	Addr string `yaml:"addr" env-default:":9091"`
}

type LogConfig struct {
	LogLevel  string `yaml:"log_level" env-default:"info"`
	LogFormat string `yaml:"log_format" env-default:"text"`
}

type Orders struct {
	// PendingTTL > 0 enables auto-cancel of orders stuck in PENDING_PAYMENT.
	// Zero keeps them open until an explicit user or admin action.
	PendingTTL time.Duration `yaml:"pending_ttl" env-default:"0"`
}

func MustLoad() *BotConfig {

	// Processing env config variable and file
	configPath := os.Getenv("BOT_CONFIG_PATH")

	if configPath == "" {
		log.Fatalf("BOT_CONFIG_PATH was not found\n")
	}

	if _, err := os.Stat(configPath); err != nil {
		log.Fatalf("failed to find config file: %v\n", err)
	}

	// YAML to struct object
	var cfg BotConfig
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	return &cfg
}
