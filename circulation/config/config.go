package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"github.com/Astemirdum/library-circulation/pkg/auth"
	"github.com/Astemirdum/library-circulation/pkg/circuit_breaker"
	"github.com/Astemirdum/library-circulation/pkg/kafka"
	"github.com/Astemirdum/library-circulation/pkg/logger"
	"github.com/Astemirdum/library-circulation/pkg/postgres"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"

	NotifierLog   = "log"
	NotifierKafka = "kafka"

	MailerLog  = "log"
	MailerSMTP = "smtp"
)

type HTTPServer struct {
	Host         string        `yaml:"host" envconfig:"CIRCULATION_HTTP_HOST"`
	Port         string        `yaml:"port" envconfig:"CIRCULATION_HTTP_PORT"`
	ReadTimeout  time.Duration `yaml:"readTimeout" envconfig:"HTTP_READ"`
	WriteTimeout time.Duration `yaml:"writeTimeout" envconfig:"HTTP_WRITE"`
	RPS          float64       `yaml:"rps" envconfig:"HTTP_RPS"`
}

type Notify struct {
	Backend string                 `yaml:"backend" envconfig:"NOTIFY_BACKEND"`
	Breaker circuit_breaker.Config `yaml:"breaker"`
}

type Mailer struct {
	Backend  string `yaml:"backend" envconfig:"MAILER_BACKEND"`
	Host     string `yaml:"host" envconfig:"SMTP_HOST"`
	Port     string `yaml:"port" envconfig:"SMTP_PORT"`
	Username string `yaml:"username" envconfig:"SMTP_USERNAME"`
	Password string `yaml:"password" envconfig:"SMTP_PASSWORD" json:"-"`
	From     string `yaml:"from" envconfig:"SMTP_FROM"`
}

type Config struct {
	Server   HTTPServer   `yaml:"server"`
	Storage  string       `yaml:"storage" envconfig:"STORAGE"`
	Database postgres.DB  `yaml:"db"`
	Kafka    kafka.Config `yaml:"kafka"`
	Notify   Notify       `yaml:"notify"`
	Mailer   Mailer       `yaml:"mailer"`
	Auth     auth.Config  `yaml:"auth" json:"-"`
	Log      logger.Log   `yaml:"log"`
}

var (
	once sync.Once
	cfg  Config
)

// NewConfig reads config from the optional CONFIG_FILE yaml and then from environment.
// Options override built-in defaults and are overridden by both sources.
func NewConfig(ops ...Option) Config {
	once.Do(func() {
		config, err := Load(os.Getenv("CONFIG_FILE"), ops...)
		if err != nil {
			log.Fatal("NewConfig ", err)
		}
		cfg = config
		printConfig(cfg)
	})

	return cfg
}

func Load(path string, ops ...Option) (Config, error) {
	config := defaults()
	for _, op := range ops {
		op(&config)
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
		if err = yaml.Unmarshal(data, &config); err != nil {
			return Config{}, fmt.Errorf("parse config file: %w", err)
		}
	}
	if err := envconfig.Process("", &config); err != nil {
		return Config{}, err
	}
	if config.Auth.JWTSecret == "" {
		return Config{}, errors.New("JWT_SECRET is required")
	}
	return config, nil
}

func defaults() Config {
	return Config{
		Server: HTTPServer{
			Host:         "0.0.0.0",
			Port:         "8080",
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			RPS:          50,
		},
		Storage: StoragePostgres,
		Database: postgres.DB{
			Host:     "localhost",
			Port:     "5432",
			User:     "postgres",
			NameDB:   "circulation",
			SSLMode:  "disable",
			MaxConns: 20,
		},
		Kafka: kafka.Config{Addrs: []string{"localhost:9092"}},
		Notify: Notify{
			Backend: NotifierLog,
			Breaker: circuit_breaker.Config{
				RecordLength:     20,
				Timeout:          10 * time.Second,
				Percentile:       0.5,
				RecoveryRequests: 3,
			},
		},
		Mailer: Mailer{
			Backend: MailerLog,
			Host:    "localhost",
			Port:    "25",
			From:    "library@localhost",
		},
		Auth: auth.Config{TokenTTL: 24 * time.Hour},
	}
}

func printConfig(cfg Config) {
	jscfg, _ := json.MarshalIndent(cfg, "", "	") //nolint:errcheck
	fmt.Println(string(jscfg))
}
