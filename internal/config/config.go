package config

import (
	"log"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Port string `env:"PORT" envDefault:"8080"`

	DBConnectionString string `env:"DB_CONNECTION_STRING,required"`

	JWTSecret      string        `env:"JWT_SECRET,required"`
	AccessTokenTTL time.Duration `env:"ACCESS_TOKEN_TTL" envDefault:"24h"`

	EmailAddress  string `env:"EMAIL_ADDRESS"`
	EmailPassword string `env:"EMAIL_PASSWORD"`
	SMTPHost      string `env:"SMTP_HOST" envDefault:"smtp.gmail.com"`
	SMTPPort      string `env:"SMTP_PORT" envDefault:"587"`
	TemplatesDir  string `env:"TEMPLATES_DIR" envDefault:"templates"`

	DigestEnabled  bool   `env:"DIGEST_ENABLED" envDefault:"false"`
	DigestSchedule string `env:"DIGEST_SCHEDULE" envDefault:"0 6 * * *"`
}

// Load reads .env when present and parses the environment into a Config.
// Missing required values fail here, before anything else starts.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Error loading .env file, continuing with system environment variables")
	}

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}
