package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Env          Env
	Server       ServerConfig
	Database     DatabaseConfig
	Upload       UploadConfig
	IPFS         IPFSConfig
	Encoder      EncoderConfig
	StorageAdmin StorageAdminConfig
	NATS         NATSConfig
}

type Env struct {
	Env string `envconfig:"ENV" default:"DEV"`
}

type ServerConfig struct {
	Host string `envconfig:"SERVER_HOST" default:"localhost"`
	Port string `envconfig:"SERVER_PORT" default:"8080"`
}

type UploadConfig struct {
	// Endpoint of the external resumable (tus) transport sessions upload against.
	TusEndpoint          string        `envconfig:"UPLOAD_TUS_ENDPOINT" default:"/files"`
	SessionTTL           time.Duration `envconfig:"UPLOAD_SESSION_TTL" default:"6h"`
	ReaperEvery          time.Duration `envconfig:"UPLOAD_REAPER_EVERY" default:"15m"`
	MaxTitleLength       int           `envconfig:"UPLOAD_MAX_TITLE_LENGTH" default:"255"`
	MaxDescriptionLength int           `envconfig:"UPLOAD_MAX_DESCRIPTION_LENGTH" default:"10000"`
	MaxTags              int           `envconfig:"UPLOAD_MAX_TAGS" default:"10"`
}

type IPFSConfig struct {
	APIURL string `envconfig:"IPFS_API_URL" default:"http://127.0.0.1:5001"`
	// Path on the host filesystem whose partition holds the IPFS repo.
	RepoPath       string        `envconfig:"IPFS_REPO_PATH" default:"/data/ipfs"`
	RequestTimeout time.Duration `envconfig:"IPFS_REQUEST_TIMEOUT" default:"10s"`
	GCTimeout      time.Duration `envconfig:"IPFS_GC_TIMEOUT" default:"5m"`
}

type EncoderConfig struct {
	BaseURL        string        `envconfig:"ENCODER_BASE_URL" required:"true"`
	RequestTimeout time.Duration `envconfig:"ENCODER_REQUEST_TIMEOUT" default:"10s"`
}

type StorageAdminConfig struct {
	Username string `envconfig:"STORAGE_ADMIN_USERNAME" default:"admin"`
	Password string `envconfig:"STORAGE_ADMIN_PASSWORD"`
}

type NATSConfig struct {
	URL          string `envconfig:"NATS_URL" required:"true"`
	StreamName   string `envconfig:"NATS_STREAM_NAME" required:"true"`
	ConsumerName string `envconfig:"NATS_CONSUMER_NAME" required:"true"`
	Subject      string `envconfig:"NATS_SUBJECT" required:"true"`
	DeliverGroup string `envconfig:"NATS_DELIVER_GROUP" required:"true"`
}

type DatabaseConfig struct {
	Host           string        `envconfig:"DB_HOST" required:"true"`
	Port           int           `envconfig:"DB_PORT" default:"5432"`
	User           string        `envconfig:"DB_USER" required:"true"`
	Password       string        `envconfig:"DB_PASSWORD" required:"true"`
	Name           string        `envconfig:"DB_NAME" required:"true"`
	SSLMode        string        `envconfig:"DB_SSLMODE" default:"disable"`
	MaxOpenCons    int           `envconfig:"DB_MAX_OPEN_CONS" default:"25"`
	MaxIdleCons    int           `envconfig:"DB_MAX_IDLE_CONS" default:"5"`
	ConMaxLifeTime time.Duration `envconfig:"DB_CONMAX_LIFE_TIME" default:"5m"`
}

func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
