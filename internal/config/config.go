package config

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type HTTPServer struct {
	Host string
	Port string
}

type RedisCache struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type Postgres struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type Room struct {
	// Shared expiry window of every room-scoped key, refreshed on each mutation.
	TTL time.Duration
	// Zero cancels a room as soon as a member disconnects.
	DisconnectGrace time.Duration
	DraftLimit      int
}

// ObjectStorage holds the poster bucket. An empty Bucket serves poster paths as stored.
type ObjectStorage struct {
	Bucket          string
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	URLTTL          time.Duration
}

type Config struct {
	HTTP     HTTPServer
	Redis    RedisCache
	Postgres Postgres
	Room     Room
	Storage  ObjectStorage
}

const logtag = "[config]"

func Load() *Config {
	configPath := flag.String("config", "", "path env file")
	flag.Parse()

	if *configPath != "" {
		if err := godotenv.Load(*configPath); err != nil {
			log.Fatalf("%s err loading env from file : %v", logtag, err)
		}
		log.Printf("%s using env from : %s", logtag, *configPath)
	} else {
		log.Printf("%s using env from .env", logtag)
		_ = godotenv.Load()
	}

	cfg := FromEnv()

	log.Printf("%s backend config : %+v\n", logtag, cfg.redacted())
	return cfg
}

// FromEnv builds the config from the current process environment.
func FromEnv() *Config {
	return &Config{
		HTTP:     *newHTTP(),
		Redis:    *newRedis(),
		Postgres: *newPostgres(),
		Room:     *newRoom(),
		Storage:  *newObjectStorage(),
	}
}

func newHTTP() *HTTPServer {
	return &HTTPServer{
		Port: getenv("HTTP_PORT", "8080"),
		Host: getenv("HTTP_HOST", "localhost"),
	}
}

func newRedis() *RedisCache {
	return &RedisCache{
		Port:     getenv("REDIS_PORT", "6379"),
		Host:     getenv("REDIS_HOST", "redis"),
		Password: getenv("REDIS_PASSWORD", "shared"),
		DB:       getenvInt("REDIS_DB", 0),
	}
}

func newPostgres() *Postgres {
	return &Postgres{
		Host:     getenv("DB_HOST", "localhost"),
		Port:     getenv("DB_PORT", "5432"),
		User:     getenv("DB_USER", "admin"),
		Password: getenv("DB_PASSWORD", "shared"),
		DBName:   getenv("DB_NAME", "kinomatch"),
		SSLMode:  getenv("DB_SSLMODE", "disable"),
	}
}

func newRoom() *Room {
	return &Room{
		TTL:             time.Duration(getenvInt("ROOM_TTL_MINUTES", 60)) * time.Minute,
		DisconnectGrace: time.Duration(getenvInt("DISCONNECT_GRACE_SECONDS", 0)) * time.Second,
		DraftLimit:      getenvInt("DRAFT_LIMIT", 50),
	}
}

func newObjectStorage() *ObjectStorage {
	return &ObjectStorage{
		Bucket:          os.Getenv("S3_BUCKET"),
		Region:          getenv("S3_REGION", "ru-central1"),
		Endpoint:        getenv("S3_ENDPOINT", "https://storage.yandexcloud.net"),
		AccessKeyID:     os.Getenv("S3_ACCESS_KEY_ID"),
		SecretAccessKey: os.Getenv("S3_SECRET_ACCESS_KEY"),
		URLTTL:          time.Duration(getenvInt("POSTER_URL_TTL_MINUTES", 60)) * time.Minute,
	}
}

func (c Config) redacted() Config {
	if c.Redis.Password != "" {
		c.Redis.Password = "***"
	}
	if c.Postgres.Password != "" {
		c.Postgres.Password = "***"
	}
	if c.Storage.SecretAccessKey != "" {
		c.Storage.SecretAccessKey = "***"
	}
	return c
}

func getenv(key, defaultValue string) string {
	val := os.Getenv(key)
	if val == "" {
		fmt.Printf("%s %s undefined. Using default value %s\n", logtag, key, defaultValue)
		return defaultValue
	}
	fmt.Printf("%s %s = %s\n", logtag, key, val)
	return val
}

func getenvInt(key string, defaultValue int) int {
	raw := getenv(key, strconv.Itoa(defaultValue))
	val, err := strconv.Atoi(raw)
	if err != nil || val < 0 {
		fmt.Printf("%s %s = %q is not a non-negative integer. Using default value %d\n", logtag, key, raw, defaultValue)
		return defaultValue
	}
	return val
}
