package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	Addr         string
	DatabaseDSN  string
	JWTSecret    string
	RedisAddr    string
	RedisPass    string
	RedisDB      int
	KafkaBrokers []string // empty = relay to log only
	KafkaTopic   string
}

// Load reads configuration from the environment (.env honored if present).
// A missing signing secret or store DSN is a startup-time misconfiguration,
// not a per-request error.
func Load() *Config {
	_ = godotenv.Load() // ok if missing in prod

	for _, k := range []string{"DATABASE_DSN", "JWT_SECRET"} {
		if os.Getenv(k) == "" {
			logrus.Fatalf("missing required env %s", k)
		}
	}

	cfg := &Config{
		Addr:        getenvDefault("ADDR", ":8080"),
		DatabaseDSN: os.Getenv("DATABASE_DSN"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		RedisAddr:   getenvDefault("REDIS_ADDR", "127.0.0.1:6379"),
		RedisPass:   os.Getenv("REDIS_PASSWORD"),
		RedisDB:     getenvInt("REDIS_DB", 0),
		KafkaTopic:  getenvDefault("KAFKA_TOPIC", "campus.notifications"),
	}
	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		cfg.KafkaBrokers = strings.Split(v, ",")
	}
	return cfg
}

func getenvDefault(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func getenvInt(k string, d int) int {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		logrus.Fatalf("invalid integer in env %s: %q", k, v)
	}
	return n
}
