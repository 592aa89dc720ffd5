package configs

import (
	"crypto/rand"
	"encoding/hex"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// AppConfig holds every knob the server reads from the process environment.
type AppConfig struct {
	Port               string
	DatabaseURL        string
	SQLitePath         string
	SecretKey          string
	AdminUsername      string
	AdminPasswordHash  string
	DBLogLevel         string
	Environment        string
	CorsOrigins        string
	RateLimitPerMinute int
	SeedDemo           bool
}

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if GetEnv("APP_ENV", "development") == "production" {
		log.Println("🚀 Running in production, menggunakan ENV dari sistem")
		return
	}
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ Tidak menemukan .env file, menggunakan ENV dari sistem")
	} else {
		log.Println("✅ .env file berhasil dimuat!")
	}
}

func newViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("PORT", "5000")
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("SQLITE_PATH", "islamic_education.db")
	v.SetDefault("SECRET_KEY", "")
	v.SetDefault("ADMIN_USERNAME", "")
	v.SetDefault("ADMIN_PASSWORD_HASH", "")
	v.SetDefault("DB_LOG_LEVEL", "warn")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("CORS_ORIGINS", "*")
	v.SetDefault("RATE_LIMIT_PER_MINUTE", 300)
	v.SetDefault("SEED_DEMO", false)
	return v
}

// Load resolves AppConfig from the environment, applying defaults.
func Load() AppConfig {
	v := newViper()

	cfg := AppConfig{
		Port:               strings.TrimSpace(v.GetString("PORT")),
		DatabaseURL:        strings.TrimSpace(v.GetString("DATABASE_URL")),
		SQLitePath:         strings.TrimSpace(v.GetString("SQLITE_PATH")),
		SecretKey:          v.GetString("SECRET_KEY"),
		AdminUsername:      strings.TrimSpace(v.GetString("ADMIN_USERNAME")),
		AdminPasswordHash:  strings.TrimSpace(v.GetString("ADMIN_PASSWORD_HASH")),
		DBLogLevel:         strings.ToLower(strings.TrimSpace(v.GetString("DB_LOG_LEVEL"))),
		Environment:        v.GetString("APP_ENV"),
		CorsOrigins:        v.GetString("CORS_ORIGINS"),
		RateLimitPerMinute: v.GetInt("RATE_LIMIT_PER_MINUTE"),
		SeedDemo:           v.GetBool("SEED_DEMO"),
	}

	if cfg.Port == "" {
		cfg.Port = "5000"
	}
	if cfg.SQLitePath == "" {
		cfg.SQLitePath = "islamic_education.db"
	}
	if cfg.RateLimitPerMinute <= 0 {
		cfg.RateLimitPerMinute = 300
	}

	if cfg.SecretKey == "" {
		cfg.SecretKey = randomKey()
		log.Println("⚠️ SECRET_KEY belum diset, memakai key acak (flash hilang saat restart)")
	} else {
		log.Println("✅ SECRET_KEY berhasil dimuat.")
	}

	if cfg.DatabaseURL == "" {
		log.Printf("[INFO] DATABASE_URL kosong, memakai SQLite %s", cfg.SQLitePath)
	}

	return cfg
}

// AdminAuthEnabled reports whether the admin basic-auth guard should be mounted.
func (c AppConfig) AdminAuthEnabled() bool {
	return c.AdminUsername != "" && c.AdminPasswordHash != ""
}

// GetEnv reads a variable before viper is set up; an unset key falls back
// to the default.
func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func randomKey() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "halaqat-dev-secret"
	}
	return hex.EncodeToString(b)
}
