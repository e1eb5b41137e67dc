package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	AppURI         string
	AllowedOrigins string

	MongoURI         string
	MongoDB          string
	PhotosCollection string
	PhotosBucket     string
	LeadsCollection  string

	Google GoogleConfig

	RedisURI       string
	DedupeClaimTTL time.Duration

	PhotosPassword   string
	JWTSecret        string
	AdminCredentials map[string]string
}

type GoogleConfig struct {
	SpreadsheetID       string
	ServiceAccountEmail string
	PrivateKey          string
}

// Load reads .env (if present) into the process environment, then resolves
// every key through viper so defaults live in one place.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ Warning: No .env file found")
	}
	return FromViper(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("APP_URI", "8888")
	v.SetDefault("ALLOWED_ORIGINS", "*")
	v.SetDefault("MONGO_DB", "masons_uploaded_data")
	v.SetDefault("PHOTOS_COLLECTION", "masons_uploaded_data")
	v.SetDefault("PHOTOS_BUCKET", "photos")
	v.SetDefault("LEADS_COLLECTION", "leads")
	v.SetDefault("DEDUPE_CLAIM_TTL", "0s")
	return v
}

func FromViper(v *viper.Viper) Config {
	return Config{
		AppURI:           v.GetString("APP_URI"),
		AllowedOrigins:   v.GetString("ALLOWED_ORIGINS"),
		MongoURI:         v.GetString("MONGO_URI"),
		MongoDB:          v.GetString("MONGO_DB"),
		PhotosCollection: v.GetString("PHOTOS_COLLECTION"),
		PhotosBucket:     v.GetString("PHOTOS_BUCKET"),
		LeadsCollection:  v.GetString("LEADS_COLLECTION"),
		Google: GoogleConfig{
			SpreadsheetID:       v.GetString("GOOGLE_SPREADSHEET_ID"),
			ServiceAccountEmail: v.GetString("GOOGLE_SERVICE_ACCOUNT_EMAIL"),
			PrivateKey:          strings.ReplaceAll(v.GetString("GOOGLE_PRIVATE_KEY"), `\n`, "\n"),
		},
		RedisURI:         v.GetString("REDIS_URI"),
		DedupeClaimTTL:   v.GetDuration("DEDUPE_CLAIM_TTL"),
		PhotosPassword:   v.GetString("PHOTOS_PASSWORD"),
		JWTSecret:        v.GetString("JWT_SECRET"),
		AdminCredentials: ParseAdminCredentials(v.GetString("ADMIN_CREDENTIALS")),
	}
}

// ParseAdminCredentials turns "alice:$2a$10$...,bob:$2a$10$..." into a
// name → bcrypt hash map. Malformed entries are dropped with a log line.
func ParseAdminCredentials(raw string) map[string]string {
	out := make(map[string]string)
	for _, entry := range strings.Split(raw, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		name, hash, ok := strings.Cut(entry, ":")
		if !ok || name == "" || hash == "" {
			log.Printf("[config] skipping malformed admin credential entry")
			continue
		}
		out[name] = hash
	}
	return out
}
