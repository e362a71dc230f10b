package utils

import (
	"log"
	"os"
	"reflect"
	"strconv"

	"gopkg.in/yaml.v2"
)

type Config struct {
	// Application
	AppPort            string `yaml:"APP_PORT"`
	Environment        string `yaml:"ENVIRONMENT"`
	AppURL             string `yaml:"APP_URL"`
	PaginationMaxLimit string `yaml:"PAGINATION_MAX_LIMIT"`

	// Database configuration
	DBUser     string `yaml:"DB_USER"`
	DBName     string `yaml:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST"`
	DBSSLMode  string `yaml:"DB_SSLMODE"`
	DBTimeZone string `yaml:"DB_TIMEZONE"`

	JWTSecret string `yaml:"JWT_SECRET"`

	// Mailing configuration
	SMTPHost         string `yaml:"SMTP_HOST"`
	SMTPPort         string `yaml:"SMTP_PORT"`
	SMTPSenderName   string `yaml:"SMTP_SENDER_NAME"`
	SMTPAuthEmail    string `yaml:"SMTP_AUTH_EMAIL"`
	SMTPAuthPassword string `yaml:"SMTP_AUTH_PASSWORD"`

	// AWS S3 configuration
	AWSS3Bucket  string `yaml:"AWS_S3_BUCKET"`
	AWSS3Region  string `yaml:"AWS_S3_REGION"`
	AWSAccessKey string `yaml:"AWS_ACCESS_KEY"`
	AWSSecretKey string `yaml:"AWS_SECRET_KEY"`

	// Seeded administrator, production only
	AdminUsername string `yaml:"ADMIN_USERNAME"`
	AdminEmail    string `yaml:"ADMIN_EMAIL"`
	AdminPassword string `yaml:"ADMIN_PASSWORD"`
}

var defaults = map[string]string{
	"APP_PORT":             "8080",
	"ENVIRONMENT":          "development",
	"PAGINATION_MAX_LIMIT": "10",
	"DB_HOST":              "localhost",
	"DB_PORT":              "5432",
	"DB_SSLMODE":           "disable",
	"DB_TIMEZONE":          "UTC",
	"SMTP_PORT":            "587",
}

var config Config

// LoadConfig reads config.yaml when present. Environment variables win over the file,
// and defaults fill whatever is still empty.
func LoadConfig() {
	config = Config{}
	file, err := os.ReadFile("config.yaml")
	if err != nil {
		log.Printf("Error reading YAML file: %s\n", err)
	} else if err := yaml.Unmarshal(file, &config); err != nil {
		log.Printf("Error parsing YAML file: %s\n", err)
	}

	v := reflect.ValueOf(&config).Elem()
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		key := t.Field(i).Tag.Get("yaml")
		if val, ok := os.LookupEnv(key); ok {
			v.Field(i).SetString(val)
		}
		if v.Field(i).String() == "" {
			v.Field(i).SetString(defaults[key])
		}
	}
}

func GetConfig(key string) string {
	v := reflect.ValueOf(config)
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		if t.Field(i).Tag.Get("yaml") == key {
			return v.Field(i).String()
		}
	}
	return ""
}

// GetConfigInt returns fallback when the key is unset or not a number.
func GetConfigInt(key string, fallback int) int {
	n, err := strconv.Atoi(GetConfig(key))
	if err != nil {
		return fallback
	}
	return n
}

func IsProduction() bool {
	env := GetConfig("ENVIRONMENT")
	return env == "production" || env == "prod"
}
