package config

import (
	"os"

	"gopkg.in/yaml.v2"
)

// Config is the file-backed portion of configuration. Runtime knobs
// (PORT, LLM settings) come from the environment via GetEnv.
type Config struct {
	PostgresConfig PostgresConfig `yaml:"database"`
	JWTSecretKey   string         `yaml:"jwt_secret"`
}

type PostgresConfig struct {
	Host     string `yaml:"host"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	Port     string `yaml:"port"`
	SSLMode  string `yaml:"sslmode"`
}

// Read parses the YAML configuration file at filePath.
func Read(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	// Env overrides the file for the secret so deployments never need to
	// commit one.
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		cfg.JWTSecretKey = secret
	}
	return &cfg, nil
}

// GetEnv returns the environment variable or a fallback.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
