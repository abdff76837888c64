package main

import (
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	DataFile string `yaml:"data_file"`
}

// LoadConfig reads config.yaml (path overridable via CONFIG_PATH) if it
// exists, applies env var overrides, then fills defaults. A missing config
// file is fine; a malformed one is fatal.
func LoadConfig() Config {
	var cfg Config

	configPath := "config.yaml"
	if envPath := os.Getenv("CONFIG_PATH"); envPath != "" {
		configPath = envPath
	}
	if data, err := os.ReadFile(configPath); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			log.Fatalf("Error parsing %s: %v", configPath, err)
		}
		log.Printf("Loaded config from %s", configPath)
	}

	// Env vars override YAML values
	envOverride(&cfg.DataFile, "DATA_FILE")

	// Defaults
	if cfg.DataFile == "" {
		cfg.DataFile = "./student_feedback.txt"
	}

	return cfg
}

func envOverride(field *string, envKey string) {
	if val := os.Getenv(envKey); val != "" {
		*field = val
	}
}
