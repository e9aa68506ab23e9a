package cli

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Defaults point at the collections the reference deployment serves.
const (
	defaultTasksURL       = "https://json.medrocket.ru/todos"
	defaultUsersURL       = "https://json.medrocket.ru/users"
	defaultTimeoutSeconds = 10
	defaultReportDir      = "tasks"
)

// Config represents the taskreport.yaml configuration structure
type Config struct {
	API struct {
		TasksURL       string `yaml:"tasks_url"`
		UsersURL       string `yaml:"users_url"`
		TimeoutSeconds int    `yaml:"timeout_seconds"`
	} `yaml:"api"`

	Report struct {
		Directory string `yaml:"directory"`
	} `yaml:"report"`
}

// DefaultConfig returns a config with every field at its default.
func DefaultConfig() *Config {
	config := &Config{}
	applyDefaults(config)
	return config
}

// LoadConfig reads the config file at path, or searches the conventional
// locations when path is empty. A missing file is not an error; the
// defaults simply apply.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		locations := []string{"taskreport.yaml", "taskreport.yml", ".taskreport.yaml", ".taskreport.yml"}
		for _, loc := range locations {
			if _, err := os.Stat(loc); err == nil {
				path = loc
				break
			}
		}
		if path == "" {
			return DefaultConfig(), nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&config)

	return &config, nil
}

func applyDefaults(config *Config) {
	if config.API.TasksURL == "" {
		config.API.TasksURL = defaultTasksURL
	}
	if config.API.UsersURL == "" {
		config.API.UsersURL = defaultUsersURL
	}
	if config.API.TimeoutSeconds == 0 {
		config.API.TimeoutSeconds = defaultTimeoutSeconds
	}
	if config.Report.Directory == "" {
		config.Report.Directory = defaultReportDir
	}
}

// GetConfigPath returns the config file the tool would load, preferring the
// TASKREPORT_CONFIG environment variable over the conventional locations.
func GetConfigPath() string {
	if path := os.Getenv("TASKREPORT_CONFIG"); path != "" {
		return path
	}

	locations := []string{"taskreport.yaml", "taskreport.yml", ".taskreport.yaml", ".taskreport.yml"}
	for _, loc := range locations {
		if _, err := os.Stat(loc); err == nil {
			return loc
		}
	}

	return ""
}
