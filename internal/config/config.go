package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	DefaultModel       = "llama-3.3-70b-versatile"
	DefaultTemperature = 0.3
	DefaultBaseURL     = "https://api.groq.com/openai/v1"
	DefaultAPIKeyEnv   = "GROQ_API_KEY"
	DefaultDataDir     = ".phystutor"
	DefaultGravity     = 9.81
	DefaultSamples     = 400
)

type Config struct {
	Model       string  `yaml:"model"`
	Temperature float64 `yaml:"temperature"`
	BaseURL     string  `yaml:"base_url"`
	APIKeyEnv   string  `yaml:"api_key_env"`
	PromptPath  string  `yaml:"prompt_path"`
	DataDir     string  `yaml:"data_dir"`
	PlotsDir    string  `yaml:"plots_dir"`
	Gravity     float64 `yaml:"gravity"`
	Samples     int     `yaml:"samples"`
}

func DefaultConfig() *Config {
	return &Config{
		Model:       DefaultModel,
		Temperature: DefaultTemperature,
		BaseURL:     DefaultBaseURL,
		APIKeyEnv:   DefaultAPIKeyEnv,
		PromptPath:  filepath.Join(DefaultDataDir, "system_prompt.txt"),
		DataDir:     DefaultDataDir,
		PlotsDir:    filepath.Join(DefaultDataDir, "plots"),
		Gravity:     DefaultGravity,
		Samples:     DefaultSamples,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
