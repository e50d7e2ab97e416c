package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

const (
	ProviderGemini  = "gemini"
	ProviderOpenAI  = "openai"
	ProviderBedrock = "bedrock"
)

var defaultModels = map[string]string{
	ProviderGemini:  "gemini-2.5-pro",
	ProviderOpenAI:  "gpt-4o-mini",
	ProviderBedrock: "anthropic.claude-3-haiku-20240307-v1:0",
}

type Config struct {
	Provider    string
	ChatModel   string
	Temperature float32

	GoogleAPIKey  string
	OpenAIAPIKey  string
	OpenAIBaseURL string
	AWSRegion     string

	ServerAddr   string
	QueryTimeout time.Duration
	LogLevel     string

	DocumentSource string
	DocumentName   string
}

// MissingSettingError is returned by Load when a required setting is absent.
type MissingSettingError struct {
	Name string
}

func (e *MissingSettingError) Error() string {
	return fmt.Sprintf("%s not set in environment or .env", e.Name)
}

// fileConfig is the optional YAML file layout. Secrets are never read from it.
type fileConfig struct {
	Provider      string  `yaml:"provider"`
	Model         string  `yaml:"model"`
	Temperature   float32 `yaml:"temperature"`
	OpenAIBaseURL string  `yaml:"openai_base_url"`
	AWSRegion     string  `yaml:"aws_region"`
	ServerAddr    string  `yaml:"server_addr"`
	QueryTimeout  string  `yaml:"query_timeout"`
	LogLevel      string  `yaml:"log_level"`
	Document      struct {
		Source string `yaml:"source"`
		Name   string `yaml:"name"`
	} `yaml:"document"`
}

// Load reads .env, the optional YAML file named by RESUMEQA_CONFIG and the
// environment, in increasing order of precedence.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var fc fileConfig
	if path := os.Getenv("RESUMEQA_CONFIG"); path != "" {
		if err := readFile(path, &fc); err != nil {
			return nil, err
		}
	}

	cfg := &Config{
		Provider:       strings.ToLower(getenv("LLM_PROVIDER", or(fc.Provider, ProviderGemini))),
		OpenAIBaseURL:  getenv("OPENAI_BASE_URL", fc.OpenAIBaseURL),
		AWSRegion:      getenv("AWS_REGION", fc.AWSRegion),
		ServerAddr:     getenv("SERVER_ADDR", or(fc.ServerAddr, ":8080")),
		LogLevel:       getenv("LOG_LEVEL", or(fc.LogLevel, "info")),
		DocumentSource: getenv("DOCUMENT_SOURCE", fc.Document.Source),
		DocumentName:   getenv("DOCUMENT_NAME", or(fc.Document.Name, "resume")),
		GoogleAPIKey:   os.Getenv("GOOGLE_API_KEY"),
		OpenAIAPIKey:   os.Getenv("OPENAI_API_KEY"),
	}

	def, ok := defaultModels[cfg.Provider]
	if !ok {
		return nil, fmt.Errorf("unknown LLM_PROVIDER %q", cfg.Provider)
	}
	cfg.ChatModel = getenv("LLM_MODEL", or(fc.Model, def))

	temp := fc.Temperature
	if temp == 0 {
		temp = 0.3
	}
	if v := os.Getenv("LLM_TEMPERATURE"); v != "" {
		f, err := strconv.ParseFloat(v, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid LLM_TEMPERATURE %q: %w", v, err)
		}
		temp = float32(f)
	}
	cfg.Temperature = temp

	timeout := getenv("QUERY_TIMEOUT", or(fc.QueryTimeout, "0"))
	d, err := time.ParseDuration(timeout)
	if err != nil {
		return nil, fmt.Errorf("invalid QUERY_TIMEOUT %q: %w", timeout, err)
	}
	if d < 0 {
		return nil, errors.New("QUERY_TIMEOUT must not be negative")
	}
	cfg.QueryTimeout = d

	switch cfg.Provider {
	case ProviderGemini:
		if cfg.GoogleAPIKey == "" {
			return nil, &MissingSettingError{Name: "GOOGLE_API_KEY"}
		}
	case ProviderOpenAI:
		if cfg.OpenAIAPIKey == "" {
			return nil, &MissingSettingError{Name: "OPENAI_API_KEY"}
		}
	}

	return cfg, nil
}

func readFile(path string, fc *fileConfig) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open config file: %w", err)
	}
	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(fc); err != nil {
		return fmt.Errorf("decode config file %s: %w", path, err)
	}
	return nil
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func or(v, def string) string {
	if v != "" {
		return v
	}
	return def
}
