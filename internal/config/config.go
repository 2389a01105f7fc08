package config

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server struct {
		Port           int           `yaml:"port" default:"8080"`
		Host           string        `yaml:"host" default:"0.0.0.0"`
		ReadTimeout    time.Duration `yaml:"read_timeout" default:"30s"`
		WriteTimeout   time.Duration `yaml:"write_timeout" default:"90s"`
		IdleTimeout    time.Duration `yaml:"idle_timeout" default:"60s"`
		RequestTimeout time.Duration `yaml:"request_timeout" default:"75s"`
	} `yaml:"server"`

	LLM struct {
		Provider    string        `yaml:"provider" default:"openai"`
		APIKey      string        `yaml:"api_key"`
		Model       string        `yaml:"model"`
		BaseURL     string        `yaml:"base_url"`
		MaxTokens   int           `yaml:"max_tokens" default:"2000"`
		Temperature float32       `yaml:"temperature" default:"0.7"`
		Timeout     time.Duration `yaml:"timeout" default:"60s"`
	} `yaml:"llm"`

	Generation struct {
		FallbackEnabled bool  `yaml:"fallback_enabled" default:"true"`
		MaxRequestBytes int64 `yaml:"max_request_bytes" default:"1048576"`
	} `yaml:"generation"`

	RateLimit struct {
		RequestsPerMinute int `yaml:"requests_per_minute" default:"30"`
		Burst             int `yaml:"burst" default:"5"`
	} `yaml:"rate_limit"`

	Logging struct {
		Level  string `yaml:"level" default:"info"`
		Format string `yaml:"format" default:"json"`
		Output string `yaml:"output" default:"stdout"`

		Adapters []struct {
			Name    string                 `yaml:"name"`
			Type    string                 `yaml:"type"`
			Enabled bool                   `yaml:"enabled"`
			Options map[string]interface{} `yaml:"options"`
		} `yaml:"adapters"`
	} `yaml:"logging"`
}

var (
	bracedVarPattern = regexp.MustCompile(`\$\{([^}]+)\}`)
	bareVarPattern   = regexp.MustCompile(`\$([A-Za-z_][A-Za-z0-9_]*)`)
)

// expandEnvVars expands environment variables in a string using ${VAR} or $VAR syntax
func expandEnvVars(s string) string {
	s = bracedVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		varName := match[2 : len(match)-1] // Remove ${ and }
		if val := os.Getenv(varName); val != "" {
			return val
		}
		return match // Return original if env var not found
	})

	s = bareVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		varName := match[1:] // Remove $
		if val := os.Getenv(varName); val != "" {
			return val
		}
		return match
	})

	return s
}

// Default returns a configuration populated with built-in defaults only
func Default() *Config {
	config := &Config{}

	config.Server.Port = 8080
	config.Server.Host = "0.0.0.0"
	config.Server.ReadTimeout = 30 * time.Second
	config.Server.WriteTimeout = 90 * time.Second
	config.Server.IdleTimeout = 60 * time.Second
	config.Server.RequestTimeout = 75 * time.Second

	config.LLM.Provider = "openai"
	config.LLM.MaxTokens = 2000
	config.LLM.Temperature = 0.7
	config.LLM.Timeout = 60 * time.Second

	config.Generation.FallbackEnabled = true
	config.Generation.MaxRequestBytes = 1 << 20

	config.RateLimit.RequestsPerMinute = 30
	config.RateLimit.Burst = 5

	config.Logging.Level = "info"
	config.Logging.Format = "json"
	config.Logging.Output = "stdout"

	return config
}

// LoadConfig loads configuration from file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	// Load .env file if it exists (ignore errors if file doesn't exist)
	_ = godotenv.Load()

	config := Default()

	// Load from YAML file if it exists
	if configPath != "" {
		if data, err := os.ReadFile(configPath); err == nil {
			yamlContent := expandEnvVars(string(data))

			if err := yaml.Unmarshal([]byte(yamlContent), config); err != nil {
				return nil, fmt.Errorf("parse %s: %w", configPath, err)
			}
		}
	}

	// Override with environment variables
	config.loadFromEnv()

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate rejects settings the service cannot run with
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if c.LLM.MaxTokens <= 0 {
		return fmt.Errorf("llm.max_tokens must be positive, got %d", c.LLM.MaxTokens)
	}
	if c.LLM.Temperature < 0 || c.LLM.Temperature > 2 {
		return fmt.Errorf("llm.temperature must be within [0, 2], got %.2f", c.LLM.Temperature)
	}
	if c.RateLimit.RequestsPerMinute < 0 {
		return fmt.Errorf("rate_limit.requests_per_minute must not be negative")
	}
	return nil
}

// Address returns the host:port the server listens on
func (c *Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// loadFromEnv loads configuration from environment variables
func (c *Config) loadFromEnv() {
	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			c.Server.Port = p
		}
	}

	if host := os.Getenv("HOST"); host != "" {
		c.Server.Host = host
	}

	if provider := os.Getenv("LLM_PROVIDER"); provider != "" {
		c.LLM.Provider = strings.ToLower(provider)
	}

	// Provider specific keys are only consulted when no generic key is set
	if apiKey := os.Getenv("LLM_API_KEY"); apiKey != "" {
		c.LLM.APIKey = apiKey
	} else if c.LLM.APIKey == "" {
		switch c.LLM.Provider {
		case "openai":
			c.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
		case "claude":
			c.LLM.APIKey = os.Getenv("ANTHROPIC_API_KEY")
		}
	}

	if model := os.Getenv("LLM_MODEL"); model != "" {
		c.LLM.Model = model
	}

	if baseURL := os.Getenv("LLM_BASE_URL"); baseURL != "" {
		c.LLM.BaseURL = baseURL
	}

	if timeout := os.Getenv("LLM_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.LLM.Timeout = d
		}
	}

	if logLevel := os.Getenv("LOG_LEVEL"); logLevel != "" {
		c.Logging.Level = logLevel
	}

	if logFormat := os.Getenv("LOG_FORMAT"); logFormat != "" {
		c.Logging.Format = logFormat
	}

	if fallback := os.Getenv("FALLBACK_ENABLED"); fallback != "" {
		c.Generation.FallbackEnabled = fallback == "true" || fallback == "1"
	}

	if rpm := os.Getenv("RATE_LIMIT_PER_MINUTE"); rpm != "" {
		if n, err := strconv.Atoi(rpm); err == nil {
			c.RateLimit.RequestsPerMinute = n
		}
	}

	c.loadLoggingAdapterEnvVars()
}

// loadLoggingAdapterEnvVars loads environment variables for logging adapters
func (c *Config) loadLoggingAdapterEnvVars() {
	for i := range c.Logging.Adapters {
		adapter := &c.Logging.Adapters[i]

		switch adapter.Type {
		case "file":
			if path := os.Getenv("LOG_FILE_PATH"); path != "" {
				if adapter.Options == nil {
					adapter.Options = make(map[string]interface{})
				}
				adapter.Options["file_path"] = path
			}

			if enabled := os.Getenv("LOG_FILE_ENABLED"); enabled != "" {
				adapter.Enabled = enabled == "true" || enabled == "1"
			}
		}
	}
}
