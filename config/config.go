package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig
	CORS       CORSConfig

	// LLM Provider Abstraction
	LLM LLMConfig

	// Voice ordering specifics
	Catalog    CatalogConfig
	VoiceOrder VoiceOrderConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	ShutdownTimeout string
	TrustedProxies  []string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type RateLimitConfig struct {
	RequestsPerMin int
}

type CORSConfig struct {
	AllowedOrigins []string
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	Providers       []ProviderConfig `yaml:"providers"`
	FallbackEnabled bool             `yaml:"fallback_enabled"`
	RetryAttempts   int              `yaml:"retry_attempts"`
	RetryDelay      string           `yaml:"retry_delay"`
	MaxTotalTimeout string           `yaml:"max_total_timeout"` // bounds the whole fallback chain
}

// ProviderConfig holds configuration for a single LLM provider
type ProviderConfig struct {
	Name     string `yaml:"name"`
	Enabled  bool   `yaml:"enabled"`
	Priority int    `yaml:"priority"`
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url,omitempty"`
	Model    string `yaml:"model"`
	Timeout  string `yaml:"timeout"`
	Referer  string `yaml:"referer,omitempty"`
	Title    string `yaml:"title,omitempty"`
}

// CatalogConfig selects where the menu catalog is read from and how it is cached.
type CatalogConfig struct {
	Driver   string // supabase | postgres
	Supabase SupabaseConfig
	Postgres PostgresConfig
	Cache    CacheConfig
}

type SupabaseConfig struct {
	URL string
	Key string
}

type PostgresConfig struct {
	DSN      string
	MaxConns int32
	MinConns int32
}

type CacheConfig struct {
	Driver string // none | memory | redis
	TTL    string
	Size   int
	Redis  RedisConfig
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// VoiceOrderConfig tunes the conversation engine.
type VoiceOrderConfig struct {
	Timezone                  string
	FallbackCustomerName      string
	GreetingTemplate          string
	RecoverUnknownSession     bool
	EnforceFutureDeliveryDate bool
	Temperature               float64
	MaxTokens                 int
	DinnerAliases             map[string]string
	StyleAliases              map[string]string
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.ShutdownTimeout = viper.GetString("http_server.shutdown_timeout")
	cfg.HTTPServer.TrustedProxies = splitList(viper.GetString("http_server.trusted_proxies"))
	if len(cfg.HTTPServer.TrustedProxies) == 0 {
		cfg.HTTPServer.TrustedProxies = viper.GetStringSlice("http_server.trusted_proxies")
	}
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")
	cfg.RateLimit.RequestsPerMin = viper.GetInt("rate_limit.requests_per_min")
	cfg.CORS.AllowedOrigins = splitList(viper.GetString("cors.allowed_origins"))
	if len(cfg.CORS.AllowedOrigins) == 0 {
		cfg.CORS.AllowedOrigins = viper.GetStringSlice("cors.allowed_origins")
	}

	// LLM Provider Abstraction
	cfg.LLM.FallbackEnabled = viper.GetBool("llm.fallback_enabled")
	cfg.LLM.RetryAttempts = viper.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = viper.GetString("llm.retry_delay")
	cfg.LLM.MaxTotalTimeout = viper.GetString("llm.max_total_timeout")

	if viper.IsSet("llm.providers") {
		providersRaw := viper.Get("llm.providers")
		if providersList, ok := providersRaw.([]interface{}); ok {
			for _, p := range providersList {
				if providerMap, ok := p.(map[string]interface{}); ok {
					cfg.LLM.Providers = append(cfg.LLM.Providers, ProviderConfig{
						Name:     getStringFromMap(providerMap, "name"),
						Enabled:  getBoolFromMap(providerMap, "enabled"),
						Priority: getIntFromMap(providerMap, "priority"),
						APIKey:   expandEnvVar(getStringFromMap(providerMap, "api_key")),
						BaseURL:  getStringFromMap(providerMap, "base_url"),
						Model:    getStringFromMap(providerMap, "model"),
						Timeout:  getStringFromMap(providerMap, "timeout"),
						Referer:  getStringFromMap(providerMap, "referer"),
						Title:    getStringFromMap(providerMap, "title"),
					})
				}
			}
		}
	}

	// Single-provider shortcut for local runs: OPENROUTER_API_KEY alone is enough.
	if len(cfg.LLM.Providers) == 0 {
		if key := viper.GetString("openrouter_api_key"); key != "" {
			cfg.LLM.Providers = append(cfg.LLM.Providers, ProviderConfig{
				Name:     "openrouter",
				Enabled:  true,
				Priority: 1,
				APIKey:   key,
				Model:    viper.GetString("openrouter_model"),
			})
		}
	}

	if err := validateLLMConfig(&cfg.LLM); err != nil {
		return nil, err
	}

	// Catalog
	cfg.Catalog.Driver = viper.GetString("catalog.driver")
	cfg.Catalog.Supabase.URL = expandEnvVar(viper.GetString("catalog.supabase.url"))
	cfg.Catalog.Supabase.Key = expandEnvVar(viper.GetString("catalog.supabase.key"))
	if url := viper.GetString("supabase_url"); url != "" {
		cfg.Catalog.Supabase.URL = url
	}
	if key := viper.GetString("supabase_key"); key != "" {
		cfg.Catalog.Supabase.Key = key
	}
	cfg.Catalog.Postgres.DSN = expandEnvVar(viper.GetString("catalog.postgres.dsn"))
	if dsn := viper.GetString("database_url"); dsn != "" {
		cfg.Catalog.Postgres.DSN = dsn
	}
	cfg.Catalog.Postgres.MaxConns = viper.GetInt32("catalog.postgres.max_conns")
	cfg.Catalog.Postgres.MinConns = viper.GetInt32("catalog.postgres.min_conns")
	cfg.Catalog.Cache.Driver = viper.GetString("catalog.cache.driver")
	cfg.Catalog.Cache.TTL = viper.GetString("catalog.cache.ttl")
	cfg.Catalog.Cache.Size = viper.GetInt("catalog.cache.size")
	cfg.Catalog.Cache.Redis.Addr = viper.GetString("catalog.cache.redis.addr")
	cfg.Catalog.Cache.Redis.Password = expandEnvVar(viper.GetString("catalog.cache.redis.password"))
	cfg.Catalog.Cache.Redis.DB = viper.GetInt("catalog.cache.redis.db")

	if err := validateCatalogConfig(&cfg.Catalog); err != nil {
		return nil, err
	}

	// Voice order engine
	cfg.VoiceOrder.Timezone = viper.GetString("voice_order.timezone")
	cfg.VoiceOrder.FallbackCustomerName = viper.GetString("voice_order.fallback_customer_name")
	cfg.VoiceOrder.GreetingTemplate = viper.GetString("voice_order.greeting_template")
	if err := validateGreetingTemplate(cfg.VoiceOrder.GreetingTemplate); err != nil {
		return nil, err
	}
	cfg.VoiceOrder.RecoverUnknownSession = viper.GetBool("voice_order.recover_unknown_session")
	cfg.VoiceOrder.EnforceFutureDeliveryDate = viper.GetBool("voice_order.enforce_future_delivery_date")
	cfg.VoiceOrder.Temperature = viper.GetFloat64("voice_order.temperature")
	cfg.VoiceOrder.MaxTokens = viper.GetInt("voice_order.max_tokens")
	cfg.VoiceOrder.DinnerAliases = viper.GetStringMapString("voice_order.aliases.dinner")
	cfg.VoiceOrder.StyleAliases = viper.GetStringMapString("voice_order.aliases.style")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.shutdown_timeout", "10s")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("rate_limit.requests_per_min", 120)

	// LLM defaults: the conversation engine does not retry, so one attempt per provider
	viper.SetDefault("llm.fallback_enabled", true)
	viper.SetDefault("llm.retry_attempts", 1)
	viper.SetDefault("llm.retry_delay", "1s")
	viper.SetDefault("llm.max_total_timeout", "60s")

	// Catalog defaults
	viper.SetDefault("catalog.driver", "supabase")
	viper.SetDefault("catalog.postgres.max_conns", 10)
	viper.SetDefault("catalog.postgres.min_conns", 2)
	viper.SetDefault("catalog.cache.driver", "memory")
	viper.SetDefault("catalog.cache.ttl", "5m")
	viper.SetDefault("catalog.cache.size", 256)
	viper.SetDefault("catalog.cache.redis.addr", "localhost:6379")

	// Voice order defaults
	viper.SetDefault("voice_order.timezone", "Asia/Seoul")
	viper.SetDefault("voice_order.fallback_customer_name", "Customer")
	viper.SetDefault("voice_order.greeting_template", "Hello, %s! Which dinner would you like to order today?")
	viper.SetDefault("voice_order.recover_unknown_session", true)
	viper.SetDefault("voice_order.enforce_future_delivery_date", false)
	viper.SetDefault("voice_order.temperature", 0.2)
	viper.SetDefault("voice_order.max_tokens", 1000)
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
	}

	return value
}

// validateLLMConfig validates the LLM configuration
func validateLLMConfig(cfg *LLMConfig) error {
	if len(cfg.Providers) == 0 {
		return fmt.Errorf("no LLM providers configured - add llm.providers to config.yaml or set OPENROUTER_API_KEY")
	}

	enabledCount := 0
	priorityMap := make(map[int]bool)

	for i, provider := range cfg.Providers {
		if provider.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
		}
		if !provider.Enabled {
			continue
		}
		enabledCount++

		if provider.Priority <= 0 {
			return fmt.Errorf("provider %s: priority must be positive", provider.Name)
		}
		if priorityMap[provider.Priority] {
			return fmt.Errorf("provider %s: duplicate priority %d", provider.Name, provider.Priority)
		}
		priorityMap[provider.Priority] = true
	}

	if enabledCount == 0 {
		return fmt.Errorf("no enabled LLM providers")
	}

	return nil
}

func validateCatalogConfig(cfg *CatalogConfig) error {
	switch cfg.Driver {
	case "supabase":
		if cfg.Supabase.URL == "" || cfg.Supabase.Key == "" {
			return fmt.Errorf("catalog.supabase.url and catalog.supabase.key are required for the supabase driver")
		}
	case "postgres":
		if cfg.Postgres.DSN == "" {
			return fmt.Errorf("catalog.postgres.dsn is required for the postgres driver")
		}
	default:
		return fmt.Errorf("unknown catalog driver %q", cfg.Driver)
	}

	switch cfg.Cache.Driver {
	case "", "none", "memory", "redis":
	default:
		return fmt.Errorf("unknown catalog cache driver %q", cfg.Cache.Driver)
	}
	return nil
}

// validateGreetingTemplate requires exactly one %s so the greeting names the customer.
func validateGreetingTemplate(tmpl string) error {
	if tmpl == "" {
		return nil
	}
	verbs := 0
	for i := 0; i < len(tmpl); i++ {
		if tmpl[i] != '%' {
			continue
		}
		if i+1 >= len(tmpl) {
			return fmt.Errorf("voice_order.greeting_template: dangling %%")
		}
		i++
		switch tmpl[i] {
		case '%':
		case 's':
			verbs++
		default:
			return fmt.Errorf("voice_order.greeting_template: unsupported verb %%%c", tmpl[i])
		}
	}
	if verbs != 1 {
		return fmt.Errorf("voice_order.greeting_template must contain exactly one %%s, found %d", verbs)
	}
	return nil
}

func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		if i, ok := val.(int); ok {
			return i
		}
		// Handle float64 from JSON unmarshaling
		if f, ok := val.(float64); ok {
			return int(f)
		}
	}
	return 0
}
