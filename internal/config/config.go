// README: Config loader reading HTTP, search, and completion settings from an injected Source.
package config

import (
	"strconv"
	"strings"
	"time"

	"tripsmith/internal/types"
)

const (
	DefaultHTTPAddr       = ":8080"
	DefaultRequestTimeout = 90 * time.Second
	DefaultTemplatePath   = "templates/itinerary_template_v1.md"

	DefaultNvidiaBaseURL = "https://integrate.api.nvidia.com/v1"
	DefaultNvidiaModel   = "meta/llama-3.1-70b-instruct"
	DefaultGeminiModel   = "gemini-2.0-flash"
	DefaultTemperature   = 0.7
	DefaultTopP          = 0.9
	DefaultMaxTokens     = 2048

	ProviderNvidia = "nvidia"
	ProviderGemini = "gemini"
)

type Config struct {
	HTTP struct {
		Addr           string
		RequestTimeout time.Duration
	}
	Tools struct {
		// Token guards the tool endpoints when non-empty.
		Token string
	}
	Itinerary struct {
		TemplatePath string
	}
}

// ChatConfig holds completion-provider settings. It is resolved once per
// invocation and never mutated afterwards.
type ChatConfig struct {
	Provider    string
	BaseURL     string
	APIKey      string
	ModelName   string
	Temperature float64
	TopP        float64
	MaxTokens   int
}

// SearchConfig holds search-provider settings.
type SearchConfig struct {
	APIKey string
}

// Load builds the server configuration. Provider credentials are not read here;
// they are resolved per invocation by LoadChat and LoadSearch.
func Load(src Source) (Config, error) {
	var cfg Config
	cfg.HTTP.Addr = lookupOrDefault(src, "TRIPSMITH_HTTP_ADDR", DefaultHTTPAddr)
	timeout, err := lookupDuration(src, "TRIPSMITH_REQUEST_TIMEOUT", DefaultRequestTimeout)
	if err != nil {
		return Config{}, err
	}
	cfg.HTTP.RequestTimeout = timeout
	cfg.Tools.Token = lookupOrDefault(src, "TRIPSMITH_TOOLS_TOKEN", "")
	cfg.Itinerary.TemplatePath = lookupOrDefault(src, "ITINERARY_TEMPLATE_PATH", DefaultTemplatePath)
	return cfg, nil
}

// LoadChat resolves the completion settings. A missing API key fails with a
// ConfigurationError so no request is ever sent without credentials.
func LoadChat(src Source) (ChatConfig, error) {
	provider := strings.ToLower(lookupOrDefault(src, "COMPLETION_PROVIDER", ProviderNvidia))

	var cfg ChatConfig
	cfg.Provider = provider
	switch provider {
	case ProviderNvidia:
		cfg.BaseURL = strings.TrimRight(lookupOrDefault(src, "NVIDIA_BASE_URL", DefaultNvidiaBaseURL), "/")
		cfg.APIKey = lookupOrDefault(src, "NVIDIA_API_KEY", "")
		cfg.ModelName = lookupOrDefault(src, "MODEL_NAME", DefaultNvidiaModel)
		if cfg.APIKey == "" {
			return ChatConfig{}, &types.ConfigurationError{
				Key:  "NVIDIA_API_KEY",
				Hint: "Create a .env from .env.template and set your key, or add it to [settings] in the config file.",
			}
		}
	case ProviderGemini:
		cfg.APIKey = firstNonEmpty(lookupOrDefault(src, "GEMINI_API_KEY", ""), lookupOrDefault(src, "GOOGLE_API_KEY", ""))
		cfg.ModelName = lookupOrDefault(src, "MODEL_NAME", DefaultGeminiModel)
		if cfg.APIKey == "" {
			return ChatConfig{}, &types.ConfigurationError{
				Key:  "GEMINI_API_KEY",
				Hint: "Set GEMINI_API_KEY (or GOOGLE_API_KEY) when COMPLETION_PROVIDER=gemini.",
			}
		}
	default:
		return ChatConfig{}, &types.ConfigurationError{
			Key:    "COMPLETION_PROVIDER",
			Reason: "unsupported",
			Hint:   "Supported providers are nvidia and gemini, got " + strconv.Quote(provider) + ".",
		}
	}

	var err error
	if cfg.Temperature, err = lookupFloat(src, "TEMPERATURE", DefaultTemperature); err != nil {
		return ChatConfig{}, err
	}
	if cfg.TopP, err = lookupFloat(src, "TOP_P", DefaultTopP); err != nil {
		return ChatConfig{}, err
	}
	if cfg.MaxTokens, err = lookupInt(src, "MAX_TOKENS", DefaultMaxTokens); err != nil {
		return ChatConfig{}, err
	}
	return cfg, nil
}

// LoadSearch resolves the search-provider settings.
func LoadSearch(src Source) (SearchConfig, error) {
	key := lookupOrDefault(src, "TAVILY_API_KEY", "")
	if key == "" {
		return SearchConfig{}, &types.ConfigurationError{
			Key:  "TAVILY_API_KEY",
			Hint: "Add it to .env (not only .env.template) or to [settings] in the config file.",
		}
	}
	return SearchConfig{APIKey: key}, nil
}

func lookupOrDefault(src Source, key, def string) string {
	if src == nil {
		return def
	}
	if v, ok := src.Lookup(key); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return def
}

func lookupFloat(src Source, key string, def float64) (float64, error) {
	v := lookupOrDefault(src, key, "")
	if v == "" {
		return def, nil
	}
	n, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, &types.ConfigurationError{Key: key, Reason: "invalid", Hint: "Expected a number, got " + strconv.Quote(v) + "."}
	}
	return n, nil
}

func lookupInt(src Source, key string, def int) (int, error) {
	v := lookupOrDefault(src, key, "")
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, &types.ConfigurationError{Key: key, Reason: "invalid", Hint: "Expected an integer, got " + strconv.Quote(v) + "."}
	}
	return n, nil
}

func lookupDuration(src Source, key string, def time.Duration) (time.Duration, error) {
	v := lookupOrDefault(src, key, "")
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, &types.ConfigurationError{Key: key, Reason: "invalid", Hint: "Expected a duration such as 90s, got " + strconv.Quote(v) + "."}
	}
	return d, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
