package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	AppName    = "Galeria"
	AppVersion = "1.0.0"
	AppRepo    = "https://github.com/galeria-app/galeria"
)

// UserAgent identifies the backend to the museum APIs.
var UserAgent = "Mozilla/5.0 (compatible; " + AppName + "/" + AppVersion + "; +" + AppRepo + ")"

// Chrome headers for TLS fingerprinting (must match azuretls Chrome profile version)
const (
	ChromeUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/135.0.0.0 Safari/537.36"
	ChromeSecChUa   = `"Google Chrome";v="135", "Chromium";v="135", "Not-A.Brand";v="8"`
)

// envPrefix is prepended to every environment variable, e.g. GALERIA_ADDR.
const envPrefix = "GALERIA"

type ArticConfig struct {
	BaseURL       string
	IIIFBaseURL   string
	DetailTimeout time.Duration
}

type MetConfig struct {
	BaseURL       string
	BrowseQuery   string
	DetailTimeout time.Duration
}

type PagingConfig struct {
	PrimaryPageSize          int
	SecondaryPageSize        int
	CompactPrimaryPageSize   int
	CompactSecondaryPageSize int
	SearchLimit              int
	SearchSlice              int
}

type TranslationConfig struct {
	// Provider is one of google-web, google-cloud, openai, anthropic, compatible, none.
	Provider string
	// BaseURL overrides the provider endpoint; empty uses the provider default.
	BaseURL         string
	APIKey          string
	Model           string
	CredentialsFile string
	Timeout         time.Duration
	BrowserTLS      bool
	SourceLanguage  string
	DefaultLanguage string
}

type CacheConfig struct {
	// Backend is memory or redis.
	Backend   string
	RedisURL  string
	KeyPrefix string
	TTL       time.Duration
}

type Config struct {
	Addr            string
	StaticDir       string
	LogLevel        string
	LogFormat       string
	ProxyURL        string
	UpstreamTimeout time.Duration
	RateLimit       float64
	RateBurst       int
	WarmInterval    time.Duration
	WarmLanguages   []string

	Artic       ArticConfig
	Met         MetConfig
	Paging      PagingConfig
	Translation TranslationConfig
	Cache       CacheConfig
}

// Load reads configuration from GALERIA_* environment variables and, when
// GALERIA_CONFIG names a file, from that file. Environment wins over the file.
func Load() (Config, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if path := os.Getenv(envPrefix + "_CONFIG"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	staticDir := v.GetString("static_dir")
	if staticDir == "" {
		staticDir = detectStaticDir()
	}
	if staticDir != "" {
		staticDir = filepath.Clean(staticDir)
	}

	cfg := Config{
		Addr:            v.GetString("addr"),
		StaticDir:       staticDir,
		LogLevel:        v.GetString("log.level"),
		LogFormat:       v.GetString("log.format"),
		ProxyURL:        strings.TrimSpace(v.GetString("proxy_url")),
		UpstreamTimeout: v.GetDuration("upstream_timeout"),
		RateLimit:       v.GetFloat64("rate.limit"),
		RateBurst:       v.GetInt("rate.burst"),
		WarmInterval:    v.GetDuration("warm.interval"),
		WarmLanguages:   splitList(v.GetString("warm.languages")),
		Artic: ArticConfig{
			BaseURL:       strings.TrimRight(v.GetString("artic.base_url"), "/"),
			IIIFBaseURL:   strings.TrimRight(v.GetString("artic.iiif_url"), "/"),
			DetailTimeout: v.GetDuration("artic.detail_timeout"),
		},
		Met: MetConfig{
			BaseURL:       strings.TrimRight(v.GetString("met.base_url"), "/"),
			BrowseQuery:   v.GetString("met.browse_query"),
			DetailTimeout: v.GetDuration("met.detail_timeout"),
		},
		Paging: PagingConfig{
			PrimaryPageSize:          v.GetInt("paging.primary"),
			SecondaryPageSize:        v.GetInt("paging.secondary"),
			CompactPrimaryPageSize:   v.GetInt("paging.compact_primary"),
			CompactSecondaryPageSize: v.GetInt("paging.compact_secondary"),
			SearchLimit:              v.GetInt("paging.search_limit"),
			SearchSlice:              v.GetInt("paging.search_slice"),
		},
		Translation: TranslationConfig{
			Provider:        strings.ToLower(v.GetString("translate.provider")),
			BaseURL:         strings.TrimRight(v.GetString("translate.base_url"), "/"),
			APIKey:          v.GetString("translate.api_key"),
			Model:           v.GetString("translate.model"),
			CredentialsFile: v.GetString("translate.credentials"),
			Timeout:         v.GetDuration("translate.timeout"),
			BrowserTLS:      v.GetBool("translate.browser_tls"),
			SourceLanguage:  v.GetString("translate.source_lang"),
			DefaultLanguage: v.GetString("translate.default_lang"),
		},
		Cache: CacheConfig{
			Backend:   strings.ToLower(v.GetString("cache.backend")),
			RedisURL:  v.GetString("cache.redis_url"),
			KeyPrefix: v.GetString("cache.key_prefix"),
			TTL:       v.GetDuration("cache.ttl"),
		},
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("addr", ":8080")
	v.SetDefault("static_dir", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("proxy_url", "")
	v.SetDefault("upstream_timeout", 15*time.Second)
	v.SetDefault("rate.limit", 20.0)
	v.SetDefault("rate.burst", 40)
	v.SetDefault("warm.interval", 30*time.Minute)
	v.SetDefault("warm.languages", "pt")

	v.SetDefault("artic.base_url", "https://api.artic.edu/api/v1")
	v.SetDefault("artic.iiif_url", "https://www.artic.edu/iiif/2")
	v.SetDefault("artic.detail_timeout", 5*time.Second)
	v.SetDefault("met.base_url", "https://collectionapi.metmuseum.org/public/collection/v1")
	v.SetDefault("met.browse_query", "painting")
	v.SetDefault("met.detail_timeout", 3*time.Second)

	v.SetDefault("paging.primary", 40)
	v.SetDefault("paging.secondary", 30)
	v.SetDefault("paging.compact_primary", 20)
	v.SetDefault("paging.compact_secondary", 10)
	v.SetDefault("paging.search_limit", 30)
	v.SetDefault("paging.search_slice", 20)

	v.SetDefault("translate.provider", "google-web")
	v.SetDefault("translate.base_url", "")
	v.SetDefault("translate.api_key", "")
	v.SetDefault("translate.model", "")
	v.SetDefault("translate.credentials", "")
	v.SetDefault("translate.timeout", 3*time.Second)
	v.SetDefault("translate.browser_tls", false)
	v.SetDefault("translate.source_lang", "en")
	v.SetDefault("translate.default_lang", "en")

	v.SetDefault("cache.backend", "memory")
	v.SetDefault("cache.redis_url", "redis://localhost:6379/0")
	v.SetDefault("cache.key_prefix", "galeria:tr:")
	v.SetDefault("cache.ttl", time.Duration(0))
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func detectStaticDir() string {
	candidates := []string{
		"./frontend/dist",
		"../frontend/dist",
	}
	for _, candidate := range candidates {
		indexPath := filepath.Join(candidate, "index.html")
		if info, err := os.Stat(indexPath); err == nil && !info.IsDir() {
			return candidate
		}
	}
	return ""
}
