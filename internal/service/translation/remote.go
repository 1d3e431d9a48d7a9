package translation

import (
	"context"
	"fmt"

	"galeria/backend/internal/config"
	"galeria/backend/internal/network"
	"galeria/backend/internal/service/ai"
)

//go:generate mockgen -source=remote.go -destination=../mock/mock_remote.go -package=mock

// RemoteTranslator is an online translation backend.
type RemoteTranslator interface {
	Name() string
	// Translate returns text in targetLang. Language codes are base codes such as "en".
	Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error)
}

const (
	ProviderGoogleWeb   = "google-web"
	ProviderGoogleCloud = "google-cloud"
	ProviderNone        = "none"
)

// NewRemoteTranslator builds the translator named by cfg.Provider. Provider
// "none" returns a nil translator: the engine then relies on the dictionary.
func NewRemoteTranslator(ctx context.Context, cfg config.TranslationConfig, clients *network.ClientFactory) (RemoteTranslator, error) {
	switch cfg.Provider {
	case "", ProviderGoogleWeb:
		return NewGoogleWebTranslator(cfg.BaseURL, cfg.Timeout, cfg.BrowserTLS, clients), nil
	case ProviderGoogleCloud:
		return NewGoogleCloudTranslator(ctx, cfg.CredentialsFile, cfg.APIKey)
	case ai.ProviderOpenAI, ai.ProviderAnthropic, ai.ProviderCompatible:
		provider, err := ai.NewProvider(ai.Config{
			Provider: cfg.Provider,
			APIKey:   cfg.APIKey,
			BaseURL:  cfg.BaseURL,
			Model:    cfg.Model,
		})
		if err != nil {
			return nil, fmt.Errorf("create %s provider: %w", cfg.Provider, err)
		}
		return NewLLMTranslator(provider, ai.NewRateLimiter(ai.DefaultRateLimit)), nil
	case ProviderNone:
		return nil, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, cfg.Provider)
	}
}
