package translation

import (
	"context"
	"fmt"

	translate "cloud.google.com/go/translate"
	"golang.org/x/text/language"
	"google.golang.org/api/option"
)

// GoogleCloudTranslator uses the Cloud Translation v2 API.
type GoogleCloudTranslator struct {
	client *translate.Client
}

// NewGoogleCloudTranslator authenticates with a service-account file, an API
// key, or application default credentials when both are empty.
func NewGoogleCloudTranslator(ctx context.Context, credentialsFile, apiKey string) (*GoogleCloudTranslator, error) {
	opts := []option.ClientOption{}
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	} else if apiKey != "" {
		opts = append(opts, option.WithAPIKey(apiKey))
	}

	client, err := translate.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create cloud translate client: %w", err)
	}
	return &GoogleCloudTranslator{client: client}, nil
}

func (t *GoogleCloudTranslator) Name() string {
	return ProviderGoogleCloud
}

func (t *GoogleCloudTranslator) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	target, err := language.Parse(targetLang)
	if err != nil {
		return "", &ProviderError{Provider: ProviderGoogleCloud, Err: fmt.Errorf("invalid target language: %w", err)}
	}

	opts := &translate.Options{Format: translate.Text}
	if source, err := language.Parse(sourceLang); err == nil {
		opts.Source = source
	}

	translations, err := t.client.Translate(ctx, []string{text}, target, opts)
	if err != nil {
		return "", &ProviderError{Provider: ProviderGoogleCloud, Err: err}
	}
	if len(translations) == 0 {
		return "", ErrEmptyTranslation
	}
	return translations[0].Text, nil
}

func (t *GoogleCloudTranslator) Close() error {
	return t.client.Close()
}
