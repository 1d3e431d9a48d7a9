package translation

import (
	"context"

	"galeria/backend/internal/service/ai"
)

// LLMTranslator translates through a chat-completion provider.
type LLMTranslator struct {
	provider ai.Provider
	limiter  *ai.RateLimiter
}

func NewLLMTranslator(provider ai.Provider, limiter *ai.RateLimiter) *LLMTranslator {
	return &LLMTranslator{provider: provider, limiter: limiter}
}

func (t *LLMTranslator) Name() string {
	return t.provider.Name()
}

func (t *LLMTranslator) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	if t.limiter != nil {
		if err := t.limiter.Wait(ctx); err != nil {
			return "", &ProviderError{Provider: t.provider.Name(), Err: err}
		}
	}

	prompt := ai.GetTranslateTextPrompt("museum catalogue text", sourceLang, targetLang)
	out, err := t.provider.Complete(ctx, prompt, ai.WrapInputSimple(text))
	if err != nil {
		return "", &ProviderError{Provider: t.provider.Name(), Err: err}
	}
	return ai.CleanCompletion(out), nil
}
