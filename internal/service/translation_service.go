package service

import (
	"context"
	"strings"
	"sync"

	"galeria/backend/internal/model"
	"galeria/backend/internal/service/translation"
)

// Translator is the text translation contract; *translation.Engine implements it.
type Translator interface {
	Translate(ctx context.Context, text, sourceLang, targetLang string) string
}

// TranslationService translates text and whole records. It never fails: any
// field that cannot be translated keeps its original text.
type TranslationService interface {
	TranslateText(ctx context.Context, text, sourceLang, targetLang string) string
	// TranslateArtwork translates every textual field of a from the records' source language.
	TranslateArtwork(ctx context.Context, a model.Artwork, targetLang string) model.Artwork
	// TranslateArtworks translates records in parallel; output order equals input order.
	TranslateArtworks(ctx context.Context, records []model.Artwork, targetLang string) []model.Artwork
	SourceLanguage() string
}

type translationService struct {
	translator Translator
	sourceLang string
}

func NewTranslationService(translator Translator, sourceLang string) TranslationService {
	src := translation.NormalizeLanguage(sourceLang)
	if src == "" {
		src = "en"
	}
	return &translationService{translator: translator, sourceLang: src}
}

func (s *translationService) SourceLanguage() string {
	return s.sourceLang
}

func (s *translationService) TranslateText(ctx context.Context, text, sourceLang, targetLang string) string {
	return s.translator.Translate(ctx, text, sourceLang, targetLang)
}

func (s *translationService) needsTranslation(targetLang string) bool {
	tgt := translation.NormalizeLanguage(targetLang)
	return tgt != "" && tgt != s.sourceLang
}

func (s *translationService) TranslateArtwork(ctx context.Context, a model.Artwork, targetLang string) model.Artwork {
	if !s.needsTranslation(targetLang) {
		return a
	}
	out := a
	fields := []*string{&out.Title, &out.Artist, &out.Date, &out.Medium, &out.Department, &out.Dimensions, &out.Description}

	var wg sync.WaitGroup
	for _, field := range fields {
		if strings.TrimSpace(*field) == "" {
			continue
		}
		wg.Add(1)
		go func(field *string) {
			defer wg.Done()
			*field = s.translator.Translate(ctx, *field, s.sourceLang, targetLang)
		}(field)
	}
	wg.Wait()
	return out
}

func (s *translationService) TranslateArtworks(ctx context.Context, records []model.Artwork, targetLang string) []model.Artwork {
	if !s.needsTranslation(targetLang) || len(records) == 0 {
		return records
	}
	out := make([]model.Artwork, len(records))
	var wg sync.WaitGroup
	for i, a := range records {
		wg.Add(1)
		go func(i int, a model.Artwork) {
			defer wg.Done()
			out[i] = s.TranslateArtwork(ctx, a, targetLang)
		}(i, a)
	}
	wg.Wait()
	return out
}
