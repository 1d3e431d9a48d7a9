package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"galeria/backend/internal/config"
	"galeria/backend/internal/service"
	"galeria/backend/internal/service/translation"
)

// TranslationStats reports translation engine state. *translation.Engine implements it.
type TranslationStats interface {
	Provider() string
	CacheLen() int
	Stats() translation.Stats
}

type SystemHandler struct {
	translations service.TranslationService
	stats        TranslationStats
}

type categoryResponse struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

type healthResponse struct {
	Status      string            `json:"status"`
	Version     string            `json:"version"`
	Translator  string            `json:"translator"`
	CacheSize   int               `json:"cacheSize"`
	Resolutions translation.Stats `json:"resolutions"`
}

func NewSystemHandler(translations service.TranslationService, stats TranslationStats) *SystemHandler {
	return &SystemHandler{translations: translations, stats: stats}
}

func (h *SystemHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/categories", h.Categories)
	g.GET("/health", h.Health)
}

// Categories returns the facet taxonomy.
// @Summary List categories
// @Description The fixed category taxonomy, labels translated to lang
// @Tags system
// @Produce json
// @Param lang query string false "Target language (e.g. pt)"
// @Success 200 {array} categoryResponse
// @Router /categories [get]
func (h *SystemHandler) Categories(c echo.Context) error {
	ctx := c.Request().Context()
	lang := c.QueryParam("lang")
	src := h.translations.SourceLanguage()

	categories := service.Categories()
	response := make([]categoryResponse, 0, len(categories))
	for _, cat := range categories {
		label := cat.Label
		if lang != "" {
			label = h.translations.TranslateText(ctx, label, src, lang)
		}
		response = append(response, categoryResponse{ID: string(cat.ID), Label: label})
	}
	return c.JSON(http.StatusOK, response)
}

// Health reports liveness and translation cache state.
// @Summary Health check
// @Tags system
// @Produce json
// @Success 200 {object} healthResponse
// @Router /health [get]
func (h *SystemHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, healthResponse{
		Status:      "ok",
		Version:     config.AppVersion,
		Translator:  h.stats.Provider(),
		CacheSize:   h.stats.CacheLen(),
		Resolutions: h.stats.Stats(),
	})
}
