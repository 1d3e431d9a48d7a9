package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"galeria/backend/internal/service"
)

type TranslateHandler struct {
	service service.TranslationService
}

type translateRequest struct {
	Text       string `json:"text"`
	SourceLang string `json:"sourceLang"`
	TargetLang string `json:"targetLang"`
}

type translateResponse struct {
	TranslatedText string `json:"translatedText"`
}

func NewTranslateHandler(service service.TranslationService) *TranslateHandler {
	return &TranslateHandler{service: service}
}

func (h *TranslateHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/translate", h.Translate)
}

// Translate translates one string.
// @Summary Translate text
// @Description Translate with the remote provider, falling back to the art dictionary and then the original text
// @Tags translation
// @Accept json
// @Produce json
// @Param request body translateRequest true "Text and language pair"
// @Success 200 {object} translateResponse
// @Failure 400 {object} errorResponse
// @Router /translate [post]
func (h *TranslateHandler) Translate(c echo.Context) error {
	var req translateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	if req.Text == "" || strings.TrimSpace(req.SourceLang) == "" || strings.TrimSpace(req.TargetLang) == "" {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "text, sourceLang and targetLang are required"})
	}

	translated := h.service.TranslateText(c.Request().Context(), req.Text, req.SourceLang, req.TargetLang)
	return c.JSON(http.StatusOK, translateResponse{TranslatedText: translated})
}
