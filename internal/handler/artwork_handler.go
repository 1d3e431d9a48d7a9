package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"galeria/backend/internal/model"
	"galeria/backend/internal/service"
)

type ArtworkHandler struct {
	service service.ArtworkService
}

type artworkResponse struct {
	ID          string `json:"id"`
	Key         string `json:"key"`
	Title       string `json:"title"`
	Artist      string `json:"artist"`
	Date        string `json:"date"`
	ImageURL    string `json:"imageUrl"`
	Medium      string `json:"medium,omitempty"`
	Department  string `json:"department,omitempty"`
	Dimensions  string `json:"dimensions,omitempty"`
	Description string `json:"description,omitempty"`
	Museum      string `json:"museum"`
	MuseumName  string `json:"museumName"`
}

type browseResponse struct {
	Artworks   []artworkResponse `json:"artworks"`
	Categories []string          `json:"categories"`
	Page       int               `json:"page"`
	TotalPages int               `json:"totalPages"`
	TotalCount int               `json:"totalCount"`
	Lang       string            `json:"lang"`
}

type searchResponse struct {
	Query      string            `json:"query"`
	Artworks   []artworkResponse `json:"artworks"`
	Categories []string          `json:"categories"`
	Lang       string            `json:"lang"`
}

func NewArtworkHandler(service service.ArtworkService) *ArtworkHandler {
	return &ArtworkHandler{service: service}
}

func (h *ArtworkHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/artworks", h.Browse)
	g.GET("/artworks/search", h.Search)
	g.GET("/artworks/:museum/:id", h.Get)
}

// Browse returns one merged catalog page.
// @Summary Browse artworks
// @Description Merge one page of both museum catalogs, dropping incomplete records
// @Tags artworks
// @Produce json
// @Param page query int false "Page number, 1-based"
// @Param compact query bool false "Use the smaller mobile page sizes"
// @Param lang query string false "Target language (e.g. pt)"
// @Param museum query string false "Museum filter: all, artic or met"
// @Param type query string false "Category filter"
// @Success 200 {object} browseResponse
// @Failure 400 {object} errorResponse
// @Router /artworks [get]
func (h *ArtworkHandler) Browse(c echo.Context) error {
	museum, err := parseMuseumFilter(c.QueryParam("museum"))
	if err != nil {
		return writeServiceError(c, err)
	}
	category, err := parseCategoryFilter(c.QueryParam("type"))
	if err != nil {
		return writeServiceError(c, err)
	}

	result := h.service.Browse(c.Request().Context(), service.BrowseParams{
		Page:     parsePage(c),
		Compact:  parseBoolParam(c, "compact"),
		Language: c.QueryParam("lang"),
		Museum:   museum,
		Category: category,
	})
	return c.JSON(http.StatusOK, browseResponse{
		Artworks:   toArtworkResponses(result.Artworks),
		Categories: toCategoryIDs(result.Categories),
		Page:       result.Page,
		TotalPages: result.TotalPages,
		TotalCount: result.TotalCount,
		Lang:       result.Language,
	})
}

// Search returns ranked results from both museums.
// @Summary Search artworks
// @Description Full-text search over both museums, ranked by relevance. A blank query browses page 1.
// @Tags artworks
// @Produce json
// @Param q query string false "Search query"
// @Param lang query string false "Target language (e.g. pt)"
// @Param museum query string false "Museum filter: all, artic or met"
// @Param type query string false "Category filter"
// @Success 200 {object} searchResponse
// @Failure 400 {object} errorResponse
// @Router /artworks/search [get]
func (h *ArtworkHandler) Search(c echo.Context) error {
	museum, err := parseMuseumFilter(c.QueryParam("museum"))
	if err != nil {
		return writeServiceError(c, err)
	}
	category, err := parseCategoryFilter(c.QueryParam("type"))
	if err != nil {
		return writeServiceError(c, err)
	}

	result := h.service.Search(c.Request().Context(), service.SearchParams{
		Query:    c.QueryParam("q"),
		Language: c.QueryParam("lang"),
		Museum:   museum,
		Category: category,
	})
	return c.JSON(http.StatusOK, searchResponse{
		Query:      result.Query,
		Artworks:   toArtworkResponses(result.Artworks),
		Categories: toCategoryIDs(result.Categories),
		Lang:       result.Language,
	})
}

// Get returns one artwork with its high-resolution image.
// @Summary Get an artwork
// @Description Fetch the detail record of one artwork, description included
// @Tags artworks
// @Produce json
// @Param museum path string true "Museum: artic or met"
// @Param id path string true "Artwork ID within the museum"
// @Param lang query string false "Target language (e.g. pt)"
// @Success 200 {object} artworkResponse
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Failure 503 {object} errorResponse
// @Router /artworks/{museum}/{id} [get]
func (h *ArtworkHandler) Get(c echo.Context) error {
	museum := model.Museum(strings.ToLower(c.Param("museum")))
	artwork, err := h.service.GetByID(c.Request().Context(), museum, c.Param("id"), c.QueryParam("lang"))
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toArtworkResponse(*artwork))
}

func toArtworkResponse(a model.Artwork) artworkResponse {
	return artworkResponse{
		ID:          a.ID,
		Key:         a.Key(),
		Title:       a.Title,
		Artist:      a.Artist,
		Date:        a.Date,
		ImageURL:    a.ImageURL,
		Medium:      a.Medium,
		Department:  a.Department,
		Dimensions:  a.Dimensions,
		Description: a.Description,
		Museum:      string(a.Museum),
		MuseumName:  a.Museum.DisplayName(),
	}
}

func toArtworkResponses(records []model.Artwork) []artworkResponse {
	out := make([]artworkResponse, 0, len(records))
	for _, a := range records {
		out = append(out, toArtworkResponse(a))
	}
	return out
}

func toCategoryIDs(categories []service.Category) []string {
	out := make([]string, 0, len(categories))
	for _, c := range categories {
		out = append(out, string(c))
	}
	return out
}
