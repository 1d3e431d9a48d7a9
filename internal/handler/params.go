package handler

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"galeria/backend/internal/model"
	"galeria/backend/internal/service"
)

// parsePage is lenient: anything that is not a positive integer is page 1.
func parsePage(c echo.Context) int {
	page, err := strconv.Atoi(strings.TrimSpace(c.QueryParam("page")))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

func parseBoolParam(c echo.Context, name string) bool {
	v, err := strconv.ParseBool(strings.TrimSpace(c.QueryParam(name)))
	return err == nil && v
}

// parseMuseumFilter maps "" and "all" to no filter.
func parseMuseumFilter(raw string) (model.Museum, error) {
	v := strings.ToLower(strings.TrimSpace(raw))
	if v == "" || v == "all" {
		return "", nil
	}
	m := model.Museum(v)
	if !m.Valid() {
		return "", fmt.Errorf("%w: museum %q", service.ErrInvalid, raw)
	}
	return m, nil
}

func parseCategoryFilter(raw string) (service.Category, error) {
	c, ok := service.ParseCategory(raw)
	if !ok {
		return "", fmt.Errorf("%w: category %q", service.ErrInvalid, raw)
	}
	return c, nil
}
