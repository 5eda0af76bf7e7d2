package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/folio/internal/datastore"
	"github.com/nfrund/folio/internal/domain"
	"github.com/nfrund/folio/internal/middleware"
	"github.com/nfrund/folio/internal/page"
	"github.com/nfrund/folio/internal/view"
	dto "github.com/nfrund/folio/internal/view/dto/pages"
	"github.com/nfrund/folio/web/src/templates/pages"
	"github.com/nfrund/folio/web/src/templates/partials"
)

// GalleryHandler serves the gallery page, its filtered grid and the work
// detail modal.
type GalleryHandler struct {
	site *Site
}

// NewGalleryHandler creates a new GalleryHandler.
func NewGalleryHandler(site *Site) *GalleryHandler {
	return &GalleryHandler{site: site}
}

// currentFilter reads the category query parameter; missing means "all".
func currentFilter(c echo.Context) domain.Category {
	if cat := c.QueryParam("category"); cat != "" {
		return domain.Category(cat)
	}
	return domain.CategoryAll
}

func (h *GalleryHandler) data(store *datastore.Store, filter domain.Category) dto.GalleryData {
	f := h.site.formatter

	values := append([]domain.Category{domain.CategoryAll}, domain.Categories...)
	filters := make([]dto.FilterButton, 0, len(values))
	for _, v := range values {
		label := f.CategoryName(v)
		if v == domain.CategoryAll {
			label = f.Labels().All
		}
		filters = append(filters, dto.FilterButton{
			Value:  string(v),
			Label:  label,
			Active: v == filter,
		})
	}

	return dto.GalleryData{
		Filters: filters,
		Works: h.site.cards(store.WorksByCategory(filter), func(w domain.Work) string {
			return f.CategoryName(w.Category) + " | " + f.Price(w.Price)
		}),
		EmptyLabel: f.Labels().NoWorks,
	}
}

// GalleryGet renders the full gallery page.
func (h *GalleryHandler) GalleryGet(c echo.Context) error {
	store := h.site.load(c)
	content := pages.Gallery(h.data(store, currentFilter(c)))
	return h.site.render(c, http.StatusOK, page.Gallery, store.Profile(), view.GetFlashData(c), content)
}

// GridGet re-renders the filter bar and grid for the selected category.
func (h *GalleryHandler) GridGet(c echo.Context) error {
	store := h.site.load(c)
	return h.site.fragment(c, pages.GalleryContent(h.data(store, currentFilter(c))))
}

// findWork looks a work up by filename.
func findWork(store *datastore.Store, filename string) (domain.Work, error) {
	work, ok := store.WorkByFilename(filename)
	if !ok {
		return domain.Work{}, fmt.Errorf("work %q: %w", filename, domain.ErrNotFound)
	}
	return work, nil
}

// WorkGet renders the detail modal of one work. An unknown filename yields
// 204 with an empty body, which leaves the modal closed.
func (h *GalleryHandler) WorkGet(c echo.Context) error {
	store := h.site.load(c)
	work, err := findWork(store, c.Param("filename"))
	if errors.Is(err, domain.ErrNotFound) {
		middleware.FromContext(c.Request().Context()).Debug("Work detail requested for unknown work", "error", err)
		return c.NoContent(http.StatusNoContent)
	}

	f := h.site.formatter
	description := work.Description
	if description == "" {
		description = f.Labels().NoDescription
	}

	return h.site.fragment(c, partials.WorkModal(dto.WorkDetail{
		Title:       work.Title,
		ImageURL:    ImageURL(work.Filename),
		Category:    f.CategoryName(work.Category),
		Date:        work.Date,
		Description: description,
		Price:       f.Price(work.Price),
	}))
}
