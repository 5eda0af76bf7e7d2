package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/folio/internal/datastore"
	"github.com/nfrund/folio/internal/domain"
	"github.com/nfrund/folio/internal/page"
	"github.com/nfrund/folio/internal/view"
	dto "github.com/nfrund/folio/internal/view/dto/pages"
	"github.com/nfrund/folio/web/src/templates/pages"
)

// HomeHandler handles requests for the home page.
type HomeHandler struct {
	site     *Site
	featured int
}

// NewHomeHandler creates a new HomeHandler showing featured works. Zero
// hides the featured section; a negative count uses
// datastore.DefaultFeaturedCount.
func NewHomeHandler(site *Site, featured int) *HomeHandler {
	if featured < 0 {
		featured = datastore.DefaultFeaturedCount
	}
	return &HomeHandler{site: site, featured: featured}
}

// HomeGet renders the landing page with the featured works.
func (h *HomeHandler) HomeGet(c echo.Context) error {
	store := h.site.load(c)
	f := h.site.formatter

	data := dto.HomeData{
		Featured: h.site.cards(store.FeaturedWorks(h.featured), func(w domain.Work) string {
			return f.CategoryName(w.Category)
		}),
		EmptyLabel:   f.Labels().NoWorksYet,
		HideFeatured: h.featured == 0,
	}

	return h.site.render(c, http.StatusOK, page.Home, store.Profile(), view.GetFlashData(c), pages.Home(data))
}
