package handlers

import (
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/folio/internal/datastore"
	"github.com/nfrund/folio/internal/domain"
	"github.com/nfrund/folio/internal/format"
	"github.com/nfrund/folio/internal/page"
	"github.com/nfrund/folio/internal/view"
	dto "github.com/nfrund/folio/internal/view/dto/pages"
	"github.com/nfrund/folio/web/src/templates/layouts"
	"github.com/nfrund/folio/web/src/templates/partials"
	g "maragu.dev/gomponents"
)

// ImagesPath is the URL prefix the work images are served under.
const ImagesPath = "/images"

// Site holds what every page controller shares: the per-render store loader
// and the formatter for the configured language.
type Site struct {
	loader    *datastore.Loader
	formatter *format.Formatter
}

// NewSite creates a Site.
func NewSite(loader *datastore.Loader, formatter *format.Formatter) *Site {
	return &Site{loader: loader, formatter: formatter}
}

// Formatter returns the formatter used for display strings.
func (s *Site) Formatter() *format.Formatter {
	return s.formatter
}

// load builds a fresh store for the current request.
func (s *Site) load(c echo.Context) *datastore.Store {
	return s.loader.Load(c.Request().Context())
}

// render wraps content in the base layout of page k and writes it.
func (s *Site) render(c echo.Context, status int, k page.Kind, profile domain.Profile, flash view.FlashData, content g.Node) error {
	entry, _ := page.Get(k)
	labels := s.formatter.Labels()
	layout := layouts.Base(layouts.Page{
		Ctx:      c.Request().Context(),
		Title:    entry.Title,
		SiteName: profile.Name,
		Lang:     s.formatter.Lang(),
		Active:   entry.Href(),
		Flash:    flash,
		Titles:   partials.ToastTitles{Success: labels.ToastSuccess, Error: labels.ToastError},
	}, content)
	return c.Render(status, "", layout)
}

// fragment writes an htmx partial without the layout.
func (s *Site) fragment(c echo.Context, content g.Node) error {
	return c.Render(http.StatusOK, "", content)
}

// ImageURL returns the public URL of a work image.
func ImageURL(filename string) string {
	return ImagesPath + "/" + url.PathEscape(filename)
}

func (s *Site) cards(works []domain.Work, caption func(domain.Work) string) []dto.WorkCard {
	cards := make([]dto.WorkCard, 0, len(works))
	for _, w := range works {
		cards = append(cards, dto.WorkCard{
			Filename: w.Filename,
			Title:    w.Title,
			ImageURL: ImageURL(w.Filename),
			Caption:  caption(w),
		})
	}
	return cards
}
