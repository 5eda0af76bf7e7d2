package pages

import (
	dto "github.com/nfrund/folio/internal/view/dto/pages"
	"github.com/nfrund/folio/web/src/templates/partials"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	h "maragu.dev/gomponents/html"
)

// GalleryGridURL is the fragment endpoint re-rendering the filter bar and grid.
const GalleryGridURL = "/gallery/grid"

// Gallery renders the full gallery page.
func Gallery(data dto.GalleryData) g.Node {
	return h.Section(
		h.Class("gallery"),
		h.H1(h.Class("section-title"), g.Text("Gallery")),
		GalleryContent(data),
	)
}

// GalleryContent is the swappable part of the gallery: filter bar plus grid.
func GalleryContent(data dto.GalleryData) g.Node {
	return h.Div(
		h.ID("gallery-content"),
		h.Div(
			h.Class("gallery-filters"),
			g.Map(data.Filters, filterButton),
		),
		partials.WorkGrid("gallery-grid", data.Works, data.EmptyLabel),
	)
}

func filterButton(f dto.FilterButton) g.Node {
	class := "btn filter-btn"
	if f.Active {
		class += " active btn-primary"
	}
	return h.Button(
		h.Type("button"),
		h.Class(class),
		g.Attr("data-filter", f.Value),
		hx.Get(GalleryGridURL+"?category="+f.Value),
		hx.Target("#gallery-content"),
		hx.Swap("outerHTML"),
		hx.PushURL("/gallery.html?category="+f.Value),
		g.Text(f.Label),
	)
}
