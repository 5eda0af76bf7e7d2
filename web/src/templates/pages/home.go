package pages

import (
	dto "github.com/nfrund/folio/internal/view/dto/pages"
	"github.com/nfrund/folio/web/src/templates/partials"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Home renders the landing page with the featured works.
func Home(data dto.HomeData) g.Node {
	return g.Group{
		h.Section(
			h.Class("hero"),
			h.H1(h.Class("hero-title"), g.Text("Capturing light, painting moments")),
			h.A(h.Class("btn btn-primary"), h.Href("/gallery.html"), g.Text("View the gallery")),
		),
		g.If(!data.HideFeatured, h.Section(
			h.Class("featured"),
			h.H2(h.Class("section-title"), g.Text("Featured works")),
			partials.WorkGrid("featured-works", data.Featured, data.EmptyLabel),
		)),
	}
}
