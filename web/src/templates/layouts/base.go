package layouts

import (
	"context"

	"github.com/nfrund/folio/internal/page"
	"github.com/nfrund/folio/internal/view"
	"github.com/nfrund/folio/web/src/templates/partials"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// HTMXScript is the htmx build the pages are written against.
const HTMXScript = "https://unpkg.com/htmx.org@2.0.4"

// NavItem is one entry of the top navigation.
type NavItem struct {
	Label string
	Href  string
}

// Nav lists the site pages in menu order.
var Nav = func() []NavItem {
	items := make([]NavItem, 0, len(page.Table))
	for _, e := range page.Table {
		items = append(items, NavItem{Label: e.Title, Href: e.Href()})
	}
	return items
}()

// Page carries what the base layout needs besides the page body.
type Page struct {
	Ctx      context.Context
	Title    string
	SiteName string
	Lang     string
	Active   string // href of the current nav entry
	Flash    view.FlashData
	Titles   partials.ToastTitles
}

// Base wraps content in the shared document shell.
func Base(p Page, content g.Node) g.Node {
	return h.Doctype(
		h.HTML(
			h.Lang(p.Lang),
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
				g.El("title", g.Text(CalculateTitle(p.Title, p.SiteName))),
				h.Link(h.Rel("stylesheet"), h.Href("/static/css/site.css")),
				h.Script(h.Src(HTMXScript), g.Attr("defer")),
				h.Script(h.Src("/static/js/site.js"), g.Attr("defer")),
			),
			h.Body(
				h.Header(
					h.Class("site-header"),
					h.A(h.Class("site-logo"), h.Href("/"), g.Text(p.SiteName)),
					h.Nav(
						h.Class("site-nav"),
						g.Map(Nav, func(item NavItem) g.Node {
							class := "nav-link"
							if item.Href == p.Active {
								class += " active"
							}
							return h.A(h.Class(class), h.Href(item.Href), g.Text(item.Label))
						}),
					),
				),
				h.Main(h.Class("site-main"), content),
				h.Div(h.ID("modal-root")),
				h.Div(
					h.ID("toast-root"),
					view.Templ(p.Ctx, partials.Toasts(p.Flash, p.Titles)),
				),
				h.Footer(h.Class("site-footer"), g.Text(p.SiteName)),
			),
		),
	)
}
