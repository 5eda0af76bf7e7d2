package partials

import (
	"net/url"

	"github.com/nfrund/folio/internal/view/dto/pages"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	h "maragu.dev/gomponents/html"
)

// WorkDetailURL is the fragment endpoint of the work detail modal.
func WorkDetailURL(filename string) string {
	return "/gallery/works/" + url.PathEscape(filename)
}

// WorkItem renders one grid tile. Clicking it loads the detail modal.
func WorkItem(card pages.WorkCard) g.Node {
	return h.Div(
		h.Class("gallery-item"),
		hx.Get(WorkDetailURL(card.Filename)),
		hx.Target("#modal-root"),
		hx.Swap("innerHTML"),
		h.Img(h.Src(card.ImageURL), h.Alt(card.Title), g.Attr("loading", "lazy")),
		h.Div(
			h.Class("gallery-overlay"),
			h.H3(h.Class("gallery-title"), g.Text(card.Title)),
			h.P(h.Class("gallery-description"), g.Text(card.Caption)),
		),
	)
}

// WorkGrid renders the tiles, or the empty-state message when there are none.
func WorkGrid(id string, cards []pages.WorkCard, emptyLabel string) g.Node {
	if len(cards) == 0 {
		return h.Div(
			h.ID(id),
			h.Class("gallery-grid"),
			h.Div(h.Class("gallery-empty"), h.P(g.Text(emptyLabel))),
		)
	}
	return h.Div(
		h.ID(id),
		h.Class("gallery-grid"),
		g.Map(cards, WorkItem),
	)
}
