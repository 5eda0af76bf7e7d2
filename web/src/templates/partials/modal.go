package partials

import (
	"github.com/nfrund/folio/internal/view/dto/pages"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

const closeIcon = `<svg viewBox="0 0 24 24"><path d="M19 6.41L17.59 5 12 10.59 6.41 5 5 6.41 10.59 12 5 17.59 6.41 19 12 13.41 17.59 19 19 17.59 13.41 12z"/></svg>`

func modalShell(id, title string, body ...g.Node) g.Node {
	return h.Div(
		h.ID(id),
		h.Class("modal-overlay active"),
		g.Attr("data-modal"),
		h.Div(
			h.Class("modal"),
			h.Div(
				h.Class("modal-header"),
				h.H2(h.Class("modal-title"), g.Text(title)),
				h.Button(h.Type("button"), h.Class("modal-close"), g.Attr("data-modal-close"), g.Raw(closeIcon)),
			),
			g.Group(body),
		),
	)
}

// WorkModal renders the work detail dialog.
func WorkModal(d pages.WorkDetail) g.Node {
	return modalShell("work-modal", d.Title,
		h.Div(
			h.Class("modal-body"),
			h.Img(h.ID("modal-image"), h.Src(d.ImageURL), h.Alt(d.Title)),
			h.Dl(
				h.Class("work-meta"),
				h.Dt(g.Text("Category")), h.Dd(h.ID("modal-category"), g.Text(d.Category)),
				h.Dt(g.Text("Date")), h.Dd(h.ID("modal-date"), g.Text(d.Date)),
				h.Dt(g.Text("Price")), h.Dd(h.ID("modal-price"), g.Text(d.Price)),
			),
			h.P(h.ID("modal-description"), g.Text(d.Description)),
		),
		h.Div(
			h.Class("modal-footer"),
			h.Button(h.Type("button"), h.ID("modal-close-btn"), h.Class("btn"), g.Attr("data-modal-close"), g.Text("Close")),
		),
	)
}

// QRCodeModal renders the dialog showing a messaging platform's QR code.
func QRCodeModal(d pages.QRCodeData) g.Node {
	return modalShell("qrcode-modal", d.Title,
		h.Div(
			h.Class("modal-body qrcode"),
			h.Img(h.Src(d.ImageURL), h.Alt(d.Title)),
			h.P(g.Text(d.Hint)),
		),
	)
}
