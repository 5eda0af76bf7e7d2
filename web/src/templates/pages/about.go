package pages

import (
	"strconv"

	dto "github.com/nfrund/folio/internal/view/dto/pages"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

const defaultAvatarIcon = `<svg class="avatar-default" viewBox="0 0 24 24"><path d="M12 12c2.21 0 4-1.79 4-4s-1.79-4-4-4-4 1.79-4 4 1.79 4 4 4zm0 2c-2.67 0-8 1.34-8 4v2h16v-2c0-2.66-5.33-4-8-4z"/></svg>`

// About renders the artist's profile page. DescriptionHTML must already be sanitized.
func About(data dto.AboutData) g.Node {
	return h.Section(
		h.Class("about"),
		h.Div(
			h.Class("avatar-container"),
			g.If(data.AvatarURL != "", h.Img(h.Class("avatar"), h.Src(data.AvatarURL), h.Alt(data.Name))),
			g.If(data.AvatarURL == "", g.Raw(defaultAvatarIcon)),
		),
		h.H1(h.ID("artist-name"), g.Text(data.Name)),
		h.P(h.ID("artist-title"), h.Class("artist-title"), g.Text(data.Title)),
		h.Div(h.ID("about-description"), h.Class("about-description"), g.Raw(data.DescriptionHTML)),
		h.Div(
			h.Class("stats"),
			h.Div(
				h.Class("stat"),
				h.Strong(h.ID("stat-works"), g.Text(strconv.Itoa(data.WorkCount))),
				h.Span(g.Text("Works")),
			),
		),
	)
}
