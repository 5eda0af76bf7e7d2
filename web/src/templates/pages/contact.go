package pages

import (
	dto "github.com/nfrund/folio/internal/view/dto/pages"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	h "maragu.dev/gomponents/html"
)

// ContactPostURL receives the contact form.
const ContactPostURL = "/contact"

// QRCodeURL is the fragment endpoint of a platform's QR code modal.
func QRCodeURL(platform string) string {
	return "/contact/qrcode/" + platform
}

// Contact renders the contact details, social links and the message form.
func Contact(data dto.ContactData) g.Node {
	return h.Section(
		h.Class("contact"),
		h.H1(h.Class("section-title"), g.Text("Contact")),
		h.Div(
			h.Class("contact-info"),
			g.If(data.Email != "", h.A(h.Class("contact-email-link"), h.Href(data.EmailHref),
				h.Span(h.Class("contact-email-display"), g.Text(data.Email)))),
			g.If(data.Phone != "", h.A(h.Class("contact-phone-link"), h.Href(data.PhoneHref),
				h.Span(h.Class("contact-phone-display"), g.Text(data.Phone)))),
			g.If(data.Website != "", h.A(h.Class("contact-website-link"), h.Href(data.WebsiteHref), h.Target("_blank"), h.Rel("noopener"),
				h.Span(h.Class("contact-website-display"), g.Text(data.Website)))),
		),
		h.Div(
			h.Class("social-links"),
			g.Map(data.Social, socialLink),
		),
		contactForm(data),
	)
}

func socialLink(s dto.SocialButton) g.Node {
	if s.QRCodeURL != "" {
		return h.Button(
			h.Type("button"),
			h.Class("social-link"),
			g.Attr("data-platform", s.Platform),
			hx.Get(QRCodeURL(s.Platform)),
			hx.Target("#modal-root"),
			hx.Swap("innerHTML"),
			g.Text(s.Label),
		)
	}
	return h.A(
		h.Class("social-link"),
		g.Attr("data-platform", s.Platform),
		h.Href(s.URL),
		h.Target("_blank"),
		h.Rel("noopener"),
		g.Text(s.Label),
	)
}

func field(label, name, kind, value string) g.Node {
	return h.Div(
		h.Class("form-group"),
		g.El("label", g.Attr("for", "contact-"+name), g.Text(label)),
		h.Input(h.ID("contact-"+name), h.Type(kind), h.Name(name), h.Value(value), h.Required()),
	)
}

func contactForm(data dto.ContactData) g.Node {
	return g.El("form",
		h.ID("contact-form"),
		h.Method("post"),
		h.Action(ContactPostURL),
		g.Attr("data-sending-label", data.SendingLabel),
		g.If(!data.MailEnabled, h.P(h.Class("form-notice"), g.Text(data.MailDisabled))),
		field("Name", "name", "text", data.Form.Name),
		field("Email", "email", "email", data.Form.Email),
		field("Subject", "subject", "text", data.Form.Subject),
		h.Div(
			h.Class("form-group"),
			g.El("label", g.Attr("for", "contact-message"), g.Text("Message")),
			h.Textarea(h.ID("contact-message"), h.Name("message"), g.Attr("rows", "6"), h.Required(), g.Text(data.Form.Message)),
		),
		h.Button(h.Type("submit"), h.Class("btn btn-primary"), g.Text("Send message")),
	)
}
