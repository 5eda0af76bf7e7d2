package handlers

import (
	"errors"
	"fmt"
	"maps"
	"net/http"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/nfrund/folio/internal/domain"
	"github.com/nfrund/folio/internal/format"
	"github.com/nfrund/folio/internal/iplookup"
	"github.com/nfrund/folio/internal/middleware"
	"github.com/nfrund/folio/internal/page"
	"github.com/nfrund/folio/internal/view"
	dto "github.com/nfrund/folio/internal/view/dto/pages"
	"github.com/nfrund/folio/web/src/templates/pages"
	"github.com/nfrund/folio/web/src/templates/partials"
)

// platformOrder fixes where the known platforms appear; others follow sorted.
var platformOrder = []string{"weibo", "wechat", "qq"}

// ContactHandler serves the contact page, QR code modals and the message form.
type ContactHandler struct {
	site      *Site
	mailer    domain.Mailer
	ip        *iplookup.Client
	validator *CustomValidator
}

// NewContactHandler creates a new ContactHandler. A nil mailer means the
// email service is unavailable; submissions then fail with a toast.
func NewContactHandler(site *Site, mailer domain.Mailer, ip *iplookup.Client) *ContactHandler {
	return &ContactHandler{
		site:      site,
		mailer:    mailer,
		ip:        ip,
		validator: NewValidator(),
	}
}

func sortedPlatforms(social map[string]domain.SocialLink) []string {
	rest := slices.Sorted(maps.Keys(social))
	out := make([]string, 0, len(rest))
	for _, p := range platformOrder {
		if _, ok := social[p]; ok {
			out = append(out, p)
		}
	}
	for _, p := range rest {
		if !slices.Contains(platformOrder, p) {
			out = append(out, p)
		}
	}
	return out
}

// socialButtons lists the enabled platforms. A platform with a QR code opens
// the QR modal, one with only a URL links out; anything else is skipped.
func socialButtons(f *format.Formatter, social map[string]domain.SocialLink) []dto.SocialButton {
	var buttons []dto.SocialButton
	for _, platform := range sortedPlatforms(social) {
		link := social[platform]
		if !link.Enabled {
			continue
		}
		b := dto.SocialButton{Platform: platform, Label: f.PlatformName(platform)}
		switch {
		case link.QRCode != "":
			b.QRCodeURL = link.QRCode
		case link.URL != "":
			b.URL = link.URL
		default:
			continue
		}
		buttons = append(buttons, b)
	}
	return buttons
}

func (h *ContactHandler) data(profile domain.Profile, form dto.ContactForm) dto.ContactData {
	f := h.site.formatter
	data := dto.ContactData{
		Email:        profile.Email,
		Phone:        profile.Phone,
		Website:      profile.Website,
		Social:       socialButtons(f, profile.Social),
		MailEnabled:  profile.EmailJS.WidgetEnabled(),
		MailDisabled: f.Labels().MailDisabled,
		Form:         form,
		SendingLabel: f.Labels().Sending,
	}
	if profile.Email != "" {
		data.EmailHref = "mailto:" + profile.Email
	}
	if profile.Phone != "" {
		data.PhoneHref = format.PhoneHref(profile.Phone)
	}
	if profile.Website != "" {
		data.WebsiteHref = format.WebsiteHref(profile.Website)
	}
	return data
}

// ContactGet renders the contact page.
func (h *ContactHandler) ContactGet(c echo.Context) error {
	store := h.site.load(c)
	profile := store.Profile()
	logger := middleware.FromContext(c.Request().Context())

	if profile.EmailJS.WidgetEnabled() {
		logger.Info("Email widget initialized", "service_id", profile.EmailJS.ServiceID)
	} else {
		logger.Info("Email widget not configured")
	}

	content := pages.Contact(h.data(profile, dto.ContactForm{}))
	return h.site.render(c, http.StatusOK, page.Contact, profile, view.GetFlashData(c), content)
}

// QRCodeGet renders the QR code modal of an enabled platform. Unknown or
// disabled platforms yield 204 with an empty body.
func (h *ContactHandler) QRCodeGet(c echo.Context) error {
	store := h.site.load(c)
	platform := c.Param("platform")

	link, ok := store.Profile().Social[platform]
	if !ok || !link.Enabled || link.QRCode == "" {
		return c.NoContent(http.StatusNoContent)
	}

	f := h.site.formatter
	name := f.PlatformName(platform)
	return h.site.fragment(c, partials.QRCodeModal(dto.QRCodeData{
		Title:    fmt.Sprintf(f.Labels().QRCodeTitle, name),
		ImageURL: link.QRCode,
		Hint:     fmt.Sprintf(f.Labels().ScanQRCode, name),
	}))
}

// ContactPost handles the contact form. On success it redirects back to the
// contact page with a success toast; on failure it re-renders the page with
// the submitted values and an error toast.
func (h *ContactHandler) ContactPost(c echo.Context) error {
	ctx := c.Request().Context()
	logger := middleware.FromContext(ctx)
	labels := h.site.formatter.Labels()

	var req ContactRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Failed to bind contact form", "error", err)
	}
	req.Normalize()
	form := dto.ContactForm{Name: req.Name, Email: req.Email, Subject: req.Subject, Message: req.Message}

	store := h.site.load(c)
	profile := store.Profile()

	fail := func(status int, message string) error {
		flash := view.GetFlashData(c).WithError(message)
		content := pages.Contact(h.data(profile, form))
		return h.site.render(c, status, page.Contact, profile, flash, content)
	}

	if h.mailer == nil {
		logger.Error("Contact form submitted without a mailer", "error", domain.ErrMailerUnavailable)
		return fail(http.StatusServiceUnavailable, labels.MailerUnavailable)
	}
	if !profile.EmailJS.CanSend() {
		logger.Warn("Contact form submitted without EmailJS service", "error", domain.ErrMailNotConfigured)
		return fail(http.StatusServiceUnavailable, labels.MailNotConfigured)
	}
	if err := h.validator.Validate(&req); err != nil {
		logger.Info("Contact form rejected", "error", err)
		return fail(http.StatusUnprocessableEntity, labels.InvalidForm)
	}

	submissionID := uuid.NewString()
	f := h.site.formatter
	msg := domain.MailMessage{
		ServiceID:  profile.EmailJS.ServiceID,
		TemplateID: profile.EmailJS.AdminTemplateID,
		PublicKey:  profile.EmailJS.PublicKey,
		Params: map[string]string{
			"name":         req.Name,
			"email":        req.Email,
			"subject":      req.Subject,
			"message":      req.Message,
			"admin_email":  profile.Email,
			"user_ip":      h.ip.Resolve(ctx, c.RealIP(), labels.UnknownIP),
			"browser_info": f.BrowserInfo(c.Request().UserAgent()),
			"send_time":    f.SendTime(time.Now()),
		},
	}

	if err := h.mailer.Send(ctx, msg); err != nil {
		status := http.StatusBadGateway
		if errors.Is(err, domain.ErrMailNotConfigured) {
			status = http.StatusServiceUnavailable
		}
		logger.Error("Failed to send contact message", "submission_id", submissionID, "error", err)
		return fail(status, labels.SendFailed)
	}

	logger.Info("Contact message sent", "submission_id", submissionID, "template_id", msg.TemplateID)
	view.SetFlashSuccess(c, fmt.Sprintf(labels.SentTo, profile.Email))
	entry, _ := page.Get(page.Contact)
	return c.Redirect(http.StatusSeeOther, entry.Href())
}
