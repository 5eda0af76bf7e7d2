package handlers

import (
	"bytes"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/microcosm-cc/bluemonday"
	"github.com/nfrund/folio/internal/middleware"
	"github.com/nfrund/folio/internal/page"
	"github.com/nfrund/folio/internal/view"
	dto "github.com/nfrund/folio/internal/view/dto/pages"
	"github.com/nfrund/folio/web/src/templates/pages"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// AboutHandler renders the profile page.
type AboutHandler struct {
	site     *Site
	markdown goldmark.Markdown
	policy   *bluemonday.Policy
}

// NewAboutHandler creates a new AboutHandler.
func NewAboutHandler(site *Site) *AboutHandler {
	return &AboutHandler{
		site: site,
		markdown: goldmark.New(
			goldmark.WithExtensions(extension.Linkify),
			// Raw HTML passes through and is then cleaned by the policy.
			goldmark.WithRendererOptions(html.WithUnsafe()),
		),
		policy: bluemonday.UGCPolicy(),
	}
}

// renderDescription turns the Markdown description into sanitized HTML.
func (h *AboutHandler) renderDescription(source string) (string, error) {
	var buf bytes.Buffer
	if err := h.markdown.Convert([]byte(source), &buf); err != nil {
		return "", err
	}
	return h.policy.Sanitize(buf.String()), nil
}

// AboutGet renders the about page.
func (h *AboutHandler) AboutGet(c echo.Context) error {
	store := h.site.load(c)
	profile := store.Profile()

	description, err := h.renderDescription(profile.Description)
	if err != nil {
		middleware.FromContext(c.Request().Context()).Warn("Failed to render profile description", "error", err)
		description = h.policy.Sanitize(profile.Description)
	}

	data := dto.AboutData{
		Name:            profile.Name,
		Title:           profile.Title,
		DescriptionHTML: description,
		WorkCount:       len(store.Works()),
	}
	if profile.HasAvatar() {
		data.AvatarURL = profile.Avatar
	}

	return h.site.render(c, http.StatusOK, page.About, profile, view.GetFlashData(c), pages.About(data))
}
