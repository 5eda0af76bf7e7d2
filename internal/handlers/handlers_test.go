package handlers_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/nfrund/folio/internal/datastore"
	"github.com/nfrund/folio/internal/domain"
	"github.com/nfrund/folio/internal/format"
	"github.com/nfrund/folio/internal/handlers"
	"github.com/nfrund/folio/internal/iplookup"
	"github.com/nfrund/folio/internal/rendering"
	"github.com/nfrund/folio/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSessionSecret = "a-very-secret-key-for-testing-!"

// fakeMailer records sent messages and fails when err is set.
type fakeMailer struct {
	mu   sync.Mutex
	sent []domain.MailMessage
	err  error
}

func (m *fakeMailer) Send(ctx context.Context, msg domain.MailMessage) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, msg)
	return nil
}

func newSite(t *testing.T, files map[string]string) *handlers.Site {
	t.Helper()
	return handlers.NewSite(newLoader(t, files), format.New("en", "¥"))
}

func newLoader(t *testing.T, files map[string]string) *datastore.Loader {
	t.Helper()
	paths := make(map[string]string, len(files))
	for name, content := range files {
		paths["data/"+name] = content
	}
	return datastore.NewLoader(datastore.NewFileSource(testutils.MemFs(t, paths), "data"), testutils.DiscardLogger())
}

func defaultFiles() map[string]string {
	return map[string]string{
		datastore.WorksFile:   testutils.WorksJSON,
		datastore.ProfileFile: testutils.ProfileJSON,
	}
}

func newEcho() *echo.Echo {
	e := echo.New()
	e.Renderer = rendering.New()
	e.Use(session.Middleware(sessions.NewCookieStore([]byte(testSessionSecret))))
	return e
}

func do(e *echo.Echo, method, target string, form url.Values) *httptest.ResponseRecorder {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, target, body)
	if form != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	}
	req.RemoteAddr = "192.0.2.10:5555"
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0) Chrome/120.0 Safari/537.36")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestHomeGet(t *testing.T) {
	t.Run("shows the first three works", func(t *testing.T) {
		e := newEcho()
		e.GET("/", handlers.NewHomeHandler(newSite(t, defaultFiles()), -1).HomeGet)

		rec := do(e, http.MethodGet, "/", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, `id="featured-works"`)
		assert.Contains(t, body, "Sea")
		assert.Contains(t, body, "Field")
		assert.Contains(t, body, "City")
		assert.NotContains(t, body, "Lake")
		assert.Contains(t, body, `hx-get="/gallery/works/sea.jpg"`)
		assert.Contains(t, body, "<title>Home - Lin Qiu</title>")
	})

	t.Run("zero count hides the featured section", func(t *testing.T) {
		e := newEcho()
		e.GET("/", handlers.NewHomeHandler(newSite(t, defaultFiles()), 0).HomeGet)

		rec := do(e, http.MethodGet, "/", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.NotContains(t, body, `id="featured-works"`)
		assert.NotContains(t, body, "No works yet")
		assert.NotContains(t, body, "Sea")
	})

	t.Run("empty state without works", func(t *testing.T) {
		e := newEcho()
		e.GET("/", handlers.NewHomeHandler(newSite(t, map[string]string{}), 3).HomeGet)

		rec := do(e, http.MethodGet, "/", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "No works yet")
		assert.Contains(t, rec.Body.String(), "Artist")
	})
}

func TestGalleryHandler(t *testing.T) {
	e := newEcho()
	h := handlers.NewGalleryHandler(newSite(t, defaultFiles()))
	e.GET("/gallery.html", h.GalleryGet)
	e.GET("/gallery/grid", h.GridGet)
	e.GET("/gallery/works/:filename", h.WorkGet)

	t.Run("full page lists every work by default", func(t *testing.T) {
		rec := do(e, http.MethodGet, "/gallery.html", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		for _, title := range []string{"Sea", "Field", "City", "Lake"} {
			assert.Contains(t, body, title)
		}
		assert.Contains(t, body, `data-filter="all"`)
		assert.Contains(t, body, "Photography | ¥1,500")
		assert.Contains(t, body, "Painting | Price on request")
	})

	t.Run("grid fragment filters by category", func(t *testing.T) {
		rec := do(e, http.MethodGet, "/gallery/grid?category=painting", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.NotContains(t, body, "<!doctype html>")
		assert.Contains(t, body, `id="gallery-content"`)
		assert.Contains(t, body, "Field")
		assert.Contains(t, body, "Lake")
		assert.NotContains(t, body, "Sea")
		assert.Contains(t, body, `class="btn filter-btn active btn-primary" data-filter="painting"`)
	})

	t.Run("unknown category shows the empty state", func(t *testing.T) {
		rec := do(e, http.MethodGet, "/gallery/grid?category=sculpture", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "No works")
	})

	t.Run("work modal", func(t *testing.T) {
		rec := do(e, http.MethodGet, "/gallery/works/sea.jpg", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, `id="work-modal"`)
		assert.Contains(t, body, `src="/images/sea.jpg"`)
		assert.Contains(t, body, "Morning tide")
		assert.Contains(t, body, "2024-05")
		assert.Contains(t, body, "¥1,500")
	})

	t.Run("work modal without description", func(t *testing.T) {
		rec := do(e, http.MethodGet, "/gallery/works/field.jpg", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "No description")
		assert.Contains(t, rec.Body.String(), "Price on request")
	})

	t.Run("unknown work is a no-op", func(t *testing.T) {
		rec := do(e, http.MethodGet, "/gallery/works/missing.jpg", nil)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Body.String())
	})
}

func TestAboutGet(t *testing.T) {
	t.Run("renders sanitized markdown and stats", func(t *testing.T) {
		e := newEcho()
		e.GET("/about.html", handlers.NewAboutHandler(newSite(t, defaultFiles())).AboutGet)

		rec := do(e, http.MethodGet, "/about.html", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, "<strong>light</strong>")
		assert.NotContains(t, body, "alert(1)")
		assert.Contains(t, body, `<strong id="stat-works">4</strong>`)
		assert.Contains(t, body, "avatar-default")
	})

	t.Run("default profile when profile.json is missing", func(t *testing.T) {
		e := newEcho()
		e.GET("/about.html", handlers.NewAboutHandler(newSite(t, map[string]string{
			datastore.WorksFile: testutils.WorksJSON,
		})).AboutGet)

		rec := do(e, http.MethodGet, "/about.html", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "In love with photography")
	})
}

func TestContactGet(t *testing.T) {
	e := newEcho()
	h := handlers.NewContactHandler(newSite(t, defaultFiles()), &fakeMailer{}, iplookup.New("", 0))
	e.GET("/contact.html", h.ContactGet)
	e.GET("/contact/qrcode/:platform", h.QRCodeGet)

	t.Run("contact info and enabled social links", func(t *testing.T) {
		rec := do(e, http.MethodGet, "/contact.html", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, `href="mailto:lin@example.com"`)
		assert.Contains(t, body, `href="tel:+8613800138000"`)
		assert.Contains(t, body, `href="https://lin.example.com"`)
		assert.Contains(t, body, `href="https://weibo.com/lin"`)
		assert.Contains(t, body, `hx-get="/contact/qrcode/wechat"`)
		assert.NotContains(t, body, `data-platform="qq"`)
		assert.NotContains(t, body, "form-notice")
	})

	t.Run("qr code modal", func(t *testing.T) {
		rec := do(e, http.MethodGet, "/contact/qrcode/wechat", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `src="/images/wechat.png"`)
		assert.Contains(t, rec.Body.String(), "Add me on WeChat")
	})

	t.Run("disabled or unknown platform is a no-op", func(t *testing.T) {
		for _, platform := range []string{"qq", "weibo", "myspace"} {
			rec := do(e, http.MethodGet, "/contact/qrcode/"+platform, nil)
			assert.Equal(t, http.StatusNoContent, rec.Code, platform)
			assert.Empty(t, rec.Body.String(), platform)
		}
	})
}

func validForm() url.Values {
	return url.Values{
		"name":    {"Mei"},
		"email":   {"mei@example.com"},
		"subject": {"Commission"},
		"message": {"Is <b>Lake</b> still available?"},
	}
}

func TestContactPost(t *testing.T) {
	setup := func(t *testing.T, files map[string]string, mailer domain.Mailer) *echo.Echo {
		e := newEcho()
		h := handlers.NewContactHandler(newSite(t, files), mailer, iplookup.New("", 0))
		e.POST("/contact", h.ContactPost)
		return e
	}

	t.Run("sends and redirects with a flash", func(t *testing.T) {
		mailer := &fakeMailer{}
		e := setup(t, defaultFiles(), mailer)

		rec := do(e, http.MethodPost, "/contact", validForm())

		require.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/contact.html", rec.Header().Get(echo.HeaderLocation))
		assert.NotEmpty(t, rec.Header().Get("Set-Cookie"))

		require.Len(t, mailer.sent, 1)
		msg := mailer.sent[0]
		assert.Equal(t, "svc", msg.ServiceID)
		assert.Equal(t, "tpl", msg.TemplateID)
		assert.Equal(t, "pk", msg.PublicKey)
		assert.Equal(t, "Mei", msg.Params["name"])
		assert.Equal(t, "mei@example.com", msg.Params["email"])
		assert.Equal(t, "Commission", msg.Params["subject"])
		assert.Equal(t, "Is <b>Lake</b> still available?", msg.Params["message"])
		assert.Equal(t, "lin@example.com", msg.Params["admin_email"])
		assert.Equal(t, "192.0.2.10", msg.Params["user_ip"])
		assert.Equal(t, "Chrome (Windows)", msg.Params["browser_info"])
		assert.Regexp(t, `^\d{4}/\d{2}/\d{2} \d{2}:\d{2}:\d{2}$`, msg.Params["send_time"])
	})

	t.Run("forwards the message text unchanged", func(t *testing.T) {
		mailer := &fakeMailer{}
		e := setup(t, defaultFiles(), mailer)
		form := validForm()
		form.Set("message", `I'm keen on "Lake" & if price < 2000, buy`)
		form.Set("subject", "Tom & Jerry's print")

		rec := do(e, http.MethodPost, "/contact", form)

		require.Equal(t, http.StatusSeeOther, rec.Code)
		require.Len(t, mailer.sent, 1)
		assert.Equal(t, `I'm keen on "Lake" & if price < 2000, buy`, mailer.sent[0].Params["message"])
		assert.Equal(t, "Tom & Jerry's print", mailer.sent[0].Params["subject"])
	})

	t.Run("missing mailer", func(t *testing.T) {
		e := setup(t, defaultFiles(), nil)

		rec := do(e, http.MethodPost, "/contact", validForm())

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Contains(t, rec.Body.String(), "The email service is not loaded")
		assert.Contains(t, rec.Body.String(), `value="Mei"`)
	})

	t.Run("placeholder service id", func(t *testing.T) {
		mailer := &fakeMailer{}
		files := defaultFiles()
		files[datastore.ProfileFile] = strings.Replace(testutils.ProfileJSON, `"serviceId": "svc"`, `"serviceId": "YOUR_SERVICE_ID"`, 1)
		e := setup(t, files, mailer)

		rec := do(e, http.MethodPost, "/contact", validForm())

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Contains(t, rec.Body.String(), "configure the EmailJS parameters")
		assert.Empty(t, mailer.sent)
	})

	t.Run("invalid form keeps values", func(t *testing.T) {
		mailer := &fakeMailer{}
		e := setup(t, defaultFiles(), mailer)
		form := validForm()
		form.Set("email", "not-an-email")

		rec := do(e, http.MethodPost, "/contact", form)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, rec.Body.String(), "Please fill in every field")
		assert.Contains(t, rec.Body.String(), `value="not-an-email"`)
		assert.Empty(t, mailer.sent)
	})

	t.Run("send failure restores the form", func(t *testing.T) {
		e := setup(t, defaultFiles(), &fakeMailer{err: errors.New("boom")})

		rec := do(e, http.MethodPost, "/contact", validForm())

		assert.Equal(t, http.StatusBadGateway, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, "Sending failed")
		assert.Contains(t, body, `value="Commission"`)
		assert.Contains(t, body, `class="toast error"`)
	})
}

func TestHealthGet(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		loader := newLoader(t, defaultFiles())
		e := newEcho()
		e.GET("/health", handlers.NewHealthHandler(loader).HealthGet)

		rec := do(e, http.MethodGet, "/health", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status":"ok","works":4,"default_profile":false}`, rec.Body.String())
	})

	t.Run("degraded without works", func(t *testing.T) {
		loader := newLoader(t, map[string]string{})
		e := newEcho()
		e.GET("/health", handlers.NewHealthHandler(loader).HealthGet)

		rec := do(e, http.MethodGet, "/health", nil)

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.JSONEq(t, `{"status":"degraded","works":0,"default_profile":true}`, rec.Body.String())
	})
}
