package rendering

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
)

// Renderer writes templ components and gomponents nodes. It is installed as
// the echo renderer, so handlers call c.Render(status, "", component).
type Renderer struct{}

// New creates a Renderer.
func New() *Renderer {
	return &Renderer{}
}

// node is the structural interface of gomponents.Node.
type node interface {
	Render(w io.Writer) error
}

func (r *Renderer) render(ctx context.Context, component interface{}, w io.Writer) error {
	switch c := component.(type) {
	case templ.Component:
		return c.Render(ctx, w)
	case node:
		return c.Render(w)
	default:
		return fmt.Errorf("unsupported component type: %T", component)
	}
}

// Bytes renders a component into memory. Rendering into a buffer first means
// a failing component never produces a half-written response.
func (r *Renderer) Bytes(ctx context.Context, component interface{}) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.render(ctx, component, &buf); err != nil {
		return nil, fmt.Errorf("failed to render component: %w", err)
	}
	return buf.Bytes(), nil
}

// Render implements echo.Renderer. The component is passed as data; name is unused.
func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	out, err := r.Bytes(c.Request().Context(), data)
	if err != nil {
		return err
	}
	if c.Response().Header().Get(echo.HeaderContentType) == "" {
		c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	}
	_, err = w.Write(out)
	return err
}
