package view

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"maragu.dev/gomponents"
)

// templNode wraps a templ.Component to satisfy the gomponents.Node interface,
// so templ partials can be placed inside gomponents layouts.
type templNode struct {
	ctx       context.Context
	component templ.Component
}

// Render delegates to the templ component using the captured context.
func (n templNode) Render(w io.Writer) error {
	return n.component.Render(n.ctx, w)
}

// Templ converts a templ.Component into a gomponents.Node. ctx is passed to
// the component on render; nil means context.Background().
func Templ(ctx context.Context, component templ.Component) gomponents.Node {
	if ctx == nil {
		ctx = context.Background()
	}
	return templNode{ctx: ctx, component: component}
}
