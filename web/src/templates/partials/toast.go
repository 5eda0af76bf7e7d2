package partials

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
	"github.com/nfrund/folio/internal/view"
)

// ToastTitles are the localized headings of success and error toasts.
type ToastTitles struct {
	Success string
	Error   string
}

// Toasts renders pending flash messages as auto-dismissing toasts.
func Toasts(flash view.FlashData, titles ToastTitles) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		for _, msg := range flash.Success {
			writeToast(&b, "success", titles.Success, msg)
		}
		for _, msg := range flash.Error {
			writeToast(&b, "error", titles.Error, msg)
		}
		_, err := io.WriteString(w, b.String())
		return err
	})
}

func writeToast(b *strings.Builder, kind, title, message string) {
	b.WriteString(`<div class="toast `)
	b.WriteString(kind)
	b.WriteString(`" role="status" data-toast><div class="toast-title">`)
	b.WriteString(templ.EscapeString(title))
	b.WriteString(`</div><div class="toast-message">`)
	b.WriteString(templ.EscapeString(message))
	b.WriteString(`</div></div>`)
}
