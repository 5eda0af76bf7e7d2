package format

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/nfrund/folio/internal/domain"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// SendTimeLayout matches the zh-CN locale string used in contact notifications.
const SendTimeLayout = "2006/01/02 15:04:05"

// Formatter turns stored values into display strings for one site language.
type Formatter struct {
	tag      language.Tag
	printer  *message.Printer
	labels   Labels
	currency string
	chinese  bool
}

// New creates a Formatter for lang (a BCP 47 tag such as "en" or "zh-CN").
// Unparseable tags fall back to English.
func New(lang, currencySymbol string) *Formatter {
	tag, err := language.Parse(lang)
	if err != nil {
		tag = language.English
	}
	base, _ := tag.Base()
	zh, _ := language.Chinese.Base()

	f := &Formatter{
		tag:      tag,
		printer:  message.NewPrinter(tag),
		labels:   englishLabels,
		currency: currencySymbol,
	}
	if base == zh {
		f.labels = chineseLabels
		f.chinese = true
	}
	return f
}

// Lang returns the language tag used for the html lang attribute.
func (f *Formatter) Lang() string {
	return f.tag.String()
}

// Labels returns the localized strings.
func (f *Formatter) Labels() Labels {
	return f.labels
}

// Price renders a price with thousands grouping. A missing or zero price
// yields the "price on request" label.
func (f *Formatter) Price(price *float64) string {
	if price == nil || *price == 0 {
		return f.labels.PriceOnRequest
	}
	p := *price
	if p == math.Trunc(p) {
		return f.currency + f.printer.Sprintf("%d", int64(p))
	}
	return f.currency + f.printer.Sprint(number.Decimal(p, number.MaxFractionDigits(2)))
}

// CategoryName maps a category to its label. Unknown values are returned unchanged.
func (f *Formatter) CategoryName(category domain.Category) string {
	switch category {
	case domain.CategoryPhotography:
		return f.labels.Photography
	case domain.CategoryPainting:
		return f.labels.Painting
	default:
		return string(category)
	}
}

// PlatformName returns the display name of a social platform.
func (f *Formatter) PlatformName(platform string) string {
	names, ok := platformNames[platform]
	if !ok {
		return platform
	}
	if f.chinese {
		return names[1]
	}
	return names[0]
}

// BrowserInfo summarizes a User-Agent header as "Browser (OS)".
func (f *Formatter) BrowserInfo(ua string) string {
	browser := f.labels.UnknownBrowser
	switch {
	case strings.Contains(ua, "Chrome") && !strings.Contains(ua, "Edg"):
		browser = "Chrome"
	case strings.Contains(ua, "Firefox"):
		browser = "Firefox"
	case strings.Contains(ua, "Safari") && !strings.Contains(ua, "Chrome"):
		browser = "Safari"
	case strings.Contains(ua, "Edg"):
		browser = "Edge"
	case strings.Contains(ua, "Opera") || strings.Contains(ua, "OPR"):
		browser = "Opera"
	}

	os := f.labels.UnknownOS
	switch {
	case strings.Contains(ua, "Windows"):
		os = "Windows"
	case strings.Contains(ua, "Mac OS X"):
		os = "macOS"
	case strings.Contains(ua, "Linux"):
		os = "Linux"
	case strings.Contains(ua, "Android"):
		os = "Android"
	case strings.Contains(ua, "iOS"):
		os = "iOS"
	}

	return fmt.Sprintf("%s (%s)", browser, os)
}

// SendTime formats the moment a contact message was sent.
func (f *Formatter) SendTime(t time.Time) string {
	return t.Format(SendTimeLayout)
}

// PhoneHref builds a tel: link keeping only digits and '+'.
func PhoneHref(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if (r >= '0' && r <= '9') || r == '+' {
			b.WriteRune(r)
		}
	}
	return "tel:" + b.String()
}

// WebsiteHref adds an https scheme to bare host names.
func WebsiteHref(website string) string {
	if strings.HasPrefix(website, "http") {
		return website
	}
	return "https://" + website
}
