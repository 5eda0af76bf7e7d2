package domain

import (
	"encoding/json"
	"strings"
)

// Placeholder values shipped in the sample profile.json. A credential equal to
// one of these counts as unset.
const (
	PlaceholderPublicKey = "YOUR_PUBLIC_KEY"
	PlaceholderServiceID = "YOUR_SERVICE_ID"
)

// Profile is the site owner's identity and contact configuration.
type Profile struct {
	Name        string                `json:"name"`
	Title       string                `json:"title"`
	Avatar      string                `json:"avatar,omitempty"`
	Description string                `json:"description"`
	Email       string                `json:"email"`
	Phone       string                `json:"phone"`
	Website     string                `json:"website"`
	Social      map[string]SocialLink `json:"social"`
	EmailJS     *EmailJSConfig        `json:"emailjs,omitempty"`
}

// HasAvatar reports whether a non-blank avatar URL is configured.
func (p Profile) HasAvatar() bool {
	return strings.TrimSpace(p.Avatar) != ""
}

// SocialLink configures one social platform. Platforms opened in a new tab
// use URL; messaging platforms use a QR code image.
type SocialLink struct {
	Enabled bool   `json:"enabled"`
	URL     string `json:"url,omitempty"`
	QRCode  string `json:"qrcode,omitempty"`
}

// UnmarshalJSON accepts the legacy bare-string form ("weibo": "") as a
// disabled link.
func (s *SocialLink) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err == nil {
		*s = SocialLink{URL: raw}
		return nil
	}
	type alias SocialLink
	var v alias
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*s = SocialLink(v)
	return nil
}

// EmailJSConfig holds the EmailJS credentials used by the contact form.
type EmailJSConfig struct {
	PublicKey       string `json:"publicKey"`
	ServiceID       string `json:"serviceId"`
	AdminTemplateID string `json:"adminTemplateId"`
}

// WidgetEnabled reports whether the public key is set to a real value.
func (c *EmailJSConfig) WidgetEnabled() bool {
	return c != nil && c.PublicKey != "" && c.PublicKey != PlaceholderPublicKey
}

// CanSend reports whether a service id is set to a real value.
func (c *EmailJSConfig) CanSend() bool {
	return c != nil && c.ServiceID != "" && c.ServiceID != PlaceholderServiceID
}
