package datastore

import "github.com/nfrund/folio/internal/domain"

// DefaultFeaturedCount is the number of works shown on the landing page.
const DefaultFeaturedCount = 3

// DefaultProfile returns the profile used when profile.json is missing or
// malformed. Every call returns a fresh value.
func DefaultProfile() domain.Profile {
	return domain.Profile{
		Name:        "Artist",
		Title:       "Photographer & Painter",
		Avatar:      "",
		Description: "In love with photography and painting: the lens catches fleeting moments, the brush paints the world within. Every piece carries my love for life and my pursuit of beauty.",
		Email:       "artist@example.com",
		Phone:       "+86 138 0013 8000",
		Website:     "www.artistspace.com",
		Social: map[string]domain.SocialLink{
			"weibo":     {},
			"wechat":    {},
			"instagram": {},
			"behance":   {},
		},
	}
}
