// Package page enumerates the site pages and the paths each one answers on.
package page

import "strings"

// Kind identifies one page of the site.
type Kind int

const (
	Home Kind = iota
	Gallery
	About
	Contact
)

func (k Kind) String() string {
	switch k {
	case Home:
		return "home"
	case Gallery:
		return "gallery"
	case About:
		return "about"
	case Contact:
		return "contact"
	default:
		return "unknown"
	}
}

// Entry registers a page: the paths it is served on and its title.
// Paths[0] is the canonical link used in navigation.
type Entry struct {
	Kind  Kind
	Paths []string
	Title string
}

// Href returns the canonical path of the page.
func (e Entry) Href() string {
	return e.Paths[0]
}

// Table lists every page. Each path belongs to exactly one page.
var Table = []Entry{
	{Kind: Home, Paths: []string{"/", "/index.html"}, Title: "Home"},
	{Kind: Gallery, Paths: []string{"/gallery.html"}, Title: "Gallery"},
	{Kind: About, Paths: []string{"/about.html"}, Title: "About"},
	{Kind: Contact, Paths: []string{"/contact.html"}, Title: "Contact"},
}

// Get returns the table entry of k.
func Get(k Kind) (Entry, bool) {
	for _, e := range Table {
		if e.Kind == k {
			return e, true
		}
	}
	return Entry{}, false
}

// Lookup resolves a request path by its last segment, so "/site/gallery.html"
// and "gallery.html" both map to Gallery. An empty segment is the home page.
func Lookup(path string) (Kind, bool) {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	segment := path[strings.LastIndex(path, "/")+1:]
	if segment == "" {
		return Home, true
	}
	for _, e := range Table {
		for _, p := range e.Paths {
			if strings.TrimPrefix(p, "/") == segment {
				return e.Kind, true
			}
		}
	}
	return 0, false
}
