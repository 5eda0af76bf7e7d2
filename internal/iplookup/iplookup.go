// Package iplookup resolves the public IP address attached to contact-form
// notifications.
package iplookup

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"time"
)

// Client queries an ipify-compatible endpoint returning {"ip": "..."}.
type Client struct {
	url    string
	client *http.Client
}

// New creates a Client. An empty url disables remote lookups.
func New(url string, timeout time.Duration) *Client {
	return &Client{url: url, client: &http.Client{Timeout: timeout}}
}

type response struct {
	IP string `json:"ip"`
}

// Lookup asks the remote endpoint for the caller's public IP.
func (c *Client) Lookup(ctx context.Context) (string, error) {
	if c == nil || c.url == "" {
		return "", fmt.Errorf("ip lookup disabled")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create ip lookup request: %w", err)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to query ip lookup: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("ip lookup returned status %d", resp.StatusCode)
	}
	var body response
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("failed to decode ip lookup response: %w", err)
	}
	if body.IP == "" {
		return "", fmt.Errorf("ip lookup returned no address")
	}
	return body.IP, nil
}

// Resolve returns remoteIP when it is a public address. A loopback sender
// shares the server's connection, so the remote lookup answers for it.
// Any other address (private networks, an untrusted proxy) yields unknown,
// since the lookup would only report the server's own address.
func (c *Client) Resolve(ctx context.Context, remoteIP, unknown string) string {
	if IsPublic(remoteIP) {
		return remoteIP
	}
	if ip := net.ParseIP(remoteIP); ip == nil || !ip.IsLoopback() {
		return unknown
	}
	ip, err := c.Lookup(ctx)
	if err != nil {
		return unknown
	}
	return ip
}

// IsPublic reports whether s parses as a globally routable address.
func IsPublic(s string) bool {
	ip := net.ParseIP(s)
	if ip == nil {
		return false
	}
	return !(ip.IsLoopback() || ip.IsPrivate() || ip.IsUnspecified() || ip.IsLinkLocalUnicast())
}
