package server

import (
	"log/slog"
	"net"
	"strings"

	"github.com/labstack/echo/v4"
)

// ipExtractor decides which address c.RealIP reports. Without trusted
// proxies the peer address is used and forwarding headers are ignored.
// Otherwise X-Forwarded-For is honored, but only hops inside the listed
// ranges are skipped. Entries may be CIDRs or single addresses.
func ipExtractor(proxies []string, logger *slog.Logger) echo.IPExtractor {
	if len(proxies) == 0 {
		return echo.ExtractIPDirect()
	}

	options := []echo.TrustOption{
		echo.TrustLoopback(false),
		echo.TrustLinkLocal(false),
		echo.TrustPrivateNet(false),
	}
	for _, p := range proxies {
		if !strings.Contains(p, "/") {
			if ip := net.ParseIP(p); ip != nil && ip.To4() != nil {
				p += "/32"
			} else {
				p += "/128"
			}
		}
		_, ipNet, err := net.ParseCIDR(p)
		if err != nil {
			logger.Warn("Ignoring invalid trusted proxy", "value", p, "error", err)
			continue
		}
		options = append(options, echo.TrustIPRange(ipNet))
	}
	return echo.ExtractIPFromXFFHeader(options...)
}
