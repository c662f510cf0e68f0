package utils

import (
	"strings"

	"github.com/mileusna/useragent"
)

// DescribeDevice turns a raw User-Agent header into a short human-readable
// descriptor such as "Chrome 127 on macOS 14". Returns an empty string when
// the header is missing or unparseable so callers can apply their own default.
func DescribeDevice(rawUserAgent string) string {
	raw := strings.TrimSpace(rawUserAgent)
	if raw == "" {
		return ""
	}

	ua := useragent.Parse(raw)
	if ua.Name == "" {
		return ""
	}

	var b strings.Builder
	b.WriteString(ua.Name)
	if ua.Version != "" {
		b.WriteString(" ")
		b.WriteString(majorVersion(ua.Version))
	}
	if ua.OS != "" {
		b.WriteString(" on ")
		b.WriteString(ua.OS)
		if ua.OSVersion != "" {
			b.WriteString(" ")
			b.WriteString(majorVersion(ua.OSVersion))
		}
	}
	return b.String()
}

func majorVersion(version string) string {
	if idx := strings.Index(version, "."); idx > 0 {
		return version[:idx]
	}
	return version
}
