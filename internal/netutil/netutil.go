// Package netutil collects the small network helpers shared by the CLI:
// domain normalization, defanging, registrable-apex reduction and local
// address discovery.
package netutil

import (
	"context"
	"net"
	"net/url"
	"strings"

	"golang.org/x/net/publicsuffix"

	"ioc-triage/internal/errs"
)

// NormalizeDomain extracts a canonical lowercase domain name from the
// provided input. It handles optional URL schemes, credentials, ports and
// IPv6 literals, and rejects wildcard entries. Subdomains are preserved.
func NormalizeDomain(input string) string {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return ""
	}
	if idx := strings.IndexAny(trimmed, " \t"); idx != -1 {
		trimmed = trimmed[:idx]
	}

	candidate := trimmed
	var parsed *url.URL
	var err error
	if strings.Contains(candidate, "://") {
		parsed, err = url.Parse(candidate)
	} else {
		parsed, err = url.Parse("http://" + candidate)
	}
	if err == nil && parsed != nil {
		hostPort := parsed.Host
		hostname := parsed.Hostname()
		if hostname != "" && !(strings.Count(hostPort, ":") > 1 && !strings.Contains(hostPort, "[")) {
			candidate = hostname
		} else if hostPort != "" {
			candidate = hostPort
		}
	}
	if candidate == "" {
		return ""
	}

	if at := strings.LastIndex(candidate, "@"); at != -1 {
		candidate = candidate[at+1:]
	}
	if idx := strings.IndexAny(candidate, "/?#"); idx != -1 {
		candidate = candidate[:idx]
	}
	if candidate == "" {
		return ""
	}

	if host, _, err := net.SplitHostPort(candidate); err == nil {
		candidate = host
	}
	if strings.HasPrefix(candidate, "[") && strings.HasSuffix(candidate, "]") {
		candidate = strings.Trim(candidate, "[]")
	}

	lowered := strings.ToLower(candidate)
	if strings.Contains(lowered, "*") {
		return ""
	}
	if net.ParseIP(lowered) == nil && !strings.Contains(lowered, ".") {
		return ""
	}
	return lowered
}

// Registrable reduces a normalized domain to its registrable apex
// (eTLD+1). IP literals and domains without a known public suffix are
// returned unchanged.
func Registrable(domain string) string {
	if domain == "" {
		return ""
	}
	if net.ParseIP(domain) != nil {
		return domain
	}
	if effective, err := publicsuffix.EffectiveTLDPlusOne(domain); err == nil && effective != "" {
		return strings.ToLower(effective)
	}
	return domain
}

// Defang rewrites every dot as "[.]" so the value can be pasted into a
// report without being clickable or resolvable.
func Defang(ipOrURL string) string {
	return strings.ReplaceAll(ipOrURL, ".", "[.]")
}

// internalIPProbeAddr is the routing-table probe target. The socket is
// connected but nothing is ever sent to it.
var internalIPProbeAddr = "8.8.8.8:80"

// InternalIP reports the local address the OS would use for outbound
// traffic, discovered by connecting a UDP socket without sending data.
func InternalIP(ctx context.Context) (string, error) {
	var d net.Dialer
	conn, err := d.DialContext(ctx, "udp4", internalIPProbeAddr)
	if err != nil {
		return "", errs.NewNetworkError("internal-ip probe", internalIPProbeAddr, err)
	}
	defer conn.Close()

	local, ok := conn.LocalAddr().(*net.UDPAddr)
	if !ok || local.IP == nil {
		return "", errs.NewNetworkError("internal-ip probe", internalIPProbeAddr, net.InvalidAddrError("no local UDP address"))
	}
	return local.IP.String(), nil
}
