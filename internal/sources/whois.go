package sources

import (
	"context"
	"io"
	"net"
	"time"
	"unicode/utf8"

	"ioc-triage/internal/errs"
)

var (
	whoisServer      = "whois.verisign-grs.com:43"
	whoisDialTimeout = 10 * time.Second
	whoisReadTimeout = 30 * time.Second
)

// Whois performs a raw port-43 lookup: write the domain followed by CRLF,
// read until the server closes the connection, and return the text. The
// registry speaks plain text; a response that is not valid UTF-8 is
// reported as a ParseError.
func Whois(ctx context.Context, domain string) (string, error) {
	dialer := &net.Dialer{Timeout: whoisDialTimeout}
	conn, err := dialer.DialContext(ctx, "tcp", whoisServer)
	if err != nil {
		return "", errs.NewNetworkError("whois dial", whoisServer, err)
	}
	defer conn.Close()

	deadline := time.Now().Add(whoisReadTimeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	if err := conn.SetDeadline(deadline); err != nil {
		return "", errs.NewNetworkError("whois deadline", whoisServer, err)
	}

	if _, err := conn.Write([]byte(domain + "\r\n")); err != nil {
		return "", errs.NewNetworkError("whois query", whoisServer, err)
	}

	response, err := io.ReadAll(conn)
	if err != nil {
		return "", errs.NewNetworkError("whois read", whoisServer, err)
	}

	if !utf8.Valid(response) {
		return "", errs.NewParseError("whois response", "not valid UTF-8", nil)
	}
	return string(response), nil
}
