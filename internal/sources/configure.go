// Package sources talks to the remote services ioc-triage consults: the
// InQuest IOC index over HTTPS and registry WHOIS over raw TCP. Endpoints
// live in package vars so configuration and tests can repoint them.
package sources

import "strings"

// Configure repoints the remote endpoints and the spool directory from
// resolved configuration. Empty values leave the current setting alone.
func Configure(lookupBaseURL, whoisAddr, spoolDir string) {
	if v := strings.TrimSpace(lookupBaseURL); v != "" {
		inquestBaseURL = strings.TrimRight(v, "/")
	}
	if v := strings.TrimSpace(whoisAddr); v != "" {
		whoisServer = v
	}
	if v := strings.TrimSpace(spoolDir); v != "" {
		inquestSpoolDir = v
	}
}
