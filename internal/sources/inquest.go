package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"ioc-triage/internal/errs"
	"ioc-triage/internal/logx"
)

// Classification is the four-way verdict the IOC lookup service assigns
// to a domain, ordered by severity.
type Classification int

const (
	Unclassified Classification = iota
	Unknown
	Suspicious
	Malicious
)

func (c Classification) String() string {
	switch c {
	case Malicious:
		return "Malicious"
	case Suspicious:
		return "Suspicious"
	case Unknown:
		return "Unknown"
	default:
		return "Unclassified"
	}
}

type inquestRecord struct {
	Classification string `json:"classification"`
}

type inquestResponse struct {
	Data []inquestRecord `json:"data"`
}

var (
	inquestBaseURL    = "https://labs.inquest.net"
	inquestHTTPClient = &http.Client{Timeout: 30 * time.Second}
	// inquestSpoolDir is where the raw response body is spooled before
	// parsing. Empty means the OS temp dir.
	inquestSpoolDir = ""
)

// Classify asks the InQuest DFI index whether the supplied domain appears
// in known-bad samples. The verdict "Unknown" is a valid lookup result,
// not an error; errors are reserved for failed lookups.
//
// The raw response body is spooled to a uniquely named temp file, re-read
// and parsed, and the file is removed before returning. Every step that
// can fail reports a typed error; nothing is retried here, the caller owns
// retry policy.
func Classify(ctx context.Context, domain string) (Classification, error) {
	endpoint := buildInquestURL(domain)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Unclassified, errs.NewNetworkError("classify", endpoint, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "ioc-triage/classify")

	client := inquestHTTPClient
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return Unclassified, errs.NewNetworkError("classify", endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Unclassified, errs.NewStatusError("classify", endpoint, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Unclassified, errs.NewNetworkError("classify", endpoint, err)
	}

	spoolPath, err := spoolResponse(body)
	if err != nil {
		return Unclassified, err
	}

	verdict, parseErr := parseSpooledVerdict(spoolPath)

	if err := os.Remove(spoolPath); err != nil {
		if parseErr != nil {
			return Unclassified, parseErr
		}
		return Unclassified, errs.NewIOError("remove", spoolPath, err)
	}
	if parseErr != nil {
		return Unclassified, parseErr
	}

	logx.Debugf("classify %s: %s", domain, verdict)
	return verdict, nil
}

func buildInquestURL(domain string) string {
	query := url.Values{}
	query.Set("keyword", domain)
	return fmt.Sprintf("%s/api/dfi/search/ioc/domain?%s", inquestBaseURL, query.Encode())
}

// spoolResponse writes body to a per-call unique temp file and returns its
// path. A unique name keeps concurrent lookups from reading each other's
// responses.
func spoolResponse(body []byte) (string, error) {
	f, err := os.CreateTemp(inquestSpoolDir, "ioc-triage-*.json")
	if err != nil {
		return "", errs.NewIOError("create", "ioc-triage-*.json", err)
	}
	path := f.Name()

	if _, err := f.Write(body); err != nil {
		f.Close()
		os.Remove(path)
		return "", errs.NewIOError("write", path, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return "", errs.NewIOError("close", path, err)
	}
	return path, nil
}

// parseSpooledVerdict reloads the spooled body and maps the first record's
// classification. An empty data array is a valid "nothing on file" answer
// and maps to Unclassified; a body that does not decode is a ParseError.
func parseSpooledVerdict(path string) (Classification, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Unclassified, errs.NewNotFoundError(path, err)
		}
		return Unclassified, errs.NewIOError("read", path, err)
	}

	var payload inquestResponse
	if err := json.Unmarshal(raw, &payload); err != nil {
		return Unclassified, errs.NewParseError("inquest response", "not a valid IOC document", err)
	}

	if len(payload.Data) == 0 {
		return Unclassified, nil
	}

	switch payload.Data[0].Classification {
	case "MALICIOUS":
		return Malicious, nil
	case "UNKNOWN":
		return Unknown, nil
	case "SUSPICIOUS":
		return Suspicious, nil
	default:
		return Unclassified, nil
	}
}
