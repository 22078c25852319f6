// Package client - HTTP-Client fuer die Provider.
// Ein prozessweiter Client mit festem Timeout, eigenem User-Agent und
// Redirect-Verfolgung. Wird beim ersten Zugriff erstellt.
package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"sync"

	"github.com/7blacky7/ranobe/envconfig"
	"github.com/7blacky7/ranobe/logutil"
)

// maxRedirects wie beim Standard-Client von net/http
const maxRedirects = 10

// Client laedt Seiten der Provider
type Client struct {
	http      *http.Client
	userAgent string
}

// StatusError ist eine Antwort ausserhalb von 2xx. Weiterleitungen werden
// vorher verfolgt, landen also nur ohne Location-Header hier.
type StatusError struct {
	StatusCode int
	Status     string
	URL        string
}

func (e StatusError) Error() string {
	return fmt.Sprintf("%s: %s", e.URL, e.Status)
}

// ErrTooManyRedirects wird nach maxRedirects Weiterleitungen zurueckgegeben
var ErrTooManyRedirects = errors.New("too many redirects")

// New erstellt einen Client. httpClient darf nil sein.
func New(httpClient *http.Client, userAgent string) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	c := *httpClient
	c.CheckRedirect = checkRedirect
	return &Client{http: &c, userAgent: userAgent}
}

// Default ist der prozessweite Client, konfiguriert ueber RANOBE_TIMEOUT
// und RANOBE_USER_AGENT
var Default = sync.OnceValue(func() *Client {
	return New(&http.Client{Timeout: envconfig.Timeout()}, envconfig.UserAgent())
})

func checkRedirect(req *http.Request, via []*http.Request) error {
	if len(via) >= maxRedirects {
		return ErrTooManyRedirects
	}
	slog.Debug("following redirect", "from", via[len(via)-1].URL, "to", req.URL)
	return nil
}

// Fetch laedt u und gibt den Body als String zurueck
func (c *Client) Fetch(ctx context.Context, u *url.URL) (string, error) {
	body, err := c.do(ctx, http.MethodGet, u)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

func (c *Client) do(ctx context.Context, method string, u *url.URL) ([]byte, error) {
	request, err := http.NewRequestWithContext(ctx, method, u.String(), nil)
	if err != nil {
		return nil, err
	}

	request.Header.Set("User-Agent", c.userAgent)
	request.Header.Set("Accept", "text/html,application/xhtml+xml")

	logutil.TraceContext(ctx, "http request", "method", method, "url", u)
	resp, err := c.http.Do(request)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, StatusError{StatusCode: resp.StatusCode, Status: resp.Status, URL: u.String()}
	}

	slog.Debug("http response", "url", resp.Request.URL, "status", resp.StatusCode, "bytes", len(body))
	return body, nil
}
