// Package googlemaps talks to the Google Maps Geocoding and Directions JSON APIs.
package googlemaps

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"capsule/internal/pkg/errs"

	"github.com/pkg/errors"
)

const (
	DefaultBaseURL = "https://maps.googleapis.com"
	DefaultTimeout = 10 * time.Second

	maxResponseBytes = 4 << 20
)

// Config is shared by both clients. The API key is sent as the key query
// parameter and never logged.
type Config struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

type client struct {
	provider string
	baseURL  string
	apiKey   string
	httpc    *http.Client
}

func newClient(provider string, cfg Config, httpc *http.Client) client {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if httpc == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		httpc = &http.Client{Timeout: timeout}
	}

	return client{
		provider: provider,
		baseURL:  baseURL,
		apiKey:   cfg.APIKey,
		httpc:    httpc,
	}
}

// get performs a GET against path and returns the body of a 2xx answer.
// Everything that keeps us from reading such a body is reported as
// errs.ProviderUnavailableError.
func (c client) get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, errors.Wrap(err, "parse base url")
	}
	u.Path = path

	q := u.Query()
	for key, values := range params {
		for _, v := range values {
			q.Add(key, v)
		}
	}
	q.Set("key", c.apiKey)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "new request")
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, errs.NewProviderUnavailableError(c.provider, errors.Wrap(stripURL(err), "do request"))
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return nil, errs.NewProviderUnavailableError(c.provider, errors.Errorf("http %d", resp.StatusCode))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, errs.NewProviderUnavailableError(c.provider, errors.Wrap(err, "read body"))
	}

	return body, nil
}

// stripURL drops the request URL from transport errors so the API key does
// not end up in logs.
func stripURL(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return urlErr.Err
	}
	return err
}
