package rates

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

const defaultBaseURL = "https://api.frankfurter.app"

// LookupError describes a failed rate lookup: a transport failure, a
// non-success status, or a body that did not parse.
type LookupError struct {
	Status int
	Detail string
	Err    error
}

func (e *LookupError) Error() string {
	switch {
	case e.Err != nil:
		return fmt.Sprintf("rate lookup: %s: %v", e.Detail, e.Err)
	case e.Status != 0:
		return fmt.Sprintf("rate lookup: status %d: %s", e.Status, e.Detail)
	default:
		return "rate lookup: " + e.Detail
	}
}

func (e *LookupError) Unwrap() error {
	return e.Err
}

// Client fetches conversion rates from an exchange-rate service. It is
// stateless: every FetchRates call is one uncached round trip.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a rate client. An empty baseURL selects the public
// Frankfurter API.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		// No client-side timeout; the caller's context bounds the call.
		httpClient: &http.Client{},
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

type ratesResponse struct {
	Rates map[string]float64 `json:"rates"`
}

// FetchRates returns the conversion factors from base to each target
// currency. Targets the upstream service does not know are simply absent
// from the result; callers must treat a missing code as unknown, not
// zero. The snapshot is valid for this call only and is never cached.
func (c *Client) FetchRates(ctx context.Context, base string, targets []string) (map[string]float64, error) {
	q := url.Values{}
	q.Set("from", base)
	q.Set("to", strings.Join(targets, ","))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/latest?"+q.Encode(), nil)
	if err != nil {
		return nil, &LookupError{Detail: "build request", Err: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &LookupError{Detail: "fetch rates", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &LookupError{Status: resp.StatusCode, Detail: strings.TrimSpace(string(body))}
	}

	var parsed ratesResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, &LookupError{Detail: "decode rates response", Err: err}
	}
	if parsed.Rates == nil {
		parsed.Rates = map[string]float64{}
	}

	return parsed.Rates, nil
}
