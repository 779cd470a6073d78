// Package intel queries the five intelligence providers and assembles their
// results into one bundle per request.
package intel

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"crisisvision/types"
)

const fetchTimeout = 10 * time.Second

// Client issues bounded-timeout lookups against the provider services.
type Client struct {
	http  *http.Client
	bases map[string]string
}

func NewClient(providerURLs map[string]string) *Client {
	return &Client{
		http:  &http.Client{Timeout: fetchTimeout},
		bases: providerURLs,
	}
}

// Fetch queries a single provider. Every failure mode (unconfigured service,
// network error, non-2xx status, non-JSON body) comes back as a failed
// ProviderResult, never an error, so one broken provider cannot abort the
// aggregate.
func (c *Client) Fetch(ctx context.Context, provider, path string, params url.Values) types.ProviderResult {
	base := c.bases[provider]
	if base == "" {
		return failure(provider, fmt.Sprintf("service %s not configured", provider))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base+path+"?"+params.Encode(), nil)
	if err != nil {
		return failure(provider, err.Error())
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return failure(provider, err.Error())
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return failure(provider, err.Error())
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return failure(provider, fmt.Sprintf("service %s returned status: %s", provider, resp.Status))
	}
	if !json.Valid(body) {
		return failure(provider, fmt.Sprintf("service %s returned invalid JSON", provider))
	}

	return types.ProviderResult{Provider: provider, OK: true, Payload: body}
}

func failure(provider, detail string) types.ProviderResult {
	return types.ProviderResult{Provider: provider, OK: false, Detail: detail}
}
