package intel

import (
	"context"
	"net/http"

	"golang.org/x/sync/errgroup"
)

// Health probes every provider's /health endpoint concurrently and reports
// which ones answered 200. Unconfigured providers report unhealthy.
func (c *Client) Health(ctx context.Context) map[string]bool {
	status := make([]bool, len(providerOrder))
	g, ctx := errgroup.WithContext(ctx)
	for i, name := range providerOrder {
		i, name := i, name
		g.Go(func() error {
			status[i] = c.probe(ctx, name)
			return nil
		})
	}
	g.Wait()

	healthy := make(map[string]bool, len(providerOrder))
	for i, name := range providerOrder {
		healthy[name] = status[i]
	}
	return healthy
}

func (c *Client) probe(ctx context.Context, provider string) bool {
	base := c.bases[provider]
	if base == "" {
		return false
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base+"/health", nil)
	if err != nil {
		return false
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}
