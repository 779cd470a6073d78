package intel

import (
	"context"
	"net/url"

	"golang.org/x/sync/errgroup"

	"crisisvision/types"
)

// providerOrder is the canonical provider list. The bundle always holds one
// entry per name here, whatever the individual outcomes.
var providerOrder = []string{"weather", "maps", "news", "social", "resource"}

// endpoints maps each provider to its resource path.
var endpoints = map[string]string{
	"weather":  "/weather",
	"maps":     "/location",
	"news":     "/news",
	"social":   "/social",
	"resource": "/resources",
}

// Providers returns the canonical provider names.
func Providers() []string {
	names := make([]string, len(providerOrder))
	copy(names, providerOrder)
	return names
}

// Gather fans out one Fetch per provider concurrently and waits for all of
// them, so the slowest provider, not the sum, bounds latency. Failures stay
// embedded in the bundle; Gather itself cannot fail.
func (c *Client) Gather(ctx context.Context, location string, category types.Category) types.IntelligenceBundle {
	params := url.Values{}
	params.Set("location", location)
	params.Set("emergency_type", string(category))

	results := make([]types.ProviderResult, len(providerOrder))
	g, ctx := errgroup.WithContext(ctx)
	for i, name := range providerOrder {
		i, name := i, name
		g.Go(func() error {
			results[i] = c.Fetch(ctx, name, endpoints[name], params)
			return nil
		})
	}
	g.Wait()

	bundle := make(types.IntelligenceBundle, len(results))
	for _, r := range results {
		bundle[r.Provider] = r
	}
	return bundle
}
