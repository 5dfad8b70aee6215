package ratelimit

import (
	"net/http"
	"strings"
)

// unlimited lists endpoints polled by load balancers and metric scrapers.
var unlimited = map[string]bool{
	"/health":  true,
	"/metrics": true,
}

// MatchEndpoint picks the EndpointConfig for a request. A pattern ending in
// "/" covers every path below it, so "/export/" limits both "/export/png"
// and "/export/pdf". The longest matching pattern wins. It returns a zero
// (unlimited) config for /health and /metrics and nil when nothing matches.
func MatchEndpoint(path, method string, configs []EndpointConfig) *EndpointConfig {
	if method == http.MethodGet && unlimited[path] {
		return &EndpointConfig{Path: path, Method: method}
	}

	var best *EndpointConfig
	for i := range configs {
		c := &configs[i]
		if c.Method != method || !covers(c.Path, path) {
			continue
		}
		if best == nil || len(c.Path) > len(best.Path) {
			best = c
		}
	}
	return best
}

func covers(pattern, path string) bool {
	if strings.HasSuffix(pattern, "/") {
		return strings.HasPrefix(path, pattern)
	}
	return pattern == path
}
