package customHttpClient

import (
	"net/http"

	"github.com/akolanti/LinkAPI/internal/config"
)

// outbound fetches reuse connections to avoid per-request handshake latency

var customTransport = &http.Transport{
	MaxIdleConns:        config.MaxIdleConns,
	MaxIdleConnsPerHost: config.MaxIdleConnsPerHost,
	IdleConnTimeout:     config.IdleConnTimeout,
}

func NewPooledClient() *http.Client {
	return &http.Client{
		Transport: customTransport,
		Timeout:   config.FetchTimeout,
	}
}
