package httpclient

import (
	"net/http"

	"ticketbari/config"

	circuit "github.com/rubyist/circuitbreaker"
)

const (
	BreakerConsecutive = "consecutive"
	BreakerRate        = "rate"
	BreakerThreshold   = "threshold"
)

// InitCircuitBreaker picks the breaker flavour named by cbType, falling
// back to a consecutive-failure breaker.
func InitCircuitBreaker(cfg *config.HttpClientConfig, cbType string) *circuit.Breaker {
	switch cbType {
	case BreakerRate:
		return circuit.NewRateBreaker(cfg.ErrorRate, cfg.Threshold)
	case BreakerThreshold:
		return circuit.NewThresholdBreaker(cfg.Threshold)
	default:
		return circuit.NewConsecutiveBreaker(cfg.ConsecutiveFails)
	}
}

func InitHttpClient(cfg *config.HttpClientConfig, cb *circuit.Breaker) *circuit.HTTPClient {
	client := &http.Client{
		Timeout: cfg.Timeout,
	}
	return circuit.NewHTTPClientWithBreaker(cb, cfg.Timeout, client)
}
