package catalog

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/fitadvisor/fitadvisor/internal/api/middleware"
	"github.com/fitadvisor/fitadvisor/internal/provider/resilience"
)

// RemoteProviderName identifies the remote dataset provider in the
// resilience registry and ops status.
const RemoteProviderName = "exercise-dataset"

// HTTPDoer abstracts HTTP request execution.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// RemoteSourceConfig holds configuration for the remote dataset source.
type RemoteSourceConfig struct {
	// URL of the CSV dataset.
	URL string

	// HTTPClient is the HTTP client to use. If nil, a resilient client
	// with retry and circuit breaking is created and registered.
	HTTPClient HTTPDoer

	// Timeout for individual fetches (default: 15s).
	Timeout time.Duration
}

// RemoteSource fetches the exercise dataset over HTTP.
type RemoteSource struct {
	url        string
	httpClient HTTPDoer
	metrics    *middleware.ProviderMetrics
}

// NewRemoteSource creates a remote dataset source.
func NewRemoteSource(cfg RemoteSourceConfig) *RemoteSource {
	// Instrument creation only fails on a misconfigured meter; fetches
	// proceed unrecorded in that case.
	metrics, _ := middleware.NewProviderMetrics(RemoteProviderName)

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout == 0 {
			timeout = 15 * time.Second
		}
		client := resilience.NewClient(resilience.ClientConfig{
			Name:            RemoteProviderName,
			Timeout:         timeout,
			MaxRetries:      3,
			InitialInterval: 200 * time.Millisecond,
			MaxInterval:     5 * time.Second,
		})
		resilience.GlobalRegistry.Register(RemoteProviderName, client)
		httpClient = client
	}

	return &RemoteSource{
		url:        cfg.URL,
		httpClient: httpClient,
		metrics:    metrics,
	}
}

// Name implements Source.
func (s *RemoteSource) Name() string {
	return "remote:" + s.url
}

// Fetch implements Source.
func (s *RemoteSource) Fetch(ctx context.Context) ([]Record, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("building dataset request: %w", err)
	}
	req.Header.Set("Accept", "text/csv")

	start := time.Now()
	resp, err := s.httpClient.Do(req)
	if s.metrics != nil {
		s.metrics.RecordRequest(RemoteProviderName, "fetch-dataset", time.Since(start), err)
	}
	if err != nil {
		return nil, fmt.Errorf("fetching dataset: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("dataset fetch returned status %d", resp.StatusCode)
	}

	records, err := ParseCSV(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing dataset: %w", err)
	}
	return records, nil
}
