package report

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"
)

// DefaultBaseURL points at the production genome link API.
const DefaultBaseURL = "https://genomelink.io"

// reportPopulation scopes every report request; only the european
// population set is published for these traits.
const reportPopulation = "european"

// Summary is one trait's report: an ordinal score from 0 to 4 and the
// provider's descriptive sentence.
type Summary struct {
	Score int    `json:"score"`
	Text  string `json:"text"`
}

// Provider fetches a single trait report. Implementations must be safe
// for concurrent use; the fetcher calls Fetch once per trait in
// parallel.
type Provider interface {
	Fetch(ctx context.Context, trait, token string) (Summary, error)
}

// HTTPProvider talks to the genome link report API.
type HTTPProvider struct {
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

// NewHTTPProvider builds a provider against baseURL, defaulting to the
// production API when empty.
func NewHTTPProvider(baseURL string, logger *zap.Logger) *HTTPProvider {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &HTTPProvider{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 30 * time.Second},
		logger:  logger,
	}
}

// Fetch retrieves one trait report using the supplied access token.
func (p *HTTPProvider) Fetch(ctx context.Context, trait, token string) (Summary, error) {
	endpoint := fmt.Sprintf("%s/v1/reports/%s?population=%s",
		p.baseURL, url.PathEscape(trait), reportPopulation)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Summary{}, fmt.Errorf("build report request for %s: %w", trait, err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return Summary{}, fmt.Errorf("fetch report %s: %w", trait, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		p.logger.Warn("report request rejected",
			zap.String("trait", trait),
			zap.Int("status", resp.StatusCode))
		return Summary{}, fmt.Errorf("fetch report %s: unexpected status %d", trait, resp.StatusCode)
	}

	var payload struct {
		Summary Summary `json:"summary"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return Summary{}, fmt.Errorf("decode report %s: %w", trait, err)
	}
	return payload.Summary, nil
}
