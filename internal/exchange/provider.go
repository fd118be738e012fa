// Package exchange fetches and caches the live USD→CAD exchange rate from an
// external provider. It always produces a usable rate: provider failures fall
// back to the last cached value, then to a fixed default.
package exchange

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	logrus "github.com/sirupsen/logrus"
)

const (
	// CacheTTL is how long a fetched rate is served without touching the network.
	CacheTTL = time.Hour

	// FallbackRate is returned when the source is unreachable and no cached
	// value exists (1 USD = 1.35 CAD).
	FallbackRate = 1.35

	fetchTimeout = 5 * time.Second
)

// Provider resolves the current USD→CAD rate from one configured source,
// caching the last good value. Safe for concurrent use; last writer wins.
type Provider struct {
	Source string // "exchangerate-api" (default), "fixer" or "openexchangerates"
	APIKey string

	// Endpoint, when set, overrides the URL derived from Source. Tests point
	// it at a local server; deployments behind a mirror can too.
	Endpoint string

	client *http.Client

	mu        sync.Mutex
	rate      float64 // zero means no cached value
	fetchedAt time.Time

	now func() time.Time
}

// New builds a Provider for the named source. An empty source selects the
// keyless exchangerate-api tier.
func New(source, apiKey string) *Provider {
	return &Provider{
		Source: source,
		APIKey: apiKey,
		client: &http.Client{Timeout: fetchTimeout},
		now:    time.Now,
	}
}

// CurrentRate returns the cached rate while it is fresh, otherwise refetches
// from the configured source. It never fails: a dead source degrades to the
// stale cache and finally to FallbackRate.
func (p *Provider) CurrentRate() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.rate != 0 && p.clock().Sub(p.fetchedAt) < CacheTTL {
		return p.rate
	}

	rate, err := p.fetch()
	if err == nil {
		p.rate = rate
		p.fetchedAt = p.clock()
		logrus.WithField("rate", rate).Info("Fetched live USD→CAD exchange rate")
		return rate
	}

	if p.rate != 0 {
		logrus.WithError(err).Warn("Exchange rate fetch failed, serving stale cached rate")
		return p.rate
	}

	logrus.WithError(err).Warnf("Exchange rate fetch failed with no cache, using fallback %.2f", FallbackRate)
	return FallbackRate
}

// Invalidate clears the cached rate and its timestamp so the next call must
// hit the source again.
func (p *Provider) Invalidate() {
	p.mu.Lock()
	p.rate = 0
	p.fetchedAt = time.Time{}
	p.mu.Unlock()
}

// clock and httpClient default the zero value, so a Provider built without
// New still works.
func (p *Provider) clock() time.Time {
	if p.now == nil {
		return time.Now()
	}
	return p.now()
}

func (p *Provider) httpClient() *http.Client {
	if p.client == nil {
		p.client = &http.Client{Timeout: fetchTimeout}
	}
	return p.client
}

func (p *Provider) fetch() (float64, error) {
	url, err := p.sourceURL()
	if err != nil {
		return 0, err
	}
	return fetchCAD(p.httpClient(), url)
}

func (p *Provider) sourceURL() (string, error) {
	if p.Endpoint != "" {
		return p.Endpoint, nil
	}
	switch p.Source {
	case "", "exchangerate-api":
		if p.APIKey == "" {
			return "https://api.exchangerate-api.com/v4/latest/USD", nil
		}
		return fmt.Sprintf("https://v6.exchangerate-api.com/v6/%s/latest/USD", p.APIKey), nil
	case "fixer":
		if p.APIKey == "" {
			return "", fmt.Errorf("fixer requires an API key")
		}
		return fmt.Sprintf("http://data.fixer.io/api/latest?access_key=%s&base=USD&symbols=CAD", p.APIKey), nil
	case "openexchangerates":
		if p.APIKey == "" {
			return "", fmt.Errorf("openexchangerates requires an API key")
		}
		return fmt.Sprintf("https://openexchangerates.org/api/latest.json?app_id=%s&base=USD&symbols=CAD", p.APIKey), nil
	}
	return "", fmt.Errorf("unknown exchange rate source %q", p.Source)
}

// fetchCAD pulls the CAD rate out of a latest-rates response. All three
// supported sources use the same {"rates": {"CAD": x}} shape.
func fetchCAD(client *http.Client, url string) (float64, error) {
	resp, err := client.Get(url)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("rate source returned status %d", resp.StatusCode)
	}

	var body struct {
		Rates map[string]float64 `json:"rates"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, err
	}

	rate, ok := body.Rates["CAD"]
	if !ok || rate <= 0 {
		return 0, fmt.Errorf("rate source response has no usable CAD rate")
	}
	return rate, nil
}
