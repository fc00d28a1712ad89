package geocode

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/codescribler/playerprofile-sub000/internal/platform/cache"
	"github.com/codescribler/playerprofile-sub000/internal/platform/geo"
	"github.com/codescribler/playerprofile-sub000/internal/platform/logging"
	"github.com/codescribler/playerprofile-sub000/internal/platform/resilience"
	"github.com/codescribler/playerprofile-sub000/internal/usecase"
)

const (
	defaultBaseURL  = "https://api.postcodes.io"
	defaultCacheTTL = 24 * time.Hour
)

// UK postcode shape, outward + inward code. Checked before any network call
// so malformed input never reaches the provider.
var postcodeRegex = regexp.MustCompile(`^[A-Z]{1,2}[0-9][A-Z0-9]? [0-9][A-Z]{2}$`)

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	Timeout        time.Duration
	CacheTTL       time.Duration
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client resolves UK postcodes through the postcodes.io lookup API.
// Successful lookups are cached; failures are not, so a recovering provider
// is retried on the next search.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
	cache          *cache.Store
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 3 * time.Second
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	cacheTTL := cfg.CacheTTL
	if cacheTTL <= 0 {
		cacheTTL = defaultCacheTTL
	}
	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	return &Client{
		httpClient:     httpClient,
		baseURL:        baseURL,
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenTimeout, breakerCfg.HalfOpenMaxReq),
		circuitEnabled: breakerCfg.Enabled,
		cache:          cache.NewStore(cacheTTL),
	}
}

// NormalizePostcode uppercases and reshapes a raw postcode into the
// canonical "OUTWARD INWARD" form, best effort.
func NormalizePostcode(raw string) string {
	compact := strings.ToUpper(strings.Join(strings.Fields(raw), ""))
	if len(compact) < 5 {
		return compact
	}
	return compact[:len(compact)-3] + " " + compact[len(compact)-3:]
}

func (c *Client) Resolve(ctx context.Context, postcode string) (geo.Point, error) {
	normalized := NormalizePostcode(postcode)
	if !postcodeRegex.MatchString(normalized) {
		return geo.Point{}, fmt.Errorf("%w: %q is not a valid UK postcode", usecase.ErrInvalidInput, postcode)
	}

	out, err := c.cache.GetOrLoad(ctx, "postcode:"+normalized, func(ctx context.Context) (any, error) {
		return c.lookup(ctx, normalized)
	})
	if err != nil {
		return geo.Point{}, err
	}

	point, ok := out.(geo.Point)
	if !ok {
		return geo.Point{}, fmt.Errorf("unexpected cache payload type %T", out)
	}
	return point, nil
}

type postcodeEnvelope struct {
	Status int            `json:"status"`
	Result postcodeResult `json:"result"`
}

type postcodeResult struct {
	Postcode  string   `json:"postcode"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

func (c *Client) lookup(ctx context.Context, postcode string) (geo.Point, error) {
	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "geocode circuit breaker rejected request", "state", c.breaker.State())
			return geo.Point{}, fmt.Errorf("%w: geocoding service is temporarily unavailable", usecase.ErrDependencyUnavailable)
		}
	}

	fullURL := c.baseURL + "/postcodes/" + url.PathEscape(postcode)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return geo.Point{}, fmt.Errorf("build geocode request: %w", err)
	}
	req.Header.Set("accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.recordFailure()
		c.logger.WarnContext(ctx, "geocode request failed", "url", fullURL, "error", err)
		return geo.Point{}, fmt.Errorf("%w: send geocode request: %v", usecase.ErrDependencyUnavailable, err)
	}

	raw, readErr := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	_ = resp.Body.Close()
	if readErr != nil {
		c.recordFailure()
		return geo.Point{}, fmt.Errorf("%w: read geocode response: %v", usecase.ErrDependencyUnavailable, readErr)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		// The provider answered; only this postcode is unknown.
		c.recordSuccess()
		return geo.Point{}, fmt.Errorf("%w: postcode=%s", usecase.ErrNotFound, postcode)
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		c.recordSuccess()
	case resp.StatusCode >= 500:
		c.recordFailure()
		return geo.Point{}, fmt.Errorf("%w: geocode provider status=%d", usecase.ErrDependencyUnavailable, resp.StatusCode)
	default:
		c.recordSuccess()
		return geo.Point{}, fmt.Errorf("%w: geocode provider status=%d", usecase.ErrDependencyUnavailable, resp.StatusCode)
	}

	var envelope postcodeEnvelope
	if err := sonic.Unmarshal(raw, &envelope); err != nil {
		return geo.Point{}, crerr.Wrap(err, "decode geocode payload")
	}
	if envelope.Result.Latitude == nil || envelope.Result.Longitude == nil {
		// A handful of valid postcodes carry no coordinates.
		return geo.Point{}, fmt.Errorf("%w: postcode=%s has no coordinates", usecase.ErrNotFound, postcode)
	}

	return geo.Point{
		Latitude:  *envelope.Result.Latitude,
		Longitude: *envelope.Result.Longitude,
	}, nil
}

func (c *Client) recordFailure() {
	if c.circuitEnabled {
		c.breaker.RecordFailure()
	}
}

func (c *Client) recordSuccess() {
	if c.circuitEnabled {
		c.breaker.RecordSuccess()
	}
}
