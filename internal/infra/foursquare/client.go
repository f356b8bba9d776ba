// Package foursquare implements the PlaceSource contract against the
// Foursquare Places API.
package foursquare

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"bizradar/config"
	"bizradar/internal/domain/entity"
	"bizradar/internal/domain/service"

	"github.com/pkg/errors"
)

var (
	// ErrAuthFailed is returned on 401/403 responses. It is not self-healing
	// via retry, so it is surfaced distinctly to the operator.
	ErrAuthFailed = errors.New("foursquare authentication failed")

	// ErrRateLimited is returned when the API keeps answering 429 after the
	// bounded retries are exhausted.
	ErrRateLimited = errors.New("foursquare rate limit exceeded")
)

const (
	// cooldown is the fixed wait applied both when the local budget is spent
	// and when the API answers 429.
	cooldown = 60 * time.Second

	// maxAttempts bounds 429 retries of one logical request.
	maxAttempts = 3

	// maxSearchLimit is the hard result cap of the search endpoint.
	maxSearchLimit = 50

	trendingPopularityThreshold = 0.7
	trendingLimit               = 10

	searchFields = "fsq_id,name,categories,location,rating,hours,website,tel,verified,popularity"
	detailFields = searchFields + ",description,photos"
)

// Client is the authenticated HTTP client for the Foursquare Places API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	limiter    *RateLimiter
	logger     *slog.Logger

	// sleep is here so tests can skip real cool-downs.
	sleep func(time.Duration)
}

// NewClient creates a PlaceSource backed by the Foursquare Places API.
func NewClient(cfg *config.Config, logger *slog.Logger) service.PlaceSource {
	fsq := cfg.Foursquare

	return &Client{
		baseURL:    strings.TrimRight(fsq.BaseURL, "/"),
		apiKey:     fsq.APIKey,
		httpClient: &http.Client{Timeout: fsq.Timeout},
		limiter:    NewRateLimiter(fsq.RateLimitMaxRequests, fsq.RateLimitWindow),
		logger:     logger,
		sleep:      time.Sleep,
	}
}

// SearchNearby searches for places around a point. Results missing an id or
// name are dropped individually; expected HTTP failures yield an empty
// result with nil error.
func (c *Client) SearchNearby(ctx context.Context, lat, lon float64, radiusMeters int, categories []string, limit int) ([]*entity.PlaceRecord, error) {
	if limit <= 0 || limit > maxSearchLimit {
		limit = maxSearchLimit
	}

	query := url.Values{}
	query.Set("ll", fmt.Sprintf("%f,%f", lat, lon))
	query.Set("radius", strconv.Itoa(radiusMeters))
	query.Set("limit", strconv.Itoa(limit))
	query.Set("fields", searchFields)
	if len(categories) > 0 {
		query.Set("categories", strings.Join(categories, ","))
	}

	body, err := c.get(ctx, "search", query)
	if err != nil {
		return nil, err
	}
	if body == nil {
		return nil, nil
	}

	var payload struct {
		Results []placeResult `json:"results"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, errors.Wrap(err, "decode search response")
	}

	places := make([]*entity.PlaceRecord, 0, len(payload.Results))
	for i := range payload.Results {
		place := payload.Results[i].toRecord()
		if place == nil {
			c.logger.Warn("Dropping search result with missing required fields")

			continue
		}
		places = append(places, place)
	}

	return places, nil
}

// GetDetails fetches a single place by its identifier.
func (c *Client) GetDetails(ctx context.Context, id string) (*entity.PlaceRecord, error) {
	query := url.Values{}
	query.Set("fields", detailFields)

	body, err := c.get(ctx, url.PathEscape(id), query)
	if err != nil {
		return nil, err
	}
	if body == nil {
		return nil, nil
	}

	var result placeResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, errors.Wrap(err, "decode place details")
	}

	place := result.toRecord()
	if place == nil {
		c.logger.Error("Place details missing required fields", slog.String("id", id))
	}

	return place, nil
}

// GetTrending is a derived view over SearchNearby: places with popularity
// above the threshold, most popular first, capped at trendingLimit. The API
// has no dedicated trending endpoint.
func (c *Client) GetTrending(ctx context.Context, lat, lon float64, radiusMeters int) ([]*entity.PlaceRecord, error) {
	places, err := c.SearchNearby(ctx, lat, lon, radiusMeters, nil, maxSearchLimit)
	if err != nil {
		return nil, err
	}

	trending := make([]*entity.PlaceRecord, 0, len(places))
	for _, place := range places {
		if place.Popularity != nil && *place.Popularity > trendingPopularityThreshold {
			trending = append(trending, place)
		}
	}

	sort.SliceStable(trending, func(i, j int) bool {
		return *trending[i].Popularity > *trending[j].Popularity
	})
	if len(trending) > trendingLimit {
		trending = trending[:trendingLimit]
	}

	return trending, nil
}

// get performs one rate-limited GET against the API. A nil body with nil
// error means an expected HTTP failure that the caller should treat as an
// empty result.
func (c *Client) get(ctx context.Context, endpoint string, query url.Values) ([]byte, error) {
	requestURL := c.baseURL + "/" + endpoint + "?" + query.Encode()

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if !c.limiter.Allow() {
			c.logger.Warn("Request budget spent, cooling down",
				slog.Duration("cooldown", cooldown),
			)
			c.sleep(cooldown)
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
		if err != nil {
			return nil, errors.Wrap(err, "build foursquare request")
		}
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
		req.Header.Set("Accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, errors.Wrap(err, "foursquare request failed")
		}
		c.limiter.Record()

		body, readErr := io.ReadAll(resp.Body)
		resp.Body.Close()

		switch {
		case resp.StatusCode >= 200 && resp.StatusCode < 300:
			if readErr != nil {
				return nil, errors.Wrap(readErr, "read foursquare response")
			}

			return body, nil

		case resp.StatusCode == http.StatusTooManyRequests:
			c.logger.Warn("Rate limited by API",
				slog.Int("attempt", attempt),
				slog.Int("maxAttempts", maxAttempts),
			)
			if attempt < maxAttempts {
				c.sleep(cooldown)
			}

		case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
			return nil, errors.Wrapf(ErrAuthFailed, "status %d", resp.StatusCode)

		default:
			c.logger.Error("API request failed",
				slog.Int("status", resp.StatusCode),
				slog.String("body", truncate(string(body), 256)),
			)

			return nil, nil
		}
	}

	return nil, ErrRateLimited
}

// placeResult is the wire shape of a single place object.
type placeResult struct {
	FsqID      string `json:"fsq_id"`
	Name       string `json:"name"`
	Categories []struct {
		Name string `json:"name"`
	} `json:"categories"`
	Location struct {
		Latitude   float64 `json:"latitude"`
		Longitude  float64 `json:"longitude"`
		Address    string  `json:"address"`
		Locality   string  `json:"locality"`
		Region     string  `json:"region"`
		Postcode   string  `json:"postcode"`
		Country    string  `json:"country"`
	} `json:"location"`
	Rating     *float64 `json:"rating"`
	Website    string   `json:"website"`
	Tel        string   `json:"tel"`
	Verified   bool     `json:"verified"`
	Popularity *float64 `json:"popularity"`
}

// toRecord normalizes a wire result; nil when required fields are missing.
func (r *placeResult) toRecord() *entity.PlaceRecord {
	if r.FsqID == "" || r.Name == "" {
		return nil
	}

	categories := make([]string, 0, len(r.Categories))
	for _, category := range r.Categories {
		categories = append(categories, category.Name)
	}

	return &entity.PlaceRecord{
		ID:         r.FsqID,
		Name:       r.Name,
		Categories: categories,
		Location: entity.Location{
			Latitude:   r.Location.Latitude,
			Longitude:  r.Location.Longitude,
			Address:    r.Location.Address,
			City:       r.Location.Locality,
			State:      r.Location.Region,
			PostalCode: r.Location.Postcode,
			Country:    r.Location.Country,
		},
		Rating:     r.Rating,
		Popularity: r.Popularity,
		Verified:   r.Verified,
		Website:    r.Website,
		Phone:      r.Tel,
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}

	return s[:n]
}
