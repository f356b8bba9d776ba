package foursquare

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"bizradar/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{
		Foursquare: &config.FoursquareConfig{
			APIKey:               "test-key",
			BaseURL:              server.URL,
			Timeout:              5 * time.Second,
			RateLimitMaxRequests: 50,
			RateLimitWindow:      time.Hour,
		},
	}

	client, ok := NewClient(cfg, slog.New(slog.DiscardHandler)).(*Client)
	require.True(t, ok)
	client.sleep = func(time.Duration) {} // no real cool-downs in tests

	return client, server
}

func TestClient_SearchNearby_MapsResults(t *testing.T) {
	var gotAuth, gotQuery string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"results": [
			{
				"fsq_id": "abc123",
				"name": "Blue Bottle",
				"categories": [{"name": "Coffee Shop"}, {"name": "Cafe"}],
				"location": {"latitude": 40.7, "longitude": -74.0, "address": "1 Main St", "locality": "New York", "region": "NY", "postcode": "10001", "country": "US"},
				"rating": 4.5,
				"website": "https://bluebottle.example",
				"tel": "+1 212 555 0100",
				"verified": true,
				"popularity": 0.9
			},
			{"fsq_id": "", "name": "Nameless"},
			{"fsq_id": "noname1"}
		]}`))
	}))

	places, err := client.SearchNearby(context.Background(), 40.7, -74.0, 1000, []string{"coffee"}, 50)
	require.NoError(t, err)

	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Contains(t, gotQuery, "radius=1000")
	assert.Contains(t, gotQuery, "categories=coffee")

	// The two results missing required fields are dropped, not fatal.
	require.Len(t, places, 1)
	place := places[0]
	assert.Equal(t, "abc123", place.ID)
	assert.Equal(t, "Blue Bottle", place.Name)
	assert.Equal(t, []string{"Coffee Shop", "Cafe"}, place.Categories)
	assert.Equal(t, "New York", place.Location.City)
	require.NotNil(t, place.Rating)
	assert.InDelta(t, 4.5, *place.Rating, 0.001)
	assert.True(t, place.Verified)
	assert.Equal(t, "+1 212 555 0100", place.Phone)
}

func TestClient_SearchNearby_ServerErrorYieldsEmptyResult(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))

	places, err := client.SearchNearby(context.Background(), 0, 0, 500, nil, 10)
	assert.NoError(t, err)
	assert.Empty(t, places)
}

func TestClient_AuthFailureSurfacesDistinctly(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	}))

	_, err := client.SearchNearby(context.Background(), 0, 0, 500, nil, 10)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAuthFailed)
}

func TestClient_RateLimitedRetriesThenSucceeds(t *testing.T) {
	var calls int
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			http.Error(w, "slow down", http.StatusTooManyRequests)

			return
		}
		_, _ = w.Write([]byte(`{"results": [{"fsq_id": "x1", "name": "Survivor"}]}`))
	}))

	places, err := client.SearchNearby(context.Background(), 0, 0, 500, nil, 10)
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	require.Len(t, places, 1)
	assert.Equal(t, "Survivor", places[0].Name)
}

func TestClient_PersistentRateLimitGivesUp(t *testing.T) {
	var calls int
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		http.Error(w, "slow down", http.StatusTooManyRequests)
	}))

	_, err := client.SearchNearby(context.Background(), 0, 0, 500, nil, 10)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRateLimited)
	assert.Equal(t, maxAttempts, calls)
}

func TestClient_TransportErrorIsReturned(t *testing.T) {
	client, server := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	_, err := client.SearchNearby(context.Background(), 0, 0, 500, nil, 10)
	assert.Error(t, err)
}

// Scheduled scans and operator-triggered trending reads share one client, so
// overlapping calls must be safe on the shared rate limiter.
func TestClient_ConcurrentSearchAndTrending(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"results": [{"fsq_id": "c1", "name": "Shared", "popularity": 0.9}]}`))
	}))

	const rounds = 20

	var wg sync.WaitGroup
	errs := make(chan error, 2*rounds)

	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < rounds; i++ {
			_, err := client.SearchNearby(context.Background(), 40.7, -74.0, 1000, nil, 10)
			errs <- err
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < rounds; i++ {
			_, err := client.GetTrending(context.Background(), 40.7, -74.0, 1000)
			errs <- err
		}
	}()
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}
}

func TestClient_GetTrending_FiltersAndOrders(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"results": [
			{"fsq_id": "p3", "name": "Mid", "popularity": 0.6},
			{"fsq_id": "p2", "name": "Hot", "popularity": 0.8},
			{"fsq_id": "p1", "name": "Hottest", "popularity": 0.9},
			{"fsq_id": "p4", "name": "Cold", "popularity": 0.5},
			{"fsq_id": "p5", "name": "Unknown"}
		]}`))
	}))

	trending, err := client.GetTrending(context.Background(), 0, 0, 1000)
	require.NoError(t, err)

	require.Len(t, trending, 2)
	assert.Equal(t, "Hottest", trending[0].Name)
	assert.Equal(t, "Hot", trending[1].Name)
}

func TestClient_GetDetails(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/abc123", r.URL.Path)
		_, _ = w.Write([]byte(`{"fsq_id": "abc123", "name": "Blue Bottle", "verified": true}`))
	}))

	place, err := client.GetDetails(context.Background(), "abc123")
	require.NoError(t, err)
	require.NotNil(t, place)
	assert.Equal(t, "Blue Bottle", place.Name)
	assert.True(t, place.Verified)
}
