package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Get_SendsHeadersAndParams(t *testing.T) {
	var gotPath, gotQuery, gotHeader string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		gotHeader = r.Header.Get("X-Test")
		w.Write([]byte(`{"ok": true}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/", map[string]string{"X-Test": "yes"})
	var out struct {
		OK bool `json:"ok"`
	}
	params := map[string][]string{"a": {"1"}}
	require.NoError(t, c.Get(context.Background(), "/things", params, &out))

	assert.True(t, out.OK)
	assert.Equal(t, "/things", gotPath)
	assert.Equal(t, "a=1", gotQuery)
	assert.Equal(t, "yes", gotHeader)
}

func TestClient_Get_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil)
	var out interface{}
	err := c.Get(context.Background(), "x", nil, &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
}

func TestClient_Get_BadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil)
	var out interface{}
	assert.Error(t, c.Get(context.Background(), "x", nil, &out))
}

func TestGitHubRepos(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/octocat/repos", r.URL.Path)
		assert.Equal(t, "updated", r.URL.Query().Get("sort"))
		assert.Equal(t, "5", r.URL.Query().Get("per_page"))
		w.Write([]byte(`[
			{"name":"hello","description":"demo","language":"Go",
			 "stargazers_count":42,"forks_count":7,
			 "html_url":"https://example.com/hello","updated_at":"2024-06-01T00:00:00Z"},
			{"name":"bare","stargazers_count":0,"forks_count":0,
			 "html_url":"https://example.com/bare","updated_at":"2024-05-01T00:00:00Z"}
		]`))
	}))
	defer srv.Close()

	repos, err := GitHubRepos(context.Background(), NewClient(srv.URL, nil), "octocat", 5)
	require.NoError(t, err)
	require.Len(t, repos, 2)

	assert.Equal(t, "hello", repos[0].Name)
	assert.Equal(t, 42, repos[0].Stars)
	assert.Equal(t, "Go", repos[0].Language)

	assert.Equal(t, "No description", repos[1].Description, "empty description gets a placeholder")
	assert.Equal(t, "Unknown", repos[1].Language, "empty language gets a placeholder")
}

func TestCurrentWeather(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/weather", r.URL.Path)
		assert.Equal(t, "London", r.URL.Query().Get("q"))
		assert.Equal(t, "metric", r.URL.Query().Get("units"))
		assert.Equal(t, "key123", r.URL.Query().Get("appid"))
		w.Write([]byte(`{
			"name":"London",
			"main":{"temp":18.2,"feels_like":17.5,"humidity":70},
			"weather":[{"description":"light rain"}],
			"wind":{"speed":4.1}
		}`))
	}))
	defer srv.Close()

	w, err := CurrentWeather(context.Background(), NewClient(srv.URL, nil), "London", "key123")
	require.NoError(t, err)
	assert.Equal(t, "London", w.City)
	assert.InDelta(t, 18.2, w.Temperature, 0.001)
	assert.Equal(t, "light rain", w.Description)
	assert.Equal(t, 70, w.Humidity)
	assert.NotEmpty(t, w.Timestamp)
}

func TestDemoWeather(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	w := DemoWeather("Paris", now)
	assert.Equal(t, "Paris", w.City)
	assert.Equal(t, now.Format(time.RFC3339), w.Timestamp)
	assert.NotZero(t, w.Temperature)
}

func TestFetchCoinPrice(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/coins/bitcoin", r.URL.Path)
		w.Write([]byte(`{
			"name":"Bitcoin","symbol":"btc",
			"market_data":{
				"current_price":{"usd":65000.5},
				"market_cap":{"usd":1280000000000},
				"price_change_percentage_24h":-1.23,
				"high_24h":{"usd":66000},
				"low_24h":{"usd":64000}
			}
		}`))
	}))
	defer srv.Close()

	p, err := FetchCoinPrice(context.Background(), NewClient(srv.URL, nil), "bitcoin")
	require.NoError(t, err)
	assert.Equal(t, "Bitcoin", p.Name)
	assert.Equal(t, "BTC", p.Symbol)
	assert.InDelta(t, 65000.5, p.PriceUSD, 0.001)
	assert.InDelta(t, -1.23, p.Change24h, 0.001)
}

func TestFetchCoinPrice_UnknownCoin(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	_, err := FetchCoinPrice(context.Background(), NewClient(srv.URL, nil), "nocoin")
	assert.Error(t, err)
}
