package salesapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Veraticus/salesdash/internal/sales"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(server.URL, WithTimeout(5*time.Second))
	require.NoError(t, err)
	return client
}

func TestNewClient(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
		want    string
		wantErr bool
	}{
		{name: "default", baseURL: "", want: DefaultBaseURL},
		{name: "trailing slash", baseURL: "http://example.test/api/", want: "http://example.test/api"},
		{name: "https", baseURL: "https://sales.example.test", want: "https://sales.example.test"},
		{name: "bad scheme", baseURL: "ftp://example.test", wantErr: true},
		{name: "unparseable", baseURL: "http://[::1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewClient(tt.baseURL)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.BaseURL())
		})
	}
}

func TestClient_Records(t *testing.T) {
	var gotPath, gotPage, gotMonth string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		gotPage = r.URL.Query().Get("page")
		gotMonth = r.URL.Query().Get("month")
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"transactions":[{"id":1,"title":"Mens Cotton Jacket","category":"men's clothing","description":"great outerwear","price":55.99}],"totalPages":4}`)
	})

	page, err := client.Records(context.Background(), "cotton jacket", 2, sales.Month(3))
	require.NoError(t, err)

	assert.Equal(t, "/products/cotton%20jacket", gotPath)
	assert.Equal(t, "2", gotPage)
	assert.Equal(t, "03", gotMonth)
	assert.Equal(t, 4, page.TotalPages)
	require.Len(t, page.Records, 1)
	assert.Equal(t, sales.RecordID("1"), page.Records[0].ID)
	assert.Equal(t, "Mens Cotton Jacket", page.Records[0].Title)
	assert.Equal(t, 55.99, page.Records[0].Price)
}

func TestClient_RecordsEmptySearch(t *testing.T) {
	var gotPath string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		fmt.Fprint(w, `[]`)
	})

	page, err := client.Records(context.Background(), "", 1, sales.Month(11))
	require.NoError(t, err)

	assert.Equal(t, "/products/", gotPath)
	assert.Empty(t, page.Records)
	assert.NotNil(t, page.Records)
	assert.Equal(t, 1, page.TotalPages)
}

func TestClient_Statistics(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/statistics", r.URL.Path)
		assert.Equal(t, "07", r.URL.Query().Get("month"))
		fmt.Fprint(w, `[1000.5, 7, 3]`)
	})

	stats, err := client.Statistics(context.Background(), sales.Month(7))
	require.NoError(t, err)

	assert.Equal(t, sales.Statistics{TotalSaleAmount: 1000.5, TotalSoldItems: 7, TotalUnsoldItems: 3}, stats)
	assert.Equal(t, "$1000.50", stats.FormatSaleAmount())
}

func TestClient_BarChart(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/barchart", r.URL.Path)
		fmt.Fprint(w, `{"Electronics": 4, "Toys": 2}`)
	})

	series, err := client.BarChart(context.Background(), sales.Month(1))
	require.NoError(t, err)

	assert.Equal(t, sales.ChartSeries{"Electronics": 4, "Toys": 2}, series)
}

func TestClient_StatusError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "database unavailable", http.StatusInternalServerError)
	})

	_, err := client.Statistics(context.Background(), sales.Month(3))
	require.Error(t, err)

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusInternalServerError, statusErr.StatusCode)
	assert.Equal(t, "/statistics", statusErr.Path)
	assert.Contains(t, err.Error(), "database unavailable")
}

func TestClient_MalformedBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"Electronics": "many"`)
	})

	_, err := client.BarChart(context.Background(), sales.Month(3))
	assert.Error(t, err)
}

func TestClient_ContextCanceled(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{}`)
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.BarChart(ctx, sales.Month(3))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestClient_RateLimitHonorsContext(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{}`)
	})
	WithRateLimit(0.001, 1)(client)

	_, err := client.BarChart(context.Background(), sales.Month(3))
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err = client.BarChart(ctx, sales.Month(3))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "rate limiter")
}

func TestClient_WithHTTPClient(t *testing.T) {
	server := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"Toys": 2}`)
	}))
	t.Cleanup(server.Close)

	client, err := NewClient(server.URL, WithHTTPClient(server.Client()))
	require.NoError(t, err)

	series, err := client.BarChart(context.Background(), sales.DefaultMonth)
	require.NoError(t, err)
	assert.Equal(t, sales.ChartSeries{"Toys": 2}, series)
}

func TestClient_TimeoutLeavesSharedClientAlone(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
		}
		fmt.Fprint(w, `{}`)
	}))
	t.Cleanup(server.Close)

	tests := []struct {
		name string
		opts func(hc *http.Client) []Option
	}{
		{
			name: "timeout after http client",
			opts: func(hc *http.Client) []Option {
				return []Option{WithHTTPClient(hc), WithTimeout(20 * time.Millisecond)}
			},
		},
		{
			name: "timeout before http client",
			opts: func(hc *http.Client) []Option {
				return []Option{WithTimeout(20 * time.Millisecond), WithHTTPClient(hc)}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shared := &http.Client{}
			client, err := NewClient(server.URL, tt.opts(shared)...)
			require.NoError(t, err)

			_, err = client.BarChart(context.Background(), sales.DefaultMonth)
			require.Error(t, err)
			assert.ErrorIs(t, err, context.DeadlineExceeded)
			assert.Zero(t, shared.Timeout)
		})
	}
}
