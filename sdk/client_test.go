package sdk_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"tiny-cms/sdk"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFakeServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/public/articles", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"slug":"hello","title":"Hello","updated_at":"2026-08-01T10:00:00Z"}]`))
	})
	mux.HandleFunc("GET /api/v1/public/articles/hello", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"slug":"hello","title":"Hello","body":{"type":"doc","content":[{"type":"paragraph"}]},"updated_at":"2026-08-01T10:00:00Z"}`))
	})
	mux.HandleFunc("GET /api/v1/theme", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":1,"preset":"default","overrides":{"primaryColor":"#123"},"updated_at":"2026-08-01T10:00:00Z"}`))
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"article not found"}`))
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestClientGetArticles(t *testing.T) {
	server := newFakeServer(t)
	client := sdk.NewClient(server.URL + "/")

	items, err := client.GetArticles(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "hello", items[0].Slug)
	assert.Equal(t, "Hello", items[0].Title)
}

func TestClientGetArticle(t *testing.T) {
	server := newFakeServer(t)
	client := sdk.NewClient(server.URL)

	article, err := client.GetArticle(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, "hello", article.Slug)
	assert.Equal(t, "doc", article.Body.Type)
}

func TestClientGetTheme(t *testing.T) {
	server := newFakeServer(t)
	client := sdk.NewClient(server.URL)

	theme, err := client.GetTheme(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "default", theme.Preset)
	assert.Equal(t, "#123", theme.Overrides["primaryColor"])
}

func TestClientNotFound(t *testing.T) {
	server := newFakeServer(t)
	client := sdk.NewClient(server.URL)

	_, err := client.GetArticle(context.Background(), "missing")
	var apiErr *sdk.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Contains(t, apiErr.Body, "not found")
}
