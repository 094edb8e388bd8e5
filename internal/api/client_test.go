package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuickSearchSendsQueryParams(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/quicksearch", r.URL.Path)
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "bert", r.URL.Query().Get("q"))
		assert.Equal(t, "5", r.URL.Query().Get("limit"))
		assert.Equal(t, "model", r.URL.Query().Get("type"))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"models": []map[string]any{{"id": "bert-base-uncased"}},
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	resp, err := client.QuickSearch(context.Background(), "bert", 5, "model")
	require.NoError(t, err)
	require.Len(t, resp.Models, 1)
	assert.Equal(t, "bert-base-uncased", resp.Models[0].ID)
}

func TestQuickSearchOmitsTypeWhenEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, present := r.URL.Query()["type"]
		assert.False(t, present)
		_ = json.NewEncoder(w).Encode(map[string]any{})
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).QuickSearch(context.Background(), "bert", 5, "")
	require.NoError(t, err)
}

func TestQuickSearchDecodesAllCategories(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"models":   []map[string]any{{"id": "m"}},
			"datasets": []map[string]any{{"id": "d"}},
			"spaces":   []map[string]any{{"id": "s"}},
			"users":    []map[string]any{{"user": "u", "fullname": "User U", "avatarUrl": "/a.png"}},
			"orgs":     []map[string]any{{"name": "o", "fullname": "Org O"}},
		})
	}))
	defer srv.Close()

	resp, err := NewClient(srv.URL).QuickSearch(context.Background(), "x", 5, "")
	require.NoError(t, err)
	assert.Equal(t, "m", resp.Models[0].ID)
	assert.Equal(t, "d", resp.Datasets[0].ID)
	assert.Equal(t, "s", resp.Spaces[0].ID)
	assert.Equal(t, "u", resp.Users[0].User)
	assert.Equal(t, "/a.png", resp.Users[0].AvatarURL)
	assert.Equal(t, "o", resp.Orgs[0].Name)
}

func TestQuickSearchHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "limit too large", http.StatusBadRequest)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).QuickSearch(context.Background(), "bert", 99, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 400")
	assert.Contains(t, err.Error(), "limit too large")
}

func TestQuickSearchMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).QuickSearch(context.Background(), "bert", 5, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode response")
}

func TestQuickSearchCancellationSurfacesContextError(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer srv.Close()
	defer close(release)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	_, err := NewClient(srv.URL).QuickSearch(ctx, "bert", 5, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestHitsByResponseKey(t *testing.T) {
	resp := &QuickSearchResponse{Models: []Hit{{ID: "m"}}}
	assert.Len(t, resp.Hits("models"), 1)
	assert.Nil(t, resp.Hits("datasets"))
	assert.Nil(t, resp.Hits("unknown"))

	var nilResp *QuickSearchResponse
	assert.Nil(t, nilResp.Hits("models"))
}
