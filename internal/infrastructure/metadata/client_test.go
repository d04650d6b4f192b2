package metadata

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookcatalog-backend/internal/domains/book/model"
)

func TestNewClientRejectsRelativeURL(t *testing.T) {
	for _, base := range []string{"", "not-a-url", "/just/a/path", "example.com"} {
		_, err := NewClient(base, "key", time.Second)
		assert.Error(t, err, "base: %q", base)
	}

	_, err := NewClient("https://metadata.example.com", "key", time.Second)
	assert.NoError(t, err)
}

func TestFetchByISBN(t *testing.T) {
	var gotPath, gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"isbn": "9780441172719", "title": "Dune", "authors": [{"name": "Frank Herbert"}]}`))
	}))
	defer srv.Close()

	client, err := NewClient(srv.URL, "secret-key", time.Second)
	require.NoError(t, err)

	md, err := client.FetchByISBN(context.Background(), "9780441172719")
	require.NoError(t, err)

	assert.Equal(t, "/books/9780441172719", gotPath)
	assert.Equal(t, "Bearer secret-key", gotAuth)
	assert.Equal(t, "Dune", md.Title)
	require.Len(t, md.Authors, 1)
	assert.Equal(t, "Frank Herbert", md.Authors[0].Name)
}

func TestFetchByISBNBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client, err := NewClient(srv.URL, "key", time.Second)
	require.NoError(t, err)

	_, err = client.FetchByISBN(context.Background(), "9780441172719")
	assert.ErrorIs(t, err, model.ErrProviderResponse)
}

func TestFetchByISBNUndecodableBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("<html>definitely not json</html>"))
	}))
	defer srv.Close()

	client, err := NewClient(srv.URL, "key", time.Second)
	require.NoError(t, err)

	_, err = client.FetchByISBN(context.Background(), "9780441172719")
	assert.ErrorIs(t, err, model.ErrProviderResponse)
}

func TestFetchByISBNProviderDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	client, err := NewClient(srv.URL, "key", time.Second)
	require.NoError(t, err)
	srv.Close()

	_, err = client.FetchByISBN(context.Background(), "9780441172719")
	assert.ErrorIs(t, err, model.ErrProviderUnavailable)
}
