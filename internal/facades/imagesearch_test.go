package facades

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImageSearchFacade_GoogleFirst(t *testing.T) {
	google := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "charizard", r.URL.Query().Get("q"))
		assert.Equal(t, "image", r.URL.Query().Get("searchType"))
		w.Write([]byte(`{"items": [{"link": "https://img.example/google.jpg"}]}`))
	}))
	defer google.Close()

	duckCalled := false
	duck := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		duckCalled = true
	}))
	defer duck.Close()

	f := NewImageSearchFacade(google.Client(), google.URL, duck.URL, "key", "cx")

	img := f.Search(context.Background(), "charizard")

	assert.Equal(t, "https://img.example/google.jpg", img)
	assert.False(t, duckCalled, "duckduckgo must not be queried when google succeeds")
}

func TestImageSearchFacade_FallsBackToDuckDuckGo(t *testing.T) {
	google := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"items": []}`))
	}))
	defer google.Close()

	duck := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "charizard", r.URL.Query().Get("q"))
		w.Write([]byte(`{"results": [{"image": "https://img.example/duck.jpg"}]}`))
	}))
	defer duck.Close()

	f := NewImageSearchFacade(google.Client(), google.URL, duck.URL, "key", "cx")

	img := f.Search(context.Background(), "charizard")
	assert.Equal(t, "https://img.example/duck.jpg", img)
}

func TestImageSearchFacade_GoogleSkippedWithoutCredentials(t *testing.T) {
	googleCalled := false
	google := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		googleCalled = true
	}))
	defer google.Close()

	duck := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results": [{"image": "https://img.example/duck.jpg"}]}`))
	}))
	defer duck.Close()

	f := NewImageSearchFacade(duck.Client(), google.URL, duck.URL, "", "")

	img := f.Search(context.Background(), "charizard")

	assert.Equal(t, "https://img.example/duck.jpg", img)
	assert.False(t, googleCalled)
}

func TestImageSearchFacade_EmptyWhenBothFail(t *testing.T) {
	google := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer google.Close()

	duck := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results": []}`))
	}))
	defer duck.Close()

	f := NewImageSearchFacade(google.Client(), google.URL, duck.URL, "key", "cx")

	img := f.Search(context.Background(), "charizard")
	assert.Empty(t, img)
}

func TestImageSearchFacade_TransportErrorsAbsorbed(t *testing.T) {
	google := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	google.Close()
	duck := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	duck.Close()

	f := NewImageSearchFacade(http.DefaultClient, google.URL, duck.URL, "key", "cx")

	img := f.Search(context.Background(), "charizard")
	assert.Empty(t, img)
}
