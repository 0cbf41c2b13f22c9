package dnd5e

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_BaseURLOverride(t *testing.T) {
	var (
		mu    sync.Mutex
		paths []string
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		paths = append(paths, r.URL.Path)
		mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/races":
			_, _ = w.Write([]byte(`{"count":1,"results":[{"index":"elf","name":"Elf","url":"/api/races/elf"}]}`))
		case "/races/elf":
			_, _ = w.Write([]byte(`{"index":"elf","name":"Elf","speed":30,"size":"Medium"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	// No trailing slash: the client must normalize before the upstream
	// concatenates paths onto it
	c, err := New(&Config{
		HTTPClient: server.Client(),
		BaseURL:    server.URL,
	})
	require.NoError(t, err)

	items, err := c.SearchRaces("elf")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Elf", items[0].Name)
	assert.Equal(t, "elf", items[0].Slug)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"/races", "/races/elf"}, paths)
}

func TestNew_NilConfig(t *testing.T) {
	_, err := New(nil)
	assert.Error(t, err)
}
