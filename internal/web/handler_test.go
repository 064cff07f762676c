package web

import (
	"net/http"
	"net/http/httptest"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s3r3ga/ftracker/internal/storage"
)

func newTestHandler(t *testing.T) (*Handler, *storage.Store) {
	t.Helper()

	store, err := storage.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	h, err := NewHandler(store)
	require.NoError(t, err)
	return h, store
}

func TestHealth(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := httptest.NewRecorder()
	h.Routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}

func TestIndexShowsTotals(t *testing.T) {
	h, store := newTestHandler(t)

	require.NoError(t, store.SaveSession(&storage.Session{
		TrainingType: "Running", Duration: 1, Distance: 9.75, Speed: 9.75, Calories: 699.75, Source: "sample/1",
	}))

	rec := httptest.NewRecorder()
	h.Routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Running")
	assert.Contains(t, rec.Body.String(), "9.750")
}

func TestSessionListFiltersByType(t *testing.T) {
	h, store := newTestHandler(t)

	require.NoError(t, store.SaveSession(&storage.Session{TrainingType: "Running", Source: "a"}))
	require.NoError(t, store.SaveSession(&storage.Session{TrainingType: "Swimming", Source: "b"}))

	rec := httptest.NewRecorder()
	h.Routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/sessions?type=Swimming", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Swimming")
	assert.NotContains(t, rec.Body.String(), "Running")
}

func TestUnknownPathIs404(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := httptest.NewRecorder()
	h.Routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
