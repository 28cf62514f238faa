package geo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrossetti/notekeep/internal/note"
)

func TestFixed_RequestLocation(t *testing.T) {
	loc, err := Fixed{Lat: 45.07, Lng: 7.68}.RequestLocation(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 45.07, loc.Coordinates.Lat)
	assert.Equal(t, 7.68, loc.Coordinates.Lng)
	assert.Empty(t, loc.City)
}

func TestFixed_UnconfiguredIsUnavailable(t *testing.T) {
	_, err := Fixed{}.RequestLocation(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestFixed_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Fixed{Lat: 1, Lng: 1}.RequestLocation(ctx)
	assert.ErrorIs(t, err, ErrTimeout)
}

func newReverseServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/reverse", r.URL.Path)
		assert.Equal(t, "json", r.URL.Query().Get("format"))
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestClient_Resolve(t *testing.T) {
	srv := newReverseServer(t, http.StatusOK,
		`{"address": {"city": "Torino", "country": "Italia"}}`)
	c := NewClient(srv.URL)

	city, err := c.ResolveCity(context.Background(), 45.07, 7.68)
	require.NoError(t, err)
	assert.Equal(t, "Torino", city)

	country, err := c.ResolveCountry(context.Background(), 45.07, 7.68)
	require.NoError(t, err)
	assert.Equal(t, "Italia", country)
}

func TestClient_ServerError(t *testing.T) {
	srv := newReverseServer(t, http.StatusTooManyRequests, `{}`)
	c := NewClient(srv.URL)

	_, err := c.ResolveCity(context.Background(), 1, 2)
	assert.Error(t, err)
}

func TestClient_Annotate(t *testing.T) {
	srv := newReverseServer(t, http.StatusOK,
		`{"address": {"city": "Torino", "country": "Italia"}}`)
	c := NewClient(srv.URL)

	loc := &note.Location{Coordinates: note.Coordinates{Lat: 45.07, Lng: 7.68}}
	c.Annotate(context.Background(), loc)

	assert.Equal(t, "Torino", loc.City)
	assert.Equal(t, "Italia", loc.Country)
}

func TestClient_AnnotateFailureLeavesLocationUsable(t *testing.T) {
	srv := newReverseServer(t, http.StatusInternalServerError, ``)
	c := NewClient(srv.URL)

	loc := &note.Location{Coordinates: note.Coordinates{Lat: 1, Lng: 2}}
	c.Annotate(context.Background(), loc)

	// Coordinates survive; the annotations simply stay empty.
	assert.Equal(t, 1.0, loc.Coordinates.Lat)
	assert.Empty(t, loc.City)
	assert.Empty(t, loc.Country)

	c.Annotate(context.Background(), nil)
}
