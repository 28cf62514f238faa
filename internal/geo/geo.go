// Package geo acquires a location for a note and resolves coordinates to a
// city and country through reverse geocoding. Both are optional collaborators:
// every failure here is non-fatal to note creation.
package geo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/mrossetti/notekeep/internal/note"
)

// Provider failure kinds.
var (
	ErrPermissionDenied = errors.New("location permission denied")
	ErrUnavailable      = errors.New("location unavailable")
	ErrTimeout          = errors.New("location request timed out")
	ErrUnknown          = errors.New("unknown location error")
)

// RequestTimeout bounds a location request; the only cancellation the core
// acknowledges.
const RequestTimeout = 15 * time.Second

// Provider yields the coordinates a note is tagged with.
type Provider interface {
	RequestLocation(ctx context.Context) (*note.Location, error)
}

// Fixed is a Provider pinned to configured coordinates. With no positioning
// hardware to ask, the configuration is the closest available analogue; an
// unconfigured Fixed reports the location as unavailable.
type Fixed struct {
	Lat float64
	Lng float64
}

func (f Fixed) RequestLocation(ctx context.Context) (*note.Location, error) {
	if err := ctx.Err(); err != nil {
		return nil, ErrTimeout
	}
	if f.Lat == 0 && f.Lng == 0 {
		return nil, ErrUnavailable
	}
	return &note.Location{
		Coordinates: note.Coordinates{Lat: f.Lat, Lng: f.Lng},
	}, nil
}

const defaultBaseURL = "https://nominatim.openstreetmap.org"

// Client reverse-geocodes coordinates against a Nominatim endpoint.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: RequestTimeout,
		},
	}
}

type reverseResponse struct {
	Address struct {
		City    string `json:"city"`
		Country string `json:"country"`
	} `json:"address"`
}

// ResolveCity returns the city at the coordinates, or "" when the lookup
// fails or the address has none.
func (c *Client) ResolveCity(ctx context.Context, lat, lng float64) (string, error) {
	resp, err := c.reverse(ctx, lat, lng)
	if err != nil {
		return "", err
	}
	return resp.Address.City, nil
}

// ResolveCountry returns the country at the coordinates, or "" when the
// lookup fails or the address has none.
func (c *Client) ResolveCountry(ctx context.Context, lat, lng float64) (string, error) {
	resp, err := c.reverse(ctx, lat, lng)
	if err != nil {
		return "", err
	}
	return resp.Address.Country, nil
}

// Annotate fills loc.City and loc.Country in place, ignoring individual
// lookup failures.
func (c *Client) Annotate(ctx context.Context, loc *note.Location) {
	if loc == nil {
		return
	}
	if city, err := c.ResolveCity(ctx, loc.Coordinates.Lat, loc.Coordinates.Lng); err == nil {
		loc.City = city
	}
	if country, err := c.ResolveCountry(ctx, loc.Coordinates.Lat, loc.Coordinates.Lng); err == nil {
		loc.Country = country
	}
}

func (c *Client) reverse(ctx context.Context, lat, lng float64) (*reverseResponse, error) {
	url := fmt.Sprintf("%s/reverse?format=json&lat=%f&lon=%f&zoom=18&addressdetails=1", c.baseURL, lat, lng)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("request failed with status %d", resp.StatusCode)
	}

	var decoded reverseResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &decoded, nil
}
