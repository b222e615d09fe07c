// Package pokeapi lädt die Pokémon-Liste von der PokeAPI.
package pokeapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
)

// listResponse entspricht GET /pokemon?limit=N.
type listResponse struct {
	Results []struct {
		Name string `json:"name"`
	} `json:"results"`
}

// Source holt Namen über einen retryablehttp-Client.
type Source struct {
	baseURL string
	client  *retryablehttp.Client
}

// NewSource erstellt eine Quelle für baseURL (z. B. "https://pokeapi.co/api/v2").
// retryMax begrenzt die Wiederholungen, timeout gilt pro Versuch.
func NewSource(baseURL string, retryMax int, timeout time.Duration) *Source {
	c := retryablehttp.NewClient()
	c.RetryMax = retryMax
	c.RetryWaitMin = 200 * time.Millisecond
	c.RetryWaitMax = 2 * time.Second
	c.HTTPClient.Timeout = timeout
	c.Logger = nil
	return &Source{baseURL: strings.TrimRight(baseURL, "/"), client: c}
}

// Fetch gibt bis zu limit Rohnamen in Upstream-Reihenfolge zurück. Ein
// negatives limit kürzt nicht.
func (s *Source) Fetch(ctx context.Context, limit int) ([]string, error) {
	u := s.baseURL + "/pokemon?" + url.Values{"limit": {strconv.Itoa(limit)}}.Encode()

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("anfrage erstellen: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("pokeapi abrufen: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("pokeapi antwortet mit status %d", resp.StatusCode)
	}

	var body listResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("antwort dekodieren: %w", err)
	}

	names := make([]string, 0, len(body.Results))
	for _, r := range body.Results {
		names = append(names, r.Name)
	}
	if limit >= 0 && len(names) > limit {
		names = names[:limit]
	}
	return names, nil
}
