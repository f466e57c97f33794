package datamodel

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// ErrFetch indicates the data model document could not be retrieved.
// The ingestion path exits early; nothing is written to the store.
var ErrFetch = errors.New("data model fetch failed")

// Fetch retrieves and decodes a data model document from url. A
// non-200 response yields ErrFetch.
func Fetch(ctx context.Context, client *http.Client, url string) (*Model, error) {
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s returned status %d", ErrFetch, url, resp.StatusCode)
	}

	var model Model
	if err := json.NewDecoder(resp.Body).Decode(&model); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", ErrFetch, url, err)
	}

	if err := model.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}

	return &model, nil
}
