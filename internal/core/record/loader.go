package record

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// datasetPayload is the wire shape of the dataset document.
type datasetPayload struct {
	Items []BaseRecord `json:"items"`
}

// fetchTimeout bounds the one-time dataset fetch at startup.
const fetchTimeout = 15 * time.Second

// LoadDataset fetches and parses the base record collection from source,
// which is either an http(s) URL or a local file path.
//
// This runs exactly once at startup. Any failure (transport, non-2xx status,
// malformed document) is returned to the caller, which treats it as fatal;
// there is no retry.
func LoadDataset(ctx context.Context, source string) ([]BaseRecord, error) {
	var data []byte
	var err error

	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		data, err = fetchHTTP(ctx, source)
	} else {
		data, err = os.ReadFile(source)
	}
	if err != nil {
		return nil, fmt.Errorf("dataset: failed to load %q: %w", source, err)
	}

	var payload datasetPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("dataset: malformed document at %q: %w", source, err)
	}

	return payload.Items, nil
}

// fetchHTTP performs the one-shot dataset GET with a bounded deadline.
func fetchHTTP(ctx context.Context, url string) ([]byte, error) {
	fetchCtx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	request, err := http.NewRequestWithContext(fetchCtx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	response, err := http.DefaultClient.Do(request)
	if err != nil {
		return nil, err
	}
	defer func() { _ = response.Body.Close() }()

	if response.StatusCode < 200 || response.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status %d", response.StatusCode)
	}

	return io.ReadAll(io.LimitReader(response.Body, maxDatasetBytes))
}

// maxDatasetBytes caps the dataset download; the real collections are a few
// hundred kilobytes.
const maxDatasetBytes = 64 << 20
