// Package download fetches the canonical dictionary dataset over HTTP.
package download

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/openlexica/lexa-cli/internal/core/domain"
	"github.com/openlexica/lexa-cli/internal/core/ports/driven"
	"github.com/openlexica/lexa-cli/internal/logger"
)

// DefaultDatasetURL is the fixed, versioned location of the published
// dictionary database.
const DefaultDatasetURL = "https://assets.openlexica.org/dictionary/v1/dictionary.db"

// defaultTimeout bounds the whole-file download.
const defaultTimeout = 2 * time.Minute

// Ensure Fetcher implements the interface.
var _ driven.DatasetFetcher = (*Fetcher)(nil)

// Fetcher downloads the dataset from a fixed URL.
type Fetcher struct {
	client *resty.Client
	url    string
}

// NewFetcher creates a dataset fetcher. If datasetURL is empty,
// DefaultDatasetURL is used.
func NewFetcher(datasetURL string) *Fetcher {
	if datasetURL == "" {
		datasetURL = DefaultDatasetURL
	}

	client := resty.New().
		SetTimeout(defaultTimeout).
		SetRetryCount(2)

	return &Fetcher{
		client: client,
		url:    datasetURL,
	}
}

// URL returns the dataset source URL.
func (f *Fetcher) URL() string {
	return f.url
}

// Host returns the host portion of the dataset URL, for reachability probes.
func (f *Fetcher) Host() string {
	u, err := url.Parse(f.url)
	if err != nil {
		return ""
	}
	return u.Host
}

// Fetch retrieves the full dataset file. Any transport failure or a
// response status outside 200-399 wraps domain.ErrDownload.
func (f *Fetcher) Fetch(ctx context.Context) ([]byte, error) {
	logger.Debug("downloading dataset from %s", f.url)

	res, err := f.client.R().
		SetContext(ctx).
		Get(f.url)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrDownload, err)
	}

	code := res.StatusCode()
	if code < 200 || code >= 400 {
		return nil, fmt.Errorf("%w: unexpected status %d", domain.ErrDownload, code)
	}

	logger.Debug("downloaded dataset: %d bytes", len(res.Body()))
	return res.Body(), nil
}
