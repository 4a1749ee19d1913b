package driven

import "context"

// DatasetFetcher downloads the canonical dataset from its fixed source
// location. The download is a whole-file fetch, not incremental.
type DatasetFetcher interface {
	// Fetch retrieves the dataset file. A response status outside the
	// 200-399 range or a transport failure wraps domain.ErrDownload.
	Fetch(ctx context.Context) ([]byte, error)
}

// ConnectivityChecker reports whether the network is reachable. It is
// consulted once per freshness evaluation; there is no continuous
// monitoring.
type ConnectivityChecker interface {
	// Online returns true when the dataset source looks reachable.
	Online(ctx context.Context) bool
}
