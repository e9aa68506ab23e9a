package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"taskreport/internal/logger"
)

// DefaultTimeout bounds how long a collection fetch may take end to end.
const DefaultTimeout = 10 * time.Second

// Client retrieves raw JSON payloads from the remote collections.
type Client struct {
	http *http.Client
}

// NewClient creates a client with the given request timeout. A zero or
// negative timeout falls back to DefaultTimeout.
func NewClient(timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		http: &http.Client{Timeout: timeout},
	}
}

// Get fetches url and returns the response body. The response must be a 200
// with application/json in its content type; anything else is
// ErrUnexpectedResponse. Timeouts surface as ErrTimeout, connection
// failures as ErrConnection.
func (c *Client) Get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request for %s: %w", url, err)
	}

	logger.Fetch().WithField("url", url).Debug("fetching collection")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, classify(url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s returned status %d", ErrUnexpectedResponse, url, resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.Contains(ct, "application/json") {
		return nil, fmt.Errorf("%w: %s returned content type %q", ErrUnexpectedResponse, url, ct)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response from %s: %w", url, err)
	}

	return body, nil
}

func classify(url string, err error) error {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Errorf("%w: %s", ErrTimeout, url)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %s", ErrTimeout, url)
	}
	return fmt.Errorf("%w: %s: %v", ErrConnection, url, err)
}
