package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/nttbank/account-service/internal/apperrors"
	"github.com/nttbank/account-service/internal/middleware"
)

const maxErrorBodyBytes = 512

// Options tunes how an adapter talks to its collaborator.
type Options struct {
	// HTTPClient performs the requests. It carries the timeout and any outbound auth.
	HTTPClient *http.Client
	// MaxRetries is the number of extra attempts for idempotent reads.
	MaxRetries int
	// RetryBackoff is the delay before the first retry; it grows linearly.
	RetryBackoff time.Duration
}

// baseClient implements JSON over HTTP with error classification shared by all adapters.
type baseClient struct {
	name         string
	baseURL      string
	client       *http.Client
	maxRetries   int
	retryBackoff time.Duration
}

func newBaseClient(name, baseURL string, opts Options) baseClient {
	client := opts.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 5 * time.Second}
	}
	return baseClient{
		name:         name,
		baseURL:      strings.TrimRight(baseURL, "/"),
		client:       client,
		maxRetries:   max(opts.MaxRetries, 0),
		retryBackoff: opts.RetryBackoff,
	}
}

// getJSON decodes the response of GET path into out. It retries transport failures and 5xx.
// A 404 yields apperrors.ErrNotFound.
func (b baseClient) getJSON(ctx context.Context, path string, out any) error {
	var err error
	for attempt := 0; attempt <= b.maxRetries; attempt++ {
		if attempt > 0 {
			middleware.GetLoggerFromCtx(ctx).Warn("Retrying collaborator call",
				slog.String("collaborator", b.name),
				slog.String("path", path),
				slog.Int("attempt", attempt),
				slog.String("error", err.Error()))
			if werr := b.wait(ctx, attempt); werr != nil {
				return fmt.Errorf("%s GET %s: %w: %w", b.name, path, apperrors.ErrUpstream, werr)
			}
		}

		err = b.do(ctx, http.MethodGet, path, nil, out)
		if err == nil || !isRetryable(err) {
			return err
		}
	}
	return err
}

// postJSON sends body to path once; writes are never retried.
func (b baseClient) postJSON(ctx context.Context, path string, body any, out any) error {
	return b.do(ctx, http.MethodPost, path, body, out)
}

func (b baseClient) do(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: failed to marshal request: %w", b.name, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, b.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("%s: failed to create request: %w", b.name, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := b.client.Do(req)
	if err != nil {
		return &upstreamError{name: b.name, method: method, path: path, err: err, retryable: ctx.Err() == nil}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		_, _ = io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("%s %s %s: %w", b.name, method, path, apperrors.ErrNotFound)
	case resp.StatusCode >= 500:
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return &upstreamError{
			name: b.name, method: method, path: path, status: resp.StatusCode,
			err: fmt.Errorf("status %d: %s", resp.StatusCode, bytes.TrimSpace(snippet)), retryable: true,
		}
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return &upstreamError{
			name: b.name, method: method, path: path, status: resp.StatusCode,
			err: fmt.Errorf("status %d: %s", resp.StatusCode, bytes.TrimSpace(snippet)),
		}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &upstreamError{name: b.name, method: method, path: path, status: resp.StatusCode, err: fmt.Errorf("failed to parse response: %w", err)}
	}
	return nil
}

func (b baseClient) wait(ctx context.Context, attempt int) error {
	if b.retryBackoff <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(b.retryBackoff * time.Duration(attempt))
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// upstreamError is a failed collaborator call. It matches apperrors.ErrUpstream.
type upstreamError struct {
	name      string
	method    string
	path      string
	status    int
	err       error
	retryable bool
}

func (e *upstreamError) Error() string {
	return fmt.Sprintf("%s %s %s: %v: %v", e.name, e.method, e.path, apperrors.ErrUpstream, e.err)
}

func (e *upstreamError) Unwrap() []error {
	return []error{apperrors.ErrUpstream, e.err}
}

func isRetryable(err error) bool {
	var ue *upstreamError
	return errors.As(err, &ue) && ue.retryable
}
