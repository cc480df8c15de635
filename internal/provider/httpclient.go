package provider

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"time"

	"resty.dev/v3"
)

// NewHTTPClient creates the HTTP client shared by providers.
// Providers issue exactly one request per invocation, so retries stay disabled.
// A zero timeout leaves the transport default in place.
func NewHTTPClient(baseURL string, timeout time.Duration) *resty.Client {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetRetryCount(0).
		OnError(errorHook)

	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return client
}

// errorHook logs failed request executions for observability
func errorHook(r *resty.Request, err error) {
	var respErr *resty.ResponseError
	if errors.As(err, &respErr) && respErr.Response != nil {
		slog.Debug("request failed with response",
			"url", r.URL,
			"status_code", respErr.Response.StatusCode(),
			"error", err.Error())
		return
	}

	slog.Debug("request failed",
		"url", r.URL,
		"error", err.Error())
}

// ClassifyTransportError maps an error returned by the HTTP client into a FetchError
func ClassifyTransportError(err error) *FetchError {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return NewTimeoutError(err)
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return NewTimeoutError(err)
	}

	return NewNetworkError(err)
}
