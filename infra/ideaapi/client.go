package ideaapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const requestIDHeader = "X-Request-ID"

// Client is a thin JSON wrapper for the idea board API.
// It handles base URL construction, request ids and logging.
type Client struct {
	http *resty.Client
	log  *zap.Logger
}

// NewClient creates a board API client. A zero timeout keeps the
// transport default. There are no retries.
func NewClient(baseURL string, timeout time.Duration, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	rc := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json")
	if timeout > 0 {
		rc.SetTimeout(timeout)
	}

	c := &Client{http: rc, log: log.Named("api")}
	rc.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		req.SetHeader(requestIDHeader, uuid.NewString())
		return nil
	})
	rc.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		req := resp.Request
		c.log.Debug("request done",
			zap.String("method", req.Method),
			zap.String("url", req.URL),
			zap.Int("status", resp.StatusCode()),
			zap.Duration("took", resp.Time()),
			zap.String("request_id", req.Header.Get(requestIDHeader)),
		)
		return nil
	})
	rc.OnError(func(req *resty.Request, err error) {
		c.log.Warn("request failed",
			zap.String("method", req.Method),
			zap.String("url", req.URL),
			zap.String("request_id", req.Header.Get(requestIDHeader)),
			zap.Error(err),
		)
	})
	return c
}

// GetJSON performs a GET and decodes the body into out. The status code is
// not inspected: a body that does not decode is the failure signal.
func (c *Client) GetJSON(ctx context.Context, path string, query url.Values, out any) error {
	req := c.http.R().SetContext(ctx)
	if len(query) > 0 {
		req.SetQueryParamsFromValues(query)
	}
	resp, err := req.Get(path)
	if err != nil {
		return fmt.Errorf("request to %s: %w", path, err)
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("decoding %s (status %d): %w", path, resp.StatusCode(), err)
	}
	return nil
}

// PostJSON sends body as JSON. Any response that arrives counts as success;
// only transport failures are returned.
func (c *Client) PostJSON(ctx context.Context, path string, body any) error {
	_, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post(path)
	if err != nil {
		return fmt.Errorf("request to %s: %w", path, err)
	}
	return nil
}
