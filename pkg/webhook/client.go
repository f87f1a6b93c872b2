// The webhook package implements the HTTP side of the workflow: registering to
// obtain a dataset, and posting the computed outcome to the callback URL.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/puzpuzpuz/xsync/v3"
	"github.com/vertex-lab/follows-webhook/pkg/models"
	"github.com/vertex-lab/follows-webhook/pkg/utils/logger"
)

// bodies bigger than this are truncated when read
const maxBodySize int64 = 10 << 20

// Client talks with the generate-webhook endpoint and with the callbacks it returns.
// Registration is retried only on connection errors and 5xx/429 responses,
// while submissions are retried on any failure.
type Client struct {
	config   ClientConfig
	log      *logger.Aggregate
	register *retryablehttp.Client
	callback *retryablehttp.Client
	attempts *xsync.Counter
}

// NewClient() returns a Client using the specified config.
func NewClient(config ClientConfig) (*Client, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	log := config.Log
	if log == nil {
		log = logger.New(io.Discard)
	}

	c := &Client{
		config:   config,
		log:      log,
		attempts: xsync.NewCounter(),
	}

	c.register = c.newRetryClient(retryablehttp.DefaultRetryPolicy)
	c.callback = c.newRetryClient(RetryOnFailure)
	return c, nil
}

func (c *Client) newRetryClient(policy retryablehttp.CheckRetry) *retryablehttp.Client {
	cl := retryablehttp.NewClient()
	cl.HTTPClient.Timeout = c.config.Timeout
	cl.RetryMax = c.config.RetryMax
	cl.RetryWaitMin = c.config.RetryWaitMin
	cl.RetryWaitMax = c.config.RetryWaitMax
	cl.CheckRetry = policy
	cl.Logger = logger.Leveled{Aggregate: c.log}

	// return the last response as it is, so that its status can be reported
	cl.ErrorHandler = retryablehttp.PassthroughErrorHandler

	cl.RequestLogHook = func(_ retryablehttp.Logger, req *http.Request, attempt int) {
		c.attempts.Inc()
		if attempt > 0 {
			c.log.Warn("retrying %s %s (retry %d of %d)", req.Method, req.URL, attempt, c.config.RetryMax)
		}
	}
	return cl
}

// Attempts() returns the number of HTTP attempts made by the client so far.
func (c *Client) Attempts() int64 {
	return c.attempts.Value()
}

// RetryOnFailure() is a retryablehttp.CheckRetry that retries on connection
// errors and on every non-2xx response.
func RetryOnFailure(ctx context.Context, resp *http.Response, err error) (bool, error) {
	if ctx.Err() != nil {
		return false, ctx.Err()
	}

	if err != nil {
		return retryablehttp.DefaultRetryPolicy(ctx, resp, err)
	}

	return !isSuccess(resp.StatusCode), nil
}

// Register() sends the registration and returns the validated response of the
// generate-webhook endpoint.
func (c *Client) Register(ctx context.Context, registration models.Registration) (*models.GenerateWebhookResponse, error) {
	body, err := c.post(ctx, c.register, c.config.GenerateURL, "", registration)
	if err != nil {
		return nil, fmt.Errorf("Register(): %w: %w", ErrRegistrationFailed, err)
	}

	response := &models.GenerateWebhookResponse{}
	if err := json.Unmarshal(body, response); err != nil {
		return nil, fmt.Errorf("Register(): %w: %v", ErrInvalidResponse, err)
	}

	if err := ValidateResponse(response); err != nil {
		return nil, fmt.Errorf("Register(): %w", err)
	}

	c.log.Debug("Register(): webhook %s, %d users, n=%d, find_id=%d",
		response.Webhook, len(response.Data.Users), response.Data.N, response.Data.FindID)

	return response, nil
}

// Submit() posts the outcome to webhookURL, authenticating with the access
// token when one is provided.
func (c *Client) Submit(ctx context.Context, webhookURL, accessToken string, outcome models.Outcome) error {
	if err := ValidateURL(webhookURL); err != nil {
		return fmt.Errorf("Submit(): %w", err)
	}

	if _, err := c.post(ctx, c.callback, webhookURL, accessToken, outcome); err != nil {
		return fmt.Errorf("Submit(): %w: %w", ErrCallbackFailed, err)
	}
	return nil
}

// post() sends payload as JSON to URL, and returns the body of a 2xx response.
func (c *Client) post(
	ctx context.Context,
	cl *retryablehttp.Client,
	URL string,
	accessToken string,
	payload any) ([]byte, error) {

	reqBody, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, URL, reqBody)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	}

	c.log.Debug("POST %s: %s", URL, reqBody)
	resp, err := cl.Do(req)
	if err != nil {
		if resp != nil {
			resp.Body.Close()
		}
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("failed to read the response body: %w", err)
	}

	if !isSuccess(resp.StatusCode) {
		c.log.Error("POST %s: status %d, body: %s", URL, resp.StatusCode, bytes.TrimSpace(respBody))
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: string(bytes.TrimSpace(respBody))}
	}

	c.log.Debug("POST %s: status %d", URL, resp.StatusCode)
	return respBody, nil
}

func isSuccess(statusCode int) bool {
	return statusCode >= 200 && statusCode <= 299
}

// StatusError is returned when the last attempt of a request got a non-2xx response.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("unexpected status %d", e.StatusCode)
	}
	return fmt.Sprintf("unexpected status %d: %s", e.StatusCode, e.Body)
}

//--------------------------ERROR-CODES--------------------------

var ErrInvalidURL = errors.New("invalid URL")
var ErrRegistrationFailed = errors.New("registration failed")
var ErrInvalidResponse = errors.New("invalid webhook response")
var ErrCallbackFailed = errors.New("webhook callback failed")
