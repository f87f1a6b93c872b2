package webhook

import (
	"fmt"
	"net/url"
	"time"

	"github.com/vertex-lab/follows-webhook/pkg/utils/logger"
)

// ClientConfig contains the parameters of the HTTP client used to talk with
// the generate-webhook endpoint and with the callback it hands out.
type ClientConfig struct {
	Log *logger.Aggregate

	// the URL of the registration (generate-webhook) endpoint
	GenerateURL string

	// the timeout of a single HTTP attempt
	Timeout time.Duration

	// RetryMax is the number of retries after the first attempt.
	// The default of 3 gives 4 attempts in total.
	RetryMax     int
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration
}

// NewClientConfig() returns a config with default parameters.
func NewClientConfig() ClientConfig {
	return ClientConfig{
		Timeout:      3 * time.Second,
		RetryMax:     3,
		RetryWaitMin: time.Second,
		RetryWaitMax: time.Second,
	}
}

// Validate() returns an error if the config can't be used to build a Client.
func (c ClientConfig) Validate() error {
	if err := ValidateURL(c.GenerateURL); err != nil {
		return fmt.Errorf("generate URL: %w", err)
	}

	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %v", c.Timeout)
	}

	if c.RetryMax < 0 {
		return fmt.Errorf("retry max must be non-negative, got %d", c.RetryMax)
	}

	if c.RetryWaitMin < 0 || c.RetryWaitMax < c.RetryWaitMin {
		return fmt.Errorf("invalid retry waits: min %v, max %v", c.RetryWaitMin, c.RetryWaitMax)
	}

	return nil
}

func (c ClientConfig) Print() {
	fmt.Println("Webhook Client:")
	fmt.Printf("  GenerateURL: %s\n", c.GenerateURL)
	fmt.Printf("  Timeout: %v\n", c.Timeout)
	fmt.Printf("  RetryMax: %d\n", c.RetryMax)
	fmt.Printf("  RetryWaitMin: %v\n", c.RetryWaitMin)
	fmt.Printf("  RetryWaitMax: %v\n", c.RetryWaitMax)
}

// ValidateURL() returns ErrInvalidURL if rawURL is not an absolute http(s) URL.
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return fmt.Errorf("%w: empty", ErrInvalidURL)
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: unsupported scheme %q", ErrInvalidURL, u.Scheme)
	}

	if u.Host == "" {
		return fmt.Errorf("%w: missing host in %q", ErrInvalidURL, rawURL)
	}

	return nil
}
