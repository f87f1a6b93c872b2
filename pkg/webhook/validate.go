package webhook

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/vertex-lab/follows-webhook/pkg/models"
)

/*
ValidateResponse() checks that the response of the generate-webhook endpoint
can be processed:

- the webhook URL and the access token are present

- the data is present, has at least one user and a non-negative n

All the violations are reported together; each of them wraps ErrInvalidResponse.
*/
func ValidateResponse(response *models.GenerateWebhookResponse) error {
	if response == nil {
		return fmt.Errorf("%w: response body is null", ErrInvalidResponse)
	}

	var result *multierror.Error
	if response.Webhook == "" {
		result = multierror.Append(result, fmt.Errorf("%w: webhook URL is required", ErrInvalidResponse))
	}

	if response.AccessToken == "" {
		result = multierror.Append(result, fmt.Errorf("%w: access token is required", ErrInvalidResponse))
	}

	if response.Data == nil {
		result = multierror.Append(result, fmt.Errorf("%w: data is null", ErrInvalidResponse))
		return result.ErrorOrNil()
	}

	if len(response.Data.Users) == 0 {
		result = multierror.Append(result, fmt.Errorf("%w: no users found", ErrInvalidResponse))
	}

	if response.Data.N < 0 {
		result = multierror.Append(result, fmt.Errorf("%w: n must be non-negative, got %d", ErrInvalidResponse, response.Data.N))
	}

	return result.ErrorOrNil()
}
