package httpclient

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/katatrina/commerce-clients/internal/util"
)

const maxErrorBodyLength = 512

// ResponseError is returned for every non-2xx response. Body holds the raw
// response payload as sent by the remote service.
type ResponseError struct {
	Metric     string
	StatusCode int
	Status     string
	Body       string
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("%s: request failed with status code %d, body: %s",
		e.Metric, e.StatusCode, util.TruncateContent(e.Body, maxErrorBodyLength))
}

// StatusCode returns the status of the response behind err, or 0 when err was
// not caused by a non-2xx response.
func StatusCode(err error) int {
	var responseErr *ResponseError
	if errors.As(err, &responseErr) {
		return responseErr.StatusCode
	}
	return 0
}

func IsNotFound(err error) bool {
	return StatusCode(err) == http.StatusNotFound
}

func IsUnauthorized(err error) bool {
	code := StatusCode(err)
	return code == http.StatusUnauthorized || code == http.StatusForbidden
}
