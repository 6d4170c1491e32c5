package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/blushrz/salon-admin/models"
	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	code := resp.StatusCode()
	if code >= http.StatusOK && code < http.StatusMultipleChoices {
		return nil
	}

	msg := serverMessage(resp)

	switch {
	case code == http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrAuthentication, msg)
	case code == http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrAuthorization, msg)
	case code == http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, msg)
	case code == http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrConflict, msg)
	case code == http.StatusUnprocessableEntity:
		return fmt.Errorf("%w: %s", ErrValidation, msg)
	case code >= http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrServer, msg)
	default:
		return fmt.Errorf("%w: http %d: %s", ErrUnknown, code, msg)
	}
}

// serverMessage extracts the server-provided error message from the response
// body. The admin API returns {"message": "..."}; a plain-text body is used
// as-is, and an empty body falls back to the HTTP status text.
func serverMessage(resp *resty.Response) string {
	body := strings.TrimSpace(string(resp.Body()))

	var er models.ErrorResponse
	if err := json.Unmarshal([]byte(body), &er); err == nil && er.Message != "" {
		return er.Message
	}

	if body == "" {
		return http.StatusText(resp.StatusCode())
	}
	return body
}
