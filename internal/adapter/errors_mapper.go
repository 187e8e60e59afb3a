package adapter

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/MKhiriev/cidr-viewer/models"
	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	apiErr := &APIError{
		StatusCode: resp.StatusCode(),
		StatusText: statusText(resp),
	}
	if req := resp.Request; req != nil {
		apiErr.Method = req.Method
		apiErr.URL = req.URL
	}

	var body models.ErrorResponse
	if err := json.Unmarshal(resp.Body(), &body); err == nil {
		apiErr.Message = body.Error
	}

	return apiErr
}

// statusText strips the code from a "404 Not Found" status line.
func statusText(resp *resty.Response) string {
	text := strings.TrimSpace(strings.TrimPrefix(resp.Status(), strconv.Itoa(resp.StatusCode())))
	if text == "" {
		text = http.StatusText(resp.StatusCode())
	}
	return text
}
