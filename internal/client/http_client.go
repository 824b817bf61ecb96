package client

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/anmicius0/parking-slot-manager/internal/utils"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"resty.dev/v3"
)

const requestIDHeader = "X-Request-ID"

// HTTPClient is a base HTTP client using resty for API requests.
type HTTPClient struct {
	client *resty.Client
}

// HTTPError represents an HTTP error response from the remote API.
// It exposes the status code so callers can detect specific cases (e.g., 404)
// without parsing text messages.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Body)
}

// NewHTTPClient creates a new HTTPClient with JSON headers and, when token is
// non-empty, bearer authentication.
func NewHTTPClient(baseURL, token string, timeout time.Duration) *HTTPClient {
	baseURL = strings.TrimSuffix(baseURL, "/")
	c := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json").
		SetTimeout(timeout)
	if token != "" {
		c.SetAuthToken(token)
	}
	return &HTTPClient{client: c}
}

// DoReq performs an HTTP request with the given method, endpoint, body, and query params.
// Logs errors for 4xx/5xx responses and truncates long bodies.
func (c *HTTPClient) DoReq(ctx context.Context, method, endpoint string, body any, params map[string]string) (*resty.Response, error) {
	requestID := uuid.NewString()
	request := c.client.R().
		SetContext(ctx).
		SetHeader(requestIDHeader, requestID).
		SetQueryParams(params)
	if body != nil {
		request.SetBody(body)
	}

	log := utils.WithComponent("http_client").With(
		zap.String(utils.FieldMethod, method),
		zap.String(utils.FieldPath, endpoint),
		zap.String(utils.FieldRequestID, requestID))

	log.Debug("HTTP request start")

	start := time.Now()
	response, err := request.Execute(method, endpoint)
	duration := time.Since(start)
	if err != nil {
		log.Error("HTTP request failed", zap.Error(err), zap.Duration(utils.FieldDuration, duration))
		return nil, err
	}

	if response.StatusCode() >= 400 {
		responseBody := strings.TrimSpace(response.String())
		if len(responseBody) > 1000 {
			responseBody = responseBody[:1000] + "…"
		}
		fields := []zap.Field{
			zap.String(utils.FieldURL, response.Request.URL),
			zap.Int(utils.FieldStatusCode, response.StatusCode()),
			zap.String("body", responseBody),
			zap.Duration(utils.FieldDuration, duration),
		}
		if response.StatusCode() >= 500 {
			log.Error("API error response (server)", fields...)
		} else {
			log.Warn("API error response (client)", fields...)
		}
		return nil, &HTTPError{StatusCode: response.StatusCode(), Body: responseBody}
	}

	log.Debug("HTTP request completed",
		zap.String(utils.FieldURL, response.Request.URL),
		zap.Int(utils.FieldStatusCode, response.StatusCode()),
		zap.Duration(utils.FieldDuration, duration))

	return response, nil
}
