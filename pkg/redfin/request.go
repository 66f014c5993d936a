package redfin

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	"property-lookup/pkg/logger"
	"property-lookup/pkg/metrics"

	"github.com/pkg/errors"
)

// jsonGuard is the anti-hijacking prefix Redfin puts in front of every JSON body.
var jsonGuard = []byte("{}&&")

const maxLoggedBody = 512

// ErrUnexpectedResponse marks a response that arrived but could not be used.
var ErrUnexpectedResponse = errors.New("unexpected redfin response")

// envelope is the wrapper shared by every stingray response.
type envelope struct {
	ResultCode   int             `json:"resultCode"`
	ErrorMessage string          `json:"errorMessage"`
	Payload      json.RawMessage `json:"payload"`
}

// get performs a GET against api/home/details/<operation> and returns the
// decoded envelope.
func (c *Client) get(ctx context.Context, operation string, params url.Values) (env envelope, err error) {
	start := time.Now()
	defer func() {
		outcome := "success"
		if err != nil {
			outcome = "error"
		}
		metrics.RedfinRequestsTotal.WithLabelValues(operation, outcome).Inc()
		metrics.RedfinRequestDuration.WithLabelValues(operation, outcome).Observe(time.Since(start).Seconds())
	}()

	endpoint := c.baseURL + detailsPath + operation + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		logger.GlobalLogger.Errorf("Failed to create %s request: url=%s, error=%v", operation, endpoint, err)
		return env, errors.Wrapf(err, "failed to create %s request", operation)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.GlobalLogger.Errorf("Failed to send %s request: url=%s, error=%v", operation, endpoint, err)
		return env, errors.Wrapf(err, "failed to send %s request", operation)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		logger.GlobalLogger.Errorf("Failed to read %s response body: url=%s, status=%s, error=%v", operation, endpoint, resp.Status, err)
		return env, errors.Wrapf(err, "failed to read %s response body", operation)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logger.GlobalLogger.Errorf("%s request failed: url=%s, status=%s, response=%s", operation, endpoint, resp.Status, truncate(body))
		return env, errors.Wrapf(ErrUnexpectedResponse, "%s returned %s", operation, resp.Status)
	}

	env, err = decodeEnvelope(operation, body)
	if err != nil {
		logger.GlobalLogger.Errorf("Unusable %s response: url=%s, response=%s, error=%v", operation, endpoint, truncate(body), err)
		return env, err
	}

	logger.GlobalLogger.Debugf("%s request succeeded: url=%s, latency=%v", operation, endpoint, time.Since(start))
	return env, nil
}

// decodeEnvelope strips the JSON guard, decodes the envelope and checks the
// result code and payload shape.
func decodeEnvelope(operation string, body []byte) (envelope, error) {
	var env envelope

	body = bytes.TrimPrefix(bytes.TrimSpace(body), jsonGuard)
	if err := json.Unmarshal(body, &env); err != nil {
		return env, errors.Wrapf(ErrUnexpectedResponse, "failed to decode %s response: %v", operation, err)
	}
	if env.ResultCode != 0 {
		return env, errors.Wrapf(ErrUnexpectedResponse, "%s result code %d: %s", operation, env.ResultCode, env.ErrorMessage)
	}
	if !isObject(env.Payload) {
		return env, errors.Wrapf(ErrUnexpectedResponse, "%s response has no payload object", operation)
	}
	return env, nil
}

func isObject(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '{'
}

func truncate(body []byte) string {
	if len(body) > maxLoggedBody {
		return string(body[:maxLoggedBody]) + "..."
	}
	return string(body)
}
