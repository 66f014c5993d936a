package redfin

import (
	"bytes"
	"context"
	"encoding/json"
	"net/url"

	"property-lookup/pkg/logger"

	"github.com/pkg/errors"
)

// PropertyID is Redfin's internal property identifier. The API sends it as a
// number, but string forms are accepted too.
type PropertyID string

// UnmarshalJSON accepts a JSON number, a JSON string or null.
func (id *PropertyID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = PropertyID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return errors.Errorf("property id must be a number or string, got %s", data)
	}
	*id = PropertyID(n.String())
	return nil
}

func (id PropertyID) String() string {
	return string(id)
}

// InitialInfoPayload holds the fields consumed from the initialInfo payload.
type InitialInfoPayload struct {
	PropertyID PropertyID `json:"propertyId"`
	ListingID  PropertyID `json:"listingId"`
}

// InitialInfoResponse is the decoded initialInfo response
type InitialInfoResponse struct {
	ResultCode   int                `json:"resultCode"`
	ErrorMessage string             `json:"errorMessage"`
	Payload      InitialInfoPayload `json:"payload"`
}

// InitialInfo resolves a listing URL path (e.g. /CA/City/123-Main-St/home/12345)
// into the provider's property identifier.
func (c *Client) InitialInfo(ctx context.Context, path string) (*InitialInfoResponse, error) {
	params := url.Values{}
	params.Set("path", path)

	env, err := c.get(ctx, "initialInfo", params)
	if err != nil {
		return nil, err
	}

	return parseInitialInfo(path, env)
}

func parseInitialInfo(path string, env envelope) (*InitialInfoResponse, error) {
	resp := &InitialInfoResponse{ResultCode: env.ResultCode, ErrorMessage: env.ErrorMessage}
	if err := json.Unmarshal(env.Payload, &resp.Payload); err != nil {
		logger.GlobalLogger.Errorf("Failed to decode initialInfo payload: path=%s, error=%v", path, err)
		return nil, errors.Wrapf(ErrUnexpectedResponse, "failed to decode initialInfo payload: %v", err)
	}
	if resp.Payload.PropertyID == "" {
		logger.GlobalLogger.Errorf("initialInfo payload has no propertyId: path=%s", path)
		return nil, errors.Wrap(ErrUnexpectedResponse, "initialInfo payload has no propertyId")
	}

	return resp, nil
}
