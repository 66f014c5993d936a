package redfin

import (
	"bytes"
	"context"
	"encoding/json"
	"net/url"

	"property-lookup/pkg/logger"

	"github.com/pkg/errors"
)

// AddressInfo is the address block under payload.amenitiesInfo. Fields are
// pointers so an absent key can be told apart from an empty value.
type AddressInfo struct {
	Street *string `json:"street"`
	City   *string `json:"city"`
	State  *string `json:"state"`
	Zip    *string `json:"zip"`
}

// UnmarshalJSON accepts any JSON value for the address fields. Strings are
// taken as-is, null becomes "" and other values keep their JSON text, so a
// numeric zip such as 90000 reads as "90000". Only a missing key leaves the
// field nil.
func (a *AddressInfo) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	a.Street = addressField(fields, "street")
	a.City = addressField(fields, "city")
	a.State = addressField(fields, "state")
	a.Zip = addressField(fields, "zip")
	return nil
}

func addressField(fields map[string]json.RawMessage, key string) *string {
	raw, ok := fields[key]
	if !ok {
		return nil
	}

	raw = bytes.TrimSpace(raw)
	var text string
	switch {
	case bytes.Equal(raw, []byte("null")):
	case len(raw) > 0 && raw[0] == '"':
		if err := json.Unmarshal(raw, &text); err != nil {
			text = string(raw)
		}
	default:
		text = string(raw)
	}
	return &text
}

type AmenitiesInfo struct {
	AddressInfo *AddressInfo `json:"addressInfo"`
}

// BelowTheFoldPayload is the typed view over the fields this service reads.
type BelowTheFoldPayload struct {
	AmenitiesInfo *AmenitiesInfo `json:"amenitiesInfo"`
}

// BelowTheFoldResponse is the decoded belowTheFold response. Raw keeps the
// payload object exactly as received.
type BelowTheFoldResponse struct {
	ResultCode   int
	ErrorMessage string
	Payload      BelowTheFoldPayload
	Raw          json.RawMessage
}

// AddressInfo returns the address block, or nil when the payload lacks one.
func (r *BelowTheFoldResponse) AddressInfo() *AddressInfo {
	if r == nil || r.Payload.AmenitiesInfo == nil {
		return nil
	}
	return r.Payload.AmenitiesInfo.AddressInfo
}

// BelowTheFold fetches the extended listing details for a property id.
func (c *Client) BelowTheFold(ctx context.Context, propertyID PropertyID) (*BelowTheFoldResponse, error) {
	params := url.Values{}
	params.Set("propertyId", propertyID.String())
	params.Set("accessLevel", "1")
	params.Set("pageType", "3")

	env, err := c.get(ctx, "belowTheFold", params)
	if err != nil {
		return nil, err
	}

	return parseBelowTheFold(propertyID, env)
}

func parseBelowTheFold(propertyID PropertyID, env envelope) (*BelowTheFoldResponse, error) {
	resp := &BelowTheFoldResponse{
		ResultCode:   env.ResultCode,
		ErrorMessage: env.ErrorMessage,
		Raw:          env.Payload,
	}
	if err := json.Unmarshal(env.Payload, &resp.Payload); err != nil {
		logger.GlobalLogger.Errorf("Failed to decode belowTheFold payload: property_id=%s, error=%v", propertyID, err)
		return nil, errors.Wrapf(ErrUnexpectedResponse, "failed to decode belowTheFold payload: %v", err)
	}

	logger.GlobalLogger.Debugf("Property details retrieved for property ID: %s", propertyID)
	return resp, nil
}
