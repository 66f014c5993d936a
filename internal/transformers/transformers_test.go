package transformers

import (
	"encoding/json"
	"testing"

	"property-lookup/internal/models"
	"property-lookup/pkg/redfin"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestListingPath(t *testing.T) {
	trans := NewListingURLTransformer()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"full listing url", "https://www.redfin.com/CA/City/123-Main-St/home/12345", "/CA/City/123-Main-St/home/12345"},
		{"query and fragment dropped", "https://host/a/b?x=1#top", "/a/b"},
		{"no path", "https://www.redfin.com", ""},
		{"path only", "/WA/Seattle/1-Pine-St/home/1", "/WA/Seattle/1-Pine-St/home/1"},
		{"escaped characters kept", "https://host/a%20b/c", "/a%20b/c"},
		{"invalid escape kept", "https://host/CA/City/%zz-Main-St/home/1", "/CA/City/%zz-Main-St/home/1"},
		{"non-numeric port", "https://www.redfin.com:abc/CA/City/home/1", "/CA/City/home/1"},
		{"non-ascii not escaped", "https://www.redfin.com/CA/San José/123-Main-St/home/12345", "/CA/San José/123-Main-St/home/12345"},
		{"scheme without authority", "mailto:/a/b", "/a/b"},
		{"host without scheme is path", "www.redfin.com/CA/x", "www.redfin.com/CA/x"},
		{"fragment before query", "https://host/a#frag?x=1", "/a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, trans.ListingPath(tt.input))
		})
	}
}

func TestToAddressInfo(t *testing.T) {
	trans := NewAddressTransformer()

	got, err := trans.ToAddressInfo(&redfin.AddressInfo{
		Street: strPtr("123 Main St"),
		City:   strPtr("City"),
		State:  strPtr("CA"),
		Zip:    strPtr("90000"),
	})
	require.NoError(t, err)
	assert.Equal(t, models.AddressInfo{Street: "123 Main St", City: "City", State: "CA", ZipCode: "90000"}, got)
}

func TestToAddressInfo_KeepsValuesVerbatim(t *testing.T) {
	got, err := NewAddressTransformer().ToAddressInfo(&redfin.AddressInfo{
		Street: strPtr("  12 elm "),
		City:   strPtr(""),
		State:  strPtr("ca"),
		Zip:    strPtr("9"),
	})
	require.NoError(t, err)
	assert.Equal(t, "  12 elm ", got.Street)
	assert.Equal(t, "", got.City)
	assert.Equal(t, "ca", got.State)
	assert.Equal(t, "9", got.ZipCode)
}

func TestToAddressInfo_Missing(t *testing.T) {
	trans := NewAddressTransformer()

	_, err := trans.ToAddressInfo(nil)
	assert.EqualError(t, err, "amenitiesInfo.addressInfo is missing")

	_, err = trans.ToAddressInfo(&redfin.AddressInfo{Street: strPtr("x"), State: strPtr("CA")})
	assert.EqualError(t, err, "addressInfo is missing fields: city, zip")
}

func TestTransformDetails(t *testing.T) {
	raw := json.RawMessage(`{"amenitiesInfo":{"addressInfo":{"street":"123 Main St","city":"City","state":"CA","zip":"90000"}},"schoolsAndDistrictsInfo":{"servingThisHomeSchools":[]}}`)
	var payload redfin.BelowTheFoldPayload
	require.NoError(t, json.Unmarshal(raw, &payload))

	result, err := NewPropertyTransformer(nil).TransformDetails(&redfin.BelowTheFoldResponse{Payload: payload, Raw: raw})
	require.NoError(t, err)

	assert.Equal(t, "90000", result.AddressInfo.ZipCode)
	assert.JSONEq(t, string(raw), string(result.Other))
}

func TestTransformDetails_Errors(t *testing.T) {
	trans := NewPropertyTransformer(NewAddressTransformer())

	_, err := trans.TransformDetails(nil)
	assert.Error(t, err)

	_, err = trans.TransformDetails(&redfin.BelowTheFoldResponse{Raw: json.RawMessage(`{}`)})
	assert.Error(t, err)
}
