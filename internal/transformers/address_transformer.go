package transformers

import (
	"fmt"
	"strings"

	"property-lookup/internal/models"
	"property-lookup/pkg/redfin"
)

type addressTransformer struct{}

func NewAddressTransformer() AddressTransformer {
	return &addressTransformer{}
}

// ToAddressInfo copies the provider address block as-is. Values are not
// normalized or validated; only the presence of each key is checked.
func (t *addressTransformer) ToAddressInfo(raw *redfin.AddressInfo) (models.AddressInfo, error) {
	if raw == nil {
		return models.AddressInfo{}, fmt.Errorf("amenitiesInfo.addressInfo is missing")
	}

	var missing []string
	if raw.Street == nil {
		missing = append(missing, "street")
	}
	if raw.City == nil {
		missing = append(missing, "city")
	}
	if raw.State == nil {
		missing = append(missing, "state")
	}
	if raw.Zip == nil {
		missing = append(missing, "zip")
	}
	if len(missing) > 0 {
		return models.AddressInfo{}, fmt.Errorf("addressInfo is missing fields: %s", strings.Join(missing, ", "))
	}

	return models.AddressInfo{
		Street:  *raw.Street,
		City:    *raw.City,
		State:   *raw.State,
		ZipCode: *raw.Zip,
	}, nil
}
