package transformers

import (
	"fmt"

	"property-lookup/internal/models"
	"property-lookup/pkg/redfin"
)

type propertyTransformer struct {
	addrTrans AddressTransformer
}

func NewPropertyTransformer(addrTrans AddressTransformer) PropertyTransformer {
	if addrTrans == nil {
		addrTrans = NewAddressTransformer()
	}
	return &propertyTransformer{addrTrans: addrTrans}
}

// TransformDetails builds the lookup result from a belowTheFold response.
// The whole payload is kept under Other, address fields included.
func (t *propertyTransformer) TransformDetails(details *redfin.BelowTheFoldResponse) (*models.PropertyResult, error) {
	if details == nil {
		return nil, fmt.Errorf("belowTheFold response is empty")
	}

	address, err := t.addrTrans.ToAddressInfo(details.AddressInfo())
	if err != nil {
		return nil, err
	}

	return &models.PropertyResult{
		AddressInfo: address,
		Other:       details.Raw,
	}, nil
}
