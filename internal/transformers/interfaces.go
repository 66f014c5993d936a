package transformers

import (
	"property-lookup/internal/models"
	"property-lookup/pkg/redfin"
)

type PropertyTransformer interface {
	TransformDetails(details *redfin.BelowTheFoldResponse) (*models.PropertyResult, error)
}

type AddressTransformer interface {
	ToAddressInfo(raw *redfin.AddressInfo) (models.AddressInfo, error)
}

type ListingURLTransformer interface {
	ListingPath(rawURL string) string
}
