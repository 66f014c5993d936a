package validators

import (
	"fmt"

	"property-lookup/internal/models"
)

type propertyValidator struct{}

func NewPropertyValidator() PropertyValidator {
	return &propertyValidator{}
}

// ValidateLookup checks presence only; the URL content is not inspected.
func (v *propertyValidator) ValidateLookup(req *models.LookupRequest) error {
	if req == nil || req.RedfinURL == "" {
		return fmt.Errorf("redfin_url is required")
	}
	return nil
}
