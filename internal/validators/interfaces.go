package validators

import (
	"property-lookup/internal/models"
)

type PropertyValidator interface {
	ValidateLookup(req *models.LookupRequest) error
}
