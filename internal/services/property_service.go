package services

import (
	"context"
	"fmt"

	apperrors "property-lookup/internal/errors"
	"property-lookup/internal/models"
	"property-lookup/internal/transformers"
	"property-lookup/internal/validators"
	"property-lookup/pkg/logger"
)

type PropertyService struct {
	provider  ListingProvider
	trans     transformers.PropertyTransformer
	urlTrans  transformers.ListingURLTransformer
	validator validators.PropertyValidator
}

func NewPropertyService(
	provider ListingProvider,
	trans transformers.PropertyTransformer,
	urlTrans transformers.ListingURLTransformer,
	validator validators.PropertyValidator,
) *PropertyService {
	return &PropertyService{
		provider:  provider,
		trans:     trans,
		urlTrans:  urlTrans,
		validator: validator,
	}
}

// LookupProperty resolves a listing URL into its address and full detail
// payload. It makes two sequential provider calls and never retries.
func (s *PropertyService) LookupProperty(ctx context.Context, req *models.LookupRequest) (*models.PropertyResult, error) {
	if err := s.validator.ValidateLookup(req); err != nil {
		return nil, apperrors.NewValidationError(err.Error(), err)
	}

	logger.GlobalLogger.Printf("Received redfin_url: %s", req.RedfinURL)

	path := s.urlTrans.ListingPath(req.RedfinURL)

	info, err := s.provider.InitialInfo(ctx, path)
	if err != nil {
		return nil, apperrors.NewUpstreamError(fmt.Sprintf("initialInfo failed: path=%s", path), err)
	}
	if info == nil || info.Payload.PropertyID == "" {
		return nil, apperrors.NewUpstreamError(fmt.Sprintf("initialInfo returned no propertyId: path=%s", path), nil)
	}

	propertyID := info.Payload.PropertyID
	logger.GlobalLogger.Debugf("Resolved listing path to property: path=%s, property_id=%s", path, propertyID)

	details, err := s.provider.BelowTheFold(ctx, propertyID)
	if err != nil {
		return nil, apperrors.NewUpstreamError(fmt.Sprintf("belowTheFold failed: property_id=%s", propertyID), err)
	}

	result, err := s.trans.TransformDetails(details)
	if err != nil {
		return nil, apperrors.NewUpstreamError(fmt.Sprintf("unexpected belowTheFold shape: property_id=%s", propertyID), err)
	}

	return result, nil
}
