package services

import (
	"context"

	"property-lookup/pkg/redfin"
)

//go:generate mockgen -source=listing_provider.go -destination=../mocks/mock_listing_provider.go -package=mocks

// ListingProvider is the listing-data source behind a property lookup.
// *redfin.Client and *redfin.FixtureClient satisfy it.
type ListingProvider interface {
	InitialInfo(ctx context.Context, path string) (*redfin.InitialInfoResponse, error)
	BelowTheFold(ctx context.Context, propertyID redfin.PropertyID) (*redfin.BelowTheFoldResponse, error)
}

var (
	_ ListingProvider = (*redfin.Client)(nil)
	_ ListingProvider = (*redfin.FixtureClient)(nil)
)
