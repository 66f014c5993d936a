package redfin

import (
	"context"
	"os"
	"path/filepath"

	"property-lookup/pkg/logger"

	"github.com/pkg/errors"
)

// FixtureClient serves canned stingray responses from a directory instead of
// calling Redfin. The directory holds initialInfo.json and belowTheFold.json,
// each a raw response body (the {}&& guard is optional). The same responses
// are returned for every path and property id.
type FixtureClient struct {
	dir string
}

// NewFixtureClient creates a FixtureClient reading from dir
func NewFixtureClient(dir string) *FixtureClient {
	return &FixtureClient{dir: dir}
}

func (f *FixtureClient) load(operation string) (envelope, error) {
	filePath := filepath.Join(f.dir, operation+".json")

	data, err := os.ReadFile(filePath)
	if err != nil {
		logger.GlobalLogger.Errorf("Failed to read fixture: file=%s, error=%v", filePath, err)
		return envelope{}, errors.Wrapf(err, "failed to read %s fixture", operation)
	}
	return decodeEnvelope(operation, data)
}

// InitialInfo returns the initialInfo fixture
func (f *FixtureClient) InitialInfo(_ context.Context, path string) (*InitialInfoResponse, error) {
	env, err := f.load("initialInfo")
	if err != nil {
		return nil, err
	}
	return parseInitialInfo(path, env)
}

// BelowTheFold returns the belowTheFold fixture
func (f *FixtureClient) BelowTheFold(_ context.Context, propertyID PropertyID) (*BelowTheFoldResponse, error) {
	env, err := f.load("belowTheFold")
	if err != nil {
		return nil, err
	}
	return parseBelowTheFold(propertyID, env)
}
