package test

import (
	"context"
	"fmt"

	"github.com/roster-im/roster/pkg/api/v1/client"
)

// LicensePool maps license names to their identifiers
type LicensePool map[string]uint

// LoadLicensePool fetches the license catalog and indexes it by name
func LoadLicensePool(ctx context.Context, c client.Client) (LicensePool, error) {
	licenses, err := c.ListLicenses(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load license catalog: %w", err)
	}

	pool := make(LicensePool, len(licenses))
	for _, license := range licenses {
		pool[license.Name] = license.ID
	}
	return pool, nil
}

// MustGet returns the identifier for a license name, or an error naming the
// missing license
func (p LicensePool) MustGet(name string) (uint, error) {
	id, ok := p[name]
	if !ok {
		return 0, fmt.Errorf("license %q is not in the catalog", name)
	}
	return id, nil
}
