package deviceguard

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/quotekit/quotekit/pkg/entitlement"
)

// defaultLimits are the built-in per-plan device allowances. The start
// plan carries the same allowance as free, matching its level-0 gating
// treatment.
var defaultLimits = map[entitlement.PlanType]Counts{
	entitlement.PlanFree:    {Desktop: 1, Mobile: 1},
	entitlement.PlanStart:   {Desktop: 1, Mobile: 1},
	entitlement.PlanPro:     {Desktop: 2, Mobile: 3},
	entitlement.PlanPremium: {Desktop: 5, Mobile: 5},
}

// LimitsFor returns the built-in device allowance for a plan. Unknown
// plans get the free allowance.
func LimitsFor(plan entitlement.PlanType) Counts {
	if limits, ok := defaultLimits[plan]; ok {
		return limits
	}
	return defaultLimits[entitlement.PlanFree]
}

// Catalog is a per-plan limit override table, typically loaded from a YAML
// deployment file:
//
//	free:
//	  desktop: 1
//	  mobile: 1
//	pro:
//	  desktop: 3
//	  mobile: 5
type Catalog map[entitlement.PlanType]Counts

// LoadCatalog parses a YAML catalog. Plans absent from the catalog fall
// back to the built-in defaults at lookup time; unknown plan labels are
// rejected.
func LoadCatalog(r io.Reader) (Catalog, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}

	var catalog Catalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}

	for plan := range catalog {
		if !plan.Valid() {
			return nil, fmt.Errorf("%w: unknown plan %q", ErrInvalidCatalog, plan)
		}
	}
	return catalog, nil
}

// LimitsFor returns the catalog's allowance for a plan, falling back to
// the built-in defaults.
func (c Catalog) LimitsFor(plan entitlement.PlanType) Counts {
	if limits, ok := c[plan]; ok {
		return limits
	}
	return LimitsFor(plan)
}
