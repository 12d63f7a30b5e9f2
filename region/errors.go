package region

import "errors"

var (
	// ErrEmptyRegion indicates a region built from no cells.
	ErrEmptyRegion = errors.New("region: at least one cell is required")
	// ErrMixedResolution indicates cells of differing resolutions.
	ErrMixedResolution = errors.New("region: all cells must share one resolution")
	// ErrComponentIndex indicates a requested component index is out of range.
	ErrComponentIndex = errors.New("region: component index out of range")
	// ErrNoPath indicates no bridge within the cost limit joins two components.
	ErrNoPath = errors.New("region: no path between specified components")
)
