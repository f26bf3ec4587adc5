package beam

import "errors"

// Analysis failures are wrapped around these sentinels so callers can
// classify them with errors.Is without parsing messages.
var (
	// ErrInvalidGeometry reports a non-positive span, elastic modulus or
	// second moment of area.
	ErrInvalidGeometry = errors.New("invalid geometry")

	// ErrInvalidPosition reports a support or load placed outside the
	// span, or a distributed load with a malformed extent.
	ErrInvalidPosition = errors.New("invalid position")

	// ErrUnstableStructure reports a restraint set that cannot prevent
	// rigid-body motion of the beam.
	ErrUnstableStructure = errors.New("unstable structure")

	// ErrSingularSystem reports a numerically singular equation system,
	// typically caused by duplicate or conflicting restraints.
	ErrSingularSystem = errors.New("singular system")
)
