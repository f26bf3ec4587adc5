package beam

// Load is the closed set of external actions on a beam. The variants
// are PointForce, DistributedLoad and PointTorque; consumers switch on
// the concrete type and panic on anything else, so a new variant can
// never be silently ignored.
type Load interface {
	isLoad()
}

// PointForce is a concentrated transverse force, positive upward (N).
type PointForce struct {
	Position  float64
	Magnitude float64
}

// DistributedLoad is a uniform transverse load of the given intensity
// (N/m, positive upward) acting over [Start, End], Start < End.
type DistributedLoad struct {
	Start     float64
	End       float64
	Magnitude float64
}

// PointTorque is a concentrated moment, positive counterclockwise (N·m).
type PointTorque struct {
	Position  float64
	Magnitude float64
}

func (PointForce) isLoad()      {}
func (DistributedLoad) isLoad() {}
func (PointTorque) isLoad()     {}
