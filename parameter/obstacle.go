package parameter

// Obstacle pool tuning
const (
	// PipeCount is the fixed obstacle pool size
	PipeCount = 10
	// PipeGap is the horizontal distance between consecutive obstacles
	PipeGap = 500.0
	// PipeWindowSize is the vertical opening between top and bottom barriers
	PipeWindowSize = 250.0
	// PipeVerticalRange bounds the random vertical offset of an obstacle to [-range, range)
	PipeVerticalRange = 150.0

	PipeStartSpeed = 100.0
	PipeMaxSpeed   = 1000.0
	// PipeTimeToMax is the seconds needed to ramp from start to max speed
	PipeTimeToMax = 60.0
)

// Barrier geometry in world units
const (
	PipeWidth         = 104.0
	PipeCapHeight     = 192.0
	PipeSegmentHeight = 96.0
	// PipeSegmentCount is the number of body segments stacked behind each cap
	PipeSegmentCount = 10
)

// PipeAcceleration is the constant leftward drift rate reaching PipeMaxSpeed after PipeTimeToMax
var PipeAcceleration = (PipeMaxSpeed - PipeStartSpeed) / PipeTimeToMax
