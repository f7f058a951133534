package parameter

// Player kinematics
const (
	// UpSpeed is the vertical velocity set by a jump, world units per second
	UpSpeed = 500.0
	// Gravity is the constant vertical acceleration of the player
	Gravity = -2000.0
	// AngleAmplitude scales normalized vertical speed to tilt radians
	AngleAmplitude = 0.8
)

// Player sprite footprint in world units
const (
	PlayerWidth  = 68.0
	PlayerHeight = 48.0
)
