package component

// ObstacleComponent tags a pooled barrier pair
type ObstacleComponent struct {
	// Slot is the pool index assigned at bootstrap, stable across recycling
	Slot int
}
