package component

// PlayerComponent tags the single player-controlled body
type PlayerComponent struct{}
