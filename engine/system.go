package engine

// System is one step of the simulation tick
// Systems run in the order the tick function calls them; there is no scheduler
type System interface {
	Name() string
	Update()
}
