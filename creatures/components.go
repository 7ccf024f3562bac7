// Package creatures implements the wandering-creature layer: simple
// organisms that roam the grid and burn energy faster the further the local
// temperature sits from their comfort point.
package creatures

// Position is a world-space location.
type Position struct {
	X, Y float32
}

// Velocity is world units per second.
type Velocity struct {
	X, Y float32
}

// Vitals tracks a creature's energy reserve. A creature dies when Energy
// reaches zero.
type Vitals struct {
	Energy float32
	Age    float32
	Alive  bool
}

// Genome carries the creature's inheritable payload. It is opaque to the
// simulation and round-trips through save files unchanged.
type Genome struct {
	DNA []byte
}
