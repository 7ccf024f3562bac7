package creatures

import (
	"testing"

	"github.com/pthm-cable/caldera/config"
)

// constantTemps returns the same temperature for every cell.
type constantTemps float64

func (c constantTemps) Temperature(x, y int) float64 { return float64(c) }

func testConfig() config.CreaturesConfig {
	return config.CreaturesConfig{
		Initial:         10,
		Max:             50,
		InitialEnergy:   100,
		ComfortTemp:     20,
		BaseDrain:       0.5,
		DiscomfortDrain: 0.05,
		MaxSpeed:        40,
		WanderJitter:    3,
	}
}

func TestSpawnInitialPopulation(t *testing.T) {
	w := NewWorld(testConfig(), 1280, 720, 10, 42)
	w.SpawnInitial()

	if w.Count() != 10 {
		t.Errorf("Count = %d, want 10", w.Count())
	}
}

func TestSpawnRespectsPopulationCap(t *testing.T) {
	cfg := testConfig()
	cfg.Max = 3
	w := NewWorld(cfg, 1280, 720, 10, 42)

	for i := 0; i < 10; i++ {
		w.Spawn(100, 100)
	}
	if w.Count() != 3 {
		t.Errorf("Count = %d, want cap 3", w.Count())
	}
}

func TestStepDrainsEnergyFasterOffComfort(t *testing.T) {
	comfortable := NewWorld(testConfig(), 1280, 720, 10, 42)
	comfortable.Spawn(640, 360)

	hostile := NewWorld(testConfig(), 1280, 720, 10, 42)
	hostile.Spawn(640, 360)

	for i := 0; i < 60; i++ {
		comfortable.Step(1.0/60.0, constantTemps(20))
		hostile.Step(1.0/60.0, constantTemps(120))
	}

	comfortEnergy := comfortable.MeanEnergy()
	hostileEnergy := hostile.MeanEnergy()

	if comfortEnergy <= hostileEnergy {
		t.Errorf("comfortable energy %v should exceed hostile energy %v",
			comfortEnergy, hostileEnergy)
	}
	// Base drain of 0.5/s over 1 second from 100
	if comfortEnergy > 100 || comfortEnergy < 99 {
		t.Errorf("comfortable energy = %v, want ~99.5", comfortEnergy)
	}
}

func TestStepRemovesStarvedCreatures(t *testing.T) {
	cfg := testConfig()
	cfg.InitialEnergy = 0.1
	cfg.BaseDrain = 100
	w := NewWorld(cfg, 1280, 720, 10, 42)
	w.Spawn(100, 100)
	w.Spawn(200, 200)

	w.Step(1.0, constantTemps(20))

	if w.Count() != 0 {
		t.Errorf("Count = %d after starvation, want 0", w.Count())
	}
}

func TestStepKeepsCreaturesInBounds(t *testing.T) {
	w := NewWorld(testConfig(), 1280, 720, 10, 7)
	w.SpawnInitial()

	for i := 0; i < 600; i++ {
		w.Step(1.0/60.0, constantTemps(20))
	}

	w.Each(func(pos Position, vitals Vitals) {
		if pos.X < 0 || pos.X > 1280 || pos.Y < 0 || pos.Y > 720 {
			t.Errorf("creature escaped bounds: (%v, %v)", pos.X, pos.Y)
		}
	})
}

func TestSnapshotRestoreRoundTrip(t *testing.T) {
	w := NewWorld(testConfig(), 1280, 720, 10, 42)
	w.SpawnInitial()
	w.Step(1.0/60.0, constantTemps(20))

	states := w.Snapshot()
	if len(states) != w.Count() {
		t.Fatalf("snapshot has %d states, world has %d creatures", len(states), w.Count())
	}

	fresh := NewWorld(testConfig(), 1280, 720, 10, 99)
	fresh.Restore(states)

	if fresh.Count() != w.Count() {
		t.Errorf("restored count = %d, want %d", fresh.Count(), w.Count())
	}

	// Iteration order is not part of the contract; match creatures by DNA.
	back := make(map[string]State, len(states))
	for _, s := range fresh.Snapshot() {
		back[string(s.DNA)] = s
	}
	for _, a := range states {
		b, ok := back[string(a.DNA)]
		if !ok {
			t.Errorf("creature with DNA %x missing after round trip", a.DNA)
			continue
		}
		if a.X != b.X || a.Y != b.Y || a.Energy != b.Energy || a.Age != b.Age {
			t.Errorf("creature changed in round trip: %+v != %+v", a, b)
		}
	}
}

func TestRestoreReplacesExistingPopulation(t *testing.T) {
	w := NewWorld(testConfig(), 1280, 720, 10, 42)
	w.SpawnInitial()

	w.Restore([]State{{X: 1, Y: 2, Energy: 50, DNA: []byte{1, 2, 3}}})

	if w.Count() != 1 {
		t.Errorf("Count = %d after Restore, want 1", w.Count())
	}
}
