package creatures

import (
	"math"
	"math/rand"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/caldera/config"
)

// genomeSize is the byte length of a freshly rolled DNA payload.
const genomeSize = 16

// TempSource provides the temperature at a grid cell. Satisfied by
// thermal.Manager.
type TempSource interface {
	Temperature(x, y int) float64
}

// State is the serializable form of one creature, as stored in save files.
type State struct {
	X      float32 `json:"x"`
	Y      float32 `json:"y"`
	VelX   float32 `json:"vel_x"`
	VelY   float32 `json:"vel_y"`
	Energy float32 `json:"energy"`
	Age    float32 `json:"age"`
	DNA    []byte  `json:"dna"`
}

// World owns the creature entities and advances them each simulation tick.
type World struct {
	world  *ecs.World
	mapper *ecs.Map4[Position, Velocity, Vitals, Genome]
	filter *ecs.Filter4[Position, Velocity, Vitals, Genome]

	rng *rand.Rand
	cfg config.CreaturesConfig

	worldW, worldH float32
	cellSize       float32

	count int
}

// NewWorld creates an empty creature world bounded by the grid extents.
func NewWorld(cfg config.CreaturesConfig, worldW, worldH, cellSize float32, seed int64) *World {
	world := ecs.NewWorld()

	return &World{
		world:    world,
		mapper:   ecs.NewMap4[Position, Velocity, Vitals, Genome](world),
		filter:   ecs.NewFilter4[Position, Velocity, Vitals, Genome](world),
		rng:      rand.New(rand.NewSource(seed)),
		cfg:      cfg,
		worldW:   worldW,
		worldH:   worldH,
		cellSize: cellSize,
	}
}

// Count returns the number of living creatures.
func (w *World) Count() int { return w.count }

// SpawnInitial populates the world with the configured starting population.
func (w *World) SpawnInitial() {
	for i := 0; i < w.cfg.Initial; i++ {
		w.Spawn(w.rng.Float32()*w.worldW, w.rng.Float32()*w.worldH)
	}
}

// Spawn creates one creature at (x, y) with fresh vitals and a random
// genome. No-op at the population cap.
func (w *World) Spawn(x, y float32) bool {
	if w.cfg.Max > 0 && w.count >= w.cfg.Max {
		return false
	}

	heading := w.rng.Float64() * 2 * math.Pi
	speed := float32(w.cfg.MaxSpeed) * (0.25 + 0.75*w.rng.Float32())

	dna := make([]byte, genomeSize)
	w.rng.Read(dna)

	pos := Position{X: x, Y: y}
	vel := Velocity{
		X: speed * float32(math.Cos(heading)),
		Y: speed * float32(math.Sin(heading)),
	}
	vitals := Vitals{Energy: float32(w.cfg.InitialEnergy), Alive: true}
	genome := Genome{DNA: dna}

	w.mapper.NewEntity(&pos, &vel, &vitals, &genome)
	w.count++
	return true
}

// Step advances every creature by dt seconds: wander, move with bounds
// bouncing, then drain energy against the local temperature. Creatures that
// run out of energy are removed.
func (w *World) Step(dt float32, temps TempSource) {
	comfort := w.cfg.ComfortTemp
	baseDrain := float32(w.cfg.BaseDrain)
	discomfortDrain := w.cfg.DiscomfortDrain
	maxSpeed := float32(w.cfg.MaxSpeed)
	jitter := float32(w.cfg.WanderJitter)

	query := w.filter.Query()
	for query.Next() {
		pos, vel, vitals, _ := query.Get()
		if !vitals.Alive {
			continue
		}

		// Random-walk steering
		vel.X += (w.rng.Float32()*2 - 1) * jitter * maxSpeed * dt
		vel.Y += (w.rng.Float32()*2 - 1) * jitter * maxSpeed * dt
		clampSpeed(vel, maxSpeed)

		pos.X += vel.X * dt
		pos.Y += vel.Y * dt

		// Bounce off the grid edges; the ambient plane is inhospitable
		if pos.X < 0 {
			pos.X = -pos.X
			vel.X = -vel.X
		} else if pos.X > w.worldW {
			pos.X = 2*w.worldW - pos.X
			vel.X = -vel.X
		}
		if pos.Y < 0 {
			pos.Y = -pos.Y
			vel.Y = -vel.Y
		} else if pos.Y > w.worldH {
			pos.Y = 2*w.worldH - pos.Y
			vel.Y = -vel.Y
		}

		// Metabolic drain grows with distance from the comfort temperature
		cellX := int(pos.X / w.cellSize)
		cellY := int(pos.Y / w.cellSize)
		local := temps.Temperature(cellX, cellY)
		discomfort := math.Abs(local - comfort)

		vitals.Age += dt
		vitals.Energy -= (baseDrain + float32(discomfort*discomfortDrain)) * dt
		if vitals.Energy <= 0 {
			vitals.Energy = 0
			vitals.Alive = false
		}
	}

	w.removeDead()
}

// removeDead sweeps out creatures whose energy hit zero. Collection must
// complete before removal; the query locks the world.
func (w *World) removeDead() {
	var dead []ecs.Entity

	query := w.filter.Query()
	for query.Next() {
		_, _, vitals, _ := query.Get()
		if !vitals.Alive {
			dead = append(dead, query.Entity())
		}
	}

	for _, e := range dead {
		w.mapper.Remove(e)
		w.count--
	}
}

// Snapshot captures every living creature for save files.
func (w *World) Snapshot() []State {
	states := make([]State, 0, w.count)

	query := w.filter.Query()
	for query.Next() {
		pos, vel, vitals, genome := query.Get()
		if !vitals.Alive {
			continue
		}
		dna := make([]byte, len(genome.DNA))
		copy(dna, genome.DNA)
		states = append(states, State{
			X:      pos.X,
			Y:      pos.Y,
			VelX:   vel.X,
			VelY:   vel.Y,
			Energy: vitals.Energy,
			Age:    vitals.Age,
			DNA:    dna,
		})
	}
	return states
}

// Restore replaces the population with the saved one.
func (w *World) Restore(states []State) {
	w.clear()

	for _, s := range states {
		if s.Energy <= 0 {
			continue
		}
		pos := Position{X: s.X, Y: s.Y}
		vel := Velocity{X: s.VelX, Y: s.VelY}
		vitals := Vitals{Energy: s.Energy, Age: s.Age, Alive: true}
		genome := Genome{DNA: append([]byte(nil), s.DNA...)}

		w.mapper.NewEntity(&pos, &vel, &vitals, &genome)
		w.count++
	}
}

// MeanEnergy returns the average energy across living creatures, or 0 when
// the world is empty.
func (w *World) MeanEnergy() float64 {
	if w.count == 0 {
		return 0
	}

	var sum float64
	n := 0
	query := w.filter.Query()
	for query.Next() {
		_, _, vitals, _ := query.Get()
		if vitals.Alive {
			sum += float64(vitals.Energy)
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// Each calls fn for every living creature. Used by the renderer.
func (w *World) Each(fn func(pos Position, vitals Vitals)) {
	query := w.filter.Query()
	for query.Next() {
		pos, _, vitals, _ := query.Get()
		if vitals.Alive {
			fn(*pos, *vitals)
		}
	}
}

func (w *World) clear() {
	var all []ecs.Entity
	query := w.filter.Query()
	for query.Next() {
		all = append(all, query.Entity())
	}
	for _, e := range all {
		w.mapper.Remove(e)
	}
	w.count = 0
}

func clampSpeed(vel *Velocity, max float32) {
	sq := vel.X*vel.X + vel.Y*vel.Y
	if sq <= max*max || sq == 0 {
		return
	}
	scale := max / float32(math.Sqrt(float64(sq)))
	vel.X *= scale
	vel.Y *= scale
}
