package physics

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/lixenwraith/flight-globe/parameter"
)

// DustConfig holds the force model and bounds of a dust field
type DustConfig struct {
	Count              int        `toml:"count"`
	SpawnHalfWidth     float64    `toml:"spawn_half_width"`
	VelocitySpan       float64    `toml:"velocity_span"`
	Boundary           float64    `toml:"boundary"`
	RespawnFactor      float64    `toml:"respawn_factor"`
	RespawnSpeed       float64    `toml:"respawn_speed"`
	Gravity            float64    `toml:"gravity"`
	GravityMinDistance float64    `toml:"gravity_min_distance"`
	Damping            float64    `toml:"damping"`
	WindStrength       float64    `toml:"wind_strength"`
	WindDirection      [3]float64 `toml:"wind_direction"`
	JitterSpan         float64    `toml:"jitter_span"`
}

// DefaultDustConfig returns the standard space-dust field
func DefaultDustConfig() DustConfig {
	return DustConfig{
		Count:              parameter.DustCount,
		SpawnHalfWidth:     parameter.DustSpawnHalfWidth,
		VelocitySpan:       parameter.DustInitialVelocitySpan,
		Boundary:           parameter.DustBoundary,
		RespawnFactor:      parameter.DustRespawnRadiusFactor,
		RespawnSpeed:       parameter.DustRespawnSpeed,
		Gravity:            parameter.DustGravity,
		GravityMinDistance: parameter.DustGravityMinDistance,
		Damping:            parameter.DustDamping,
		WindStrength:       parameter.DustWindStrength,
		WindDirection:      parameter.DustWindDirection,
		JitterSpan:         parameter.DustJitterSpan,
	}
}

// Validate reports the first out-of-range field
func (c DustConfig) Validate() error {
	switch {
	case c.Count < 0:
		return fmt.Errorf("dust count %d must be >= 0", c.Count)
	case c.Boundary <= 0:
		return fmt.Errorf("dust boundary %v must be > 0", c.Boundary)
	case c.SpawnHalfWidth < 0 || c.SpawnHalfWidth > c.Boundary:
		return fmt.Errorf("dust spawn half-width %v must be in [0, boundary %v]", c.SpawnHalfWidth, c.Boundary)
	case c.RespawnFactor <= 0 || c.RespawnFactor >= 1:
		return fmt.Errorf("dust respawn factor %v must be in (0, 1)", c.RespawnFactor)
	case c.Damping <= 0 || c.Damping > 1:
		return fmt.Errorf("dust damping %v must be in (0, 1]", c.Damping)
	case c.GravityMinDistance <= 0:
		return fmt.Errorf("dust gravity min distance %v must be > 0", c.GravityMinDistance)
	}
	return nil
}

// DustField is a fixed-size particle set around the globe
// Positions and velocities are parallel flat buffers indexed 3*i..3*i+2
// Buffers are allocated once in NewDustField and only mutated in place afterwards
type DustField struct {
	cfg        DustConfig
	rng        *rand.Rand
	positions  []float64
	velocities []float64

	respawnRadius float64
	windX         float64
	windY         float64
	windZ         float64

	dirty    bool
	recycled uint64
}

// NewDustField seeds count particles in the spawn cube with small random velocities
func NewDustField(cfg DustConfig, rng *rand.Rand) *DustField {
	n := cfg.Count * 3
	f := &DustField{
		cfg:           cfg,
		rng:           rng,
		positions:     make([]float64, n),
		velocities:    make([]float64, n),
		respawnRadius: cfg.Boundary * cfg.RespawnFactor,
		windX:         cfg.WindDirection[0] * cfg.WindStrength,
		windY:         cfg.WindDirection[1] * cfg.WindStrength,
		windZ:         cfg.WindDirection[2] * cfg.WindStrength,
		dirty:         true,
	}

	w := cfg.SpawnHalfWidth
	for i := 0; i < n; i++ {
		f.positions[i] = (rng.Float64() - 0.5) * 2 * w
		f.velocities[i] = (rng.Float64() - 0.5) * cfg.VelocitySpan
	}
	return f
}

// Update advances every particle by one tick
// Force order: attraction, damping, wind, jitter, then Euler integration and recycling
func (f *DustField) Update() {
	cfg := &f.cfg
	pos := f.positions
	vel := f.velocities
	jitter := cfg.JitterSpan
	damping := cfg.Damping
	b := cfg.Boundary

	for i := 0; i+2 < len(pos); i += 3 {
		x, y, z := pos[i], pos[i+1], pos[i+2]
		vx, vy, vz := vel[i], vel[i+1], vel[i+2]

		if ax, ay, az, ok := CentralAttraction(x, y, z, cfg.Gravity, cfg.GravityMinDistance); ok {
			vx += ax
			vy += ay
			vz += az
		}

		vx *= damping
		vy *= damping
		vz *= damping

		vx += f.windX
		vy += f.windY
		vz += f.windZ

		vx += (f.rng.Float64() - 0.5) * jitter
		vy += (f.rng.Float64() - 0.5) * jitter
		vz += (f.rng.Float64() - 0.5) * jitter

		x += vx
		y += vy
		z += vz

		// Recycle onto a fixed shell regardless of which axis crossed
		if math.Abs(x) > b || math.Abs(y) > b || math.Abs(z) > b {
			x, y, z, vx, vy, vz = f.respawn()
			f.recycled++
		}

		pos[i], pos[i+1], pos[i+2] = x, y, z
		vel[i], vel[i+1], vel[i+2] = vx, vy, vz
	}

	f.dirty = true
}

// respawn returns a point on the recycle shell with a small inward velocity
func (f *DustField) respawn() (x, y, z, vx, vy, vz float64) {
	r := f.respawnRadius
	x, y, z = RandomOnSphere(r, f.rng.Float64(), f.rng.Float64())

	k := -f.cfg.RespawnSpeed * f.rng.Float64() / r
	return x, y, z, x * k, y * k, z * k
}

// Len returns the particle count
func (f *DustField) Len() int {
	return len(f.positions) / 3
}

// Positions returns the live position buffer, callers must not retain or mutate it
func (f *DustField) Positions() []float64 {
	return f.positions
}

// Velocities returns the live velocity buffer, callers must not retain or mutate it
func (f *DustField) Velocities() []float64 {
	return f.velocities
}

// Position returns particle i
func (f *DustField) Position(i int) (x, y, z float64) {
	j := i * 3
	return f.positions[j], f.positions[j+1], f.positions[j+2]
}

// Dirty reports whether positions changed since the last ClearDirty
func (f *DustField) Dirty() bool {
	return f.dirty
}

// ClearDirty is called by the display layer after consuming the buffer
func (f *DustField) ClearDirty() {
	f.dirty = false
}

// Recycled returns the cumulative number of boundary recycles
func (f *DustField) Recycled() uint64 {
	return f.recycled
}

// Config returns the field configuration
func (f *DustField) Config() DustConfig {
	return f.cfg
}
