package enemy

import (
	"fmt"
	"math/rand"

	"tanglewood/internal/forest"
	"tanglewood/internal/mathutil"
)

// Enemy is a live hostile entity instantiated from a pending spawn record.
// It idles around its home tile, never straying beyond its wander radius.
type Enemy struct {
	Key       string
	Name      string
	HitPoints int
	Color     [3]int

	TileX, TileY int
	homeX, homeY int
	wanderRadius int
	speed        float64

	moveTimer float64
}

// Spawner turns the forest's staged spawn records into live enemies. It owns
// the resulting collection; the forest only ever held the records.
type Spawner struct {
	enemies []*Enemy
	rng     *rand.Rand
}

// NewSpawner creates a spawner driven by the given random source.
func NewSpawner(rng *rand.Rand) *Spawner {
	return &Spawner{rng: rng}
}

// SpawnPending consumes staged records into live enemies. Records with an
// unknown type are skipped with a warning rather than failing the batch.
func (s *Spawner) SpawnPending(records []forest.PendingEnemySpawn) {
	for _, rec := range records {
		def, err := EnemyConfig.GetEnemyByKey(rec.Kind)
		if err != nil {
			fmt.Printf("Warning: skipping enemy spawn at (%d,%d): %v\n", rec.TileX, rec.TileY, err)
			continue
		}
		s.enemies = append(s.enemies, &Enemy{
			Key:          rec.Kind,
			Name:         def.Name,
			HitPoints:    def.MaxHitPoints,
			Color:        def.Color,
			TileX:        rec.TileX,
			TileY:        rec.TileY,
			homeX:        rec.TileX,
			homeY:        rec.TileY,
			wanderRadius: def.WanderRadius,
			speed:        def.Speed,
		})
	}
}

// Enemies returns the live enemy collection.
func (s *Spawner) Enemies() []*Enemy {
	return s.enemies
}

// walkChecker is the forest's walkability query.
type walkChecker interface {
	IsWalkable(x, y int) bool
}

// Update advances idle wandering. Each enemy occasionally steps to a random
// walkable orthogonal neighbor inside its wander radius.
func (s *Spawner) Update(deltaMs float64, walk walkChecker) {
	for _, e := range s.enemies {
		e.moveTimer += deltaMs * e.speed
		if e.moveTimer < 1000 {
			continue
		}
		e.moveTimer = 0

		dirs := [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
		d := dirs[s.rng.Intn(len(dirs))]
		nx, ny := e.TileX+d[0], e.TileY+d[1]

		if mathutil.IntAbs(nx-e.homeX) > e.wanderRadius || mathutil.IntAbs(ny-e.homeY) > e.wanderRadius {
			continue
		}
		if !walk.IsWalkable(nx, ny) {
			continue
		}
		e.TileX, e.TileY = nx, ny
	}
}
