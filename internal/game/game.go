package game

import (
	"math/rand"
	"time"

	"tanglewood/internal/config"
	"tanglewood/internal/enemy"
	"tanglewood/internal/forest"
	"tanglewood/internal/resource"
	"tanglewood/internal/world"

	"github.com/hajimehoshi/ebiten/v2"
)

// Game hosts the forest subsystem in an ebiten loop: it owns the camera, the
// gathered-resource tally, and the enemy spawner, and drives forest.Update
// every frame. All rendering and input stay on this side of the fence; the
// forest only answers queries and mutators.
type Game struct {
	cfg      *config.Config
	authored *world.AuthoredMap
	forest   *forest.Forest
	spawner  *enemy.Spawner
	camera   Camera
	rng      *rand.Rand

	inventory map[resource.Icon]int
	lastPick  string
}

// NewGame wires the demo together and runs the initial generation.
func NewGame(cfg *config.Config, authored *world.AuthoredMap) *Game {
	seed := cfg.Forest.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	g := &Game{
		cfg:       cfg,
		authored:  authored,
		forest:    forest.New(authored),
		spawner:   enemy.NewSpawner(rng),
		rng:       rng,
		inventory: make(map[resource.Icon]int),
	}

	g.regenerate()

	startX, startY := authored.StartPosition()
	if startX < 0 {
		startX, startY = 0, 0
	}
	g.camera = NewCamera(startX, startY, cfg.GetTileSize(), cfg.GetScreenWidth(), cfg.GetScreenHeight())

	return g
}

// regenerate rebuilds the forest and re-seeds live enemies from the staged
// spawn records.
func (g *Game) regenerate() {
	params := forest.ParamsFromConfig(g.cfg, g.authored.Rect(), g.rng)
	if enemy.EnemyConfig != nil {
		params.EnemyKinds = enemy.EnemyConfig.GetAllEnemyKeys()
	}

	g.forest.Generate(params)
	g.spawner = enemy.NewSpawner(g.rng)
	g.spawner.SpawnPending(g.forest.DrainPendingEnemySpawns())
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	deltaMs := 1000.0 / float64(ebiten.TPS())

	g.camera.HandleInput(8.0)
	g.handleMouse()
	g.handleKeys()

	g.forest.Update(deltaMs)
	g.spawner.Update(deltaMs, g.forest)

	return nil
}

// Layout implements ebiten.Game.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.cfg.GetScreenWidth(), g.cfg.GetScreenHeight()
}
