package resource

// OreStage is the mining state of a vein.
type OreStage int

const (
	OreFull OreStage = iota
	OrePartial
	OreDepleted // mined out, still visible while fading
)

// OreVein is a mineable 2x2 deposit. Mining chips away at the current stage;
// a yield icon is granted only when a stage boundary is crossed, not on every
// hit. Once depleted the vein fades out over a fixed duration.
type OreVein struct {
	X, Y int // top-left tile of the 2x2 footprint
	Kind OreKind

	stage        OreStage
	hits         int
	alpha        float64
	fadeTimer    float64
	fadeDuration float64
	gone         bool
}

// NewOreVein creates a full vein at (x, y) with the given fade duration.
func NewOreVein(x, y int, kind OreKind, fadeMs float64) *OreVein {
	return &OreVein{
		X:            x,
		Y:            y,
		Kind:         kind,
		stage:        OreFull,
		alpha:        1.0,
		fadeDuration: fadeMs,
	}
}

// Occupies reports whether (x, y) falls inside the vein's 2x2 footprint.
func (v *OreVein) Occupies(x, y int) bool {
	return x >= v.X && x <= v.X+1 && y >= v.Y && y <= v.Y+1
}

// Mine strikes the vein once. It returns the yield icon and true only when
// the strike completes a stage (full->partial or partial->depleted). Striking
// a depleted or gone vein does nothing.
func (v *OreVein) Mine() (Icon, bool) {
	if v.gone || v.stage == OreDepleted {
		return "", false
	}

	hitsPerStage := v.Kind.Def().HitsPerStage
	if hitsPerStage < 1 {
		hitsPerStage = 1
	}

	v.hits++
	if v.hits%hitsPerStage != 0 {
		return "", false
	}

	// Stage completed.
	v.stage++
	return Icon(v.Kind.Def().YieldIcon), true
}

// Update advances the fade timer once the vein is depleted.
func (v *OreVein) Update(deltaMs float64) {
	if v.gone || v.stage != OreDepleted {
		return
	}
	v.fadeTimer += deltaMs
	v.alpha = 1.0 - v.fadeTimer/v.fadeDuration
	if v.alpha <= 0 {
		v.alpha = 0
		v.gone = true
	}
}

// Stage returns the vein's current mining stage.
func (v *OreVein) Stage() OreStage { return v.stage }

// Alpha returns the render opacity in [0, 1].
func (v *OreVein) Alpha() float64 { return v.alpha }

// IsDepleted reports whether the vein has been mined out.
func (v *OreVein) IsDepleted() bool { return v.stage == OreDepleted }

// IsGone reports whether the vein has fully faded and can be discarded.
func (v *OreVein) IsGone() bool { return v.gone }
