package resource

// CropStage is the growth/harvest state of a crop.
type CropStage int

const (
	CropSeed CropStage = iota
	CropSprout
	CropGrown     // harvestable
	CropHarvested // hole left behind, fading out
)

// Crop is a single-tile plant. Planted crops pass through the seed -> sprout
// -> grown sequence on a per-stage growth timer; crops spawned inside forest
// pockets are created already grown. Harvest is single-shot and leaves a
// fading hole.
type Crop struct {
	X, Y int
	Kind CropKind

	stage        CropStage
	growthTimer  float64
	alpha        float64
	fadeTimer    float64
	fadeDuration float64
	gone         bool
}

// NewPlantedCrop creates a crop at seed stage, as used on tilled fields.
func NewPlantedCrop(x, y int, kind CropKind, fadeMs float64) *Crop {
	return &Crop{X: x, Y: y, Kind: kind, stage: CropSeed, alpha: 1.0, fadeDuration: fadeMs}
}

// NewPocketCrop creates a crop that is immediately harvestable, as used when
// populating forest pockets.
func NewPocketCrop(x, y int, kind CropKind, fadeMs float64) *Crop {
	return &Crop{X: x, Y: y, Kind: kind, stage: CropGrown, alpha: 1.0, fadeDuration: fadeMs}
}

// Harvest gathers the crop. It returns the yield icon and true only when the
// crop is grown; harvesting anything else (still growing, already harvested)
// does nothing.
func (c *Crop) Harvest() (Icon, bool) {
	if c.gone || c.stage != CropGrown {
		return "", false
	}
	c.stage = CropHarvested
	return Icon(c.Kind.Def().YieldIcon), true
}

// Update advances growth timers and, after harvest, the fade-out.
func (c *Crop) Update(deltaMs float64) {
	if c.gone {
		return
	}

	switch c.stage {
	case CropSeed, CropSprout:
		growthMs := float64(c.Kind.Def().GrowthMs)
		if growthMs <= 0 {
			growthMs = 1
		}
		c.growthTimer += deltaMs
		if c.growthTimer >= growthMs {
			c.growthTimer = 0
			c.stage++
		}
	case CropHarvested:
		c.fadeTimer += deltaMs
		c.alpha = 1.0 - c.fadeTimer/c.fadeDuration
		if c.alpha <= 0 {
			c.alpha = 0
			c.gone = true
		}
	}
}

// Stage returns the crop's current stage.
func (c *Crop) Stage() CropStage { return c.stage }

// Alpha returns the render opacity in [0, 1].
func (c *Crop) Alpha() float64 { return c.alpha }

// IsHarvestable reports whether Harvest would currently succeed.
func (c *Crop) IsHarvestable() bool { return !c.gone && c.stage == CropGrown }

// IsGone reports whether the crop has fully faded and can be discarded.
func (c *Crop) IsGone() bool { return c.gone }
