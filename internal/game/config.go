package game

import (
	"github.com/samdwyer/roguewarts/internal/config"
	"github.com/samdwyer/roguewarts/internal/entity"
	"github.com/samdwyer/roguewarts/internal/gamedata"
	"github.com/samdwyer/roguewarts/internal/level"
	"github.com/samdwyer/roguewarts/internal/world"
)

// graphOptions turns loaded settings into world construction options.
func graphOptions(cfg *config.Config, monsters *gamedata.MonsterRegistry) level.GraphOptions {
	return level.GraphOptions{
		Seed: cfg.Seed,
		Level: level.Options{
			Width:  cfg.Map.Width,
			Height: cfg.Map.Height,
			Debug:  cfg.Debug,
		},
		FOV: entity.FOV{
			Radius:     cfg.FOV.Radius,
			LightWalls: cfg.FOV.LightWalls,
			Algorithm:  cfg.FOVAlgorithm(),
			Visible:    world.NewPointSet(),
		},
		Monsters: monsters,
	}
}
