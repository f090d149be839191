package hpp

import (
	"hpp-ca/internal/core"
	"hpp-ca/internal/lga"
)

// Parameters reports configuration and live statistics for the HUD.
func (s *Sim) Parameters() core.ParameterSnapshot {
	px, py := s.auto.Momentum()
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				core.IntParam("w", "Width", s.cfg.Width),
				core.IntParam("h", "Height", s.cfg.Height),
				core.StringParam("boundary", "Boundary", s.mode.String()),
				core.StringParam("example", "Example", s.cfg.Example),
			},
		},
		{
			Name: "Rules",
			Params: []core.Parameter{
				core.StringParam("rule", "Rule table", s.rules.String()),
				core.BoolParam("permutation", "Permutation", s.rules.IsPermutation()),
			},
		},
		{
			Name: "Scheduler",
			Params: []core.Parameter{
				core.IntParam("tile_w", "Tile width", s.cfg.TileWidth),
				core.IntParam("tile_h", "Tile height", s.cfg.TileHeight),
				core.IntParam("workers", "Workers", s.exec.Workers()),
			},
		},
		{
			Name: "State",
			Params: []core.Parameter{
				core.Uint64Param("generation", "Generation", s.auto.Generation()),
				core.IntParam("particles", "Particles", s.auto.Particles()),
				core.IntParam("px", "Momentum x", px),
				core.IntParam("py", "Momentum y", py),
			},
		},
	}}
}

// ParameterControls lists the scheduler settings that can change between
// steps. A tile size of 0 selects the sequential scheduler.
func (s *Sim) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "tile_w", Label: "Tile width", Step: 1, Min: 0, Max: s.cfg.Width, HasMin: true, HasMax: true},
		{Key: "tile_h", Label: "Tile height", Step: 1, Min: 0, Max: s.cfg.Height, HasMin: true, HasMax: true},
		{Key: "workers", Label: "Workers", Step: 1, Min: 1, Max: 256, HasMin: true, HasMax: true},
	}
}

// SetIntParameter applies a HUD adjustment.
func (s *Sim) SetIntParameter(key string, value int) bool {
	for _, ctrl := range s.ParameterControls() {
		if ctrl.Key == key {
			value = ctrl.Clamp(value)
			break
		}
	}
	switch key {
	case "tile_w":
		s.cfg.TileWidth = value
	case "tile_h":
		s.cfg.TileHeight = value
	case "workers":
		s.cfg.Workers = value
		s.exec = lga.NewPoolExecutor(value)
		s.auto.SetExecutor(s.exec)
	default:
		return false
	}
	return true
}
