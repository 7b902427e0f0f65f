package drawing

// Stats is the statistics record the ordering engine emits (spec §4.5
// "Statistics").
type Stats struct {
	NumPaths        int
	InitialIdle     float64
	FinalIdle       float64
	ImprovementPct  float64
	TotalCutLength  float64
	CutTimeS        float64
	IdleTimeS       float64
	EstimatedTimeS  float64
}

// Finalize derives the dependent fields (improvement%, cut/idle time,
// estimated total) from the independent measurements. cfg supplies the
// laser/idle speeds (spec §6).
func (s *Stats) Finalize(cfg Config) {
	if s.InitialIdle > 0 {
		s.ImprovementPct = (s.InitialIdle - s.FinalIdle) / s.InitialIdle * 100
	}
	if cfg.LaserSpeedMMPerS > 0 {
		s.CutTimeS = unitsToMM(s.TotalCutLength) / cfg.LaserSpeedMMPerS
	}
	if cfg.IdleSpeedMMPerS > 0 {
		s.IdleTimeS = unitsToMM(s.FinalIdle) / cfg.IdleSpeedMMPerS
	}
	s.EstimatedTimeS = s.CutTimeS + s.IdleTimeS
}

func unitsToMM(units float64) float64 { return units / mmToUnits }
