package combat

import "encoding/json"

// Stat stage bounds
const (
	MinStage = -6
	MaxStage = 6
)

// Stats holds one value per battle stat
type Stats struct {
	HP             int `json:"hp"`
	Attack         int `json:"attack"`
	Defense        int `json:"defense"`
	SpecialAttack  int `json:"special_attack"`
	SpecialDefense int `json:"special_defense"`
	Speed          int `json:"speed"`
}

// Get returns the value for stat
func (s Stats) Get(stat Stat) int {
	switch stat {
	case StatHP:
		return s.HP
	case StatAttack:
		return s.Attack
	case StatDefense:
		return s.Defense
	case StatSpecialAttack:
		return s.SpecialAttack
	case StatSpecialDefense:
		return s.SpecialDefense
	case StatSpeed:
		return s.Speed
	}
	return 0
}

// Set stores v for stat
func (s *Stats) Set(stat Stat, v int) {
	switch stat {
	case StatHP:
		s.HP = v
	case StatAttack:
		s.Attack = v
	case StatDefense:
		s.Defense = v
	case StatSpecialAttack:
		s.SpecialAttack = v
	case StatSpecialDefense:
		s.SpecialDefense = v
	case StatSpeed:
		s.Speed = v
	}
}

// AtLevel derives level-scaled stats from base stats
func (s Stats) AtLevel(level int) Stats {
	var out Stats
	for _, stat := range AllStats {
		scaled := s.Get(stat) * 2 * level / 100
		if stat == StatHP {
			out.Set(stat, scaled+level+10)
			continue
		}
		out.Set(stat, scaled+5)
	}
	return out
}

// Stages tracks the five in-battle stat stages. HP has no stage.
type Stages struct {
	values map[Stat]int
}

// Get returns the current stage for stat
func (s Stages) Get(stat Stat) int {
	return s.values[stat]
}

// Shift moves stat by delta within [MinStage, MaxStage] and returns the
// change actually applied.
func (s *Stages) Shift(stat Stat, delta int) int {
	if stat == StatHP {
		return 0
	}
	if s.values == nil {
		s.values = make(map[Stat]int)
	}
	before := s.values[stat]
	after := min(max(before+delta, MinStage), MaxStage)
	if after == 0 {
		delete(s.values, stat)
	} else {
		s.values[stat] = after
	}
	return after - before
}

// MarshalJSON encodes the non-zero stages
func (s Stages) MarshalJSON() ([]byte, error) {
	if s.values == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(s.values)
}

// UnmarshalJSON decodes stages, clamping out-of-range values
func (s *Stages) UnmarshalJSON(data []byte) error {
	var raw map[Stat]int
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	s.values = nil
	for stat, v := range raw {
		s.Shift(stat, v)
	}
	return nil
}

// StageMultiplier converts a stage into its stat multiplier
func StageMultiplier(stage int) float64 {
	stage = min(max(stage, MinStage), MaxStage)
	if stage >= 0 {
		return float64(2+stage) / 2
	}
	return 2 / float64(2-stage)
}
