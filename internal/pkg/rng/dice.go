package rng

import (
	"github.com/KirkDiggler/rpg-toolkit/dice"
)

// floatSides is the die size used to build Float64 draws
const floatSides = 1 << 24

// Dice adapts an rpg-toolkit dice.Roller to a Source. A roller error
// degrades to the lowest face.
type Dice struct {
	roller dice.Roller
}

// NewDice wraps roller. A nil roller uses dice.DefaultRoller.
func NewDice(roller dice.Roller) *Dice {
	if roller == nil {
		roller = dice.DefaultRoller
	}
	return &Dice{roller: roller}
}

// Intn implements Source
func (d *Dice) Intn(n int) int {
	if n <= 1 {
		return 0
	}
	v, err := d.roller.Roll(n)
	if err != nil || v < 1 || v > n {
		return 0
	}
	return v - 1
}

// Float64 implements Source
func (d *Dice) Float64() float64 {
	return float64(d.Intn(floatSides)) / floatSides
}
