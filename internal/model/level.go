package model

import "fmt"

// Level is a FHEQ curriculum level.
type Level int

const (
	LevelFour Level = 4 // Year 1
	LevelFive Level = 5 // Year 2
	LevelSix  Level = 6 // Year 3
)

// Levels returns the recognized levels in ascending order.
func Levels() []Level {
	return []Level{LevelFour, LevelFive, LevelSix}
}

// Recognized reports whether l is one of the levels used for year averages.
func (l Level) Recognized() bool {
	switch l {
	case LevelFour, LevelFive, LevelSix:
		return true
	}

	return false
}

// Label returns the academic year label shown next to a year average.
func (l Level) Label() string {
	switch l {
	case LevelFour:
		return "Y1"
	case LevelFive:
		return "Y2"
	case LevelSix:
		return "Y3"
	default:
		return fmt.Sprintf("FHEQ %d", int(l))
	}
}
