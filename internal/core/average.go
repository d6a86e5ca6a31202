package core

import "github.com/inovacc/degreeclass/internal/model"

// upperLevelWeight is how many times a level 6 credit counts against a level 5 credit.
const upperLevelWeight = 2

// FilterLevel returns the records at the given level, preserving order.
func FilterLevel(modules []model.Module, level model.Level) []model.Module {
	var out []model.Module

	for _, m := range modules {
		if m.Level == level {
			out = append(out, m)
		}
	}

	return out
}

// WeightedAverage returns Σ(grade×credits)/Σ(credits). ok is false when the
// credits sum to zero.
func WeightedAverage(modules []model.Module) (avg float64, ok bool) {
	var weighted, credits int

	for _, m := range modules {
		weighted += m.Grade * m.Credits
		credits += m.Credits
	}

	if credits == 0 {
		return 0, false
	}

	return float64(weighted) / float64(credits), true
}

// DegreeAverageOf combines level 5 and level 6 records, counting level 6
// grades and credits twice. Level 4 is ignored.
func DegreeAverageOf(modules []model.Module) (avg float64, ok bool) {
	var weighted, credits int

	for _, m := range modules {
		switch m.Level {
		case model.LevelFive:
			weighted += m.Grade * m.Credits
			credits += m.Credits
		case model.LevelSix:
			weighted += upperLevelWeight * m.Grade * m.Credits
			credits += upperLevelWeight * m.Credits
		}
	}

	if credits == 0 {
		return 0, false
	}

	return float64(weighted) / float64(credits), true
}
