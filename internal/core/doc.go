// Package core provides the business logic layer for degreeclass.
//
// This package contains the averaging rules separated from terminal concerns.
// Functions here return values and errors; only the cli package and the
// cobra commands turn them into text for the user.
//
// # Averages
//
// A [Classifier] wraps a record store and reloads it before every
// computation so edits made to the backing file outside the program are
// picked up:
//
//   - [Classifier.YearAverages] returns one credit-weighted mean per FHEQ
//     level 4, 5 and 6, or nothing at all when any of them has no credits.
//   - [Classifier.DegreeAverage] combines level 5 and level 6, with level 6
//     counting twice, and writes the result to the derived average file.
//
// # Configuration
//
// [LoadConfig] reads the ini configuration file over [model.DefaultConfig].
package core
