// Package model defines the data structures used throughout degreeclass.
//
// # Module
//
// The [Module] struct is one academic module record as stored in the backing
// CSV file:
//
//	type Module struct {
//	    Code    string // Module code, e.g. "COMP2001"
//	    Name    string // Human readable module name
//	    Credits int    // Credit weight used by every average
//	    Level   Level  // FHEQ level, 4/5/6 map to Y1/Y2/Y3
//	    Grade   int    // Percentage grade, 0-100
//	}
//
// Records are plain values. Nothing in the application mutates a record after
// it has been parsed or entered.
//
// # Config
//
// The [Config] struct holds the file locations and logging level. It is read
// from an ini file and may be overridden by command line flags.
package model
