package model

import "path/filepath"

// FilesConfig holds the locations of the files the tool reads and writes.
type FilesConfig struct {
	// Data is the backing CSV file with every module record
	Data string `ini:"data"`

	// Average is the text file holding the latest degree average
	Average string `ini:"average"`

	// History is the bbolt database logging persisted degree averages.
	// Empty means the application directory default.
	History string `ini:"history"`
}

// LogConfig controls the diagnostic logger.
type LogConfig struct {
	// Level is a zap level name: debug, info, warn, error
	Level string `ini:"level"`
}

// Config holds the application configuration
type Config struct {
	Files FilesConfig `ini:"files"`
	Log   LogConfig   `ini:"log"`
}

// DefaultConfig returns a Config pointing at the data directory under the
// working directory.
func DefaultConfig() Config {
	return Config{
		Files: FilesConfig{
			Data:    filepath.Join("data", "academic_module_grades.csv"),
			Average: filepath.Join("data", "degree_average.txt"),
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}
