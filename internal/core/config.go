package core

import (
	"fmt"
	"io"

	"github.com/inovacc/degreeclass/internal/encoding"
	"github.com/inovacc/degreeclass/internal/model"
	"gopkg.in/ini.v1"
)

// LoadConfig reads the ini file at path over the defaults. An empty path or a
// missing file yields the defaults unchanged.
func LoadConfig(path string) (model.Config, error) {
	cfg := model.DefaultConfig()

	if path == "" || !encoding.FileExists(path) {
		return cfg, nil
	}

	file, err := ini.Load(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := file.Section("files").MapTo(&cfg.Files); err != nil {
		return cfg, fmt.Errorf("invalid [files] section in %s: %w", path, err)
	}

	if err := file.Section("log").MapTo(&cfg.Log); err != nil {
		return cfg, fmt.Errorf("invalid [log] section in %s: %w", path, err)
	}

	return cfg, nil
}

// ShowConfig writes the effective configuration
func ShowConfig(w io.Writer, cfg model.Config) {
	history := cfg.Files.History
	if history == "" {
		history = "(application directory)"
	}

	_, _ = fmt.Fprintln(w, "Current Configuration:")
	_, _ = fmt.Fprintln(w, "=====================")
	_, _ = fmt.Fprintf(w, "Data File:     %s\n", cfg.Files.Data)
	_, _ = fmt.Fprintf(w, "Average File:  %s\n", cfg.Files.Average)
	_, _ = fmt.Fprintf(w, "History File:  %s\n", history)
	_, _ = fmt.Fprintf(w, "Log Level:     %s\n", cfg.Log.Level)
}
