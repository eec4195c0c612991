// Package config holds the process-wide tunables for the chego engine core.
// A TOML file is optional: every field has a usable default and
// chego runs without ever calling Load.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Defaults, in effect until Load overrides them.
var (
	// UsePext prefers parallel-bit-extract indexing (a software equivalent
	// of the PEXT instruction) over magic multiplication when the running
	// CPU advertises BMI2 support. It is advisory: the magic-multiplication
	// path is always compiled in and used as a fallback.
	UsePext = true

	// HistoryCapacity is the initial capacity reserved for a Position's
	// make/undo journal, in plies.
	HistoryCapacity = 500

	// LogLevel is forwarded to the chlog package: 0=critical..5=debug.
	LogLevel = 2
)

// Load reads the given TOML file and overrides the package defaults with
// whichever fields it sets. A missing file is not an error: the defaults
// above remain in effect.
func Load(path string) error {
	var raw struct {
		UsePext         *bool `toml:"use_pext"`
		HistoryCapacity *int  `toml:"history_capacity"`
		LogLevel        *int  `toml:"log_level"`
	}

	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		if isNotExist(err) {
			return nil
		}
		return fmt.Errorf("config: decode %s: %w", path, err)
	}
	_ = meta

	if raw.UsePext != nil {
		UsePext = *raw.UsePext
	}
	if raw.HistoryCapacity != nil {
		HistoryCapacity = *raw.HistoryCapacity
	}
	if raw.LogLevel != nil {
		LogLevel = *raw.LogLevel
	}
	return nil
}

func isNotExist(err error) bool {
	return os.IsNotExist(err)
}
