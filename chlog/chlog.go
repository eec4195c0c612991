// Package chlog is a thin wrapper around github.com/op/go-logging that hands
// each chego package a preconfigured, module-scoped logger. It exists to
// keep the one-line "var log = chlog.Get(\"position\")" pattern consistent
// across the core instead of every package wiring its own backend.
//
// chlog is never used on the move-generation hot path: only table
// initialization and FEN parse failures log through it.
package chlog

import (
	"os"

	"github.com/op/go-logging"

	"github.com/treepeck/chego/config"
)

var format = logging.MustStringFormatter(
	`%{time:15:04:05.000} %{shortpkg:-10.10s} %{level:-7.7s} %{message}`,
)

var backend = func() logging.LeveledBackend {
	raw := logging.NewLogBackend(os.Stderr, "", 0)
	formatted := logging.NewBackendFormatter(raw, format)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.Level(config.LogLevel), "")
	return leveled
}()

// Get returns a *logging.Logger tagged with the given module name, sharing
// the single stderr backend configured from config.LogLevel.
func Get(module string) *logging.Logger {
	log := logging.MustGetLogger(module)
	log.SetBackend(backend)
	return log
}
