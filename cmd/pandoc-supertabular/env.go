package main

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// Environment holds injectable dependencies for testability.
type Environment struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger *log.Logger
}

// DefaultEnv returns the production environment. Stdout carries the JSON
// document back to pandoc, so the logger and everything human-readable go
// to stderr.
func DefaultEnv() *Environment {
	return &Environment{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Logger: newLogger(os.Stderr, log.WarnLevel),
	}
}

func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}
