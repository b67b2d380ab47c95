package main

import (
	"bytes"
	"os"
	"testing"

	"github.com/charmbracelet/log"
)

func TestDefaultEnv(t *testing.T) {
	t.Parallel()

	env := DefaultEnv()

	t.Run("Stdin is os.Stdin", func(t *testing.T) {
		if env.Stdin != os.Stdin {
			t.Error("Stdin should be os.Stdin")
		}
	})

	t.Run("Stdout is os.Stdout", func(t *testing.T) {
		if env.Stdout != os.Stdout {
			t.Error("Stdout should be os.Stdout")
		}
	})

	t.Run("Stderr is os.Stderr", func(t *testing.T) {
		if env.Stderr != os.Stderr {
			t.Error("Stderr should be os.Stderr")
		}
	})

	t.Run("Logger is quiet by default", func(t *testing.T) {
		if env.Logger == nil {
			t.Fatal("Logger should not be nil")
		}
		if got := env.Logger.GetLevel(); got != log.WarnLevel {
			t.Errorf("Logger level = %v, want %v", got, log.WarnLevel)
		}
	})
}

func TestNewLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := newLogger(&buf, log.DebugLevel)

	logger.Debug("rendering", "tables", 3)
	if buf.Len() == 0 {
		t.Error("debug note not written at debug level")
	}

	buf.Reset()
	logger.SetLevel(log.WarnLevel)
	logger.Debug("rendering", "tables", 3)
	if buf.Len() != 0 {
		t.Errorf("debug note written at warn level: %q", buf.String())
	}
}
