package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"go.uber.org/automaxprocs/maxprocs"

	supertabular "github.com/alnah/go-supertabular"
	"github.com/alnah/go-supertabular/internal/config"
	"github.com/alnah/go-supertabular/internal/metafile"
	"github.com/alnah/go-supertabular/pandoc"
)

// Version is set at build time via ldflags.
var Version = "dev"

// Sentinel errors for filter runs.
var (
	ErrReadInput     = errors.New("failed to read document from stdin")
	ErrWriteOutput   = errors.New("failed to write document to stdout")
	ErrUnknownLayout = errors.New("unknown column layout")
)

func main() {
	if err := run(os.Args, DefaultEnv()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run executes one filter pass: read a pandoc JSON document from stdin,
// transform it, write it back on stdout. The target format is the first
// positional argument, the way pandoc invokes filters.
func run(args []string, env *Environment) error {
	flags, positional, err := parseFilterFlags(args[1:])
	if err != nil {
		return err
	}
	if flags.version {
		fmt.Fprintf(env.Stdout, "pandoc-supertabular %s\n", Version)
		return nil
	}

	cfg := config.DefaultConfig()
	if flags.config != "" {
		cfg, err = config.LoadConfig(flags.config)
		if err != nil {
			return err
		}
	}
	applyFlagOverrides(cfg, flags)

	if cfg.Verbose {
		env.Logger.SetLevel(log.DebugLevel)
	}

	// A filter run is one-shot, but it should still respect container CPU
	// limits when pandoc fans filters out over a large batch.
	// Error ignored: maxprocs.Set only fails on an invalid GOMAXPROCS env
	// value, in which case Go runtime defaults apply.
	_, _ = maxprocs.Set(maxprocs.Logger(env.Logger.Debugf))

	if cfg.Layout != "" && !supertabular.ValidLayout(cfg.Layout) {
		return fmt.Errorf("%w: %q (known: %v)", ErrUnknownLayout, cfg.Layout, supertabular.LayoutNames())
	}

	format := ""
	if len(positional) > 0 {
		format = positional[0]
	}
	env.Logger.Debug("starting filter pass", "format", format, "layout", cfg.Layout)

	input, err := io.ReadAll(env.Stdin)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadInput, err)
	}
	doc, err := pandoc.Unmarshal(input)
	if err != nil {
		return err
	}

	if cfg.MetadataFile != "" {
		defaults, err := metafile.Load(cfg.MetadataFile)
		if err != nil {
			return err
		}
		env.Logger.Debug("merging metadata defaults", "file", cfg.MetadataFile, "keys", len(defaults))
		doc.Meta = metafile.Merge(doc.Meta, defaults)
	}

	opts := []supertabular.Option{
		supertabular.WithTargetFormat(format),
		supertabular.WithPreamble(!cfg.SkipPreamble),
		supertabular.WithTracer(supertabular.TracerFunc(env.Logger.Debugf)),
	}
	if cfg.Layout != "" {
		opts = append(opts, supertabular.WithLayout(cfg.Layout))
	}
	svc := supertabular.New(opts...)

	output, err := pandoc.Marshal(svc.Transform(doc))
	if err != nil {
		return err
	}
	if _, err := env.Stdout.Write(output); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	if _, err := io.WriteString(env.Stdout, "\n"); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return nil
}

// applyFlagOverrides lets command line flags win over config file values.
func applyFlagOverrides(cfg *config.Config, flags *filterFlags) {
	if flags.layout != "" {
		cfg.Layout = flags.layout
	}
	if flags.metadataFile != "" {
		cfg.MetadataFile = flags.metadataFile
	}
	if flags.noPreamble {
		cfg.SkipPreamble = true
	}
	if flags.verbose {
		cfg.Verbose = true
	}
}
