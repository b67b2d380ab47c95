package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// filterFlags holds all flags for the filter binary.
type filterFlags struct {
	layout       string
	config       string
	metadataFile string
	noPreamble   bool
	verbose      bool
	version      bool
}

// parseFilterFlags parses command line flags and returns positional args.
// pandoc invokes filters with the target format as the only positional
// argument, so flags exist for standalone runs and filter wrapper scripts.
func parseFilterFlags(args []string) (*filterFlags, []string, error) {
	fs := flag.NewFlagSet("pandoc-supertabular", flag.ContinueOnError)
	f := &filterFlags{}

	fs.StringVarP(&f.layout, "layout", "l", "", "column layout: width, plain")
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVarP(&f.metadataFile, "metadata-file", "m", "", "YAML defaults merged beneath document metadata")
	fs.BoolVar(&f.noPreamble, "no-preamble", false, "leave header-includes alone")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "progress notes on stderr")
	fs.BoolVar(&f.version, "version", false, "print version and exit")

	fs.Usage = func() { printUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
