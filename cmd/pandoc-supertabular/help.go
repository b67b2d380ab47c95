package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: pandoc-supertabular [format] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Pandoc JSON filter that renders Markdown tables as supertabular")
	fmt.Fprintln(w, "environments so long tables break across PDF pages. Reads a pandoc")
	fmt.Fprintln(w, "document on stdin, writes the transformed document on stdout.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Normally invoked by pandoc:")
	fmt.Fprintln(w, "  pandoc --filter pandoc-supertabular -o out.pdf in.md")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  format    Target output format, passed by pandoc. Anything but")
	fmt.Fprintln(w, "            latex or beamer passes the document through untouched.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -l, --layout <name>          Column layout: width, plain")
	fmt.Fprintln(w, "  -c, --config <name>          Config file name or path")
	fmt.Fprintln(w, "  -m, --metadata-file <path>   YAML defaults merged beneath document metadata")
	fmt.Fprintln(w, "      --no-preamble            Leave header-includes alone")
	fmt.Fprintln(w, "  -v, --verbose                Progress notes on stderr")
	fmt.Fprintln(w, "      --version                Print version and exit")
}
