package main

import (
	"fmt"
	"io"
)

// printUsage prints the command usage.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: org2typst [flags] <source> [destination]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert Org-mode documents to Typst.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  source         .org file, or a directory converted recursively")
	fmt.Fprintln(w, "  destination    output file; for a directory source, output directory")
	fmt.Fprintln(w, "                 (omitted: stdout for a file, next to each source for a")
	fmt.Fprintln(w, "                 directory unless output.defaultDir is configured)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Document:")
	fmt.Fprintln(w, "  -a, --author <s>          Fallback author (default \"Anonymous\")")
	fmt.Fprintln(w, "  -b, --bibliography <f>    Bibliography file (default \"refs.bib\")")
	fmt.Fprintln(w, "      --keep-cite-sigil     Render [cite:@key] as @key")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Template:")
	fmt.Fprintln(w, "  -t, --template <name>     Template name (default \"project\")")
	fmt.Fprintln(w, "      --asset-path <dir>    Directory containing templates/<name>.typ")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel conversions (0 = auto)")
	fmt.Fprintln(w, "      --watch               Reconvert on change until interrupted")
	fmt.Fprintln(w, "      --lint                Report diagnostics only")
	fmt.Fprintln(w, "      --print-config        Print the effective configuration")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show debug logging")
	fmt.Fprintln(w, "      --version             Print version")
	fmt.Fprintln(w, "  -h, --help                Show this help")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  ORG2TYPST_CONFIG, ORG2TYPST_AUTHOR, ORG2TYPST_BIBLIOGRAPHY,")
	fmt.Fprintln(w, "  ORG2TYPST_TEMPLATE, ORG2TYPST_ASSET_PATH, ORG2TYPST_WORKERS")
	fmt.Fprintln(w, "  A .env file in the working directory is loaded first.")
	fmt.Fprintln(w, "  Precedence: flags > environment > config file > defaults.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Exit codes:")
	fmt.Fprintln(w, "  0 success, 1 conversion or lint failure, 2 usage, 3 file I/O")
}
