package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds output verbosity flags.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// documentFlags holds flags that shape the generated Typst.
type documentFlags struct {
	author        string
	bibliography  string
	keepCiteSigil bool
}

// assetFlags holds template selection flags.
type assetFlags struct {
	template  string
	assetPath string
}

// modeFlags select what the run does instead of a plain conversion.
type modeFlags struct {
	watch       bool
	lint        bool
	printConfig bool
	version     bool
	help        bool
}

// cliFlags holds every flag of the org2typst command.
type cliFlags struct {
	common   commonFlags
	document documentFlags
	assets   assetFlags
	mode     modeFlags
	workers  int

	// set records flags given explicitly, so a zero value on the
	// command line still overrides config and environment.
	set map[string]bool
}

func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show debug logging")
}

func addDocumentFlags(fs *flag.FlagSet, f *documentFlags) {
	fs.StringVarP(&f.author, "author", "a", "", "author used when the document declares none")
	fs.StringVarP(&f.bibliography, "bibliography", "b", "", "bibliography file named in the output")
	fs.BoolVar(&f.keepCiteSigil, "keep-cite-sigil", false, "render [cite:@key] as @key")
}

func addAssetFlags(fs *flag.FlagSet, f *assetFlags) {
	fs.StringVarP(&f.template, "template", "t", "", "template name")
	fs.StringVar(&f.assetPath, "asset-path", "", "directory with templates/<name>.typ overrides")
}

func addModeFlags(fs *flag.FlagSet, f *modeFlags) {
	fs.BoolVar(&f.watch, "watch", false, "reconvert when the source changes")
	fs.BoolVar(&f.lint, "lint", false, "report diagnostics without writing output")
	fs.BoolVar(&f.printConfig, "print-config", false, "print the effective configuration and exit")
	fs.BoolVar(&f.version, "version", false, "print version and exit")
	fs.BoolVarP(&f.help, "help", "h", false, "show help")
}

// parseFlags parses args (without the program name) and returns the
// positional arguments.
func parseFlags(args []string, stderr io.Writer) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet("org2typst", flag.ContinueOnError)
	fs.SetOutput(stderr)
	f := &cliFlags{set: make(map[string]bool)}

	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel conversions in directory mode (0 = auto)")
	addCommonFlags(fs, &f.common)
	addDocumentFlags(fs, &f.document)
	addAssetFlags(fs, &f.assets)
	addModeFlags(fs, &f.mode)

	fs.Usage = func() { printUsage(stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	fs.Visit(func(fl *flag.Flag) { f.set[fl.Name] = true })

	return f, fs.Args(), nil
}
