package main

import (
	"errors"
	"io"

	flag "github.com/spf13/pflag"
)

// errHelpRequested reports that -h/--help was handled and usage printed.
var errHelpRequested = errors.New("help requested")

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// siteFlags overrides where content is read and how pages link.
type siteFlags struct {
	content   string
	basePath  string
	assetPath string
	style     string
}

// buildFlags holds all flags for the build command.
type buildFlags struct {
	common commonFlags
	site   siteFlags
	output string
	engine string
}

// searchFlags holds flags for the search command.
type searchFlags struct {
	common commonFlags
	site   siteFlags
	limit  int
}

// doctorFlags holds flags for the doctor command.
type doctorFlags struct {
	common commonFlags
	site   siteFlags
	output string
	json   bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "log every rendered record")
}

// addContentFlag adds the content directory flag to a FlagSet.
func addContentFlag(fs *flag.FlagSet, f *siteFlags) {
	fs.StringVar(&f.content, "content", "", "content directory holding items/ and weeks/")
}

// addSiteFlags adds page and asset flags to a FlagSet.
func addSiteFlags(fs *flag.FlagSet, f *siteFlags) {
	addContentFlag(fs, f)
	fs.StringVar(&f.basePath, "base-path", "", "URL prefix for every link, e.g. /weekly")
	fs.StringVar(&f.style, "style", "", "CSS style name or file path")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom asset directory")
}

// parseFlagSet parses args, turning -h/--help into errHelpRequested after
// printing usage to w.
func parseFlagSet(fs *flag.FlagSet, args []string, w io.Writer, usage func(io.Writer)) error {
	fs.SetOutput(w)
	fs.Usage = func() { usage(w) }
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return errHelpRequested
		}
		return usageError(err)
	}
	return nil
}

// parseBuildFlags parses build command flags.
func parseBuildFlags(args []string, w io.Writer) (*buildFlags, error) {
	fs := flag.NewFlagSet("build", flag.ContinueOnError)
	f := &buildFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output directory (cleared on every build)")
	fs.StringVar(&f.engine, "engine", "", "markdown engine: pandoc, goldmark")
	addCommonFlags(fs, &f.common)
	addSiteFlags(fs, &f.site)

	if err := parseFlagSet(fs, args, w, printBuildUsage); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, usageErrorf("build takes no arguments, got %q", fs.Args())
	}
	return f, nil
}

// parseSearchFlags parses search command flags and returns the query.
func parseSearchFlags(args []string, w io.Writer) (*searchFlags, string, error) {
	fs := flag.NewFlagSet("search", flag.ContinueOnError)
	f := &searchFlags{}

	fs.IntVarP(&f.limit, "limit", "n", 0, "show at most n results (0 = all)")
	addCommonFlags(fs, &f.common)
	addContentFlag(fs, &f.site)

	if err := parseFlagSet(fs, args, w, printSearchUsage); err != nil {
		return nil, "", err
	}
	if fs.NArg() != 1 {
		return nil, "", usageErrorf("search takes exactly one query argument")
	}
	if f.limit < 0 {
		return nil, "", usageErrorf("--limit must not be negative, got %d", f.limit)
	}
	return f, fs.Arg(0), nil
}

// parseDoctorFlags parses doctor command flags.
func parseDoctorFlags(args []string, w io.Writer) (*doctorFlags, error) {
	fs := flag.NewFlagSet("doctor", flag.ContinueOnError)
	f := &doctorFlags{}

	fs.BoolVar(&f.json, "json", false, "print the report as JSON")
	fs.StringVarP(&f.output, "output", "o", "", "output directory to check")
	addCommonFlags(fs, &f.common)
	addContentFlag(fs, &f.site)

	if err := parseFlagSet(fs, args, w, printDoctorUsage); err != nil {
		return nil, err
	}
	return f, nil
}
