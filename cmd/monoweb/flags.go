package main

import (
	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// siteFlags holds layout overrides for build and serve.
type siteFlags struct {
	input    string
	output   string
	static   string
	template string
}

// serveFlags holds flags for the development server.
type serveFlags struct {
	port int
}

// cliFlags holds all flags for the monoweb CLI.
type cliFlags struct {
	common commonFlags
	site   siteFlags
	serve  serveFlags
}

// newFlagSet builds the shared FlagSet for all commands.
func newFlagSet(f *cliFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("monoweb", flag.ContinueOnError)

	fs.StringVarP(&f.common.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.common.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.common.verbose, "verbose", "v", false, "show build detail")

	fs.StringVarP(&f.site.input, "input", "i", "", "Markdown input file")
	fs.StringVarP(&f.site.output, "output", "o", "", "output directory")
	fs.StringVarP(&f.site.static, "static", "s", "", "static assets directory")
	fs.StringVarP(&f.site.template, "template", "t", "", "page skeleton file")

	fs.IntVarP(&f.serve.port, "port", "p", 0, "development server port")

	fs.Usage = func() { printUsage(fs) }
	return fs
}

// parseFlags parses os.Args and returns the flags plus positional args
// (the command name, if any).
func parseFlags(args []string) (*cliFlags, []string, error) {
	f := &cliFlags{}
	fs := newFlagSet(f)
	if err := fs.Parse(args[1:]); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}
