package main

import (
	"fmt"
	"os"

	flag "github.com/spf13/pflag"
)

// printUsage writes command and flag help to stderr.
func printUsage(fs *flag.FlagSet) {
	fmt.Fprint(os.Stderr, `monoweb - monospace-styled single-document site generator

Usage:
  monoweb [build] [flags]    build the site
  monoweb serve [flags]      build, watch, and serve with live reload
  monoweb version            print the version
  monoweb help               show this help

Flags:
`)
	if fs == nil {
		f := &cliFlags{}
		fs = newFlagSet(f)
	}
	fmt.Fprintln(os.Stderr, fs.FlagUsages())
}
