package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/tickreport/cmd"
	"github.com/google/subcommands"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	cmd.Register(commander)
	flag.Parse()

	// An unknown subcommand falls through to a tkr-<name> executable on
	// PATH, so deployments can graft their own steps onto the tool.
	if args := flag.Args(); len(args) > 0 && !cmd.Builtin(args[0]) {
		if found, code := cmd.RunExtension(args[0], args[1:]); found {
			os.Exit(code)
		}
	}

	os.Exit(int(commander.Execute(context.Background())))
}
