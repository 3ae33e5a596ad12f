package cmd

import (
	"context"
	"hastec/common"
	"hastec/report"
	"hastec/syntax"
	"io"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/ComedicChimera/olive"
	"github.com/kr/pretty"
)

// Execute is the main entry point for the `hastec` CLI utility.  It returns the
// process exit code.
func Execute() int {
	// set up the argument parser and all its extended commands and arguments
	cli := olive.NewCLI("hastec", "hastec is a checker for Haste source files", true)
	logLvlArg := cli.AddSelectorArg("loglevel", "ll", "the compiler log level", false, []string{"silent", "error", "warn", "verbose"})
	logLvlArg.SetDefaultValue("verbose")

	checkCmd := cli.AddSubcommand("check", "check source files", true)
	checkCmd.AddPrimaryArg("path", "the path to the file or directory to check", true)
	checkCmd.AddStringArg("emit", "e", "the format to emit the checked program in (yaml)", false)
	checkCmd.AddStringArg("config", "c", "the path to the project file to use", false)
	checkCmd.AddFlag("watch", "w", "check again whenever a source file changes")

	parseCmd := cli.AddSubcommand("parse", "print the syntax tree of a source file", true)
	parseCmd.AddPrimaryArg("path", "the path to the file to parse", true)

	cli.AddSubcommand("version", "print the Haste version", false)

	report.InitColor(os.Stdout)

	// run the argument parser
	result, err := olive.ParseArgs(cli, os.Args)
	if err != nil {
		report.NewConsoleReporter(os.Stdout, report.LogLevelError).ReportFatal("%s", err)
		return 1
	}

	logLevel := report.LogLevels[result.Arguments["loglevel"].(string)]

	// process the inputed command line
	subcmdName, subResult, _ := result.Subcommand()
	switch subcmdName {
	case "check":
		return execCheckCommand(subResult, logLevel)
	case "parse":
		return execParseCommand(subResult, logLevel)
	case "version":
		report.NewConsoleReporter(os.Stdout, report.LogLevelVerbose).ReportInfo("Haste Version", common.HasteVersion)
	}

	return 0
}

// execCheckCommand executes the check subcommand and handles all errors.
func execCheckCommand(result *olive.ArgParseResult, logLevel int) int {
	rootPath, _ := result.PrimaryArg()

	var emit string
	if emitArg, ok := result.Arguments["emit"]; ok {
		emit = emitArg.(string)
	}

	var configPath string
	if configArg, ok := result.Arguments["config"]; ok {
		configPath = configArg.(string)
	}

	// The emitted program is written to stdout so everything else is written
	// to stderr.
	var out io.Writer = os.Stdout
	if emit != "" {
		out = os.Stderr
	}
	rep := report.NewConsoleReporter(out, logLevel)

	if emit != "" && emit != "yaml" {
		rep.ReportFatal("unknown emit format: `%s`", emit)
		return 1
	}

	c, err := NewCompiler(rootPath, rep)
	if err != nil {
		rep.ReportFatal("%s", err)
		return 1
	}

	if emit != "" {
		c.KeepDiagnostics()
	}

	check := func() {
		rep.Reset()
		if err := c.LoadProject(configPath); err != nil {
			rep.ReportFatal("%s", err)
			return
		}

		units, err := c.CheckAll(context.Background())
		if err != nil {
			rep.ReportFatal("%s", err)
			return
		}

		if emit != "" {
			if err := EmitYAML(os.Stdout, units); err != nil {
				rep.ReportFatal("%s", err)
			}
		}

		rep.ReportFinished()
	}

	if result.HasFlag("watch") {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		rep.ReportInfo("Watching", "%s (press Ctrl+C to stop)", filepath.Base(c.rootAbsPath))
		if err := c.Watch(ctx, check); err != nil {
			rep.ReportFatal("%s", err)
			return 1
		}

		return 0
	}

	check()
	if rep.AnyErrors() {
		return 1
	}

	return 0
}

// execParseCommand executes the parse subcommand: it prints the syntax tree of
// a single file.
func execParseCommand(result *olive.ArgParseResult, logLevel int) int {
	path, _ := result.PrimaryArg()
	rep := report.NewConsoleReporter(os.Stdout, logLevel)

	absPath, err := filepath.Abs(path)
	if err != nil {
		rep.ReportFatal("error calculating absolute path: %s", err)
		return 1
	}

	text, err := os.ReadFile(absPath)
	if err != nil {
		rep.ReportStdError(path, err)
		return 1
	}

	src := report.NewSourceFile(absPath, string(text))
	file, ok := syntax.Parse(src.Text, rep.ForFile(src))

	pretty.Println(file)

	if !ok {
		return 1
	}

	return 0
}
