package cmd

import (
	"os"
	"path/filepath"

	"github.com/ComedicChimera/olive"

	"minipyc/common"
	"minipyc/proj"
	"minipyc/report"
)

// defaultEmissions are the listings produced when neither the command line
// nor a project file requests any.
var defaultEmissions = []string{"ast", "tac"}

// Execute is the main entry point for the `minipyc` CLI utility.
func Execute() {
	// set up the argument parser and all its extended commands and arguments
	cli := olive.NewCLI("minipyc", "minipyc is a compiler for a small subset of Python", true)
	logLvlArg := cli.AddSelectorArg("loglevel", "ll", "the compiler log level", false, []string{"silent", "error", "warn", "verbose"})
	logLvlArg.SetDefaultValue("verbose")

	buildCmd := cli.AddSubcommand("build", "compile a source file", true)
	buildCmd.AddPrimaryArg("file-path", "the path to the source file to compile", true)
	buildCmd.AddStringArg("outpath", "o", "the directory listings are written to", false)
	buildCmd.AddFlag("tokens", "t", "emit the token listing")
	buildCmd.AddFlag("ast", "a", "emit the syntax tree listing")
	buildCmd.AddFlag("symtable", "s", "emit the symbol table listing")
	buildCmd.AddFlag("tac", "c", "emit the three-address code listing")

	cli.AddSubcommand("version", "print the minipyc version", false)

	// run the argument parser
	result, err := olive.ParseArgs(cli, os.Args)
	if err != nil {
		report.ReportFatal(err.Error())
	}

	// process the inputed command line
	subcmdName, subResult, _ := result.Subcommand()
	switch subcmdName {
	case "build":
		execBuildCommand(subResult, result.Arguments["loglevel"].(string))
	case "version":
		report.DisplayInfoMessage("minipyc Version", common.Version)
	}
}

// execBuildCommand executes the build subcommand and handles all errors.
func execBuildCommand(result *olive.ArgParseResult, loglevel string) {
	// initialize the reporter
	report.InitReporter(report.LogLevelFromString(loglevel))

	// get the primary argument: the source file path
	filePath, _ := result.PrimaryArg()

	emissions, outPath := buildConfig(result, filepath.Dir(filePath))

	// create the compiler and run the pipeline
	c := NewCompiler(filePath, emissions, outPath)
	c.Compile()

	if report.AnyErrors() {
		os.Exit(1)
	}
}

// buildConfig determines the emissions and output path of a build.  Command
// line flags take precedence; a project file in the source directory supplies
// the rest; the built-in defaults cover whatever remains.
func buildConfig(result *olive.ArgParseResult, srcDir string) ([]string, string) {
	var emissions []string
	for _, name := range proj.EmitNames {
		if result.HasFlag(name) {
			emissions = append(emissions, name)
		}
	}

	outPath := ""
	if v, ok := result.Arguments["outpath"]; ok {
		outPath = v.(string)
	}

	if proj.HasProjectFile(srcDir) {
		p, ok := proj.LoadProject(srcDir)
		if !ok {
			os.Exit(1)
		}

		if len(emissions) == 0 {
			emissions = p.Emit
		}

		if outPath == "" {
			outPath = p.OutPath
		}
	}

	if len(emissions) == 0 {
		emissions = defaultEmissions
	}

	return emissions, outPath
}
