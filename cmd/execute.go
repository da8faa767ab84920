package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"capuchin/common"
	"capuchin/proj"
	"capuchin/repl"
	"capuchin/report"
	"capuchin/syntax"

	"github.com/ComedicChimera/olive"
	"github.com/davecgh/go-spew/spew"
)

// Execute runs the main `capuchin` application
func Execute() {
	// set up the argument parser and all its extended commands and arguments
	cli := olive.NewCLI("capuchin", "capuchin is a tool for working with Capuchin source code", true)
	cli.AddSelectorArg("loglevel", "ll", "the log level", false, []string{"silent", "error", "warn", "verbose"})

	checkCmd := cli.AddSubcommand("check", "parse a source file and output errors", true)
	checkCmd.AddPrimaryArg("file-path", "the path to the source file to check", true)
	dumpArg := checkCmd.AddSelectorArg("dump", "d", "what to print for a well formed file", false, []string{"none", "tree", "raw"})
	dumpArg.SetDefaultValue("none")

	lexCmd := cli.AddSubcommand("lex", "print the token stream of a source file", true)
	lexCmd.AddPrimaryArg("file-path", "the path to the source file to lex", true)

	replCmd := cli.AddSubcommand("repl", "start the interactive shell", true)
	replCmd.AddSelectorArg("mode", "m", "the display mode to start in", false, []string{"tree", "tokens", "raw"})

	initCmd := cli.AddSubcommand("init", "initialize a project in the working directory", true)
	initCmd.AddPrimaryArg("project-name", "the name of the project to create", true)

	cli.AddSubcommand("version", "print the Capuchin version", false)

	// run the argument parser
	result, err := olive.ParseArgs(cli, os.Args)
	if err != nil {
		report.DisplayErrorMessage("CLI Usage Error", err)
		return
	}

	// the log level argument only overrides the project configuration when it
	// is actually given on the command line
	loglevel := ""
	if lv, ok := result.Arguments["loglevel"]; ok {
		loglevel = lv.(string)
	}

	// process the inputed command line
	subcmdName, subResult, _ := result.Subcommand()
	switch subcmdName {
	case "check":
		execCheckCommand(subResult, loglevel)
	case "lex":
		execLexCommand(subResult, loglevel)
	case "repl":
		execReplCommand(subResult, loglevel)
	case "init":
		execInitCommand(subResult)
	case "version":
		report.DisplayInfoMessage("Capuchin Version", common.CapuchinVersion)
	}
}

// rawDumper dumps syntax trees field by field rather than through their
// Stringer methods.
var rawDumper = spew.ConfigState{Indent: " ", DisableMethods: true}

// execCheckCommand executes the check subcommand and handles all its errors
func execCheckCommand(result *olive.ArgParseResult, loglevel string) {
	absPath, reprPath, src := readSourceFile(result)

	project := enclosingProject(filepath.Dir(absPath))
	initReporting(project, loglevel)

	p := syntax.NewParser(syntax.NewLexer(src))
	program := p.ParseProgram()

	if errs := p.Errors(); len(errs) > 0 {
		report.ReportParseErrors(reprPath, src, errs)
	}

	if !report.ShouldProceed() {
		os.Exit(1)
	}

	switch dumpKind(result) {
	case "tree":
		fmt.Println(program.String())
	case "raw":
		fmt.Print(rawDumper.Sdump(program))
	default:
		report.ReportInfo("Check", fmt.Sprintf("%s: %d statements, no errors", reprPath, len(program.Statements)))
	}
}

// execLexCommand executes the lex subcommand: it prints the token stream of a
// source file one token per line
func execLexCommand(result *olive.ArgParseResult, loglevel string) {
	absPath, _, src := readSourceFile(result)

	project := enclosingProject(filepath.Dir(absPath))
	initReporting(project, loglevel)

	l := syntax.NewLexer(src)
	for tok := l.NextToken(); tok.Kind != syntax.EOF; tok = l.NextToken() {
		fmt.Printf("%d:%d\t%-8s %q\n", tok.Line+1, tok.Col+1, syntax.KindName(tok.Kind), tok.Value)
	}
}

// execReplCommand starts the interactive shell
func execReplCommand(result *olive.ArgParseResult, loglevel string) {
	workDir, err := os.Getwd()
	if err != nil {
		report.ReportFatal("error reading working directory: %s", err.Error())
	}

	project := enclosingProject(workDir)
	initReporting(project, loglevel)

	// a mode given on the command line beats the project configuration
	if modeVal, ok := result.Arguments["mode"]; ok {
		project.ReplMode = modeVal.(string)
	}

	repl.New(project, os.Stdin, os.Stdout).Run()
}

// execInitCommand executes the init subcommand and handles all its errors
func execInitCommand(result *olive.ArgParseResult) {
	workDir, err := os.Getwd()
	if err != nil {
		report.ReportFatal("error reading working directory: %s", err.Error())
	}

	name, _ := result.PrimaryArg()
	if err := proj.Init(name, workDir); err != nil {
		report.ReportFatal("error initializing project: %s", err.Error())
	}

	report.DisplayInfoMessage("Project Init", fmt.Sprintf("created %s for project `%s`", common.ProjectFileName, name))
}

// -----------------------------------------------------------------------------

// readSourceFile resolves the primary argument of a subcommand into an
// absolute path and reads the source text it names.  It returns the absolute
// path, the path as the user wrote it for display purposes, and the source.
func readSourceFile(result *olive.ArgParseResult) (string, string, string) {
	reprPath, _ := result.PrimaryArg()

	absPath, err := filepath.Abs(reprPath)
	if err != nil {
		report.ReportFatal("error resolving path: %s", err.Error())
	}

	if filepath.Ext(absPath) != common.SrcFileExtension {
		report.ReportFatal("`%s` is not a Capuchin source file", reprPath)
	}

	src, err := os.ReadFile(absPath)
	if err != nil {
		report.ReportFatal("error reading source file: %s", err.Error())
	}

	return absPath, reprPath, string(src)
}

// enclosingProject loads the project enclosing the given directory, falling
// back to the default project when none is in reach.
func enclosingProject(dir string) *proj.Project {
	root, found := proj.Find(dir)
	if !found {
		return proj.DefaultProject()
	}

	project, err := proj.Load(root)
	if err != nil {
		report.ReportFatal("error loading project: %s", err.Error())
	}

	return project
}

// initReporting initializes the global reporter from the project
// configuration and any log level given on the command line.
func initReporting(project *proj.Project, cliLogLevel string) {
	level := project.LogLevel
	if cliLogLevel != "" {
		level = cliLogLevel
	}

	report.InitReporter(report.LogLevelFromString(level))
	report.SetMaxErrors(project.MaxErrors)
}

// dumpKind extracts the dump selector of the check subcommand.
func dumpKind(result *olive.ArgParseResult) string {
	if dump, ok := result.Arguments["dump"]; ok {
		return dump.(string)
	}

	return "none"
}
