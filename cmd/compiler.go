package cmd

import (
	"io/ioutil"
	"os"
	"path/filepath"

	"minipyc/report"
	"minipyc/sem"
	"minipyc/syntax"
	"minipyc/tac"
	"minipyc/util"
)

// Compiler is the toplevel driver for a compilation: it runs a single source
// file through the full pipeline and produces the requested listings.
type Compiler struct {
	// rootPath is the path to the source file being compiled.
	rootPath string

	// reprPath is the representative path of the source file: the path as it
	// is shown to the user in error messages.
	reprPath string

	// src is the full text of the source file.
	src string

	// emissions are the listing names to produce, in emission order.
	emissions []string

	// outPath is the directory listings are written to.  If it is empty,
	// listings go to standard output.
	outPath string
}

// NewCompiler creates a new compiler for the given source file.  A path of
// `-` compiles standard input.
func NewCompiler(rootPath string, emissions []string, outPath string) *Compiler {
	reprPath := filepath.Base(rootPath)
	if rootPath == "-" {
		reprPath = "<stdin>"
	}

	return &Compiler{
		rootPath:  rootPath,
		reprPath:  reprPath,
		emissions: emissions,
		outPath:   outPath,
	}
}

// Compile runs the full pipeline: tokenize, parse, resolve, lower.  The
// pipeline stops at the first stage that errors, and no later listings are
// produced.  It returns whether compilation succeeded.
func (c *Compiler) Compile() bool {
	var buff []byte
	var err error
	if c.rootPath == "-" {
		buff, err = ioutil.ReadAll(os.Stdin)
	} else {
		buff, err = ioutil.ReadFile(c.rootPath)
	}
	if err != nil {
		report.ReportFatal("unable to read source at `%s`: %s", c.reprPath, err.Error())
		return false
	}
	c.src = string(buff)

	tokens, err := syntax.NewLexer(c.src).Tokenize()
	if err != nil {
		c.reportError(err)
		return false
	}

	if c.shouldEmit("tokens") {
		c.writeListing("tokens", tokenListing(tokens))
	}

	prog, err := syntax.NewParser(tokens).Parse()
	if err != nil {
		c.reportError(err)
		return false
	}

	if c.shouldEmit("ast") {
		c.writeListing("ast", prog.Repr())
	}

	table, err := sem.NewWalker().Resolve(prog)
	if err != nil {
		c.reportError(err)
		return false
	}

	if c.shouldEmit("symtable") {
		c.writeListing("symtable", table.Repr())
	}

	bundle := tac.NewLowerer().Lower(prog)

	if c.shouldEmit("tac") {
		c.writeListing("tac", bundle.Repr())
	}

	return true
}

// -----------------------------------------------------------------------------

func (c *Compiler) shouldEmit(name string) bool {
	return util.Contains(c.emissions, name)
}

func (c *Compiler) reportError(err error) {
	if cerr, ok := err.(*report.CompileError); ok {
		report.ReportCompileError(c.reprPath, c.src, cerr)
	} else {
		report.ReportStdError(c.reprPath, err)
	}
}
