package cmd

import (
	"fmt"
	"hastec/ast"
	"hastec/report"
	"hastec/syntax"
	"hastec/walk"
	"os"
)

// Unit is a single source file checked independently of all other files.
type Unit struct {
	Src  *report.SourceFile
	File *ast.File

	// Program is the analyzed program.  It is nil if analysis did not run to
	// completion.
	Program *walk.Program

	// Diagnostics are the diagnostics reported about this unit.  They are only
	// kept if the compiler was asked to keep them.
	Diagnostics []*report.Diagnostic

	// Whether the unit was checked without any errors.
	Ok bool
}

// CheckFile loads, parses, and analyzes the source file at the given absolute
// path.  The returned error is only non-nil if the file could not be read:
// problems in the source text are reported as diagnostics.
func (c *Compiler) CheckFile(absPath string) (*Unit, error) {
	text, err := os.ReadFile(absPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read source file: %w", err)
	}

	unit := &Unit{Src: report.NewSourceFile(absPath, string(text))}
	c.checkUnit(unit)
	return unit, nil
}

// checkUnit runs the front end over a unit.  An internal compiler error only
// aborts the unit it occurs in.
func (c *Compiler) checkUnit(unit *Unit) {
	defer c.rep.CatchICE()

	var collector *report.Collector
	var rep report.Reporter = c.rep.ForFile(unit.Src)
	if c.collect {
		collector = &report.Collector{}
		rep = report.Tee{rep, collector}
		defer func() {
			unit.Diagnostics = collector.Diagnostics()
		}()
	}

	proj := c.Project()

	// Parse the file.  Declarations which fail to parse are dropped, but the
	// rest of the file is still analyzed so the user sees as many errors as
	// possible in one run.
	toks, lexOk := syntax.Tokenize(unit.Src.Text, rep)
	p := syntax.NewParser(toks, rep)
	p.SetMaxDepth(proj.MaxNestingDepth)
	file, parseOk := p.ParseFile()
	unit.File = file

	// Analyze the file.
	prog, walkOk := walk.Check(file, rep, walk.OptionsFromProject(proj))
	unit.Program = prog
	unit.Ok = lexOk && parseOk && walkOk
}
