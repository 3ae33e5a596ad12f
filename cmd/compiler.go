package cmd

import (
	"context"
	"fmt"
	"hastec/common"
	"hastec/depm"
	"hastec/report"
	"os"
	"path/filepath"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"
)

// Compiler represents the global state of the compiler.
type Compiler struct {
	// rootAbsPath is the absolute path to the file or directory being checked.
	rootAbsPath string

	// rootIsDir indicates whether the root path is a directory.
	rootIsDir bool

	// project is the configuration of the files being checked.
	project *depm.Project

	// rep is the reporter shared by every unit.
	rep *report.ConsoleReporter

	// collect indicates whether units should keep their diagnostics.
	collect bool
}

// NewCompiler creates a new compiler checking the file or directory at
// rootRelPath.
func NewCompiler(rootRelPath string, rep *report.ConsoleReporter) (*Compiler, error) {
	rootAbsPath, err := filepath.Abs(rootRelPath)
	if err != nil {
		return nil, fmt.Errorf("error calculating absolute path: %w", err)
	}

	finfo, err := os.Stat(rootAbsPath)
	if err != nil {
		return nil, fmt.Errorf("unable to check `%s`: %w", rootRelPath, err)
	}

	return &Compiler{
		rootAbsPath: rootAbsPath,
		rootIsDir:   finfo.IsDir(),
		rep:         rep,
	}, nil
}

// projectDir returns the directory searched for a project file.
func (c *Compiler) projectDir() string {
	if c.rootIsDir {
		return c.rootAbsPath
	}

	return filepath.Dir(c.rootAbsPath)
}

// LoadProject loads the project configuration.  If configPath is empty, the
// project file is searched for next to the checked files.
func (c *Compiler) LoadProject(configPath string) error {
	var proj *depm.Project
	var err error
	if configPath == "" {
		proj, err = depm.FindProject(c.projectDir(), c.rep.ForFile(nil))
	} else {
		var configAbsPath string
		if configAbsPath, err = filepath.Abs(configPath); err == nil {
			proj, err = depm.LoadProjectFile(c.projectDir(), configAbsPath, c.rep.ForFile(nil))
		}
	}

	if err != nil {
		return err
	}

	c.project = proj
	return nil
}

// Project returns the loaded project configuration.
func (c *Compiler) Project() *depm.Project {
	if c.project == nil {
		c.project = depm.DefaultProject(c.projectDir())
	}

	return c.project
}

// KeepDiagnostics makes every unit keep the diagnostics reported about it.
func (c *Compiler) KeepDiagnostics() {
	c.collect = true
}

// SourcePaths returns the absolute paths of the source files to check in
// lexical order.
func (c *Compiler) SourcePaths() ([]string, error) {
	if !c.rootIsDir {
		return []string{c.rootAbsPath}, nil
	}

	entries, err := os.ReadDir(c.rootAbsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory `%s`: %w", c.rootAbsPath, err)
	}

	var paths []string
	for _, entry := range entries {
		// We only want to try to load source files.
		if !entry.IsDir() && filepath.Ext(entry.Name()) == common.HasteFileExt {
			paths = append(paths, filepath.Join(c.rootAbsPath, entry.Name()))
		}
	}

	sort.Strings(paths)
	return paths, nil
}

// CheckAll checks every source file concurrently.  Each file is an
// independent unit.  The units are returned in the order of SourcePaths.
// The returned error is only non-nil if a file could not be loaded.
func (c *Compiler) CheckAll(ctx context.Context) ([]*Unit, error) {
	paths, err := c.SourcePaths()
	if err != nil {
		return nil, err
	}

	if len(paths) == 0 {
		return nil, fmt.Errorf("no %s files found in `%s`", common.HasteFileExt, c.rootAbsPath)
	}

	c.rep.ReportInfo("Checking", "%d file(s) in %s", len(paths), c.Project().Name)

	units := make([]*Unit, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			unit, err := c.CheckFile(path)
			if err != nil {
				return err
			}

			units[i] = unit
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return units, nil
}
