package depm

import (
	"errors"
	"fmt"
	"hastec/common"
	"hastec/report"
	"os"
	"path/filepath"

	"github.com/Masterminds/semver/v3"
	"github.com/pelletier/go-toml"
)

// Project is the configuration of the source files in a directory.
type Project struct {
	// The name of the project.
	Name string

	// The absolute path to the project directory.
	AbsPath string

	// The semantic version constraint on the compiler version.  This may be
	// empty if the project accepts any version.
	HasteVersion string

	// Whether arithmetic between ints and floats is allowed.
	AllowMixedArithmetic bool

	// Whether to warn about declarations that are never referenced.
	WarnUnused bool

	// The maximum length of a chain of declarations resolved on demand.
	MaxReferenceDepth int

	// The maximum nesting depth of expressions.
	MaxNestingDepth int
}

// tomlProject represents a Haste project as it is encoded in TOML.
type tomlProject struct {
	Name         string    `toml:"name"`
	HasteVersion string    `toml:"haste-version"`
	Check        tomlCheck `toml:"check"`
}

type tomlCheck struct {
	AllowMixedArithmetic bool `toml:"allow-mixed-arithmetic"`
	WarnUnused           bool `toml:"warn-unused"`
	MaxReferenceDepth    int  `toml:"max-reference-depth"`
	MaxNestingDepth      int  `toml:"max-nesting-depth"`
}

// DefaultProject returns the configuration used for a directory which has no
// project file.
func DefaultProject(abspath string) *Project {
	return &Project{
		Name:                 filepath.Base(abspath),
		AbsPath:              abspath,
		AllowMixedArithmetic: true,
		MaxReferenceDepth:    512,
		MaxNestingDepth:      256,
	}
}

// FindProject loads the project configuration for the directory abspath.  If
// the directory has no project file, the default configuration is returned.
func FindProject(abspath string, rep report.Reporter) (*Project, error) {
	if _, err := os.Stat(filepath.Join(abspath, common.HasteProjectFileName)); errors.Is(err, os.ErrNotExist) {
		return DefaultProject(abspath), nil
	}

	return LoadProject(abspath, rep)
}

// LoadProject loads and validates a project file.  `abspath` is the absolute
// path to the project directory.  Warnings about the project are submitted to
// rep.
func LoadProject(abspath string, rep report.Reporter) (*Project, error) {
	return LoadProjectFile(abspath, filepath.Join(abspath, common.HasteProjectFileName), rep)
}

// LoadProjectFile loads and validates the project file at fileAbsPath as the
// configuration of the project directory abspath.
func LoadProjectFile(abspath, fileAbsPath string, rep report.Reporter) (*Project, error) {
	buff, err := os.ReadFile(fileAbsPath)
	if err != nil {
		return nil, fmt.Errorf("unable to read project file at `%s`: %w", fileAbsPath, err)
	}

	tree, err := toml.LoadBytes(buff)
	if err != nil {
		return nil, fmt.Errorf("error parsing project file at `%s`: %w", fileAbsPath, err)
	}

	tomlProj := &tomlProject{}
	if err := tree.Unmarshal(tomlProj); err != nil {
		return nil, fmt.Errorf("error parsing project file at `%s`: %w", fileAbsPath, err)
	}

	// options missing from the file keep their default values
	proj := DefaultProject(abspath)
	proj.Name = tomlProj.Name
	proj.HasteVersion = tomlProj.HasteVersion
	proj.WarnUnused = tomlProj.Check.WarnUnused

	if tree.Has("check.allow-mixed-arithmetic") {
		proj.AllowMixedArithmetic = tomlProj.Check.AllowMixedArithmetic
	}

	if tree.Has("check.max-reference-depth") {
		proj.MaxReferenceDepth = tomlProj.Check.MaxReferenceDepth
	}

	if tree.Has("check.max-nesting-depth") {
		proj.MaxNestingDepth = tomlProj.Check.MaxNestingDepth
	}

	if err := validateProject(proj, rep); err != nil {
		return nil, fmt.Errorf("invalid project file at `%s`: %w", fileAbsPath, err)
	}

	return proj, nil
}

// validateProject checks that the project contents are valid.
func validateProject(proj *Project, rep report.Reporter) error {
	if proj.Name == "" {
		return errors.New("missing project name")
	}

	if proj.MaxReferenceDepth < 1 {
		return errors.New("max-reference-depth must be positive")
	}

	if proj.MaxNestingDepth < 1 {
		return errors.New("max-nesting-depth must be positive")
	}

	if proj.HasteVersion != "" {
		constraint, err := semver.NewConstraint(proj.HasteVersion)
		if err != nil {
			return fmt.Errorf("bad haste-version `%s`: %w", proj.HasteVersion, err)
		}

		if !constraint.Check(semver.MustParse(common.HasteVersion)) {
			rep.Report(report.NewWarning(
				report.VersionMismatch,
				report.Span{},
				"project `%s` requires haste %s but this is haste v%s",
				proj.Name,
				proj.HasteVersion,
				common.HasteVersion,
			))
		}
	}

	return nil
}
