package cmd

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// emittedUnit is the YAML representation of a checked unit.
type emittedUnit struct {
	Path        string              `yaml:"path"`
	Ok          bool                `yaml:"ok"`
	Globals     []emittedGlobal     `yaml:"globals"`
	Diagnostics []emittedDiagnostic `yaml:"diagnostics"`
}

type emittedGlobal struct {
	Name  string `yaml:"name"`
	Kind  string `yaml:"kind"`
	Type  string `yaml:"type"`
	Value string `yaml:"value"`
}

// emittedDiagnostic is the YAML representation of a diagnostic.  Line and Col
// are the one-indexed position of the start of its span.
type emittedDiagnostic struct {
	Kind    string `yaml:"kind"`
	Code    string `yaml:"code,omitempty"`
	Message string `yaml:"message"`
	Start   int    `yaml:"start"`
	End     int    `yaml:"end"`
	Line    int    `yaml:"line"`
	Col     int    `yaml:"col"`
}

// EmitYAML writes one YAML document for each unit to out.  Units must have
// been checked by a compiler that keeps diagnostics.
func EmitYAML(out io.Writer, units []*Unit) error {
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)

	for _, unit := range units {
		if err := enc.Encode(toEmittedUnit(unit)); err != nil {
			return fmt.Errorf("failed to emit %s: %w", unit.Src.ReprPath, err)
		}
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to emit: %w", err)
	}

	return nil
}

func toEmittedUnit(unit *Unit) emittedUnit {
	eu := emittedUnit{
		Path:        unit.Src.ReprPath,
		Ok:          unit.Ok,
		Globals:     []emittedGlobal{},
		Diagnostics: []emittedDiagnostic{},
	}

	if unit.Program != nil {
		for _, g := range unit.Program.Globals {
			kind := "var"
			if g.Constant {
				kind = "const"
			}

			eu.Globals = append(eu.Globals, emittedGlobal{
				Name:  g.Name,
				Kind:  kind,
				Type:  g.Type.String(),
				Value: g.Value.String(),
			})
		}
	}

	for _, diag := range unit.Diagnostics {
		line, col := unit.Src.Position(diag.Span.Start)
		eu.Diagnostics = append(eu.Diagnostics, emittedDiagnostic{
			Kind:    diag.Tag(),
			Code:    string(diag.Code),
			Message: diag.Message,
			Start:   diag.Span.Start,
			End:     diag.Span.End,
			Line:    line + 1,
			Col:     col + 1,
		})
	}

	return eu
}
