// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package mdconvert

import (
	"fmt"
	"io"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/doctools/internal/command"
)

// PlanItem is what a conversion run would do with one file.
type PlanItem struct {
	Input   string              `yaml:"input"`
	Output  string              `yaml:"output"`
	Action  Status              `yaml:"action"`
	Command *command.Invocation `yaml:"command,omitempty"`
}

// Plan is a dry-run description of a conversion run.
type Plan struct {
	Input string     `yaml:"input"`
	Kind  Kind       `yaml:"kind"`
	Items []PlanItem `yaml:"items"`
}

// BuildPlan applies the skip rule to every resolved file without running
// the compiler.
func BuildPlan(c Compiler, res Resolution, opts Options) Plan {
	plan := Plan{Input: res.Input, Kind: res.Kind, Items: []PlanItem{}}
	for _, f := range res.Files {
		output := OutputPath(f, opts.OutputDir)
		item := PlanItem{Input: f, Output: output, Action: StatusSkipped}
		if !exists(output) || opts.Force {
			inv := c.Command(f, output)
			item.Action = StatusConverted
			item.Command = &inv
		}
		plan.Items = append(plan.Items, item)
	}
	return plan
}

// WritePlan encodes plan as YAML.
func WritePlan(w io.Writer, plan Plan) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(plan); err != nil {
		return fmt.Errorf("encoding plan: %w", err)
	}
	return enc.Close()
}
