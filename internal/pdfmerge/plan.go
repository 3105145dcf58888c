// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pdfmerge

import (
	"fmt"
	"io"

	"github.com/spf13/afero"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/doctools/internal/command"
)

// Plan actions.
const (
	ActionMerge      = "merge"
	ActionSkipSingle = "skip-single"
	ActionSkipExists = "skip-exists"
)

// PlanItem is what a merge run would do with one group.
type PlanItem struct {
	Dir     string              `yaml:"dir"`
	Files   []string            `yaml:"files"`
	Output  string              `yaml:"output"`
	Action  string              `yaml:"action"`
	Command *command.Invocation `yaml:"command,omitempty"`
}

// Plan is a dry-run description of a merge run.
type Plan struct {
	Root    string     `yaml:"root"`
	Backend string     `yaml:"backend"`
	Groups  []PlanItem `yaml:"groups"`
}

// BuildPlan applies the merge policy to groups without running anything.
func BuildPlan(b Backend, fs afero.Fs, root string, groups []Group) Plan {
	plan := Plan{Root: root, Backend: string(b.Name()), Groups: []PlanItem{}}
	for _, g := range groups {
		out := OutputPath(g.Dir)
		item := PlanItem{Dir: g.Dir, Files: g.Files, Output: out}
		switch {
		case len(g.Files) < 2:
			item.Action = ActionSkipSingle
		case outputExists(fs, out):
			item.Action = ActionSkipExists
		default:
			inv := b.Command(g.Files, out)
			item.Action = ActionMerge
			item.Command = &inv
		}
		plan.Groups = append(plan.Groups, item)
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
