package mcp

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/sprout/internal/scaffold"
)

// StepOutput is the outcome of one pipeline step.
type StepOutput struct {
	Name    string `json:"name"              jsonschema:"stable step name, e.g. license or repository"`
	Status  string `json:"status"            jsonschema:"ok, skipped, failed or dry_run"`
	Message string `json:"message,omitempty" jsonschema:"what the step did or why it failed"`
}

// ProjectOutput describes where the project lives.
type ProjectOutput struct {
	Name        string `json:"name"         jsonschema:"project name"`
	RootPath    string `json:"root_path"    jsonschema:"absolute project directory"`
	PackagePath string `json:"package_path" jsonschema:"absolute package directory inside the project"`
}

// --- Scaffold tool ---

// ScaffoldInput is the input for the scaffold_project tool.
type ScaffoldInput struct {
	Name   string `json:"name"              jsonschema:"project name, used for both the project and package directories"`
	Dir    string `json:"dir,omitempty"     jsonschema:"directory to create the project in (default: server working directory)"`
	DryRun bool   `json:"dry_run,omitempty" jsonschema:"report the planned steps without creating anything"`
}

// ScaffoldOutput is the output for the scaffold_project tool.
type ScaffoldOutput struct {
	Status  string        `json:"status"  jsonschema:"ok, partial when some steps failed, or dry_run"`
	Project ProjectOutput `json:"project" jsonschema:"project location"`
	Steps   []StepOutput  `json:"steps"   jsonschema:"per-step results in pipeline order"`
}

func handleScaffold(factory Factory) mcp.ToolHandlerFor[ScaffoldInput, ScaffoldOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ScaffoldInput) (*mcp.CallToolResult, ScaffoldOutput, error) {
		dir, err := resolveDir(input.Dir)
		if err != nil {
			return nil, ScaffoldOutput{}, err
		}
		s := factory(dir)

		if input.DryRun {
			return planOutput(s, dir, input.Name)
		}

		result, err := s.Scaffold(ctx, input.Name)
		if err != nil {
			return nil, ScaffoldOutput{}, fmt.Errorf("scaffolding %s: %w", input.Name, err)
		}

		status := "ok"
		if len(result.Failed()) > 0 {
			status = "partial"
		}
		return nil, ScaffoldOutput{
			Status:  status,
			Project: toProjectOutput(result.Project),
			Steps:   toStepOutputs(result.Steps),
		}, nil
	}
}

// --- Plan tool ---

// PlanInput is the input for the plan_project tool.
type PlanInput struct {
	Name string `json:"name"          jsonschema:"project name"`
	Dir  string `json:"dir,omitempty" jsonschema:"directory the project would be created in"`
}

func handlePlan(factory Factory) mcp.ToolHandlerFor[PlanInput, ScaffoldOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input PlanInput) (*mcp.CallToolResult, ScaffoldOutput, error) {
		dir, err := resolveDir(input.Dir)
		if err != nil {
			return nil, ScaffoldOutput{}, err
		}
		return planOutput(factory(dir), dir, input.Name)
	}
}

func planOutput(s *scaffold.Scaffolder, dir, name string) (*mcp.CallToolResult, ScaffoldOutput, error) {
	steps, err := s.Plan(name)
	if err != nil {
		return nil, ScaffoldOutput{}, err
	}
	out := ScaffoldOutput{Status: "dry_run", Steps: toStepOutputs(steps)}
	if dir != "" {
		out.Project = toProjectOutput(scaffold.NewProject(dir, name, nil))
	} else {
		out.Project = ProjectOutput{Name: name}
	}
	return nil, out, nil
}

// resolveDir makes a caller-supplied directory absolute. Empty stays empty.
func resolveDir(dir string) (string, error) {
	if dir == "" {
		return "", nil
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving dir %q: %w", dir, err)
	}
	return abs, nil
}

func toProjectOutput(p scaffold.Project) ProjectOutput {
	return ProjectOutput{Name: p.Name, RootPath: p.RootPath, PackagePath: p.PackagePath}
}

func toStepOutputs(steps []scaffold.StepResult) []StepOutput {
	result := make([]StepOutput, 0, len(steps))
	for _, s := range steps {
		result = append(result, StepOutput{Name: s.Name, Status: s.Status, Message: s.Message})
	}
	return result
}
