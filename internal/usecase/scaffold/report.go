// Where: internal/usecase/scaffold/report.go
// What: Per-step outcomes collected during a scaffold run.
// Why: Auxiliary tool results are reported, never dropped, even when they do
// not fail the run.
package scaffold

import (
	"time"

	domain "github.com/poruru-code/create-ethora-app/internal/domain/scaffold"
)

// StepName identifies a pipeline step.
type StepName string

const (
	StepClone        StepName = "clone"
	StepRename       StepName = "rename"
	StepInstall      StepName = "install"
	StepBackendSetup StepName = "backend-setup"
)

// StepOutcome records one external tool invocation.
type StepOutcome struct {
	Step     StepName
	Tool     string
	Args     []string
	Dir      string
	ExitCode int
	Output   []byte
	Err      error
	// Advisory outcomes are reported but do not fail the run unless strict.
	Advisory bool
	Skipped  bool
	Elapsed  time.Duration
}

// Failed reports whether the tool did not complete successfully.
func (o StepOutcome) Failed() bool {
	return o.Err != nil
}

// Report is the result of Workflow.Run.
type Report struct {
	Request   domain.Request
	Steps     []StepOutcome
	Succeeded bool
}

func (r *Report) add(outcomes ...StepOutcome) {
	r.Steps = append(r.Steps, outcomes...)
}

// Warnings returns advisory outcomes that failed or were skipped.
func (r Report) Warnings() []StepOutcome {
	var out []StepOutcome
	for _, o := range r.Steps {
		if o.Advisory && (o.Failed() || o.Skipped) {
			out = append(out, o)
		}
	}
	return out
}

// Launched returns the outcomes of step that reached the process runner.
func (r Report) Launched(step StepName) []StepOutcome {
	var out []StepOutcome
	for _, o := range r.Steps {
		if o.Step == step && !o.Skipped {
			out = append(out, o)
		}
	}
	return out
}
