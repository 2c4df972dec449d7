package scenario

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/formkit/internal/showcase"
	"github.com/dmitrymomot/formkit/pkg/logger"
)

// Scenario is a scripted session against one showcase form.
type Scenario struct {
	Name  string `yaml:"name"`
	Form  string `yaml:"form"`
	Steps []Step `yaml:"steps"`
}

// Step performs exactly one action and then checks the optional expectations.
type Step struct {
	Set    string  `yaml:"set,omitempty"`
	Value  *string `yaml:"value,omitempty"`
	Submit bool    `yaml:"submit,omitempty"`
	Wait   bool    `yaml:"wait,omitempty"`

	// ExpectErrors maps a field to its expected error text; "" expects no error.
	ExpectErrors map[string]string `yaml:"expect_errors,omitempty"`
	// ExpectAlert checks whether the success alert is shown.
	ExpectAlert *bool `yaml:"expect_alert,omitempty"`
}

func (s Step) action() string {
	switch {
	case s.Set != "":
		return "set " + s.Set
	case s.Submit:
		return "submit"
	case s.Wait:
		return "wait"
	default:
		return "check"
	}
}

func (s Step) validate() error {
	actions := 0
	if s.Set != "" {
		actions++
		if s.Value == nil {
			return fmt.Errorf("%w: set %q without value", ErrInvalidStep, s.Set)
		}
	}
	if s.Submit {
		actions++
	}
	if s.Wait {
		actions++
	}
	if actions > 1 {
		return fmt.Errorf("%w: set, submit and wait are exclusive", ErrInvalidStep)
	}
	if actions == 0 && s.ExpectErrors == nil && s.ExpectAlert == nil {
		return fmt.Errorf("%w: step has no action and no expectation", ErrInvalidStep)
	}
	return nil
}

// Parse decodes a scenario document.
func Parse(r io.Reader) (*Scenario, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var sc Scenario
	if err := dec.Decode(&sc); err != nil {
		return nil, errors.Join(ErrInvalidScenario, err)
	}
	if sc.Form == "" {
		return nil, fmt.Errorf("%w: form is required", ErrInvalidScenario)
	}
	for i, step := range sc.Steps {
		if err := step.validate(); err != nil {
			return nil, fmt.Errorf("%w: step %d: %w", ErrInvalidScenario, i+1, err)
		}
	}
	return &sc, nil
}

// Load reads and parses a scenario file.
func Load(path string) (*Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

// StepResult records what happened at one step.
type StepResult struct {
	Index      int
	Action     string
	Errors     map[string]string
	Alert      bool
	Mismatches []string
}

// Report is the outcome of a scenario run.
type Report struct {
	Scenario string
	Form     string
	Steps    []StepResult
}

// Failed reports whether any expectation did not hold.
func (r *Report) Failed() bool {
	for _, s := range r.Steps {
		if len(s.Mismatches) > 0 {
			return true
		}
	}
	return false
}

// Write renders the report as plain text.
func (r *Report) Write(w io.Writer) error {
	var b strings.Builder
	fmt.Fprintf(&b, "scenario %q on form %s\n", r.Scenario, r.Form)
	for _, s := range r.Steps {
		fmt.Fprintf(&b, "%3d. %s\n", s.Index, s.Action)
		for _, field := range sortedKeys(s.Errors) {
			if msg := s.Errors[field]; msg != "" {
				fmt.Fprintf(&b, "     %s: %s\n", field, msg)
			}
		}
		if s.Alert {
			fmt.Fprintf(&b, "     alert: %s %s\n", showcase.FormValidatedAlert.Title, showcase.FormValidatedAlert.Message)
		}
		for _, m := range s.Mismatches {
			fmt.Fprintf(&b, "     MISMATCH %s\n", m)
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// Run executes sc against f. The returned error joins every expectation
// mismatch; action failures abort the run.
func Run(ctx context.Context, f showcase.Form, sc *Scenario, log *slog.Logger) (*Report, error) {
	if log == nil {
		log = logger.Discard()
	}
	log = log.With(logger.Component("scenario"), logger.Form(f.Name()))

	report := &Report{Scenario: sc.Name, Form: f.Name()}
	var mismatches []error

	for i, step := range sc.Steps {
		index := i + 1
		if err := apply(ctx, f, step); err != nil {
			return report, fmt.Errorf("step %d (%s): %w", index, step.action(), err)
		}

		result := StepResult{
			Index:  index,
			Action: step.action(),
			Errors: f.Errors(),
			Alert:  f.Alert() != nil,
		}
		result.Mismatches = check(step, result)
		for _, m := range result.Mismatches {
			mismatches = append(mismatches, fmt.Errorf("%w: step %d: %s", ErrExpectation, index, m))
		}

		log.DebugContext(ctx, "step done", logger.Step(index), slog.String("action", result.Action),
			slog.Int("mismatches", len(result.Mismatches)))
		report.Steps = append(report.Steps, result)
	}

	return report, errors.Join(mismatches...)
}

func apply(ctx context.Context, f showcase.Form, step Step) error {
	switch {
	case step.Set != "":
		return f.Set(ctx, step.Set, *step.Value)
	case step.Submit:
		return f.Submit(ctx)
	case step.Wait:
		f.Wait()
	}
	return nil
}

func check(step Step, result StepResult) []string {
	var out []string
	for _, field := range sortedKeys(step.ExpectErrors) {
		want := step.ExpectErrors[field]
		got, ok := result.Errors[field]
		if !ok {
			out = append(out, fmt.Sprintf("%s: field is not validated", field))
			continue
		}
		if got != want {
			out = append(out, fmt.Sprintf("%s: want %q, got %q", field, want, got))
		}
	}
	if step.ExpectAlert != nil && *step.ExpectAlert != result.Alert {
		out = append(out, fmt.Sprintf("alert: want %t, got %t", *step.ExpectAlert, result.Alert))
	}
	return out
}

// sortedKeys returns the keys of m in ascending order.
func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
