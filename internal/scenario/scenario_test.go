package scenario_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/internal/scenario"
	"github.com/dmitrymomot/formkit/internal/showcase"
)

func runFile(t *testing.T, path string) (*scenario.Report, error) {
	t.Helper()

	sc, err := scenario.Load(path)
	require.NoError(t, err)

	f, err := showcase.New(sc.Form, showcase.Options{})
	require.NoError(t, err)

	return scenario.Run(context.Background(), f, sc, nil)
}

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("valid document", func(t *testing.T) {
		t.Parallel()
		sc, err := scenario.Load("testdata/user_profile.yaml")
		require.NoError(t, err)

		assert.Equal(t, "user profile happy path", sc.Name)
		assert.Equal(t, showcase.UserProfileName, sc.Form)
		require.Len(t, sc.Steps, 6)
		assert.True(t, sc.Steps[0].Submit)
		assert.Equal(t, "", sc.Steps[0].ExpectErrors["age"])
		assert.Equal(t, "username", sc.Steps[1].Set)
		require.NotNil(t, sc.Steps[1].Value)
		assert.Equal(t, "TestUser", *sc.Steps[1].Value)
	})

	t.Run("set without value", func(t *testing.T) {
		t.Parallel()
		_, err := scenario.Load("testdata/invalid.yaml")
		require.Error(t, err)
		assert.ErrorIs(t, err, scenario.ErrInvalidScenario)
		assert.ErrorIs(t, err, scenario.ErrInvalidStep)
	})

	t.Run("missing form", func(t *testing.T) {
		t.Parallel()
		_, err := scenario.Parse(strings.NewReader("steps: []\n"))
		assert.ErrorIs(t, err, scenario.ErrInvalidScenario)
	})

	t.Run("unknown key", func(t *testing.T) {
		t.Parallel()
		_, err := scenario.Parse(strings.NewReader("form: registration\nsteps:\n  - tap: true\n"))
		assert.ErrorIs(t, err, scenario.ErrInvalidScenario)
	})

	t.Run("exclusive actions", func(t *testing.T) {
		t.Parallel()
		_, err := scenario.Parse(strings.NewReader("form: registration\nsteps:\n  - submit: true\n    wait: true\n"))
		assert.ErrorIs(t, err, scenario.ErrInvalidStep)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		_, err := scenario.Load("testdata/nope.yaml")
		assert.Error(t, err)
	})
}

func TestRun(t *testing.T) {
	t.Parallel()

	t.Run("all expectations hold", func(t *testing.T) {
		t.Parallel()
		report, err := runFile(t, "testdata/user_profile.yaml")
		require.NoError(t, err)

		assert.False(t, report.Failed())
		require.Len(t, report.Steps, 6)
		assert.Equal(t, "submit", report.Steps[0].Action)
		assert.Equal(t, "set username", report.Steps[1].Action)
		assert.True(t, report.Steps[5].Alert)
	})

	t.Run("mismatches are joined", func(t *testing.T) {
		t.Parallel()
		report, err := runFile(t, "testdata/mismatch.yaml")
		require.Error(t, err)
		assert.ErrorIs(t, err, scenario.ErrExpectation)
		assert.True(t, report.Failed())

		require.Len(t, report.Steps, 1)
		assert.Len(t, report.Steps[0].Mismatches, 2)
		assert.Contains(t, err.Error(), `username: want "", got "Username should not be empty"`)
		assert.Contains(t, err.Error(), "alert: want true, got false")
	})

	t.Run("unvalidated field", func(t *testing.T) {
		t.Parallel()
		sc, err := scenario.Parse(strings.NewReader(
			"form: registration\nsteps:\n  - submit: true\n    expect_errors:\n      userDescription: \"\"\n"))
		require.NoError(t, err)

		f, err := showcase.New(sc.Form, showcase.Options{})
		require.NoError(t, err)

		_, err = scenario.Run(context.Background(), f, sc, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "userDescription: field is not validated")
	})

	t.Run("action failure aborts", func(t *testing.T) {
		t.Parallel()
		sc, err := scenario.Parse(strings.NewReader(
			"form: registration\nsteps:\n  - set: age\n    value: old\n  - submit: true\n"))
		require.NoError(t, err)

		f, err := showcase.New(sc.Form, showcase.Options{})
		require.NoError(t, err)

		report, err := scenario.Run(context.Background(), f, sc, nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, showcase.ErrInvalidInput)
		assert.Empty(t, report.Steps)
	})
}

func TestReportWrite(t *testing.T) {
	t.Parallel()

	report, err := runFile(t, "testdata/mismatch.yaml")
	require.Error(t, err)

	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf))

	out := buf.String()
	assert.Contains(t, out, `scenario "wrong expectations" on form registration`)
	assert.Contains(t, out, "  1. submit")
	assert.Contains(t, out, "username: Username should not be empty")
	assert.Contains(t, out, "MISMATCH alert: want true, got false")
}
