package doctor

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/camber-bio/manifold"
)

const healthySchema = `
attributes:
  - id: tissue
    attribute: Tissue
    requiredDependencies: [preservation_method]
  - id: preservation_method
    attribute: Preservation Method
manifests:
  - name: Biospecimen
    attributes: [tissue]
`

const unhealthySchema = `
attributes:
  - id: tissue
    attribute: Tissue
    requiredDependencies: [missing_dep]
  - id: loop_a
    attribute: Loop A
    conditionalDependencies: [loop_b]
  - id: loop_b
    attribute: Loop B
    conditionalDependencies: [loop_a]
  - id: orphan
    attribute: Orphan
manifests:
  - name: Biospecimen
    attributes: [tissue, missing_root]
  - name: Looped
    attributes: [loop_a]
`

func writeSchema(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "schema.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func statusFor(report *Report, category, name string) (Status, bool) {
	for _, check := range report.Checks {
		if check.Category == category && check.Name == name {
			return check.Status, true
		}
	}
	return 0, false
}

func TestDoctor_HealthySchema(t *testing.T) {
	path := writeSchema(t, healthySchema)

	report, err := New(path, manifold.Overrides{"Tissue": "Specimen Tissue"}).Run()
	require.NoError(t, err)

	assert.False(t, report.HasErrors())
	assert.Zero(t, report.Warnings)

	for _, check := range report.Checks {
		assert.Equal(t, StatusPass, check.Status, "check %s/%s", check.Category, check.Name)
	}
}

func TestDoctor_MissingSchemaFile(t *testing.T) {
	report, err := New("/nonexistent/schema.yaml", nil).Run()
	require.NoError(t, err)

	assert.True(t, report.HasErrors())
	status, ok := statusFor(report, "Schema File", "exists")
	require.True(t, ok)
	assert.Equal(t, StatusFail, status)
}

func TestDoctor_UnparsableSchema(t *testing.T) {
	path := writeSchema(t, "attributes:\n  - attribute: no id here\n")

	report, err := New(path, nil).Run()
	require.NoError(t, err)

	assert.True(t, report.HasErrors())
	status, ok := statusFor(report, "Schema File", "parses")
	require.True(t, ok)
	assert.Equal(t, StatusFail, status)
}

func TestDoctor_UnhealthySchemaWarns(t *testing.T) {
	path := writeSchema(t, unhealthySchema)

	report, err := New(path, manifold.Overrides{"Stale Name": "Current Name"}).Run()
	require.NoError(t, err)

	// Warnings, not failures: the resolver tolerates all of these.
	assert.False(t, report.HasErrors())

	expectWarn := []struct{ category, name string }{
		{"References", "dangling"},
		{"Cycles", "acyclic"},
		{"Manifests", "roots"},
		{"Manifests", "coverage"},
		{"Overrides", "stale"},
	}
	for _, want := range expectWarn {
		status, ok := statusFor(report, want.category, want.name)
		require.True(t, ok, "missing check %s/%s", want.category, want.name)
		assert.Equal(t, StatusWarn, status, "check %s/%s", want.category, want.name)
	}
}

func TestReport_Print(t *testing.T) {
	report := &Report{}
	report.AddCheck(CheckResult{
		Category: "References",
		Name:     "dangling",
		Status:   StatusWarn,
		Message:  "1 dependency edge points at a missing attribute",
		Details:  "tissue -[required]-> missing_dep",
		FixHint:  "Add the missing attribute",
	})

	var buf bytes.Buffer
	report.Print(&buf, true)

	out := buf.String()
	assert.Contains(t, out, "References")
	assert.Contains(t, out, "missing_dep")
	assert.Contains(t, out, "Fix: Add the missing attribute")
	assert.Contains(t, out, "Summary: 0 passed, 1 warnings, 0 errors")
}
