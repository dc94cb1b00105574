// Package doctor provides health checks for manifold schema documents.
//
// The doctor command validates that a schema is in good shape for
// closure resolution: the document parses, dependency edges resolve,
// the dependency graph is acyclic, manifests reach their attributes,
// and the display-name override table matches the schema.
//
// Example usage:
//
//	d := doctor.New("schemas/schema.yaml", manifold.DefaultOverrides())
//	report, err := d.Run()
//	if err != nil {
//		log.Fatal(err)
//	}
//	report.Print(os.Stdout, true) // verbose=true
package doctor

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/camber-bio/manifold"
	"github.com/camber-bio/manifold/pkg/loader"
)

// Status represents the result of a health check.
type Status int

const (
	// StatusPass indicates the check passed.
	StatusPass Status = iota
	// StatusWarn indicates a non-critical issue.
	StatusWarn
	// StatusFail indicates a critical issue that will cause failures.
	StatusFail
)

func (s Status) String() string {
	switch s {
	case StatusPass:
		return "pass"
	case StatusWarn:
		return "warn"
	case StatusFail:
		return "fail"
	default:
		return "unknown"
	}
}

// Symbol returns a status indicator symbol for terminal output.
func (s Status) Symbol() string {
	switch s {
	case StatusPass:
		return "✓"
	case StatusWarn:
		return "⚠"
	case StatusFail:
		return "✗"
	default:
		return "?"
	}
}

// CheckResult represents the outcome of a single health check.
type CheckResult struct {
	// Category groups related checks (e.g., "Schema File", "References").
	Category string

	// Name is a short identifier for the check.
	Name string

	// Status is the check outcome.
	Status Status

	// Message is a human-readable description of the result.
	Message string

	// Details provides additional information for verbose output.
	Details string

	// FixHint suggests how to resolve issues.
	FixHint string
}

// Report contains all health check results.
type Report struct {
	Checks []CheckResult

	// Summary counts.
	Passed   int
	Warnings int
	Errors   int
}

// AddCheck adds a check result and updates summary counts.
func (r *Report) AddCheck(check CheckResult) {
	r.Checks = append(r.Checks, check)
	switch check.Status {
	case StatusPass:
		r.Passed++
	case StatusWarn:
		r.Warnings++
	case StatusFail:
		r.Errors++
	}
}

// Print writes the report to the given writer.
func (r *Report) Print(w io.Writer, verbose bool) {
	// Group checks by category
	categories := make(map[string][]CheckResult)
	var categoryOrder []string
	for _, check := range r.Checks {
		if _, exists := categories[check.Category]; !exists {
			categoryOrder = append(categoryOrder, check.Category)
		}
		categories[check.Category] = append(categories[check.Category], check)
	}

	// Print each category
	for _, cat := range categoryOrder {
		_, _ = fmt.Fprintf(w, "\n%s\n", cat)
		for _, check := range categories[cat] {
			_, _ = fmt.Fprintf(w, "  %s %s\n", check.Status.Symbol(), check.Message)
			if verbose && check.Details != "" {
				// Indent details
				for _, line := range strings.Split(check.Details, "\n") {
					_, _ = fmt.Fprintf(w, "      %s\n", line)
				}
			}
			if check.Status != StatusPass && check.FixHint != "" {
				_, _ = fmt.Fprintf(w, "      Fix: %s\n", check.FixHint)
			}
		}
	}

	// Print summary
	_, _ = fmt.Fprintf(w, "\nSummary: %d passed, %d warnings, %d errors\n",
		r.Passed, r.Warnings, r.Errors)
}

// HasErrors returns true if any check failed.
func (r *Report) HasErrors() bool {
	return r.Errors > 0
}

// Doctor performs health checks on a manifold schema document.
type Doctor struct {
	schemaPath string
	overrides  manifold.Overrides

	// Cached data from checks (populated during Run)
	doc *loader.Document
}

// New creates a new Doctor instance.
func New(schemaPath string, overrides manifold.Overrides) *Doctor {
	return &Doctor{
		schemaPath: schemaPath,
		overrides:  overrides,
	}
}

// Run executes all health checks and returns a report.
func (d *Doctor) Run() (*Report, error) {
	report := &Report{}

	// Run checks in order, building up cached data
	if ok := d.checkSchemaFile(report); !ok {
		return report, nil
	}
	d.checkReferences(report)
	d.checkCycles(report)
	d.checkManifests(report)
	d.checkOverrides(report)

	return report, nil
}

// checkSchemaFile validates the schema file exists and parses.
// Returns false when the remaining checks cannot run.
func (d *Doctor) checkSchemaFile(report *Report) bool {
	if _, err := os.Stat(d.schemaPath); err != nil {
		report.AddCheck(CheckResult{
			Category: "Schema File",
			Name:     "exists",
			Status:   StatusFail,
			Message:  fmt.Sprintf("Schema file not found at %s", d.schemaPath),
			FixHint:  "Set the schema path in manifold.yaml or with --schema",
		})
		return false
	}

	doc, err := loader.Load(d.schemaPath)
	if err != nil {
		report.AddCheck(CheckResult{
			Category: "Schema File",
			Name:     "parses",
			Status:   StatusFail,
			Message:  fmt.Sprintf("Schema file does not parse: %v", err),
			FixHint:  "Run manifold validate for details",
		})
		return false
	}
	d.doc = doc

	report.AddCheck(CheckResult{
		Category: "Schema File",
		Name:     "parses",
		Status:   StatusPass,
		Message: fmt.Sprintf("Schema parsed: %d attributes, %d manifests",
			len(doc.SchemaMap()), len(doc.Manifests())),
	})
	return true
}

// checkReferences reports dependency edges pointing at ids missing from
// the schema. The resolver skips these silently; authors usually want
// to know the schema and its ingested subset have drifted apart.
func (d *Doctor) checkReferences(report *Report) {
	refs := manifold.DanglingReferences(d.doc.SchemaMap())
	if len(refs) == 0 {
		report.AddCheck(CheckResult{
			Category: "References",
			Name:     "dangling",
			Status:   StatusPass,
			Message:  "All dependency edges resolve",
		})
		return
	}

	details := make([]string, len(refs))
	for i, ref := range refs {
		details[i] = ref.String()
	}

	report.AddCheck(CheckResult{
		Category: "References",
		Name:     "dangling",
		Status:   StatusWarn,
		Message:  fmt.Sprintf("%d dependency edges point at missing attributes", len(refs)),
		Details:  strings.Join(details, "\n"),
		FixHint:  "Add the missing attributes or remove the stale edges",
	})
}

// checkCycles reports a dependency cycle if one exists. Resolution is
// bounded on cyclic schemas, so this is a warning, not a failure.
func (d *Doctor) checkCycles(report *Report) {
	cycle := manifold.DetectCycle(d.doc.SchemaMap())
	if cycle == nil {
		report.AddCheck(CheckResult{
			Category: "Cycles",
			Name:     "acyclic",
			Status:   StatusPass,
			Message:  "Dependency graph is acyclic",
		})
		return
	}

	report.AddCheck(CheckResult{
		Category: "Cycles",
		Name:     "acyclic",
		Status:   StatusWarn,
		Message:  "Dependency graph contains a cycle",
		Details:  manifold.FormatCycle(cycle),
		FixHint:  "Break the cycle if the mutual requirement is unintended",
	})
}

// checkManifests verifies that every manifest root resolves and that
// every attribute is reachable from some manifest.
func (d *Doctor) checkManifests(report *Report) {
	schema := d.doc.SchemaMap()
	manifests := d.doc.Manifests()

	var missingRoots []string
	for _, m := range manifests {
		for _, id := range m.Roots {
			if _, ok := schema[id]; !ok {
				missingRoots = append(missingRoots, fmt.Sprintf("%s: %s", m.Name, id))
			}
		}
	}

	if len(missingRoots) == 0 {
		report.AddCheck(CheckResult{
			Category: "Manifests",
			Name:     "roots",
			Status:   StatusPass,
			Message:  "All manifest roots resolve",
		})
	} else {
		report.AddCheck(CheckResult{
			Category: "Manifests",
			Name:     "roots",
			Status:   StatusWarn,
			Message:  fmt.Sprintf("%d manifest roots are missing from the schema", len(missingRoots)),
			Details:  strings.Join(missingRoots, "\n"),
			FixHint:  "Add the attributes or remove them from the manifest",
		})
	}

	// Orphans: attributes no manifest closure reaches.
	resolver := manifold.NewResolver(schema)
	reachable := make(map[manifold.AttributeID]bool, len(schema))
	for _, resolved := range resolver.ClosureFor(manifests...) {
		reachable[resolved.ID] = true
	}

	var orphans []string
	for id := range schema {
		if !reachable[id] {
			orphans = append(orphans, id.String())
		}
	}
	sort.Strings(orphans)

	if len(orphans) == 0 {
		report.AddCheck(CheckResult{
			Category: "Manifests",
			Name:     "coverage",
			Status:   StatusPass,
			Message:  "Every attribute is reachable from a manifest",
		})
		return
	}

	report.AddCheck(CheckResult{
		Category: "Manifests",
		Name:     "coverage",
		Status:   StatusWarn,
		Message:  fmt.Sprintf("%d attributes are not reachable from any manifest", len(orphans)),
		Details:  strings.Join(orphans, "\n"),
		FixHint:  "Orphaned attributes never appear in any manifest view",
	})
}

// checkOverrides flags override entries whose legacy name matches no
// attribute name or label. Stale entries are harmless but usually mean
// the schema finished migrating to the current naming.
func (d *Doctor) checkOverrides(report *Report) {
	names := make(map[string]bool)
	for _, attr := range d.doc.SchemaMap() {
		names[attr.Name] = true
		if attr.Label != "" {
			names[attr.Label] = true
		}
	}
	for _, m := range d.doc.Manifests() {
		names[m.Name.String()] = true
	}

	var stale []string
	for legacy := range d.overrides {
		if !names[legacy] {
			stale = append(stale, legacy)
		}
	}
	sort.Strings(stale)

	if len(stale) == 0 {
		report.AddCheck(CheckResult{
			Category: "Overrides",
			Name:     "stale",
			Status:   StatusPass,
			Message:  fmt.Sprintf("All %d override entries match the schema", len(d.overrides)),
		})
		return
	}

	report.AddCheck(CheckResult{
		Category: "Overrides",
		Name:     "stale",
		Status:   StatusWarn,
		Message:  fmt.Sprintf("%d override entries match nothing in the schema", len(stale)),
		Details:  strings.Join(stale, "\n"),
		FixHint:  "Remove entries once the legacy naming is gone from the source",
	})
}
