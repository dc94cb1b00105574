package manifold_test

import (
	"testing"

	"github.com/camber-bio/manifold"
)

func TestOverrides_Apply(t *testing.T) {
	overrides := manifold.DefaultOverrides()

	if got := overrides.Apply("Bulk WES Level 1"); got != "Bulk DNA Level 1" {
		t.Errorf("expected legacy name to map to current, got %s", got)
	}
	if got := overrides.Apply("Tissue"); got != "Tissue" {
		t.Errorf("expected unmapped name to pass through, got %s", got)
	}
}

func TestOverrides_DisplayNameLeavesAttributeUntouched(t *testing.T) {
	overrides := manifold.DefaultOverrides()
	a := manifold.Attribute{ID: "wes1", Name: "BulkWESLevel1"}

	if got := overrides.DisplayName(a); got != "BulkDNALevel1" {
		t.Errorf("expected display name BulkDNALevel1, got %s", got)
	}
	if a.Name != "BulkWESLevel1" {
		t.Errorf("expected stored name untouched, got %s", a.Name)
	}
}

func TestOverrides_DisplayLabel(t *testing.T) {
	overrides := manifold.Overrides{"Legacy Label": "Current Label"}

	labeled := manifold.Attribute{ID: "a", Name: "a", Label: "Legacy Label"}
	if got := overrides.DisplayLabel(labeled); got != "Current Label" {
		t.Errorf("expected overridden label, got %s", got)
	}

	unlabeled := manifold.Attribute{ID: "b", Name: "b"}
	if got := overrides.DisplayLabel(unlabeled); got != "b" {
		t.Errorf("expected fallback to display name, got %s", got)
	}
}

func TestOverrides_Reversed(t *testing.T) {
	overrides := manifold.Overrides{"Bulk WES Level 1": "Bulk DNA Level 1"}
	reversed := overrides.Reversed()

	if got := reversed.Apply("Bulk DNA Level 1"); got != "Bulk WES Level 1" {
		t.Errorf("expected current name to map back to legacy, got %s", got)
	}
}
