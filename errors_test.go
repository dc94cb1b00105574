package manifold_test

import (
	"fmt"
	"testing"

	"github.com/camber-bio/manifold"
)

func TestSentinelErrorHelpers(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		helper func(error) bool
	}{
		{
			name:   "invalid schema",
			err:    fmt.Errorf("parsing: %w", manifold.ErrInvalidSchema),
			helper: manifold.IsInvalidSchemaErr,
		},
		{
			name:   "duplicate attribute",
			err:    fmt.Errorf("%w: tissue", manifold.ErrDuplicateAttribute),
			helper: manifold.IsDuplicateAttributeErr,
		},
		{
			name:   "unknown manifest",
			err:    fmt.Errorf("%w: Imaging Level 2", manifold.ErrUnknownManifest),
			helper: manifold.IsUnknownManifestErr,
		},
		{
			name:   "unknown view",
			err:    fmt.Errorf("%w: m1", manifold.ErrUnknownView),
			helper: manifold.IsUnknownViewErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.helper(tt.err) {
				t.Errorf("expected helper to match wrapped sentinel")
			}
			if tt.helper(fmt.Errorf("unrelated")) {
				t.Errorf("expected helper not to match unrelated error")
			}
		})
	}
}
