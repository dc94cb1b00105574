package loader

import (
	"fmt"
	"os"

	"sigs.k8s.io/yaml"

	"github.com/camber-bio/manifold"
)

// LoadOverrides reads a display-name override table from a YAML or
// JSON file mapping legacy names to current names. An empty file
// yields an empty table.
//
// Override tables are presentation-only: they are injected into the
// rendering layer and never affect attribute identity.
func LoadOverrides(path string) (manifold.Overrides, error) {
	content, err := os.ReadFile(path) //nolint:gosec // path is from trusted source
	if err != nil {
		return nil, fmt.Errorf("reading overrides file: %w", err)
	}

	var overrides manifold.Overrides
	if err := yaml.UnmarshalStrict(content, &overrides); err != nil {
		return nil, fmt.Errorf("parsing overrides file: %w", err)
	}
	if overrides == nil {
		overrides = manifold.Overrides{}
	}

	return overrides, nil
}
