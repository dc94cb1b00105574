// Package loader ingests schema documents into manifold's SchemaMap
// and Manifest shapes.
//
// Documents are YAML or JSON; both are decoded through sigs.k8s.io/yaml
// so a single entrypoint accepts either. This package is the only
// manifold package that imports the serialization dependency; consumers
// of loaded schemas work entirely with manifold types.
//
// # Basic Usage
//
// Load a schema file:
//
//	doc, err := loader.Load("schemas/schema.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	resolver := manifold.NewResolver(doc.SchemaMap())
//	resolved := resolver.ClosureFor(doc.Manifests()...)
//
// Parse schema content directly:
//
//	doc, err := loader.Parse(content)
//
// # Dangling References
//
// Dependency ids that do not resolve to an attribute entry are not load
// errors. The schema source is frequently a superset/subset mismatch
// against what has been ingested so far, and the resolver skips such
// edges at traversal time. Use manifold.DanglingReferences or the
// doctor command to surface them.
package loader

import (
	"fmt"
	"os"

	"sigs.k8s.io/yaml"

	"github.com/camber-bio/manifold"
)

// attributeEntry is the on-disk shape of one attribute.
type attributeEntry struct {
	ID                               string   `json:"id"`
	Attribute                        string   `json:"attribute"`
	Label                            string   `json:"label"`
	Description                      string   `json:"description"`
	Required                         bool     `json:"required"`
	DataType                         string   `json:"dataType"`
	RequiredDependencies             []string `json:"requiredDependencies"`
	ConditionalDependencies          []string `json:"conditionalDependencies"`
	ExclusiveConditionalDependencies []string `json:"exclusiveConditionalDependencies"`
	ValidValues                      []string `json:"validValues"`
}

// manifestEntry is the on-disk shape of one manifest.
type manifestEntry struct {
	Name       string   `json:"name"`
	Attributes []string `json:"attributes"`
}

// document is the on-disk shape of a schema document.
type document struct {
	Attributes []attributeEntry `json:"attributes"`
	Manifests  []manifestEntry  `json:"manifests"`
}

// Document is a loaded schema: the attribute map plus the manifests
// declared by the source, in declaration order.
type Document struct {
	schema    manifold.SchemaMap
	manifests []manifold.Manifest
}

// Load reads a schema document from path and ingests it.
func Load(path string) (*Document, error) {
	content, err := os.ReadFile(path) //nolint:gosec // path is from trusted source
	if err != nil {
		return nil, fmt.Errorf("reading schema file: %w", err)
	}

	return Parse(content)
}

// Parse ingests YAML or JSON schema content.
//
// Entries without an id or attribute name fail with ErrInvalidSchema;
// two entries sharing an id fail with ErrDuplicateAttribute. Identity
// is keyed on the id everywhere downstream, so duplicates cannot be
// allowed to shadow each other silently.
func Parse(content []byte) (*Document, error) {
	var doc document
	if err := yaml.UnmarshalStrict(content, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", manifold.ErrInvalidSchema, err)
	}

	schema := make(manifold.SchemaMap, len(doc.Attributes))
	for _, entry := range doc.Attributes {
		if entry.ID == "" {
			return nil, fmt.Errorf("%w: attribute %q has no id", manifold.ErrInvalidSchema, entry.Attribute)
		}
		if entry.Attribute == "" {
			return nil, fmt.Errorf("%w: attribute %q has no display name", manifold.ErrInvalidSchema, entry.ID)
		}

		id := manifold.AttributeID(entry.ID)
		if _, exists := schema[id]; exists {
			return nil, fmt.Errorf("%w: %s", manifold.ErrDuplicateAttribute, id)
		}

		schema[id] = manifold.Attribute{
			ID:                               id,
			Name:                             entry.Attribute,
			Label:                            entry.Label,
			Description:                      entry.Description,
			Required:                         entry.Required,
			DataType:                         entry.DataType,
			RequiredDependencies:             toIDs(entry.RequiredDependencies),
			ConditionalDependencies:          toIDs(entry.ConditionalDependencies),
			ExclusiveConditionalDependencies: toIDs(entry.ExclusiveConditionalDependencies),
			ValidValues:                      toIDs(entry.ValidValues),
		}
	}

	manifests := make([]manifold.Manifest, 0, len(doc.Manifests))
	seen := make(map[manifold.ManifestName]bool, len(doc.Manifests))
	for _, entry := range doc.Manifests {
		if entry.Name == "" {
			return nil, fmt.Errorf("%w: manifest has no name", manifold.ErrInvalidSchema)
		}
		name := manifold.ManifestName(entry.Name)
		if seen[name] {
			return nil, fmt.Errorf("%w: manifest %s declared twice", manifold.ErrInvalidSchema, name)
		}
		seen[name] = true

		manifests = append(manifests, manifold.Manifest{
			Name:  name,
			Roots: toIDs(entry.Attributes),
		})
	}

	return &Document{schema: schema, manifests: manifests}, nil
}

// SchemaMap returns the attribute lookup. The map is shared with the
// Document and must be treated as read-only.
func (d *Document) SchemaMap() manifold.SchemaMap {
	return d.schema
}

// Manifests returns the manifests in declaration order.
func (d *Document) Manifests() []manifold.Manifest {
	return d.manifests
}

// Manifest returns the named manifest or an ErrUnknownManifest error.
func (d *Document) Manifest(name manifold.ManifestName) (manifold.Manifest, error) {
	for _, m := range d.manifests {
		if m.Name == name {
			return m, nil
		}
	}
	return manifold.Manifest{}, fmt.Errorf("%w: %s", manifold.ErrUnknownManifest, name)
}

func toIDs(values []string) []manifold.AttributeID {
	if len(values) == 0 {
		return nil
	}
	ids := make([]manifold.AttributeID, len(values))
	for i, v := range values {
		ids[i] = manifold.AttributeID(v)
	}
	return ids
}
