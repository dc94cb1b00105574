// Package manifold computes flattened attribute closures for
// biomedical data-submission schemas.
//
// A schema describes submission manifests (templates such as "Bulk DNA
// Level 1") as sets of attributes. Attributes depend on each other
// through four edge kinds: required dependencies, conditional
// dependencies, exclusive conditional dependencies, and valid-value
// enumerations. A fifth, derived relation ("conditional-if") is the
// inverse of the conditional edge: the attributes that become mandatory
// because of a given attribute.
//
// # Core Concepts
//
// Attributes are schema nodes identified by a stable AttributeID.
// A SchemaMap is the complete id → Attribute lookup, loaded once and
// treated as read-only for the rest of the session.
//
//	schema := doc.SchemaMap()
//	resolver := manifold.NewResolver(schema)
//
// # Closure Resolution
//
// The Resolver walks every dependency edge kind from a set of root
// attributes and returns each reachable attribute exactly once, in
// discovery order, annotated with the manifests that reached it:
//
//	resolved := resolver.ClosureFor(doc.Manifests()...)
//	for _, attr := range resolved {
//	    fmt.Println(attr.ID, attr.Manifests)
//	}
//
// Cyclic and self-referencing schemas are handled structurally; edges
// pointing at ids missing from the SchemaMap are skipped rather than
// treated as errors (the schema source is often a work in progress).
//
// # Schema Ingestion
//
// Schema documents are ingested by the loader package, which is the
// only package importing the serialization dependency:
//
//	import "github.com/camber-bio/manifold/pkg/loader"
//
//	doc, _ := loader.Load("schema.yaml")
//	resolver := manifold.NewResolver(doc.SchemaMap())
package manifold

// AttributeID uniquely identifies an attribute within a schema.
// Identity for deduplication is always the id, never structural
// equality, so independently constructed copies of the same logical
// attribute deduplicate correctly.
type AttributeID string

// String returns the string representation of the attribute id.
func (id AttributeID) String() string {
	return string(id)
}

// ManifestName identifies a submission manifest (template).
type ManifestName string

// String returns the string representation of the manifest name.
func (m ManifestName) String() string {
	return string(m)
}

// Attribute represents a schema-defined data-submission field and its
// dependency relations to other attributes. All dependency lists hold
// attribute ids; an id that is absent from the SchemaMap is treated as
// not yet ingested and skipped during traversal.
type Attribute struct {
	// ID is the stable identity key used for deduplication.
	ID AttributeID

	// Name is the attribute's display name ("attribute" in the source
	// schema). Display-name overrides apply on top of Name at
	// presentation time and never affect identity.
	Name string

	// Label is the human-readable label shown in manifest headers.
	Label string

	// Description documents the attribute for submitters.
	Description string

	// Required reports whether the attribute must always be submitted.
	Required bool

	// DataType is the declared value type ("string", "integer", ...).
	DataType string

	// RequiredDependencies are unconditionally required companions.
	RequiredDependencies []AttributeID

	// ConditionalDependencies are required only when other attributes
	// carry particular values.
	ConditionalDependencies []AttributeID

	// ExclusiveConditionalDependencies are conditional requirements
	// that are mutually exclusive alternatives.
	ExclusiveConditionalDependencies []AttributeID

	// ValidValues are the attributes representing the enumerated valid
	// values of this attribute.
	ValidValues []AttributeID
}

// manifestLabel returns the manifest name an attribute contributes when
// used as a closure root: its label, falling back to the display name.
func (a Attribute) manifestLabel() ManifestName {
	if a.Label != "" {
		return ManifestName(a.Label)
	}
	return ManifestName(a.Name)
}

// SchemaMap is the complete attribute lookup for one schema load.
// It is built once by the loader and must not be mutated while a
// Resolver built from it is in use.
type SchemaMap map[AttributeID]Attribute

// Manifest is a named submission template: a manifest name plus the
// root attributes that belong to it. The closure of a manifest is the
// set of attributes transitively reachable from its roots.
type Manifest struct {
	Name  ManifestName
	Roots []AttributeID
}

// ResolvedAttribute is an attribute discovered during closure
// resolution, annotated with every root manifest that reached it.
// Manifests is an append-only union in discovery order with no
// duplicates; an attribute shared by several manifests appears once in
// the closure output with all of their names attached.
type ResolvedAttribute struct {
	Attribute

	Manifests []ManifestName
}

// FromManifest reports whether the attribute was reached from the
// named manifest.
func (r ResolvedAttribute) FromManifest(name ManifestName) bool {
	for _, m := range r.Manifests {
		if m == name {
			return true
		}
	}
	return false
}
