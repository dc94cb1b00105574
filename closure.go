package manifold

// Resolver computes attribute closures over a fixed SchemaMap.
// The conditional-if reverse index is built once at construction, so a
// Resolver should be reused across resolutions of the same schema.
//
// A Resolver is safe for concurrent use: resolution never mutates the
// schema or the index. If the schema changes, build a new Resolver; the
// index is never patched incrementally.
type Resolver struct {
	schema        SchemaMap
	conditionalIf ConditionalIndex
}

// NewResolver creates a Resolver for the given schema.
func NewResolver(schema SchemaMap) *Resolver {
	return &Resolver{
		schema:        schema,
		conditionalIf: BuildConditionalIndex(schema),
	}
}

// ConditionalIf returns the attributes that list id in their
// conditional dependencies, i.e. the attributes that become mandatory
// because of id.
func (r *Resolver) ConditionalIf(id AttributeID) []AttributeID {
	return r.conditionalIf[id]
}

// ResolveClosure computes the closure of the given roots against the
// schema. It is a convenience wrapper for one-shot resolution; callers
// resolving repeatedly against the same schema should construct a
// Resolver once and call Closure.
func ResolveClosure(roots []Attribute, schema SchemaMap) []ResolvedAttribute {
	return NewResolver(schema).Closure(roots...)
}

// visitKey tracks descent per (attribute, manifest) pair. Descending at
// most once per manifest bounds traversal on cyclic schemas while still
// propagating a newly arrived manifest name through subtrees that an
// earlier root already discovered.
type visitKey struct {
	id       AttributeID
	manifest ManifestName
}

// closureWalk holds the mutable state of one resolution.
type closureWalk struct {
	schema        SchemaMap
	conditionalIf ConditionalIndex

	// position indexes resolved attributes by id so re-entrant visits
	// are O(1) lookups, never re-scans of the output list.
	position map[AttributeID]int
	visited  map[visitKey]bool
	out      []ResolvedAttribute
}

// Closure computes the full transitive closure reachable from the
// given root attributes. Each root contributes its own label as the
// manifest name, which propagates unchanged through the whole subtree
// it discovers. Output order is discovery order, so identical inputs
// always produce identical output.
func (r *Resolver) Closure(roots ...Attribute) []ResolvedAttribute {
	w := &closureWalk{
		schema:        r.schema,
		conditionalIf: r.conditionalIf,
		position:      make(map[AttributeID]int),
		visited:       make(map[visitKey]bool),
		out:           make([]ResolvedAttribute, 0, len(roots)),
	}

	for _, root := range roots {
		w.visit(root, root.manifestLabel())
	}

	return w.out
}

// ClosureFor computes the combined closure of one or more manifests.
// Each manifest's roots are looked up in the schema; root ids missing
// from the schema are skipped, matching the dangling-edge policy.
func (r *Resolver) ClosureFor(manifests ...Manifest) []ResolvedAttribute {
	w := &closureWalk{
		schema:        r.schema,
		conditionalIf: r.conditionalIf,
		position:      make(map[AttributeID]int),
		visited:       make(map[visitKey]bool),
	}

	for _, m := range manifests {
		for _, id := range m.Roots {
			root, ok := r.schema[id]
			if !ok {
				continue
			}
			w.visit(root, m.Name)
		}
	}

	return w.out
}

// visit records attr under manifest and descends into its dependency
// edges. The visited mark is set before descent, which bounds
// traversal on cycles and self-references.
func (w *closureWalk) visit(attr Attribute, manifest ManifestName) {
	key := visitKey{id: attr.ID, manifest: manifest}
	if w.visited[key] {
		return
	}
	w.visited[key] = true

	if pos, seen := w.position[attr.ID]; seen {
		// Already discovered via another manifest: merge provenance,
		// do not re-add the record.
		w.out[pos].Manifests = appendManifest(w.out[pos].Manifests, manifest)
	} else {
		w.position[attr.ID] = len(w.out)
		w.out = append(w.out, ResolvedAttribute{
			Attribute: attr,
			Manifests: []ManifestName{manifest},
		})
	}

	// Fixed edge order: required, conditional, exclusive conditional,
	// valid values, then the conditional-if reverse edges.
	w.visitAll(attr.RequiredDependencies, manifest)
	w.visitAll(attr.ConditionalDependencies, manifest)
	w.visitAll(attr.ExclusiveConditionalDependencies, manifest)
	w.visitAll(attr.ValidValues, manifest)
	w.visitAll(w.conditionalIf[attr.ID], manifest)
}

// visitAll descends into each id that resolves in the schema. Ids
// without a schema entry are treated as not yet ingested and skipped.
func (w *closureWalk) visitAll(ids []AttributeID, manifest ManifestName) {
	for _, id := range ids {
		dep, ok := w.schema[id]
		if !ok {
			continue
		}
		w.visit(dep, manifest)
	}
}

// appendManifest adds name to the provenance list unless it is already
// present. The list stays in discovery order.
func appendManifest(names []ManifestName, name ManifestName) []ManifestName {
	for _, n := range names {
		if n == name {
			return names
		}
	}
	return append(names, name)
}
