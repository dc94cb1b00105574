package manifold

import (
	"fmt"
	"sort"
	"strings"
)

// EdgeKind identifies one of the forward dependency edge kinds.
type EdgeKind int

const (
	// EdgeRequired is an unconditionally required companion attribute.
	EdgeRequired EdgeKind = iota
	// EdgeConditional is required only for certain attribute values.
	EdgeConditional
	// EdgeExclusiveConditional is one of several mutually exclusive
	// conditional requirements.
	EdgeExclusiveConditional
	// EdgeValidValue enumerates an allowed value of the attribute.
	EdgeValidValue
)

func (k EdgeKind) String() string {
	switch k {
	case EdgeRequired:
		return "required"
	case EdgeConditional:
		return "conditional"
	case EdgeExclusiveConditional:
		return "exclusive-conditional"
	case EdgeValidValue:
		return "valid-value"
	default:
		return "unknown"
	}
}

// edges returns the attribute's dependency list for the given kind.
func (a Attribute) edges(kind EdgeKind) []AttributeID {
	switch kind {
	case EdgeRequired:
		return a.RequiredDependencies
	case EdgeConditional:
		return a.ConditionalDependencies
	case EdgeExclusiveConditional:
		return a.ExclusiveConditionalDependencies
	case EdgeValidValue:
		return a.ValidValues
	default:
		return nil
	}
}

// forwardEdgeKinds is the fixed traversal order of the forward edges.
var forwardEdgeKinds = []EdgeKind{
	EdgeRequired,
	EdgeConditional,
	EdgeExclusiveConditional,
	EdgeValidValue,
}

// DanglingReference records a dependency edge pointing at an id that is
// absent from the schema. The resolver tolerates these by skipping the
// edge; they are surfaced here so schema authors can see what a
// traversal silently dropped.
type DanglingReference struct {
	Source AttributeID
	Kind   EdgeKind
	Target AttributeID
}

func (d DanglingReference) String() string {
	return fmt.Sprintf("%s -[%s]-> %s", d.Source, d.Kind, d.Target)
}

// DanglingReferences scans every forward edge of every attribute and
// returns the edges whose target is missing from the schema, sorted by
// source id, edge kind, then target id.
func DanglingReferences(schema SchemaMap) []DanglingReference {
	var refs []DanglingReference

	for id, attr := range schema {
		for _, kind := range forwardEdgeKinds {
			for _, target := range attr.edges(kind) {
				if _, ok := schema[target]; !ok {
					refs = append(refs, DanglingReference{Source: id, Kind: kind, Target: target})
				}
			}
		}
	}

	sort.Slice(refs, func(i, j int) bool {
		if refs[i].Source != refs[j].Source {
			return refs[i].Source < refs[j].Source
		}
		if refs[i].Kind != refs[j].Kind {
			return refs[i].Kind < refs[j].Kind
		}
		return refs[i].Target < refs[j].Target
	})

	return refs
}

// nodeColor represents the state of a node during DFS cycle detection.
type nodeColor int

const (
	white nodeColor = iota // unvisited
	gray                   // in current DFS path (cycle if revisited)
	black                  // fully processed
)

// DetectCycle checks for a cycle in the forward dependency graph and
// returns its path, or nil if the graph is acyclic. The closure
// resolver handles cycles structurally via its visited set, so a cycle
// is not an error; it is reported so schema authors know that "required
// together" chains loop back on themselves.
//
// The conditional-if reverse edges are excluded: they mirror the
// forward conditional edges and every reverse pair would otherwise
// report as a two-node cycle.
func DetectCycle(schema SchemaMap) []AttributeID {
	colors := make(map[AttributeID]nodeColor)
	parent := make(map[AttributeID]AttributeID)

	// Deterministic start order regardless of map iteration.
	ids := make([]AttributeID, 0, len(schema))
	for id := range schema {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var dfs func(id AttributeID) []AttributeID
	dfs = func(id AttributeID) []AttributeID {
		colors[id] = gray

		attr := schema[id]
		for _, kind := range forwardEdgeKinds {
			for _, target := range attr.edges(kind) {
				if _, ok := schema[target]; !ok {
					continue // dangling, resolver skips it too
				}
				switch colors[target] {
				case gray:
					return reconstructCycle(id, target, parent)
				case white:
					parent[target] = id
					if cycle := dfs(target); cycle != nil {
						return cycle
					}
				}
			}
		}

		colors[id] = black
		return nil
	}

	for _, id := range ids {
		if colors[id] == white {
			if cycle := dfs(id); cycle != nil {
				return cycle
			}
		}
	}

	return nil
}

// reconstructCycle builds the cycle path from parent pointers.
// from is the node where the back-edge was detected, to is the node the
// edge returns to.
func reconstructCycle(from, to AttributeID, parent map[AttributeID]AttributeID) []AttributeID {
	cycle := []AttributeID{to}
	for id := from; id != to; id = parent[id] {
		cycle = append([]AttributeID{id}, cycle...)
	}
	cycle = append([]AttributeID{to}, cycle...)
	return cycle
}

// FormatCycle converts a cycle path to a human-readable string.
// Example: "tissue -> preservation_method -> tissue"
func FormatCycle(cycle []AttributeID) string {
	parts := make([]string, len(cycle))
	for i, id := range cycle {
		parts[i] = id.String()
	}
	return strings.Join(parts, " -> ")
}
