package manifold

import "sort"

// ConditionalIndex answers the reverse of the conditional-dependency
// edge: for an attribute id, the attributes whose conditional
// dependencies mention it. These are the "conditional-if" edges - the
// attributes that become mandatory because of the indexed attribute.
//
// The index is derived entirely from the forward edges and must be
// rebuilt when the schema changes. Schema maps are immutable per load
// in this system, so in practice an index is built once per load.
type ConditionalIndex map[AttributeID][]AttributeID

// BuildConditionalIndex scans every attribute's conditional-dependency
// list and inverts it. Source ids are sorted so the index, and every
// traversal order derived from it, is deterministic regardless of map
// iteration order.
func BuildConditionalIndex(schema SchemaMap) ConditionalIndex {
	sources := make([]AttributeID, 0, len(schema))
	for id := range schema {
		sources = append(sources, id)
	}
	sort.Slice(sources, func(i, j int) bool { return sources[i] < sources[j] })

	index := make(ConditionalIndex)
	for _, source := range sources {
		for _, target := range schema[source].ConditionalDependencies {
			index[target] = appendID(index[target], source)
		}
	}

	return index
}

// appendID adds id to the list unless it is already present.
func appendID(ids []AttributeID, id AttributeID) []AttributeID {
	for _, existing := range ids {
		if existing == id {
			return ids
		}
	}
	return append(ids, id)
}
