package manifold

// Overrides is an immutable legacy-name → current-name lookup applied
// at presentation time. Overrides never participate in identity or
// deduplication: two attributes whose names differ only by an override
// entry remain distinct unless they share an id.
//
// Inject an Overrides table into the presentation layer once and treat
// it as read-only; it is never mutated at runtime.
type Overrides map[string]string

// DefaultOverrides returns the historical naming corrections carried by
// the portal. The schema source still uses the legacy "Bulk WES" assay
// naming for manifests that are displayed under the current "Bulk DNA"
// naming.
func DefaultOverrides() Overrides {
	return Overrides{
		"Bulk WES Level 1": "Bulk DNA Level 1",
		"Bulk WES Level 2": "Bulk DNA Level 2",
		"Bulk WES Level 3": "Bulk DNA Level 3",
		"BulkWESLevel1":    "BulkDNALevel1",
		"BulkWESLevel2":    "BulkDNALevel2",
		"BulkWESLevel3":    "BulkDNALevel3",
	}
}

// Apply returns the current display name for name, or name itself when
// no override exists.
func (o Overrides) Apply(name string) string {
	if current, ok := o[name]; ok {
		return current
	}
	return name
}

// DisplayName returns the attribute's presentation name with overrides
// applied. The attribute's stored Name is untouched; deduplication is
// always keyed on the original, un-overridden identity.
func (o Overrides) DisplayName(attr Attribute) string {
	return o.Apply(attr.Name)
}

// DisplayLabel returns the attribute's presentation label with
// overrides applied, falling back to the display name when the
// attribute carries no label.
func (o Overrides) DisplayLabel(attr Attribute) string {
	if attr.Label != "" {
		return o.Apply(attr.Label)
	}
	return o.DisplayName(attr)
}

// Reversed returns the inverse current-name → legacy-name table.
// Useful when matching user input given in current naming against a
// schema that still carries legacy names.
func (o Overrides) Reversed() Overrides {
	reversed := make(Overrides, len(o))
	for legacy, current := range o {
		reversed[current] = legacy
	}
	return reversed
}
