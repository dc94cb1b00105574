package manifold

import "errors"

// Sentinel errors for common failure modes during schema ingestion and
// lookup. Closure resolution itself never returns errors: dangling
// references are skipped and cycles are bounded structurally, so a
// malformed schema degrades to "fewer attributes than expected" rather
// than a failure.
//
// Use the Is*Err helper functions to check for specific errors when
// surfacing setup problems to users.
var (
	// ErrInvalidSchema is returned when a schema document cannot be
	// ingested, e.g. an attribute entry without an id. Check the
	// schema source file syntax.
	ErrInvalidSchema = errors.New("manifold: invalid schema")

	// ErrDuplicateAttribute is returned when two attribute entries in
	// a schema document share an id. Identity is keyed on the id, so
	// duplicates would silently shadow each other if allowed through.
	ErrDuplicateAttribute = errors.New("manifold: duplicate attribute id")

	// ErrUnknownManifest is returned when a manifest name does not
	// exist in the loaded schema document.
	ErrUnknownManifest = errors.New("manifold: unknown manifest")

	// ErrUnknownView is returned when a view transition names a view
	// that is neither open nor openable.
	ErrUnknownView = errors.New("manifold: unknown view")
)

// IsInvalidSchemaErr returns true if err is or wraps ErrInvalidSchema.
func IsInvalidSchemaErr(err error) bool {
	return errors.Is(err, ErrInvalidSchema)
}

// IsDuplicateAttributeErr returns true if err is or wraps ErrDuplicateAttribute.
func IsDuplicateAttributeErr(err error) bool {
	return errors.Is(err, ErrDuplicateAttribute)
}

// IsUnknownManifestErr returns true if err is or wraps ErrUnknownManifest.
func IsUnknownManifestErr(err error) bool {
	return errors.Is(err, ErrUnknownManifest)
}

// IsUnknownViewErr returns true if err is or wraps ErrUnknownView.
func IsUnknownViewErr(err error) bool {
	return errors.Is(err, ErrUnknownView)
}
