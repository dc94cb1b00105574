// Package main provides a CLI for browsing manifold schema documents.
//
// The CLI supports:
//   - validate: Check schema document syntax
//   - resolve: Compute flattened attribute closures for manifests
//   - manifests: List manifests with root and closure sizes
//   - doctor: Run health checks on a schema document
//
// This tool is typically run during schema authoring to inspect what a
// portal front end will render for each manifest.
//
// Usage:
//
//	manifold [flags] <command>
package main

func main() {
	Execute()
}
