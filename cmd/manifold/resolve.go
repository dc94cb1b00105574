package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/camber-bio/manifold"
	"github.com/camber-bio/manifold/internal/cli"
	"github.com/camber-bio/manifold/pkg/loader"
)

var (
	resolveSchema      string
	resolveFormat      string
	resolveNoOverrides bool
)

var resolveCmd = &cobra.Command{
	Use:   "resolve [manifest...]",
	Short: "Compute manifest attribute closures",
	Long: `Compute the flattened attribute closure for one or more manifests.

With no arguments, resolves every manifest in the schema. Each
attribute appears once, annotated with all manifests that reach it.`,
	Example: `  # Resolve every manifest
  manifold resolve

  # Resolve specific manifests
  manifold resolve "Bulk DNA Level 1" "Bulk RNA-seq Level 1"

  # Emit JSON for downstream tooling
  manifold resolve --format json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		schemaPath := resolveString(resolveSchema, cfg.Schema)
		format := cfg.ResolvedFormat(resolveFormat)
		if format != "table" && format != "json" {
			return cli.GeneralError(fmt.Sprintf("unknown format %q (want table or json)", format), nil)
		}

		doc, err := loader.Load(schemaPath)
		if err != nil {
			return cli.SchemaParseError("loading schema", err)
		}

		overrides, err := loadOverrides()
		if err != nil {
			return err
		}

		manifests, err := selectManifests(doc, overrides, args)
		if err != nil {
			return err
		}

		resolver := manifold.NewResolver(doc.SchemaMap())
		resolved := resolver.ClosureFor(manifests...)

		if format == "json" {
			return printJSON(resolved, overrides)
		}
		printTable(resolved, overrides)
		return nil
	},
}

func init() {
	f := resolveCmd.Flags()
	f.StringVar(&resolveSchema, "schema", "", "path to schema document")
	f.StringVar(&resolveFormat, "format", "", "output format: table or json")
	f.BoolVar(&resolveNoOverrides, "no-overrides", false, "show raw names without display overrides")
}

// loadOverrides returns the effective display-name override table:
// the configured override file when set, otherwise the built-in legacy
// table, or an empty table when overrides are disabled.
func loadOverrides() (manifold.Overrides, error) {
	if resolveNoOverrides || cfg.Resolve.NoOverrides {
		return manifold.Overrides{}, nil
	}
	if cfg.Overrides != "" {
		overrides, err := loader.LoadOverrides(cfg.Overrides)
		if err != nil {
			return nil, cli.ConfigError("loading overrides", err)
		}
		return overrides, nil
	}
	return manifold.DefaultOverrides(), nil
}

// selectManifests maps manifest name arguments to manifests. Names are
// matched raw first, then through the reversed override table so users
// can pass either legacy or current naming. No arguments selects every
// manifest.
func selectManifests(doc *loader.Document, overrides manifold.Overrides, names []string) ([]manifold.Manifest, error) {
	if len(names) == 0 {
		return doc.Manifests(), nil
	}

	reversed := overrides.Reversed()
	manifests := make([]manifold.Manifest, 0, len(names))
	for _, name := range names {
		m, err := doc.Manifest(manifold.ManifestName(name))
		if err != nil {
			m, err = doc.Manifest(manifold.ManifestName(reversed.Apply(name)))
		}
		if err != nil {
			return nil, cli.GeneralError(fmt.Sprintf("manifest %q not found in schema", name), nil)
		}
		manifests = append(manifests, m)
	}
	return manifests, nil
}

// resolvedRecord is the JSON shape of one resolved attribute.
type resolvedRecord struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	DisplayName string   `json:"displayName"`
	Label       string   `json:"label,omitempty"`
	Description string   `json:"description,omitempty"`
	DataType    string   `json:"dataType,omitempty"`
	Required    bool     `json:"required"`
	Manifests   []string `json:"manifests"`
}

func printJSON(resolved []manifold.ResolvedAttribute, overrides manifold.Overrides) error {
	records := make([]resolvedRecord, len(resolved))
	for i, attr := range resolved {
		manifests := make([]string, len(attr.Manifests))
		for j, m := range attr.Manifests {
			manifests[j] = overrides.Apply(m.String())
		}
		records[i] = resolvedRecord{
			ID:          attr.ID.String(),
			Name:        attr.Name,
			DisplayName: overrides.DisplayName(attr.Attribute),
			Label:       attr.Label,
			Description: attr.Description,
			DataType:    attr.DataType,
			Required:    attr.Required,
			Manifests:   manifests,
		}
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}

func printTable(resolved []manifold.ResolvedAttribute, overrides manifold.Overrides) {
	header := color.New(color.Bold)
	requiredMark := color.New(color.FgYellow)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	_, _ = header.Fprintln(w, "ID\tNAME\tTYPE\tREQUIRED\tMANIFESTS")
	for _, attr := range resolved {
		required := ""
		if attr.Required {
			required = requiredMark.Sprint("yes")
		}
		manifests := make([]string, len(attr.Manifests))
		for i, m := range attr.Manifests {
			manifests[i] = overrides.Apply(m.String())
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			attr.ID,
			overrides.DisplayName(attr.Attribute),
			attr.DataType,
			required,
			strings.Join(manifests, ", "))
	}
	_ = w.Flush()

	if !quiet {
		fmt.Printf("\n%d attributes\n", len(resolved))
	}
}
