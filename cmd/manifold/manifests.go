package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/camber-bio/manifold"
	"github.com/camber-bio/manifold/internal/cli"
	"github.com/camber-bio/manifold/pkg/loader"
)

var manifestsSchema string

var manifestsCmd = &cobra.Command{
	Use:   "manifests",
	Short: "List manifests",
	Long:  `List the manifests declared by the schema with root and closure sizes.`,
	Example: `  # List manifests in the configured schema
  manifold manifests

  # List manifests in a specific schema file
  manifold manifests --schema schemas/schema.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		schemaPath := resolveString(manifestsSchema, cfg.Schema)

		doc, err := loader.Load(schemaPath)
		if err != nil {
			return cli.SchemaParseError("loading schema", err)
		}

		overrides, err := loadOverrides()
		if err != nil {
			return err
		}

		resolver := manifold.NewResolver(doc.SchemaMap())

		header := color.New(color.Bold)
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		_, _ = header.Fprintln(w, "MANIFEST\tROOTS\tCLOSURE")
		for _, m := range doc.Manifests() {
			closure := resolver.ClosureFor(m)
			_, _ = fmt.Fprintf(w, "%s\t%d\t%d\n",
				overrides.Apply(m.Name.String()), len(m.Roots), len(closure))
		}
		_ = w.Flush()

		return nil
	},
}

func init() {
	manifestsCmd.Flags().StringVar(&manifestsSchema, "schema", "", "path to schema document")
}
