package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/camber-bio/manifold/internal/cli"
	"github.com/camber-bio/manifold/pkg/loader"
)

var validateSchema string

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate schema document syntax",
	Long:  `Validate that the schema document parses into attributes and manifests.`,
	Example: `  # Validate a specific schema file
  manifold validate --schema schemas/schema.yaml

  # Validate using config file settings
  manifold validate`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Resolve schema path: flag > config > default
		schemaPath := resolveString(validateSchema, cfg.Schema)

		if _, err := os.Stat(schemaPath); err != nil {
			return cli.SchemaParseError(fmt.Sprintf("schema not found: %s", schemaPath), nil)
		}

		doc, err := loader.Load(schemaPath)
		if err != nil {
			return cli.SchemaParseError("parsing schema", err)
		}

		if !quiet {
			fmt.Printf("Schema is valid. Found %d attributes and %d manifests:\n",
				len(doc.SchemaMap()), len(doc.Manifests()))
			for _, m := range doc.Manifests() {
				fmt.Printf("  - %s (%d roots)\n", m.Name, len(m.Roots))
			}
			fmt.Println()
			fmt.Println("For dependency health checks, run:")
			fmt.Printf("  manifold doctor --schema %s\n", schemaPath)
		}

		return nil
	},
}

func init() {
	validateCmd.Flags().StringVar(&validateSchema, "schema", "", "path to schema document")
}
