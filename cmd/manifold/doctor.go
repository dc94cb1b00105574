package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/camber-bio/manifold/internal/cli"
	"github.com/camber-bio/manifold/internal/doctor"
)

var (
	doctorSchema  string
	doctorVerbose bool
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Run schema health checks",
	Long:  `Run health checks on a schema document: dangling references, cycles, manifest coverage, and override hygiene.`,
	Example: `  # Run health checks
  manifold doctor

  # Run with verbose output
  manifold doctor --verbose`,
	RunE: func(cmd *cobra.Command, args []string) error {
		schemaPath := resolveString(doctorSchema, cfg.Schema)
		verboseFlag := resolveBool(doctorVerbose, cfg.Doctor.Verbose)

		overrides, err := loadOverrides()
		if err != nil {
			return err
		}

		if !quiet {
			fmt.Println("manifold doctor - Schema Health Check")
		}

		d := doctor.New(schemaPath, overrides)
		report, err := d.Run()
		if err != nil {
			return cli.GeneralError("running doctor", err)
		}

		report.Print(os.Stdout, verboseFlag)

		if report.HasErrors() {
			return cli.GeneralError("health checks failed", nil)
		}

		return nil
	},
}

func init() {
	f := doctorCmd.Flags()
	f.StringVar(&doctorSchema, "schema", "", "path to schema document")
	f.BoolVar(&doctorVerbose, "verbose", false, "show detailed output")
}
