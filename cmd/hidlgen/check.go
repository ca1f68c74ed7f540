package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"hidlgen/internal/diagfmt"
	"hidlgen/internal/driver"
)

var checkFormat string

func init() {
	checkCmd.Flags().StringVar(&checkFormat, "format", "pretty", "diagnostic output format (pretty|json)")
}

var checkCmd = &cobra.Command{
	Use:   "check [dir]",
	Short: "Check interface definitions without generating code",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	manifestPath, err := locateManifest(args)
	if err != nil {
		return err
	}

	res, err := driver.Compile(cmd.Context(), driver.Options{
		ManifestPath:   manifestPath,
		MaxDiagnostics: maxDiagnostics(cmd),
		NoCache:        true,
	})
	if err != nil {
		return err
	}

	switch checkFormat {
	case "json":
		if err := diagfmt.JSON(cmd.OutOrStdout(), res.Bag, res.FileSet, diagfmt.JSONOpts{
			IncludePositions: true,
			IncludeNotes:     true,
			Max:              maxDiagnostics(cmd),
		}); err != nil {
			return err
		}
	case "pretty":
		printDiagnostics(cmd, res)
	default:
		return fmt.Errorf("unsupported format %q (must be pretty or json)", checkFormat)
	}

	if res.Bag.HasErrors() {
		os.Exit(1)
	}
	quiet, _ := cmd.Flags().GetBool("quiet")
	if !quiet && checkFormat == "pretty" {
		fmt.Fprintf(cmd.OutOrStdout(), "checked %d definition file(s), no errors\n", len(res.Files))
	}
	return nil
}
