package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"hidlgen/internal/ast"
	"hidlgen/internal/diag"
	"hidlgen/internal/diagfmt"
	"hidlgen/internal/format"
	"hidlgen/internal/loader"
	"hidlgen/internal/source"
)

var dumpReserved bool

func init() {
	dumpCmd.Flags().BoolVar(&dumpReserved, "reserved", false, "include built-in methods")
}

var dumpCmd = &cobra.Command{
	Use:   "dump <definition.toml>",
	Short: "Show the checked method table of one definition file",
	Args:  cobra.ExactArgs(1),
	RunE:  runDump,
}

func runDump(cmd *cobra.Command, args []string) error {
	fileSet := source.NewFileSet()
	id, err := fileSet.Load(args[0])
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", args[0], err)
	}

	bag := diag.NewBag(maxDiagnostics(cmd))
	iface, ok := loader.LoadInterface(fileSet.Get(id), diag.BagReporter{Bag: bag})
	if !ok {
		bag.Sort()
		diagfmt.Pretty(os.Stderr, bag, fileSet, diagfmt.PrettyOpts{
			Color:      useColor(cmd),
			ShowSource: true,
			ShowNotes:  true,
		})
		return fmt.Errorf("definition file has errors")
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "interface %s\n", iface.Name())

	methods := iface.UserMethods()
	if dumpReserved {
		methods = iface.Methods()
	}
	for _, m := range methods {
		w := format.NewWriter(format.Options{})
		m.DumpAnnotations(w)
		m.GenerateCppSignature(w, "", false)
		kind := "user"
		if m.IsReserved() {
			kind = "built-in"
		}
		fmt.Fprintf(out, "  [%s, serial %s] %s", kind, serialString(m), w.String())
		if m.IsOneway() {
			fmt.Fprint(out, " oneway")
		}
		if ref := m.CanElideCallback(); ref != nil {
			fmt.Fprintf(out, " (returns %s directly)", ref.Name())
		}
		fmt.Fprintln(out)
	}
	return nil
}

func serialString(m *ast.Method) string {
	if m.IsReserved() {
		return fmt.Sprintf("0x%08x", m.SerialID())
	}
	return fmt.Sprintf("%d", m.SerialID())
}
