package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"hidlgen/internal/diagfmt"
	"hidlgen/internal/driver"
	"hidlgen/internal/project"
	"hidlgen/internal/ui"
)

var (
	generateUI      string
	generateJobs    int
	generateNoCache bool
)

func init() {
	generateCmd.Flags().StringVar(&generateUI, "ui", "auto", "interactive progress (auto|on|off)")
	generateCmd.Flags().IntVarP(&generateJobs, "jobs", "j", 0, "parallel loader jobs (0 = number of CPUs)")
	generateCmd.Flags().BoolVar(&generateNoCache, "no-cache", false, "disable the generation cache")
}

var generateCmd = &cobra.Command{
	Use:   "generate [dir]",
	Short: "Compile interface definitions and write binding code",
	Long: `Compile every interface definition listed in hidlgen.toml and write the
generated C++ and Java bindings under the configured output directory.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGenerate,
}

func runGenerate(cmd *cobra.Command, args []string) error {
	manifestPath, err := locateManifest(args)
	if err != nil {
		return err
	}
	mode, err := readUIMode(generateUI)
	if err != nil {
		return err
	}

	opts := driver.Options{
		ManifestPath:   manifestPath,
		Jobs:           generateJobs,
		MaxDiagnostics: maxDiagnostics(cmd),
		NoCache:        generateNoCache,
	}

	var res *driver.Result
	if shouldUseTUI(mode) {
		res, err = runWithProgress(cmd, opts)
	} else {
		res, err = runPlain(cmd, opts)
	}
	if err != nil {
		return err
	}

	printDiagnostics(cmd, res)
	if res.Bag.HasErrors() {
		return fmt.Errorf("generation failed with %d diagnostics", res.Bag.Len())
	}

	quiet, _ := cmd.Flags().GetBool("quiet")
	if !quiet {
		for _, gf := range res.Generated {
			fmt.Fprintf(cmd.OutOrStdout(), "generated %s\n",
				filepath.Join(res.Manifest.OutputDir(), string(gf.Target), gf.Name))
		}
		if res.CacheHit {
			fmt.Fprintln(cmd.OutOrStdout(), "(from cache)")
		}
	}
	return nil
}

func runPlain(cmd *cobra.Command, opts driver.Options) (*driver.Result, error) {
	res, err := driver.Compile(cmd.Context(), opts)
	if err != nil {
		return nil, err
	}
	if !res.Bag.HasErrors() {
		if err := driver.WriteOutputs(res.Manifest, res.Generated); err != nil {
			return nil, err
		}
	}
	return res, nil
}

// runWithProgress runs the pipeline in the background and renders phase
// progress until the events channel closes.
func runWithProgress(cmd *cobra.Command, opts driver.Options) (*driver.Result, error) {
	events := make(chan driver.PhaseEvent, 16)
	opts.Observer = func(ev driver.PhaseEvent) {
		events <- ev
	}

	type outcome struct {
		res *driver.Result
		err error
	}
	done := make(chan outcome, 1)
	go func() {
		defer close(events)
		res, err := driver.Compile(context.WithoutCancel(cmd.Context()), opts)
		if err == nil && !res.Bag.HasErrors() {
			events <- driver.PhaseEvent{Name: "write", Status: driver.PhaseStart}
			err = driver.WriteOutputs(res.Manifest, res.Generated)
			events <- driver.PhaseEvent{Name: "write", Status: driver.PhaseEnd}
		}
		done <- outcome{res: res, err: err}
	}()

	model := ui.NewProgressModel("hidlgen generate", events)
	if _, err := tea.NewProgram(model).Run(); err != nil {
		return nil, err
	}

	out := <-done
	return out.res, out.err
}

func locateManifest(args []string) (string, error) {
	start := "."
	if len(args) == 1 {
		start = args[0]
	}
	if filepath.Ext(start) == ".toml" {
		return start, nil
	}
	abs, err := filepath.Abs(start)
	if err != nil {
		return "", err
	}
	path, ok, err := project.FindManifest(abs)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", fmt.Errorf("no %s found in %s or any parent", project.ManifestName, abs)
	}
	return path, nil
}

func printDiagnostics(cmd *cobra.Command, res *driver.Result) {
	if res.Bag.Len() == 0 {
		return
	}
	diagfmt.Pretty(os.Stderr, res.Bag, res.FileSet, diagfmt.PrettyOpts{
		Color:      useColor(cmd),
		ShowSource: true,
		ShowNotes:  true,
	})
}
