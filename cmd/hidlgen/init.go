package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"hidlgen/internal/project"
)

var initCmd = &cobra.Command{
	Use:   "init [path|name]",
	Short: "Initialize a new binding package",
	Long: `Initialize a new binding package by creating a package manifest
(hidlgen.toml) and a sample interface definition (ILight.toml). If [path|name]
is omitted, initializes the current directory. If a non-existing name is
provided, a directory will be created.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

const sampleDefinition = `[interface]
name = "ILight"

[[method]]
name = "isOn"

[[method.returns]]
name = "on"
type = "bool"

[[method]]
name = "setBrightness"
oneway = true

[[method.args]]
name = "level"
type = "uint8"
`

func runInit(cmd *cobra.Command, args []string) error {
	var target string
	if len(args) == 0 || args[0] == "." {
		wd, err := os.Getwd()
		if err != nil {
			return err
		}
		target = wd
	} else {
		arg := args[0]
		if !filepath.IsAbs(arg) {
			wd, err := os.Getwd()
			if err != nil {
				return err
			}
			target = filepath.Join(wd, arg)
		} else {
			target = arg
		}
	}

	if st, err := os.Stat(target); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			if err = os.MkdirAll(target, 0o755); err != nil {
				return fmt.Errorf("failed to create directory %q: %w", target, err)
			}
		} else {
			return err
		}
	} else if !st.IsDir() {
		return fmt.Errorf("%q is not a directory", target)
	}

	name := strings.TrimSpace(filepath.Base(target))
	if name == "" || name == "." || name == string(filepath.Separator) {
		name = "hal-package"
	}

	manifestPath := filepath.Join(target, project.ManifestName)
	if _, err := os.Stat(manifestPath); err == nil {
		return fmt.Errorf("package already initialized: %s exists", manifestPath)
	}

	manifest := fmt.Sprintf(`[package]
name = %q
version = "1.0"
interfaces = ["ILight.toml"]

[output]
dir = "gen"
targets = ["cpp", "java"]
`, name)

	if err := os.WriteFile(manifestPath, []byte(manifest), 0o644); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}
	definitionPath := filepath.Join(target, "ILight.toml")
	if err := os.WriteFile(definitionPath, []byte(sampleDefinition), 0o644); err != nil {
		return fmt.Errorf("failed to write definition: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "created %s\n", manifestPath)
	fmt.Fprintf(out, "created %s\n", definitionPath)
	return nil
}
