package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"veriscript/internal/diagfmt"
	"veriscript/internal/driver"
)

var compileCmd = &cobra.Command{
	Use:   "compile [flags] [file.vc|dir]",
	Short: "Compile veriscript source to Verilog",
	Long: `Compile translates veriscript source into Verilog-style register-transfer
text. With a file argument the output goes to stdout or the -o path. With a
directory argument every *.vc file is compiled in parallel, each to a .v file
next to it. Without arguments the veriscript.toml manifest decides.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCompile,
}

func init() {
	compileCmd.Flags().StringP("output", "o", "", "output file (default stdout)")
	compileCmd.Flags().Bool("no-cache", false, "bypass the disk cache")
	compileCmd.Flags().Int("jobs", 0, "parallel jobs for directory compilation (0 = GOMAXPROCS)")
}

func runCompile(cmd *cobra.Command, args []string) error {
	output, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}
	noCache, err := cmd.Flags().GetBool("no-cache")
	if err != nil {
		return err
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return err
	}

	opts, err := compileOptions(cmd, noCache)
	if err != nil {
		return err
	}

	// Без аргумента компилируем цель из манифеста.
	if len(args) == 0 {
		manifest, found, err := loadProjectManifest(".")
		if err != nil {
			return err
		}
		if !found {
			return errors.New(noManifestMessage)
		}
		target := filepath.Join(manifest.Root, manifest.Config.Build.Main)
		if output == "" && manifest.Config.Build.Out != "" {
			output = filepath.Join(manifest.Root, manifest.Config.Build.Out)
		}
		return compileOne(cmd, target, output, opts)
	}

	target := args[0]
	st, err := os.Stat(target)
	if err != nil {
		return err
	}
	if st.IsDir() {
		if output != "" {
			return errors.New("-o is not supported for directory compilation")
		}
		return compileDirectory(cmd, target, opts, jobs)
	}
	return compileOne(cmd, target, output, opts)
}

func compileOptions(cmd *cobra.Command, noCache bool) (driver.Options, error) {
	strict, err := cmd.Root().PersistentFlags().GetBool("strict")
	if err != nil {
		return driver.Options{}, err
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return driver.Options{}, err
	}

	opts := driver.Options{
		Permissive:     !strict,
		MaxDiagnostics: maxDiagnostics,
	}
	if !noCache {
		// Недоступный кэш не повод отказывать в компиляции.
		if cache, err := driver.OpenDiskCache("veriscript"); err == nil {
			opts.Cache = cache
		}
	}
	return opts, nil
}

func compileOne(cmd *cobra.Command, path, output string, opts driver.Options) error {
	res, err := driver.CompileFile(path, opts)
	if err != nil {
		return fmt.Errorf("compilation failed: %w", err)
	}

	printDiagnostics(cmd, res)

	if output == "" {
		fmt.Fprint(os.Stdout, res.Output)
		return nil
	}
	if err := os.WriteFile(output, []byte(res.Output), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", output, err)
	}
	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	if !quiet {
		fmt.Fprintf(os.Stderr, "wrote %s\n", output)
	}
	return nil
}

func compileDirectory(cmd *cobra.Command, dir string, opts driver.Options, jobs int) error {
	results, err := driver.CompileDir(cmd.Context(), dir, opts, jobs)
	if err != nil {
		return err
	}
	if len(results) == 0 {
		return fmt.Errorf("no .vc files found in %s", dir)
	}

	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	var failed int
	for _, r := range results {
		if r.Err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "%s: %v\n", r.Path, r.Err)
			continue
		}
		printDiagnostics(cmd, r.Result)

		outPath := strings.TrimSuffix(r.Path, ".vc") + ".v"
		if err := os.WriteFile(outPath, []byte(r.Result.Output), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", outPath, err)
		}
		if !quiet {
			fmt.Fprintf(os.Stderr, "wrote %s\n", outPath)
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(results))
	}
	return nil
}

func printDiagnostics(cmd *cobra.Command, res *driver.CompileResult) {
	if res.Bag.Len() == 0 {
		return
	}
	diagfmt.Pretty(os.Stderr, res.Bag, res.FileSet, diagfmt.PrettyOpts{
		Color:      useColor(cmd, os.Stderr),
		ShowSource: true,
	})
}
