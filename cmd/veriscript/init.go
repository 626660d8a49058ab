package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init [path|name]",
	Short: "Initialize a new veriscript project",
	Long: `Initialize a new veriscript project by creating a project manifest
(veriscript.toml) and an example entry point (main.vc). If [path|name] is
omitted, initializes the current directory. If a non-existing name is
provided, a directory will be created.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	// Resolve target directory
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

	// Ensure directory exists
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

	// Determine project name from directory basename
	name := filepath.Base(target)
	name = strings.TrimSpace(name)
	if name == "" || name == "." || name == string(filepath.Separator) {
		name = "veriscript-project"
	}

	// Create manifest file if not exists
	manifestPath := filepath.Join(target, "veriscript.toml")
	if _, err := os.Stat(manifestPath); err == nil {
		return fmt.Errorf("project already initialized: %s exists", manifestPath)
	}

	manifest := buildDefaultManifest(name)
	if err := os.WriteFile(manifestPath, []byte(manifest), os.FileMode(0o600)); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}

	// Create main.vc if not exists
	mainPath := filepath.Join(target, "main.vc")
	createdMain := false
	if _, err := os.Stat(mainPath); errors.Is(err, os.ErrNotExist) {
		if err := os.WriteFile(mainPath, []byte(defaultMainVC()), 0o600); err != nil {
			return fmt.Errorf("failed to write main.vc: %w", err)
		}
		createdMain = true
	}

	rel := target
	if wd, err := os.Getwd(); err == nil {
		if r, err2 := filepath.Rel(wd, target); err2 == nil {
			rel = r
		}
	}
	fmt.Fprintf(os.Stdout, "Initialized veriscript project in %s\n", rel)
	fmt.Fprintf(os.Stdout, "  - veriscript.toml\n")
	if createdMain {
		fmt.Fprintf(os.Stdout, "  - main.vc\n")
	} else {
		fmt.Fprintf(os.Stdout, "  - main.vc (existing)\n")
	}
	return nil
}

// buildDefaultManifest returns a minimal TOML manifest for a veriscript
// project using the provided package name.
func buildDefaultManifest(name string) string {
	// Minimal TOML manifest used as a project marker.
	return fmt.Sprintf(`# Veriscript project manifest
[package]
name = "%s"
version = "0.1.0"

[build]
main = "main.vc"
out = "main.v"
`, name)
}

// defaultMainVC returns the example program used when initializing a new
// project: declarations, both sync modes and a mix of inline and
// instantiated calls.
func defaultMainVC() string {
	return `// Example veriscript program.
// Compile with: veriscript compile

int.32 a;
signed.16 b;
int counter;

function::concurrent int.32 add(int.32 x, int.32::sequential y) {
    result = x + y;
}

function::sequential signed.8 multiply(int.8 x, int.8 y) {
    temp = x * y;
    result = temp;
}

a = 0;
b = 5;
counter = 0;

a = add(b, counter);
b = multiply(3, 4);

counter = counter + 1;
`
}
