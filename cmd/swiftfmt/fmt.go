package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"swiftfmt/internal/config"
	"swiftfmt/internal/driver"
	"swiftfmt/internal/ui"
)

var fmtCmd = &cobra.Command{
	Use:   "fmt [flags] <path> [path...]",
	Short: "Format Swift source files",
	Long:  `Format re-indents every .swift file reachable from the given paths. Settings come from the nearest swiftfmt.toml above the first path.`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runFmt,
}

func init() {
	fmtCmd.Flags().Bool("check", false, "report files that need formatting without rewriting them")
	fmtCmd.Flags().Bool("diff", false, "print unified diffs instead of rewriting files")
	fmtCmd.Flags().String("format", "text", "output format (text|json)")
	fmtCmd.Flags().Bool("stdout", false, "print formatted code to stdout instead of rewriting files")
	fmtCmd.Flags().Bool("no-cache", false, "bypass the result cache")
}

func runFmt(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	check, err := cmd.Flags().GetBool("check")
	if err != nil {
		return err
	}
	showDiff, err := cmd.Flags().GetBool("diff")
	if err != nil {
		return err
	}
	outputFormat, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	writeToStdout, err := cmd.Flags().GetBool("stdout")
	if err != nil {
		return err
	}
	noCache, err := cmd.Flags().GetBool("no-cache")
	if err != nil {
		return err
	}

	if writeToStdout && (check || showDiff) {
		return fmt.Errorf("fmt: --stdout cannot be used with --check or --diff")
	}
	if writeToStdout && outputFormat != "text" {
		return fmt.Errorf("fmt: --stdout is only supported with text output")
	}

	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return err
	}
	jobs, err := cmd.Root().PersistentFlags().GetInt("jobs")
	if err != nil {
		return err
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return err
	}
	colored, err := resolveColor(cmd, os.Stdout)
	if err != nil {
		return err
	}

	cfg, _, err := config.Discover(configStart(args[0]))
	if err != nil {
		return err
	}

	opts := driver.FormatOptions{
		Config: cfg,
		// --diff не переписывает файлы
		Check:          check || showDiff,
		Stdout:         writeToStdout,
		Jobs:           jobs,
		MaxDiagnostics: maxDiagnostics,
	}
	if !noCache {
		// без кеша просто медленнее, не фатально
		if cache, cacheErr := driver.OpenDiskCache("swiftfmt"); cacheErr == nil {
			opts.Cache = cache
		}
	}

	results, err := driver.FormatPaths(cmd.Context(), args, opts)
	if err != nil {
		return err
	}

	var hasErrors bool
	var hasChanges bool

	switch outputFormat {
	case "text":
		if writeToStdout {
			renderFmtStdout(results, &hasErrors)
			if hasErrors {
				return fmt.Errorf("fmt: failed to format some files")
			}
			return nil
		}
		if showDiff {
			if err := renderFmtDiff(results, &hasErrors, &hasChanges); err != nil {
				return err
			}
			break
		}
		renderFmtText(results, check, quiet, colored, &hasErrors, &hasChanges)
	case "json":
		if err := renderFmtJSON(results, check || showDiff, &hasErrors, &hasChanges); err != nil {
			return err
		}
	default:
		return fmt.Errorf("fmt: unsupported output format %q", outputFormat)
	}

	if hasErrors {
		return fmt.Errorf("fmt: failed to format some files")
	}
	if (check || showDiff) && hasChanges {
		return fmt.Errorf("fmt: formatting changes required")
	}
	return nil
}

// configStart picks the directory the manifest search begins from.
func configStart(path string) string {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return path
	}
	return filepath.Dir(path)
}

func renderFmtStdout(results []driver.FormatResult, hasErrors *bool) {
	for _, res := range results {
		if res.Err != nil {
			*hasErrors = true
			fmt.Fprintf(os.Stderr, "fmt: %s: %v\n", res.Path, res.Err)
			continue
		}
		_, _ = os.Stdout.Write(res.Formatted)
	}
}

func renderFmtText(results []driver.FormatResult, check, quiet, colored bool, hasErrors, hasChanges *bool) {
	width := 80
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		width = w
	}

	stats := ui.RunStats{Total: len(results)}
	for _, res := range results {
		if res.Err != nil {
			*hasErrors = true
			stats.Failed++
			fmt.Fprintf(os.Stderr, "fmt: %s: %v\n", res.Path, res.Err)
			continue
		}
		if !res.Changed {
			continue
		}
		*hasChanges = true
		stats.Changed++
		if quiet {
			continue
		}
		status := "reformatted"
		if check {
			status = "needs format"
		}
		fmt.Fprintln(os.Stdout, ui.ResultLine(status, res.Path, width, colored))
	}
	if !quiet {
		fmt.Fprintln(os.Stdout, ui.Summary(stats, colored))
	}
}

// renderFmtDiff prints a unified diff per changed file. Files stay
// untouched on disk, so re-reading them yields the original bytes.
func renderFmtDiff(results []driver.FormatResult, hasErrors, hasChanges *bool) error {
	for _, res := range results {
		if res.Err != nil {
			*hasErrors = true
			fmt.Fprintf(os.Stderr, "fmt: %s: %v\n", res.Path, res.Err)
			continue
		}
		if !res.Changed {
			continue
		}
		*hasChanges = true

		original, err := os.ReadFile(res.Path)
		if err != nil {
			*hasErrors = true
			fmt.Fprintf(os.Stderr, "fmt: %s: %v\n", res.Path, err)
			continue
		}
		text, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
			A:        difflib.SplitLines(string(original)),
			B:        difflib.SplitLines(string(res.Formatted)),
			FromFile: res.Path,
			ToFile:   res.Path + " (formatted)",
			Context:  3,
		})
		if err != nil {
			return err
		}
		fmt.Fprint(os.Stdout, text)
	}
	return nil
}

func renderFmtJSON(results []driver.FormatResult, check bool, hasErrors, hasChanges *bool) error {
	type jsonResult struct {
		Path     string `json:"path"`
		Changed  bool   `json:"changed"`
		Error    string `json:"error,omitempty"`
		CheckRun bool   `json:"check"`
	}

	payload := make([]jsonResult, 0, len(results))
	for _, res := range results {
		jr := jsonResult{Path: res.Path, Changed: res.Changed, CheckRun: check}
		if res.Err != nil {
			*hasErrors = true
			jr.Error = res.Err.Error()
		}
		if res.Changed {
			*hasChanges = true
		}
		payload = append(payload, jr)
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}
