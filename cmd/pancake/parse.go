package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"pancake/internal/ast"
	"pancake/internal/diag"
	"pancake/internal/diagfmt"
	"pancake/internal/driver"
	"pancake/internal/source"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] <file.js|directory>",
	Short: "Parse a JavaScript source file or directory and output the syntax tree",
	Long:  `Parse analyzes a JavaScript source file, or every source file in a directory, and outputs its syntax tree`,
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().String("format", "pretty", "output format (pretty|json|tree)")
	parseCmd.Flags().Int("jobs", 0, "max parallel workers for directory processing (0=auto)")
	parseCmd.Flags().Bool("cache", false, "reuse token streams from the on-disk cache")
	parseCmd.Flags().String("ui", "auto", "progress UI for directories (auto|on|off)")
}

func runParse(cmd *cobra.Command, args []string) (err error) {
	env, err := prepareCommand(cmd)
	if err != nil {
		return err
	}
	defer func() { env.finish(err) }()

	format, err := validateFormat(cmd)
	if err != nil {
		return err
	}
	opts, err := env.driverOptions(cmd)
	if err != nil {
		return err
	}

	path := args[0]
	st, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat path: %w", err)
	}
	if st.IsDir() {
		uiFlag, err := cmd.Flags().GetString("ui")
		if err != nil {
			return fmt.Errorf("failed to get ui flag: %w", err)
		}
		mode, err := readUIMode(uiFlag)
		if err != nil {
			return err
		}
		return parseDir(cmd, env, path, format, opts, shouldUseTUI(mode, env.quiet))
	}

	result, err := driver.Parse(cmd.Context(), path, opts)
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}
	if env.timer != nil {
		env.timer.RecordStages(result.Timings, 1)
	}
	if result.Builder != nil {
		done := env.phase("output")
		if err := writeAST(env, format, result.Builder, result.Stmts, result.FileSet); err != nil {
			return err
		}
		done(fmt.Sprintf("%d statements", len(result.Stmts)))
	}
	return env.reportDiagnostics(result.Bag, result.FileSet, format, "parse", path)
}

func writeAST(env *commandEnv, format string, b *ast.Builder, stmts []ast.StmtID, fs *source.FileSet) error {
	switch format {
	case "json":
		return diagfmt.FormatASTJSON(env.stdout, b, stmts)
	case "tree":
		return diagfmt.FormatASTTree(env.stdout, b, stmts)
	default:
		return diagfmt.FormatASTPretty(env.stdout, b, stmts, fs)
	}
}

func parseDir(cmd *cobra.Command, env *commandEnv, dir, format string, opts driver.Options, useUI bool) error {
	var (
		fs      *source.FileSet
		results []driver.ParseDirResult
		err     error
	)
	if useUI {
		files, listErr := driver.ListSourceFiles(dir, opts.Extensions)
		if listErr != nil {
			return fmt.Errorf("parsing failed: %w", listErr)
		}
		fs, results, err = parseDirWithUI(cmd.Context(), dir, files, opts)
	} else {
		fs, results, err = driver.ParseDir(cmd.Context(), dir, opts)
	}
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}
	if env.timer != nil {
		env.timer.RecordStages(driver.SumTimings(results), len(results))
	}

	bags := make([]*diag.Bag, 0, len(results))
	for _, r := range results {
		bags = append(bags, r.Bag)
	}

	done := env.phase("output")
	if format == "json" {
		output := make(map[string]*diagfmt.ASTNodeOutput, len(results))
		for _, r := range results {
			if r.Builder == nil {
				output[displayPath(fs, r.Path)] = nil
				continue
			}
			output[displayPath(fs, r.Path)] = diagfmt.BuildProgram(r.Builder, r.Stmts)
		}
		encoder := json.NewEncoder(env.stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(output); err != nil {
			return err
		}
		done(fmt.Sprintf("%d files", len(results)))
		return env.reportDiagnostics(mergeBags(env.maxDiag, bags...), fs, format, "parse", dir)
	}

	for idx, r := range results {
		if !env.quiet {
			if _, err := fmt.Fprintf(env.stdout, "== %s ==\n", displayPath(fs, r.Path)); err != nil {
				return err
			}
		}
		if r.Builder != nil {
			if err := writeAST(env, format, r.Builder, r.Stmts, fs); err != nil {
				return err
			}
		}
		if !env.quiet && idx < len(results)-1 {
			if _, err := fmt.Fprintln(env.stdout); err != nil {
				return err
			}
		}
	}
	done(fmt.Sprintf("%d files", len(results)))
	return env.reportDiagnostics(mergeBags(env.maxDiag, bags...), fs, format, "parse", dir)
}
