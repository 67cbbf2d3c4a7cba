package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"pancake/internal/diag"
	"pancake/internal/diagfmt"
	"pancake/internal/driver"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] <file.js|directory>",
	Short: "Tokenize a JavaScript source file or directory",
	Long:  `Tokenize breaks a JavaScript source file, or every source file in a directory, into tokens`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	tokenizeCmd.Flags().Bool("cache", false, "reuse token streams from the on-disk cache")
	tokenizeCmd.Flags().Int("jobs", 0, "max parallel workers for directory processing (0=auto)")
	tokenizeCmd.Flags().Bool("eof", false, "include the EOF token in the listing")
}

func runTokenize(cmd *cobra.Command, args []string) (err error) {
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
	withEOF, err := cmd.Flags().GetBool("eof")
	if err != nil {
		return fmt.Errorf("failed to get eof flag: %w", err)
	}
	tokOpts := diagfmt.TokenOpts{Color: env.useColor(env.stdout), WithEOF: withEOF}

	path := args[0]
	st, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat path: %w", err)
	}
	if st.IsDir() {
		return tokenizeDir(cmd, env, path, format, opts, tokOpts)
	}

	result, err := driver.Tokenize(cmd.Context(), path, opts)
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}
	if env.timer != nil {
		env.timer.RecordStages(result.Timings, 1)
	}

	done := env.phase("output")
	switch format {
	case "json":
		err = diagfmt.FormatTokensJSON(env.stdout, result.Tokens, tokOpts)
	default:
		err = diagfmt.FormatTokensPretty(env.stdout, result.Tokens, tokOpts)
	}
	if err != nil {
		return err
	}
	done(fmt.Sprintf("%d tokens", len(result.Tokens)))
	return env.reportDiagnostics(result.Bag, result.FileSet, format, "tokenize", path)
}

func tokenizeDir(cmd *cobra.Command, env *commandEnv, dir, format string, opts driver.Options, tokOpts diagfmt.TokenOpts) error {
	fs, results, err := driver.TokenizeDir(cmd.Context(), dir, opts)
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}
	if env.timer != nil {
		env.timer.RecordStages(driver.SumTimings(results), len(results))
	}

	bags := make([]*diag.Bag, 0, len(results))
	for _, r := range results {
		bags = append(bags, r.Bag)
	}

	done := env.phase("output")
	switch format {
	case "json":
		output := make(map[string][]diagfmt.TokenOutput, len(results))
		for _, r := range results {
			output[displayPath(fs, r.Path)] = diagfmt.BuildTokensOutput(r.Tokens, tokOpts)
		}
		encoder := json.NewEncoder(env.stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(output); err != nil {
			return err
		}
	default:
		for idx, r := range results {
			if !env.quiet {
				cached := ""
				if r.Cached {
					cached = " (cached)"
				}
				if _, err := fmt.Fprintf(env.stdout, "== %s ==%s\n", displayPath(fs, r.Path), cached); err != nil {
					return err
				}
			}
			if err := diagfmt.FormatTokensPretty(env.stdout, r.Tokens, tokOpts); err != nil {
				return err
			}
			if !env.quiet && idx < len(results)-1 {
				if _, err := fmt.Fprintln(env.stdout); err != nil {
					return err
				}
			}
		}
	}
	done(fmt.Sprintf("%d files", len(results)))
	return env.reportDiagnostics(mergeBags(env.maxDiag, bags...), fs, format, "tokenize", dir)
}
