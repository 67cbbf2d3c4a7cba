package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"pancake/internal/diag"
	"pancake/internal/diagfmt"
	"pancake/internal/driver"
	"pancake/internal/observ"
	"pancake/internal/source"
)

type colorMode string

const (
	colorAuto colorMode = "auto"
	colorOn   colorMode = "on"
	colorOff  colorMode = "off"
)

func readColorMode(value string) (colorMode, error) {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "", "auto":
		return colorAuto, nil
	case "on":
		return colorOn, nil
	case "off":
		return colorOff, nil
	default:
		return "", fmt.Errorf("invalid color value %q (expected auto|on|off)", value)
	}
}

// commandEnv — общие настройки подкоманды после флагов и pancake.toml.
type commandEnv struct {
	config  *loadedConfig
	color   colorMode
	quiet   bool
	timings bool
	maxDiag int
	timer   *observ.Timer
	stdout  io.Writer
	stderr  io.Writer
	cleanup func(failed bool)
}

// prepareCommand loads the project config, applies it to unset flags and
// starts tracing. Callers must call env.finish.
func prepareCommand(cmd *cobra.Command) (*commandEnv, error) {
	cfg, err := resolveProjectConfig(cmd)
	if err != nil {
		return nil, err
	}
	if err := applyProjectConfig(cmd, cfg); err != nil {
		return nil, err
	}

	flags := cmd.Root().PersistentFlags()
	colorFlag, err := flags.GetString("color")
	if err != nil {
		return nil, fmt.Errorf("failed to get color flag: %w", err)
	}
	mode, err := readColorMode(colorFlag)
	if err != nil {
		return nil, err
	}
	quiet, err := flags.GetBool("quiet")
	if err != nil {
		return nil, fmt.Errorf("failed to get quiet flag: %w", err)
	}
	timings, err := flags.GetBool("timings")
	if err != nil {
		return nil, fmt.Errorf("failed to get timings flag: %w", err)
	}
	maxDiag, err := flags.GetInt("max-diagnostics")
	if err != nil {
		return nil, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	stopProfiling, err := setupProfiling(cmd)
	if err != nil {
		return nil, err
	}
	stopTracing, err := setupTracing(cmd)
	if err != nil {
		stopProfiling()
		return nil, err
	}
	cleanup := func(failed bool) {
		stopTracing(failed)
		stopProfiling()
	}
	env := &commandEnv{
		config:  cfg,
		color:   mode,
		quiet:   quiet,
		timings: timings,
		maxDiag: maxDiag,
		stdout:  cmd.OutOrStdout(),
		stderr:  cmd.ErrOrStderr(),
		cleanup: cleanup,
	}
	if timings {
		env.timer = observ.NewTimer()
	}
	return env, nil
}

func (env *commandEnv) finish(err error) {
	if env.cleanup != nil {
		env.cleanup(err != nil)
	}
}

// phase starts a timer phase; the returned func ends it with a note.
// Without --timings both are no-ops.
func (env *commandEnv) phase(name string) func(note string) {
	if env.timer == nil {
		return func(string) {}
	}
	idx := env.timer.Begin(name)
	return func(note string) { env.timer.End(idx, note) }
}

// useColor: auto включает цвет только для терминала.
func (env *commandEnv) useColor(w io.Writer) bool {
	switch env.color {
	case colorOn:
		return true
	case colorOff:
		return false
	}
	f, ok := w.(*os.File)
	return ok && isTerminal(f)
}

// driverOptions builds driver options from the command flags and the config.
func (env *commandEnv) driverOptions(cmd *cobra.Command) (driver.Options, error) {
	opts := driver.Options{
		MaxDiagnostics: env.maxDiag,
		Extensions:     env.config.extensions(),
		Memory:         driver.NewMemoryCache(0),
	}
	if cmd.Flags().Lookup("jobs") != nil {
		jobs, err := cmd.Flags().GetInt("jobs")
		if err != nil {
			return opts, fmt.Errorf("failed to get jobs flag: %w", err)
		}
		if jobs < 0 {
			return opts, fmt.Errorf("--jobs must not be negative")
		}
		opts.Jobs = jobs
	}
	if cmd.Flags().Lookup("cache") != nil {
		useCache, err := cmd.Flags().GetBool("cache")
		if err != nil {
			return opts, fmt.Errorf("failed to get cache flag: %w", err)
		}
		if useCache {
			disk, err := driver.OpenDiskCache("pancake")
			if err != nil {
				return opts, fmt.Errorf("failed to open cache: %w", err)
			}
			opts.Disk = disk
		}
	}
	return opts, nil
}

// reportDiagnostics prints bag to stderr in the output format of the command.
// Timings go into the JSON diagnostics, or as a text summary otherwise.
func (env *commandEnv) reportDiagnostics(bag *diag.Bag, fs *source.FileSet, format, kind, path string) error {
	jsonOut := format == "json"
	if env.timer != nil && jsonOut {
		driver.AppendTiming(bag, driver.TimingDiagnostic(kind, path, env.timer.Report()))
	}
	if bag.Len() > 0 {
		bag.Sort()
		if jsonOut {
			if err := diagfmt.JSON(env.stderr, bag, fs, diagfmt.JSONOpts{IncludePositions: true, IncludeNotes: true}); err != nil {
				return err
			}
		} else if bag.HasErrors() || bag.HasWarnings() {
			diagfmt.Pretty(env.stderr, bag, fs, diagfmt.PrettyOpts{
				Color:     env.useColor(env.stderr),
				Context:   2,
				ShowNotes: !env.quiet,
			})
		}
	}
	if env.timer != nil && !jsonOut {
		if _, err := fmt.Fprint(env.stderr, env.timer.Summary()); err != nil {
			return err
		}
	}
	if bag.HasErrors() {
		return errReported
	}
	return nil
}

// displayPath печатает путь относительно директории прогона, если файл загружен.
func displayPath(fs *source.FileSet, path string) string {
	if fs == nil {
		return path
	}
	if id, ok := fs.GetLatest(path); ok {
		return fs.Get(id).FormatPath("relative", fs.BaseDir())
	}
	return path
}

// mergeBags собирает диагностики всех файлов в один Bag.
func mergeBags(maxDiag int, bags ...*diag.Bag) *diag.Bag {
	out := diag.NewBag(maxDiag)
	for _, b := range bags {
		if b != nil {
			out.Merge(b)
		}
	}
	return out
}

func validateFormat(cmd *cobra.Command) (string, error) {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return "", fmt.Errorf("failed to get format flag: %w", err)
	}
	for _, choice := range formatChoices[cmd.Name()] {
		if format == choice {
			return format, nil
		}
	}
	return "", fmt.Errorf("unknown format: %s (expected %s)", format, strings.Join(formatChoices[cmd.Name()], "|"))
}
