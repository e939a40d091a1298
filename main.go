// Package main is a command line tool for inspecting and changing toolkit options
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"os"
	"os/user"
	"path/filepath"
	"slices"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/fatih/color"
	"github.com/jessevdk/go-flags"
	"github.com/k0kubun/pp/v3"
	"github.com/spf13/afero"
	"golang.org/x/term"

	"github.com/apstndb/chemopt/internal/optfile"
	"github.com/apstndb/chemopt/internal/option"
	"github.com/apstndb/chemopt/internal/toolkit"
)

type globalOptions struct {
	Chemopt chemoptOptions `group:"chemopt"`
}

// We can't use `default` because chemopt uses multiple flags.NewParser() to process config files and flags.
type chemoptOptions struct {
	Set         map[string]string `long:"set" short:"s" key-value-delimiter:"=" description:"Set options e.g. --set=layout-orientation=horizontal --set=timeout=100"`
	Get         []string          `long:"get" short:"g" description:"Print the value of an option. Can be repeated."`
	Invoke      []string          `long:"invoke" description:"Run an action option such as reset-basic-options. Can be repeated."`
	List        bool              `long:"list" short:"l" description:"List all options with their current values."`
	OptionsFile string            `long:"options-file" short:"f" description:"Apply a YAML option document before --set."`
	Dump        bool              `long:"dump" description:"Print all option values as a YAML option document."`
	LogLevel    string            `long:"log-level" description:"Log level of diagnostic logs." choice:"DEBUG" choice:"INFO" choice:"WARN" choice:"ERROR" default-mask:"WARN"`
	LogDispatch bool              `long:"log-dispatch" description:"Trace every option operation."`
	Strict      bool              `long:"strict" description:"Fail when an option name is registered twice."`
	ShowState   bool              `long:"show-state" description:"Print the whole toolkit configuration after processing."`
	Help        bool              `long:"help" short:"h" hidden:"true"`
}

const longDescription = `
chemopt reads and writes the basic options of the chemistry toolkit.

Options are processed in this order: --options-file, --set (sorted by name),
--invoke, --get, then --list, --dump and --show-state. Values are matched the way the
toolkit matches them, so enumerated values ignore case:

    chemopt --set layout-orientation=Horizontal --get layout-orientation

Defaults for any flag can be written to .chemopt.cnf in the home directory
or the current directory, in the [chemopt] section.`

// app holds the environment of one invocation.
type app struct {
	fs      afero.Fs
	stdout  io.Writer
	stderr  io.Writer
	cnfDirs []string
}

func main() {
	a := &app{
		fs:      afero.NewOsFs(),
		stdout:  os.Stdout,
		stderr:  os.Stderr,
		cnfDirs: configDirs(),
	}

	color.NoColor = !isTerminal(os.Stderr)
	err := a.run(os.Args[1:])
	var exitCodeErr *ExitCodeError
	if err != nil && !errors.As(err, &exitCodeErr) {
		printError(os.Stderr, err)
	}
	os.Exit(GetExitCode(err))
}

func newParser(gopts *globalOptions, options flags.Options) *flags.Parser {
	parser := flags.NewParser(gopts, options)
	parser.Name = "chemopt"
	parser.LongDescription = heredoc.Doc(longDescription)
	return parser
}

func (a *app) run(args []string) error {
	var gopts globalOptions

	// process config files at first
	if err := a.readConfigFile(newParser(&gopts, flags.None)); err != nil {
		return fmt.Errorf("invalid config file format: %w", err)
	}

	// then, process command line options with higher precedence than configuration files
	flagParser := newParser(&gopts, flags.PassDoubleDash)
	rest, err := flagParser.ParseArgs(args)
	if err == nil && len(rest) > 0 {
		err = fmt.Errorf("unexpected arguments: %s", strings.Join(rest, " "))
	}
	if err != nil {
		// Usage errors are printed here and exit with exitCodeUsage.
		printError(a.stderr, fmt.Errorf("invalid options: %w", err))
		fmt.Fprintln(a.stderr, "Run 'chemopt --help' for usage.")
		return NewExitCodeError(exitCodeUsage)
	}

	opts := gopts.Chemopt
	if opts.Help {
		// Show the help without values read from config files.
		newParser(&globalOptions{}, flags.None).WriteHelp(a.stdout)
		return nil
	}

	logger, err := newLogger(a.stderr, opts.LogLevel)
	if err != nil {
		return err
	}

	regOpts := []option.RegistryOption{option.WithLogger(logger)}
	if opts.Strict {
		regOpts = append(regOpts, option.WithStrictRegistration())
	}
	if opts.LogDispatch {
		zl, err := newDispatchLogger()
		if err != nil {
			return fmt.Errorf("failed to build dispatch logger: %w", err)
		}
		defer func() { _ = zl.Sync() }()
		regOpts = append(regOpts, option.WithObserver(dispatchObserver(zl)))
	}

	tkOpts := toolkit.NewOptions()
	reg, err := toolkit.NewRegistry(tkOpts, regOpts...)
	if err != nil {
		return fmt.Errorf("failed to register options: %w", err)
	}

	return a.process(reg, tkOpts, opts)
}

func (a *app) process(reg *option.Registry, tkOpts *toolkit.Options, opts chemoptOptions) error {
	if opts.OptionsFile != "" {
		doc, err := optfile.Load(a.fs, opts.OptionsFile)
		if err != nil {
			return err
		}
		if err := optfile.Apply(reg, doc); err != nil {
			return fmt.Errorf("failed to apply %s: %w", opts.OptionsFile, err)
		}
	}

	for _, name := range slices.Sorted(maps.Keys(opts.Set)) {
		value := opts.Set[name]
		if err := reg.SetFromString(name, value); err != nil {
			return fmt.Errorf("failed to set option. name: %v, value: %v, err: %w", name, value, err)
		}
	}

	for _, name := range opts.Invoke {
		if err := reg.InvokeAction(name); err != nil {
			return err
		}
	}

	for _, name := range opts.Get {
		value, err := reg.Format(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.stdout, "%s=%s\n", name, value)
	}

	if opts.List {
		if err := writeOptionTable(a.stdout, reg); err != nil {
			return err
		}
	}

	if opts.Dump {
		if err := optfile.Write(a.stdout, reg); err != nil {
			return err
		}
	}

	if opts.ShowState {
		pprinter := pp.New()
		pprinter.SetOutput(a.stdout)
		pprinter.SetColoringEnabled(isTerminal(a.stdout))
		if _, err := pprinter.Println(tkOpts); err != nil {
			return err
		}
	}
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	var lvl slog.Level
	if level == "" {
		lvl = slog.LevelWarn
	} else if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}

const cnfFileName = ".chemopt.cnf"

func configDirs() []string {
	var dirs []string
	if currentUser, err := user.Current(); err == nil {
		dirs = append(dirs, currentUser.HomeDir)
	}

	cwd, _ := os.Getwd() // ignore err
	return append(dirs, cwd)
}

func (a *app) readConfigFile(parser *flags.Parser) error {
	iniParser := flags.NewIniParser(parser)
	for _, dir := range a.cnfDirs {
		cnfFile := filepath.Join(dir, cnfFileName)

		f, err := a.fs.Open(cnfFile)
		if errors.Is(err, os.ErrNotExist) {
			// skip if missing
			continue
		} else if err != nil {
			return err
		}

		err = iniParser.Parse(f)
		f.Close()
		if err != nil {
			return fmt.Errorf("%s: %w", cnfFile, err)
		}
	}
	return nil
}

func printError(w io.Writer, err error) {
	msg := strings.TrimSuffix(err.Error(), "\n")
	fmt.Fprintf(w, "%s %s\n", errorPrefix(), msg)
}
