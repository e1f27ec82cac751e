package cli

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/entries/internal/app"
	"github.com/idilsaglam/entries/internal/auth"
	"github.com/idilsaglam/entries/internal/config"
	"github.com/idilsaglam/entries/internal/i18n"
	"github.com/idilsaglam/entries/internal/logging"
	"github.com/idilsaglam/entries/internal/screens"
	"github.com/idilsaglam/entries/internal/ui"
)

// Options come from root flags and override the config file.
type Options struct {
	ConfigPath string
	Theme      string
	Lang       string
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
func Run(args []string, opt Options) int {
	if len(args) == 0 {
		return doRun(opt)
	}
	cmd, a := args[0], args[1:]

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp()
		return 0

	case "run":
		if len(a) != 0 {
			ui.Fail("usage: entries run")
			return 2
		}
		return doRun(opt)

	case "check":
		if len(a) != 2 {
			ui.Fail("usage: entries check <email> <password>")
			return 2
		}
		return doCheck(a[0], a[1])
	}

	ui.Fail("unknown subcommand: " + cmd)
	ui.Muted("Hint: run `entries help` to see valid subcommands")
	fmt.Fprintln(ui.Stderr)
	PrintHelp()
	return 2
}

func PrintHelp() {
	fmt.Fprint(ui.Stdout, `entries - a tiny journal TUI

Usage:
  entries [flags] [subcommand] [args]

Subcommands:
  run                          Start the TUI (default)
  check <email> <password>     Validate credentials without starting the TUI

Flags:
  -config <path>   Config file (default: $XDG_CONFIG_HOME/entries/config.toml)
  -theme <name>    classic, neon or mono
  -lang <tag>      UI language, e.g. en or fr

Examples:
  entries
  entries -theme neon -lang fr
  entries check a@b.co secret
`)
}

// -------------- subcommand impls ----------------

// session is everything doRun needs to start the program.
type session struct {
	model  app.Model
	opts   []tea.ProgramOption
	closer io.Closer
}

func prepare(opt Options) (*session, error) {
	cfg, err := config.Load(opt.ConfigPath)
	if err != nil {
		return nil, err
	}
	if opt.Theme != "" {
		cfg.UI.Theme = opt.Theme
	}
	if opt.Lang != "" {
		cfg.UI.Lang = opt.Lang
	}

	msgs, err := i18n.New(cfg.UI.Lang)
	if err != nil {
		return nil, err
	}
	ui.SetTheme(cfg.UI.Theme)

	logger, closer, err := logging.Setup(cfg.Log.Path, cfg.Log.Level)
	if err != nil {
		return nil, err
	}
	logger.Info("starting", "theme", ui.Current().Name, "lang", msgs.Tag().String())

	s := &session{
		model: app.New(screens.Env{
			Msgs:  msgs,
			Theme: ui.Current(),
			Log:   logger,
		}),
		closer: closer,
	}
	if cfg.UI.AltScreen {
		s.opts = append(s.opts, tea.WithAltScreen())
	}
	return s, nil
}

func doRun(opt Options) int {
	s, err := prepare(opt)
	if err != nil {
		ui.Fail(err.Error())
		return 1
	}
	defer s.closer.Close()

	if _, err := tea.NewProgram(s.model, s.opts...).Run(); err != nil {
		ui.Fail("tui: " + err.Error())
		return 1
	}
	return 0
}

func doCheck(email, password string) int {
	if err := auth.ValidateCredentials(email, password); err != nil {
		ui.Fail(err.Error())
		ui.Muted("Hint: the email must look like name@example.com and the password must not be blank")
		return 1
	}
	ui.OK("valid")
	return 0
}
