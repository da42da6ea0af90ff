package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/iw2rmb/inputmask"
	"github.com/iw2rmb/inputmask/mask"
	"github.com/iw2rmb/inputmask/preset"
)

var errNoMask = errors.New("one of --pattern or --preset is required")

// app carries state shared by the subcommands of one root command.
type app struct {
	v   *viper.Viper
	log *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New(), log: slog.New(slog.DiscardHandler)}

	root := &cobra.Command{
		Use:           "inputmask",
		Short:         "Format and edit values through input masks",
		Long:          `Format values against an input mask pattern, list mask presets, or edit a value interactively.`,
		Version:       inputmask.Version(),
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd)
		},
	}
	root.SetVersionTemplate("{{.Version}}\n")

	pf := root.PersistentFlags()
	pf.String("config", "", "config file (yaml)")
	pf.Bool("debug", false, "log debug records to stderr")
	pf.String("placeholder", "", "placeholder shown in empty slots (default \"_\")")
	pf.Bool("hide-placeholder", false, "render empty slots as nothing")
	pf.String("presets-file", "", "yaml file with additional presets")

	for key, flag := range map[string]string{
		"debug":            "debug",
		"placeholder":      "placeholder",
		"hide_placeholder": "hide-placeholder",
		"presets_file":     "presets-file",
	} {
		_ = a.v.BindPFlag(key, pf.Lookup(flag))
	}
	a.v.SetEnvPrefix("INPUTMASK")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	root.AddCommand(newFormatCmd(a), newPresetsCmd(a), newEditCmd(a))
	return root
}

func (a *app) load(cmd *cobra.Command) error {
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		a.v.SetConfigFile(path)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config: %w", err)
		}
	}
	if a.v.GetBool("debug") {
		a.log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	a.log.Debug("config loaded", "file", a.v.ConfigFileUsed(), "presets_file", a.v.GetString("presets_file"))
	return nil
}

// presets returns the builtin presets followed by the configured file's.
// A file preset replaces the builtin of the same name.
func (a *app) presets() ([]preset.Preset, error) {
	list, err := preset.Builtin()
	if err != nil {
		return nil, err
	}
	path := a.v.GetString("presets_file")
	if path == "" {
		return list, nil
	}
	extra, err := preset.LoadFile(path)
	if err != nil {
		return nil, err
	}

	for _, p := range extra {
		replaced := false
		for i := range list {
			if list[i].Name == p.Name {
				list[i] = p
				replaced = true
				break
			}
		}
		if !replaced {
			list = append(list, p)
		}
	}
	return list, nil
}

// maskFlags are the flags selecting a mask, shared by format and edit.
type maskFlags struct {
	pattern   string
	preset    string
	revealing bool
}

func (f *maskFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVarP(&f.pattern, "pattern", "p", "", "mask pattern")
	fl.StringVar(&f.preset, "preset", "", "named preset, listed by the presets command")
	fl.BoolVar(&f.revealing, "revealing", false, "show the mask only up to the typed value")
}

func (a *app) maskOptions(f maskFlags, value string) (mask.Options, error) {
	var opt mask.Options
	switch {
	case f.preset != "":
		list, err := a.presets()
		if err != nil {
			return mask.Options{}, err
		}
		p, ok := preset.Find(list, f.preset)
		if !ok {
			return mask.Options{}, fmt.Errorf("unknown preset %q", f.preset)
		}
		if opt, err = p.Options(value); err != nil {
			return mask.Options{}, err
		}
	case f.pattern != "":
		opt = mask.Options{Pattern: f.pattern, Value: value}
	default:
		return mask.Options{}, errNoMask
	}

	if ph := a.v.GetString("placeholder"); ph != "" {
		opt.Placeholder = ph
	}
	if a.v.GetBool("hide_placeholder") {
		opt.HidePlaceholder = true
	}
	if f.revealing {
		opt.Revealing = true
	}
	opt.Logger = a.log
	return opt, nil
}

// renderer styles output for w, without color when NO_COLOR is set or w is
// not a terminal.
func renderer(cmd *cobra.Command) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(cmd.OutOrStdout())
	if termenv.EnvNoColor() {
		r.SetColorProfile(termenv.Ascii)
	}
	return r
}
