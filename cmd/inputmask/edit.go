package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/iw2rmb/inputmask/field"
)

var errCancelled = errors.New("edit cancelled")

type editKeys struct {
	Accept, Cancel key.Binding
}

func defaultEditKeys() editKeys {
	return editKeys{
		Accept: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "accept")),
		Cancel: key.NewBinding(key.WithKeys("esc", "ctrl+q"), key.WithHelp("esc", "cancel")),
	}
}

// editModel hosts one field until the value is accepted or editing is
// cancelled.
type editModel struct {
	field field.Model
	keys  editKeys
	help  help.Model

	title           string
	requireComplete bool

	status    lipgloss.Style
	accepted  bool
	cancelled bool
}

func newEditModel(f field.Model, title string, requireComplete bool) editModel {
	return editModel{
		field:           f,
		keys:            defaultEditKeys(),
		help:            help.New(),
		title:           title,
		requireComplete: requireComplete,
		status:          lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	}
}

func (m editModel) Init() tea.Cmd { return m.field.Init() }

func (m editModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Cancel):
			m.cancelled = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Accept):
			if m.requireComplete && !m.field.Editor().Complete() {
				return m, nil
			}
			m.accepted = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.field, cmd = m.field.Update(msg)
	return m, cmd
}

func (m editModel) View() string {
	if m.accepted || m.cancelled {
		return ""
	}
	lines := []string{m.title, m.field.View()}
	if m.requireComplete && !m.field.Editor().Complete() {
		lines = append(lines, m.status.Render("incomplete"))
	} else {
		lines = append(lines, "")
	}
	lines = append(lines, m.help.ShortHelpView(append([]key.Binding{m.keys.Accept, m.keys.Cancel}, m.field.KeyMap().ShortHelp()...)))
	return strings.Join(lines, "\n") + "\n"
}

func newEditCmd(a *app) *cobra.Command {
	var (
		flags     maskFlags
		value     string
		formatted bool
		partial   bool
	)
	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit a value interactively",
		Long:  `Open a masked input in the terminal and print the accepted value.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opt, err := a.maskOptions(flags, value)
			if err != nil {
				return err
			}
			f, err := field.New(field.Config{
				Mask:   opt,
				Style:  field.DefaultStyle(),
				Prompt: "> ",
			})
			if err != nil {
				return err
			}

			title := opt.Pattern
			if flags.preset != "" {
				title = flags.preset + " " + title
			}
			p := tea.NewProgram(
				newEditModel(f, title, !partial),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.ErrOrStderr()),
			)
			final, err := p.Run()
			if err != nil {
				return fmt.Errorf("running editor: %w", err)
			}

			m := final.(editModel)
			if m.cancelled {
				return errCancelled
			}
			ed := m.field.Editor()
			a.log.Debug("edit accepted", "value", ed.Value(), "complete", ed.Complete())
			if formatted {
				fmt.Fprintln(cmd.OutOrStdout(), ed.Value())
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), ed.RawValue())
			}
			return nil
		},
	}
	flags.register(cmd)
	fl := cmd.Flags()
	fl.StringVar(&value, "value", "", "initial value")
	fl.BoolVar(&formatted, "formatted", false, "print the formatted value instead of the raw value")
	fl.BoolVar(&partial, "allow-incomplete", false, "accept a value with empty required slots")
	return cmd
}
