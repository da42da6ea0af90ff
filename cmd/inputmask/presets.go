package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iw2rmb/inputmask/internal/grapheme"
)

func newPresetsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List available mask presets",
		Long:  `Display the builtin mask presets and those from the configured presets file.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := a.presets()
			if err != nil {
				return err
			}

			nameW, patW := 0, 0
			for _, p := range list {
				nameW = max(nameW, grapheme.Width(p.Name))
				patW = max(patW, grapheme.Width(p.Pattern))
			}

			r := renderer(cmd)
			name := r.NewStyle().Bold(true).Width(nameW + 2)
			pat := r.NewStyle().Width(patW + 2)
			desc := r.NewStyle().Faint(true)

			out := cmd.OutOrStdout()
			for _, p := range list {
				line := name.Render(p.Name) + pat.Render(p.Pattern) + desc.Render(p.Description)
				if p.Revealing {
					line += desc.Render(" (revealing)")
				}
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}
}
