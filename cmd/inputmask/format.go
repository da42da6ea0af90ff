package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/iw2rmb/inputmask/mask"
)

func newFormatCmd(a *app) *cobra.Command {
	var (
		flags maskFlags
		raw   bool
	)
	cmd := &cobra.Command{
		Use:   "format VALUE...",
		Short: "Format values against a mask",
		Long: `Format each VALUE against the mask and print one line per value:
the formatted value, the raw value and whether every required slot is filled.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r := renderer(cmd)
			ok := r.NewStyle().Foreground(lipgloss.Color("2"))
			missing := r.NewStyle().Foreground(lipgloss.Color("3"))
			out := cmd.OutOrStdout()

			for _, value := range args {
				opt, err := a.maskOptions(flags, value)
				if err != nil {
					return err
				}
				ed, err := mask.New(opt)
				if err != nil {
					return err
				}

				if raw {
					fmt.Fprintln(out, ed.RawValue())
					continue
				}
				status := ok.Render("complete")
				if !ed.Complete() {
					status = missing.Render("incomplete")
				}
				fmt.Fprintf(out, "%s\t%s\t%s\n", ed.Value(), ed.RawValue(), status)
			}
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().BoolVar(&raw, "raw", false, "print only the raw value")
	return cmd
}
