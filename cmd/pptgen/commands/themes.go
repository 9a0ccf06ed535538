package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mgk2100/ppt-generator/internal/theme"
)

func themesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List the built-in theme presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range theme.PresetNames() {
				t := theme.Defaults()
				t.Apply(theme.Presets[name])
				fmt.Printf("%-8s primary #%s  secondary #%s  accent #%s\n",
					name, t.Color("primary").Hex(), t.Color("secondary").Hex(), t.Color("accent").Hex())
			}
			return nil
		},
	}
}
