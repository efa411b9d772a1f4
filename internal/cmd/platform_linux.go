//go:build linux

package cmd

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/typedio/ioctl/dev/rng"
	"github.com/typedio/ioctl/internal/config"
)

// platformCmds returns the subcommands that only exist on this platform.
func platformCmds() []*cobra.Command {
	return []*cobra.Command{newEntropyCmd()}
}

func newEntropyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "entropy",
		Short: "Print the kernel's entropy pool estimate in bits.",
		RunE: func(cmd *cobra.Command, args []string) error {
			bits, err := rng.EntropyCount()
			if err != nil {
				return err
			}
			if viper.GetBool(config.RawKey) {
				fmt.Printf("%d\n", bits)
				return nil
			}
			tbl := newTable()
			tbl.AppendHeader(table.Row{"device", "entropy (bits)"})
			tbl.AppendRow(table.Row{rng.DefaultDevice, bits})
			tbl.Render()
			return nil
		},
	}
}
