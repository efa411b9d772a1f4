//go:build !linux

package cmd

import "github.com/spf13/cobra"

// platformCmds returns the subcommands that only exist on some platforms;
// none apply here.
func platformCmds() []*cobra.Command {
	return nil
}
