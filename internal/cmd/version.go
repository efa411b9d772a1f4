package cmd

import (
	"fmt"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/typedio/ioctl/internal/config"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the command line tool version.",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("Version: %s | Commit: %s | Built: %s\n", Version, Commit, BuildTime)

		if viper.GetBool(config.DebugKey) {
			// Many ioctls require elevated privileges, so knowing how the
			// binary was invoked helps when troubleshooting EPERM.
			fmt.Printf("* The binary was invoked with the following permissions: euid %d | uid %d | egid %d | gid %d\n",
				syscall.Geteuid(), syscall.Getuid(), syscall.Getegid(), syscall.Getgid())
		}
	},
}
