// Package cmd implements the reqcode command line tool.
package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/typedio/ioctl/internal/config"
)

var (
	BinaryName = "reqcode"
	Version    = "local-build"
	Commit     = "unknown"
	BuildTime  = "unknown"
)

// Execute is the main entry point of the tool.
func Execute() int {
	cmd := &cobra.Command{
		Use:   BinaryName,
		Short: "Build and exercise ioctl request codes.",
		Long: `reqcode builds ioctl request codes the way the kernel's _IO* macros do,
and can send a code to a device node for troubleshooting driver bindings.

* View help for specific commands with "<command> help".
* Request codes are platform specific: a code computed by a binary built
  for one architecture is not necessarily valid on another.`,
		SilenceUsage: true,
	}

	// Normalize flags to lowercase so the tool accepts case insensitive
	// flags.
	cmd.SetGlobalNormalizationFunc(func(f *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ToLower(name))
	})

	initGlobalFlags(cmd)

	cmd.AddCommand(versionCmd)
	cmd.AddCommand(newEncodeCmd())
	cmd.AddCommand(newSendCmd())
	cmd.AddCommand(platformCmds()...)

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		return 1
	}
	return 0
}

// initGlobalFlags defines the global flags and binds them to viper along
// with the matching REQCODE_* environment variables.
func initGlobalFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().Bool(config.DebugKey, false, "Print additional details that are normally hidden.")
	cmd.PersistentFlags().Bool(config.RawKey, false, "Print bare values without tables (useful for scripts).")
	cmd.PersistentFlags().Int8(config.LogLevelKey, 0, "By default only fatal errors are logged. Optionally enable logging to stderr to assist with debugging (0=Fatal, 1=Error, 2=Warn, 3=Info, 4+5=Debug).")

	viper.SetEnvPrefix(strings.ToUpper(BinaryName))
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	if err := viper.BindPFlags(cmd.PersistentFlags()); err != nil {
		panic(fmt.Sprintf("unable to bind global flags: %s", err))
	}
}
