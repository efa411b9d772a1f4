package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/typedio/ioctl"
	"github.com/typedio/ioctl/internal/config"
	"go.uber.org/zap"
)

type sendCfg struct {
	device string
	code   string
	arg    int64
}

func newSendCmd() *cobra.Command {
	cfg := sendCfg{}
	cmd := &cobra.Command{
		Use:   "send --device <path> --code <code> [--arg <int>]",
		Short: "Send a raw request code to a device (troubleshooting escape hatch).",
		Long: `Send a raw request code to a device node and print the syscall's return
value.

The code is passed to the kernel verbatim with no validation, optionally
with an integer argument placed directly in the argument word. Commands
whose argument is a pointer to a structure cannot be sent this way.

WARNING: sending arbitrary codes to arbitrary devices can confuse the
driver or worse. This exists for troubleshooting driver bindings.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSendCmd(cmd, cfg)
		},
	}
	cmd.Flags().StringVar(&cfg.device, "device", "", "Path of the device node to send the code to.")
	cmd.Flags().StringVar(&cfg.code, "code", "", "The request code, in any base Go accepts (e.g. 0x541B).")
	cmd.Flags().Int64Var(&cfg.arg, "arg", 0, "Optional integer argument passed directly in the argument word.")
	cmd.MarkFlagRequired("device")
	cmd.MarkFlagRequired("code")
	return cmd
}

func runSendCmd(cmd *cobra.Command, cfg sendCfg) error {
	log := config.GetLogger()

	code, err := strconv.ParseUint(cfg.code, 0, 32)
	if err != nil {
		return fmt.Errorf("invalid request code %q: %w", cfg.code, err)
	}

	dev, err := os.OpenFile(cfg.device, os.O_RDWR, 0)
	if err != nil {
		// Read-only commands work on read-only descriptors, so fall back
		// before giving up.
		if dev, err = os.Open(cfg.device); err != nil {
			return err
		}
	}
	defer dev.Close()

	req := ioctl.FromRaw(uint32(code))
	var res int
	if cmd.Flags().Changed("arg") {
		log.Debug("sending request with direct argument",
			zap.String("device", cfg.device), zap.Uint32("code", req.Code()), zap.Int64("arg", cfg.arg))
		res, err = ioctl.AsVal[int](req).Exec(dev, int(cfg.arg))
	} else {
		log.Debug("sending request without argument",
			zap.String("device", cfg.device), zap.Uint32("code", req.Code()))
		res, err = req.Exec(dev)
	}
	if err != nil {
		return err
	}
	fmt.Printf("%d\n", res)
	return nil
}
