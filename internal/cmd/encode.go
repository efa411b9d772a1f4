package cmd

import (
	"fmt"
	"math"
	"os"
	"strconv"

	"github.com/dsnet/golib/unitconv"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/typedio/ioctl"
	"github.com/typedio/ioctl/internal/config"
	"go.uber.org/zap"
	"golang.org/x/term"
)

type encodeCfg struct {
	dir  string
	typ  string
	nr   uint8
	size string
}

func newEncodeCmd() *cobra.Command {
	cfg := encodeCfg{}
	cmd := &cobra.Command{
		Use:   "encode --type <type> [--dir <dir>] [--nr <nr>] [--size <size>]",
		Short: "Compute an ioctl request code from its components.",
		Long: `Compute an ioctl request code from its components using the bit layout of
the platform this binary was built for.

The type accepts either a single character (the driver letter used in the
kernel's ioctl-number documentation, e.g. 'V' for V4L2) or a number in any
base Go accepts (e.g. 0x56). The size accepts IEC suffixes (e.g. 4Ki).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEncodeCmd(cfg)
		},
	}
	cmd.Flags().StringVar(&cfg.dir, "dir", "none", "Transfer direction: none, read, write, or rw.")
	cmd.Flags().StringVar(&cfg.typ, "type", "", "Driver type/group byte (single character or number).")
	cmd.Flags().Uint8Var(&cfg.nr, "nr", 0, "Command number within the group.")
	cmd.Flags().StringVar(&cfg.size, "size", "0", "Argument size in bytes (IEC suffixes accepted).")
	cmd.MarkFlagRequired("type")
	return cmd
}

func runEncodeCmd(cfg encodeCfg) error {
	log := config.GetLogger()

	dir, err := parseDirection(cfg.dir)
	if err != nil {
		return err
	}
	typ, err := parseTypeByte(cfg.typ)
	if err != nil {
		return err
	}
	size, err := parseSize(cfg.size)
	if err != nil {
		return err
	}

	code := ioctl.IOC(dir, typ, cfg.nr, size).Code()
	log.Debug("assembled request code",
		zap.String("dir", cfg.dir),
		zap.Uint8("type", typ),
		zap.Uint8("nr", cfg.nr),
		zap.Uint64("size", uint64(size)),
		zap.Uint32("code", code),
	)

	if viper.GetBool(config.RawKey) {
		fmt.Printf("%#08x\n", code)
		return nil
	}
	tbl := newTable()
	tbl.AppendHeader(table.Row{"direction", "type", "nr", "size", "code"})
	tbl.AppendRow(table.Row{
		cfg.dir,
		fmt.Sprintf("%#02x", typ),
		cfg.nr,
		unitconv.FormatPrefix(float64(size), unitconv.IEC, 0),
		fmt.Sprintf("%#08x", code),
	})
	tbl.Render()
	return nil
}

func parseDirection(s string) (ioctl.Direction, error) {
	switch s {
	case "none", "":
		return ioctl.None, nil
	case "read", "r":
		return ioctl.Read, nil
	case "write", "w":
		return ioctl.Write, nil
	case "rw", "wr", "readwrite":
		return ioctl.ReadWrite, nil
	}
	return 0, fmt.Errorf("invalid direction %q (expected none, read, write, or rw)", s)
}

// parseTypeByte accepts either a single driver letter ('V') or a number in
// any base strconv accepts (0x56, 86).
func parseTypeByte(s string) (uint8, error) {
	if r := []rune(s); len(r) == 1 && (r[0] < '0' || r[0] > '9') {
		if r[0] > 0xFF {
			return 0, fmt.Errorf("type character %q does not fit in a single byte", s)
		}
		return uint8(r[0]), nil
	}
	v, err := strconv.ParseUint(s, 0, 8)
	if err != nil {
		return 0, fmt.Errorf("invalid type %q (expected a single character or a number between 0 and 255)", s)
	}
	return uint8(v), nil
}

// parseSize bounds the size here so the user gets an error instead of the
// panic the library reserves for programming defects.
func parseSize(s string) (uintptr, error) {
	v, err := unitconv.ParsePrefix(s, unitconv.IEC)
	if err != nil {
		return 0, fmt.Errorf("invalid size %q: %w", s, err)
	}
	if v < 0 || v != math.Trunc(v) {
		return 0, fmt.Errorf("size must be a non-negative whole number of bytes (got %q)", s)
	}
	if v > float64(ioctl.MaxArgSize) {
		return 0, fmt.Errorf("size %s exceeds the platform maximum of %s bytes",
			unitconv.FormatPrefix(v, unitconv.IEC, 0),
			unitconv.FormatPrefix(float64(ioctl.MaxArgSize), unitconv.IEC, 0))
	}
	return uintptr(v), nil
}

// newTable returns a table writer for stdout. The stylized table is only
// used when stdout is a terminal; otherwise the output stays plain and
// space separated so it can be parsed.
func newTable() table.Writer {
	tbl := table.NewWriter()
	tbl.SetOutputMirror(os.Stdout)
	if term.IsTerminal(int(os.Stdout.Fd())) {
		tbl.SetStyle(table.StyleRounded)
	} else {
		style := table.StyleDefault
		style.Options.DrawBorder = false
		style.Options.SeparateColumns = false
		style.Options.SeparateHeader = false
		tbl.SetStyle(style)
	}
	return tbl
}
