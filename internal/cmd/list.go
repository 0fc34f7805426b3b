package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"

	"golang.org/x/term"

	"github.com/Alia5/socd/internal/evdevio"
)

// List prints the available input devices.
type List struct {
	DeviceMatch string `help:"Case-insensitive substring of the input device name" default:"keyboard" env:"SOCD_DEVICE_MATCH"`
	SinkName    string `help:"Name of the virtual output device" default:"virtual-keyboard" env:"SOCD_SINK_NAME"`
}

func (l *List) Run(logger *slog.Logger) error {
	devs, err := evdevio.ListDevices()
	if err != nil {
		return err
	}
	if len(devs) == 0 {
		logger.Warn("No input devices found (may need root or membership in the input group)")
		return nil
	}
	return l.print(os.Stdout, devs, term.IsTerminal(int(os.Stdout.Fd())))
}

// print writes one line per device, marking the one "run" would pick.
// Output is aligned for terminals and tab-separated otherwise.
func (l *List) print(w io.Writer, devs []evdevio.DeviceInfo, tty bool) error {
	selected, err := evdevio.SelectDevice(devs, l.DeviceMatch, l.SinkName)
	if err != nil {
		selected = evdevio.DeviceInfo{}
	}

	out := w
	var tw *tabwriter.Writer
	if tty {
		tw = tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		out = tw
		fmt.Fprintln(out, "\tPATH\tNAME")
	}
	for _, d := range devs {
		mark := ""
		if d.Path == selected.Path {
			mark = "*"
		}
		fmt.Fprintf(out, "%s\t%s\t%s\n", mark, d.Path, d.Name)
	}
	if tw != nil {
		return tw.Flush()
	}
	return nil
}
