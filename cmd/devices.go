package cmd

import (
	"fmt"
	"strings"

	"github.com/audiohw/audiotree/internal/hal"
	"github.com/audiohw/audiotree/internal/walker"
	"github.com/spf13/cobra"
)

var devicesCmd = &cobra.Command{
	Use:   "devices",
	Short: "List audio devices, one line per device",
	Long: `List every audio device known to the system with its name, UID,
transport type, stream counts per direction and whether it is the default
input or output device.`,
	RunE: runDevices,
}

func init() {
	rootCmd.AddCommand(devicesCmd)
	devicesCmd.Flags().Bool("inputs", false, "Only list devices with input streams")
	devicesCmd.Flags().Bool("outputs", false, "Only list devices with output streams")
}

func runDevices(cmd *cobra.Command, args []string) error {
	svc, err := hal.NewService()
	if err != nil {
		return err
	}

	devs, st := hal.GetListProperty[hal.ObjectID](svc, hal.SystemObject, hal.SelHWDevices)
	if !st.OK() {
		return fmt.Errorf("enumerate devices: status %s", st)
	}
	defaultIn, _ := hal.GetProperty[hal.ObjectID](svc, hal.SystemObject, hal.SelHWDefaultInputDevice)
	defaultOut, _ := hal.GetProperty[hal.ObjectID](svc, hal.SystemObject, hal.SelHWDefaultOutputDevice)

	inputsOnly, _ := cmd.Flags().GetBool("inputs")
	outputsOnly, _ := cmd.Flags().GetBool("outputs")

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Enumerated %d devices:\n", len(devs))
	for _, dev := range devs {
		row := describeDevice(svc, dev, defaultIn, defaultOut)
		if inputsOnly && row.inStreams == 0 {
			continue
		}
		if outputsOnly && row.outStreams == 0 {
			continue
		}
		fmt.Fprintln(out, row.String())
	}
	return nil
}

type deviceRow struct {
	id         hal.ObjectID
	name       string
	uid        string
	transport  string
	inStreams  int
	outStreams int
	defaultIn  bool
	defaultOut bool
}

func describeDevice(svc hal.Service, dev, defaultIn, defaultOut hal.ObjectID) deviceRow {
	row := deviceRow{
		id:         dev,
		defaultIn:  dev == defaultIn,
		defaultOut: dev == defaultOut,
	}
	row.name, _ = hal.GetStringProperty(svc, dev, hal.SelName)
	row.uid, _ = hal.GetStringProperty(svc, dev, hal.SelDevDeviceUID)
	if transport, st := hal.GetProperty[uint32](svc, dev, hal.SelDevTransportType); st.OK() {
		row.transport = walker.TransportTypeName(transport)
	}
	if in, st := hal.GetListPropertyScoped[hal.ObjectID](svc, dev, hal.SelDevStreams, hal.ScopeInput); st.OK() {
		row.inStreams = len(in)
	}
	if out, st := hal.GetListPropertyScoped[hal.ObjectID](svc, dev, hal.SelDevStreams, hal.ScopeOutput); st.OK() {
		row.outStreams = len(out)
	}
	return row
}

func (r deviceRow) String() string {
	var marks []string
	if r.defaultIn {
		marks = append(marks, "default input")
	}
	if r.defaultOut {
		marks = append(marks, "default output")
	}
	mark := ""
	if len(marks) > 0 {
		mark = " [" + strings.Join(marks, ", ") + "]"
	}
	transport := r.transport
	if transport == "" {
		transport = "?"
	}
	return fmt.Sprintf("  id %d: %q (in: %d, out: %d, transport: %s, uid: %q)%s",
		r.id, r.name, r.inStreams, r.outStreams, transport, r.uid, mark)
}
