package cmd

import (
	"bufio"
	"fmt"
	"log/slog"
	"strings"

	"github.com/audiohw/audiotree/internal/config"
	"github.com/audiohw/audiotree/internal/hal"
	"github.com/audiohw/audiotree/internal/report"
	"github.com/audiohw/audiotree/internal/walker"
	"github.com/spf13/cobra"
)

var traverseCmd = &cobra.Command{
	Use:   "traverse",
	Short: "Walk the audio object graph and print it as a tree",
	Long: `Walk the audio object graph starting at the system object and print
every visible object's class and properties as an indented tree.

Verbose object kinds (streams, controls, processes, ...) are skipped unless
their include flag is set. Failed property reads are silently skipped unless
--debug is set.`,
	RunE: runTraverse,
}

func init() {
	rootCmd.AddCommand(traverseCmd)
	f := traverseCmd.Flags()
	f.BoolP("wait", "w", false, "Wait indefinitely, re-traversing every time <ENTER> is pressed")
	f.BoolP("include-all", "a", false, "Include everything when traversing")
	f.BoolP("include-boxes", "b", false, "Include boxes when traversing")
	f.BoolP("include-clocks", "k", false, "Include clock devices when traversing")
	f.BoolP("include-streams", "s", false, "Include streams when traversing")
	f.BoolP("include-formats", "f", false, "Include available stream formats (verbose)")
	f.BoolP("include-channels", "n", false, "Include preferred channel layouts (verbose)")
	f.BoolP("include-controls", "c", false, "Include controls when traversing (verbose)")
	f.BoolP("include-plugins", "l", false, "Include plugins when traversing")
	f.BoolP("include-processes", "p", false, "Include processes when traversing")
	f.BoolP("debug", "d", false, "Show an error line for every property read that failed")
	f.BoolP("use-vpio", "v", false, "Provision a voice-processing stream first, to see the objects it adds")
	f.String("preset", "", "Apply a named preset from the presets file before individual flags")
}

// optionsFromFlags assembles the option bits: preset toggles first, then
// individual include flags, then include-all (which overrides the includes
// and clears debug), then the debug flag.
func optionsFromFlags(cmd *cobra.Command) (walker.Options, error) {
	var opts walker.Options

	preset, _ := cmd.Flags().GetString("preset")
	if preset != "" {
		presets, err := loadPresets(cmd)
		if err != nil {
			return 0, err
		}
		opts, err = presets.Options(preset)
		if err != nil {
			return 0, err
		}
	}

	includes := []struct {
		name string
		flag walker.Options
	}{
		{"include-boxes", walker.IncludeBoxes},
		{"include-clocks", walker.IncludeClocks},
		{"include-streams", walker.IncludeStreams},
		{"include-formats", walker.IncludeFormats},
		{"include-channels", walker.IncludeChannels},
		{"include-controls", walker.IncludeControls},
		{"include-plugins", walker.IncludePlugins},
		{"include-processes", walker.IncludeProcesses},
	}
	for _, inc := range includes {
		if on, _ := cmd.Flags().GetBool(inc.name); on {
			opts = opts.With(inc.flag)
		}
	}
	if all, _ := cmd.Flags().GetBool("include-all"); all {
		opts = opts.With(walker.All()).Without(walker.Debug)
	}
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		opts = opts.With(walker.Debug)
	}
	return opts, nil
}

func loadPresets(cmd *cobra.Command) (*config.Presets, error) {
	path, _ := cmd.Flags().GetString("presets")
	if path != "" {
		return config.Load(path)
	}
	return config.LoadDefault()
}

func runTraverse(cmd *cobra.Command, args []string) error {
	opts, err := optionsFromFlags(cmd)
	if err != nil {
		return err
	}
	svc, err := hal.NewService()
	if err != nil {
		return err
	}
	slog.Debug("traversal options resolved", "options", opts.String())

	if vpio, _ := cmd.Flags().GetBool("use-vpio"); vpio {
		prov, err := hal.NewProvisioner()
		if err != nil {
			return err
		}
		if err := prov.Start(); err != nil {
			return fmt.Errorf("provision voice-processing stream: %w", err)
		}
		defer prov.Stop()
	}

	w := walker.New(svc)
	if wait, _ := cmd.Flags().GetBool("wait"); wait {
		return waitLoop(cmd, w, opts)
	}
	return traverseOnce(cmd, w, opts)
}

func traverseOnce(cmd *cobra.Command, w *walker.Walker, opts walker.Options) error {
	tree := report.New()
	w.Walk(hal.SystemObject, opts, tree)
	return tree.Flush(cmd.OutOrStdout())
}

// traverseReport runs one pass and returns the rendered tree as a string.
func traverseReport(svc hal.Service, opts walker.Options) (string, error) {
	tree := report.New()
	walker.New(svc).Walk(hal.SystemObject, opts, tree)
	var b strings.Builder
	if err := tree.Flush(&b); err != nil {
		return "", err
	}
	return b.String(), nil
}

// waitLoop re-traverses on every <ENTER> until q/quit/exit or EOF. Each pass
// builds a fresh report so repeated runs reflect live hardware changes.
func waitLoop(cmd *cobra.Command, w *walker.Walker, opts walker.Options) error {
	scanner := bufio.NewScanner(cmd.InOrStdin())
	for {
		fmt.Fprintln(cmd.OutOrStdout(), "Press <ENTER> to traverse, or q/quit/exit to quit.")
		if !scanner.Scan() {
			return scanner.Err()
		}
		switch strings.TrimSpace(scanner.Text()) {
		case "q", "quit", "exit":
			return nil
		}
		if err := traverseOnce(cmd, w, opts); err != nil {
			return err
		}
	}
}
