// Command viudemo is an interactive tour of the viu components: layouts,
// form widgets and a file browser built on a table.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"os"
	"os/signal"
	"slices"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"viu"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

type flags struct {
	config      string
	logFile     string
	noAltScreen bool
}

func newRootCmd() *cobra.Command {
	var f flags
	root := &cobra.Command{
		Use:          "viudemo [dir]",
		Short:        "Interactive tour of the viu components",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := f.options()
			if err != nil {
				return err
			}
			logger, closeLog, err := f.logger()
			if err != nil {
				return err
			}
			defer closeLog()
			opts.Logger = logger

			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			d, err := newDemo(opts, dir)
			if err != nil {
				return err
			}
			return d.root.Run(cmd.Context())
		},
	}
	root.PersistentFlags().StringVar(&f.config, "config", "", "YAML options file")
	root.PersistentFlags().StringVar(&f.logFile, "log-file", "", "write debug logs to this file")
	root.Flags().BoolVar(&f.noAltScreen, "no-alt-screen", false, "draw on the main screen buffer")
	root.AddCommand(bindingsCmd(&f))
	return root
}

func (f *flags) options() (viu.Options, error) {
	opts := viu.DefaultOptions()
	if f.config != "" {
		var err error
		if opts, err = viu.LoadOptions(f.config); err != nil {
			return viu.Options{}, err
		}
	}
	if f.noAltScreen {
		opts.AltScreen = false
	}
	if opts.Title == "" {
		opts.Title = "viu demo"
	}
	return opts, nil
}

// logger opens the log file. Without one, logs are discarded since the
// terminal belongs to the UI.
func (f *flags) logger() (*slog.Logger, func(), error) {
	if f.logFile == "" {
		return slog.New(slog.DiscardHandler), func() {}, nil
	}
	file, err := os.OpenFile(f.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	h := slog.NewTextHandler(file, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(h), func() { file.Close() }, nil
}

func bindingsCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "bindings",
		Short: "Print the effective key bindings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := f.options()
			if err != nil {
				return err
			}
			m := viu.NewDictionary[viu.KeyStroke, string]()
			viu.BaselineBindings(m)
			m.Put(viu.RuneStroke('c').WithCtrl(viu.ModOn), viu.ActionQuit)
			demoBindings(m)
			if err := opts.InstallBindings(m); err != nil {
				return err
			}
			return printBindings(cmd.OutOrStdout(), m.Compile())
		},
	}
}

func printBindings(w io.Writer, inputs map[viu.KeyStroke]string) error {
	actions := slices.Sorted(maps.Values(inputs))
	for _, action := range slices.Compact(actions) {
		strokes := viu.StrokesFor(inputs, action)
		names := make([]string, len(strokes))
		for i, ks := range strokes {
			names[i] = ks.String()
		}
		if _, err := fmt.Fprintf(w, "%-16s %s\n", action, strings.Join(names, ", ")); err != nil {
			return err
		}
	}
	return nil
}
