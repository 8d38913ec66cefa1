//go:build !tinygo

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"neoportal/app"
	"neoportal/hal"
	"neoportal/internal/buildinfo"
	"neoportal/ui/layout"

	"github.com/spf13/cobra"
)

var (
	headless  hal.HeadlessConfig
	hostCfg   hal.HostConfig
	taps      []string
	layoutArg string
	poll      time.Duration

	rootCmd = &cobra.Command{
		Use:          "neoportal",
		Short:        "PyPortal NeoPixel and sensor touchscreen controller",
		Long:         `neoportal - a two-view touchscreen controller for the Adafruit PyPortal, emulated on the desktop`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         run,
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("neoportal\n\n%s", buildinfo.Long())
		},
	}
)

func main() {
	f := rootCmd.Flags()
	f.BoolVar(&headless.Enabled, "headless", false, "Run without a window.")
	f.IntVar(&headless.Hz, "hz", 60, "Tick rate in headless mode.")
	f.Uint64Var(&headless.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	f.StringArrayVar(&taps, "tap", nil, "Scripted touch in headless mode as x,y[,hold]; repeatable.")
	f.StringVar(&hostCfg.Board, "board", hal.BoardPyPortal, "Emulated board: pyportal or pyportal_titano.")
	f.IntVar(&hostCfg.Rotation, "rotation", 0, "Screen rotation: 0 (landscape) or 270 (portrait).")
	f.StringVar(&layoutArg, "layout", "", "Layout TOML file (default: $XDG_CONFIG_HOME/neoportal/layout.toml if present).")
	f.BoolVar(&hostCfg.NoADT, "no-adt", false, "Emulate a board without the ADT7410 temperature sensor.")
	f.Float32Var(&hostCfg.Celsius, "celsius", 22.5, "Emulated ADT7410 reading in degrees Celsius.")
	f.StringVar(&hostCfg.LogLevel, "log-level", "info", "Log level.")
	f.BoolVar(&hostCfg.LogJSON, "log-json", false, "Log as JSON.")
	f.DurationVar(&poll, "poll", 5*time.Millisecond, "Touch poll interval while waiting for release.")
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadLayout() (*layout.Table, error) {
	p := layoutArg
	if p == "" {
		found, err := layout.FindConfig()
		if err != nil {
			return nil, err
		}
		p = found
	}
	if p == "" {
		return nil, nil
	}
	tbl, err := layout.LoadFile(p)
	if err != nil {
		return nil, err
	}
	// The file decides the emulated screen.
	hostCfg.Board = tbl.Board
	hostCfg.Rotation = tbl.Rotation
	return &tbl, nil
}

func run(cmd *cobra.Command, _ []string) error {
	for _, s := range taps {
		t, err := hal.ParseTap(s)
		if err != nil {
			return err
		}
		headless.Taps = append(headless.Taps, t)
	}
	tbl, err := loadLayout()
	if err != nil {
		return err
	}

	cfg := app.Config{Layout: tbl, PollInterval: poll, TickInterval: 10 * time.Millisecond}
	newApp := func(h hal.HAL) func() error {
		return app.NewWithConfig(h, cfg)
	}

	if headless.Enabled {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()
		if err := hal.RunHeadless(ctx, hostCfg, newApp, headless); err != nil {
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		}
		return nil
	}
	return hal.RunWindow(hostCfg, newApp)
}
