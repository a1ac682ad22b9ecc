//go:build linux

// Command injectord wires a single literal Preset to a running Injector
// for one DeviceGroup, exercising spec.md's whole injection pipeline
// end to end: device grab, handler graph assembly, and uinput output.
//
// It is a demo binary, not the privileged daemon of spec.md §6.2: it
// takes its device paths from the command line, runs exactly one
// DeviceGroup, and has no IPC surface of its own. Replaces the
// teacher's cmd/inputdevices, which only enumerated and printed device
// capabilities.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/inputcore/remapper/event"
	"github.com/inputcore/remapper/injector"
	"github.com/inputcore/remapper/linux/input"
	"github.com/inputcore/remapper/output"
	"github.com/inputcore/remapper/preset"
	"github.com/inputcore/remapper/symbols"
	"github.com/inputcore/remapper/telemetry"
)

// demoPreset returns a small, self-documenting set of mappings
// exercising a plain key remap and a two-key combination that runs a
// macro, so a single run of this binary demonstrates the key,
// combination and macro layers of the pipeline without needing a
// config-file loader (out of scope per spec.md §1). It has no analog
// mapping.
func demoPreset() preset.Preset {
	return preset.Preset{
		MacroKeystrokeSleepMs: 10,
		Mappings: []preset.Mapping{
			{
				Combination:  event.NewCombination(event.New(input.EV_KEY, input.KEY_CAPSLOCK, 1)),
				TargetUinput: output.Keyboard,
				Symbol:       "KEY_ESC",
			},
			{
				Combination: event.NewCombination(
					event.New(input.EV_KEY, input.KEY_LEFTCTRL, 1),
					event.New(input.EV_KEY, input.KEY_Q, 1),
				),
				TargetUinput: output.Keyboard,
				Symbol:       "k(KEY_LEFTALT)",
			},
		},
	}
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "injectord: "+format+"\n", args...)
	os.Exit(1)
}

func main() {
	var (
		logger = telemetry.Default()
		paths  = os.Args[1:]
	)

	if len(paths) == 0 {
		fail("usage: injectord /dev/input/eventN [...]")
	}

	var group = injector.DeviceGroup{
		Key:   "demo",
		Name:  "injectord demo group",
		Paths: paths,
		Types: []injector.DeviceType{injector.DeviceKeyboard},
	}

	var inj = injector.New(group, demoPreset(), symbols.Capture(), logger)

	var ctx, cancel = context.WithCancel(context.Background())
	defer cancel()

	var sig = make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sig
		logger.Info().Msg("signal received, stopping")
		inj.Close()
	}()

	go func() {
		for report := range inj.Reports() {
			var ev = logger.Info()
			if report.Err != nil {
				ev = logger.Error().Err(report.Err)
			}

			ev.Str("state", report.State.String()).Msg("injector state change")
		}
	}()

	if err := inj.Run(ctx); err != nil {
		fail("%v", err)
	}
}
