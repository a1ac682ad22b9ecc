package injector

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/inputcore/remapper/corectx"
	"github.com/inputcore/remapper/graph"
	"github.com/inputcore/remapper/linux/input"
	"github.com/inputcore/remapper/macro"
	"github.com/inputcore/remapper/output"
	"github.com/inputcore/remapper/preset"
	"github.com/inputcore/remapper/reader"
	"github.com/inputcore/remapper/symbols"
	"github.com/inputcore/remapper/telemetry"
)

// grabAttempts/grabDelay implement spec.md §4.8 step 3 and §7's grab
// failure handling: retry up to 4 attempts spaced ~0.5s apart before
// giving up on a source.
const (
	grabAttempts = 4
	grabDelay    = 500 * time.Millisecond
)

// Injector owns everything spec.md §4.8 assigns to one DeviceGroup: the
// output registry, the macro variable store, the Context, one Reader
// per device path, and the state machine reported over its control
// channel.
type Injector struct {
	group  DeviceGroup
	preset preset.Preset
	table  *symbols.Table
	logger zerolog.Logger

	registry  *output.Registry
	variables *macro.Store
	ctx       *corectx.Context

	commands chan Command
	reports  chan Report

	mu    sync.Mutex
	state State

	devices map[string]*input.Device
	readers []*reader.Reader

	numlockWasOn map[string]bool
}

// New returns an Injector for group, ready to inject p once Run is
// called. table is the process-wide symbol snapshot (spec.md §4.2);
// logger defaults to a no-op logger if the zero value is passed.
func New(group DeviceGroup, p preset.Preset, table *symbols.Table, logger zerolog.Logger) *Injector {
	var (
		registry  = output.NewRegistry()
		variables = macro.NewStore()
	)

	return &Injector{
		group:        group,
		preset:       p,
		table:        table,
		logger:       logger.With().Str("group", group.Key).Logger(),
		registry:     registry,
		variables:    variables,
		ctx:          corectx.New(p, registry, variables),
		commands:     make(chan Command, 1),
		reports:      make(chan Report, 8),
		devices:      make(map[string]*input.Device),
		numlockWasOn: make(map[string]bool),
		state:        StateUnknown,
	}
}

// Reports returns the channel the Injector posts lifecycle frames to,
// spec.md §6.1.
func (inj *Injector) Reports() <-chan Report {
	return inj.reports
}

// Close sends CmdClose on the injector's command channel, asking it to
// tear down. Safe to call once; Run returns after teardown completes.
func (inj *Injector) Close() {
	select {
	case inj.commands <- CmdClose:
	default:
	}
}

// State returns the injector's current lifecycle state.
func (inj *Injector) State() State {
	inj.mu.Lock()
	defer inj.mu.Unlock()

	return inj.state
}

func (inj *Injector) setState(s State, err error) {
	inj.mu.Lock()
	inj.state = s
	inj.mu.Unlock()

	inj.reports <- Report{State: s, Err: err}
}

// Run drives the injector's full lifecycle: build outputs, grab
// sources, run readers until CmdClose or an unrecoverable failure, then
// tear down. It returns the terminal state's error, if any. Intended to
// be called from its own goroutine (or, via cmd/injectord, its own OS
// process) by the supervising code.
func (inj *Injector) Run(parent context.Context) error {
	var (
		runCtx, cancel = context.WithCancel(parent)
		err            error
	)

	defer cancel()

	inj.setState(StateStarting, nil)

	if err = inj.group.Validate(); err != nil {
		inj.setState(StateFailed, err)

		return err
	}

	if err = inj.registerOutputs(); err != nil {
		inj.setState(StateFailed, err)

		return err
	}

	if !inj.startReaders() {
		inj.teardown()
		inj.setState(StateNoGrab, nil)

		return nil
	}

	inj.buildGraph()
	inj.restoreNumlock()

	inj.setState(StateRunning, nil)

	err = inj.runReaders(runCtx)

	inj.teardown()

	if err != nil {
		inj.setState(StateFailed, err)

		return err
	}

	inj.setState(StateStopped, nil)

	return nil
}

// runReaders runs every reader concurrently until ctx is cancelled (a
// CmdClose arrived) or every reader has exited on its own, per spec.md
// §4.8's shutdown/failure rules: the injector stays RUNNING as long as
// any reader is live, and transitions to FAILED only once all of them
// have exited.
func (inj *Injector) runReaders(ctx context.Context) error {
	var (
		readerCtx, cancelReaders = context.WithCancel(ctx)
		wg                       sync.WaitGroup
		mu                       sync.Mutex
		live                     = len(inj.readers)
		firstErr                 error
	)

	defer cancelReaders()

	if live == 0 {
		return nil
	}

	for _, r := range inj.readers {
		wg.Add(1)

		go func(r *reader.Reader) {
			defer wg.Done()

			var runErr = r.Run(readerCtx)

			mu.Lock()
			live--

			if runErr != nil && firstErr == nil {
				firstErr = runErr
			}

			var remaining = live

			mu.Unlock()

			if runErr != nil {
				inj.logger.Error().Err(runErr).Msg("reader exited unexpectedly")
			}

			if remaining == 0 {
				cancelReaders()
			}
		}(r)
	}

	go func() {
		<-ctx.Done()
		cancelReaders()
	}()

	select {
	case cmd := <-inj.commands:
		if cmd == CmdClose {
			cancelReaders()
		}
	case <-readerCtx.Done():
	}

	wg.Wait()

	if ctx.Err() != nil {
		return nil
	}

	mu.Lock()
	defer mu.Unlock()

	if live == 0 {
		return firstErr
	}

	return nil
}

// registerOutputs provisions every main output a mapping in the preset
// targets (plus the three well-known names, always available), with
// capabilities the union of spec.md §4.8 step 2: the template baseline
// plus every key any mapping or macro might emit toward that target.
func (inj *Injector) registerOutputs() error {
	var (
		targets = map[string]struct{}{
			output.Keyboard: {},
			output.Mouse:    {},
			output.Gamepad:  {},
		}
		target string
	)

	for _, m := range inj.preset.Mappings {
		targets[m.TargetUinput] = struct{}{}
	}

	var keyCaps = computeKeyCapabilities(inj.preset, inj.table, inj.variables, inj.logger)

	for target = range targets {
		var (
			codes = keyCaps[target]
			extra = make([]uint16, 0, len(codes))
			code  uint16
		)

		for code = range codes {
			extra = append(extra, code)
		}

		if err := inj.registry.Register(target, templateFor(target), extra); err != nil {
			return fmt.Errorf("injector.Injector.registerOutputs(%q): %w", target, err)
		}
	}

	return nil
}

// templateFor picks the capability-template baseline for a target name,
// per spec.md §6.4's well-known output kinds; anything else defaults to
// the keyboard template, the least capability-laden baseline.
func templateFor(target string) output.Template {
	switch target {
	case output.Mouse:
		return output.MouseTemplate()
	case output.Gamepad:
		return output.GamepadTemplate()
	default:
		return output.KeyboardTemplate()
	}
}

// looksLikeMacro is the same cheap syntactic probe preset/graph each
// keep their own copy of: a parenthesis marks macro source rather than
// a plain key name.
func looksLikeMacro(symbol string) bool {
	return strings.ContainsRune(symbol, '(')
}

// computeKeyCapabilities unions every EV_KEY code a mapping's output
// (direct code, resolved symbol, or compiled macro) might write to its
// target, per spec.md §4.8 step 2 and §4.4's "get_capabilities() ...
// so the virtual output can be provisioned before injection." Macros
// are compiled here purely to probe their capability set; the handler
// graph compiles its own instance later, since a macro's runtime
// lifetime is tied to its handler, not to this provisioning pass.
func computeKeyCapabilities(p preset.Preset, table *symbols.Table, variables *macro.Store, logger zerolog.Logger) map[string]map[uint16]struct{} {
	var caps = make(map[string]map[uint16]struct{})

	add := func(target string, code uint16) {
		if caps[target] == nil {
			caps[target] = make(map[uint16]struct{})
		}

		caps[target][code] = struct{}{}
	}

	for _, m := range p.Mappings {
		switch {
		case m.Symbol != "" && looksLikeMacro(m.Symbol):
			mac, err := macro.Parse(m.Symbol, variables, table, int(p.MacroKeystrokeSleepMs))
			if err != nil {
				logger.Debug().Err(err).Str("macro", m.Symbol).Msg("skipping capability probe for unparsable macro")

				continue
			}

			for code := range mac.GetCapabilities()[input.EV_KEY] {
				add(m.TargetUinput, code)
			}

		case m.Symbol != "":
			code, err := table.Lookup(m.Symbol)
			if err == nil {
				add(m.TargetUinput, code)
			}

		case m.OutputType == input.EV_KEY:
			add(m.TargetUinput, m.OutputCode)
		}
	}

	return caps
}

// startReaders opens every device path in the group, has each Reader
// decide whether to grab (retrying a grab up to grabAttempts times per
// spec.md §7), and reports whether startup should proceed to RUNNING.
// It fails toward NO_GRAB only when at least one source wanted to grab
// and none of them managed to: a group whose paths legitimately need no
// grab (an empty preset, or no capability overlap) runs fine ungrabbed,
// purely forwarding. A path that fails to open outright is logged and
// skipped; the rest of the group still starts.
func (inj *Injector) startReaders() bool {
	var (
		isGamepad  = inj.group.HasType(DeviceGamepad)
		wantedGrab bool
		gotGrab    bool
	)

	for _, path := range inj.group.Paths {
		dev, err := input.NewDevice(path)
		if err != nil {
			inj.logger.Error().Err(err).Str("path", path).Msg("failed to open device")

			continue
		}

		inj.devices[path] = dev
		inj.recordNumlock(dev, path)

		want, err := reader.ShouldGrab(dev, inj.preset, isGamepad)
		if err != nil {
			inj.logger.Error().Err(err).Str("path", path).Msg("failed to classify device")
		} else if want {
			wantedGrab = true
		}

		r := reader.New(dev, inj.ctx, inj.registry, inj.logger)

		if err := startReaderWithRetry(r, inj.preset, isGamepad, inj.logger); err != nil {
			inj.logger.Error().Err(err).Str("path", path).Msg("reader start failed")
			_ = dev.Close()
			delete(inj.devices, path)

			continue
		}

		inj.readers = append(inj.readers, r)

		if r.Grabbed() {
			gotGrab = true
		}
	}

	return !(wantedGrab && !gotGrab)
}

// startReaderWithRetry calls r.Start, retrying up to grabAttempts times
// spaced grabDelay apart on failure, per spec.md §7's grab-failure
// handling.
func startReaderWithRetry(r *reader.Reader, p preset.Preset, isGamepad bool, logger zerolog.Logger) error {
	var err error

	for attempt := 1; attempt <= grabAttempts; attempt++ {
		if err = r.Start(p, isGamepad); err == nil {
			return nil
		}

		logger.Warn().Err(err).Int("attempt", attempt).Msg("grab attempt failed")

		if attempt < grabAttempts {
			time.Sleep(grabDelay)
		}
	}

	return err
}

// recordNumlock snapshots whether NumLock's LED is lit before grabbing,
// per spec.md §9/SPEC_FULL.md's numlock-preservation note: grabbing can
// reset it, so it is restored afterward.
func (inj *Injector) recordNumlock(dev *input.Device, path string) {
	leds, err := dev.LEDs()
	if err != nil {
		return
	}

	for _, led := range leds {
		if led == input.LED_NUML {
			inj.numlockWasOn[path] = true

			return
		}
	}
}

// restoreNumlock replays a synthetic NumLock press/release on each
// source's forward output for any path that had it lit before grabbing,
// so whatever downstream tracks NumLock state from KEY_NUMLOCK events
// observes the same state it would have without the grab.
func (inj *Injector) restoreNumlock() {
	for path, wasOn := range inj.numlockWasOn {
		if !wasOn {
			continue
		}

		target, ok := inj.ctx.ForwardOutput(path)
		if !ok {
			continue
		}

		if err := inj.registry.Write(target, input.EV_KEY, input.KEY_NUMLOCK, 1); err != nil {
			inj.logger.Warn().Err(err).Str("path", path).Msg("failed to restore numlock")

			continue
		}

		_ = inj.registry.Write(target, input.EV_KEY, input.KEY_NUMLOCK, 0)
	}
}

// buildGraph assembles the handler graph for the preset and installs it
// into the Context, per spec.md §4.6, once every source's absinfo is
// available to resolve against.
func (inj *Injector) buildGraph() {
	graph.Build(inj.ctx, inj.preset, graph.Deps{
		Registry:         inj.registry,
		Table:            inj.table,
		Variables:        inj.variables,
		SourceAbsInfo:    inj.sourceAbsInfo,
		TargetAbsInfo:    inj.registry.AbsInfo,
		OutputKeyCapable: inj.outputKeyCapable,
		Logger:           inj.logger,
	})
}

func (inj *Injector) sourceAbsInfo(source string, code uint16) (input.AbsInfo, error) {
	dev, ok := inj.devices[source]
	if !ok {
		return input.AbsInfo{}, fmt.Errorf("injector.Injector.sourceAbsInfo: unknown source %q", source)
	}

	return dev.AbsInfo(code)
}

func (inj *Injector) outputKeyCapable(target string, code uint16) bool {
	return inj.registry.HasCapability(target, input.EV_KEY, code)
}

// teardown implements spec.md §4.7/§4.8's shutdown sequence: reset
// every handler (releasing held keys, recentering axes), release every
// grab and close every source, reset and close every virtual output.
func (inj *Injector) teardown() {
	inj.ctx.Reset()

	for _, r := range inj.readers {
		if err := r.Stop(); err != nil {
			inj.logger.Error().Err(err).Msg("reader stop failed")
		}
	}

	inj.registry.ResetAll()

	if err := inj.registry.Close(); err != nil {
		inj.logger.Error().Err(err).Msg("registry close failed")
	}
}

// Device resolves a source path back to its opened Device, for callers
// that want direct absinfo introspection.
func (inj *Injector) Device(path string) (*input.Device, bool) {
	dev, ok := inj.devices[path]

	return dev, ok
}

// DefaultLogger returns a no-op logger. New does not call it: an
// Injector logs through whatever logger New is given.
func DefaultLogger() zerolog.Logger {
	return telemetry.Nop()
}
