package macro

import (
	"context"
	"fmt"
	"time"

	"github.com/inputcore/remapper/linux/input"
	"github.com/inputcore/remapper/symbols"
)

// Handler writes one synthesized event to whatever output a macro has
// been bound to. It is supplied at Run time, not at compile time, so
// the same compiled macro can be reused across invocations.
type Handler func(evType, code uint16, value int32) error

// task is one compiled step of a macro. It receives the context the
// macro is running under (for cancellation) and the handler to write
// events through.
type task func(ctx context.Context, handler Handler) error

// Macro is a compiled, runnable sequence of tasks, as produced by
// [Parse]. Calling one of its builder methods (Key, Event, Wait, ...)
// during parsing appends a task and, where relevant, records a required
// capability; none of it writes an event until Run executes the
// resulting task list.
type Macro struct {
	source string
	store  *Store
	table  *symbols.Table

	tasks       []task
	childMacros []*Macro

	keys map[uint16]map[uint16]struct{}

	holding          chan struct{}
	keystrokeSleepMs int
	running          bool
}

// New returns an empty Macro ready to be populated by a parser. source
// is the original text, kept only for error messages and logging.
func New(source string, store *Store, table *symbols.Table, keystrokeSleepMs int) *Macro {
	return &Macro{
		source:           source,
		store:            store,
		table:            table,
		keys:             make(map[uint16]map[uint16]struct{}),
		holding:          make(chan struct{}, 1),
		keystrokeSleepMs: keystrokeSleepMs,
	}
}

// addCapability records that running this macro (ignoring its
// children) may emit (evType, code).
func (m *Macro) addCapability(evType, code uint16) {
	if m.keys[evType] == nil {
		m.keys[evType] = make(map[uint16]struct{})
	}

	m.keys[evType][code] = struct{}{}
}

// GetCapabilities resolves every (type, code) pair this macro and all
// of its children may emit, per spec.md §4.4's capability-union rule.
func (m *Macro) GetCapabilities() map[uint16]map[uint16]struct{} {
	var (
		out    = make(map[uint16]map[uint16]struct{})
		child  *Macro
		evType uint16
		codes  map[uint16]struct{}
		code   uint16
	)

	for evType, codes = range m.keys {
		out[evType] = make(map[uint16]struct{}, len(codes))

		for code = range codes {
			out[evType][code] = struct{}{}
		}
	}

	for _, child = range m.childMacros {
		var childCaps = child.GetCapabilities()

		for evType, codes = range childCaps {
			if out[evType] == nil {
				out[evType] = make(map[uint16]struct{})
			}

			for code = range codes {
				out[evType][code] = struct{}{}
			}
		}
	}

	return out
}

// IsHolding reports whether the macro is currently waiting for the
// triggering key to be released.
func (m *Macro) IsHolding() bool {
	select {
	case v, ok := <-m.holding:
		if ok {
			m.holding <- v
		}

		return ok
	default:
		return false
	}
}

// PressKey marks the macro (and its children) as held: h() blocks
// until the matching ReleaseKey.
func (m *Macro) PressKey() {
	select {
	case m.holding <- struct{}{}:
	default:
	}

	for _, child := range m.childMacros {
		child.PressKey()
	}
}

// ReleaseKey unblocks any h() waiting on this macro and its children.
func (m *Macro) ReleaseKey() {
	select {
	case <-m.holding:
	default:
	}

	for _, child := range m.childMacros {
		child.ReleaseKey()
	}
}

// Run executes every compiled task in order. Calling Run on a macro
// that is already running runs no task and returns an error.
func (m *Macro) Run(ctx context.Context, handler Handler) error {
	var (
		t   task
		err error
	)

	if m.running {
		return fmt.Errorf("macro.Run(%q): already running", m.source)
	}

	m.running = true
	defer func() { m.running = false }()

	for _, t = range m.tasks {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		err = t(ctx, handler)
		if err != nil {
			return fmt.Errorf("macro.Run(%q): %w", m.source, err)
		}
	}

	return nil
}

// keystrokePause sleeps for the configured inter-keystroke delay,
// exiting early if ctx is cancelled.
func (m *Macro) keystrokePause(ctx context.Context) error {
	var timer = time.NewTimer(time.Duration(m.keystrokeSleepMs) * time.Millisecond)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// resolveKey looks up a key name in the bound symbol table.
func (m *Macro) resolveKey(name string) (uint16, error) {
	var (
		code uint16
		err  error
	)

	code, err = m.table.Lookup(name)
	if err != nil {
		return 0, fmt.Errorf("macro: %w", err)
	}

	return code, nil
}

// Key appends a press-pause-release-pause sequence for the named key,
// per the 'k' function.
func (m *Macro) Key(name string) error {
	var (
		code uint16
		err  error
	)

	code, err = m.resolveKey(name)
	if err != nil {
		return err
	}

	m.addCapability(input.EV_KEY, code)

	m.tasks = append(m.tasks, func(ctx context.Context, handler Handler) error {
		var err error

		err = handler(input.EV_KEY, code, 1)
		if err != nil {
			return err
		}

		err = m.keystrokePause(ctx)
		if err != nil {
			return err
		}

		err = handler(input.EV_KEY, code, 0)
		if err != nil {
			return err
		}

		return m.keystrokePause(ctx)
	})

	return nil
}

// Event appends a single raw (type, code, value) write, per the 'e'
// function. Writing an EV_REL code also registers the baseline mouse
// axes, matching the original's rationale for recognizing the output
// as a mouse to the display server.
func (m *Macro) Event(evType, code uint16, value int32) error {
	m.addCapability(evType, code)

	if evType == input.EV_REL {
		m.addCapability(input.EV_REL, input.REL_X)
		m.addCapability(input.EV_REL, input.REL_Y)
		m.addCapability(input.EV_REL, input.REL_WHEEL)
	}

	m.tasks = append(m.tasks, func(ctx context.Context, handler Handler) error {
		var err error

		err = handler(evType, code, value)
		if err != nil {
			return err
		}

		return m.keystrokePause(ctx)
	})

	return nil
}

// Wait appends a sleep of sleepMs milliseconds, checked in 10ms slices
// so a held key's release can cut it short, per the 'w' function.
func (m *Macro) Wait(sleepMs int) error {
	m.tasks = append(m.tasks, func(ctx context.Context, handler Handler) error {
		var (
			slices = sleepMs / 10
			i      int
			timer  *time.Timer
		)

		for i = 0; i < slices; i++ {
			timer = time.NewTimer(10 * time.Millisecond)

			select {
			case <-ctx.Done():
				timer.Stop()

				return ctx.Err()
			case <-timer.C:
			}

			if !m.IsHolding() {
				break
			}
		}

		return nil
	})

	return nil
}

// Hold appends a block-until-released task, per the 'h' function. With
// a child macro it repeats that macro until the triggering key is
// released; with a key name it holds that key down for the duration;
// with neither it simply blocks.
func (m *Macro) Hold(child *Macro, keyName string) error {
	var (
		code uint16
		err  error
	)

	switch {
	case child != nil:
		m.childMacros = append(m.childMacros, child)

		m.tasks = append(m.tasks, func(ctx context.Context, handler Handler) error {
			for m.IsHolding() {
				if err := child.Run(ctx, handler); err != nil {
					return err
				}
			}

			return nil
		})
	case keyName != "":
		code, err = m.resolveKey(keyName)
		if err != nil {
			return err
		}

		m.addCapability(input.EV_KEY, code)

		m.tasks = append(m.tasks,
			func(ctx context.Context, handler Handler) error { return handler(input.EV_KEY, code, 1) },
			m.blockUntilReleased,
			func(ctx context.Context, handler Handler) error { return handler(input.EV_KEY, code, 0) },
		)
	default:
		m.tasks = append(m.tasks, m.blockUntilReleased)
	}

	return nil
}

// blockUntilReleased waits for ReleaseKey, or for ctx cancellation.
func (m *Macro) blockUntilReleased(ctx context.Context, _ Handler) error {
	var ticker = time.NewTicker(5 * time.Millisecond)
	defer ticker.Stop()

	for m.IsHolding() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}

	return nil
}

// Modify appends a press-modifier / run-child / release-modifier
// sequence, per the 'm' function.
func (m *Macro) Modify(modifierName string, child *Macro) error {
	var (
		code uint16
		err  error
	)

	if child == nil {
		return fmt.Errorf("macro.Modify: second parameter must be a macro")
	}

	code, err = m.resolveKey(modifierName)
	if err != nil {
		return err
	}

	m.addCapability(input.EV_KEY, code)
	m.childMacros = append(m.childMacros, child)

	m.tasks = append(m.tasks, func(ctx context.Context, handler Handler) error {
		var err error

		err = handler(input.EV_KEY, code, 1)
		if err != nil {
			return err
		}

		err = m.keystrokePause(ctx)
		if err != nil {
			return err
		}

		err = child.Run(ctx, handler)
		if err != nil {
			return err
		}

		err = m.keystrokePause(ctx)
		if err != nil {
			return err
		}

		err = handler(input.EV_KEY, code, 0)
		if err != nil {
			return err
		}

		return m.keystrokePause(ctx)
	})

	return nil
}

// Repeat appends repeats full runs of child, per the 'r' function.
func (m *Macro) Repeat(repeats int, child *Macro) error {
	if child == nil {
		return fmt.Errorf("macro.Repeat: second parameter must be a macro")
	}

	m.childMacros = append(m.childMacros, child)

	m.tasks = append(m.tasks, func(ctx context.Context, handler Handler) error {
		var i int

		for i = 0; i < repeats; i++ {
			if err := child.Run(ctx, handler); err != nil {
				return err
			}
		}

		return nil
	})

	return nil
}

// Set assigns value to variable in the shared store, per the 'set'
// function.
func (m *Macro) Set(variable, value string) error {
	m.tasks = append(m.tasks, func(ctx context.Context, handler Handler) error {
		m.store.Set(variable, value)

		return nil
	})

	return nil
}

// Ifeq runs then if variable currently equals value, else runs
// otherwise (if given), per the 'ifeq' function. The comparison is
// evaluated at task-run time against whatever the store holds then.
func (m *Macro) Ifeq(variable, value string, then, otherwise *Macro) error {
	if then == nil {
		return fmt.Errorf("macro.Ifeq: third parameter must be a macro")
	}

	m.childMacros = append(m.childMacros, then)
	if otherwise != nil {
		m.childMacros = append(m.childMacros, otherwise)
	}

	m.tasks = append(m.tasks, func(ctx context.Context, handler Handler) error {
		var (
			current string
			ok      bool
		)

		current, ok = m.store.Get(variable)

		switch {
		case ok && current == value:
			return then.Run(ctx, handler)
		case otherwise != nil:
			return otherwise.Run(ctx, handler)
		default:
			return nil
		}
	})

	return nil
}

// mouseVectors maps a direction name to the (code, sign) pair Mouse
// writes against, per the original's direction table.
var mouseVectors = map[string][2]int32{
	"up":    {int32(input.REL_Y), -1},
	"down":  {int32(input.REL_Y), 1},
	"left":  {int32(input.REL_X), -1},
	"right": {int32(input.REL_X), 1},
}

// Mouse appends a held relative-motion macro in direction at speed,
// per the 'mouse' function: shorthand for h(e(EV_REL, axis, speed)).
func (m *Macro) Mouse(direction string, speed int32) error {
	var (
		vec   [2]int32
		ok    bool
		child *Macro
	)

	vec, ok = mouseVectors[direction]
	if !ok {
		return fmt.Errorf("macro.Mouse: unknown direction %q", direction)
	}

	child = New("", m.store, m.table, m.keystrokeSleepMs)

	if err := child.Event(input.EV_REL, uint16(vec[0]), vec[1]*speed); err != nil {
		return err
	}

	return m.Hold(child, "")
}

// wheelVectors maps a direction name to the (code, sign) pair Wheel
// writes against, per the original's direction table.
var wheelVectors = map[string][2]int32{
	"up":    {int32(input.REL_WHEEL), 1},
	"down":  {int32(input.REL_WHEEL), -1},
	"left":  {int32(input.REL_HWHEEL), 1},
	"right": {int32(input.REL_HWHEEL), -1},
}

// Wheel appends a held scroll macro in direction at speed, per the
// 'wheel' function: each tick is followed by a 100/speed ms wait.
func (m *Macro) Wheel(direction string, speed int32) error {
	var (
		vec   [2]int32
		ok    bool
		child *Macro
	)

	vec, ok = wheelVectors[direction]
	if !ok {
		return fmt.Errorf("macro.Wheel: unknown direction %q", direction)
	}

	if speed == 0 {
		return fmt.Errorf("macro.Wheel: speed must be nonzero")
	}

	child = New("", m.store, m.table, m.keystrokeSleepMs)

	if err := child.Event(input.EV_REL, uint16(vec[0]), vec[1]); err != nil {
		return err
	}

	if err := child.Wait(100 / int(speed)); err != nil {
		return err
	}

	return m.Hold(child, "")
}
