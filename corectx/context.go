// Package corectx implements the per-injector Context of spec.md §4.9:
// the state an assembled handler graph reaches back into — the output
// registry, per-source forward outputs, the shared macro variable
// store, and the set of listeners macros use to react to arbitrary
// input. Named corectx rather than context to avoid shadowing the
// standard library package, which every blocking operation in this
// repository also threads a context.Context from.
package corectx

import (
	"sync"

	"github.com/inputcore/remapper/event"
	"github.com/inputcore/remapper/handler"
	"github.com/inputcore/remapper/macro"
	"github.com/inputcore/remapper/output"
	"github.com/inputcore/remapper/preset"
)

// Listener is notified of every event that reaches the handler graph,
// claimed or not, so macros can react to arbitrary input (e.g. a macro
// that waits for any keypress). Grounded on
// original_source/keymapper/injection/context.py's notify_callbacks.
type Listener func(ev event.InputEvent, source string)

// Context is the per-injector state visible to handlers and readers,
// spec.md §4.9. Created at injector startup, torn down at stop.
type Context struct {
	Preset preset.Preset

	Outputs *output.Registry

	Variables *macro.Store

	mu             sync.RWMutex
	handlers       map[typeCode][]handler.Handler
	forwardOutputs map[string]string
	macroListeners []Listener
}

type typeCode struct {
	Type uint16
	Code uint16
}

// New returns an empty Context bound to p, writing through outputs and
// sharing variables across every macro this injector runs.
func New(p preset.Preset, outputs *output.Registry, variables *macro.Store) *Context {
	return &Context{
		Preset:         p,
		Outputs:        outputs,
		Variables:      variables,
		handlers:       make(map[typeCode][]handler.Handler),
		forwardOutputs: make(map[string]string),
	}
}

// SetHandlers installs the ordered handler list for (evType, code), as
// produced by the graph builder.
func (c *Context) SetHandlers(evType, code uint16, handlers []handler.Handler) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.handlers[typeCode{evType, code}] = handlers
}

// HandlersFor returns the ordered handler list bound to (evType, code),
// or nil if nothing maps it.
func (c *Context) HandlersFor(evType, code uint16) []handler.Handler {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.handlers[typeCode{evType, code}]
}

// SetForwardOutput registers the forward-output target name a reader
// created for sourcePath.
func (c *Context) SetForwardOutput(sourcePath, target string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.forwardOutputs[sourcePath] = target
}

// ForwardOutput returns the forward-output target for sourcePath.
func (c *Context) ForwardOutput(sourcePath string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	target, ok := c.forwardOutputs[sourcePath]

	return target, ok
}

// AddMacroListener registers l to be notified of every event that
// reaches the handler graph.
func (c *Context) AddMacroListener(l Listener) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.macroListeners = append(c.macroListeners, l)
}

// NotifyListeners fans ev out to every registered macro listener.
func (c *Context) NotifyListeners(ev event.InputEvent, source string) {
	c.mu.RLock()
	listeners := append([]Listener(nil), c.macroListeners...)
	c.mu.RUnlock()

	for _, l := range listeners {
		l(ev, source)
	}
}

// Reset resets every handler currently registered, releasing held
// outputs and recentering axes, per spec.md §5's shutdown sequence.
func (c *Context) Reset() {
	c.mu.RLock()
	defer c.mu.RUnlock()

	seen := make(map[handler.Handler]struct{})

	for _, list := range c.handlers {
		for _, h := range list {
			if _, done := seen[h]; done {
				continue
			}

			seen[h] = struct{}{}
			h.Reset()
		}
	}
}
