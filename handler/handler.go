// Package handler implements the mapping handler protocol (spec.md
// §4.5): the tree of event transformers that turn one source event
// into zero or more writes on a virtual output.
//
// Grounded on the InputEventHandler/MappingHandler protocol in
// inputremapper/injection/mapping_handlers/mapping_handler.py (wiring
// introspection: needs_wrapping/wrap_with/needs_ranking/rank_by/
// set_sub_handler) and on each concrete handler file in that package
// for its notify() contract.
package handler

import (
	"github.com/inputcore/remapper/event"
	"github.com/inputcore/remapper/output"
)

// Handler is the protocol every node in a handler graph implements.
type Handler interface {
	// Notify processes one event arriving from source (a device path)
	// or from an upstream handler. forward is the registry handlers
	// write synthesized output through. suppress means "track state
	// only, do not produce output." Returns whether this handler
	// claimed the event.
	Notify(ev event.InputEvent, source string, forward *output.Registry, suppress bool) (bool, error)

	// Reset returns the handler to neutral: releases held outputs,
	// recenters axes, terminates background loops. Idempotent.
	Reset()
}

// Kind names a handler variant a wrap spec asks the graph builder to
// instantiate, mirroring the original's HandlerEnums.
type Kind int

const (
	KindAbsToBtn Kind = iota
	KindRelToBtn
	KindMacro
	KindKey
	KindBtnToRel
	KindRelToRel
	KindAbsToRel
	KindBtnToAbs
	KindRelToAbs
	KindAbsToAbs
	KindCombination
	KindHierarchy
	KindAxisSwitch
	KindDisable
)

// WrapSpec is one entry of wrap_with(): the sub-combination to bind
// the new wrapper to, and which kind of wrapper to build.
type WrapSpec struct {
	Combination event.InputCombination
	Kind        Kind
}

// Wiring is implemented by handlers that participate in graph
// assembly beyond plain notify/reset: wrapping and ranking.
type Wiring interface {
	// NeedsWrapping reports whether WrapSpecs returns anything.
	NeedsWrapping() bool

	// WrapSpecs lists the wrapper handlers that must sit between this
	// handler and the source, keyed by the sub-combination they bind.
	WrapSpecs() []WrapSpec

	// NeedsRanking reports whether this handler must be grouped with
	// siblings sharing the same (type, code) under a HierarchyHandler.
	NeedsRanking() bool

	// RankBy returns the combination used to order this handler
	// against siblings under the same (type, code).
	RankBy() event.InputCombination

	// SetSubHandler gives this handler the handler to forward claimed
	// events to.
	SetSubHandler(sub Handler)
}

// base provides the no-op Wiring defaults most handlers need; leaf and
// wrapper handlers embed it and override only what they use.
type base struct{}

func (base) NeedsWrapping() bool            { return false }
func (base) WrapSpecs() []WrapSpec          { return nil }
func (base) NeedsRanking() bool             { return false }
func (base) RankBy() event.InputCombination { return event.InputCombination{} }
func (base) SetSubHandler(sub Handler)      {}
