// Package graph implements the handler-graph builder of spec.md §4.6:
// turning a validated Preset into the per-(type, code) handler lists a
// reader dispatches events against.
//
// Grounded on the recursive wrap_with() assembly described in spec.md
// §4.6 (itself distilled from combination_handler.py/
// axis_switch_handler.py's needs_wrapping/wrap_with protocol) and on
// the hierarchy-grouping pass in
// original_source/inputremapper/injection/mapping_handlers/mapping_parser.py
// (_create_hierarchy_handlers/_order_combinations), adapted from that
// file's simpler "every combination drawn from one preset dict" model
// to the newer wrap_with-based handler tree spec.md describes.
package graph

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/inputcore/remapper/corectx"
	"github.com/inputcore/remapper/event"
	"github.com/inputcore/remapper/handler"
	"github.com/inputcore/remapper/linux/input"
	"github.com/inputcore/remapper/macro"
	"github.com/inputcore/remapper/output"
	"github.com/inputcore/remapper/preset"
	"github.com/inputcore/remapper/symbols"
)

// Deps bundles the runtime collaborators a handler graph needs beyond
// what a Preset itself carries.
type Deps struct {
	Registry         *output.Registry
	Table            *symbols.Table
	Variables        *macro.Store
	SourceAbsInfo    handler.SourceAbsInfo
	TargetAbsInfo    func(target string, code uint16) (input.AbsInfo, error)
	OutputKeyCapable func(target string, code uint16) bool
	Logger           zerolog.Logger
}

// binding is one (type, code) a constructed handler chain must be
// reachable at, together with the ranking information the hierarchy
// pass needs if more than one mapping ends up claiming the same code.
type binding struct {
	tc        handler.TypeCode
	h         handler.Handler
	rank      bool
	rankCombo event.InputCombination
}

// Build assembles every mapping in p into handler chains and installs
// the resulting per-(type, code) lists into ctx. Invalid or
// unbuildable mappings are logged and skipped; the rest of the preset
// still assembles, per spec.md §4.6's failure-handling rule.
func Build(ctx *corectx.Context, p preset.Preset, deps Deps) {
	var byCode = make(map[handler.TypeCode][]binding)

	for i, m := range p.Mappings {
		if err := m.Validate(deps.Table, deps.OutputKeyCapable); err != nil {
			deps.Logger.Error().Int("mapping", i).Err(err).Msg("dropping invalid mapping")

			continue
		}

		bindings, err := buildMapping(m, p, deps)
		if err != nil {
			deps.Logger.Error().Int("mapping", i).Err(err).Msg("dropping mapping")

			continue
		}

		for _, b := range bindings {
			byCode[b.tc] = append(byCode[b.tc], b)
		}
	}

	for tc, cands := range byCode {
		install(ctx, tc, cands, deps.Logger)
	}
}

// install resolves the candidate handlers sharing tc into the final
// handler list registered at that (type, code), per spec.md §4.6 step
// 3: multiple rankable candidates are wrapped in a HierarchyHandler
// ordered longest-combination-first, ties broken by the index of the
// shared event (later = higher priority).
func install(ctx *corectx.Context, tc handler.TypeCode, cands []binding, logger zerolog.Logger) {
	if len(cands) == 1 {
		ctx.SetHandlers(tc.Type, tc.Code, []handler.Handler{cands[0].h})

		return
	}

	for _, c := range cands {
		if !c.rank {
			logger.Warn().Uint16("type", tc.Type).Uint16("code", tc.Code).
				Msg("multiple handlers claim this event without ranking support; keeping the first")

			ctx.SetHandlers(tc.Type, tc.Code, []handler.Handler{cands[0].h})

			return
		}
	}

	sort.SliceStable(cands, func(i, j int) bool {
		var li, lj = cands[i].rankCombo.Len(), cands[j].rankCombo.Len()
		if li != lj {
			return li > lj
		}

		return indexOfShared(cands[i].rankCombo, tc) > indexOfShared(cands[j].rankCombo, tc)
	})

	var handlers = make([]handler.Handler, len(cands))
	for i, c := range cands {
		handlers[i] = c.h
	}

	ctx.SetHandlers(tc.Type, tc.Code, []handler.Handler{handler.NewHierarchyHandler(handlers, tc)})
}

func indexOfShared(combo event.InputCombination, tc handler.TypeCode) int {
	for i, ev := range combo.Events() {
		if ev.Type == tc.Type && ev.Code == tc.Code {
			return i
		}
	}

	return -1
}

// buildMapping constructs the handler chain for one mapping and
// returns every (type, code) it must be reachable at.
func buildMapping(m preset.Mapping, p preset.Preset, deps Deps) ([]binding, error) {
	leaf, isAxis, err := buildLeaf(m, p, deps)
	if err != nil {
		return nil, fmt.Errorf("graph.buildMapping: %w", err)
	}

	if isAxis {
		return buildAxisChain(leaf.(axisHandler), m, deps)
	}

	return buildKeyLikeChain(leaf, m, deps)
}

// axisHandler is satisfied by every terminal axis handler: it behaves
// as a normal Handler but also exposes the Wiring introspection the
// builder needs to decide whether an AxisSwitchHandler is required.
type axisHandler interface {
	handler.Handler
	handler.Wiring
}

func looksLikeMacro(symbol string) bool {
	return strings.ContainsRune(symbol, '(')
}

// splitCombination separates the single analog member (if any) from
// the key-like trigger members of a combination.
func splitCombination(c event.InputCombination) (axis event.InputEvent, hasAxis bool, triggers []event.InputEvent) {
	for _, ev := range c.Events() {
		if ev.Type == input.EV_ABS || ev.Type == input.EV_REL {
			axis, hasAxis = ev, true

			continue
		}

		triggers = append(triggers, ev)
	}

	return axis, hasAxis, triggers
}

// buildLeaf instantiates the innermost handler a mapping's output
// dictates, per spec.md §4.6 step 1.
func buildLeaf(m preset.Mapping, p preset.Preset, deps Deps) (handler.Handler, bool, error) {
	switch {
	case strings.EqualFold(m.Symbol, "disable"):
		return handler.NewNullHandler(), false, nil

	case m.Symbol != "" && looksLikeMacro(m.Symbol):
		mac, err := macro.Parse(m.Symbol, deps.Variables, deps.Table, int(p.MacroKeystrokeSleepMs))
		if err != nil {
			return nil, false, fmt.Errorf("macro %q: %w", m.Symbol, err)
		}

		return handler.NewMacroHandler(m.TargetUinput, mac), false, nil

	case m.Symbol != "":
		code, err := deps.Table.Lookup(m.Symbol)
		if err != nil {
			return nil, false, fmt.Errorf("symbol %q: %w", m.Symbol, err)
		}

		return handler.NewKeyHandler(m.TargetUinput, code), false, nil

	case m.OutputType == input.EV_KEY:
		return handler.NewKeyHandler(m.TargetUinput, m.OutputCode), false, nil

	default:
		return buildAxisLeaf(m, deps)
	}
}

func buildAxisLeaf(m preset.Mapping, deps Deps) (handler.Handler, bool, error) {
	var (
		axisEv, hasAxis, _ = splitCombination(m.Combination)
	)

	if !hasAxis {
		return nil, false, fmt.Errorf("explicit (%d, %d) output requires an analog input axis", m.OutputType, m.OutputCode)
	}

	var targetAbs input.AbsInfo

	if m.OutputType == input.EV_ABS {
		var err error

		targetAbs, err = deps.TargetAbsInfo(m.TargetUinput, m.OutputCode)
		if err != nil {
			return nil, false, fmt.Errorf("target absinfo for %s/%d: %w", m.TargetUinput, m.OutputCode, err)
		}
	}

	switch {
	case m.OutputType == input.EV_ABS && axisEv.Type == input.EV_ABS:
		h := handler.NewAbsToAbsHandler(axisEv.Code, m.OutputCode, m.TargetUinput, m.Deadzone, m.Gain, m.Expo, targetAbs, deps.SourceAbsInfo, m.Combination, deps.Registry)

		return h, true, nil

	case m.OutputType == input.EV_ABS && axisEv.Type == input.EV_REL:
		h, err := handler.NewRelToAbsHandler(axisEv.Code, m.OutputCode, m.TargetUinput, m.Deadzone, m.Gain, m.Expo, m.RelXYMaxInput, targetAbs, time.Duration(m.ReleaseTimeoutMs)*time.Millisecond, m.Combination, deps.Registry)
		if err != nil {
			return nil, false, err
		}

		return h, true, nil

	case m.OutputType == input.EV_REL && axisEv.Type == input.EV_ABS:
		speeds := handler.RelOutputSpeeds{RelRate: m.RelRate, RelSpeed: m.RelSpeed, RelWheelSpeed: m.RelWheelSpeed, RelHiResSpeed: m.RelWheelHiResSpeed}
		h := handler.NewAbsToRelHandler(axisEv.Code, m.OutputCode, m.TargetUinput, m.Deadzone, m.Gain, m.Expo, speeds, deps.SourceAbsInfo, m.Combination)

		return h, true, nil

	case m.OutputType == input.EV_REL && axisEv.Type == input.EV_REL:
		speeds := handler.RelOutputSpeeds{RelRate: m.RelRate, RelSpeed: m.RelSpeed, RelWheelSpeed: m.RelWheelSpeed, RelHiResSpeed: m.RelWheelHiResSpeed}
		h, err := handler.NewRelToRelHandler(axisEv.Code, m.OutputCode, m.TargetUinput, m.Deadzone, m.Gain, m.Expo, speeds, m.Combination)
		if err != nil {
			return nil, false, err
		}

		return h, true, nil
	}

	return nil, false, fmt.Errorf("unsupported input/output combination: in=%d out=%d", axisEv.Type, m.OutputType)
}

// buildKeyLikeChain wires a discrete leaf (key, macro, null) behind a
// CombinationHandler when its combination has more than one member,
// and resolves any further per-member wrapping the combination needs
// (an analog member used as a discrete trigger).
func buildKeyLikeChain(leaf handler.Handler, m preset.Mapping, deps Deps) ([]binding, error) {
	var combo = m.Combination

	if combo.Len() == 1 {
		var ev = combo.Last()

		return []binding{{tc: handler.TypeCode{Type: ev.Type, Code: ev.Code}, h: leaf, rank: true, rankCombo: combo}}, nil
	}

	var ch = handler.NewCombinationHandler(combo, m.OutputType)
	ch.SetSubHandler(leaf)

	var (
		bindings []binding
		wrapped  = make(map[handler.TypeCode]bool)
	)

	for _, spec := range ch.WrapSpecs() {
		var ev = spec.Combination.Last()

		w, err := buildWrapper(spec.Kind, spec.Combination, m, deps)
		if err != nil {
			deps.Logger.Warn().Err(err).Msg("skipping unsupported combination wrap")

			continue
		}

		w.SetSubHandler(ch)

		var tc = handler.TypeCode{Type: ev.Type, Code: ev.Code}

		bindings = append(bindings, binding{tc: tc, h: w})
		wrapped[tc] = true
	}

	for _, ev := range combo.Events() {
		var tc = handler.TypeCode{Type: ev.Type, Code: ev.Code}
		if wrapped[tc] {
			continue
		}

		bindings = append(bindings, binding{tc: tc, h: ch, rank: true, rankCombo: ch.RankBy()})
	}

	return bindings, nil
}

// buildAxisChain wires a terminal axis handler behind an
// AxisSwitchHandler when the mapping's combination includes trigger
// keys alongside the analog axis, further condensing multiple trigger
// keys behind a CombinationHandler.
func buildAxisChain(leaf axisHandler, m preset.Mapping, deps Deps) ([]binding, error) {
	var axisEv, _, triggers = splitCombination(m.Combination)

	var axisTC = handler.TypeCode{Type: axisEv.Type, Code: axisEv.Code}

	if len(triggers) == 0 {
		return []binding{{tc: axisTC, h: leaf}}, nil
	}

	var triggerTCs = make([]handler.TypeCode, len(triggers))
	for i, ev := range triggers {
		triggerTCs[i] = handler.TypeCode{Type: ev.Type, Code: ev.Code}
	}

	var axisSwitch = handler.NewAxisSwitchHandler(axisTC, triggerTCs)
	axisSwitch.SetSubHandler(leaf)

	var bindings = []binding{{tc: axisTC, h: axisSwitch}}

	if !axisSwitch.NeedsWrapping() {
		for _, tc := range triggerTCs {
			bindings = append(bindings, binding{tc: tc, h: axisSwitch})
		}

		return bindings, nil
	}

	var specs = axisSwitch.WrapSpecs()
	if len(specs) == 0 {
		return bindings, nil
	}

	var ch = handler.NewCombinationHandler(specs[0].Combination, m.OutputType)
	ch.SetSubHandler(axisSwitch)

	for _, tc := range triggerTCs {
		bindings = append(bindings, binding{tc: tc, h: ch, rank: true, rankCombo: ch.RankBy()})
	}

	return bindings, nil
}

// buildWrapper constructs the small wrapper a CombinationHandler's
// WrapSpecs names for one raw analog-as-trigger member.
func buildWrapper(kind handler.Kind, combo event.InputCombination, m preset.Mapping, deps Deps) (handler.Handler, error) {
	var ev = combo.Last()

	switch kind {
	case handler.KindAbsToBtn:
		return handler.NewAbsToBtnHandler(ev.Code, int(ev.Value), deps.SourceAbsInfo), nil

	case handler.KindRelToBtn:
		return handler.NewRelToBtnHandler(ev.Code, ev.Value, time.Duration(m.ReleaseTimeoutMs)*time.Millisecond), nil

	default:
		return nil, fmt.Errorf("graph: unsupported wrap kind %v for (%d, %d)", kind, ev.Type, ev.Code)
	}
}
