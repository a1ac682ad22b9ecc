package macro

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/inputcore/remapper/symbols"
)

// ErrMacroSyntax wraps any failure while parsing macro source text.
var ErrMacroSyntax = fmt.Errorf("macro: syntax error")

// callPattern matches the function-name prefix of a call like "k(a)".
var callPattern = regexp.MustCompile(`^(\w+)\(`)

// arity records how many parameters a macro function accepts.
type arity struct {
	min, max int
}

// functions lists every callable in the macro grammar and its arity,
// mirroring the `functions` table in the grounding source.
var functions = map[string]arity{
	"m":     {2, 2},
	"r":     {2, 2},
	"k":     {1, 1},
	"e":     {3, 3},
	"w":     {1, 1},
	"h":     {0, 1},
	"mouse": {2, 2},
	"wheel": {2, 2},
	"ifeq":  {3, 4},
	"set":   {2, 2},
}

// Parse compiles macro source text into a runnable [Macro], using table
// to resolve key names and store as the shared variable backing for
// set()/ifeq(). keystrokeSleepMs configures the inter-keystroke delay.
func Parse(source string, store *Store, table *symbols.Table, keystrokeSleepMs int) (*Macro, error) {
	var (
		expanded string
		cleaned  string
		result   any
		m        *Macro
		ok       bool
		err      error
	)

	expanded, err = expandPlusSyntax(source)
	if err != nil {
		return nil, fmt.Errorf("macro.Parse(%q): %w", source, err)
	}

	cleaned = stripWhitespaceAndQuotes(expanded)

	p := &parser{store: store, table: table, keystrokeSleepMs: keystrokeSleepMs, source: source}

	result, err = p.parseRecurse(cleaned, nil, 0)
	if err != nil {
		return nil, fmt.Errorf("macro.Parse(%q): %w: %v", source, ErrMacroSyntax, err)
	}

	m, ok = result.(*Macro)
	if !ok {
		return nil, fmt.Errorf("macro.Parse(%q): %w: did not produce a macro", source, ErrMacroSyntax)
	}

	return m, nil
}

// stripWhitespaceAndQuotes removes characters that never change
// parsing but only clutter the source, matching the original's
// preprocessing step.
func stripWhitespaceAndQuotes(s string) string {
	var b strings.Builder

	for _, r := range s {
		switch r {
		case ' ', '\t', '\n', '\r', '"', '\'':
			continue
		default:
			b.WriteRune(r)
		}
	}

	return b.String()
}

// expandPlusSyntax rewrites "a + b + c" into "m(a,m(b,m(c,h())))", per
// the original handle_plus_syntax. Mixing '+' with explicit calls is
// rejected, matching the original's restriction.
func expandPlusSyntax(macro string) (string, error) {
	var (
		chunks []string
		chunk  string
		b      strings.Builder
		depth  int
	)

	if !strings.Contains(macro, "+") {
		return macro, nil
	}

	if strings.ContainsAny(macro, "()") {
		return "", fmt.Errorf("mixing \"+\" and macro calls is unsupported: %q", macro)
	}

	chunks = strings.Split(macro, "+")

	for _, chunk = range chunks {
		chunk = strings.TrimSpace(chunk)
		if chunk == "" {
			return "", fmt.Errorf("invalid syntax for %q", macro)
		}

		depth++

		b.WriteString("m(")
		b.WriteString(chunk)
		b.WriteString(",")
	}

	b.WriteString("h()")

	for i := 0; i < depth; i++ {
		b.WriteString(")")
	}

	return b.String(), nil
}

// parser holds the shared state threaded through one parse call.
type parser struct {
	store            *Store
	table            *symbols.Table
	keystrokeSleepMs int
	source           string
}

// parseRecurse parses one subset of macro text: either a chained call
// expression, or a bare parameter (an int or a string), matching the
// original's _parse_recurse.
func (p *parser) parseRecurse(text string, current *Macro, depth int) (any, error) {
	var (
		match []string
		call  string
	)

	if text == "" {
		return nil, nil
	}

	if current == nil {
		current = New(p.source, p.store, p.table, p.keystrokeSleepMs)
	}

	match = callPattern.FindStringSubmatch(text)
	if match == nil {
		return p.parseLiteral(text), nil
	}

	call = match[1]

	return p.parseCall(text, call, current, depth)
}

// parseLiteral parses a bare int if possible, otherwise returns the
// trimmed string unchanged (a key name, a direction, a variable name).
func (p *parser) parseLiteral(text string) any {
	var (
		n   int
		err error
	)

	n, err = strconv.Atoi(text)
	if err == nil {
		return n
	}

	return text
}

// parseCall parses one function call, applies it to current, and
// recurses into any chained ".call(...)" that follows.
func (p *parser) parseCall(text, call string, current *Macro, depth int) (any, error) {
	var (
		fn       arity
		ok       bool
		closePos int
		inner    string
		rawArgs  []string
		args     []any
		arg      string
		err      error
	)

	fn, ok = functions[call]
	if !ok {
		return nil, fmt.Errorf("unknown function %q", call)
	}

	closePos, err = matchingParen(text)
	if err != nil {
		return nil, err
	}

	inner = text[strings.Index(text, "(")+1 : closePos-1]
	rawArgs = splitParams(inner)

	for _, arg = range rawArgs {
		var parsed any

		parsed, err = p.parseRecurse(strings.TrimSpace(arg), nil, depth+1)
		if err != nil {
			return nil, err
		}

		args = append(args, parsed)
	}

	if len(rawArgs) == 1 && rawArgs[0] == "" {
		args = nil
	}

	if len(args) < fn.min || len(args) > fn.max {
		return nil, fmt.Errorf("%s takes between %d and %d parameters, not %d", call, fn.min, fn.max, len(args))
	}

	err = p.apply(current, call, args)
	if err != nil {
		return nil, err
	}

	if closePos < len(text) && text[closePos] == '.' {
		return p.parseRecurse(text[closePos+1:], current, depth)
	}

	return current, nil
}

// apply dispatches a parsed call to the matching Macro builder method,
// converting generic parameters to their expected concrete types.
func (p *parser) apply(m *Macro, call string, args []any) error {
	switch call {
	case "k":
		return m.Key(asString(args[0]))
	case "e":
		evType, err := p.asEventType(args[0])
		if err != nil {
			return err
		}

		code, err := p.asEventCode(args[1])
		if err != nil {
			return err
		}

		return m.Event(evType, code, asInt32(args[2]))
	case "w":
		return m.Wait(asInt(args[0]))
	case "h":
		if len(args) == 0 {
			return m.Hold(nil, "")
		}

		if child, ok := args[0].(*Macro); ok {
			return m.Hold(child, "")
		}

		return m.Hold(nil, asString(args[0]))
	case "m":
		child, ok := args[1].(*Macro)
		if !ok {
			return fmt.Errorf("m: second parameter must be a macro")
		}

		return m.Modify(asString(args[0]), child)
	case "r":
		child, ok := args[1].(*Macro)
		if !ok {
			return fmt.Errorf("r: second parameter must be a macro")
		}

		return m.Repeat(asInt(args[0]), child)
	case "mouse":
		return m.Mouse(asString(args[0]), int32(asInt(args[1])))
	case "wheel":
		return m.Wheel(asString(args[0]), int32(asInt(args[1])))
	case "set":
		return m.Set(asString(args[0]), asString(args[1]))
	case "ifeq":
		then, ok := args[2].(*Macro)
		if !ok {
			return fmt.Errorf("ifeq: third parameter must be a macro")
		}

		var otherwise *Macro

		if len(args) == 4 {
			otherwise, _ = args[3].(*Macro)
		}

		return m.Ifeq(asString(args[0]), asString(args[1]), then, otherwise)
	default:
		return fmt.Errorf("unknown function %q", call)
	}
}

func asString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case int:
		return strconv.Itoa(t)
	default:
		return fmt.Sprint(v)
	}
}

func asInt(v any) int {
	switch t := v.(type) {
	case int:
		return t
	case string:
		n, _ := strconv.Atoi(t)

		return n
	default:
		return 0
	}
}

func asInt32(v any) int32 { return int32(asInt(v)) }

// eventTypeNames maps the EV_* names accepted by e()'s first
// parameter to their numeric value.
var eventTypeNames = map[string]uint16{
	"EV_SYN": 0x00,
	"EV_KEY": 0x01,
	"EV_REL": 0x02,
	"EV_ABS": 0x03,
	"EV_MSC": 0x04,
	"EV_LED": 0x11,
}

// asEventType resolves a type parameter to a numeric event type,
// accepting either a bare number or an "EV_*" name.
func (p *parser) asEventType(v any) (uint16, error) {
	if n, ok := v.(int); ok {
		return uint16(n), nil
	}

	name := strings.ToUpper(asString(v))

	code, ok := eventTypeNames[name]
	if !ok {
		return 0, fmt.Errorf("unknown event type %q", name)
	}

	return code, nil
}

// asEventCode resolves a code parameter to a numeric code, accepting
// either a bare number or a symbol name resolved against the bound
// symbol table (e.g. "KEY_A").
func (p *parser) asEventCode(v any) (uint16, error) {
	if n, ok := v.(int); ok {
		return uint16(n), nil
	}

	code, err := p.table.Lookup(asString(v))
	if err != nil {
		return 0, err
	}

	return code, nil
}

// matchingParen returns the index just past the closing paren that
// matches the first opening paren in text, per the original's
// _count_brackets.
func matchingParen(text string) (int, error) {
	var (
		depth  int
		opened bool
		i      int
		r      rune
	)

	for i, r = range text {
		switch r {
		case '(':
			depth++
			opened = true
		case ')':
			depth--

			if depth == 0 && opened {
				return i + 1, nil
			}
		}
	}

	return 0, fmt.Errorf("unbalanced parentheses in %q", text)
}

// splitParams splits the inside of a call on top-level commas, per the
// original's _extract_params.
func splitParams(inner string) []string {
	var (
		depth  int
		start  int
		params []string
		i      int
		r      rune
	)

	for i, r = range inner {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				params = append(params, inner[start:i])
				start = i + 1
			}
		}
	}

	params = append(params, inner[start:])

	return params
}
