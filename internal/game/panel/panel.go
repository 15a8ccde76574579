// Package panel implements the terrain parameter panel: two integer input
// boxes (grid size and fault count) driven from the keyboard.
//
// The panel holds no rendering state. Its text is shown through Title and the
// surrounding loop acts on the Action each key returns.
package panel

import (
	"fmt"
	"strconv"
	"strings"
)

// Grid size bounds accepted by the generator.
const (
	MinGridSize = 2
	MaxGridSize = 255
)

// maxDigits bounds what a box accepts while typing.
const maxDigits = 5

// Key is a keyboard symbol. Printable keys use their lowercase ASCII value.
type Key rune

// Control keys, matching the SDL keycodes for the same keys.
const (
	KeyBackspace Key = '\b'
	KeyEnter     Key = '\r'
	KeyEscape    Key = 0x1b
	KeySpace     Key = ' '
)

// Command keys.
const (
	KeyGrid       Key = 'g'
	KeyFaults     Key = 'f'
	KeyRegenerate Key = 'r'
)

// Action is what the caller should do in response to a key.
type Action int

const (
	ActionNone Action = iota
	ActionGenerate
	ActionRegenerate
	ActionTogglePause
	ActionQuit
)

func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionGenerate:
		return "generate"
	case ActionRegenerate:
		return "regenerate"
	case ActionTogglePause:
		return "toggle-pause"
	case ActionQuit:
		return "quit"
	default:
		return fmt.Sprintf("Action(%d)", int(a))
	}
}

// Field identifies an input box.
type Field int

const (
	FieldNone Field = iota
	FieldGrid
	FieldFaults
)

// Params is a resolved generation request.
type Params struct {
	GridSize   int
	FaultCount int
}

// ParseGridSize converts box text to a grid size. Malformed or empty text
// yields def; the result is clamped into [MinGridSize, MaxGridSize].
func ParseGridSize(text string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		n = def
	}
	return min(max(n, MinGridSize), MaxGridSize)
}

// ParseFaultCount converts box text to a fault count. Malformed, empty or
// negative text yields def.
func ParseFaultCount(text string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil || n < 0 {
		return max(def, 0)
	}
	return n
}

// Panel is the parameter panel state.
type Panel struct {
	defaults Params

	grid   string
	faults string

	// Text restored by Escape while editing.
	saved string
	focus Field

	paused bool
	status string
}

// New creates a panel whose boxes start at defaults. Defaults also replace
// malformed input.
func New(defaults Params) *Panel {
	return &Panel{
		defaults: defaults,
		grid:     strconv.Itoa(defaults.GridSize),
		faults:   strconv.Itoa(defaults.FaultCount),
	}
}

// Params resolves both boxes into a generation request.
func (p *Panel) Params() Params {
	return Params{
		GridSize:   ParseGridSize(p.grid, p.defaults.GridSize),
		FaultCount: ParseFaultCount(p.faults, p.defaults.FaultCount),
	}
}

// Focus returns the box being edited, or FieldNone.
func (p *Panel) Focus() Field {
	return p.focus
}

// Text returns the raw text of a box.
func (p *Panel) Text(f Field) string {
	switch f {
	case FieldGrid:
		return p.grid
	case FieldFaults:
		return p.faults
	}
	return ""
}

// Paused reports whether the orbit is paused.
func (p *Panel) Paused() bool {
	return p.paused
}

// SetStatus sets a message shown after the parameters, such as the last
// generation error. An empty string clears it.
func (p *Panel) SetStatus(msg string) {
	p.status = msg
}

// HandleKey applies one key press and reports what the caller should do.
func (p *Panel) HandleKey(k Key) Action {
	if p.focus != FieldNone {
		return p.handleEditing(k)
	}

	switch k {
	case KeyGrid:
		p.edit(FieldGrid)
	case KeyFaults:
		p.edit(FieldFaults)
	case KeyEnter:
		p.normalize()
		return ActionGenerate
	case KeyRegenerate:
		p.normalize()
		return ActionRegenerate
	case KeySpace:
		p.paused = !p.paused
		return ActionTogglePause
	case KeyEscape:
		return ActionQuit
	}
	return ActionNone
}

func (p *Panel) handleEditing(k Key) Action {
	box := p.box(p.focus)

	switch {
	case k >= '0' && k <= '9':
		if len(*box) < maxDigits {
			*box += string(rune(k))
		}
	case k == KeyBackspace:
		if n := len(*box); n > 0 {
			*box = (*box)[:n-1]
		}
	case k == KeyEnter:
		p.focus = FieldNone
		p.normalize()
		return ActionGenerate
	case k == KeyEscape:
		*box = p.saved
		p.focus = FieldNone
	case k == KeyGrid:
		p.edit(FieldGrid)
	case k == KeyFaults:
		p.edit(FieldFaults)
	}
	return ActionNone
}

// edit moves focus to f. Text typed into the previous box is kept.
func (p *Panel) edit(f Field) {
	p.focus = f
	p.saved = *p.box(f)
}

// normalize rewrites both boxes with the values that will be used, so
// substituted defaults and clamping are visible.
func (p *Panel) normalize() {
	params := p.Params()
	p.grid = strconv.Itoa(params.GridSize)
	p.faults = strconv.Itoa(params.FaultCount)
}

func (p *Panel) box(f Field) *string {
	if f == FieldFaults {
		return &p.faults
	}
	return &p.grid
}

// Title renders the panel for the window title bar.
func (p *Panel) Title(appName string) string {
	var b strings.Builder
	b.WriteString(appName)
	fmt.Fprintf(&b, " | grid %s | faults %s", p.render(FieldGrid), p.render(FieldFaults))
	if p.paused {
		b.WriteString(" | paused")
	}
	if p.status != "" {
		b.WriteString(" | ")
		b.WriteString(p.status)
	}
	if p.focus != FieldNone {
		b.WriteString(" | type digits, Enter generate, Esc cancel")
	} else {
		b.WriteString(" | G/F edit, R regenerate, Space pause, Esc quit")
	}
	return b.String()
}

func (p *Panel) render(f Field) string {
	text := p.Text(f)
	if p.focus == f {
		return "[" + text + "_]"
	}
	return text
}
