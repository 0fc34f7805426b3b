// Package resolver implements last-intent-wins resolution for opposing
// movement keys.
//
// Two fixed pairs are tracked: Strafe (Left/Right) and Walk (Forward/Back).
// When both keys of a pair are physically held, only the most recently
// pressed one is reported as down. Releasing it hands the pair back to the
// other key if that one is still held.
package resolver

// Key is one of the four keys that take part in conflict resolution.
type Key int8

const (
	Left Key = iota
	Right
	Forward
	Back

	// NoKey marks an unset last-press marker.
	NoKey Key = -1
)

const numKeys = 4

// Linux input event codes (linux/input-event-codes.h).
const (
	CodeA uint16 = 30
	CodeD uint16 = 32
	CodeW uint16 = 17
	CodeS uint16 = 31
)

var keyCodes = [numKeys]uint16{
	Left:    CodeA,
	Right:   CodeD,
	Forward: CodeW,
	Back:    CodeS,
}

var keyNames = [numKeys]string{
	Left:    "left",
	Right:   "right",
	Forward: "forward",
	Back:    "back",
}

// Keys lists every Key in directive order.
var Keys = [numKeys]Key{Left, Right, Forward, Back}

// KeyForCode maps an EV_KEY code to its Key. ok is false for codes that are
// not part of any pair.
func KeyForCode(code uint16) (Key, bool) {
	for k, c := range keyCodes {
		if c == code {
			return Key(k), true
		}
	}
	return NoKey, false
}

// Code returns the EV_KEY code of k.
func (k Key) Code() uint16 {
	return keyCodes[k]
}

// Pair returns the pair k belongs to.
func (k Key) Pair() Pair {
	if k == Left || k == Right {
		return Strafe
	}
	return Walk
}

func (k Key) valid() bool {
	return k >= 0 && int(k) < numKeys
}

func (k Key) String() string {
	if !k.valid() {
		return "none"
	}
	return keyNames[k]
}

// Pair identifies one of the two opposing key pairs.
type Pair int8

const (
	Strafe Pair = iota
	Walk

	numPairs = 2
)

// Members returns the two keys of p, first member first.
func (p Pair) Members() (Key, Key) {
	if p == Strafe {
		return Left, Right
	}
	return Forward, Back
}

func (p Pair) String() string {
	if p == Strafe {
		return "strafe"
	}
	return "walk"
}

// Key event values as reported by evdev.
const (
	ValueRelease int32 = 0
	ValuePress   int32 = 1
	ValueRepeat  int32 = 2
)

// Directive tells the sink to put Key into the given state.
type Directive struct {
	Key  Key
	Down bool
}

// Value returns the EV_KEY value that realizes d.
func (d Directive) Value() int32 {
	if d.Down {
		return ValuePress
	}
	return ValueRelease
}

// State holds physical and emitted key state for both pairs.
// The zero value is not ready for use; call New.
type State struct {
	physical    [numKeys]bool
	emitted     [numKeys]bool
	lastPressed [numPairs]Key
}

// New returns a State with every key released and no press recorded.
func New() *State {
	return &State{lastPressed: [numPairs]Key{NoKey, NoKey}}
}

// Process applies one key event and returns the directives needed to bring
// the emitted state in line with the last-intent-wins policy. Directives are
// ordered Left, Right, Forward, Back; there are at most four of them.
// Keys other than the four in Keys are ignored and produce no directives.
func (s *State) Process(k Key, value int32) []Directive {
	if !k.valid() {
		return nil
	}
	switch value {
	case ValuePress:
		s.physical[k] = true
		s.lastPressed[k.Pair()] = k
	case ValueRepeat:
		s.physical[k] = true
	case ValueRelease:
		s.physical[k] = false
	}

	var desired [numKeys]bool
	for p := Strafe; p < numPairs; p++ {
		a, b := p.Members()
		if s.physical[a] && s.physical[b] {
			// An unset marker can only follow missed events; the first
			// member wins then.
			winner := s.lastPressed[p]
			if winner == NoKey {
				winner = a
			}
			desired[winner] = true
			continue
		}
		desired[a] = s.physical[a]
		desired[b] = s.physical[b]
	}

	var out []Directive
	for _, key := range Keys {
		if desired[key] != s.emitted[key] {
			s.emitted[key] = desired[key]
			out = append(out, Directive{Key: key, Down: desired[key]})
		}
	}
	return out
}

// Physical reports whether k is currently held on the source device.
func (s *State) Physical(k Key) bool {
	return s.physical[k]
}

// Emitted reports whether the last directive issued for k was a key down.
func (s *State) Emitted(k Key) bool {
	return s.emitted[k]
}

// LastPressed returns the most recently pressed key of p, or NoKey.
func (s *State) LastPressed(p Pair) Key {
	return s.lastPressed[p]
}
