package field

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/kamstrup/intmap"
)

// Key identifies a keyboard key. Printable keys use their lower-case rune;
// keys without a rune use the named constants below.
type Key int32

const (
	KeyNone  Key = 0
	KeySpace Key = ' '
)

const (
	KeyUp Key = utf8.MaxRune + 1 + iota
	KeyDown
	KeyLeft
	KeyRight
)

var keyNames = map[string]Key{
	"space": KeySpace,
	"up":    KeyUp,
	"down":  KeyDown,
	"left":  KeyLeft,
	"right": KeyRight,
}

// ParseKey parses a key name such as "w", "space" or "left".
func ParseKey(name string) (Key, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if k, ok := keyNames[name]; ok {
		return k, nil
	}
	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError || size != len(name) {
		return KeyNone, fmt.Errorf("unknown key %q", name)
	}
	return Key(r), nil
}

func (k Key) String() string {
	for name, key := range keyNames {
		if key == k {
			return name
		}
	}
	if k > 0 && k <= utf8.MaxRune {
		return string(rune(k))
	}
	return fmt.Sprintf("Key(%d)", int32(k))
}

// Action is a player command the engine understands.
type Action uint8

const (
	ActionNone Action = iota
	ActionRotateClockwise
	ActionRotateCounterClockwise
	ActionMoveLeft
	ActionMoveRight
	ActionSoftDrop
	ActionHardDrop
)

var actionNames = [...]string{
	ActionNone:                   "none",
	ActionRotateClockwise:        "rotate_cw",
	ActionRotateCounterClockwise: "rotate_ccw",
	ActionMoveLeft:               "left",
	ActionMoveRight:              "right",
	ActionSoftDrop:               "soft_drop",
	ActionHardDrop:               "hard_drop",
}

func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return fmt.Sprintf("Action(%d)", uint8(a))
}

// ParseAction parses an action name as written by Action.String.
func ParseAction(name string) (Action, error) {
	for i, n := range actionNames {
		if n == name && Action(i) != ActionNone {
			return Action(i), nil
		}
	}
	return ActionNone, fmt.Errorf("unknown action %q", name)
}

// Keymap binds keys to actions.
type Keymap struct {
	bindings *intmap.Map[Key, Action]
}

// NewKeymap returns an empty keymap.
func NewKeymap() *Keymap {
	return &Keymap{bindings: intmap.New[Key, Action](16)}
}

// DefaultKeymap returns the classic bindings: w or g turn clockwise, h turns
// counter-clockwise, a and d move, s drops one row and space drops to the floor.
// Arrow keys are bound as well.
func DefaultKeymap() *Keymap {
	km := NewKeymap()
	km.Bind('w', ActionRotateClockwise)
	km.Bind('g', ActionRotateClockwise)
	km.Bind('h', ActionRotateCounterClockwise)
	km.Bind('a', ActionMoveLeft)
	km.Bind('d', ActionMoveRight)
	km.Bind('s', ActionSoftDrop)
	km.Bind(KeySpace, ActionHardDrop)
	km.Bind(KeyUp, ActionRotateClockwise)
	km.Bind(KeyLeft, ActionMoveLeft)
	km.Bind(KeyRight, ActionMoveRight)
	km.Bind(KeyDown, ActionSoftDrop)
	return km
}

// Bind maps k to a. Binding ActionNone removes the key.
func (km *Keymap) Bind(k Key, a Action) {
	if a == ActionNone {
		km.bindings.Del(k)
		return
	}
	km.bindings.Put(k, a)
}

// Lookup returns the action bound to k, or ActionNone.
func (km *Keymap) Lookup(k Key) Action {
	a, ok := km.bindings.Get(k)
	if !ok {
		return ActionNone
	}
	return a
}

// Len returns the number of bound keys.
func (km *Keymap) Len() int {
	return km.bindings.Len()
}

// KeysFor returns every key bound to a.
func (km *Keymap) KeysFor(a Action) []Key {
	var keys []Key
	km.bindings.ForEach(func(k Key, bound Action) bool {
		if bound == a {
			keys = append(keys, k)
		}
		return true
	})
	return keys
}
