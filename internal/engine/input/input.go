// Package input describes one frame of user input independently of the
// window backend that produced it.
package input

// Key is a logical key the viewer reacts to.
type Key uint8

const (
	KeyForward Key = iota // W
	KeyBack               // S
	KeyLeft               // A
	KeyRight              // D
	KeyAscend             // Space
	KeyDescend            // Left Shift
	KeyToggle             // C
	KeyEscape
	keyCount
)

var keyNames = [keyCount]string{
	"forward", "back", "left", "right", "ascend", "descend", "toggle", "escape",
}

func (k Key) String() string {
	if k < keyCount {
		return keyNames[k]
	}
	return "unknown"
}

// KeySet is the set of keys held down at poll time.
type KeySet uint16

// Down reports whether k is held.
func (s KeySet) Down(k Key) bool {
	return s&(1<<k) != 0
}

// With returns s with k added.
func (s KeySet) With(k Key) KeySet {
	return s | 1<<k
}

// Frame is everything a backend collected during one poll.
//
// CursorX/CursorY are absolute and only meaningful when CursorMoved is set.
// ScrollY accumulates all wheel events of the poll.
type Frame struct {
	Keys        KeySet
	CursorX     float64
	CursorY     float64
	CursorMoved bool
	ScrollY     float64

	Resized bool
	Width   int
	Height  int

	FocusGained bool
	Quit        bool
}

// Latch turns a level signal into a single rising-edge event.
type Latch struct {
	held bool
}

// Rising returns true only on the first call where down is true after a
// call where it was false.
func (l *Latch) Rising(down bool) bool {
	fire := down && !l.held
	l.held = down
	return fire
}
