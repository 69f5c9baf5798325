package input

// Key identifies a control key independently of the windowing library.
type Key int

const (
	KeyEscape Key = iota
	KeySpace
	KeyEqual
	KeyMinus
	KeyKPAdd
	KeyKPSubtract
	KeyR
	keyCount
)

var keyNames = [...]string{
	KeyEscape:     "Escape",
	KeySpace:      "Space",
	KeyEqual:      "=",
	KeyMinus:      "-",
	KeyKPAdd:      "KP+",
	KeyKPSubtract: "KP-",
	KeyR:          "R",
}

func (k Key) String() string {
	if k < 0 || k >= keyCount {
		return "Unknown"
	}
	return keyNames[k]
}

// Keyboard reports whether a key is currently held down. Backends that poll
// (GLFW, raylib) implement it over their own key state.
type Keyboard interface {
	Pressed(Key) bool
}

// KeyboardFunc adapts a plain function to Keyboard.
type KeyboardFunc func(Key) bool

func (f KeyboardFunc) Pressed(k Key) bool { return f(k) }
