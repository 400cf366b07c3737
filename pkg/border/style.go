package border

import "fmt"

// Style is the code stored in a side's field. Codes above Full are free for
// callers to define, as long as they fit in BitsPerStyle bits and a Table
// gives them glyphs.
type Style uint8

const (
	Empty Style = iota
	Double
	Thin
	Thick
	Full
)

// MaxStyle is one past the largest style code a field can hold.
const MaxStyle = 1 << BitsPerStyle

var styleNames = [...]string{
	Empty:  "empty",
	Double: "double",
	Thin:   "thin",
	Thick:  "thick",
	Full:   "full",
}

func (s Style) String() string {
	if int(s) < len(styleNames) {
		return styleNames[s]
	}
	return fmt.Sprintf("style(%d)", uint8(s))
}

// ParseStyle looks up a built-in style by name.
func ParseStyle(name string) (Style, error) {
	for i, n := range styleNames {
		if n == name {
			return Style(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStyle, name)
}

// MustStyle is like ParseStyle but panics on an unknown name.
func MustStyle(name string) Style {
	s, err := ParseStyle(name)
	if err != nil {
		panic(err)
	}
	return s
}

// StyleNames returns the names accepted by ParseStyle.
func StyleNames() []string {
	names := make([]string, len(styleNames))
	copy(names, styleNames[:])
	return names
}
