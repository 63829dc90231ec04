package figure

import "fmt"

// Kind is the shape of a figure. It is fixed when the figure is created.
type Kind int

const (
	Rectangle Kind = iota
	Circle
	Triangle
)

// Kinds lists every shape kind in menu order.
var Kinds = []Kind{Circle, Rectangle, Triangle}

func (k Kind) String() string {
	switch k {
	case Rectangle:
		return "rectangle"
	case Circle:
		return "circle"
	case Triangle:
		return "triangle"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Valid reports whether k is one of the known kinds.
func (k Kind) Valid() bool {
	return k >= Rectangle && k <= Triangle
}

// ParseKind is the inverse of Kind.String.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds {
		if k.String() == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown shape kind %q", s)
}

// MarshalText encodes the kind by name so persisted files stay readable.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("unknown shape kind %d", int(k))
	}
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(b []byte) error {
	v, err := ParseKind(string(b))
	if err != nil {
		return err
	}
	*k = v
	return nil
}
