package grid

import (
	"fmt"
	"strings"
)

// Topology selects how neighbor lookups treat the board edges.
type Topology uint8

const (
	// Bounded treats everything outside the board as permanently dead.
	Bounded Topology = iota
	// Toroidal wraps x modulo cols and y modulo rows.
	Toroidal
)

// String returns the canonical lower-case name.
func (t Topology) String() string {
	switch t {
	case Bounded:
		return "bounded"
	case Toroidal:
		return "toroidal"
	default:
		return fmt.Sprintf("topology(%d)", uint8(t))
	}
}

// Toggled returns the other topology.
func (t Topology) Toggled() Topology {
	if t == Toroidal {
		return Bounded
	}
	return Toroidal
}

// ParseTopology accepts the canonical names plus the "bordered"/"continuous"
// labels shown on the edge toggle and a few short aliases.
func ParseTopology(s string) (Topology, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bounded", "bordered", "hard":
		return Bounded, nil
	case "toroidal", "continuous", "wrap", "torus":
		return Toroidal, nil
	}
	return Bounded, fmt.Errorf("grid: unknown topology %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (t Topology) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Topology) UnmarshalText(b []byte) error {
	parsed, err := ParseTopology(string(b))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
