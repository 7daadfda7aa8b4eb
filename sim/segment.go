// Defines the resource kinds of the simulated machine and the Segment
// value describing one contiguous burst of demand on a resource.

package sim

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// ResourceKind identifies one of the machine's two single-server
// resources. It is a closed enumeration: every routing decision in the
// engine switches exhaustively over these two variants.
type ResourceKind int

const (
	KindCPU ResourceKind = iota
	KindIO
)

// String returns the canonical upper-case name of the resource kind.
func (k ResourceKind) String() string {
	switch k {
	case KindCPU:
		return "CPU"
	case KindIO:
		return "IO"
	default:
		return fmt.Sprintf("ResourceKind(%d)", int(k))
	}
}

// ParseResourceKind parses a string into a ResourceKind.
// Matching is case-insensitive.
func ParseResourceKind(s string) (ResourceKind, error) {
	switch strings.ToUpper(s) {
	case "CPU":
		return KindCPU, nil
	case "IO":
		return KindIO, nil
	default:
		return KindCPU, fmt.Errorf("unknown resource kind: %q (must be 'cpu' or 'io')", s)
	}
}

// MarshalYAML implements yaml.Marshaler for ResourceKind.
func (k ResourceKind) MarshalYAML() (interface{}, error) {
	return strings.ToLower(k.String()), nil
}

// UnmarshalYAML implements yaml.Unmarshaler for ResourceKind.
func (k *ResourceKind) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseResourceKind(s)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Segment is one contiguous span of simulated time during which a
// process exclusively requires a single resource kind. Segments are
// immutable once created; Duration is expressed in whole ticks and
// must be positive.
type Segment struct {
	Kind     ResourceKind `yaml:"kind"`
	Duration int          `yaml:"duration"`
}

// This method returns a human-readable string representation of a Segment.
func (s Segment) String() string {
	return fmt.Sprintf("%s(%d)", s.Kind, s.Duration)
}
