package target

import (
	"fmt"
	"strings"

	"github.com/san-kum/hmcsim/internal/dynamo"
)

type Variant int

const (
	Bimodal Variant = iota
	Banana
)

var variantNames = map[Variant]string{
	Bimodal: "bimodal",
	Banana:  "banana",
}

// Variants lists every known target in declaration order.
func Variants() []Variant {
	return []Variant{Bimodal, Banana}
}

func (v Variant) String() string {
	if name, ok := variantNames[v]; ok {
		return name
	}
	return fmt.Sprintf("Variant(%d)", int(v))
}

// ParseVariant maps a target name to its variant. Unknown names fail with
// dynamo.ErrInvalidArgument.
func ParseVariant(name string) (Variant, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for v, n := range variantNames {
		if n == key {
			return v, nil
		}
	}
	return 0, &dynamo.ArgumentError{
		Name:   "target",
		Reason: fmt.Sprintf("unknown target %q (available: bimodal, banana)", name),
	}
}

func (v Variant) Potential(q dynamo.Vec) float64 {
	switch v {
	case Bimodal:
		return bimodalPotential(q)
	case Banana:
		return bananaPotential(q)
	}
	panic(fmt.Sprintf("target: potential of unknown variant %d", int(v)))
}

func (v Variant) Gradient(q dynamo.Vec) dynamo.Vec {
	return centralDiff(v, q)
}

var _ dynamo.Potential = Bimodal
