package activation

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownKind is returned by ParseKind for names that match no activation.
var ErrUnknownKind = errors.New("activation: unknown kind")

// Kind names a single-argument activation together with its derivative.
type Kind int

// Supported activation kinds.
const (
	KindRectifier Kind = iota
	KindLeakyRectifier
	KindElliotSig
	KindNormalizedExponential
)

type entry struct {
	name       string
	fn         func(float32) float32
	derivative func(float32) float32
}

var kinds = [...]entry{
	KindRectifier:             {"rectifier", Rectifier, RectifierDerivative},
	KindLeakyRectifier:        {"leaky-rectifier", LeakyRectifier, LeakyRectifierDerivative},
	KindElliotSig:             {"elliotsig", ElliotSig, ElliotSigDerivative},
	KindNormalizedExponential: {"normalized-exponential", NormalizedExponential, SoftmaxDerivative},
}

// Kinds returns every supported kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, len(kinds))
	for i := range kinds {
		out[i] = Kind(i)
	}
	return out
}

func (k Kind) valid() bool {
	return k >= 0 && int(k) < len(kinds)
}

// String returns the kind's canonical name.
func (k Kind) String() string {
	if !k.valid() {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kinds[k].name
}

// Func returns the activation function. It panics for an invalid kind.
func (k Kind) Func() func(float32) float32 {
	if !k.valid() {
		panic(fmt.Sprintf("activation: invalid kind %d", int(k)))
	}
	return kinds[k].fn
}

// Derivative returns the derivative taking the activated value.
// It panics for an invalid kind.
func (k Kind) Derivative() func(float32) float32 {
	if !k.valid() {
		panic(fmt.Sprintf("activation: invalid kind %d", int(k)))
	}
	return kinds[k].derivative
}

// ParseKind resolves a name (case-insensitive; "relu", "leaky-relu" and "softmax"
// are accepted as aliases) to a Kind.
func ParseKind(name string) (Kind, error) {
	switch n := strings.ToLower(strings.TrimSpace(name)); n {
	case "relu":
		return KindRectifier, nil
	case "leaky-relu", "leaky":
		return KindLeakyRectifier, nil
	case "softmax", "exp":
		return KindNormalizedExponential, nil
	default:
		for i, e := range kinds {
			if e.name == n {
				return Kind(i), nil
			}
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}
