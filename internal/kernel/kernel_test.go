package kernel

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/born-ml/slide/internal/activation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

func mustLayout(t *testing.T, inputs, outputs, capacity int) Layout {
	t.Helper()
	l, err := NewLayout(inputs, outputs, capacity)
	require.NoError(t, err)
	return l
}

// referenceCycle runs forward, normalize and backward with index arithmetic and
// branches, walking a single write cursor from the end of the buffer.
func referenceCycle(inputs []float32, outputs, capacity int, targets []float32) ([]float32, float32) {
	n := len(inputs)
	t := make([]float32, capacity)
	copy(t, inputs)

	for i := n; i < capacity; i++ {
		var s float32
		for j := 0; j < i; j++ {
			s += float32(t[j] * t[j])
		}
		if s > 0 {
			t[i] = s
		} else {
			t[i] = 0
		}
	}

	out := t[capacity-outputs:]
	var mx, sum float32
	for i := range out {
		if out[i] > mx {
			mx = out[i]
		}
		out[i] = activation.NormalizedExponential(out[i])
		sum += out[i]
	}
	for i := range out {
		out[i] = out[i]/sum + mx
	}

	var e float32
	p := capacity - 2
	x := outputs - 1
	for i := capacity - 1; i >= capacity-outputs && p >= n; i-- {
		a := t[i] - targets[x]
		t[p] += float32(a * (1 - a))
		e += float32(math.Abs(float64(t[p])))
		p--
		x--
	}
	for i := capacity - outputs - 1; i >= n && p >= n; i-- {
		var d float32
		if t[i] > 0 {
			d = 1
		}
		t[p] += d
		p--
	}
	return t, e
}

func assertBitsEqual(t *testing.T, want, got []float32) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		if math.Float32bits(want[i]) != math.Float32bits(got[i]) {
			t.Fatalf("position %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestNewLayout(t *testing.T) {
	l, err := NewLayout(4, 2, DefaultCapacity)
	require.NoError(t, err)
	assert.Equal(t, 1018, l.Hidden())
	assert.Equal(t, 1022, l.OutputStart())

	tests := []struct {
		name                      string
		inputs, outputs, capacity int
	}{
		{"no inputs", 0, 2, 16},
		{"no outputs", 4, 0, 16},
		{"too small", 4, 2, 5},
		{"negative", -1, 2, 16},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLayout(tt.inputs, tt.outputs, tt.capacity)
			assert.ErrorIs(t, err, ErrInvalidLayout)
		})
	}
}

func TestLayoutSegmentsAlias(t *testing.T) {
	l := mustLayout(t, 3, 2, 8)
	buf := l.NewBuffer()

	l.Input(buf)[0] = 1
	l.HiddenSegment(buf)[0] = 2
	l.Output(buf)[1] = 3

	assert.Equal(t, []float32{1, 0, 0, 2, 0, 0, 0, 3}, buf)
	assert.Len(t, l.Input(buf), 3)
	assert.Len(t, l.HiddenSegment(buf), 3)
	assert.Len(t, l.Output(buf), 2)
}

func TestLayoutViewIgnoresTail(t *testing.T) {
	l := mustLayout(t, 2, 1, 4)
	buf := []float32{1, 1, 0, 0, 99, 99}

	Forward(l, buf)

	assert.Equal(t, []float32{1, 1, 2, 6}, buf[:4])
	assert.Equal(t, []float32{99, 99}, buf[4:], "positions past capacity are untouched")
}

func TestForwardSmall(t *testing.T) {
	l := mustLayout(t, 2, 1, 5)
	buf := []float32{1, 2, 0, 0, 0}

	Forward(l, buf)

	// 1+4=5, 5+25=30, 30+900=930
	assert.Equal(t, []float32{1, 2, 5, 30, 930}, buf)
}

func TestForwardDeterministic(t *testing.T) {
	l := mustLayout(t, 4, 2, DefaultCapacity)

	run := func() []float32 {
		buf := l.NewBuffer()
		copy(buf, []float32{0.01, -0.02, 0.03, 0.005})
		Forward(l, buf)
		return buf
	}

	assertBitsEqual(t, run(), run())
}

func TestForwardSaturates(t *testing.T) {
	l := mustLayout(t, 4, 2, DefaultCapacity)
	buf := l.NewBuffer()
	copy(buf, []float32{1, 1, 1, 1})

	Forward(l, buf)

	assert.Equal(t, float32(4), buf[4])
	assert.Equal(t, float32(20), buf[5])
	assert.Equal(t, float32(420), buf[6])
	for _, o := range l.Output(buf) {
		assert.True(t, math.IsInf(float64(o), 1), "growing windows overflow long before capacity 1024")
	}
}

func TestForwardPanicsOnShortBuffer(t *testing.T) {
	l := mustLayout(t, 4, 2, 16)
	assert.PanicsWithValue(t, "forward: buffer length 8 smaller than capacity 16", func() {
		Forward(l, make([]float32, 8))
	})
	assert.Panics(t, func() {
		Forward(Layout{Inputs: 4, Outputs: 2, Capacity: 5}, make([]float32, 8))
	})
}

func TestNormalizeOutputsTie(t *testing.T) {
	out := []float32{2, 2}

	NormalizeOutputs(out)

	// 0.5 each after normalization, plus the maximum 2 added back.
	assert.Equal(t, []float32{2.5, 2.5}, out)
	assert.NotEqual(t, 1.0, floats.Sum([]float64{float64(out[0]), float64(out[1])}))
}

func TestNormalizeOutputsNotIdempotent(t *testing.T) {
	once := []float32{2, 2}
	NormalizeOutputs(once)

	twice := append([]float32(nil), once...)
	NormalizeOutputs(twice)

	assert.Equal(t, []float32{3, 3}, twice)
	assert.NotEqual(t, once, twice)
}

func TestNormalizeOutputsAllNegative(t *testing.T) {
	in := []float32{-1, -2, -3}
	out := append([]float32(nil), in...)

	NormalizeOutputs(out)

	// The maximum starts at 0 and never moves, so nothing is added back and the
	// result is an ordinary softmax.
	got := make([]float64, len(out))
	want := make([]float64, len(in))
	var z float64
	for i, v := range in {
		want[i] = math.Exp(float64(v))
		z += want[i]
	}
	floats.Scale(1/z, want)
	for i, v := range out {
		got[i] = float64(v)
	}

	assert.InDelta(t, 1, floats.Sum(got), 1e-6)
	assert.True(t, floats.EqualApprox(want, got, 1e-6), "got %v, want %v", got, want)
}

func TestNormalizeOutputsEmpty(t *testing.T) {
	assert.NotPanics(t, func() { NormalizeOutputs(nil) })
}

func TestBackwardHandComputed(t *testing.T) {
	l := mustLayout(t, 1, 1, 3)
	buf := []float32{0.5, 0, 0}

	Forward(l, buf)
	require.Equal(t, []float32{0.5, 0.25, 0.3125}, buf)

	NormalizeOutputs(l.Output(buf))
	require.Equal(t, float32(1.3125), buf[2])

	e := Backward(l, buf, []float32{1})

	// 0.25 + 0.3125*(1-0.3125) = 0.25 + 55/256
	assert.Equal(t, float32(119.0/256.0), buf[1])
	assert.Equal(t, float32(119.0/256.0), e)
	assert.Equal(t, float32(0.5), buf[0])
}

func TestBackwardNoHiddenLeavesInputs(t *testing.T) {
	l := mustLayout(t, 2, 2, 4)
	buf := []float32{1, 0, 0, 0}

	e := Run(l, buf, []float32{0.5, -0.1})

	assert.Equal(t, []float32{1, 0}, buf[:2])
	assert.GreaterOrEqual(t, e, float32(0))
}

func TestBackwardPanicsOnTargets(t *testing.T) {
	l := mustLayout(t, 4, 2, 16)
	assert.PanicsWithValue(t, "backward: 3 targets for 2 outputs", func() {
		Backward(l, l.NewBuffer(), []float32{1, 2, 3})
	})
}

func TestRunMatchesReference(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))

	tests := []struct {
		inputs, outputs, capacity int
	}{
		{4, 2, 12},
		{4, 2, 24},
		{1, 1, 2},
		{3, 3, 6},
		{5, 3, 20},
		{2, 4, 16},
	}
	for _, tt := range tests {
		l := mustLayout(t, tt.inputs, tt.outputs, tt.capacity)

		inputs := make([]float32, tt.inputs)
		for i := range inputs {
			inputs[i] = float32(r.Float64()*0.2 - 0.1)
		}
		targets := make([]float32, tt.outputs)
		for i := range targets {
			targets[i] = float32(r.Float64())
		}

		buf := l.NewBuffer()
		copy(buf, inputs)
		e := Run(l, buf, targets)

		want, wantErr := referenceCycle(inputs, tt.outputs, tt.capacity, targets)
		assertBitsEqual(t, want, buf)
		assert.Equal(t, math.Float32bits(wantErr), math.Float32bits(e))
		assertBitsEqual(t, inputs, l.Input(buf))
		assert.GreaterOrEqual(t, e, float32(0))
	}
}

func TestRunReferenceScenario(t *testing.T) {
	l := mustLayout(t, 4, 2, DefaultCapacity)
	buf := l.NewBuffer()
	copy(buf, []float32{1, 1, 1, 1})

	e := Run(l, buf, []float32{0.5, -0.1})

	assert.Equal(t, []float32{1, 1, 1, 1}, l.Input(buf))
	// The outputs saturate to +Inf, so normalization produces NaN and so does
	// the error; it is never negative.
	assert.False(t, e < 0)
}

func BenchmarkRun(b *testing.B) {
	l := Layout{Inputs: 4, Outputs: 2, Capacity: DefaultCapacity}
	buf := l.NewBuffer()
	targets := []float32{0.5, -0.1}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		clear(buf)
		copy(buf, []float32{0.001, 0.002, 0.003, 0.004})
		Run(l, buf, targets)
	}
}
