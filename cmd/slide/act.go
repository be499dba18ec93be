package main

import (
	"flag"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/born-ml/slide/activation"
)

func runAct(args []string, w io.Writer) error {
	fs := flag.NewFlagSet("act", flag.ContinueOnError)
	fs.SetOutput(w)
	name := fs.String("fn", "rectifier", "Activation: rectifier, leaky-rectifier, parametric, elliotsig, normalized-exponential")
	alpha := fs.Float64("alpha", 0.2, "Negative slope for -fn parametric")
	from := fs.Float64("from", -3, "First x")
	to := fs.Float64("to", 3, "Last x")
	step := fs.Float64("step", 0.5, "Step between samples")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *step <= 0 {
		return fmt.Errorf("step must be positive, got %g", *step)
	}

	var f, d func(float32) float32
	if *name == "parametric" {
		a := float32(*alpha)
		f = func(x float32) float32 { return activation.ParametricRectifier(x, a) }
		d = activation.ParametricRectifierDerivative
	} else {
		k, err := activation.ParseKind(*name)
		if err != nil {
			return err
		}
		f, d = k.Func(), k.Derivative()
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "x\tf(x)\tf'(f(x))")
	for i := 0; ; i++ {
		x := *from + float64(i)*(*step)
		if x > *to+1e-9 {
			break
		}
		a := f(float32(x))
		fmt.Fprintf(tw, "%g\t%g\t%g\n", float32(x), a, d(a))
	}
	return tw.Flush()
}
