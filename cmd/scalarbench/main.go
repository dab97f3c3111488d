package main

import (
	"flag"
	"fmt"
	"math/rand/v2"
	"runtime"
	"strings"
	"time"

	algoscalar "github.com/cwbudde/algo-scalar"
	"github.com/cwbudde/algo-scalar/internal/cpu"
	"gonum.org/v1/gonum/stat"
)

var allOps = []string{"abs", "squared", "sqrt", "exp", "conj", "mulreal", "mulcomplex", "randn"}

type benchConfig struct {
	samples int
	iters   int
	warmup  int
	seed    uint64
}

type benchResult struct {
	repr    string
	op      string
	nsPerOp float64
}

func main() {
	var (
		opList  = flag.String("ops", "all", "comma-separated ops: abs,squared,sqrt,exp,conj,mulreal,mulcomplex,randn")
		samples = flag.Int("samples", 65536, "values per iteration")
		iters   = flag.Int("iters", 50, "benchmark iterations")
		warmup  = flag.Int("warmup", 5, "warmup iterations")
		seed    = flag.Uint64("seed", 1, "rng seed")
		moments = flag.Bool("moments", false, "print sample moments of the normal source")
	)
	flag.Parse()

	ops := parseOps(*opList)
	if len(ops) == 0 {
		fmt.Println("no ops specified")
		return
	}

	cfg := benchConfig{samples: *samples, iters: *iters, warmup: *warmup, seed: *seed}

	fmt.Printf("host: %s\n", cpu.DetectFeatures())
	fmt.Printf("samples=%d iters=%d warmup=%d\n", cfg.samples, cfg.iters, cfg.warmup)

	if *moments {
		reportMoments(cfg)
	}

	fmt.Printf("%10s  %12s  %12s\n", "repr", "op", "ns/op")

	var results []benchResult
	results = append(results, benchRepr[algoscalar.Float32, algoscalar.Float32, algoscalar.Complex64]("float32", ops, cfg)...)
	results = append(results, benchRepr[algoscalar.Float64, algoscalar.Float64, algoscalar.Complex128]("float64", ops, cfg)...)
	results = append(results, benchRepr[algoscalar.Complex64, algoscalar.Float32, algoscalar.Complex64]("complex64", ops, cfg)...)
	results = append(results, benchRepr[algoscalar.Complex128, algoscalar.Float64, algoscalar.Complex128]("complex128", ops, cfg)...)

	for _, res := range results {
		fmt.Printf("%10s  %12s  %12.1f\n", res.repr, res.op, res.nsPerOp)
	}
}

// benchRepr times each requested op over a slice of normal draws for one
// scalar representation. Results are written into preallocated destination
// slices so the loop bodies cannot be optimized away.
func benchRepr[X algoscalar.Scalar[X, R, C], R algoscalar.RealScalar[R, C], C algoscalar.ComplexScalar[C, R]](name string, ops []string, cfg benchConfig) []benchResult {
	src := rand.NewPCG(cfg.seed, cfg.seed+1)

	xs := make([]X, cfg.samples)
	for i := range xs {
		xs[i] = algoscalar.Randn[X, R, C](src)
	}

	dst := make([]X, cfg.samples)
	rdst := make([]R, cfg.samples)
	cdst := make([]C, cfg.samples)

	half := algoscalar.IntoReal[R](0.5)

	var zero X
	twist := zero.FromReal(algoscalar.IntoReal[R](0.75)).AsComplex()

	runners := map[string]func(){
		"abs": func() {
			for i, x := range xs {
				rdst[i] = x.Abs()
			}
		},
		"squared": func() {
			for i, x := range xs {
				rdst[i] = x.Squared()
			}
		},
		"sqrt": func() {
			for i, x := range xs {
				dst[i] = x.Sqrt()
			}
		},
		"exp": func() {
			for i, x := range xs {
				dst[i] = x.Exp()
			}
		},
		"conj": func() {
			for i, x := range xs {
				dst[i] = x.Conj()
			}
		},
		"mulreal": func() {
			for i, x := range xs {
				dst[i] = x.MulReal(half)
			}
		},
		"mulcomplex": func() {
			for i, x := range xs {
				cdst[i] = x.MulComplex(twist)
			}
		},
		"randn": func() {
			for i := range dst {
				dst[i] = algoscalar.Randn[X, R, C](src)
			}
		},
	}

	results := make([]benchResult, 0, len(ops))

	for _, op := range ops {
		run, ok := runners[op]
		if !ok {
			continue
		}

		for range cfg.warmup {
			run()
		}

		runtime.GC()

		start := time.Now()

		for range cfg.iters {
			run()
		}

		elapsed := time.Since(start)

		results = append(results, benchResult{
			repr:    name,
			op:      op,
			nsPerOp: float64(elapsed.Nanoseconds()) / float64(cfg.iters*cfg.samples),
		})
	}

	return results
}

func reportMoments(cfg benchConfig) {
	src := rand.NewPCG(cfg.seed, cfg.seed+1)

	draws := make([]float64, cfg.samples)
	for i := range draws {
		draws[i] = float64(algoscalar.Randn[algoscalar.Float64, algoscalar.Float64, algoscalar.Complex128](src))
	}

	fmt.Printf("randn: n=%d mean=%.4f variance=%.4f\n", len(draws), stat.Mean(draws, nil), stat.Variance(draws, nil))
}

func parseOps(list string) []string {
	if strings.TrimSpace(list) == "all" {
		return append([]string(nil), allOps...)
	}

	known := make(map[string]bool, len(allOps))
	for _, op := range allOps {
		known[op] = true
	}

	parts := strings.Split(list, ",")

	out := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if !known[part] {
			continue
		}

		out = append(out, part)
	}

	return out
}
