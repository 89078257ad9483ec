// Command kernelinfo prints the element-wise transforms this build
// supports and the kernel variant each one selects on the running CPU.
//
// Usage:
//
//	kernelinfo [flags] [type-or-operation ...]
//
// Arguments filter the table by element type ("float64", "complex_int16")
// or operation ("X+K", "angle"). Without arguments every combination is
// printed.
//
// Examples:
//
//	kernelinfo float64 complex128
//	kernelinfo -generic X*K
//	kernelinfo -bench -buffer 1MiB -dim 2 float32
//	kernelinfo -list
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"github.com/cwbudde/algo-vecmath/cpu"

	"github.com/cwbudde/algo-stream/stream/dtype"
	"github.com/cwbudde/algo-stream/stream/kernel"
	"github.com/cwbudde/algo-stream/stream/port"
	"github.com/cwbudde/algo-stream/stream/transform"
)

func main() {
	list := flag.Bool("list", false, "list supported type/operation combinations and exit")
	generic := flag.Bool("generic", false, "select portable kernels only")
	dim := flag.Int("dim", 1, "sample dimension")
	bench := flag.Bool("bench", false, "measure the throughput of each selected kernel")
	buffer := flag.String("buffer", "64KiB", "input buffer size per step for -bench")
	rounds := flag.Int("rounds", 200, "steps per combination for -bench")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: kernelinfo [flags] [type-or-operation ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints supported element-wise transforms and their selected kernels.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  kernelinfo float64 complex128\n")
		fmt.Fprintf(os.Stderr, "  kernelinfo -generic X*K\n")
		fmt.Fprintf(os.Stderr, "  kernelinfo -bench -buffer 1MiB -dim 2 float32\n")
		fmt.Fprintf(os.Stderr, "  kernelinfo -list\n")
	}
	flag.Parse()

	if *list {
		for _, c := range transform.Supported() {
			fmt.Printf("%s\t%s\n", c.Descriptor, c.Operation)
		}
		return
	}

	if *dim < 1 {
		fmt.Fprintf(os.Stderr, "error: -dim must be at least 1\n")
		os.Exit(2)
	}

	combos, err := selectCombinations(transform.Supported(), flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}
	if len(combos) == 0 {
		fmt.Fprintf(os.Stderr, "error: no matching combinations\n")
		os.Exit(1)
	}

	features := cpu.DetectFeatures()
	if *generic {
		features = cpu.Features{ForceGeneric: true, Architecture: features.Architecture}
	}

	var cfg *benchConfig
	if *bench {
		size, err := humanize.ParseBytes(*buffer)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: -buffer: %v\n", err)
			os.Exit(2)
		}
		cfg = &benchConfig{bytes: int(size), rounds: max(*rounds, 1), pool: port.NewPool()}
	}

	printHeader(features)
	printKernels(combos, *dim, features, cfg)
}

// selectCombinations keeps the combinations matching every filter kind
// present in args. Each argument is an element type or an operation name.
func selectCombinations(all []transform.Combination, args []string) ([]transform.Combination, error) {
	types := map[string]bool{}
	ops := map[kernel.Op]bool{}

	for _, arg := range args {
		arg = strings.TrimSpace(arg)
		if op, err := kernel.ParseOp(arg); err == nil {
			ops[op] = true
			continue
		}
		desc, err := dtype.Parse(arg)
		if err != nil {
			return nil, fmt.Errorf("%q is neither an element type nor an operation", arg)
		}
		types[desc.Scalar().Name()] = true
	}

	var out []transform.Combination
	for _, c := range all {
		if len(types) > 0 && !types[c.Descriptor.Name()] {
			continue
		}
		if len(ops) > 0 && !ops[c.Operation] {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func printHeader(f cpu.Features) {
	fmt.Printf("Architecture: %s\n", f.Architecture)
	fmt.Printf("Features:     %s\n", featureList(f))

	var variants []string
	for _, impl := range kernel.Registered() {
		variants = append(variants, fmt.Sprintf("%s (%s)", impl.Name, impl.SIMDLevel))
	}
	fmt.Printf("Variants:     %s\n\n", strings.Join(variants, ", "))
}

func featureList(f cpu.Features) string {
	if f.ForceGeneric {
		return "forced generic"
	}

	var names []string
	for _, feat := range []struct {
		name string
		on   bool
	}{
		{"SSE2", f.HasSSE2},
		{"AVX", f.HasAVX},
		{"AVX2", f.HasAVX2},
		{"AVX-512", f.HasAVX512},
		{"NEON", f.HasNEON},
	} {
		if feat.on {
			names = append(names, feat.name)
		}
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, " ")
}

func printKernels(combos []transform.Combination, dim int, features cpu.Features, bench *benchConfig) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

	header := "Type\tOperation\tOutput\tKernel\tSIMD"
	rule := "----\t---------\t------\t------\t----"
	if bench != nil {
		header += "\tThroughput\tRate"
		rule += "\t----------\t----"
	}
	if _, err := fmt.Fprintf(tw, "%s\n%s\n", header, rule); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}

	for _, c := range combos {
		desc := c.Descriptor.WithDimension(dim)
		u, err := transform.New(desc, c.Operation.String(), 1, transform.WithCPUFeatures(features))
		if err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "error: %v\n", err)
			continue
		}

		row := fmt.Sprintf("%s\t%s\t%s\t%s\t%s", desc, c.Operation, u.Output(), u.Kernel(), u.Kernel().SIMDLevel)
		if bench != nil {
			r := bench.run(u)
			row += fmt.Sprintf("\t%s/s\t%s", humanize.Bytes(uint64(r.bytesPerSecond)), humanize.SIWithDigits(r.samplesPerSecond, 1, "S/s"))
		}
		if _, err := fmt.Fprintln(tw, row); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output row: %v\n", err)
			return
		}
	}
	if err := tw.Flush(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}
