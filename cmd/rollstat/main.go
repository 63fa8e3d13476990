// Command rollstat streams a file or stdin through a rolling statistics window.
//
// The input is read in chunks of --chunk-size bytes, or of random sizes up to
// --chunk-size with --random-chunks, so that values split across chunk
// boundaries are exercised. The final window statistics are printed to stdout.
// With --snapshot-out the final window is also exported as a snapshot frame;
// the file is an export artifact and is never loaded by a later run.
//
//	rollstat --type=float64 --order=little --window=120 --input=samples.bin
package main

import (
	goflag "flag"
	"fmt"
	"io"
	"os"

	flag "github.com/spf13/pflag"
	"k8s.io/klog/v2"

	"github.com/arloliu/rollstat/endian"
	"github.com/arloliu/rollstat/format"
	"github.com/arloliu/rollstat/scheme"
)

var (
	input        = flag.String("input", "-", "File to read the byte stream from; - reads stdin.")
	order        = flag.String("order", "big", "Byte order of the stream. Supported values: little, big, native")
	valueType    = flag.String("type", "int32", "Value type. Supported values: int16, uint16, int32, uint32, int64, uint64, float32, float64")
	windowSize   = flag.Int("window", 60, "Number of most recent values kept in the rolling window.")
	chunkSize    = flag.Int("chunk-size", 4096, "Maximum number of bytes written per chunk.")
	randomChunks = flag.Bool("random-chunks", false, "Use random chunk sizes between 0 and --chunk-size.")
	seed         = flag.Uint64("seed", 1, "Seed for random chunk sizes and random draws.")
	reportEvery  = flag.Int("report-every", 0, "Log the window statistics every N chunks; 0 disables periodic reports.")
	snapshotOut  = flag.String("snapshot-out", "", "If set, export a snapshot frame of the final window to this file for external tooling. rollstat never reads it back; every run starts with an empty window.")
	compression  = flag.String("compression", "none", "Snapshot compression. Supported values: none, zstd, s2, lz4")
)

func main() {
	initFlagsAndKlog()
	defer klog.Flush()

	cfg, err := newRunConfig()
	if err != nil {
		klog.Fatalf("Invalid flags: %v", err)
	}

	in, closeInput, err := openInput(*input)
	if err != nil {
		klog.Fatalf("Opening input %q failed: %v", *input, err)
	}
	defer closeInput()

	klog.Infof("Streaming %s as %s %s values, window=%d chunk-size=%d random-chunks=%v",
		*input, *order, *valueType, cfg.window, cfg.chunkSize, cfg.randomChunks)

	if err := dispatch(cfg, *valueType, in, os.Stdout); err != nil {
		klog.Errorf("rollstat failed: %v", err)
		klog.Flush()
		os.Exit(1)
	}
}

func initFlagsAndKlog() {
	klogFlags := goflag.NewFlagSet("klog", goflag.ExitOnError)
	klog.InitFlags(klogFlags)
	flag.CommandLine.AddGoFlagSet(klogFlags)
	flag.Parse()
}

func newRunConfig() (runConfig, error) {
	byteOrder, err := format.ParseByteOrder(*order)
	if err != nil {
		return runConfig{}, err
	}
	engine, err := endian.ForOrder(byteOrder)
	if err != nil {
		return runConfig{}, err
	}
	comp, err := format.ParseCompression(*compression)
	if err != nil {
		return runConfig{}, err
	}
	if *chunkSize < 1 {
		return runConfig{}, fmt.Errorf("--chunk-size must be positive, got %d", *chunkSize)
	}
	if *reportEvery < 0 {
		return runConfig{}, fmt.Errorf("--report-every must not be negative, got %d", *reportEvery)
	}

	return runConfig{
		engine:       engine,
		window:       *windowSize,
		chunkSize:    *chunkSize,
		randomChunks: *randomChunks,
		seed:         *seed,
		reportEvery:  *reportEvery,
		snapshotOut:  *snapshotOut,
		compression:  comp,
	}, nil
}

func openInput(path string) (io.Reader, func(), error) {
	if path == "-" || path == "" {
		return os.Stdin, func() {}, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}

	return f, func() {
		if err := f.Close(); err != nil {
			klog.Warningf("Closing %s: %v", path, err)
		}
	}, nil
}

// dispatch instantiates run for the requested value type.
func dispatch(cfg runConfig, typ string, in io.Reader, out io.Writer) error {
	e := cfg.engine
	switch typ {
	case "int16":
		return run(cfg, in, out, scheme.Int16(e))
	case "uint16":
		return run(cfg, in, out, scheme.Uint16(e))
	case "int32":
		return run(cfg, in, out, scheme.Int32(e))
	case "uint32":
		return run(cfg, in, out, scheme.Uint32(e))
	case "int64":
		return run(cfg, in, out, scheme.Int64(e))
	case "uint64":
		return run(cfg, in, out, scheme.Uint64(e))
	case "float32":
		return run(cfg, in, out, scheme.Float32(e))
	case "float64":
		return run(cfg, in, out, scheme.Float64(e))
	default:
		return fmt.Errorf("unsupported value type %q", typ)
	}
}
