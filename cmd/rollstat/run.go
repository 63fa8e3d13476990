package main

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"os"

	"k8s.io/klog/v2"

	"github.com/arloliu/rollstat/endian"
	"github.com/arloliu/rollstat/errs"
	"github.com/arloliu/rollstat/format"
	"github.com/arloliu/rollstat/rolling"
	"github.com/arloliu/rollstat/scheme"
	"github.com/arloliu/rollstat/snapshot"
)

type runConfig struct {
	engine       endian.EndianEngine
	window       int
	chunkSize    int
	randomChunks bool
	seed         uint64
	reportEvery  int
	snapshotOut  string
	compression  format.CompressionType
}

// chunker yields the size of the next chunk to read.
type chunker struct {
	max int
	rng *rand.Rand
}

func newChunker(cfg runConfig) *chunker {
	c := &chunker{max: cfg.chunkSize}
	if cfg.randomChunks {
		c.rng = rand.New(rand.NewPCG(cfg.seed, cfg.seed+1))
	}

	return c
}

func (c *chunker) next() int {
	if c.rng == nil {
		return c.max
	}

	return c.rng.IntN(c.max + 1)
}

func run[T scheme.Value](cfg runConfig, in io.Reader, out io.Writer, s scheme.Codec[T]) error {
	rs, err := rolling.New[T](s, cfg.window, rolling.WithRandSource(rand.NewPCG(cfg.seed, cfg.seed^0x9e3779b97f4a7c15)))
	if err != nil {
		return err
	}

	chunks := newChunker(cfg)
	buf := make([]byte, cfg.chunkSize)
	var total, count int
	for {
		size := chunks.next()
		if size == 0 {
			// A zero-length write must leave the state untouched.
			if _, err := rs.Write(nil); err != nil {
				return err
			}
			continue
		}

		n, readErr := in.Read(buf[:size])
		if n > 0 {
			if _, err := rs.Write(buf[:n]); err != nil {
				return fmt.Errorf("chunk %d at byte %d: %w", count, total, err)
			}
			total += n
			count++
			klog.V(2).Infof("Chunk %d: %d bytes, window len=%d, buffered=%d", count, n, rs.Len(), rs.Buffered())

			if cfg.reportEvery > 0 && count%cfg.reportEvery == 0 {
				klog.Infof("After %d chunks (%d bytes): %v", count, total, rs)
			}
		}
		if errors.Is(readErr, io.EOF) {
			break
		}
		if readErr != nil {
			return fmt.Errorf("read input: %w", readErr)
		}
	}

	if rs.Buffered() > 0 {
		klog.Warningf("Stream ended with %d bytes of an incomplete value", rs.Buffered())
	}
	klog.Infof("Consumed %d bytes in %d chunks", total, count)

	if err := report(out, rs); err != nil {
		return err
	}

	if cfg.snapshotOut != "" {
		frame, err := rs.Snapshot(snapshot.WithCompression(cfg.compression))
		if err != nil {
			return fmt.Errorf("snapshot: %w", err)
		}
		if err := os.WriteFile(cfg.snapshotOut, frame, 0o644); err != nil {
			return fmt.Errorf("write snapshot: %w", err)
		}
		klog.Infof("Wrote %d-byte %s snapshot of %d values to %s", len(frame), cfg.compression, rs.Len(), cfg.snapshotOut)
	}

	return nil
}

func report[T scheme.Value](out io.Writer, rs *rolling.RollingStats[T]) error {
	if _, err := fmt.Fprintf(out, "len=%d cap=%d mean=%g stddev=%g\n", rs.Len(), rs.Cap(), rs.Mean(), rs.StdDev()); err != nil {
		return err
	}

	draw, err := rs.Rand()
	if err != nil {
		klog.Warningf("No random draw: %v", err)
	} else if _, err := fmt.Fprintf(out, "rand=%g\n", draw); err != nil {
		return err
	}

	summary, err := rs.Summary()
	if errors.Is(err, errs.ErrEmptyWindow) {
		return nil
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, summary)

	return err
}
