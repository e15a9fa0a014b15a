package build

import (
	"bufio"
	"fmt"
	"io"
)

// FlagsEnvironment prints definitions as compiler flags, one per line:
//
//	'-DMQTT_HOST="localhost"'
//
// This is the format PlatformIO expects from a dynamic build_flags command
// (build_flags = !envinject -flags). Each flag is shell-quoted so that
// spaces and quotes in values survive the build tool's argument splitting.
type FlagsEnvironment struct {
	definitions
	out io.Writer
}

// NewFlagsEnvironment returns a flags sink writing to out on Flush.
func NewFlagsEnvironment(out io.Writer) *FlagsEnvironment {
	return &FlagsEnvironment{out: out}
}

func (f *FlagsEnvironment) Define(name, value string) error {
	return f.define(name, value)
}

func (f *FlagsEnvironment) Flush() error {
	w := bufio.NewWriter(f.out)
	for _, d := range f.items {
		if _, err := fmt.Fprintln(w, Flag(d)); err != nil {
			return fmt.Errorf("%w: %w", ErrWritingOutput, err)
		}
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("%w: %w", ErrWritingOutput, err)
	}

	return nil
}

// Flag renders d as a single shell-quoted -D flag.
func Flag(d Definition) string {
	return shellQuote("-D" + d.Name + "=" + d.Literal())
}
