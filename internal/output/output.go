// Package output is the terminal sink of the pipeline: summaries go to the configured writer, or to a file next to the input when they exceed the length threshold.
package output

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/0x0BSoD/summarize/internal/model"
)

// ErrWrite marks a failure to deliver the summary to its sink.
var ErrWrite = errors.New("failed to write summary output")

// DefaultFileThreshold is the summary length above which output is written to
// a file instead of the terminal.
const DefaultFileThreshold = 8000

// Presenter writes summary results. FileThreshold overrides
// DefaultFileThreshold when positive; Dir overrides the input's directory as
// the destination for summary files.
type Presenter struct {
	Out           io.Writer
	FileThreshold int
	Dir           string
}

func (p Presenter) Present(srcPath string, res model.SummaryResult) error {
	threshold := p.FileThreshold
	if threshold <= 0 {
		threshold = DefaultFileThreshold
	}

	if len(res.Text) <= threshold {
		if _, err := fmt.Fprintln(p.Out, res.Text); err != nil {
			return fmt.Errorf("%w: %v", ErrWrite, err)
		}
		return nil
	}

	outPath := p.summaryPath(srcPath)
	if err := os.WriteFile(outPath, []byte(res.Text+"\n"), 0o644); err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}

	if _, err := fmt.Fprintf(p.Out, "Summary is %d characters, written to %s\n", len(res.Text), outPath); err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	return nil
}

func (p Presenter) summaryPath(srcPath string) string {
	dir := p.Dir
	if dir == "" {
		dir = filepath.Dir(srcPath)
	}
	base := strings.TrimSuffix(filepath.Base(srcPath), filepath.Ext(srcPath))
	return filepath.Join(dir, base+".summary.txt")
}
