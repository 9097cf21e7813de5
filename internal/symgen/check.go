package symgen

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// ErrStale is returned by [Check] when the file on disk differs from the
// freshly generated source.
var ErrStale = errors.New("generated file is out of date")

// Check compares the file at path with want. It returns a line diff and
// ErrStale when they differ; a missing file counts as empty.
func Check(path string, want []byte) (string, error) {
	got, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("read generated file: %w", err)
	}

	if bytes.Equal(got, want) {
		return "", nil
	}

	return LineDiff(path, string(got), string(want)), fmt.Errorf("%s: %w", path, ErrStale)
}

// LineDiff renders a line-oriented diff from have to want.
func LineDiff(label, have, want string) string {
	dmp := diffmatchpatch.New()

	haveChars, wantChars, lines := dmp.DiffLinesToChars(have, want)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(haveChars, wantChars, false), lines)

	var sb strings.Builder

	fmt.Fprintf(&sb, "--- %s (on disk)\n+++ %s (generated)\n", label, label)

	for _, d := range diffs {
		prefix := " "

		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		case diffmatchpatch.DiffEqual:
		}

		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}

			sb.WriteString(prefix)
			sb.WriteString(line)

			if !strings.HasSuffix(line, "\n") {
				sb.WriteString("\n")
			}
		}
	}

	return sb.String()
}

// Write stores generated source at path.
func Write(path string, src []byte) error {
	err := os.WriteFile(path, src, 0o644) //nolint:gosec // generated sources are world-readable
	if err != nil {
		return fmt.Errorf("write generated file: %w", err)
	}

	return nil
}
