package fragment

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"
)

// Annotator numbers shown fragment lines with a counter that keeps
// running across fragments, so several Show calls in one process share
// one sequence.
type Annotator struct {
	next int
}

// NewAnnotator returns an annotator whose counter starts at 1.
func NewAnnotator() *Annotator {
	return &Annotator{next: 1}
}

// Annotate renders content one line per input line as
// "[<name>:<N>] = <line>", advancing the counter for each line.
func (a *Annotator) Annotate(name string, content []byte) string {
	var out strings.Builder
	scanner := bufio.NewScanner(bytes.NewReader(content))
	for scanner.Scan() {
		fmt.Fprintf(&out, "[%s:%d] = %s\n", name, a.next, scanner.Text())
		a.next++
	}
	return out.String()
}
