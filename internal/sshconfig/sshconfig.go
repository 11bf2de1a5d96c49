// Package sshconfig maintains the gakun-managed section of an SSH client
// config file. The file is treated purely as a sequence of lines; nothing
// outside the marker-delimited section is ever touched. All functions here
// are pure — reading and writing the actual file happens at the command
// boundary.
package sshconfig

import (
	"errors"
	"fmt"
	"strings"
)

// Exact full-line markers delimiting the managed section.
const (
	BeginMarker = "###### gakun begin"
	EndMarker   = "###### gakun end"
)

// ErrMalformedSection means a begin marker was found with no end marker
// after it. Blind removal in that state could delete unrelated trailing
// content, so callers abort without modifying the file.
var ErrMalformedSection = errors.New("managed section has a begin marker but no end marker")

// Span is the inclusive line-index range of the managed section.
type Span struct {
	Begin int
	End   int
}

// Locate scans lines for the managed section. It matches the first line
// exactly equal to BeginMarker and the first line exactly equal to EndMarker
// after it. A missing begin marker reports ok=false; a begin marker with no
// end marker before end-of-file is an error.
func Locate(lines []string) (Span, bool, error) {
	for i, line := range lines {
		if line != BeginMarker {
			continue
		}
		for j := i + 1; j < len(lines); j++ {
			if lines[j] == EndMarker {
				return Span{Begin: i, End: j}, true, nil
			}
		}
		return Span{}, false, fmt.Errorf("%w (begin marker at line %d)", ErrMalformedSection, i+1)
	}
	return Span{}, false, nil
}

// Render returns the five lines of the managed block for host.
func Render(host, identityFile string) []string {
	return []string{
		BeginMarker,
		"Host " + host,
		"  Hostname " + host,
		"  IdentityFile " + identityFile,
		EndMarker,
	}
}

// Upsert returns original with the managed block for host in place. An
// existing section is replaced exactly; otherwise the block is inserted at
// the top of the file with a single blank separator line before the original
// content. Applying Upsert twice with the same arguments yields the same
// text as applying it once.
func Upsert(original, host, identityFile string) (string, error) {
	lines := strings.Split(original, "\n")
	span, ok, err := Locate(lines)
	if err != nil {
		return "", err
	}

	block := Render(host, identityFile)

	if ok {
		out := make([]string, 0, len(lines))
		out = append(out, lines[:span.Begin]...)
		out = append(out, block...)
		out = append(out, lines[span.End+1:]...)
		return strings.Join(out, "\n"), nil
	}

	if original == "" {
		return strings.Join(block, "\n") + "\n", nil
	}
	return strings.Join(block, "\n") + "\n\n" + original, nil
}

// Remove returns original with the managed section deleted. The blank
// separator line is dropped only when the section sits at the top of the
// file, the one position Upsert inserts at. Text with no managed section is
// returned unchanged.
func Remove(original string) (string, error) {
	lines := strings.Split(original, "\n")
	span, ok, err := Locate(lines)
	if err != nil {
		return "", err
	}
	if !ok {
		return original, nil
	}

	tail := lines[span.End+1:]
	if span.Begin == 0 && len(tail) > 1 && tail[0] == "" {
		tail = tail[1:]
	}

	out := make([]string, 0, len(lines))
	out = append(out, lines[:span.Begin]...)
	out = append(out, tail...)
	return strings.Join(out, "\n"), nil
}
