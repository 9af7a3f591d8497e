// Package diffutil renders a line-oriented unified diff with
// three-line context, wrapping go-diff's diffmatchpatch the same way
// the teacher's utils/diff package does (Do/Src/Dst over
// DiffLinesToChars + DiffMain + DiffCharsToLines), adapted here to
// also assemble unified-diff hunks rather than stopping at the raw
// diff list.
package diffutil

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Do computes a line-level diff between src and dst text, collapsing
// each line to a single rune for the comparison pass and expanding
// back to full lines afterward.
func Do(src, dst string) []diffmatchpatch.Diff {
	dmp := diffmatchpatch.New()
	wSrc, wDst, lines := dmp.DiffLinesToChars(src, dst)
	diffs := dmp.DiffMain(wSrc, wDst, false)
	return dmp.DiffCharsToLines(diffs, lines)
}

type lineOp struct {
	kind byte // ' ', '-', '+'
	text string
}

func flatten(diffs []diffmatchpatch.Diff) []lineOp {
	var ops []lineOp
	for _, d := range diffs {
		var kind byte
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			kind = ' '
		case diffmatchpatch.DiffDelete:
			kind = '-'
		case diffmatchpatch.DiffInsert:
			kind = '+'
		}

		if d.Text == "" {
			continue
		}
		text := strings.TrimSuffix(d.Text, "\n")
		for _, line := range strings.Split(text, "\n") {
			ops = append(ops, lineOp{kind: kind, text: line})
		}
	}
	return ops
}

// Unified renders a unified diff of src vs dst, labeled with the
// given "from"/"to" path headers, using three lines of context around
// each change. It returns "" if src == dst.
func Unified(fromLabel, toLabel, src, dst string) string {
	if src == dst {
		return ""
	}

	ops := flatten(Do(src, dst))

	type hunk struct {
		ops              []lineOp
		fromStart, toStart int
	}

	var hunks []hunk
	fromLine, toLine := 1, 1

	const context = 3
	i := 0
	for i < len(ops) {
		if ops[i].kind == ' ' {
			fromLine++
			toLine++
			i++
			continue
		}

		// Start of a change run: back up to include leading context.
		start := i
		ctxStart := start
		for n := 0; n < context && ctxStart > 0 && ops[ctxStart-1].kind == ' '; n++ {
			ctxStart--
		}

		end := start
		for end < len(ops) {
			if ops[end].kind == ' ' {
				// Look ahead: if there's another change within 2*context,
				// keep this hunk going instead of closing it.
				run := 0
				j := end
				for j < len(ops) && ops[j].kind == ' ' && run < 2*context {
					run++
					j++
				}
				if j < len(ops) && ops[j].kind != ' ' {
					end = j
					continue
				}
				end += min(context, run)
				break
			}
			end++
		}
		if end > len(ops) {
			end = len(ops)
		}

		hFrom, hTo := fromLine, toLine
		for k := ctxStart; k < start; k++ {
			hFrom--
			hTo--
		}

		hunks = append(hunks, hunk{ops: ops[ctxStart:end], fromStart: hFrom, toStart: hTo})

		for k := start; k < end; k++ {
			switch ops[k].kind {
			case ' ':
				fromLine++
				toLine++
			case '-':
				fromLine++
			case '+':
				toLine++
			}
		}
		i = end
	}

	if len(hunks) == 0 {
		return ""
	}

	var buf strings.Builder
	fmt.Fprintf(&buf, "--- %s\n", fromLabel)
	fmt.Fprintf(&buf, "+++ %s\n", toLabel)

	for _, h := range hunks {
		fromLen, toLen := 0, 0
		for _, op := range h.ops {
			switch op.kind {
			case ' ':
				fromLen++
				toLen++
			case '-':
				fromLen++
			case '+':
				toLen++
			}
		}

		fmt.Fprintf(&buf, "@@ -%d,%d +%d,%d @@\n", h.fromStart, fromLen, h.toStart, toLen)
		for _, op := range h.ops {
			fmt.Fprintf(&buf, "%c%s\n", op.kind, op.text)
		}
	}

	return buf.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
