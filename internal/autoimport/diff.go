package autoimport

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// contextLines is the number of unchanged lines shown around each change.
const contextLines = 3

type diffLine struct {
	op      diffmatchpatch.Operation
	text    string
	oldLine int // 1-based line number in before
	newLine int // 1-based line number in after
}

// Diff renders the change from before to after as a unified diff of name.
// Identical inputs yield an empty string.
func Diff(name, before, after string) string {
	if before == after {
		return ""
	}

	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToRunes(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMainRunes(a, b, false), lines)

	var all []diffLine
	oldNo, newNo := 1, 1
	for _, d := range diffs {
		for _, text := range splitLines(d.Text) {
			all = append(all, diffLine{op: d.Type, text: text, oldLine: oldNo, newLine: newNo})
			if d.Type != diffmatchpatch.DiffInsert {
				oldNo++
			}
			if d.Type != diffmatchpatch.DiffDelete {
				newNo++
			}
		}
	}

	keep := make([]bool, len(all))
	for i, l := range all {
		if l.op == diffmatchpatch.DiffEqual {
			continue
		}
		for j := max(0, i-contextLines); j <= min(len(all)-1, i+contextLines); j++ {
			keep[j] = true
		}
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "--- a/%s\n+++ b/%s\n", name, name)
	for i := 0; i < len(all); {
		if !keep[i] {
			i++
			continue
		}
		j := i
		for j < len(all) && keep[j] {
			j++
		}
		writeHunk(&sb, all[i:j])
		i = j
	}
	return sb.String()
}

func writeHunk(sb *strings.Builder, hunk []diffLine) {
	var oldCount, newCount int
	for _, l := range hunk {
		if l.op != diffmatchpatch.DiffInsert {
			oldCount++
		}
		if l.op != diffmatchpatch.DiffDelete {
			newCount++
		}
	}
	fmt.Fprintf(sb, "@@ -%d,%d +%d,%d @@\n", hunk[0].oldLine, oldCount, hunk[0].newLine, newCount)
	for _, l := range hunk {
		prefix := " "
		switch l.op {
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		}
		sb.WriteString(prefix + l.text + "\n")
	}
}

// splitLines splits text into lines without their terminators.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}
