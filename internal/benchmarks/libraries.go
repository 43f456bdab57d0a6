// Package benchmarks compares bytediff against other Go diff libraries.
//
// Every implementation renders its result in a common one-edit-per-line
// format, prefixed with '+', '-', or ' '. The libraries work at different
// granularities (bytes, characters, lines), so the renderings are
// comparable, not identical.
package benchmarks

import (
	"bytes"
	"strings"

	"bytediff.dev"
	"github.com/aymanbagabas/go-udiff"
	godebug "github.com/kylelemons/godebug/diff"
	mb0 "github.com/mb0/diff"
	gointernal "github.com/rogpeppe/go-internal/diff"
	"github.com/sergi/go-diff/diffmatchpatch"
)

type Impl struct {
	Name string
	Diff func(x, y []byte) []byte
}

var Impls = []Impl{
	{
		Name: "bytediff",
		Diff: func(x, y []byte) []byte {
			return renderEdits(bytediff.Diff(x, y))
		},
	},
	{
		Name: "bytediff-unbounded",
		Diff: func(x, y []byte) []byte {
			return renderEdits(bytediff.Diff(x, y, bytediff.Timeout(0)))
		},
	},
	{
		Name: "bytediff-nolines",
		Diff: func(x, y []byte) []byte {
			return renderEdits(bytediff.Diff(x, y, bytediff.Checklines(false)))
		},
	},
	{
		Name: "diffmatchpatch",
		Diff: func(x, y []byte) []byte {
			dmp := diffmatchpatch.New()
			diffs := dmp.DiffMain(string(x), string(y), true)

			var buf bytes.Buffer
			for _, diff := range diffs {
				switch diff.Type {
				case diffmatchpatch.DiffInsert:
					buf.WriteString("+")
				case diffmatchpatch.DiffDelete:
					buf.WriteString("-")
				case diffmatchpatch.DiffEqual:
					buf.WriteString(" ")
				}
				buf.WriteString(strings.ReplaceAll(diff.Text, "\n", "\\n"))
				buf.WriteString("\n")
			}
			return buf.Bytes()
		},
	},
	{
		Name: "mb0",
		Diff: func(x, y []byte) []byte {
			// mb0 diffs at byte granularity like bytediff, without the
			// speedup heuristics.
			changes := mb0.Bytes(x, y)
			var buf bytes.Buffer
			a, b := 0, 0
			for _, ch := range changes {
				if a < ch.A {
					writeRun(&buf, ' ', x[a:ch.A])
					b += ch.A - a
					a = ch.A
				}
				if ch.Del > 0 {
					writeRun(&buf, '-', x[ch.A:ch.A+ch.Del])
					a += ch.Del
				}
				if ch.Ins > 0 {
					writeRun(&buf, '+', y[ch.B:ch.B+ch.Ins])
					b += ch.Ins
				}
			}
			if a < len(x) {
				writeRun(&buf, ' ', x[a:])
			}
			return buf.Bytes()
		},
	},
	{
		Name: "go-internal",
		Diff: func(x, y []byte) []byte {
			// Line-oriented unified diff.
			return gointernal.Diff("x", x, "y", y)
		},
	},
	{
		Name: "godebug",
		Diff: func(x, y []byte) []byte {
			// Line-oriented, no context trimming.
			return []byte(godebug.Diff(string(x), string(y)))
		},
	},
	{
		Name: "udiff",
		Diff: func(x, y []byte) []byte {
			// Line-oriented unified diff.
			return []byte(udiff.Unified("x", "y", string(x), string(y)))
		},
	},
}

func renderEdits(edits []bytediff.Edit) []byte {
	var buf bytes.Buffer
	for _, e := range edits {
		switch e.Op {
		case bytediff.Insert:
			writeRun(&buf, '+', e.Data)
		case bytediff.Delete:
			writeRun(&buf, '-', e.Data)
		case bytediff.Equal:
			writeRun(&buf, ' ', e.Data)
		}
	}
	return buf.Bytes()
}

func writeRun(buf *bytes.Buffer, op byte, run []byte) {
	buf.WriteByte(op)
	for _, c := range run {
		if c == '\n' {
			buf.WriteString("\\n")
		} else {
			buf.WriteByte(c)
		}
	}
	buf.WriteByte('\n')
}
