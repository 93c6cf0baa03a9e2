package output

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/gonvenience/ytbx"
	"github.com/homeport/dyff/pkg/dyff"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// diffContext is the number of unchanged lines kept around each change.
const diffContext = 2

// TextDiff renders a line diff between two versions of a source file.
// It returns an empty string when the versions are identical.
func TextDiff(name, before, after string, useColor bool) string {
	if before == after {
		return ""
	}

	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	paint := func(style func(...string) string, s string) string {
		if useColor {
			return style(s)
		}
		return s
	}

	var sb strings.Builder
	sb.WriteString(paint(StyleDim.Render, "--- "+name))
	sb.WriteString("\n")
	sb.WriteString(paint(StyleDim.Render, "+++ "+name+" (patched)"))
	sb.WriteString("\n")

	for i, d := range diffs {
		segment := splitLines(d.Text)
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			for _, l := range segment {
				sb.WriteString(paint(StyleAdded.Render, "+ "+l))
				sb.WriteString("\n")
			}
		case diffmatchpatch.DiffDelete:
			for _, l := range segment {
				sb.WriteString(paint(StyleRemoved.Render, "- "+l))
				sb.WriteString("\n")
			}
		case diffmatchpatch.DiffEqual:
			for _, l := range contextLines(segment, i == 0, i == len(diffs)-1) {
				sb.WriteString("  " + l)
				sb.WriteString("\n")
			}
		}
	}

	return sb.String()
}

// contextLines trims an unchanged segment down to the lines adjacent to the
// neighbouring changes.
func contextLines(lines []string, first, last bool) []string {
	keepHead := diffContext
	keepTail := diffContext
	if first {
		keepHead = 0
	}
	if last {
		keepTail = 0
	}

	if len(lines) <= keepHead+keepTail {
		return lines
	}

	out := make([]string, 0, keepHead+keepTail+1)
	out = append(out, lines[:keepHead]...)
	out = append(out, "...")
	out = append(out, lines[len(lines)-keepTail:]...)
	return out
}

func splitLines(text string) []string {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return []string{""}
	}
	return strings.Split(text, "\n")
}

// DocumentDiff renders a structural diff of two JSON or YAML documents.
// It returns an empty string when the documents are equivalent.
func DocumentDiff(before, after []byte, useColor bool) (string, error) {
	if len(bytes.TrimSpace(before)) == 0 && len(bytes.TrimSpace(after)) == 0 {
		return "", nil
	}

	from, err := parseDocument("before", before)
	if err != nil {
		return "", fmt.Errorf("parsing original document: %w", err)
	}

	to, err := parseDocument("after", after)
	if err != nil {
		return "", fmt.Errorf("parsing patched document: %w", err)
	}

	report, err := dyff.CompareInputFiles(from, to)
	if err != nil {
		return "", fmt.Errorf("comparing documents: %w", err)
	}

	if len(report.Diffs) == 0 {
		return "", nil
	}

	var buf bytes.Buffer
	reportWriter := &dyff.HumanReport{
		Report:            report,
		DoNotInspectCerts: true,
		NoTableStyle:      !useColor,
		OmitHeader:        true,
	}
	if err := reportWriter.WriteReport(io.Writer(&buf)); err != nil {
		return "", fmt.Errorf("writing report: %w", err)
	}

	lines := strings.Split(buf.String(), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.TrimSpace(strings.Join(lines, "\n")), nil
}

// parseDocument parses JSON or YAML bytes into a dyff input file.
func parseDocument(name string, data []byte) (ytbx.InputFile, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return ytbx.InputFile{Location: name}, nil
	}

	docs, err := ytbx.LoadYAMLDocuments(data)
	if err != nil {
		return ytbx.InputFile{}, err
	}

	return ytbx.InputFile{
		Location:  name,
		Documents: docs,
	}, nil
}
