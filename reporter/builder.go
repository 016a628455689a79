// Package reporter renders extraction results for a human to read: a
// colorized file:line:col header, a one-line code excerpt, and a ^^^
// underline spanning the match, in the same style the teacher's issue
// formatter uses for lint diagnostics.
package reporter

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/fatih/color"

	"github.com/cssx-dev/cssx/extractor"
)

var (
	candidateStyle = color.New(color.FgGreen, color.Bold)
	cssVarStyle    = color.New(color.FgMagenta, color.Bold)
	fileStyle      = color.New(color.FgCyan, color.Bold)
	lineStyle      = color.New(color.FgBlue, color.Bold)
	messageStyle   = color.New(color.FgRed, color.Bold)
	noStyle        = color.New(color.FgWhite)
)

const reportTemplate = `{{header .Kind .Padding .Filename .StartLine .StartColumn}}` +
	`{{snippet .SnippetLines .StartLine .EndLine .Padding}}` +
	`{{underline .Padding .StartLine .EndLine .StartColumn .EndColumn .SnippetLines .Text}}`

var funcMap = template.FuncMap{
	"header":    header,
	"snippet":   codeSnippet,
	"underline": underlineMatch,
}

var cachedTemplate = template.Must(template.New("extracted").Funcs(funcMap).Parse(reportTemplate))

type entryData struct {
	Kind         string
	Text         string
	Filename     string
	Padding      string
	StartLine    int
	StartColumn  int
	EndLine      int
	EndColumn    int
	SnippetLines []string
}

// Build renders one extraction result found in content read from filename.
func Build(filename string, content []byte, e extractor.Extracted) string {
	starts := lineStarts(content)
	start := positionAt(starts, e.Start)
	end := positionAt(starts, e.End)
	lines := strings.Split(string(content), "\n")

	kind := "candidate"
	if e.Kind == extractor.ExtractedCssVariable {
		kind = "css variable"
	}

	data := entryData{
		Kind:         kind,
		Text:         e.String(),
		Filename:     filename,
		Padding:      strings.Repeat(" ", len(fmt.Sprintf("%d", end.Line))+1),
		StartLine:    start.Line,
		StartColumn:  start.Column,
		EndLine:      end.Line,
		EndColumn:    end.Column,
		SnippetLines: lines,
	}

	var buf bytes.Buffer
	if err := cachedTemplate.Execute(&buf, data); err != nil {
		return fmt.Sprintf("error formatting result: %v", err)
	}
	return buf.String()
}

func header(kind, padding, filename string, line, col int) string {
	var s string
	switch kind {
	case "css variable":
		s = cssVarStyle.Sprintf("css variable: ")
	default:
		s = candidateStyle.Sprintf("candidate: ")
	}
	s += lineStyle.Sprintf("%s--> ", padding)
	s += fileStyle.Sprintf("%s:%d:%d\n", filename, line, col)
	return s
}

func codeSnippet(lines []string, startLine, endLine int, padding string) string {
	s := lineStyle.Sprintf("%s|\n", padding)
	width := len(padding) - 1
	for i := startLine; i <= endLine; i++ {
		if i-1 < 0 || i-1 >= len(lines) {
			continue
		}
		lineNum := fmt.Sprintf("%*d", width, i)
		s += lineStyle.Sprintf("%s | ", lineNum)
		s += noStyle.Sprintf("%s\n", lines[i-1])
	}
	return s
}

func underlineMatch(padding string, startLine, endLine, startCol, endCol int, lines []string, text string) string {
	s := lineStyle.Sprintf("%s| ", padding)

	if startLine != endLine || startLine-1 < 0 || startLine-1 >= len(lines) {
		s += messageStyle.Sprintf("%s\n", text)
		return s
	}

	length := endCol - startCol + 1
	if length < 1 {
		length = 1
	}
	s += strings.Repeat(" ", startCol-1)
	s += messageStyle.Sprintf("%s\n", strings.Repeat("^", length))
	return s
}
