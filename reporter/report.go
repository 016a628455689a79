package reporter

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/cssx-dev/cssx/extractor"
	"github.com/cssx-dev/cssx/internal"
)

// Text renders every file's extraction results as the colorized text
// report, one entry per candidate/CSS-variable, sorted by filename.
func Text(results []internal.FileResult) string {
	var b strings.Builder

	sorted := make([]internal.FileResult, len(results))
	copy(sorted, results)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Path < sorted[j].Path })

	for _, r := range sorted {
		if r.Err != nil || len(r.Extracted) == 0 {
			continue
		}
		content, err := os.ReadFile(r.Path)
		if err != nil {
			continue
		}
		for _, e := range r.Extracted {
			b.WriteString(Build(r.Path, content, e))
		}
	}
	return b.String()
}

// jsonEntry is the JSON-serializable shape of one extraction result.
type jsonEntry struct {
	Kind  string `json:"kind"`
	Text  string `json:"text"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

// JSON renders every file's extraction results keyed by filename, the same
// shape the teacher's `lint --json` flag produces keyed by issue filename.
func JSON(results []internal.FileResult) ([]byte, error) {
	byFile := make(map[string][]jsonEntry)
	for _, r := range results {
		if r.Err != nil {
			continue
		}
		entries := make([]jsonEntry, 0, len(r.Extracted))
		for _, e := range r.Extracted {
			kind := "candidate"
			if e.Kind == extractor.ExtractedCssVariable {
				kind = "css_variable"
			}
			entries = append(entries, jsonEntry{Kind: kind, Text: e.String(), Start: e.Start, End: e.End})
		}
		if len(entries) > 0 {
			byFile[r.Path] = entries
		}
	}
	return json.Marshal(byFile)
}

// WriteJSON writes the JSON report either to outPath, or to stdout when
// outPath is empty.
func WriteJSON(results []internal.FileResult, outPath string) error {
	data, err := JSON(results)
	if err != nil {
		return fmt.Errorf("marshalling results to JSON: %w", err)
	}

	if outPath == "" {
		fmt.Println(string(data))
		return nil
	}

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating JSON output file: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("writing JSON output file: %w", err)
	}
	return nil
}
