package main

import (
	"fmt"
	"strconv"

	"github.com/tidwall/gjson"

	"github.com/docfold/highlighters/internal/highlighter"
)

// parseHighlightOptions turns the --options JSON object into
// HighlightOptions. Keys mirror the option fields: callouts (object of
// line → markers), css_mode, highlight_lines, line_numbers,
// start_line_number, style. Unknown keys are ignored.
func parseHighlightOptions(s string) (*highlighter.HighlightOptions, error) {
	opts := &highlighter.HighlightOptions{}
	if s == "" {
		return opts, nil
	}
	if !gjson.Valid(s) {
		return nil, fmt.Errorf("--options is not valid JSON: %q", s)
	}

	root := gjson.Parse(s)
	if !root.IsObject() {
		return nil, fmt.Errorf("--options must be a JSON object, got %q", s)
	}

	if v := root.Get("css_mode"); v.Exists() {
		opts.CSSMode = highlighter.CSSMode(v.String())
	}
	if v := root.Get("line_numbers"); v.Exists() {
		opts.LineNumbers = highlighter.LineNumberMode(v.String())
	}
	if v := root.Get("start_line_number"); v.Exists() {
		opts.StartLineNumber = int(v.Int())
	}
	if v := root.Get("style"); v.Exists() {
		opts.Style = v.String()
	}
	for _, n := range root.Get("highlight_lines").Array() {
		opts.HighlightLines = append(opts.HighlightLines, int(n.Int()))
	}

	if callouts := root.Get("callouts"); callouts.IsObject() {
		opts.Callouts = make(map[int][]string)
		var badKey string
		callouts.ForEach(func(key, value gjson.Result) bool {
			line, err := strconv.Atoi(key.String())
			if err != nil || line < 1 {
				badKey = key.String()
				return false
			}
			var markers []string
			for _, m := range value.Array() {
				markers = append(markers, m.String())
			}
			opts.Callouts[line] = markers
			return true
		})
		if badKey != "" {
			return nil, fmt.Errorf("callouts keys must be 1-based line numbers, got %q", badKey)
		}
	}

	return opts, nil
}
