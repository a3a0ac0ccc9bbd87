package fastboot

import (
	"strings"
	"unicode"
)

// Variable is one name/value pair reported by "getvar:all".
type Variable struct {
	Name  string
	Value string
}

// Fingerprint values embed colons, so these names split on the first colon.
var firstColonPrefixes = []string{
	"vendor-fingerprint:",
	"system-fingerprint:",
}

// ParseVariable splits one getvar:all line into name and value. Names
// may be hierarchical and contain colons, so the split is on the last
// colon, except for fingerprint lines. Lines without a colon yield ok=false.
func ParseVariable(line string) (v Variable, ok bool) {
	idx := strings.LastIndex(line, ":")
	for _, prefix := range firstColonPrefixes {
		if strings.HasPrefix(line, prefix) {
			idx = len(prefix) - 1
			break
		}
	}
	if idx < 0 {
		return v, false
	}
	return Variable{Name: line[:idx], Value: line[idx+1:]}, true
}

// ParseVariables parses every colon-carrying line, dropping the rest.
func ParseVariables(lines []string) []Variable {
	vars := make([]Variable, 0, len(lines))
	for _, line := range lines {
		if v, ok := ParseVariable(line); ok {
			vars = append(vars, v)
		}
	}
	return vars
}

// joinOEMOutput concatenates frame texts, terminating each line that
// lacks a newline, and trims trailing whitespace from the result.
func joinOEMOutput(frames []Frame) string {
	var sb strings.Builder
	for _, f := range frames {
		sb.WriteString(f.Text)
		if !strings.HasSuffix(f.Text, "\n") && !strings.HasSuffix(f.Text, "\r") {
			sb.WriteByte('\n')
		}
	}
	return strings.TrimRightFunc(sb.String(), unicode.IsSpace)
}

func frameTexts(frames []Frame) []string {
	lines := make([]string, len(frames))
	for i, f := range frames {
		lines[i] = f.Text
	}
	return lines
}
