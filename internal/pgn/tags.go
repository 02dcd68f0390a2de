package pgn

import "strings"

// TagValue returns the value of the first tag pair named name in the record,
// or "" if the tag is absent. Tag names are case-sensitive.
func TagValue(record, name string) string {
	for _, line := range strings.Split(record, "\n") {
		if n, v, ok := parseTagLine(line); ok && n == name {
			return v
		}
	}
	return ""
}

// Headers scans all tag lines into a map. The first occurrence of a tag wins.
func Headers(record string) map[string]string {
	out := map[string]string{}
	for _, line := range strings.Split(record, "\n") {
		n, v, ok := parseTagLine(line)
		if !ok {
			continue
		}
		if _, seen := out[n]; !seen {
			out[n] = v
		}
	}
	return out
}

// parseTagLine scans a single line of the form [Name "Value"]. The value may
// contain any character except a double quote. Malformed lines are rejected.
func parseTagLine(line string) (name, value string, ok bool) {
	line = strings.TrimRight(line, "\r")
	if !strings.HasPrefix(line, "[") {
		return "", "", false
	}
	rest := line[1:]

	i := 0
	for i < len(rest) && isTagNameChar(rest[i]) {
		i++
	}
	if i == 0 {
		return "", "", false
	}
	name = rest[:i]
	rest = rest[i:]

	j := 0
	for j < len(rest) && (rest[j] == ' ' || rest[j] == '\t') {
		j++
	}
	if j == 0 || j >= len(rest) || rest[j] != '"' {
		return "", "", false
	}
	rest = rest[j+1:]

	end := strings.IndexByte(rest, '"')
	if end < 0 || !strings.HasPrefix(rest[end+1:], "]") {
		return "", "", false
	}
	return name, rest[:end], true
}

func isTagNameChar(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '_'
}
