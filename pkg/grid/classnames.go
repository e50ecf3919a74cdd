package grid

import "strings"

// classList joins class names, skipping empty entries and duplicates.
// Each entry may hold several space separated names. A caller class that
// repeats a generated one, such as "tg-row", appears once, at the position
// of its first occurrence.
func classList(names ...string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, n := range names {
		for _, f := range strings.Fields(n) {
			if seen[f] {
				continue
			}
			seen[f] = true
			out = append(out, f)
		}
	}
	return out
}

// when returns name if cond holds, "" otherwise.
func when(cond bool, name string) string {
	if cond {
		return name
	}
	return ""
}
