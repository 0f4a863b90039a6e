package rcm

import "strings"

// mergeCookies appends the name=value prefix of each Set-Cookie header
// onto an existing "; "-joined cookie string. Attributes after the
// first ";" (Path, HttpOnly, ...) are dropped; order is preserved and
// duplicates are not collapsed, the server tolerates repeats and the
// later value wins.
func mergeCookies(existing string, setCookies []string) string {
	pairs := []string{}
	if existing != "" {
		pairs = append(pairs, existing)
	}
	for _, sc := range setCookies {
		nv := strings.TrimSpace(strings.SplitN(sc, ";", 2)[0])
		if nv == "" {
			continue
		}
		pairs = append(pairs, nv)
	}
	return strings.Join(pairs, "; ")
}
