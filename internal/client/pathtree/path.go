// Package pathtree derives a browsable folder hierarchy from the flat,
// slash-delimited path strings carried by backend documents. The backend
// stores no tree; everything here is computed client-side.
package pathtree

import (
	"sort"
	"strings"
)

// Normalize converts a raw, possibly malformed path into canonical form:
// exactly one leading slash, no trailing slashes except for the root "/".
//
// Internal repeated slashes are deliberately NOT collapsed; segment
// semantics must survive normalization unchanged. Malformed input never
// panics; the worst case returns "/".
func Normalize(p string) string {
	p = "/" + strings.TrimLeft(p, "/")
	for len(p) > 1 && p[len(p)-1] == '/' {
		p = p[:len(p)-1]
	}
	return p
}

// Segments splits a path into its raw segments after normalization.
// The root has zero segments. Empty segments produced by internal "//"
// are preserved.
func Segments(p string) []string {
	p = Normalize(p)
	if p == "/" {
		return nil
	}
	return strings.Split(p[1:], "/")
}

// childPrefix returns the prefix a path must carry to lie underneath
// current: "/" at the root, current + "/" otherwise.
func childPrefix(current string) string {
	if current == "/" {
		return "/"
	}
	return current + "/"
}

// ImmediateChildren computes the sorted, de-duplicated set of immediate
// child folder names underneath current, given the flat collection of
// document paths. Output order is lexicographic ascending and independent
// of the input order.
func ImmediateChildren(paths []string, current string) []string {
	cur := Normalize(current)
	prefix := childPrefix(cur)

	seen := make(map[string]struct{})
	for _, raw := range paths {
		p := Normalize(raw)
		if p == cur || !strings.HasPrefix(p, prefix) {
			continue
		}
		rest := strings.TrimPrefix(p, prefix)
		first, _, _ := strings.Cut(rest, "/")
		if first != "" {
			seen[first] = struct{}{}
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Join appends a child segment to a normalized folder path.
func Join(current, name string) string {
	cur := Normalize(current)
	if cur == "/" {
		return "/" + name
	}
	return cur + "/" + name
}

// Parent returns the parent of a normalized path, or "/" when the path is
// the root or a single segment.
func Parent(p string) string {
	p = Normalize(p)
	if p == "/" {
		return "/"
	}
	i := strings.LastIndexByte(p, '/')
	if i <= 0 {
		return "/"
	}
	return p[:i]
}
