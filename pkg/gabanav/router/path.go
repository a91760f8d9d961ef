package router

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// ResolvePath resolves target against base like a filesystem path.
//
// A leading "/" makes target absolute. ".." removes one segment, "." and
// empty segments are skipped, anything else is appended. The result is
// always absolute and never ends with a slash, except for the root "/".
// Segments are NFC-normalized so equivalent spellings compare equal.
func ResolvePath(base, target string) string {
	var segments []string
	if !strings.HasPrefix(target, "/") {
		segments = splitPath(base)
	}

	for _, segment := range strings.Split(target, "/") {
		switch segment {
		case "", ".":
			continue
		case "..":
			if len(segments) > 0 {
				segments = segments[:len(segments)-1]
			}
		default:
			segments = append(segments, norm.NFC.String(segment))
		}
	}

	return "/" + strings.Join(segments, "/")
}

// CleanPath returns the canonical absolute form of path.
func CleanPath(path string) string {
	return ResolvePath("/", path)
}

func splitPath(path string) []string {
	var segments []string
	for _, segment := range strings.Split(path, "/") {
		if segment != "" {
			segments = append(segments, segment)
		}
	}
	return segments
}
