// Package urlpath normalises internal site links.
package urlpath

import (
	"regexp"
	"strings"
)

var fileExtension = regexp.MustCompile(`(?i)\.[a-z]+$`)

// EnsureTrailingSlash appends "/" to internal page paths so links match the
// site's directory-style URLs. Empty strings, absolute http(s) URLs, bare
// fragments and paths ending in a file extension are returned unchanged. A
// fragment is kept after the slash; an empty fragment is dropped.
func EnsureTrailingSlash(href string) string {
	if href == "" || strings.HasPrefix(href, "http") || strings.HasPrefix(href, "#") {
		return href
	}

	path, fragment, _ := strings.Cut(href, "#")
	if strings.HasSuffix(path, "/") || fileExtension.MatchString(path) {
		return href
	}
	if fragment != "" {
		return path + "/#" + fragment
	}
	return path + "/"
}
