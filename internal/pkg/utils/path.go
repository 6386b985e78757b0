package utils

import (
	"net/url"
	"strings"
)

// BuildResourcePath joins base with path escaped segments.
func BuildResourcePath(base string, segments ...string) string {
	var builder strings.Builder
	builder.WriteString(strings.TrimRight(base, "/"))
	for _, segment := range segments {
		builder.WriteString("/")
		builder.WriteString(url.PathEscape(segment))
	}
	return builder.String()
}

// BuildQueryPath appends a single query parameter to path. An empty value
// leaves path untouched.
func BuildQueryPath(path, key, value string) string {
	if value == "" {
		return path
	}
	return path + "?" + url.Values{key: []string{value}}.Encode()
}
