package luego

import (
	"net/url"
	"strings"
)

// NormalizeURL validates a user-entered URL and returns its parsed form.
// Whitespace is trimmed and a missing scheme defaults to https. The result
// must be an http(s) URL with a non-empty host; anything else is EINVALID.
func NormalizeURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, Errorf(EINVALID, "URL required")
	}

	if !hasScheme(trimmed) {
		trimmed = "https://" + trimmed
	}

	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, Errorf(EINVALID, "invalid URL %q: %v", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, Errorf(EINVALID, "unsupported scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return nil, Errorf(EINVALID, "URL %q has no host", raw)
	}

	return u, nil
}

// hasScheme reports whether the URL starts with a scheme. A "://" later in
// the string (inside a path or query parameter) does not count.
func hasScheme(s string) bool {
	i := strings.Index(s, "://")
	if i < 0 {
		return false
	}
	return !strings.ContainsAny(s[:i], "/?#")
}

// ResolveImageURL resolves an image reference from a page against the page's
// base URL. Absolute http(s) references and data URIs pass through unchanged,
// protocol-relative references get https, and host-relative paths resolve
// against the base's scheme and host with the query stripped. Anything else
// (javascript:, bare relative paths, empty) is unresolvable and reported
// false so the caller can drop the image.
func ResolveImageURL(ref string, base *url.URL) (string, bool) {
	ref = strings.TrimSpace(ref)

	switch {
	case ref == "":
		return "", false

	case strings.HasPrefix(ref, "http://"), strings.HasPrefix(ref, "https://"):
		return ref, true

	case strings.HasPrefix(ref, "//"):
		return "https:" + ref, true

	case strings.HasPrefix(ref, "data:"):
		return ref, true

	case strings.HasPrefix(ref, "/"):
		if base == nil || base.Host == "" {
			return "", false
		}
		path := ref
		if i := strings.IndexByte(path, '?'); i >= 0 {
			path = path[:i]
		}
		return base.Scheme + "://" + base.Host + path, true

	default:
		return "", false
	}
}
