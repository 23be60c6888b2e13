package galaxy

import (
	"net/url"
	"strings"
)

// PathFromDownlink extracts the repository-relative file path from a
// resolved downlink URL. Two upstream URL formats are handled: the newer
// "...?path=/slug/file&token=..." form and the older ".../slug/file?..." form.
//
// When the URL has no "/slug/" segment the last path segment is used and
// prefixed with "/slug/". A URL without any "/" is treated as a bare file
// name. An empty file name yields "", which callers must skip.
func PathFromDownlink(downlink, slug string) string {
	u, err := url.PathUnescape(downlink)
	if err != nil {
		u = downlink
	}

	end := len(u)
	if strings.Contains(u, "?path=") {
		token := strings.Index(u, "&token=")
		accessToken := strings.Index(u, "&access_token=")
		if token >= 0 && accessToken >= 0 {
			end = min(token, accessToken)
		} else if amp := strings.Index(u, "&"); amp >= 0 {
			end = amp
		}
	} else if q := strings.Index(u, "?"); q >= 0 {
		end = q
	}

	var path string
	segment := "/" + slug + "/"
	if start := strings.Index(u, segment); slug != "" && start >= 0 {
		if end < start+len(segment) {
			end = len(u)
		}
		path = u[start:end]
	} else {
		head := u[:end]
		name := head[strings.LastIndex(head, "/")+1:]
		if name == "" {
			return ""
		}
		path = segment + name
	}

	if q := strings.LastIndex(path, "?"); q >= 0 && q > strings.LastIndex(path, "/") {
		path = path[:q]
	}
	return path
}

// isSecurePlaceholder reports paths ending in "/secure", which upstream
// returns instead of a real file location.
func isSecurePlaceholder(path string) bool {
	return strings.HasSuffix(strings.ToLower(path), "/secure")
}
