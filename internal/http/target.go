package http

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	httperrors "github.com/wesleyorama2/httpsock/internal/errors"
)

// Target is the part of a URL the client needs to open a socket and name
// the resource. Scheme, query and fragment are not used.
type Target struct {
	Host string
	Port int // 0 when the URL has none
	Path string
}

// ParseTarget extracts host, port and path from rawURL. A URL without a
// scheme is read as http.
func ParseTarget(rawURL string) (Target, error) {
	if !hasScheme(rawURL) {
		rawURL = "http://" + rawURL
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return Target{}, httperrors.New(httperrors.URLError, "parse url", err)
	}

	host := u.Hostname()
	if host == "" {
		return Target{}, httperrors.New(httperrors.URLError, "parse url",
			errors.New("missing host in "+rawURL))
	}

	port := 0
	if p := u.Port(); p != "" {
		port, err = strconv.Atoi(p)
		if err != nil || port < 1 || port > 65535 {
			return Target{}, httperrors.New(httperrors.URLError, "parse url",
				fmt.Errorf("invalid port %q", p))
		}
	}

	return Target{Host: host, Port: port, Path: u.EscapedPath()}, nil
}

// hasScheme reports whether rawURL starts with "scheme://". A "://" that
// only appears after the path, query or fragment begins does not count.
func hasScheme(rawURL string) bool {
	i := strings.Index(rawURL, "://")
	return i > 0 && !strings.ContainsAny(rawURL[:i], "/?#")
}
