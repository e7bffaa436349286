// Package hostspec parses host specifiers of the form
// [user@]host|alias[:port] into a canonical connection target.
package hostspec

import (
	"fmt"
	"strconv"
	"strings"
)

// Target is a resolved connection target. Port 0 means no port was given
// and the client's default applies.
type Target struct {
	User string
	Host string
	Port int
}

// String renders the target the way the transfer client expects it,
// without the port.
func (t Target) String() string {
	if t.User != "" {
		return t.User + "@" + t.Host
	}
	return t.Host
}

// Resolve parses spec and substitutes a known alias for the host part,
// preserving any user prefix and port. It has no side effects.
func Resolve(spec string, aliases map[string]string) (Target, error) {
	hostPart := spec
	port := 0

	if idx := strings.Index(spec, ":"); idx >= 0 {
		if strings.Count(spec, ":") > 1 {
			return Target{}, fmt.Errorf("invalid host specifier %q: more than one port separator", spec)
		}
		hostPart = spec[:idx]
		portStr := spec[idx+1:]
		p, err := strconv.Atoi(portStr)
		if err != nil || p < 1 || p > 65535 {
			return Target{}, fmt.Errorf("invalid host specifier %q: bad port %q", spec, portStr)
		}
		port = p
	}

	user := ""
	host := hostPart
	if idx := strings.Index(hostPart, "@"); idx >= 0 {
		user = hostPart[:idx]
		host = hostPart[idx+1:]
	}
	if host == "" {
		return Target{}, fmt.Errorf("invalid host specifier %q: empty host", spec)
	}

	if resolved, ok := aliases[host]; ok {
		host = resolved
	}

	return Target{User: user, Host: host, Port: port}, nil
}
