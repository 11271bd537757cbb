package httpapi

import (
	"context"
	"net"
	"net/http"
	"net/netip"
	"strings"

	"github.com/cockroachdb/errors"
)

const clientIPContextKey contextKey = "client_ip"

// ClientIPResolver decides which address identifies a submitter. The socket
// address is used unless a proxy header is configured, and that header is
// only read on connections coming from one of the trusted proxy prefixes.
// With a header but no prefixes every peer is treated as the proxy, which
// suits platforms that strip the header at the edge.
type ClientIPResolver struct {
	header  string
	proxies []netip.Prefix
}

func NewClientIPResolver(header string, trustedProxies []string) (*ClientIPResolver, error) {
	r := &ClientIPResolver{header: http.CanonicalHeaderKey(strings.TrimSpace(header))}
	for _, raw := range trustedProxies {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		prefix, err := parsePrefix(raw)
		if err != nil {
			return nil, errors.Wrapf(err, "trusted proxy %q", raw)
		}
		r.proxies = append(r.proxies, prefix)
	}
	if r.header == "" && len(r.proxies) > 0 {
		return nil, errors.New("trusted proxies are set but no proxy header is configured")
	}
	return r, nil
}

func parsePrefix(raw string) (netip.Prefix, error) {
	if strings.Contains(raw, "/") {
		prefix, err := netip.ParsePrefix(raw)
		return prefix.Masked(), err
	}
	addr, err := netip.ParseAddr(raw)
	if err != nil {
		return netip.Prefix{}, err
	}
	return netip.PrefixFrom(addr.Unmap(), addr.Unmap().BitLen()), nil
}

// Resolve returns the client address of r, or "" when none can be parsed.
func (c *ClientIPResolver) Resolve(r *http.Request) string {
	peer, ok := parseAddr(r.RemoteAddr)
	if c == nil || c.header == "" {
		if !ok {
			return ""
		}
		return peer.String()
	}
	if ok && !c.trusted(peer) {
		return peer.String()
	}

	// Walk the hops right to left: the first one not added by a trusted
	// proxy is the client.
	hops := strings.Split(r.Header.Get(c.header), ",")
	for i := len(hops) - 1; i >= 0; i-- {
		hop, hopOK := parseAddr(hops[i])
		if !hopOK {
			break
		}
		if i == 0 || !c.trusted(hop) {
			return hop.String()
		}
	}

	if !ok {
		return ""
	}
	return peer.String()
}

func (c *ClientIPResolver) trusted(addr netip.Addr) bool {
	if len(c.proxies) == 0 {
		return true
	}
	for _, prefix := range c.proxies {
		if prefix.Contains(addr) {
			return true
		}
	}
	return false
}

func parseAddr(raw string) (netip.Addr, bool) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return netip.Addr{}, false
	}
	if host, _, err := net.SplitHostPort(value); err == nil {
		value = host
	}
	addr, err := netip.ParseAddr(value)
	if err != nil {
		return netip.Addr{}, false
	}
	return addr.Unmap(), true
}

// ClientIP stores the resolved client address for handlers.
func ClientIP(resolver *ClientIPResolver, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), clientIPContextKey, resolver.Resolve(r))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func clientIPFromContext(ctx context.Context) string {
	v, _ := ctx.Value(clientIPContextKey).(string)
	return v
}
