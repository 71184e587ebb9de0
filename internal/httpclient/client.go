// Package httpclient builds the HTTP client used to download dataset sources.
//
// Dataset urls come from checked-in config, but a redirect or a DNS answer
// can still point a download at an internal address. The client refuses
// those unless private addresses are explicitly allowed.
package httpclient

import (
	"context"
	"net"
	"net/http"
	"net/url"
	"slices"
	"strings"
	"time"

	"github.com/teranos/datasets/errors"
)

// DefaultMaxRedirects bounds redirect chains.
const DefaultMaxRedirects = 10

// Options configures New.
type Options struct {
	// Timeout bounds a whole download. Zero means no limit.
	Timeout time.Duration

	// MaxRedirects defaults to DefaultMaxRedirects when zero.
	MaxRedirects int

	// AllowPrivate permits loopback, link-local and private addresses, for
	// mirrors on the local network.
	AllowPrivate bool
}

// Guard decides which URLs and addresses a download may reach.
type Guard struct {
	schemes      []string
	allowPrivate bool
}

// NewGuard returns a guard admitting http and https.
func NewGuard(allowPrivate bool) *Guard {
	return &Guard{schemes: []string{"http", "https"}, allowPrivate: allowPrivate}
}

// CheckURL rejects URLs with a foreign scheme, embedded credentials or a
// private host.
func (g *Guard) CheckURL(u *url.URL) error {
	scheme := strings.ToLower(u.Scheme)
	if !slices.Contains(g.schemes, scheme) {
		return errors.Newf("scheme %q not allowed (allowed: %v)", scheme, g.schemes)
	}
	if u.User != nil {
		return errors.New("url must not carry credentials")
	}

	host := u.Hostname()
	if host == "" {
		return errors.New("url missing hostname")
	}
	if g.allowPrivate {
		return nil
	}
	if isLocalhost(host) {
		return errors.Newf("localhost access blocked: %s", host)
	}
	if ip := net.ParseIP(host); ip != nil && isPrivateIP(ip) {
		return errors.Newf("private IP address blocked: %s", host)
	}
	return nil
}

// CheckAddr rejects a resolved address in a private range.
func (g *Guard) CheckAddr(ip net.IP) error {
	if !g.allowPrivate && isPrivateIP(ip) {
		return errors.Newf("private IP address blocked: %s", ip)
	}
	return nil
}

// New returns an http.Client that checks every request and redirect against
// a Guard and refuses to dial private addresses after DNS resolution.
func New(opts Options) *http.Client {
	guard := NewGuard(opts.AllowPrivate)
	maxRedirects := opts.MaxRedirects
	if maxRedirects <= 0 {
		maxRedirects = DefaultMaxRedirects
	}

	dialer := &net.Dialer{
		Timeout:   30 * time.Second,
		KeepAlive: 30 * time.Second,
	}
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: func(ctx context.Context, network, addr string) (net.Conn, error) {
			host, port, err := net.SplitHostPort(addr)
			if err != nil {
				return nil, errors.Wrap(err, "invalid address")
			}
			ips, err := net.DefaultResolver.LookupIP(ctx, "ip", host)
			if err != nil {
				return nil, errors.Wrapf(err, "failed to resolve host %q", host)
			}
			for _, ip := range ips {
				if err := guard.CheckAddr(ip); err != nil {
					return nil, err
				}
			}
			// Dial the checked address so a second lookup cannot rebind.
			return dialer.DialContext(ctx, network, net.JoinHostPort(ips[0].String(), port))
		},
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}

	return &http.Client{
		Timeout:   opts.Timeout,
		Transport: &guardedTransport{guard: guard, next: transport},
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= maxRedirects {
				return errors.Newf("stopped after %d redirects", maxRedirects)
			}
			if err := guard.CheckURL(req.URL); err != nil {
				return errors.Wrap(err, "redirect blocked")
			}
			return nil
		},
	}
}

// guardedTransport checks each outgoing request URL before sending it.
type guardedTransport struct {
	guard *Guard
	next  http.RoundTripper
}

func (t *guardedTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if err := t.guard.CheckURL(req.URL); err != nil {
		return nil, errors.Wrap(err, "request blocked")
	}
	return t.next.RoundTrip(req)
}

// isPrivateIP reports loopback, private, link-local, multicast and reserved
// addresses of both families.
func isPrivateIP(ip net.IP) bool {
	if ip4 := ip.To4(); ip4 != nil {
		for _, block := range privateV4 {
			if block.Contains(ip4) {
				return true
			}
		}
		return false
	}
	if len(ip) != net.IPv6len {
		return false
	}

	if ip.IsLoopback() || ip.IsLinkLocalUnicast() || ip.IsMulticast() || ip.IsUnspecified() {
		return true
	}
	// fc00::/7 unique local and the deprecated fec0::/10 site-local range.
	if ip[0]&0xfe == 0xfc || (ip[0] == 0xfe && ip[1]&0xc0 == 0xc0) {
		return true
	}
	// 2001:db8::/32 documentation prefix.
	return ip[0] == 0x20 && ip[1] == 0x01 && ip[2] == 0x0d && ip[3] == 0xb8
}

var privateV4 = []net.IPNet{
	{IP: net.IPv4(10, 0, 0, 0), Mask: net.CIDRMask(8, 32)},
	{IP: net.IPv4(172, 16, 0, 0), Mask: net.CIDRMask(12, 32)},
	{IP: net.IPv4(192, 168, 0, 0), Mask: net.CIDRMask(16, 32)},
	{IP: net.IPv4(127, 0, 0, 0), Mask: net.CIDRMask(8, 32)},
	{IP: net.IPv4(169, 254, 0, 0), Mask: net.CIDRMask(16, 32)},
	{IP: net.IPv4(0, 0, 0, 0), Mask: net.CIDRMask(8, 32)},
	{IP: net.IPv4(224, 0, 0, 0), Mask: net.CIDRMask(4, 32)},
	{IP: net.IPv4(240, 0, 0, 0), Mask: net.CIDRMask(4, 32)},
}

func isLocalhost(host string) bool {
	host = strings.ToLower(host)
	return host == "localhost" ||
		host == "localhost.localdomain" ||
		strings.HasSuffix(host, ".localhost")
}
