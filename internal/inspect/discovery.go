package inspect

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/grandcat/zeroconf"
	"go.uber.org/zap"

	"github.com/muurk/micromodal/internal/logging"
	"github.com/muurk/micromodal/internal/version"
)

const (
	// ServiceType is the mDNS service type inspectors advertise.
	ServiceType = "_micromodal._tcp"

	// ServiceDomain is the mDNS domain (typically "local.")
	ServiceDomain = "local."

	// DefaultBrowseTimeout is the default timeout for Browse
	DefaultBrowseTimeout = 3 * time.Second

	eventsPath = "/events"
)

// Endpoint is an inspector found on the network.
type Endpoint struct {
	Instance string
	Host     string
	IP       string
	Port     int
	Path     string
	Version  string
}

// URL returns the websocket URL of the endpoint's event stream.
func (e Endpoint) URL() string {
	return "ws://" + net.JoinHostPort(e.IP, strconv.Itoa(e.Port)) + e.Path
}

// String returns a human-readable description of the endpoint
func (e Endpoint) String() string {
	return fmt.Sprintf("%s (%s) at %s", e.Instance, e.Version, e.URL())
}

// Advertise registers the inspector on port over mDNS and keeps the
// registration until ctx ends.
func Advertise(ctx context.Context, instance string, port int) error {
	txt := []string{"version=" + version.Version, "path=" + eventsPath}
	server, err := zeroconf.Register(instance, ServiceType, ServiceDomain, port, txt, nil)
	if err != nil {
		return fmt.Errorf("failed to register mDNS service: %w", err)
	}
	defer server.Shutdown()

	logging.Info("Advertising inspector",
		zap.String("instance", instance),
		zap.String("service", ServiceType),
		zap.Int("port", port),
	)
	<-ctx.Done()
	return nil
}

// Browse collects inspectors announced on the network until timeout.
func Browse(ctx context.Context, timeout time.Duration) ([]Endpoint, error) {
	if timeout <= 0 {
		timeout = DefaultBrowseTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	resolver, err := zeroconf.NewResolver(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create mDNS resolver: %w", err)
	}

	var (
		mu        sync.Mutex
		endpoints []Endpoint
		seen      = make(map[string]bool)
	)
	entries := make(chan *zeroconf.ServiceEntry)
	go func() {
		for entry := range entries {
			ep, ok := endpointFromEntry(entry)
			if !ok {
				continue
			}
			mu.Lock()
			if key := ep.URL(); !seen[key] {
				seen[key] = true
				endpoints = append(endpoints, ep)
			}
			mu.Unlock()
		}
	}()

	if err := resolver.Browse(ctx, ServiceType, ServiceDomain, entries); err != nil {
		return nil, fmt.Errorf("failed to browse for mDNS services: %w", err)
	}
	<-ctx.Done()

	mu.Lock()
	defer mu.Unlock()
	return append([]Endpoint(nil), endpoints...), nil
}

// endpointFromEntry converts a service entry. Entries without an address
// are skipped.
func endpointFromEntry(entry *zeroconf.ServiceEntry) (Endpoint, bool) {
	if entry == nil || entry.Port == 0 {
		return Endpoint{}, false
	}

	var ip string
	if len(entry.AddrIPv4) > 0 {
		ip = entry.AddrIPv4[0].String()
	} else if len(entry.AddrIPv6) > 0 {
		ip = entry.AddrIPv6[0].String()
	}
	if ip == "" {
		return Endpoint{}, false
	}

	ep := Endpoint{
		Instance: entry.Instance,
		Host:     entry.HostName,
		IP:       ip,
		Port:     entry.Port,
		Path:     eventsPath,
	}
	for _, txt := range entry.Text {
		k, v, _ := strings.Cut(txt, "=")
		switch k {
		case "version":
			ep.Version = v
		case "path":
			if strings.HasPrefix(v, "/") {
				ep.Path = v
			}
		}
	}
	return ep, true
}
