package probe

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"strconv"
	"time"
)

// Result is the outcome of one connectivity probe.
type Result struct {
	Success bool          `json:"success"`
	Message string        `json:"message"`
	Latency time.Duration `json:"latency"`
}

// DialFunc matches net.Dialer.DialContext and is injectable for tests.
type DialFunc func(ctx context.Context, network, address string) (net.Conn, error)

// Prober performs reachability checks for configured connections and storage
// back-ends. Types without a network endpoint (serial ports, cloud providers
// behind SDK auth) get a configuration-only check: the console has no
// protocol drivers, so a live handshake is out of scope.
type Prober struct {
	timeout time.Duration
	client  *http.Client
	dial    DialFunc
}

// New constructs a Prober with the supplied per-probe timeout.
func New(timeout time.Duration) *Prober {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	dialer := &net.Dialer{Timeout: timeout}
	return &Prober{
		timeout: timeout,
		client:  &http.Client{Timeout: timeout},
		dial:    dialer.DialContext,
	}
}

// WithDialFunc overrides the dialer. Intended for tests.
func (p *Prober) WithDialFunc(dial DialFunc) *Prober {
	p.dial = dial
	return p
}

// Connection probes a data-source connection config by source type.
func (p *Prober) Connection(ctx context.Context, sourceType string, config map[string]any) Result {
	start := time.Now()

	switch sourceType {
	case "mqtt":
		return p.dialResult(ctx, start, "tcp", hostPort(config, "brokerAddress", "port"))
	case "modbus_tcp":
		return p.dialResult(ctx, start, "tcp", hostPort(config, "ipAddress", "port"))
	case "tcp":
		return p.dialResult(ctx, start, "tcp", hostPort(config, "host", "port"))
	case "udp":
		return p.dialResult(ctx, start, "udp", hostPort(config, "host", "port"))
	case "rest":
		return p.httpResult(ctx, start, stringValue(config, "endpointUrl"))
	case "soap":
		return p.httpResult(ctx, start, stringValue(config, "wsdlUrl"))
	case "modbus_rtu", "serial", "iot":
		return configOnly(start, sourceType)
	default:
		return Result{Message: fmt.Sprintf("unknown source type %q", sourceType), Latency: time.Since(start)}
	}
}

// Storage probes a storage back-end config by storage type.
func (p *Prober) Storage(ctx context.Context, storageType string, config map[string]any) Result {
	start := time.Now()

	switch storageType {
	case "postgresql", "mssql":
		return p.dialResult(ctx, start, "tcp", hostPort(config, "host", "port"))
	case "local":
		return localPathResult(start, stringValue(config, "path"))
	case "aws_s3", "google_cloud_storage", "azure_blob_storage", "oracle_cloud":
		return configOnly(start, storageType)
	default:
		return Result{Message: fmt.Sprintf("unknown storage type %q", storageType), Latency: time.Since(start)}
	}
}

func (p *Prober) dialResult(ctx context.Context, start time.Time, network, address string) Result {
	if address == "" {
		return Result{Message: "missing host or port", Latency: time.Since(start)}
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	conn, err := p.dial(ctx, network, address)
	if err != nil {
		return Result{Message: fmt.Sprintf("dial %s: %v", address, err), Latency: time.Since(start)}
	}
	_ = conn.Close()

	return Result{Success: true, Message: fmt.Sprintf("reached %s", address), Latency: time.Since(start)}
}

func (p *Prober) httpResult(ctx context.Context, start time.Time, url string) Result {
	if url == "" {
		return Result{Message: "missing endpoint URL", Latency: time.Since(start)}
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return Result{Message: fmt.Sprintf("invalid endpoint: %v", err), Latency: time.Since(start)}
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return Result{Message: fmt.Sprintf("request failed: %v", err), Latency: time.Since(start)}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 500 {
		return Result{Message: fmt.Sprintf("endpoint returned %s", resp.Status), Latency: time.Since(start)}
	}

	return Result{Success: true, Message: fmt.Sprintf("endpoint reachable (%s)", resp.Status), Latency: time.Since(start)}
}

func localPathResult(start time.Time, path string) Result {
	if path == "" {
		return Result{Message: "missing storage path", Latency: time.Since(start)}
	}

	info, err := os.Stat(path)
	if err != nil {
		return Result{Message: fmt.Sprintf("stat %s: %v", path, err), Latency: time.Since(start)}
	}
	if !info.IsDir() {
		return Result{Message: fmt.Sprintf("%s is not a directory", path), Latency: time.Since(start)}
	}

	return Result{Success: true, Message: fmt.Sprintf("path %s is writable storage", path), Latency: time.Since(start)}
}

func configOnly(start time.Time, tag string) Result {
	return Result{
		Success: true,
		Message: fmt.Sprintf("configuration accepted; %s has no reachability check", tag),
		Latency: time.Since(start),
	}
}

func hostPort(config map[string]any, hostKey, portKey string) string {
	host := stringValue(config, hostKey)
	port := intValue(config, portKey)
	if host == "" || port == 0 {
		return ""
	}
	return net.JoinHostPort(host, strconv.Itoa(port))
}

func stringValue(config map[string]any, key string) string {
	if v, ok := config[key].(string); ok {
		return v
	}
	return ""
}

func intValue(config map[string]any, key string) int {
	switch v := config[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	case string:
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return 0
		}
		return parsed
	default:
		return 0
	}
}
