package server

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"net/http"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"careerdecide/internal/errors"
	"careerdecide/internal/observability"

	"go.opentelemetry.io/otel/metric"
)

// CertReloader holds the server key pair and swaps it atomically when
// the certificate files change on disk.
type CertReloader struct {
	mu       sync.RWMutex
	certFile string
	keyFile  string
	cert     *tls.Certificate
	reloads  atomic.Int64
	logger   *errors.Logger
}

// NewCertReloader loads the initial key pair from files
func NewCertReloader(certFile, keyFile string, logger *errors.Logger) (*CertReloader, error) {
	cr := &CertReloader{
		certFile: certFile,
		keyFile:  keyFile,
		logger:   logger,
	}
	if err := cr.Reload(); err != nil {
		return nil, err
	}
	return cr, nil
}

// Reload re-reads the key pair from disk
func (cr *CertReloader) Reload() error {
	cert, err := tls.LoadX509KeyPair(cr.certFile, cr.keyFile)
	if err != nil {
		return fmt.Errorf("failed to load server cert/key: %w", err)
	}

	cr.mu.Lock()
	cr.cert = &cert
	cr.mu.Unlock()
	cr.reloads.Add(1)

	return nil
}

// GetCertificate is the tls.Config callback returning the current key pair
func (cr *CertReloader) GetCertificate(*tls.ClientHelloInfo) (*tls.Certificate, error) {
	cr.mu.RLock()
	defer cr.mu.RUnlock()

	if cr.cert == nil {
		return nil, fmt.Errorf("no certificate loaded")
	}
	return cr.cert, nil
}

// CheckExpiry returns the time remaining until the leaf certificate expires
func (cr *CertReloader) CheckExpiry() (time.Duration, error) {
	cr.mu.RLock()
	defer cr.mu.RUnlock()

	if cr.cert == nil {
		return 0, fmt.Errorf("no certificate loaded")
	}

	leaf := cr.cert.Leaf
	if leaf == nil {
		parsed, err := x509.ParseCertificate(cr.cert.Certificate[0])
		if err != nil {
			return 0, fmt.Errorf("failed to parse certificate: %w", err)
		}
		leaf = parsed
	}

	return time.Until(leaf.NotAfter), nil
}

// ReloadCount returns how many times the key pair has been (re)loaded
func (cr *CertReloader) ReloadCount() int64 {
	return cr.reloads.Load()
}

// configureTLS sets up TLS configuration based on the mode
func (s *Server) configureTLS(httpServer *http.Server, om *observability.ObservabilityManager) error {
	addr := httpServer.Addr

	switch s.TLSConfig.Mode {
	case "server":
		fmt.Printf("Starting server with HTTPS (server-only TLS) on https://%s\n", addr)
		fmt.Println("TLS mode: Server-only (no client certificates required)")
	case "mutual":
		fmt.Printf("Starting server with mTLS (mutual TLS) on https://%s\n", addr)
		fmt.Println("TLS mode: Mutual (client certificates required)")
	case "disabled":
		fmt.Printf("Starting server on http://%s\n", addr)
		fmt.Println("TLS mode: Disabled (HTTP only)")
		return nil
	default:
		return fmt.Errorf("invalid TLS mode: %s (must be 'disabled', 'server', or 'mutual')", s.TLSConfig.Mode)
	}

	if err := s.setupCertReloading(om); err != nil {
		return err
	}

	tlsConfig, err := s.buildTLSConfig()
	if err != nil {
		return fmt.Errorf("failed to set up TLS: %w", err)
	}
	httpServer.TLSConfig = tlsConfig

	return nil
}

// setupCertReloading initializes the certificate reloader and, when
// auto-reload is enabled, the file watcher that drives it
func (s *Server) setupCertReloading(om *observability.ObservabilityManager) error {
	reloader, err := NewCertReloader(s.TLSConfig.CertFile, s.TLSConfig.KeyFile, s.Logger)
	if err != nil {
		return err
	}
	s.CertReloader = reloader

	if !s.TLSConfig.AutoReload.Enabled {
		return nil
	}

	watcher, err := NewCertWatcher(
		s.TLSConfig.CertFile,
		s.TLSConfig.KeyFile,
		s.TLSConfig.CAFile,
		s.TLSConfig.AutoReload.DebounceDelay,
		func() {
			if err := reloader.Reload(); err != nil {
				s.Logger.LogError(err, "Failed to reload TLS certificates")
				return
			}
			s.Logger.Info("TLS certificates reloaded successfully")
			metrics := om.GetMetrics()
			if metrics.CertReloadCount != nil {
				metrics.CertReloadCount.Add(context.Background(), 1)
			}
			if expiry, err := reloader.CheckExpiry(); err == nil && metrics.CertExpiryTime != nil {
				metrics.CertExpiryTime.Record(context.Background(), expiry.Seconds(),
					metric.WithAttributes())
			}
		},
		s.Logger,
	)
	if err != nil {
		return fmt.Errorf("failed to create certificate watcher: %w", err)
	}

	if err := watcher.Start(); err != nil {
		return fmt.Errorf("failed to start certificate watcher: %w", err)
	}
	s.CertWatcher = watcher

	fmt.Println("TLS auto-reload: ENABLED (file watching)")

	return nil
}

// buildTLSConfig creates the TLS configuration
func (s *Server) buildTLSConfig() (*tls.Config, error) {
	tlsConfig := &tls.Config{
		MinVersion:     tls.VersionTLS12,
		GetCertificate: s.CertReloader.GetCertificate,
	}

	s.configureTLSVersion(tlsConfig)

	if err := s.configureClientAuthentication(tlsConfig); err != nil {
		return nil, err
	}

	return tlsConfig, nil
}

// configureTLSVersion sets the minimum TLS version
func (s *Server) configureTLSVersion(tlsConfig *tls.Config) {
	switch s.TLSConfig.MinVersion {
	case "1.2":
		tlsConfig.MinVersion = tls.VersionTLS12
	case "1.3":
		tlsConfig.MinVersion = tls.VersionTLS13
	default:
		tlsConfig.MinVersion = tls.VersionTLS12 // Default to TLS 1.2
	}
}

// configureClientAuthentication sets up client authentication for mutual TLS
func (s *Server) configureClientAuthentication(tlsConfig *tls.Config) error {
	if s.TLSConfig.Mode != "mutual" {
		// For server-only TLS, no client authentication
		tlsConfig.ClientAuth = tls.NoClientCert
		return nil
	}

	caCertPool, err := s.loadCACertificatePool()
	if err != nil {
		return err
	}

	tlsConfig.ClientCAs = caCertPool
	tlsConfig.ClientAuth = s.getClientAuthPolicy()

	return nil
}

// loadCACertificatePool loads the CA certificate pool for client verification
func (s *Server) loadCACertificatePool() (*x509.CertPool, error) {
	if s.TLSConfig.CAFile == "" {
		return nil, fmt.Errorf("CA certificate is required for mutual TLS mode")
	}

	caCert, err := os.ReadFile(s.TLSConfig.CAFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read CA file: %w", err)
	}

	caCertPool := x509.NewCertPool()
	if ok := caCertPool.AppendCertsFromPEM(caCert); !ok {
		return nil, fmt.Errorf("failed to append CA cert")
	}

	return caCertPool, nil
}

// getClientAuthPolicy returns the appropriate client authentication policy
func (s *Server) getClientAuthPolicy() tls.ClientAuthType {
	switch s.TLSConfig.ClientAuthPolicy {
	case "require":
		return tls.RequireAndVerifyClientCert
	case "request":
		return tls.RequestClientCert
	case "verify":
		return tls.VerifyClientCertIfGiven
	default:
		return tls.RequireAndVerifyClientCert // Default for mutual TLS
	}
}
