package connect

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/sqlbridge/sqlbridge/core/logger"
)

// Manager holds a named set of connectors and drives their lifecycle in
// parallel. Connectors are added unconnected; ConnectAll establishes every
// handle and tears down the already-opened ones if any member fails.
type Manager struct {
	mu         sync.RWMutex
	connectors map[string]Connector
}

// NewManager creates an empty Manager
func NewManager() *Manager {
	return &Manager{
		connectors: make(map[string]Connector),
	}
}

// Add registers a connector under a name, replacing any previous entry.
func (m *Manager) Add(name string, conn Connector) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.connectors[name] = conn
}

// Get returns a connector by name
func (m *Manager) Get(name string) (Connector, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	conn, exists := m.connectors[name]
	return conn, exists
}

// Names returns the registered names in sorted order
func (m *Manager) Names() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	names := make([]string, 0, len(m.connectors))
	for name := range m.connectors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Count returns the number of managed connectors
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.connectors)
}

// ConnectAll connects every managed connector in parallel. If any member
// fails, every successfully opened handle is closed before the error
// returns.
func (m *Manager) ConnectAll(ctx context.Context) error {
	m.mu.RLock()
	if len(m.connectors) == 0 {
		m.mu.RUnlock()
		return nil
	}
	log := logger.New("connect")
	g, ctx := errgroup.WithContext(ctx)
	for name, conn := range m.connectors {
		g.Go(func() error {
			log.Debugf("connecting '%s' (%s)", name, conn.DSNSummary())
			if err := conn.Connect(ctx); err != nil {
				return fmt.Errorf("connector '%s': %w", name, err)
			}
			return nil
		})
	}
	m.mu.RUnlock()

	if err := g.Wait(); err != nil {
		// Cleanup any successfully opened handles on failure
		m.CloseAll()
		return err
	}
	return nil
}

// CloseAll closes all connectors in parallel, collecting and returning all
// errors. The connectors stay registered; Close is idempotent, so calling
// CloseAll again is harmless.
func (m *Manager) CloseAll() error {
	m.mu.RLock()
	count := len(m.connectors)
	if count == 0 {
		m.mu.RUnlock()
		return nil
	}

	var wg sync.WaitGroup
	errChan := make(chan error, count)

	log := logger.New("connect")
	log.Debugf("closing %d connector(s)", count)

	for name, conn := range m.connectors {
		wg.Add(1)
		go func(name string, conn Connector) {
			defer wg.Done()
			if err := conn.Close(); err != nil {
				errChan <- fmt.Errorf("connector '%s': %w", name, err)
			}
		}(name, conn)
	}
	m.mu.RUnlock()

	wg.Wait()
	close(errChan)

	return collectErrors(errChan)
}

// PingAll probes every managed connector in parallel through its own
// connect/ping/close scope and reports liveness per name. Connectors that
// cannot connect report false; PingAll itself never fails.
func (m *Manager) PingAll(ctx context.Context) map[string]bool {
	m.mu.RLock()
	targets := make(map[string]Connector, len(m.connectors))
	for name, conn := range m.connectors {
		targets[name] = conn
	}
	m.mu.RUnlock()

	results := make(map[string]bool, len(targets))
	var resultsMu sync.Mutex
	var wg sync.WaitGroup

	for name, conn := range targets {
		wg.Add(1)
		go func(name string, conn Connector) {
			defer wg.Done()
			alive := false
			_ = With(ctx, conn, func(c Connector) error {
				alive = c.Ping(ctx)
				return nil
			})
			resultsMu.Lock()
			results[name] = alive
			resultsMu.Unlock()
		}(name, conn)
	}
	wg.Wait()
	return results
}

// collectErrors collects all errors from a channel and combines them
func collectErrors(errChan <-chan error) error {
	var errs []error
	for err := range errChan {
		errs = append(errs, err)
	}

	if len(errs) == 0 {
		return nil
	}

	if len(errs) == 1 {
		return errs[0]
	}

	return errors.Join(errs...)
}
