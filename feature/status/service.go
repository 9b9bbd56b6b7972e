package status

import (
	"context"
	"sort"
	"sync"
)

// ConnectivityChecker reports whether the remote workspace answers a minimal
// read. The bucketlist service satisfies this.
type ConnectivityChecker interface {
	Connectivity(ctx context.Context) error
}

// Report holds the startup state the health endpoint inspects. It is written
// once during boot and read concurrently by handlers.
type Report struct {
	mu              sync.RWMutex
	initialized     bool
	provisionErrors map[string]string
	missingConfig   []string
}

// NewReport creates an empty report.
func NewReport() *Report {
	return &Report{provisionErrors: map[string]string{}}
}

// SetInitialized records whether table provisioning completed without errors.
func (r *Report) SetInitialized(ok bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.initialized = ok
}

// SetProvisionErrors records per-category provisioning failures.
func (r *Report) SetProvisionErrors(errs map[string]string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.provisionErrors = map[string]string{}
	for k, v := range errs {
		r.provisionErrors[k] = v
	}
}

// AddMissingConfig records a configuration value that was absent at startup.
func (r *Report) AddMissingConfig(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.missingConfig = append(r.missingConfig, name)
}

// Initialized reports whether provisioning completed cleanly.
func (r *Report) Initialized() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.initialized
}

// Degraded returns the reasons the service is unhealthy, if any.
func (r *Report) Degraded() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var reasons []string
	for _, name := range r.missingConfig {
		reasons = append(reasons, "missing configuration: "+name)
	}

	categories := make([]string, 0, len(r.provisionErrors))
	for c := range r.provisionErrors {
		categories = append(categories, c)
	}
	sort.Strings(categories)
	for _, c := range categories {
		reasons = append(reasons, "provisioning failed for "+c+": "+r.provisionErrors[c])
	}
	return reasons
}
