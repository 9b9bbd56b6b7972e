// Package status exposes the root and health endpoints.
//
// The health endpoint reports 503 when startup left the service degraded
// (missing configuration or failed table provisioning) or when a minimal
// read against the remote workspace fails.
package status
