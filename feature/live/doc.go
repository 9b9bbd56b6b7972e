// Package live delivers change notifications to connected clients.
//
// Notion pushes change events to the /api/webhooks/notion receiver; each
// event is resolved to its category and fanned out over every open WebSocket
// connection. Delivery is best effort with eventual consistency: a failed
// send unregisters the subscriber within the same broadcast, so the registry
// is self-healing and needs no separate health-check loop.
//
// The Registry is the only process-local mutable state in the backend. It is
// created at startup, injected into the handler, and cleared at shutdown.
package live
