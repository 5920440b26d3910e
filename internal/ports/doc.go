// Package ports defines the interfaces (ports) that connect the application
// layer to infrastructure adapters.
//
// Ports are the boundaries between the application core and the outside
// world. They define what the exporter needs from external systems without
// specifying how those needs are fulfilled.
//
// # Port Interfaces
//
//   - [Directory]: Read-only queries against the mail-platform directory
//
// # Usage
//
// The application layer (internal/selector, internal/app) depends only on
// these interfaces. Infrastructure adapters (internal/adapters) implement
// them with concrete backends (PostgreSQL, in-memory).
//
// This separation enables:
//   - Testing selection logic with a deterministic in-memory directory
//   - Swapping the directory backend without changing export logic
//   - Clear boundaries and dependency direction
package ports
