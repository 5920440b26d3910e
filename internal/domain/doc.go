// Package domain contains the core domain entities and value objects for
// mbexport.
//
// This package represents the innermost layer of the application. It has no
// dependencies on infrastructure concerns (database, file system, logging)
// and contains only the vocabulary of the export: recipient categories,
// address records, and the sentinel errors returned by the public API.
//
// # Entities
//
//   - [Category]: A recipient category (User, Shared, Room, ...)
//   - [AddressRecord]: A single exported row (one primary email address)
//
// # Design Principles
//
// Domain entities are:
//   - Immutable after construction
//   - Free of infrastructure dependencies
//   - Testable without mocks or external systems
package domain
