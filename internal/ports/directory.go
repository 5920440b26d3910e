package ports

import (
	"context"

	"github.com/veltmail/mbexport/internal/domain"
)

// Scope controls how wide a directory query searches.
// It is passed explicitly on every call rather than held as adapter state,
// so a single Directory instance can serve differently scoped queries.
type Scope struct {
	// EntireForest widens the query to every site in the directory.
	// When false, queries are restricted to the adapter's local site.
	EntireForest bool
}

// Directory provides read-only access to the mail-platform directory.
// All record-returning methods yield results already sorted by display name;
// callers rely on that order being stable. An empty result is an empty
// slice, never an error.
type Directory interface {
	// MailboxesByCategory returns the primary addresses of mailboxes whose
	// recipient category equals category. A non-empty location restricts the
	// result to mailboxes homed in that mailbox database.
	MailboxesByCategory(ctx context.Context, scope Scope, category domain.Category, location string) ([]domain.AddressRecord, error)

	// PublicFolderMailboxes returns the primary addresses of the public
	// folder mailbox population. Public folder mailboxes live in a separate
	// population from standard recipients and have their own query path.
	PublicFolderMailboxes(ctx context.Context, scope Scope) ([]domain.AddressRecord, error)

	// ArbitrationMailboxes returns the primary addresses of arbitration
	// (system) mailboxes, excluding audit-log mailboxes. A non-empty
	// location restricts the result to one mailbox database.
	ArbitrationMailboxes(ctx context.Context, scope Scope, location string) ([]domain.AddressRecord, error)

	// AuditLogMailboxes returns the primary addresses of the audit-log
	// system mailbox population, optionally restricted to one mailbox
	// database.
	AuditLogMailboxes(ctx context.Context, scope Scope, location string) ([]domain.AddressRecord, error)

	// MailboxesByNamePrefix returns the primary addresses of mailboxes whose
	// display name starts with prefix, optionally restricted to a mailbox
	// database.
	MailboxesByNamePrefix(ctx context.Context, scope Scope, prefix, location string) ([]domain.AddressRecord, error)

	// ArchiveMailboxes returns the primary addresses of mailboxes that have
	// an associated archive store. A non-empty location restricts the result
	// to archives homed in that mailbox database. This is the slowest query
	// the directory serves.
	ArchiveMailboxes(ctx context.Context, scope Scope, location string) ([]domain.AddressRecord, error)

	// LocationExists reports whether a mailbox database with the given name
	// exists in the directory.
	LocationExists(ctx context.Context, name string) (bool, error)
}
