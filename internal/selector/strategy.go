package selector

import (
	"context"

	"github.com/veltmail/mbexport/internal/domain"
	"github.com/veltmail/mbexport/internal/ports"
	"github.com/veltmail/mbexport/pkg/log"
)

// discoveryNamePrefix matches the display names of discovery search
// mailboxes, which belong to the arbitration export alongside the
// arbitration and audit-log populations.
const discoveryNamePrefix = "Discovery"

// fetchStrategy obtains the ordered address records for one recipient
// category. Each category maps to exactly one strategy; the strategy owns
// the category's composition rules (single query, separate population, or
// multi-source union).
type fetchStrategy interface {
	fetch(ctx context.Context, location string) ([]domain.AddressRecord, error)
}

// standardStrategy serves the User, Shared, Room and Equipment categories:
// a single query on the recipient-category attribute, optionally restricted
// to one mailbox database.
type standardStrategy struct {
	dir      ports.Directory
	scope    ports.Scope
	category domain.Category
}

func (s standardStrategy) fetch(ctx context.Context, location string) ([]domain.AddressRecord, error) {
	return s.dir.MailboxesByCategory(ctx, s.scope, s.category, location)
}

// publicFolderStrategy serves the PublicFolder category, which lives in a
// distinct population with its own query path. The location filter does not
// apply to public folder mailboxes.
type publicFolderStrategy struct {
	dir   ports.Directory
	scope ports.Scope
}

func (s publicFolderStrategy) fetch(ctx context.Context, location string) ([]domain.AddressRecord, error) {
	return s.dir.PublicFolderMailboxes(ctx, s.scope)
}

// arbitrationStrategy serves the Arbitration category: the union of
// arbitration mailboxes, audit-log mailboxes and discovery mailboxes,
// appended in that order. Sub-populations that come back empty contribute
// nothing. The caller-supplied location filter is authoritative for all
// three sub-queries, including discovery.
type arbitrationStrategy struct {
	dir   ports.Directory
	scope ports.Scope
}

func (s arbitrationStrategy) fetch(ctx context.Context, location string) ([]domain.AddressRecord, error) {
	arbitration, err := s.dir.ArbitrationMailboxes(ctx, s.scope, location)
	if err != nil {
		return nil, err
	}
	auditLog, err := s.dir.AuditLogMailboxes(ctx, s.scope, location)
	if err != nil {
		return nil, err
	}
	discovery, err := s.dir.MailboxesByNamePrefix(ctx, s.scope, discoveryNamePrefix, location)
	if err != nil {
		return nil, err
	}

	records := make([]domain.AddressRecord, 0, len(arbitration)+len(auditLog)+len(discovery))
	records = append(records, arbitration...)
	records = append(records, auditLog...)
	records = append(records, discovery...)
	return records, nil
}

// archiveStrategy serves the Archive category: mailboxes with an associated
// archive store, optionally filtered to archives homed in one mailbox
// database. The filtered form is the slowest query the directory serves, so
// the strategy warns before running it.
type archiveStrategy struct {
	dir    ports.Directory
	scope  ports.Scope
	logger log.Logger
}

func (s archiveStrategy) fetch(ctx context.Context, location string) ([]domain.AddressRecord, error) {
	if location != "" {
		s.logger.Warn("archive query with a location filter is slow, this may take a while",
			log.String("location", location))
	}
	return s.dir.ArchiveMailboxes(ctx, s.scope, location)
}

// strategyFor returns the fetch strategy for a category.
func strategyFor(category domain.Category, dir ports.Directory, scope ports.Scope, logger log.Logger) fetchStrategy {
	switch category {
	case domain.CategoryPublicFolder:
		return publicFolderStrategy{dir: dir, scope: scope}
	case domain.CategoryArbitration:
		return arbitrationStrategy{dir: dir, scope: scope}
	case domain.CategoryArchive:
		return archiveStrategy{dir: dir, scope: scope, logger: logger}
	default:
		return standardStrategy{dir: dir, scope: scope, category: category}
	}
}
