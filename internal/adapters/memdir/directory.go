// Package memdir provides an in-memory ports.Directory backed by a fixed
// set of mailbox entries. It exists for tests and dry runs: results are
// deterministic and no external directory store is needed.
package memdir

import (
	"context"
	"sort"
	"strings"

	"github.com/veltmail/mbexport/internal/domain"
	"github.com/veltmail/mbexport/internal/ports"
)

// Mailbox is one directory entry in the in-memory store.
type Mailbox struct {
	DisplayName     string
	PrimaryAddress  string
	Category        domain.Category
	DatabaseName    string
	ArchiveDatabase string
	AuditLog        bool
	PublicFolder    bool
	Site            string
}

// Directory is an in-memory implementation of ports.Directory.
type Directory struct {
	mailboxes []Mailbox
	databases map[string]bool
	localSite string
}

// New creates an empty in-memory directory scoped to localSite.
func New(localSite string) *Directory {
	return &Directory{databases: make(map[string]bool), localSite: localSite}
}

// AddDatabase registers a mailbox database name.
func (d *Directory) AddDatabase(name string) {
	d.databases[name] = true
}

// AddMailbox adds an entry to the directory. Entries with an empty Site are
// treated as belonging to the local site.
func (d *Directory) AddMailbox(m Mailbox) {
	if m.Site == "" {
		m.Site = d.localSite
	}
	d.mailboxes = append(d.mailboxes, m)
	if m.DatabaseName != "" {
		d.databases[m.DatabaseName] = true
	}
}

// MailboxesByCategory implements ports.Directory.
func (d *Directory) MailboxesByCategory(ctx context.Context, scope ports.Scope, category domain.Category, location string) ([]domain.AddressRecord, error) {
	return d.collect(scope, func(m Mailbox) bool {
		return !m.PublicFolder && m.Category == category &&
			(location == "" || m.DatabaseName == location)
	}), nil
}

// PublicFolderMailboxes implements ports.Directory.
func (d *Directory) PublicFolderMailboxes(ctx context.Context, scope ports.Scope) ([]domain.AddressRecord, error) {
	return d.collect(scope, func(m Mailbox) bool {
		return m.PublicFolder
	}), nil
}

// ArbitrationMailboxes implements ports.Directory.
func (d *Directory) ArbitrationMailboxes(ctx context.Context, scope ports.Scope, location string) ([]domain.AddressRecord, error) {
	return d.collect(scope, func(m Mailbox) bool {
		return m.Category == domain.CategoryArbitration && !m.AuditLog &&
			(location == "" || m.DatabaseName == location)
	}), nil
}

// AuditLogMailboxes implements ports.Directory.
func (d *Directory) AuditLogMailboxes(ctx context.Context, scope ports.Scope, location string) ([]domain.AddressRecord, error) {
	return d.collect(scope, func(m Mailbox) bool {
		return m.AuditLog && (location == "" || m.DatabaseName == location)
	}), nil
}

// MailboxesByNamePrefix implements ports.Directory.
func (d *Directory) MailboxesByNamePrefix(ctx context.Context, scope ports.Scope, prefix, location string) ([]domain.AddressRecord, error) {
	return d.collect(scope, func(m Mailbox) bool {
		return strings.HasPrefix(m.DisplayName, prefix) &&
			(location == "" || m.DatabaseName == location)
	}), nil
}

// ArchiveMailboxes implements ports.Directory.
func (d *Directory) ArchiveMailboxes(ctx context.Context, scope ports.Scope, location string) ([]domain.AddressRecord, error) {
	return d.collect(scope, func(m Mailbox) bool {
		return m.ArchiveDatabase != "" &&
			(location == "" || m.ArchiveDatabase == location)
	}), nil
}

// LocationExists implements ports.Directory.
func (d *Directory) LocationExists(ctx context.Context, name string) (bool, error) {
	return d.databases[name], nil
}

// collect filters the store, restricts to the local site unless the scope
// is forest-wide, sorts by display name and projects to address records.
func (d *Directory) collect(scope ports.Scope, match func(Mailbox) bool) []domain.AddressRecord {
	var hits []Mailbox
	for _, m := range d.mailboxes {
		if !scope.EntireForest && m.Site != d.localSite {
			continue
		}
		if match(m) {
			hits = append(hits, m)
		}
	}
	sort.Slice(hits, func(i, j int) bool { return hits[i].DisplayName < hits[j].DisplayName })

	records := make([]domain.AddressRecord, len(hits))
	for i, m := range hits {
		records[i] = domain.AddressRecord{EmailAddress: m.PrimaryAddress}
	}
	return records
}
