// Package pgdir implements ports.Directory against the mail platform's
// PostgreSQL directory store.
//
// All queries are read-only and parameterized. Results are ordered by
// display name so downstream consumers see a stable row order.
package pgdir

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/veltmail/mbexport/internal/domain"
	"github.com/veltmail/mbexport/internal/ports"
)

// Directory is a pgxpool-backed implementation of ports.Directory.
type Directory struct {
	pool      *pgxpool.Pool
	localSite string
}

// New connects to the directory store and returns a Directory scoped to
// localSite for non-forest-wide queries.
func New(ctx context.Context, connString, localSite string) (*Directory, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, fmt.Errorf("connect to directory store: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping directory store: %w", err)
	}
	return &Directory{pool: pool, localSite: localSite}, nil
}

// Close releases the connection pool.
func (d *Directory) Close() {
	d.pool.Close()
}

// MailboxesByCategory returns primary addresses of mailboxes whose
// recipient category equals category, optionally restricted to one mailbox
// database, ordered by display name.
func (d *Directory) MailboxesByCategory(ctx context.Context, scope ports.Scope, category domain.Category, location string) ([]domain.AddressRecord, error) {
	sql := `SELECT primary_address FROM mailboxes WHERE recipient_type = $1`
	args := []any{category.String()}
	if location != "" {
		args = append(args, location)
		sql += fmt.Sprintf(" AND database_name = $%d", len(args))
	}
	sql, args = d.scopeToSite(sql, args, scope)
	sql += " ORDER BY display_name"
	return d.queryAddresses(ctx, sql, args...)
}

// PublicFolderMailboxes returns primary addresses of the public folder
// mailbox population, which lives in its own table.
func (d *Directory) PublicFolderMailboxes(ctx context.Context, scope ports.Scope) ([]domain.AddressRecord, error) {
	sql := `SELECT primary_address FROM public_folder_mailboxes WHERE TRUE`
	var args []any
	sql, args = d.scopeToSite(sql, args, scope)
	sql += " ORDER BY display_name"
	return d.queryAddresses(ctx, sql, args...)
}

// ArbitrationMailboxes returns primary addresses of arbitration mailboxes,
// excluding the audit-log population, optionally restricted to one mailbox
// database.
func (d *Directory) ArbitrationMailboxes(ctx context.Context, scope ports.Scope, location string) ([]domain.AddressRecord, error) {
	sql := `SELECT primary_address FROM mailboxes WHERE recipient_type = 'arbitration' AND NOT audit_log`
	var args []any
	if location != "" {
		args = append(args, location)
		sql += fmt.Sprintf(" AND database_name = $%d", len(args))
	}
	sql, args = d.scopeToSite(sql, args, scope)
	sql += " ORDER BY display_name"
	return d.queryAddresses(ctx, sql, args...)
}

// AuditLogMailboxes returns primary addresses of audit-log system mailboxes,
// optionally restricted to one mailbox database.
func (d *Directory) AuditLogMailboxes(ctx context.Context, scope ports.Scope, location string) ([]domain.AddressRecord, error) {
	sql := `SELECT primary_address FROM mailboxes WHERE audit_log`
	var args []any
	if location != "" {
		args = append(args, location)
		sql += fmt.Sprintf(" AND database_name = $%d", len(args))
	}
	sql, args = d.scopeToSite(sql, args, scope)
	sql += " ORDER BY display_name"
	return d.queryAddresses(ctx, sql, args...)
}

// MailboxesByNamePrefix returns primary addresses of mailboxes whose display
// name starts with prefix, optionally restricted to one mailbox database.
func (d *Directory) MailboxesByNamePrefix(ctx context.Context, scope ports.Scope, prefix, location string) ([]domain.AddressRecord, error) {
	sql := `SELECT primary_address FROM mailboxes WHERE display_name LIKE $1 || '%'`
	args := []any{prefix}
	if location != "" {
		args = append(args, location)
		sql += fmt.Sprintf(" AND database_name = $%d", len(args))
	}
	sql, args = d.scopeToSite(sql, args, scope)
	sql += " ORDER BY display_name"
	return d.queryAddresses(ctx, sql, args...)
}

// ArchiveMailboxes returns primary addresses of mailboxes that have an
// associated archive store, optionally restricted to archives homed in one
// mailbox database.
func (d *Directory) ArchiveMailboxes(ctx context.Context, scope ports.Scope, location string) ([]domain.AddressRecord, error) {
	sql := `SELECT primary_address FROM mailboxes WHERE archive_database IS NOT NULL`
	var args []any
	if location != "" {
		args = append(args, location)
		sql += fmt.Sprintf(" AND archive_database = $%d", len(args))
	}
	sql, args = d.scopeToSite(sql, args, scope)
	sql += " ORDER BY display_name"
	return d.queryAddresses(ctx, sql, args...)
}

// LocationExists reports whether a mailbox database with the given name
// exists in the directory.
func (d *Directory) LocationExists(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := d.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM databases WHERE name = $1)`, name,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check database %q: %w", name, err)
	}
	return exists, nil
}

// scopeToSite appends the local-site predicate unless the query is
// forest-wide.
func (d *Directory) scopeToSite(sql string, args []any, scope ports.Scope) (string, []any) {
	if scope.EntireForest {
		return sql, args
	}
	args = append(args, d.localSite)
	return sql + fmt.Sprintf(" AND site = $%d", len(args)), args
}

// queryAddresses runs a single-column primary_address query and collects
// the rows in order.
func (d *Directory) queryAddresses(ctx context.Context, sql string, args ...any) ([]domain.AddressRecord, error) {
	rows, err := d.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query directory: %w", err)
	}
	defer rows.Close()

	var records []domain.AddressRecord
	for rows.Next() {
		var r domain.AddressRecord
		if err := rows.Scan(&r.EmailAddress); err != nil {
			return nil, fmt.Errorf("scan address row: %w", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read address rows: %w", err)
	}
	return records, nil
}
