package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rdesai/drill/internal/ledger"
)

// legacyLedgerKey predates per-bank namespacing. Ledgers stored under it
// are still readable; every save writes to the namespaced key.
const legacyLedgerKey = "ledger"

func ledgerKey(bankID string) string {
	return "ledger:" + bankID
}

// LedgerRepo persists performance ledgers, one per question bank.
type LedgerRepo interface {
	// Load returns the ledger for bankID, falling back to the legacy
	// un-namespaced key, and an empty ledger when neither exists.
	// Malformed stored data degrades to an empty ledger with a warning
	// rather than failing the application.
	Load(ctx context.Context, bankID string) (ledger.Ledger, error)

	// Save replaces the stored ledger for bankID.
	Save(ctx context.Context, bankID string, l ledger.Ledger) error

	// Delete removes the stored ledger for bankID, resetting progress.
	Delete(ctx context.Context, bankID string) error

	// Banks lists the bank IDs that have a stored ledger.
	Banks(ctx context.Context) ([]string, error)
}

type ledgerRepo struct {
	db *sql.DB
}

func (r *ledgerRepo) Load(ctx context.Context, bankID string) (ledger.Ledger, error) {
	raw, err := r.get(ctx, ledgerKey(bankID))
	if errors.Is(err, sql.ErrNoRows) {
		raw, err = r.get(ctx, legacyLedgerKey)
	}
	if errors.Is(err, sql.ErrNoRows) {
		return ledger.New(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("load ledger %s: %w", bankID, err)
	}

	l, err := ledger.Unmarshal([]byte(raw))
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: stored ledger for %s is malformed, starting fresh: %v\n", bankID, err)
		return ledger.New(), nil
	}
	return l, nil
}

func (r *ledgerRepo) Save(ctx context.Context, bankID string, l ledger.Ledger) error {
	raw, err := ledger.Marshal(l)
	if err != nil {
		return fmt.Errorf("encode ledger %s: %w", bankID, err)
	}

	const q = `
INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`
	now := time.Now().UTC().Format(time.RFC3339Nano)
	if _, err := r.db.ExecContext(ctx, q, ledgerKey(bankID), string(raw), now); err != nil {
		return fmt.Errorf("save ledger %s: %w", bankID, err)
	}
	return nil
}

func (r *ledgerRepo) Delete(ctx context.Context, bankID string) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM kv WHERE key = ?", ledgerKey(bankID)); err != nil {
		return fmt.Errorf("delete ledger %s: %w", bankID, err)
	}
	return nil
}

func (r *ledgerRepo) Banks(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT key FROM kv WHERE key LIKE 'ledger:%' ORDER BY key")
	if err != nil {
		return nil, fmt.Errorf("list ledgers: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("scan ledger key: %w", err)
		}
		ids = append(ids, strings.TrimPrefix(key, "ledger:"))
	}
	return ids, rows.Err()
}

func (r *ledgerRepo) get(ctx context.Context, key string) (string, error) {
	var value string
	err := r.db.QueryRowContext(ctx, "SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	return value, err
}
