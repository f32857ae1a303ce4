package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	id "warden/pkg/domain"
	"warden/pkg/platform/audit"
	txcontext "warden/pkg/platform/tx"
)

// Store implements audit.Store on PostgreSQL. Compliance-category events for
// the sanction ledger want storage that outlives the process; this is the
// sink selected when WARDEN_AUDIT_DSN is set.
type Store struct {
	db *sql.DB
}

// New creates a PostgreSQL audit store.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type dbExecutor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func (s *Store) execer(ctx context.Context) dbExecutor {
	if tx, ok := txcontext.From(ctx); ok {
		return tx
	}
	return s.db
}

// Migrate creates the audit table when it does not exist yet.
func (s *Store) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS sanction_audit_events (
			id          UUID PRIMARY KEY,
			category    TEXT        NOT NULL,
			action      TEXT        NOT NULL,
			sanction_id BIGINT      NOT NULL,
			actor_id    TEXT        NOT NULL,
			subject_id  TEXT        NOT NULL DEFAULT '',
			outcome     TEXT        NOT NULL DEFAULT '',
			reason      TEXT        NOT NULL DEFAULT '',
			request_id  TEXT        NOT NULL DEFAULT '',
			occurred_at TIMESTAMPTZ NOT NULL
		)`)
	if err != nil {
		return fmt.Errorf("migrate audit table: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
		CREATE INDEX IF NOT EXISTS sanction_audit_events_sanction_idx
		ON sanction_audit_events (sanction_id, occurred_at)`)
	if err != nil {
		return fmt.Errorf("migrate audit index: %w", err)
	}
	return nil
}

// Append writes one audit event. Events are immutable once written;
// corrections happen as new events, never as updates.
func (s *Store) Append(ctx context.Context, event audit.Event) error {
	_, err := s.execer(ctx).ExecContext(ctx, `
		INSERT INTO sanction_audit_events
			(id, category, action, sanction_id, actor_id, subject_id, outcome, reason, request_id, occurred_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		uuid.New(),
		string(event.Action.Category()),
		string(event.Action),
		int64(event.SanctionID),
		event.ActorID.String(),
		event.SubjectID.String(),
		event.Outcome,
		event.Reason,
		event.RequestID,
		event.Timestamp,
	)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("append audit event (pq %s): %w", pqErr.Code, err)
		}
		return fmt.Errorf("append audit event: %w", err)
	}
	return nil
}

// ListBySanction returns events for one sanction in chronological order.
func (s *Store) ListBySanction(ctx context.Context, sanctionID id.SanctionID) ([]audit.Event, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT action, sanction_id, actor_id, subject_id, outcome, reason, request_id, occurred_at
		FROM sanction_audit_events
		WHERE sanction_id = $1
		ORDER BY occurred_at`,
		int64(sanctionID))
	if err != nil {
		return nil, fmt.Errorf("list audit events: %w", err)
	}
	defer rows.Close()

	var out []audit.Event
	for rows.Next() {
		var (
			e      audit.Event
			action string
			sid    int64
			actor  string
			subj   string
		)
		if err := rows.Scan(&action, &sid, &actor, &subj, &e.Outcome, &e.Reason, &e.RequestID, &e.Timestamp); err != nil {
			return nil, fmt.Errorf("scan audit event: %w", err)
		}
		e.Action = audit.Action(action)
		e.SanctionID = id.SanctionID(sid)
		e.ActorID = id.UserID(actor)
		e.SubjectID = id.UserID(subj)
		out = append(out, e)
	}
	return out, rows.Err()
}
