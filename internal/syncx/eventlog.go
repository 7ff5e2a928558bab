// Package syncx appends domain events to the append-only event_log table,
// the feed downstream sites replay to reconcile recorded attempts.
package syncx

import (
	"context"
	"database/sql"
	"time"
)

const TypeAttemptRecorded = "attempt_recorded"

type Event struct {
	Offset    int64
	SiteID    string
	Type      string
	Key       string
	DataJSON  string
	CreatedAt int64
}

type EventRepo struct {
	db     *sql.DB
	siteID string
}

func NewEventRepo(db *sql.DB) *EventRepo { return &EventRepo{db: db, siteID: "local"} }

// WithSite tags appended events with a site identifier.
func (r *EventRepo) WithSite(siteID string) *EventRepo {
	if siteID != "" {
		r.siteID = siteID
	}
	return r
}

func (r *EventRepo) Append(ctx context.Context, e Event) error {
	siteID := e.SiteID
	if siteID == "" {
		siteID = r.siteID
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO event_log (site_id, typ, key, data, created_at)
		 VALUES ($1,$2,$3,$4,$5)`,
		siteID, e.Type, e.Key, e.DataJSON, time.Now().Unix())
	return err
}
