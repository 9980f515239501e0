// Package cleanup provides data retention and cleanup services.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/codeready-toolchain/pythmata/ent"
	"github.com/codeready-toolchain/pythmata/ent/activitylog"
	"github.com/codeready-toolchain/pythmata/ent/processinstance"
	"github.com/codeready-toolchain/pythmata/ent/variable"
	"github.com/codeready-toolchain/pythmata/pkg/config"
)

// Service periodically enforces retention policies:
//   - Deletes COMPLETED instances older than the retention window, along
//     with their variables and activity logs.
//
// All operations are idempotent and safe to run from multiple replicas.
type Service struct {
	config *config.RetentionConfig
	db     *ent.Client

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service.
func NewService(cfg *config.RetentionConfig, db *ent.Client) *Service {
	return &Service{config: cfg, db: db}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"instance_retention_days", s.config.InstanceRetentionDays,
		"interval", s.config.CleanupInterval)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.deleteExpiredInstances(ctx)

	ticker := time.NewTicker(s.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.deleteExpiredInstances(ctx)
		}
	}
}

// deleteExpiredInstances removes every COMPLETED instance whose end_time is
// past the retention window. Variables and activity logs are removed first —
// the engine does not rely on database-level cascades, matching the rest of
// its explicit write discipline.
func (s *Service) deleteExpiredInstances(ctx context.Context) {
	if s.config.InstanceRetentionDays <= 0 {
		return
	}
	cutoff := time.Now().AddDate(0, 0, -s.config.InstanceRetentionDays)

	expired, err := s.db.ProcessInstance.Query().
		Where(
			processinstance.StatusEQ(processinstance.StatusCOMPLETED),
			processinstance.EndTimeLT(cutoff),
		).
		All(ctx)
	if err != nil {
		slog.Error("Retention: listing expired instances failed", "error", err)
		return
	}
	if len(expired) == 0 {
		return
	}

	ids := make([]string, len(expired))
	for i, inst := range expired {
		ids[i] = inst.ID
	}

	tx, err := s.db.Tx(ctx)
	if err != nil {
		slog.Error("Retention: starting transaction failed", "error", err)
		return
	}
	if _, err := tx.Variable.Delete().Where(variable.InstanceIDIn(ids...)).Exec(ctx); err != nil {
		_ = tx.Rollback()
		slog.Error("Retention: deleting variables failed", "error", err)
		return
	}
	if _, err := tx.ActivityLog.Delete().Where(activitylog.InstanceIDIn(ids...)).Exec(ctx); err != nil {
		_ = tx.Rollback()
		slog.Error("Retention: deleting activity logs failed", "error", err)
		return
	}
	count, err := tx.ProcessInstance.Delete().Where(processinstance.IDIn(ids...)).Exec(ctx)
	if err != nil {
		_ = tx.Rollback()
		slog.Error("Retention: deleting instances failed", "error", err)
		return
	}
	if err := tx.Commit(); err != nil {
		slog.Error("Retention: commit failed", "error", err)
		return
	}
	slog.Info("Retention: deleted expired instances", "count", count)
}
