package scheduler

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"sort"
	"time"

	"github.com/codeready-toolchain/pythmata/ent"
	"github.com/codeready-toolchain/pythmata/ent/timerjob"
	"github.com/codeready-toolchain/pythmata/pkg/bpmn"
	"github.com/codeready-toolchain/pythmata/pkg/engineerr"
	"github.com/codeready-toolchain/pythmata/pkg/faststore"
)

const timerPrefix = "pythmata:timer:"

func startJobID(definitionID, nodeID string) string {
	return timerPrefix + definitionID + ":" + nodeID
}

func instanceJobID(instanceID, nodeID string) string {
	return timerPrefix + "instance:" + instanceID + ":" + nodeID
}

// Rescan forces an immediate definition scan, for embedders that deploy a
// definition and want its timer start events registered without waiting for
// the next ScanInterval tick.
func (s *Scheduler) Rescan(ctx context.Context) error {
	return s.reconcileDefinitions(ctx)
}

// reconcileDefinitions is the background timer scan: re-parse
// every process definition, upsert a job for each timerEventDefinition
// startEvent, and deactivate jobs whose definition/node disappeared.
func (s *Scheduler) reconcileDefinitions(ctx context.Context) error {
	defs, err := s.db.ProcessDefinition.Query().All(ctx)
	if err != nil {
		return fmt.Errorf("listing process definitions for timer scan: %w", err)
	}

	hash := hashDefinitions(defs)
	s.mu.Lock()
	unchanged := hash == s.defsHash
	s.mu.Unlock()
	if unchanged {
		return nil
	}

	found := map[string]bool{}
	for _, def := range defs {
		graph, err := bpmn.Parse(def.BpmnXML)
		if err != nil {
			s.log.Warn("skipping unparseable definition during timer scan", "definition_id", def.ID, "error", err)
			continue
		}
		for _, node := range graph.StartEvents() {
			if node.EventDefinition != bpmn.EventTimer || node.Timer == nil {
				continue
			}
			id := startJobID(def.ID, node.ID)
			found[id] = true
			if err := s.upsertStartJob(ctx, id, def.ID, node.ID, node.Timer); err != nil {
				s.log.Warn("failed to schedule timer start event", "definition_id", def.ID, "node_id", node.ID, "error", err)
			}
		}
	}

	if err := s.deactivateMissingStartJobs(ctx, found); err != nil {
		s.log.Warn("failed to deactivate stale timer jobs", "error", err)
	}

	s.mu.Lock()
	s.defsHash = hash
	s.mu.Unlock()
	return nil
}

func hashDefinitions(defs []*ent.ProcessDefinition) string {
	names := make([]string, len(defs))
	for i, d := range defs {
		names[i] = fmt.Sprintf("%s:%d", d.ID, d.Version)
	}
	sort.Strings(names)
	sum := md5.Sum([]byte(fmt.Sprintf("%v", names)))
	return hex.EncodeToString(sum[:])
}

// upsertStartJob parses def, computes its first run time, and creates the
// job row plus its fast-store rehydration mirror. An existing row is left
// unchanged.
func (s *Scheduler) upsertStartJob(ctx context.Context, jobID, definitionID, nodeID string, def *bpmn.TimerDefinition) error {
	parsed, err := ParseTimerExpression(def)
	if err != nil {
		return engineerr.WrapSchedulingError(err, "parsing timer for %s/%s", definitionID, nodeID)
	}

	existing, err := s.db.TimerJob.Get(ctx, jobID)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("loading timer job %s: %w", jobID, err)
	}
	if existing != nil {
		return nil // already scheduled; leave its run time/remaining-fires progression alone
	}

	var remaining *int
	if parsed.Type == "repetition" && parsed.Repeats >= 0 {
		r := parsed.Repeats
		remaining = &r
	}
	next, ok := NextFireTime(parsed, time.Now(), remaining)
	if !ok {
		return engineerr.NewSchedulingError("timer %s/%s has no future fire time", definitionID, nodeID)
	}

	if _, err := s.db.TimerJob.Create().
		SetID(jobID).
		SetDefinitionID(definitionID).
		SetNodeID(nodeID).
		SetTimerType(parsed.Type).
		SetTimerValue(def.Value).
		SetNextRunTime(next).
		SetNillableRemainingFires(remaining).
		Save(ctx); err != nil {
		return fmt.Errorf("creating timer job %s: %w", jobID, err)
	}

	return s.fast.SetTimerMetadata(ctx, faststore.TimerMetadata{
		DefinitionID: definitionID,
		NodeID:       nodeID,
		TimerDef:     def.Value,
		TimerType:    parsed.Type,
		CreatedAt:    time.Now(),
	})
}

func (s *Scheduler) deactivateMissingStartJobs(ctx context.Context, found map[string]bool) error {
	rows, err := s.db.TimerJob.Query().
		Where(timerjob.InstanceIDIsNil(), timerjob.Active(true)).
		All(ctx)
	if err != nil {
		return fmt.Errorf("listing active start-event timer jobs: %w", err)
	}
	for _, row := range rows {
		if found[row.ID] {
			continue
		}
		if _, err := s.db.TimerJob.UpdateOneID(row.ID).SetActive(false).Save(ctx); err != nil {
			return fmt.Errorf("deactivating timer job %s: %w", row.ID, err)
		}
		_ = s.fast.DeleteTimerMetadata(ctx, row.DefinitionID, row.NodeID)
	}
	return nil
}

// dueJobs returns every active job whose next_run_time has passed.
func (s *Scheduler) dueJobs(ctx context.Context) ([]*ent.TimerJob, error) {
	return s.db.TimerJob.Query().
		Where(timerjob.Active(true), timerjob.NextRunTimeLTE(time.Now())).
		All(ctx)
}

// advanceOrDeactivate applies one firing to job: a duration/date job
// deactivates outright; a repetition job decrements its counter (if bounded)
// and reschedules, deactivating once exhausted.
func (s *Scheduler) advanceOrDeactivate(ctx context.Context, job *ent.TimerJob) error {
	if job.TimerType != "repetition" {
		_, err := s.db.TimerJob.UpdateOneID(job.ID).SetActive(false).Save(ctx)
		return err
	}

	def := &bpmn.TimerDefinition{Type: job.TimerType, Value: job.TimerValue}
	parsed, err := ParseTimerExpression(def)
	if err != nil {
		return engineerr.WrapSchedulingError(err, "re-parsing repetition timer %s", job.ID)
	}

	var remaining *int
	if job.RemainingFires != nil {
		r := *job.RemainingFires - 1
		remaining = &r
	}
	next, ok := NextFireTime(parsed, time.Now(), remaining)
	update := s.db.TimerJob.UpdateOneID(job.ID)
	if !ok {
		_, err := update.SetActive(false).Save(ctx)
		return err
	}
	update = update.SetNextRunTime(next)
	if remaining != nil {
		update = update.SetRemainingFires(*remaining)
	}
	_, err = update.Save(ctx)
	return err
}

// upsertInstanceJob persists an instance-bound (boundary/intermediate) timer
// so a scheduler restart can rehydrate it, implementing executor.TimerScheduler.Schedule.
func (s *Scheduler) upsertInstanceJob(ctx context.Context, instanceID, definitionID, nodeID string, def *bpmn.TimerDefinition) error {
	parsed, err := ParseTimerExpression(def)
	if err != nil {
		return engineerr.WrapSchedulingError(err, "parsing timer for instance %s node %s", instanceID, nodeID)
	}
	next, ok := NextFireTime(parsed, time.Now(), nil)
	if !ok {
		return engineerr.NewSchedulingError("instance timer %s/%s has no future fire time", instanceID, nodeID)
	}

	id := instanceJobID(instanceID, nodeID)
	if _, err := s.db.TimerJob.Get(ctx, id); err == nil {
		if _, err := s.db.TimerJob.UpdateOneID(id).SetNextRunTime(next).SetActive(true).Save(ctx); err != nil {
			return fmt.Errorf("rescheduling instance timer job %s: %w", id, err)
		}
		return nil
	}

	_, err = s.db.TimerJob.Create().
		SetID(id).
		SetDefinitionID(definitionID).
		SetNodeID(nodeID).
		SetInstanceID(instanceID).
		SetTimerType(parsed.Type).
		SetTimerValue(def.Value).
		SetNextRunTime(next).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("creating instance timer job %s: %w", id, err)
	}
	return nil
}

// cancelInstanceJob implements executor.TimerScheduler.Cancel: deactivate
// every instance-bound job at nodeID (interrupting boundary supersedes a
// sibling, or the instance was terminated).
func (s *Scheduler) cancelInstanceJob(ctx context.Context, instanceID, nodeID string) error {
	id := instanceJobID(instanceID, nodeID)
	if _, err := s.db.TimerJob.Get(ctx, id); err != nil {
		if ent.IsNotFound(err) {
			return nil
		}
		return fmt.Errorf("loading instance timer job %s: %w", id, err)
	}
	_, err := s.db.TimerJob.UpdateOneID(id).SetActive(false).Save(ctx)
	return err
}
