package jobs

import (
	"context"
	"log/slog"
	"time"

	"catalog/internal/core/application/usecases/queries"
	"catalog/internal/pkg/metrics"

	"github.com/robfig/cron/v3"
)

// DefaultPositionAuditSpec runs the audit at second 0 of every minute.
const DefaultPositionAuditSpec = "0 * * * * *"

const auditTimeout = 30 * time.Second

// PositionConflictsFinder is satisfied by queries.FindPositionConflictsQueryHandler.
type PositionConflictsFinder interface {
	Handle(ctx context.Context, query queries.FindPositionConflictsQuery) (queries.FindPositionConflictsQueryResponse, error)
}

// PositionAuditJob periodically scans the ordered tables. Duplicated positions
// are logged as errors since the unique indexes should make them impossible;
// gaps are normal after deletions and only exported as a gauge.
type PositionAuditJob struct {
	finder PositionConflictsFinder
	models []string
	spec   string
	cron   *cron.Cron
	logger *slog.Logger
}

// NewPositionAuditJob creates the job. An empty spec means DefaultPositionAuditSpec.
// models are the tables whose gauges are reset on every run.
func NewPositionAuditJob(
	finder PositionConflictsFinder,
	spec string,
	models []string,
	logger *slog.Logger,
) *PositionAuditJob {
	if spec == "" {
		spec = DefaultPositionAuditSpec
	}
	return &PositionAuditJob{
		finder: finder,
		models: models,
		spec:   spec,
		cron:   cron.New(cron.WithSeconds()),
		logger: logger.With("component", "position_audit_job"),
	}
}

func (j *PositionAuditJob) Start() error {
	_, err := j.cron.AddFunc(j.spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), auditTimeout)
		defer cancel()

		if err := j.RunOnce(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Position audit failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Position audit job started", "spec", j.spec)
	return nil
}

// Stop waits for a running audit to finish.
func (j *PositionAuditJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Position audit job stopped")
}

// RunOnce performs a single audit and updates the gauges.
func (j *PositionAuditJob) RunOnce(ctx context.Context) error {
	result, err := j.finder.Handle(ctx, queries.NewFindPositionConflictsQuery())
	if err != nil {
		return err
	}

	for _, d := range result.Duplicates {
		j.logger.ErrorContext(ctx, "Duplicate position",
			"model", d.Model,
			"scope", d.Scope,
			"position", d.Position,
			"count", d.Count,
		)
	}

	for _, model := range j.models {
		metrics.PositionDuplicates.WithLabelValues(model).Set(float64(result.DuplicateCount(model)))
		metrics.PositionGaps.WithLabelValues(model).Set(float64(result.GapCount(model)))
	}

	j.logger.DebugContext(ctx, "Position audit finished",
		"duplicate_groups", len(result.Duplicates),
		"gapped_scopes", len(result.Gaps),
	)
	return nil
}
