package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager starts and stops the background jobs of the service.
type JobManager struct {
	positionAuditJob *PositionAuditJob
}

func NewJobManager(
	finder PositionConflictsFinder,
	auditSpec string,
	models []string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		positionAuditJob: NewPositionAuditJob(finder, auditSpec, models, logger),
	}
}

// StartAll returns an error when a job has an invalid schedule.
func (jm *JobManager) StartAll() error {
	if err := jm.positionAuditJob.Start(); err != nil {
		return fmt.Errorf("failed to start position audit job: %w", err)
	}
	return nil
}

func (jm *JobManager) StopAll() {
	jm.positionAuditJob.Stop()
}
