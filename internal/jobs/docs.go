// Package jobs provides scheduled background tasks of the catalog service,
// built on github.com/robfig/cron/v3 with a seconds field.
//
// PositionAuditJob runs FindPositionConflictsQuery on a schedule
// (POSITION_AUDIT_CRON, default DefaultPositionAuditSpec), logs every
// duplicated position and exports duplicate and gap counts as gauges.
//
//	jobManager := jobs.NewJobManager(finder, cfg.PositionAuditCron, models, logger)
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
package jobs
