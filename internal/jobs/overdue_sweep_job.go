package jobs

import (
	"context"
	"time"

	"booksamples/internal/core/application/usecases/queries"
	"booksamples/internal/core/domain/model/ledger"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// DefaultOverdueSweepSchedule runs the sweep daily at 07:00.
const DefaultOverdueSweepSchedule = "0 0 7 * * *"

// PendingCollectionReader reads the Pending Sample Collection report.
type PendingCollectionReader interface {
	Handle(ctx context.Context, query queries.ReportQuery) ([]ledger.PendingItem, error)
}

// OverdueSweepJob logs, per school, how many sample lines are past their
// expected return date.
type OverdueSweepJob struct {
	reader   PendingCollectionReader
	schedule string
	timeout  time.Duration
	cron     *cron.Cron
	log      *logrus.Entry
}

// NewOverdueSweepJob creates the job. An empty schedule falls back to
// DefaultOverdueSweepSchedule; schedules have a seconds field.
func NewOverdueSweepJob(reader PendingCollectionReader, schedule string, log *logrus.Entry) *OverdueSweepJob {
	if schedule == "" {
		schedule = DefaultOverdueSweepSchedule
	}
	return &OverdueSweepJob{
		reader:   reader,
		schedule: schedule,
		timeout:  time.Minute,
		cron:     cron.New(cron.WithSeconds()),
		log:      log.WithField("component", "overdue_sweep_job"),
	}
}

func (j *OverdueSweepJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
		defer cancel()

		if _, err := j.Run(ctx); err != nil {
			j.log.WithError(err).Error("overdue sweep failed")
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.log.WithField("schedule", j.schedule).Info("overdue sweep job started")
	return nil
}

// Stop waits for a running sweep to finish.
func (j *OverdueSweepJob) Stop() {
	<-j.cron.Stop().Done()
	j.log.Info("overdue sweep job stopped")
}

// Run executes one sweep and returns the per-school summaries it logged.
func (j *OverdueSweepJob) Run(ctx context.Context) ([]ledger.OverdueSummary, error) {
	query, err := queries.NewReportQuery(queries.ReportFilter{OverdueOnly: true})
	if err != nil {
		return nil, err
	}

	items, err := j.reader.Handle(ctx, query)
	if err != nil {
		return nil, err
	}

	summaries := ledger.SummarizeOverdue(items)
	for _, s := range summaries {
		j.log.WithFields(logrus.Fields{
			"school":    s.School,
			"lines":     s.Lines,
			"total_qty": s.TotalQty.String(),
		}).Warn("overdue samples")
	}
	j.log.WithField("schools", len(summaries)).Info("overdue sweep finished")

	return summaries, nil
}
