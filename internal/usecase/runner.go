package usecase

import (
	"context"

	"github.com/Gunvolt24/distinsert/internal/domain"
	"github.com/Gunvolt24/distinsert/internal/ports"
	"github.com/Gunvolt24/distinsert/pkg/metrics"
	"golang.org/x/sync/errgroup"
)

// Job — единица параллельной работы раннера.
type Job interface {
	Store() domain.StoreID
	Run(ctx context.Context) *domain.Report
}

// Runner — барьер над фиксированным набором задач: по одной горутине на задачу,
// возврат только после завершения всех. Отчёты не анализирует, соседей не отменяет.
type Runner struct {
	jobs []Job
	log  ports.Logger
}

// NewRunner — конструктор Runner.
func NewRunner(log ports.Logger, jobs ...Job) *Runner {
	return &Runner{jobs: jobs, log: log}
}

// Run — запускает все задачи и ждёт их. Отчёты возвращаются в порядке задач.
// Таймаута нет: зависшая вставка держит весь прогон.
func (r *Runner) Run(ctx context.Context) []*domain.Report {
	reports := make([]*domain.Report, len(r.jobs))
	if len(r.jobs) == 0 {
		return reports
	}

	// Без errgroup.WithContext: ошибка одной задачи не должна отменять остальные.
	var group errgroup.Group
	group.SetLimit(len(r.jobs))

	metrics.JobsInFlight.Add(float64(len(r.jobs)))
	for i, job := range r.jobs {
		group.Go(func() error {
			defer metrics.JobsInFlight.Dec()
			// каждая задача пишет только в свой слот
			reports[i] = job.Run(ctx)
			return nil
		})
	}
	_ = group.Wait()

	r.log.Infof(ctx, "all %d insertion jobs finished", len(r.jobs))
	return reports
}
