package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/Gunvolt24/distinsert/internal/domain"
	"github.com/Gunvolt24/distinsert/internal/ports"
	"github.com/Gunvolt24/distinsert/pkg/ctxmeta"
	"github.com/Gunvolt24/distinsert/pkg/metrics"
	"github.com/Gunvolt24/distinsert/pkg/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// InsertionJob — заполнение одного хранилища его фиксированным списком записей.
// Задача владеет своим входом и выходом целиком; записи обрабатываются строго по очереди.
type InsertionJob struct {
	store     domain.StoreID
	records   []domain.Record
	client    ports.StoreClient     // клиент только своего хранилища
	validator ports.RecordValidator // проверка полей до вставки
	sink      ports.ResultSink      // куда уходит итоговый отчёт
	log       ports.Logger
	now       func() time.Time
}

// NewInsertionJob — DI-конструктор. Отклоняет клиента чужого хранилища и записи,
// которые маршрутизируются не в store.
func NewInsertionJob(
	store domain.StoreID,
	records []domain.Record,
	client ports.StoreClient,
	validator ports.RecordValidator,
	sink ports.ResultSink,
	log ports.Logger,
) (*InsertionJob, error) {
	if !store.Valid() {
		return nil, fmt.Errorf("unknown store %q", store)
	}
	if client == nil || validator == nil || sink == nil || log == nil {
		return nil, fmt.Errorf("job %s: client, validator, sink and logger are required", store)
	}
	if got := client.Store(); got != store {
		return nil, fmt.Errorf("job %s: client is scoped to %s: %w", store, got, domain.ErrStoreMismatch)
	}

	owned := make([]domain.Record, len(records))
	for i, rec := range records {
		if domain.IsNilRecord(rec) || rec.Store() != store {
			return nil, fmt.Errorf("job %s: record #%d: %w", store, i, domain.ErrStoreMismatch)
		}
		owned[i] = rec
	}

	return &InsertionJob{
		store:     store,
		records:   owned,
		client:    client,
		validator: validator,
		sink:      sink,
		log:       log,
		now:       time.Now,
	}, nil
}

// Store — хранилище задачи.
func (j *InsertionJob) Store() domain.StoreID { return j.store }

// Run — проверка и вставка каждой записи по порядку; ровно один результат на запись.
// Ошибки записей становятся данными отчёта и наружу не выходят; повторов нет.
func (j *InsertionJob) Run(ctx context.Context) *domain.Report {
	ctx = ctxmeta.WithStore(ctx, j.store)
	ctx, span := telemetry.Tracer().Start(ctx, "seed.job")
	defer span.End()
	span.SetAttributes(telemetry.AttrStore.String(string(j.store)), telemetry.AttrRecords.Int(len(j.records)))
	if runID, ok := ctxmeta.RunIDFromContext(ctx); ok {
		span.SetAttributes(telemetry.AttrRunID.String(runID))
	}

	report := &domain.Report{
		Store:     j.store,
		Results:   make([]domain.Result, 0, len(j.records)),
		StartedAt: j.now(),
	}

	for _, rec := range j.records {
		res := j.process(ctx, rec)
		metrics.RecordsProcessed.WithLabelValues(string(j.store), res.Outcome.String()).Inc()
		report.Results = append(report.Results, res)
	}

	report.Took = j.now().Sub(report.StartedAt)
	metrics.JobDuration.WithLabelValues(string(j.store)).Observe(report.Took.Seconds())

	ok, rejected, failed := report.Counts()
	span.SetAttributes(
		attribute.Int("seed.succeeded", ok),
		attribute.Int("seed.rejected", rejected),
		attribute.Int("seed.failed", failed),
	)

	// Отчёт уже собран: сбой приёмника только логируем.
	if err := j.sink.Emit(ctx, report); err != nil {
		metrics.SinkFailures.WithLabelValues("job").Inc()
		j.log.Warnf(ctx, "emit report failed store=%s err=%v", j.store, err)
	}
	return report
}

// process — одна запись: валидация, затем единственная попытка вставки.
func (j *InsertionJob) process(ctx context.Context, rec domain.Record) domain.Result {
	if problems := j.validator.Validate(ctx, rec); len(problems) > 0 {
		j.log.Infof(ctx, "record rejected id=%d problems=%v", rec.PrimaryKey(), problems)
		return domain.Rejected(rec, problems)
	}

	ctx, span := telemetry.Tracer().Start(ctx, "seed.insert")
	defer span.End()
	span.SetAttributes(telemetry.AttrRecordID.Int64(rec.PrimaryKey()))

	if err := j.client.Insert(ctx, rec); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "insert failed")
		span.SetAttributes(telemetry.AttrOutcome.String(domain.OutcomeInsertFailure.String()))
		j.log.Warnf(ctx, "insert failed id=%d err=%v", rec.PrimaryKey(), err)
		return domain.Failed(rec, err)
	}

	span.SetAttributes(telemetry.AttrOutcome.String(domain.OutcomeSuccess.String()))
	return domain.Succeeded(rec)
}
