package sink

import (
	"context"
	"errors"
	"sync"

	"github.com/Gunvolt24/distinsert/internal/domain"
	"github.com/Gunvolt24/distinsert/internal/ports"
)

var _ ports.ResultSink = (*Board)(nil)

// Board — последние отчёты по хранилищам для HTTP-эндпоинтов прогона.
type Board struct {
	mu      sync.RWMutex
	reports map[domain.StoreID]*domain.Report
}

func NewBoard() *Board {
	return &Board{reports: make(map[domain.StoreID]*domain.Report)}
}

func (b *Board) Name() string { return "board" }

func (b *Board) Emit(_ context.Context, report *domain.Report) error {
	if report == nil {
		return errors.New("board: nil report")
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.reports[report.Store] = report
	return nil
}

// Report — отчёт хранилища, если задача уже завершилась.
func (b *Board) Report(store domain.StoreID) (*domain.Report, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	r, ok := b.reports[store]
	return r, ok
}

// Reports — завершённые отчёты в каноническом порядке хранилищ.
func (b *Board) Reports() []*domain.Report {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make([]*domain.Report, 0, len(b.reports))
	for _, s := range domain.Stores() {
		if r, ok := b.reports[s]; ok {
			out = append(out, r)
		}
	}
	return out
}
