package domain

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Outcome — вариант результата обработки записи.
type Outcome int

const (
	OutcomeSuccess Outcome = iota
	OutcomeValidationFailure
	OutcomeInsertFailure
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeValidationFailure:
		return "validation_failure"
	case OutcomeInsertFailure:
		return "insert_failure"
	}
	return fmt.Sprintf("outcome(%d)", int(o))
}

func (o Outcome) MarshalText() ([]byte, error) { return []byte(o.String()), nil }

func (o *Outcome) UnmarshalText(b []byte) error {
	switch string(b) {
	case "success":
		*o = OutcomeSuccess
	case "validation_failure":
		*o = OutcomeValidationFailure
	case "insert_failure":
		*o = OutcomeInsertFailure
	default:
		return fmt.Errorf("unknown outcome %q", string(b))
	}
	return nil
}

// Result — итог обработки одной записи.
// Errors == nil только для OutcomeSuccess.
type Result struct {
	Data    Record   `json:"data"`
	Outcome Outcome  `json:"outcome"`
	Errors  []string `json:"errors"`

	// Cause — *InsertError с исходной ошибкой хранилища (только для OutcomeInsertFailure).
	Cause error `json:"-"`
}

// Succeeded — запись закоммичена.
func Succeeded(rec Record) Result {
	return Result{Data: rec, Outcome: OutcomeSuccess}
}

// Rejected — запись не прошла валидацию, вставка не выполнялась.
func Rejected(rec Record, problems []string) Result {
	errs := make([]string, len(problems))
	copy(errs, problems)
	return Result{
		Data:    rec,
		Outcome: OutcomeValidationFailure,
		Errors:  errs,
		Cause:   fmt.Errorf("%w: %s", ErrValidation, strings.Join(errs, "; ")),
	}
}

// Failed — хранилище отклонило вставку; сообщение ошибки сохраняется как есть.
func Failed(rec Record, err error) Result {
	msg := "unknown insert failure"
	if err != nil {
		msg = err.Error()
	}
	cause := &InsertError{Err: err}
	if !IsNilRecord(rec) {
		cause.Store, cause.Key = rec.Store(), rec.PrimaryKey()
	}
	return Result{Data: rec, Outcome: OutcomeInsertFailure, Errors: []string{msg}, Cause: cause}
}

// Success — удобный флаг для дампа и проверок.
func (r Result) Success() bool { return r.Outcome == OutcomeSuccess }

func (r Result) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Data    Record   `json:"data"`
		Success bool     `json:"success"`
		Outcome Outcome  `json:"outcome"`
		Errors  []string `json:"errors"`
	}{
		Data:    r.Data,
		Success: r.Success(),
		Outcome: r.Outcome,
		Errors:  r.Errors,
	})
}

// Report — упорядоченный список результатов одного хранилища.
type Report struct {
	Store     StoreID       `json:"store"`
	Results   []Result      `json:"results"`
	StartedAt time.Time     `json:"started_at"`
	Took      time.Duration `json:"took"`
}

// Counts — сколько записей закоммичено, отклонено валидатором и отвергнуто хранилищем.
func (r *Report) Counts() (succeeded, rejected, failed int) {
	for i := range r.Results {
		switch r.Results[i].Outcome {
		case OutcomeSuccess:
			succeeded++
		case OutcomeValidationFailure:
			rejected++
		case OutcomeInsertFailure:
			failed++
		}
	}
	return succeeded, rejected, failed
}
