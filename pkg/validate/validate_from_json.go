package validate

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/Gunvolt24/distinsert/internal/domain"
	"github.com/Gunvolt24/distinsert/internal/ports"
)

// ErrInvalidRecord — базовая (sentinel error) ошибка разбора записи сида.
var ErrInvalidRecord = errors.New("seed record is malformed")

// Envelope — запись сида во внешнем файле: хранилище + поля записи.
type Envelope struct {
	Store domain.StoreID  `json:"store"`
	Data  json.RawMessage `json:"data"`
}

// Verdict — результат проверки одной записи файла.
type Verdict struct {
	Line   int            `json:"line,omitempty"`
	Store  domain.StoreID `json:"store"`
	Data   domain.Record  `json:"data"`
	Valid  bool           `json:"valid"`
	Errors []string       `json:"errors"`
}

// DecodeRecordJSON — строгий разбор одного конверта в запись своего хранилища.
func DecodeRecordJSON(raw []byte) (domain.Record, error) {
	var env Envelope
	if err := decodeStrict(raw, &env); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRecord, err)
	}
	if len(env.Data) == 0 {
		return nil, fmt.Errorf("%w: data обязателен", ErrInvalidRecord)
	}

	var (
		rec domain.Record
		err error
	)
	switch env.Store {
	case domain.StoreUsers:
		var u domain.User
		err = decodeStrict(env.Data, &u)
		rec = u
	case domain.StoreProducts:
		var p domain.Product
		err = decodeStrict(env.Data, &p)
		rec = p
	case domain.StoreOrders:
		var o domain.Order
		err = decodeStrict(env.Data, &o)
		rec = o
	default:
		return nil, fmt.Errorf("%w: неизвестное хранилище %q", ErrInvalidRecord, env.Store)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRecord, err)
	}
	return rec, nil
}

// ValidateRecordFromJSON — разбор и проверка одной записи.
// Ошибка — только для некорректного JSON; нарушения правил возвращаются в Verdict.
func ValidateRecordFromJSON(ctx context.Context, validator ports.RecordValidator, raw []byte) (Verdict, error) {
	rec, err := DecodeRecordJSON(raw)
	if err != nil {
		return Verdict{}, err
	}
	problems := validator.Validate(ctx, rec)
	return Verdict{
		Store:  rec.Store(),
		Data:   rec,
		Valid:  len(problems) == 0,
		Errors: problems,
	}, nil
}

// decodeStrict — запрещаем неизвестные поля и хвост после объекта.
func decodeStrict(raw []byte, dst any) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("invalid json: %w", err)
	}
	if err := dec.Decode(new(struct{})); err != io.EOF {
		return errors.New("invalid json: trailing data")
	}
	return nil
}
