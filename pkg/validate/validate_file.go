package validate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Gunvolt24/distinsert/internal/domain"
	"github.com/Gunvolt24/distinsert/internal/ports"
)

// InputFormat допустимые значения.
type InputFormat string

const (
	FormatAuto  InputFormat = "auto"
	FormatJSON  InputFormat = "json"
	FormatJSONL InputFormat = "jsonl"
)

// ErrInvalidSeed — в файле есть хотя бы одна невалидная запись.
var ErrInvalidSeed = errors.New("seed file has invalid records")

// ValidateFile — проверяет файл сида (JSON-массив конвертов или JSONL) и пишет вердикты в writer.
// Возвращает сводку "<valid> valid / <invalid> invalid"; при невалидных записях — ErrInvalidSeed.
func ValidateFile(ctx context.Context, validator ports.RecordValidator, filePath string, format InputFormat, ow io.Writer) (string, error) {
	resSummary := ""

	// auto по расширению
	if format == FormatAuto {
		switch strings.ToLower(filepath.Ext(filePath)) {
		case ".jsonl":
			format = FormatJSONL
		default:
			format = FormatJSON
		}
	}

	file, err := os.Open(filePath)
	if err != nil {
		return resSummary, fmt.Errorf("open file: %w", err)
	}
	defer file.Close()

	var res JSONLResult
	switch format {
	case FormatJSON:
		res, err = validateJSONArray(ctx, validator, file, ow)
	case FormatJSONL:
		res, err = ValidateJSONLStream(ctx, validator, file, ow)
	default:
		return resSummary, fmt.Errorf("unsupported format: %s", format)
	}
	if err != nil {
		return resSummary, err
	}

	resSummary = fmt.Sprintf("%d valid / %d invalid", res.ValidLinesCount, res.InvalidLinesCount)
	if res.InvalidLinesCount > 0 {
		return resSummary, ErrInvalidSeed
	}
	return resSummary, nil
}

func validateJSONArray(ctx context.Context, validator ports.RecordValidator, ir io.Reader, ow io.Writer) (JSONLResult, error) {
	var res JSONLResult

	raw, err := io.ReadAll(ir)
	if err != nil {
		return res, fmt.Errorf("read file: %w", err)
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return res, fmt.Errorf("%w: %w", ErrInvalidRecord, err)
	}

	for i, item := range items {
		verdict, err := ValidateRecordFromJSON(ctx, validator, item)
		if err != nil {
			verdict = Verdict{Errors: []string{err.Error()}}
		}
		verdict.Line = i + 1

		if verdict.Valid {
			res.ValidLinesCount++
		} else {
			res.InvalidLinesCount++
		}
		if err := writeVerdict(ow, &verdict); err != nil {
			return res, err
		}
	}
	return res, nil
}

// ValidateRecords — сухой прогон проверки по уже собранным записям (например, встроенному сиду).
func ValidateRecords(ctx context.Context, validator ports.RecordValidator, records []domain.Record, ow io.Writer) (JSONLResult, error) {
	var res JSONLResult
	for i, rec := range records {
		problems := validator.Validate(ctx, rec)
		verdict := Verdict{Line: i + 1, Data: rec, Valid: len(problems) == 0, Errors: problems}
		if !domain.IsNilRecord(rec) {
			verdict.Store = rec.Store()
		}
		if verdict.Valid {
			res.ValidLinesCount++
		} else {
			res.InvalidLinesCount++
		}
		if err := writeVerdict(ow, &verdict); err != nil {
			return res, err
		}
	}
	return res, nil
}
