package validate

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/Gunvolt24/distinsert/internal/ports"
)

// JSONLResult — статистика проверки потока JSONL.
type JSONLResult struct {
	ValidLinesCount   int
	InvalidLinesCount int
}

// ValidateJSONLStream — читает JSONL из reader’а и пишет в writer вердикт на каждую запись.
// Некорректный JSON считается невалидной строкой и тоже получает вердикт.
// Пустые строки пропускаются.
func ValidateJSONLStream(ctx context.Context, validator ports.RecordValidator, ir io.Reader, ow io.Writer) (JSONLResult, error) {
	var res JSONLResult

	scanner := bufio.NewScanner(ir)
	// запас на большие строки
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 10*1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		lineBytes := scanner.Bytes()
		if len(strings.TrimSpace(string(lineBytes))) == 0 {
			continue
		}

		verdict, err := ValidateRecordFromJSON(ctx, validator, lineBytes)
		if err != nil {
			verdict = Verdict{Errors: []string{err.Error()}}
		}
		verdict.Line = lineNo

		if verdict.Valid {
			res.ValidLinesCount++
		} else {
			res.InvalidLinesCount++
		}
		if err := writeVerdict(ow, &verdict); err != nil {
			return res, err
		}
	}
	if err := scanner.Err(); err != nil {
		return res, fmt.Errorf("scan: %w", err)
	}
	return res, nil
}

func writeVerdict(ow io.Writer, v *Verdict) error {
	marshal, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal verdict: %w", err)
	}
	if _, err := ow.Write(append(marshal, '\n')); err != nil {
		return fmt.Errorf("write verdict: %w", err)
	}
	return nil
}
