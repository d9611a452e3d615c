package httpx

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// Page — окно списка результатов из query (?limit=&offset=).
type Page struct {
	Limit  int
	Offset int
}

// ParsePage — limit в [1, maxLimit], по умолчанию defaultLimit; отрицательный или
// нечисловой offset игнорируется.
func ParsePage(c *gin.Context, defaultLimit, maxLimit int) Page {
	p := Page{Limit: clamp(defaultLimit, 1, maxLimit)}
	if v, err := strconv.Atoi(c.Query("limit")); err == nil {
		p.Limit = clamp(v, 1, maxLimit)
	}
	if v, err := strconv.Atoi(c.Query("offset")); err == nil && v >= 0 {
		p.Offset = v
	}
	return p
}

// Window — границы среза [from, to) для списка длины total.
func (p Page) Window(total int) (from, to int) {
	from = clamp(p.Offset, 0, total)
	to = clamp(from+p.Limit, from, total)
	return from, to
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
