package validate

import (
	"context"
	"fmt"

	"github.com/Gunvolt24/distinsert/internal/domain"
	"github.com/Gunvolt24/distinsert/internal/ports"
)

// Проверка, что RecordValidator удовлетворяет интерфейсу RecordValidator.
var _ ports.RecordValidator = (*RecordValidator)(nil)

// Тексты нарушений попадают в результаты как есть.
const (
	MsgEmailEmpty       = "Email cannot be empty"
	MsgNameEmpty        = "Name cannot be empty"
	MsgPriceNotPositive = "Price must be positive"
	MsgQtyNotPositive   = "Quantity must be positive"
	MsgIDsNotPositive   = "IDs must be positive"
)

// RecordValidator — диспетчер проверок по типу записи.
// Проверки локальные: ни существование ссылок, ни уникальность id не проверяются.
type RecordValidator struct{}

// NewRecordValidator — конструктор RecordValidator.
func NewRecordValidator() *RecordValidator { return &RecordValidator{} }

// Validate — собирает все нарушения правил для записи; пустой срез — запись корректна.
func (v *RecordValidator) Validate(_ context.Context, record domain.Record) []string {
	if domain.IsNilRecord(record) {
		return []string{fmt.Sprintf("unsupported record type %T", record)}
	}
	switch r := record.(type) {
	case domain.User:
		return ValidateUser(&r)
	case *domain.User:
		return ValidateUser(r)
	case domain.Product:
		return ValidateProduct(&r)
	case *domain.Product:
		return ValidateProduct(r)
	case domain.Order:
		return ValidateOrder(&r)
	case *domain.Order:
		return ValidateOrder(r)
	}
	return []string{fmt.Sprintf("unsupported record type %T", record)}
}

// ValidateUser — email и имя не пустые.
func ValidateUser(u *domain.User) []string {
	problems := []string{}
	if u.Email == "" {
		problems = append(problems, MsgEmailEmpty)
	}
	if u.Name == "" {
		problems = append(problems, MsgNameEmpty)
	}
	return problems
}

// ValidateProduct — цена строго положительная, имя не пустое.
func ValidateProduct(p *domain.Product) []string {
	problems := []string{}
	if !(p.Price > 0) {
		problems = append(problems, MsgPriceNotPositive)
	}
	if p.Name == "" {
		problems = append(problems, MsgNameEmpty)
	}
	return problems
}

// ValidateOrder — количество строго положительное, оба id не меньше 1 (одно сообщение на пару).
func ValidateOrder(o *domain.Order) []string {
	problems := []string{}
	if o.Quantity <= 0 {
		problems = append(problems, MsgQtyNotPositive)
	}
	if o.UserID < 1 || o.ProductID < 1 {
		problems = append(problems, MsgIDsNotPositive)
	}
	return problems
}
