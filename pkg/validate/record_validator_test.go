package validate_test

import (
	"context"
	"slices"
	"strings"
	"testing"

	"github.com/Gunvolt24/distinsert/internal/domain"
	"github.com/Gunvolt24/distinsert/pkg/validate"
)

func TestRecordValidator_Validate(t *testing.T) {
	v := validate.NewRecordValidator()
	ctx := context.Background()

	type testCase struct {
		name   string
		record domain.Record
		want   []string
	}

	cases := []testCase{
		{
			name:   "valid user",
			record: domain.User{ID: 1, Name: "Alice", Email: "alice@example.com"},
			want:   []string{},
		},
		{
			name:   "user with empty name",
			record: domain.User{ID: 10, Name: "", Email: "jane@example.com"},
			want:   []string{"Name cannot be empty"},
		},
		{
			name:   "user with empty name and email",
			record: &domain.User{ID: 11},
			want:   []string{"Email cannot be empty", "Name cannot be empty"},
		},
		{
			name:   "valid product",
			record: domain.Product{ID: 1, Name: "Laptop", Price: 1000},
			want:   []string{},
		},
		{
			name:   "product with negative price",
			record: domain.Product{ID: 10, Name: "Earbuds", Price: -50},
			want:   []string{"Price must be positive"},
		},
		{
			name:   "product with zero price and empty name",
			record: domain.Product{ID: 11, Price: 0},
			want:   []string{"Price must be positive", "Name cannot be empty"},
		},
		{
			name:   "valid order with dangling product reference",
			record: domain.Order{ID: 10, UserID: 10, ProductID: 11, Quantity: 2},
			want:   []string{},
		},
		{
			name:   "order with zero quantity",
			record: domain.Order{ID: 8, UserID: 8, ProductID: 8, Quantity: 0},
			want:   []string{"Quantity must be positive"},
		},
		{
			name:   "order with negative quantity only",
			record: domain.Order{ID: 9, UserID: 9, ProductID: 1, Quantity: -1},
			want:   []string{"Quantity must be positive"},
		},
		{
			name:   "order with bad product id",
			record: &domain.Order{ID: 12, UserID: 1, ProductID: 0, Quantity: 1},
			want:   []string{"IDs must be positive"},
		},
		{
			name:   "order with every rule broken",
			record: domain.Order{ID: 13, UserID: 0, ProductID: -4, Quantity: 0},
			want:   []string{"Quantity must be positive", "IDs must be positive"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := v.Validate(ctx, tc.record)
			if got == nil {
				t.Fatalf("validator must never return nil")
			}
			if !slices.Equal(got, tc.want) {
				t.Fatalf("want %q, got %q", tc.want, got)
			}
		})
	}
}

type alienRecord struct{}

func (alienRecord) Store() domain.StoreID { return "payments" }
func (alienRecord) PrimaryKey() int64     { return 1 }

func TestRecordValidator_UnsupportedType(t *testing.T) {
	tests := []struct {
		name string
		rec  domain.Record
	}{
		{"alien", alienRecord{}},
		{"nil", nil},
		{"nil_user", (*domain.User)(nil)},
		{"nil_product", (*domain.Product)(nil)},
		{"nil_order", (*domain.Order)(nil)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := validate.NewRecordValidator().Validate(context.Background(), tt.rec)
			if len(got) != 1 || !strings.HasPrefix(got[0], "unsupported record type") {
				t.Fatalf("want a single unsupported-type problem, got %q", got)
			}
		})
	}
}

func TestValidate_IsDeterministic(t *testing.T) {
	p := &domain.Product{ID: 1, Name: "", Price: -1}
	first := validate.ValidateProduct(p)
	for i := 0; i < 5; i++ {
		if !slices.Equal(first, validate.ValidateProduct(p)) {
			t.Fatalf("validation must be deterministic")
		}
	}
	if p.Name != "" || p.Price != -1 {
		t.Fatalf("validation must not mutate the record")
	}
}
