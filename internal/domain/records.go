package domain

// StoreID — идентификатор одного из трёх независимых хранилищ.
type StoreID string

const (
	StoreUsers    StoreID = "users"
	StoreProducts StoreID = "products"
	StoreOrders   StoreID = "orders"
)

// Stores — все хранилища в каноническом порядке запуска.
func Stores() []StoreID { return []StoreID{StoreUsers, StoreProducts, StoreOrders} }

// Valid — известен ли идентификатор хранилища.
func (s StoreID) Valid() bool {
	switch s {
	case StoreUsers, StoreProducts, StoreOrders:
		return true
	}
	return false
}

// Label — имя сущности, которая живёт в хранилище (для логов).
func (s StoreID) Label() string {
	switch s {
	case StoreUsers:
		return "User"
	case StoreProducts:
		return "Product"
	case StoreOrders:
		return "Order"
	}
	return string(s)
}

// Record — одна запись сида. Каждый тип записи навсегда привязан к своему хранилищу.
type Record interface {
	Store() StoreID
	PrimaryKey() int64
}

// IsNilRecord — nil-интерфейс или типизированный nil-указатель на запись:
// методы с приёмником-значением на таком указателе паникуют.
func IsNilRecord(rec Record) bool {
	switch r := rec.(type) {
	case nil:
		return true
	case *User:
		return r == nil
	case *Product:
		return r == nil
	case *Order:
		return r == nil
	}
	return false
}

// User — пользователь.
type User struct {
	ID    int64  `json:"id"    db:"id"`
	Name  string `json:"name"  db:"name"`
	Email string `json:"email" db:"email"`
}

// Product — товар.
type Product struct {
	ID    int64   `json:"id"    db:"id"`
	Name  string  `json:"name"  db:"name"`
	Price float64 `json:"price" db:"price"`
}

// Order — заказ. Ссылки на пользователя и товар не проверяются на существование.
type Order struct {
	ID        int64 `json:"id"         db:"id"`
	UserID    int64 `json:"user_id"    db:"user_id"`
	ProductID int64 `json:"product_id" db:"product_id"`
	Quantity  int   `json:"quantity"   db:"quantity"`
}

func (User) Store() StoreID    { return StoreUsers }
func (Product) Store() StoreID { return StoreProducts }
func (Order) Store() StoreID   { return StoreOrders }

func (u User) PrimaryKey() int64    { return u.ID }
func (p Product) PrimaryKey() int64 { return p.ID }
func (o Order) PrimaryKey() int64   { return o.ID }
