package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation — запись не прошла проверку полей.
	ErrValidation = errors.New("record validation failed")
	// ErrInsert — хранилище не смогло выполнить вставку.
	ErrInsert = errors.New("record insert failed")
	// ErrDuplicateKey — первичный ключ уже занят.
	ErrDuplicateKey = errors.New("duplicate primary key")
	// ErrStoreMismatch — запись или клиент относятся к другому хранилищу.
	ErrStoreMismatch = errors.New("record routed to a foreign store")
)

// InsertError — отказ хранилища при вставке конкретной записи.
type InsertError struct {
	Store StoreID
	Key   int64
	Err   error
}

func (e *InsertError) Error() string {
	return fmt.Sprintf("%s id=%d: %v", e.Store, e.Key, e.Err)
}

func (e *InsertError) Unwrap() error { return e.Err }

// Is — позволяет errors.Is(err, ErrInsert) для любого InsertError.
func (e *InsertError) Is(target error) bool { return target == ErrInsert }

// DuplicateKey — помечает ошибку хранилища как ErrDuplicateKey, сохраняя её текст.
func DuplicateKey(err error) error {
	if err == nil {
		return nil
	}
	return &duplicateKeyError{err: err}
}

type duplicateKeyError struct{ err error }

func (e *duplicateKeyError) Error() string   { return e.err.Error() }
func (e *duplicateKeyError) Unwrap() []error { return []error{ErrDuplicateKey, e.err} }
