package reconcile

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyBatch means a CSV import produced zero usable rows. Callers
	// must surface it instead of silently importing nothing.
	ErrEmptyBatch = errors.New("el CSV no contiene filas válidas")

	// ErrAlreadyMatched guards the Unmatched → Matched transition: it is
	// taken exactly once per transaction.
	ErrAlreadyMatched = errors.New("la transacción ya está conciliada")

	// ErrNotMatched is returned when trying to reverse a transaction that
	// was never matched.
	ErrNotMatched = errors.New("la transacción no está conciliada")
)

// InconsistencyError reports persisted state that a human needs to
// reconcile: a transaction marked matched whose payment is missing, or the
// reverse. It is distinct from a plain storage error on purpose (a retry
// will not fix it).
type InconsistencyError struct {
	TransactionID string
	Detail        string
}

func (e *InconsistencyError) Error() string {
	return fmt.Sprintf("inconsistencia de conciliación en transacción %s: %s", e.TransactionID, e.Detail)
}

// RowError describes a single rejected CSV row. One bad row never aborts
// the batch.
type RowError struct {
	Line   int
	Reason string
}

func (e RowError) Error() string {
	return fmt.Sprintf("fila %d: %s", e.Line, e.Reason)
}
