package transactor

import (
	"context"
)

// Transactor runs a function within a single database transaction.
// The transaction travels inside the context, so repositories called
// from the function join it transparently.
type Transactor interface {
	WithinTransaction(context.Context, func(context.Context) error) error
}
