package sources

import (
	"context"

	"github.com/kerbaras/librarian/pkg/data"
)

// Source provides the initial catalog.
type Source interface {
	FetchBooks(ctx context.Context, quantity int) ([]*data.Book, error)
}
