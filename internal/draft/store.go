// Package draft holds the single-slot checkout draft mailbox. Each
// checkout session owns exactly one slot: saving overwrites any prior
// unconsumed draft without warning, and the success flow clears the
// slot after consuming it.
package draft

import (
	"context"
	"errors"

	"github.com/sellandashawn/fignite/internal/domain"
)

var ErrNotFound = errors.New("draft not found")

type Store interface {
	Save(ctx context.Context, key string, d domain.Draft) error
	Read(ctx context.Context, key string) (domain.Draft, error)
	Clear(ctx context.Context, key string) error
}
