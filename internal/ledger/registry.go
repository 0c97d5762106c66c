package ledger

import "context"

// Registry is the injected persistence capability the Engine mutates accounts
// through. Load misses return ErrNotFound. Persist writes the account snapshot
// and the appended entry as a single durable unit: if it errors, neither the
// balance change nor the entry may be observable afterwards.
type Registry interface {
	Load(ctx context.Context, accountID string) (*Account, error)
	FindEntry(ctx context.Context, entryID string) (*Entry, error)
	Persist(ctx context.Context, account *Account, entry *Entry) error
}
