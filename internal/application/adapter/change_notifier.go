// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "context"

// Collection names of the three flat record collections.
const (
	CollectionAccounts     = "accounts"
	CollectionCategories   = "categories"
	CollectionTransactions = "transactions"
)

// ChangeNotifier publishes a change signal for a collection after every
// successful mutation. Subscribers react by re-reading the full collection;
// no partial-update payload travels with the signal.
type ChangeNotifier interface {
	// NotifyChanged signals that the named collection was mutated.
	NotifyChanged(ctx context.Context, collection string)
}
