package contracts

import "context"

// TxRunner runs fn inside a single transaction. Repository calls made
// with the context fn receives join that transaction; fn returning an
// error rolls everything back. The cascade coordinator wraps each
// deletion protocol in exactly one WithTx call.
type TxRunner interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
}
