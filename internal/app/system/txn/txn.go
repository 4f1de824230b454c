// Package txn runs multi-document MongoDB operations atomically where the
// deployment supports transactions, with automatic fallback where it does
// not (standalone MongoDB without a replica set, DocumentDB with
// transactions disabled).
//
// The activation engine uses this for its singleton batch: all singleton
// documents of a bundle are replaced in one transaction when possible, and
// written individually otherwise.
//
// Usage:
//
//	err := txn.Run(ctx, db, log, func(sc context.Context) error {
//	    if err := settings.Replace(sc, newSettings); err != nil {
//	        return err
//	    }
//	    return creds.Replace(sc, email, hash)
//	})
package txn

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Func is the function type for transaction operations. It receives a
// context that is a mongo.SessionContext when running inside a transaction,
// or the original context when transactions are unavailable.
type Func func(ctx context.Context) error

// Run executes fn inside a MongoDB transaction if possible, falling back to
// plain execution when the deployment does not support transactions.
func Run(ctx context.Context, db *mongo.Database, log *zap.Logger, fn Func) error {
	client := db.Client()

	session, err := client.StartSession()
	if err != nil {
		if log != nil {
			log.Warn("failed to start session, running without transaction", zap.Error(err))
		}
		return fn(ctx)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc)
	})

	if err != nil {
		if IsNotSupported(err) {
			if log != nil {
				log.Warn("transactions not supported, running without transaction", zap.Error(err))
			}
			return fn(ctx)
		}
		return err
	}
	return nil
}

// IsNotSupported checks whether an error indicates that multi-document
// transactions are not supported by the deployment.
//
// Known error codes:
//   - 20: "Transaction numbers are only allowed on a replica set member or mongos"
//   - 51: IllegalOperation
//   - 263: "Cannot run 'aggregate' in a multi-document transaction"
func IsNotSupported(err error) bool {
	if err == nil {
		return false
	}

	if cmdErr, ok := err.(mongo.CommandError); ok {
		switch cmdErr.Code {
		case 20, 51, 263:
			return true
		}
	}

	// Message matching catches both MongoDB and DocumentDB variations.
	// Require two keyword hits to avoid false positives.
	errStr := strings.ToLower(err.Error())
	keywords := []string{"transaction", "replica set", "session", "not supported", "illegal operation"}
	matches := 0
	for _, kw := range keywords {
		if strings.Contains(errStr, kw) {
			matches++
		}
	}
	return matches >= 2
}
