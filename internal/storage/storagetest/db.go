// Package storagetest provides in-memory implementations of the storage
// stores for tests. A DB keeps every entity in maps guarded by one mutex;
// Write returns a real storage.Writer whose transaction handle restores a
// snapshot on rollback, so commit and rollback behave like the database.
package storagetest

import (
	"context"
	"sync"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/hoaikthai/fin-api/internal/storage"
	"github.com/hoaikthai/fin-api/internal/storage/account"
	"github.com/hoaikthai/fin-api/internal/storage/category"
	"github.com/hoaikthai/fin-api/internal/storage/recurring"
	"github.com/hoaikthai/fin-api/internal/storage/transaction"
)

// DB is an in-memory stand-in for the database. The zero value is not
// usable; construct with NewDB.
type DB struct {
	mu sync.Mutex

	accounts     map[uuid.UUID]account.Account
	categories   map[uuid.UUID]category.Category
	transactions map[uuid.UUID]transaction.Transaction
	recurring    map[uuid.UUID]recurring.RecurringTransaction

	// clock advances one second per insert so created_at ordering is
	// deterministic.
	clock time.Time
}

func NewDB() *DB {
	return &DB{
		accounts:     make(map[uuid.UUID]account.Account),
		categories:   make(map[uuid.UUID]category.Category),
		transactions: make(map[uuid.UUID]transaction.Transaction),
		recurring:    make(map[uuid.UUID]recurring.RecurringTransaction),
		clock:        time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
	}
}

// Accounts returns the account store backed by this DB.
func (db *DB) Accounts() *AccountStore { return &AccountStore{db: db} }

// Categories returns the category store backed by this DB.
func (db *DB) Categories() *CategoryStore { return &CategoryStore{db: db} }

// Transactions returns the transaction store backed by this DB.
func (db *DB) Transactions() *TransactionStore { return &TransactionStore{db: db} }

// Recurring returns the recurring-transaction store backed by this DB.
func (db *DB) Recurring() *RecurringStore { return &RecurringStore{db: db} }

// Write snapshots the DB and returns a Writer whose Rollback restores the
// snapshot. Mirrors storage.Storage.Write.
func (db *DB) Write(ctx context.Context) (*storage.Writer, error) {
	db.mu.Lock()
	snap := db.snapshotLocked()
	db.mu.Unlock()
	tx := &snapshotTx{db: db, snap: snap}
	return storage.NewWriter(tx, db.Accounts(), db.Categories(), db.Transactions(), db.Recurring()), nil
}

func (db *DB) tick() time.Time {
	db.clock = db.clock.Add(time.Second)
	return db.clock
}

func (db *DB) newID() uuid.UUID {
	return uuid.Must(uuid.NewV4())
}

type snapshot struct {
	accounts     map[uuid.UUID]account.Account
	categories   map[uuid.UUID]category.Category
	transactions map[uuid.UUID]transaction.Transaction
	recurring    map[uuid.UUID]recurring.RecurringTransaction
	clock        time.Time
}

func (db *DB) snapshotLocked() snapshot {
	return snapshot{
		accounts:     copyMap(db.accounts),
		categories:   copyMap(db.categories),
		transactions: copyMap(db.transactions),
		recurring:    copyMap(db.recurring),
		clock:        db.clock,
	}
}

func copyMap[V any](m map[uuid.UUID]V) map[uuid.UUID]V {
	out := make(map[uuid.UUID]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// snapshotTx satisfies storage.Tx. Commit keeps the current state; Rollback
// restores the snapshot taken when the Writer was opened.
type snapshotTx struct {
	db   *DB
	snap snapshot
	done bool
}

func (t *snapshotTx) Commit(ctx context.Context) error {
	t.done = true
	return nil
}

func (t *snapshotTx) Rollback(ctx context.Context) error {
	if t.done {
		return nil
	}
	t.done = true
	t.db.mu.Lock()
	defer t.db.mu.Unlock()
	t.db.accounts = t.snap.accounts
	t.db.categories = t.snap.categories
	t.db.transactions = t.snap.transactions
	t.db.recurring = t.snap.recurring
	t.db.clock = t.snap.clock
	return nil
}
