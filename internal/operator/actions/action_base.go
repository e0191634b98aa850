package actions

import (
	"github.com/hoaikthai/fin-api/internal/storage"
)

// IAction is a unit of work executed inside a single storage transaction.
// Perform runs with a Writer bound to that transaction; the operator commits
// on success and rolls back on error. Actions that produce output expose it
// through result fields, readable once Process has returned.
type IAction = storage.Action
