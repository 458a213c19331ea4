package state

// Action is the base interface for all state mutations
type Action interface{}

// ===== QUERY ACTIONS =====

type InputCharAction struct {
	Char rune
}
type BackspaceAction struct{}

// ===== NAVIGATION ACTIONS =====

type MoveUpAction struct{}
type MoveDownAction struct{}

// ===== SELECTION ACTIONS =====

// ConfirmAction resolves the row under the cursor: an entry row opens it,
// the create-new row either creates from the query or requests the
// rename prompt sub-flow when the query is empty.
type ConfirmAction struct{}

// RequestDeleteAction asks for the delete-confirmation sub-flow for the
// entry under the cursor.
type RequestDeleteAction struct{}

type CancelAction struct{}

// ===== SUB-FLOW COMPLETION ACTIONS =====

// NameEnteredAction carries the line read by the rename prompt. An empty
// name returns to the main loop without a selection.
type NameEnteredAction struct {
	Name string
}

// DeleteResolvedAction reports the outcome of the delete confirmation.
type DeleteResolvedAction struct {
	Deleted bool
	Name    string
}

// ===== VIEW ACTIONS =====

type ResizeAction struct {
	Width  int
	Height int
}

// EntrySizedAction delivers an async recursive-size result.
type EntrySizedAction struct {
	Path  string
	Bytes int64
}
