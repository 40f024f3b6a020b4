package event_bus

const (
	CategoryRenamedEvent EventType = "category.renamed"
	CategoryDeletedEvent EventType = "category.deleted"
)

// CategoryRenamed is published after the backend confirmed a rename, so local
// expense state can follow the new name without re-querying the server.
type CategoryRenamed struct {
	ID      string
	OldName string
	NewName string
}

// CategoryDeleted is published after a user category was removed. Expenses
// referencing the deleted name are left untouched (no cascade).
type CategoryDeleted struct {
	ID   string
	Name string
}
