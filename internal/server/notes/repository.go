package notes

import "context"

// Repository is the persistence contract for note records.
type Repository interface {
	// Create persists a new note and returns it with the generated id and
	// timestamps.
	Create(ctx context.Context, note *Note) (*Note, error)

	// ListByOwner returns all notes of the owner, newest first.
	ListByOwner(ctx context.Context, ownerID string) ([]Note, error)

	// Delete removes the note matching both id and owner. Returns
	// ErrNoteNotFound when nothing matched.
	Delete(ctx context.Context, ownerID, noteID string) error
}
