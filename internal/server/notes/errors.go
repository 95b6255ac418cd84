package notes

import "github.com/retronotes/retronotes/internal/common"

var (
	ErrOwnerRequired  = common.E(common.ErrValidation, "Owner is required")
	ErrTitleRequired  = common.E(common.ErrValidation, "Title is required")
	ErrTitleTooLong   = common.E(common.ErrValidation, "Title must be 60 characters or fewer")
	ErrContentTooLong = common.E(common.ErrValidation, "Content must be 2000 characters or fewer")

	// ErrNoteNotFound is returned both for ids that do not exist and for
	// notes owned by someone else; the two cases must be indistinguishable.
	ErrNoteNotFound = common.E(common.ErrNotFound, "Note not found")
)
