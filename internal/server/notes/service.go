// Package notes implements per-owner note listing, creation and deletion
// against the note store.
package notes

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/retronotes/retronotes/internal/common"
)

const (
	maxTitleLen   = 60
	maxContentLen = 2000
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns all notes owned by ownerID, most recent first.
func (s *Service) List(ctx context.Context, ownerID string) ([]Note, error) {
	if ownerID == "" {
		return nil, ErrOwnerRequired
	}

	notes, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", common.ErrInternal)
	}

	return notes, nil
}

// Create trims and validates title/content and persists a new note owned by
// ownerID. Oversized values are rejected, matching the store's field
// constraints.
func (s *Service) Create(ctx context.Context, ownerID, title, content string) (*Note, error) {
	if ownerID == "" {
		return nil, ErrOwnerRequired
	}

	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)

	if title == "" {
		return nil, ErrTitleRequired
	}
	if len(title) > maxTitleLen {
		return nil, ErrTitleTooLong
	}
	if len(content) > maxContentLen {
		return nil, ErrContentTooLong
	}

	note, err := s.repo.Create(ctx, &Note{
		OwnerID: ownerID,
		Title:   title,
		Content: content,
	})
	if err != nil {
		return nil, fmt.Errorf("create note: %w", common.ErrInternal)
	}

	return note, nil
}

// Delete removes the note matching both noteID and ownerID. A note that
// exists but belongs to a different owner is reported as not found.
func (s *Service) Delete(ctx context.Context, ownerID, noteID string) error {
	if ownerID == "" {
		return ErrOwnerRequired
	}

	err := s.repo.Delete(ctx, ownerID, noteID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return err
		}
		return fmt.Errorf("delete note: %w", common.ErrInternal)
	}

	return nil
}
