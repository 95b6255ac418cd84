package notes

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/retronotes/retronotes/internal/common"
)

type fakeRepo struct {
	created *Note

	createErr error
	listOut   []Note
	listErr   error
	deleteErr error

	deletedOwner string
	deletedNote  string
}

func (f *fakeRepo) Create(ctx context.Context, n *Note) (*Note, error) {
	f.created = n
	if f.createErr != nil {
		return nil, f.createErr
	}
	n.ID = primitive.NewObjectID()
	n.CreatedAt = time.Now().UTC()
	n.UpdatedAt = n.CreatedAt
	return n, nil
}

func (f *fakeRepo) ListByOwner(ctx context.Context, ownerID string) ([]Note, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := []Note{}
	for _, n := range f.listOut {
		if n.OwnerID == ownerID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (f *fakeRepo) Delete(ctx context.Context, ownerID, noteID string) error {
	f.deletedOwner = ownerID
	f.deletedNote = noteID
	return f.deleteErr
}

func TestCreate_TrimsAndStores(t *testing.T) {
	repo := &fakeRepo{}
	s := NewService(repo)

	note, err := s.Create(context.Background(), "u1", "  Buy milk  ", "")
	require.NoError(t, err)

	assert.Equal(t, "Buy milk", note.Title)
	assert.Equal(t, "", note.Content)
	assert.Equal(t, "u1", note.OwnerID)
	assert.False(t, note.ID.IsZero())
	assert.False(t, note.CreatedAt.IsZero())
}

func TestCreate_Validation(t *testing.T) {
	tests := []struct {
		name    string
		ownerID string
		title   string
		content string
		wantMsg string
	}{
		{"missing owner", "", "Buy milk", "", "Owner is required"},
		{"missing title", "u1", "   ", "", "Title is required"},
		{"title too long", "u1", strings.Repeat("a", 61), "", "Title must be 60 characters or fewer"},
		{"content too long", "u1", "Buy milk", strings.Repeat("a", 2001), "Content must be 2000 characters or fewer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewService(&fakeRepo{})
			_, err := s.Create(context.Background(), tt.ownerID, tt.title, tt.content)
			require.Error(t, err)
			assert.True(t, errors.Is(err, common.ErrValidation))
			assert.Equal(t, tt.wantMsg, err.Error())
		})
	}
}

func TestCreate_TitleAtLimitAfterTrim(t *testing.T) {
	// 60 characters post-trim is still acceptable even if the raw input
	// was longer.
	s := NewService(&fakeRepo{})

	title := "  " + strings.Repeat("a", 60) + "  "
	note, err := s.Create(context.Background(), "u1", title, "x")
	require.NoError(t, err)
	assert.Len(t, note.Title, 60)
}

func TestList_ScopedToOwner(t *testing.T) {
	repo := &fakeRepo{listOut: []Note{
		{OwnerID: "u1", Title: "mine"},
		{OwnerID: "u2", Title: "theirs"},
	}}
	s := NewService(repo)

	notes, err := s.List(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "mine", notes[0].Title)
}

func TestList_MissingOwner(t *testing.T) {
	s := NewService(&fakeRepo{})

	_, err := s.List(context.Background(), "")
	assert.True(t, errors.Is(err, common.ErrValidation))
}

func TestList_RepoFailureIsInternal(t *testing.T) {
	s := NewService(&fakeRepo{listErr: errors.New("cursor lost")})

	_, err := s.List(context.Background(), "u1")
	assert.True(t, errors.Is(err, common.ErrInternal))
	assert.NotContains(t, err.Error(), "cursor lost")
}

func TestDelete_PassesOwnerAndNote(t *testing.T) {
	repo := &fakeRepo{}
	s := NewService(repo)

	err := s.Delete(context.Background(), "u1", "n1")
	require.NoError(t, err)
	assert.Equal(t, "u1", repo.deletedOwner)
	assert.Equal(t, "n1", repo.deletedNote)
}

func TestDelete_NotFoundPropagates(t *testing.T) {
	s := NewService(&fakeRepo{deleteErr: ErrNoteNotFound})

	err := s.Delete(context.Background(), "u1", "missing")
	assert.True(t, errors.Is(err, common.ErrNotFound))
	assert.Equal(t, "Note not found", err.Error())
}

func TestDelete_MissingOwner(t *testing.T) {
	s := NewService(&fakeRepo{})

	err := s.Delete(context.Background(), "", "n1")
	assert.True(t, errors.Is(err, common.ErrValidation))
}
