package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/retronotes/retronotes/internal/client/api"
)

func TestFilterNotes(t *testing.T) {
	notes := []api.Note{
		{ID: "1", Title: "Buy milk", Content: "and eggs"},
		{ID: "2", Title: "Gym", Content: "leg day"},
		{ID: "3", Title: "groceries", Content: "Milk, bread"},
	}

	tests := []struct {
		name    string
		query   string
		wantIDs []string
	}{
		{name: "case insensitive title and content", query: "milk", wantIDs: []string{"1", "3"}},
		{name: "content only", query: "LEG", wantIDs: []string{"2"}},
		{name: "no match", query: "dentist", wantIDs: nil},
		{name: "empty query matches everything", query: "", wantIDs: []string{"1", "2", "3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterNotes(notes, tt.query)

			var ids []string
			for _, n := range got {
				ids = append(ids, n.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}
