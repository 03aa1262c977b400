package fix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		edit    Edit
		wantErr string
	}{
		{name: "valid", edit: Edit{Start: 0, End: 5}},
		{name: "zero length", edit: Edit{Start: 3, End: 3}},
		{name: "negative start", edit: Edit{Start: -1, End: 2}, wantErr: "negative"},
		{name: "inverted range", edit: Edit{Start: 5, End: 2}, wantErr: "before start"},
		{name: "past end", edit: Edit{Start: 0, End: 11}, wantErr: "exceeds content length"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := Validate([]Edit{tc.edit}, 10)
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)

			var verr *ValidationError
			assert.ErrorAs(t, err, &verr)
		})
	}
}

func TestDetectOverlaps(t *testing.T) {
	t.Parallel()

	t.Run("disjoint edits pass", func(t *testing.T) {
		t.Parallel()

		edits := []Edit{{Start: 0, End: 2}, {Start: 2, End: 4}, {Start: 10, End: 12}}
		assert.NoError(t, DetectOverlaps(edits))
	})

	t.Run("overlap detected", func(t *testing.T) {
		t.Parallel()

		edits := []Edit{{Start: 0, End: 5}, {Start: 4, End: 8}}
		err := DetectOverlaps(edits)
		require.Error(t, err)

		var oerr *OverlappingFixesError
		require.ErrorAs(t, err, &oerr)
		assert.Equal(t, 0, oerr.First.Start)
		assert.Equal(t, 4, oerr.Second.Start)
	})

	t.Run("duplicate insertions conflict", func(t *testing.T) {
		t.Parallel()

		edits := []Edit{{Start: 3, End: 3, NewText: "a"}, {Start: 3, End: 3, NewText: "b"}}
		assert.Error(t, DetectOverlaps(edits))
	})
}

func TestPrepare(t *testing.T) {
	t.Parallel()

	t.Run("sorts without mutating input", func(t *testing.T) {
		t.Parallel()

		in := []Edit{{Start: 6, End: 8}, {Start: 0, End: 2}}
		sorted, err := Prepare(in, 10)
		require.NoError(t, err)

		assert.Equal(t, 0, sorted[0].Start)
		assert.Equal(t, 6, in[0].Start, "input order must be preserved")
	})

	t.Run("empty batch", func(t *testing.T) {
		t.Parallel()

		sorted, err := Prepare(nil, 10)
		require.NoError(t, err)
		assert.Nil(t, sorted)
	})

	t.Run("rejects overlap", func(t *testing.T) {
		t.Parallel()

		_, err := Prepare([]Edit{{Start: 0, End: 4}, {Start: 2, End: 6}}, 10)
		var oerr *OverlappingFixesError
		assert.ErrorAs(t, err, &oerr)
	})
}

func TestApply(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		edits   []Edit
		want    string
	}{
		{
			name:    "single replacement",
			content: "let in x",
			edits:   []Edit{{Start: 0, End: 8, NewText: "x"}},
			want:    "x",
		},
		{
			name:    "shrinking and growing edits",
			content: "aaa bbb ccc",
			edits: []Edit{
				{Start: 0, End: 3, NewText: "x"},
				{Start: 8, End: 11, NewText: "zzzzz"},
			},
			want: "x bbb zzzzz",
		},
		{
			name:    "insertion",
			content: "ab",
			edits:   []Edit{{Start: 1, End: 1, NewText: "X"}},
			want:    "aXb",
		},
		{
			name:    "deletion",
			content: "a inherit; b",
			edits:   []Edit{{Start: 2, End: 10, NewText: ""}},
			want:    "a  b",
		},
		{
			name:    "no edits",
			content: "unchanged",
			want:    "unchanged",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			prepared, err := Prepare(tc.edits, len(tc.content))
			require.NoError(t, err)
			assert.Equal(t, tc.want, string(Apply([]byte(tc.content), prepared)))
		})
	}
}
