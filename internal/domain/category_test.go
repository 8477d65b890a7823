package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var knownCategories = []Category{
	{ID: "64f1a2b3c4d5e6f7a8b9c0d1", Name: "Marathon", Type: CategoryTypeSports},
	{ID: "64f1a2b3c4d5e6f7a8b9c0d2", Name: "Music", Type: CategoryTypeEvent},
}

func TestResolveCategoryName(t *testing.T) {
	tests := []struct {
		name string
		ref  CategoryRef
		want string
	}{
		{
			name: "known name returned as-is",
			ref:  CategoryByName("Marathon"),
			want: "Marathon",
		},
		{
			name: "unknown name falls back",
			ref:  CategoryByName("Chess"),
			want: UnknownCategoryName,
		},
		{
			name: "id reference resolves to name",
			ref:  CategoryByID("64f1a2b3c4d5e6f7a8b9c0d2"),
			want: "Music",
		},
		{
			name: "unresolvable id falls back",
			ref:  CategoryByID("ffffffffffffffffffffffff"),
			want: UnknownCategoryName,
		},
		{
			name: "embedded object returns its name",
			ref:  CategoryEmbedded(Category{ID: "x", Name: "Esports"}),
			want: "Esports",
		},
		{
			name: "embedded object without a name falls back",
			ref:  CategoryEmbedded(Category{ID: "x"}),
			want: UnknownCategoryName,
		},
		{
			name: "raw string matching a name",
			ref:  CategoryRaw("Marathon"),
			want: "Marathon",
		},
		{
			name: "raw string matching an id",
			ref:  CategoryRaw("64f1a2b3c4d5e6f7a8b9c0d1"),
			want: "Marathon",
		},
		{
			name: "raw unresolvable string falls back",
			ref:  CategoryRaw("garbage"),
			want: UnknownCategoryName,
		},
		{
			name: "absent reference falls back",
			ref:  CategoryRef{},
			want: UnknownCategoryName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveCategoryName(tt.ref, knownCategories))
		})
	}
}

func TestCategoryRef_UnmarshalJSON(t *testing.T) {
	t.Run("string decodes as raw reference", func(t *testing.T) {
		var ref CategoryRef
		require.NoError(t, json.Unmarshal([]byte(`"Marathon"`), &ref))

		assert.Equal(t, "Marathon", ResolveCategoryName(ref, knownCategories))
	})

	t.Run("object decodes as embedded category", func(t *testing.T) {
		var ref CategoryRef
		require.NoError(t, json.Unmarshal([]byte(`{"id":"abc","name":"Esports"}`), &ref))

		assert.Equal(t, "Esports", ResolveCategoryName(ref, nil))
	})

	t.Run("unrecognized shape degrades to absent", func(t *testing.T) {
		var ref CategoryRef
		require.NoError(t, json.Unmarshal([]byte(`[1,2,3]`), &ref))

		assert.True(t, ref.IsZero())
		assert.Equal(t, UnknownCategoryName, ResolveCategoryName(ref, knownCategories))
	})
}

func TestCategoryRef_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(CategoryByName("Marathon"))
	require.NoError(t, err)
	assert.JSONEq(t, `"Marathon"`, string(b))

	b, err = json.Marshal(CategoryEmbedded(knownCategories[1]))
	require.NoError(t, err)
	assert.Contains(t, string(b), `"name":"Music"`)
}
