package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultRules(t *testing.T) {
	rules := DefaultRules()

	want := []Rule{
		{Prefix: "Common/Icons/ItemsGenerated/", Dest: "items"},
		{Prefix: "Common/UI/Custom/Pages/Memories/npcs/", Dest: "npcs"},
		{Prefix: "Common/UI/WorldMap/MapMarkers/", Dest: "map-markers"},
		{Prefix: "Common/UI/Custom/Pages/Memories/Tiles/", Dest: "memory-ui"},
		{Prefix: "Common/UI/Custom/Pages/Memories/categories/", Dest: "memory-ui/categories"},
	}
	assert.Equal(t, want, rules)

	// Callers get their own copy.
	rules[0].Dest = "changed"
	assert.Equal(t, "items", DefaultRules()[0].Dest)
}

func TestMatches(t *testing.T) {
	rule := Rule{Prefix: "Common/Icons/ItemsGenerated/", Dest: "items"}

	tests := []struct {
		name  string
		entry string
		want  bool
	}{
		{
			name:  "lowercase png under prefix",
			entry: "Common/Icons/ItemsGenerated/Sword.png",
			want:  true,
		},
		{
			name:  "uppercase extension",
			entry: "Common/Icons/ItemsGenerated/foo.PNG",
			want:  true,
		},
		{
			name:  "mixed case extension",
			entry: "Common/Icons/ItemsGenerated/foo.Png",
			want:  true,
		},
		{
			name:  "nested below prefix",
			entry: "Common/Icons/ItemsGenerated/Weapons/Axe.png",
			want:  true,
		},
		{
			name:  "non-png under prefix",
			entry: "Common/Icons/ItemsGenerated/foo.txt",
			want:  false,
		},
		{
			name:  "directory marker",
			entry: "Common/Icons/ItemsGenerated/",
			want:  false,
		},
		{
			name:  "png outside prefix",
			entry: "Common/Icons/Other/Sword.png",
			want:  false,
		},
		{
			name:  "prefix is case sensitive",
			entry: "common/icons/itemsgenerated/Sword.png",
			want:  false,
		},
		{
			name:  "png inside name but not suffix",
			entry: "Common/Icons/ItemsGenerated/Sword.png.bak",
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Matches(rule, tt.entry))
		})
	}
}

func TestBaseName(t *testing.T) {
	tests := []struct {
		name  string
		entry string
		want  string
	}{
		{name: "nested file", entry: "a/b/icon.png", want: "icon.png"},
		{name: "top level file", entry: "icon.png", want: "icon.png"},
		{name: "directory marker", entry: "a/b/", want: ""},
		{name: "empty", entry: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BaseName(tt.entry))
		})
	}
}

func TestSelect_PreservesListingOrder(t *testing.T) {
	rule := Rule{Prefix: "icons/", Dest: "icons"}
	names := []string{
		"icons/z.png",
		"other/a.png",
		"icons/",
		"icons/a.PNG",
		"icons/readme.txt",
		"icons/sub/z.png",
		"icons/z.png",
	}

	got := Select(rule, names)

	assert.Equal(t, []string{"icons/z.png", "icons/a.PNG", "icons/sub/z.png", "icons/z.png"}, got)
}

func TestSelect_NoMatches(t *testing.T) {
	got := Select(Rule{Prefix: "icons/"}, []string{"a.png", "b/c.png"})
	assert.Empty(t, got)
}
