package extractor

import "strings"

// pngExt is the only extension the extraction rules accept.
const pngExt = ".png"

// Rule maps an archive path prefix to an output subdirectory.
// A rule selects every PNG entry whose name starts with Prefix
// and writes it, flattened, into Dest under the output root.
type Rule struct {
	Prefix string // archive path prefix, e.g. "Common/Icons/ItemsGenerated/"
	Dest   string // output subdirectory, slash separated, e.g. "memory-ui/categories"
}

var defaultRules = [...]Rule{
	{Prefix: "Common/Icons/ItemsGenerated/", Dest: "items"},
	{Prefix: "Common/UI/Custom/Pages/Memories/npcs/", Dest: "npcs"},
	{Prefix: "Common/UI/WorldMap/MapMarkers/", Dest: "map-markers"},
	{Prefix: "Common/UI/Custom/Pages/Memories/Tiles/", Dest: "memory-ui"},
	{Prefix: "Common/UI/Custom/Pages/Memories/categories/", Dest: "memory-ui/categories"},
}

// DefaultRules returns the fixed, ordered list of asset categories the UI needs.
// The returned slice is a copy; modifying it does not affect later calls.
func DefaultRules() []Rule {
	rules := make([]Rule, len(defaultRules))
	copy(rules, defaultRules[:])
	return rules
}

// Matches reports whether the archive entry name belongs to the rule:
// the name must start with the rule's prefix and end with ".png" in any case.
func Matches(rule Rule, name string) bool {
	return strings.HasPrefix(name, rule.Prefix) &&
		strings.HasSuffix(strings.ToLower(name), pngExt)
}

// BaseName returns the part of an archive entry name after the last slash.
// Directory markers ("foo/bar/") have an empty base name.
func BaseName(name string) string {
	return name[strings.LastIndex(name, "/")+1:]
}

// Select filters names down to those matching the rule.
// Listing order and duplicates are preserved.
func Select(rule Rule, names []string) []string {
	var matched []string
	for _, name := range names {
		if Matches(rule, name) {
			matched = append(matched, name)
		}
	}
	return matched
}
