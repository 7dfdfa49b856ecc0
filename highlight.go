package stash

// HighlightKeySeparator joins highlight text and title in a dedup key.
const HighlightKeySeparator = "|||"

// Highlight is a single quote imported in bulk, e.g. from a Kindle export.
type Highlight struct {
	Title  string `json:"title"`
	Author string `json:"author,omitempty"`
	Text   string `json:"highlight"`
}

// Key returns the highlight's dedup key.
func (h Highlight) Key() string {
	return HighlightKey(h.Text, h.Title)
}

// HighlightKey builds the exact-match identity of a highlight. No
// normalization is applied: keys differing only in case or whitespace are
// distinct.
func HighlightKey(text, title string) string {
	return text + HighlightKeySeparator + title
}

// HighlightKeySet is the set of dedup keys already stored for a user.
type HighlightKeySet map[string]struct{}

// NewHighlightKeySet builds a key set from stored saves. Saves without a
// highlight are skipped.
func NewHighlightKeySet(saves []*Save) HighlightKeySet {
	set := make(HighlightKeySet, len(saves))
	for _, s := range saves {
		if s.Highlight == "" {
			continue
		}
		set[HighlightKey(s.Highlight, s.Title)] = struct{}{}
	}
	return set
}

// Has reports whether key is in the set.
func (s HighlightKeySet) Has(key string) bool {
	_, ok := s[key]
	return ok
}

// DedupeResult is the outcome of filtering incoming highlights.
type DedupeResult struct {
	Accepted   []Highlight
	Duplicates int
}

// DedupeHighlights drops incoming highlights whose key is already in
// existing. Incoming order is preserved. Highlights within the incoming
// batch are not compared with each other.
func DedupeHighlights(existing HighlightKeySet, incoming []Highlight) DedupeResult {
	var res DedupeResult
	for _, h := range incoming {
		if existing.Has(h.Key()) {
			res.Duplicates++
			continue
		}
		res.Accepted = append(res.Accepted, h)
	}
	return res
}
