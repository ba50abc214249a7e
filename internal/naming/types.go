package naming

// ParsedEpisode holds the structured result of parsing one filename stem.
// It is produced once per file by [Parse] and only consumed afterwards.
type ParsedEpisode struct {
	// Show is the show name recovered from the text before the marker,
	// already normalized. May be empty when the stem starts with the marker.
	Show string

	// Season is valid only when HasSeason is set. A cleared HasSeason means
	// "single-season show": the output stem carries no S prefix. Season 0
	// (specials) is a legitimate explicit value, which is why absence is a
	// separate flag rather than a sentinel number.
	Season    int
	HasSeason bool

	// Episode is the first (or only) episode number, leading zeros dropped.
	Episode int

	// Episode2 is the second episode of a multi-episode file (S01E01E02,
	// S01E01-E02), valid only when HasEpisode2 is set. It is preserved for
	// callers but not rendered by [BuildStem]; see that function.
	Episode2    int
	HasEpisode2 bool

	// Title is the episode title recovered from the text after the marker,
	// already normalized. Empty means no recoverable title.
	Title string
}
