package naming

// Parse attempts to locate an episode marker in stem (a filename without
// extension) and split it into structured components. The recognizers in
// [Recognizers] are tried in priority order; for the first one that matches,
// the text strictly before the match becomes the candidate show name and
// the text strictly after it becomes the candidate episode title, both
// normalized with [CleanFragment].
//
// The boolean result is false when no recognizer matched anywhere in the
// stem; such files cannot be renamed and the caller is expected to skip
// them rather than fail the run.
func Parse(stem string) (ParsedEpisode, bool) {
	for _, r := range Recognizers {
		loc := r.Pattern.FindStringSubmatchIndex(stem)
		if loc == nil {
			continue
		}
		m := r.extract(stem, loc)

		p := ParsedEpisode{
			Show:    CleanFragment(stem[:m.start]),
			Episode: atoi(m.episode),
			Title:   CleanFragment(stem[m.end:]),
		}
		if m.season != "" {
			p.Season = atoi(m.season)
			p.HasSeason = true
		}
		if m.episode2 != "" {
			p.Episode2 = atoi(m.episode2)
			p.HasEpisode2 = true
		}
		return p, true
	}
	return ParsedEpisode{}, false
}
