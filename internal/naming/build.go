package naming

import "fmt"

// BuildStem assembles the canonical filename stem from a parsed episode:
//
//	<Show> - S01E05 - <Title>    (season present)
//	<Show> - E05 - <Title>       (single-season show)
//
// When the title is empty, "Episode NN" is substituted; when the show name
// is empty, the stem starts at the marker. Season and episode numbers are
// zero-padded to at least two digits. Pure and deterministic.
//
// A captured second episode (S01E01E02) is intentionally not rendered: the
// canonical scheme keeps a single marker so that a rebuilt name parses back
// to itself and a second pass over compliant files stays a no-op.
func BuildStem(p ParsedEpisode) string {
	title := p.Title
	if title == "" {
		title = fmt.Sprintf("Episode %02d", p.Episode)
	}

	marker := fmt.Sprintf("E%02d", p.Episode)
	if p.HasSeason {
		marker = fmt.Sprintf("S%02dE%02d", p.Season, p.Episode)
	}

	if p.Show == "" {
		return marker + " - " + title
	}
	return p.Show + " - " + marker + " - " + title
}
