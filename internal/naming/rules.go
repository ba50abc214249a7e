package naming

import (
	"regexp"
	"strconv"
	"strings"
)

// marker is the raw result of one recognizer: the captured digit groups and
// the span of the full match inside the stem. Empty strings mean the group
// is undefined for the recognizer or was not captured.
type marker struct {
	season   string
	episode  string
	episode2 string
	start    int
	end      int
}

// Recognizer pairs a compiled marker pattern with an extraction function.
// Recognizers are evaluated in order by [Parse]; first match wins. The
// bare-number recognizer matches almost anything with a digit in it, so it
// must stay last.
type Recognizer struct {
	Name    string
	Pattern *regexp.Regexp
	extract func(stem string, loc []int) marker
}

var (
	// Standard: S01E01 / s1e1 / S01E01E02 / S01E01-E02.
	reSeasonEpisode = regexp.MustCompile(`(?i)s(\d{1,2})e(\d{1,3})(?:[-_]?e(\d{1,3}))?`)

	// Alternate: 1x01 / 01x001.
	reCrossNotation = regexp.MustCompile(`(?i)\b(\d{1,2})x(\d{2,3})\b`)

	// Absolute three-digit (anime-style): 101 / 212.
	reAbsoluteNumber = regexp.MustCompile(`\b([1-9]\d{2})\b`)

	// Episode keyword: Ep01 / Episode 1 / ep.03.
	reEpisodeKeyword = regexp.MustCompile(`(?i)\bep(?:isode)?\.?\s*(\d{1,3})\b`)

	// Plain standalone number anywhere in the stem: 1 / 01 / 001.
	reBareNumber = regexp.MustCompile(`\b(\d{1,3})\b`)
)

// Recognizers is the ordered marker table. The order is a contract: callers
// rely on the season+episode form beating the cross notation, which beats
// the numeric forms, with the bare number as the catch-all.
//
// Three-digit numbers are parsed as absolute episode numbers with no season
// (episode 101, not season 1 episode 01); a missing season is later filled
// in by directory-scope inference when the siblings agree on one.
var Recognizers = []Recognizer{
	{"season-episode", reSeasonEpisode, extractSeasonEpisode},
	{"cross-notation", reCrossNotation, extractSeasonPair},
	{"absolute-number", reAbsoluteNumber, extractEpisodeOnly},
	{"episode-keyword", reEpisodeKeyword, extractEpisodeOnly},
	{"bare-number", reBareNumber, extractEpisodeOnly},
}

// group returns the text of capture group n, or "" when the group does not
// exist or did not participate in the match.
func group(stem string, loc []int, n int) string {
	if 2*n+1 >= len(loc) || loc[2*n] < 0 {
		return ""
	}
	return stem[loc[2*n]:loc[2*n+1]]
}

func extractSeasonEpisode(stem string, loc []int) marker {
	return marker{
		season:   group(stem, loc, 1),
		episode:  group(stem, loc, 2),
		episode2: group(stem, loc, 3),
		start:    loc[0],
		end:      loc[1],
	}
}

func extractSeasonPair(stem string, loc []int) marker {
	return marker{
		season:  group(stem, loc, 1),
		episode: group(stem, loc, 2),
		start:   loc[0],
		end:     loc[1],
	}
}

func extractEpisodeOnly(stem string, loc []int) marker {
	return marker{
		episode: group(stem, loc, 1),
		start:   loc[0],
		end:     loc[1],
	}
}

func atoi(s string) int {
	n, _ := strconv.Atoi(strings.TrimSpace(s))
	return n
}
