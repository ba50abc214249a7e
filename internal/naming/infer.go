package naming

// InferSeason computes the season shared by one directory's worth of parsed
// files. Inference succeeds only when exactly one distinct explicit season
// appears among the parses; zero or several distinct values mean there is
// nothing defensible to infer. The result is meant to fill in files whose
// own parse carried no season marker, never to override an explicit one.
//
// Many releases omit the season on files physically grouped under a
// "Season NN" folder next to files that do carry it; those siblings are the
// evidence this function weighs.
func InferSeason(parses []ParsedEpisode) (int, bool) {
	season := 0
	found := false
	for _, p := range parses {
		if !p.HasSeason {
			continue
		}
		if found && p.Season != season {
			return 0, false
		}
		season = p.Season
		found = true
	}
	return season, found
}
