// Package naming is the filename parsing and name-reconstruction core.
//
// It decomposes a filename stem into show name, season, episode number(s),
// and episode title using an ordered table of marker recognizers
// (first match wins), normalizes separator noise in the recovered text
// fragments, and rebuilds the canonical Jellyfin-style stem:
//
//	Multi-season:   Show Name - S01E05 - Episode Title
//	Single-season:  Show Name - E05 - Episode Title
//
// It also hosts the two resolution rules that need context beyond a single
// filename: directory-scope season inference ([InferSeason]) and
// folder-over-filename show naming ([ResolveShowName]).
package naming
