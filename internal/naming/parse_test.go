package naming

import "testing"

func TestParse(t *testing.T) {
	cases := []struct {
		name string
		stem string

		wantShow    string
		wantSeason  int
		wantHasSea  bool
		wantEpisode int
		wantTitle   string
	}{
		// Season+episode marker
		{
			name: "standard S01E01", stem: "Show.Name.S01E01.Episode.Title",
			wantShow: "Show Name", wantSeason: 1, wantHasSea: true, wantEpisode: 1,
			wantTitle: "Episode Title",
		},
		{
			name: "standard with dashes", stem: "Show Name - S02E04 - Episode Title",
			wantShow: "Show Name", wantSeason: 2, wantHasSea: true, wantEpisode: 4,
			wantTitle: "Episode Title",
		},
		{
			name: "standard no title", stem: "Show.Name.S03E12",
			wantShow: "Show Name", wantSeason: 3, wantHasSea: true, wantEpisode: 12,
			wantTitle: "",
		},
		{
			name: "standard lowercase", stem: "show.name.s01e05.pilot",
			wantShow: "show name", wantSeason: 1, wantHasSea: true, wantEpisode: 5,
			wantTitle: "pilot",
		},
		{
			name: "single digit numbers", stem: "Show.S1E7.Title",
			wantShow: "Show", wantSeason: 1, wantHasSea: true, wantEpisode: 7,
			wantTitle: "Title",
		},

		// Cross notation
		{
			name: "cross notation 2x04", stem: "Show.Name.2x04.Episode.Title",
			wantShow: "Show Name", wantSeason: 2, wantHasSea: true, wantEpisode: 4,
			wantTitle: "Episode Title",
		},
		{
			name: "cross notation zero padded", stem: "Show.01x012",
			wantShow: "Show", wantSeason: 1, wantHasSea: true, wantEpisode: 12,
			wantTitle: "",
		},

		// Absolute three-digit numbering: episode number, never a season split
		{
			name: "three digit with title", stem: "Anime.Show.101.Episode.Title",
			wantShow: "Anime Show", wantEpisode: 101, wantTitle: "Episode Title",
		},
		{
			name: "three digit bare", stem: "Anime.Show.212",
			wantShow: "Anime Show", wantEpisode: 212, wantTitle: "",
		},

		// Episode keyword
		{
			name: "Ep keyword", stem: "Show Name Ep03 Title",
			wantShow: "Show Name", wantEpisode: 3, wantTitle: "Title",
		},
		{
			name: "Episode keyword with space", stem: "Show Name Episode 7 Some Title",
			wantShow: "Show Name", wantEpisode: 7, wantTitle: "Some Title",
		},
		{
			name: "ep keyword with period", stem: "Chernobyl.Ep.03.Open.Wide",
			wantShow: "Chernobyl", wantEpisode: 3, wantTitle: "Open Wide",
		},
		{
			name: "keyword title keeps compound hyphen", stem: "Chernobyl.Ep01.Rbmk-1000",
			wantShow: "Chernobyl", wantEpisode: 1, wantTitle: "Rbmk-1000",
		},

		// Bare number
		{
			name: "bare number only", stem: "01",
			wantShow: "", wantEpisode: 1, wantTitle: "",
		},
		{
			name: "bare number with title", stem: "05 - Some Episode Title",
			wantShow: "", wantEpisode: 5, wantTitle: "Some Episode Title",
		},
		{
			name: "bare number mid stem", stem: "Show.Name.07.Title",
			wantShow: "Show Name", wantEpisode: 7, wantTitle: "Title",
		},

		// Marker at stem start: show name is unrecoverable from the text
		{
			name: "marker first", stem: "S01E01.Pilot",
			wantShow: "", wantSeason: 1, wantHasSea: true, wantEpisode: 1,
			wantTitle: "Pilot",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := Parse(tc.stem)
			if !ok {
				t.Fatalf("Parse(%q) did not match", tc.stem)
			}
			if got.Show != tc.wantShow {
				t.Errorf("show: got %q, want %q", got.Show, tc.wantShow)
			}
			if got.HasSeason != tc.wantHasSea {
				t.Errorf("has season: got %v, want %v", got.HasSeason, tc.wantHasSea)
			}
			if got.HasSeason && got.Season != tc.wantSeason {
				t.Errorf("season: got %d, want %d", got.Season, tc.wantSeason)
			}
			if got.Episode != tc.wantEpisode {
				t.Errorf("episode: got %d, want %d", got.Episode, tc.wantEpisode)
			}
			if got.Title != tc.wantTitle {
				t.Errorf("title: got %q, want %q", got.Title, tc.wantTitle)
			}
		})
	}
}

func TestParse_MultiEpisode(t *testing.T) {
	cases := []struct {
		name     string
		stem     string
		wantEp   int
		wantEp2  int
		wantShow string
	}{
		{"chained directly", "Show.S01E01E02.Double", 1, 2, "Show"},
		{"chained with dash", "Show.S01E01-E02", 1, 2, "Show"},
		{"chained lowercase", "show.s02e10e11", 10, 11, "show"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := Parse(tc.stem)
			if !ok {
				t.Fatalf("Parse(%q) did not match", tc.stem)
			}
			if !got.HasEpisode2 {
				t.Fatalf("second episode not captured for %q", tc.stem)
			}
			if got.Episode != tc.wantEp || got.Episode2 != tc.wantEp2 {
				t.Errorf("episodes: got %d/%d, want %d/%d", got.Episode, got.Episode2, tc.wantEp, tc.wantEp2)
			}
			if got.Show != tc.wantShow {
				t.Errorf("show: got %q, want %q", got.Show, tc.wantShow)
			}
		})
	}
}

func TestParse_NoChainAcrossTitle(t *testing.T) {
	// "Episode.Title" after the marker must not be mistaken for a chained
	// second episode.
	got, ok := Parse("Show.Name.S01E01.Episode.Title")
	if !ok {
		t.Fatal("Parse did not match")
	}
	if got.HasEpisode2 {
		t.Errorf("unexpected second episode %d", got.Episode2)
	}
}

func TestParse_Unrecognizable(t *testing.T) {
	for _, stem := range []string{
		"no_episode_info_here",
		"Behind The Scenes",
		"",
	} {
		if _, ok := Parse(stem); ok {
			t.Errorf("Parse(%q) matched, want no match", stem)
		}
	}
}

func TestParse_PriorityOrder(t *testing.T) {
	// A stem offering several marker shapes must resolve via the
	// highest-priority recognizer, not the leftmost match overall.
	got, ok := Parse("Show.101.S02E05.Title")
	if !ok {
		t.Fatal("Parse did not match")
	}
	if !got.HasSeason || got.Season != 2 || got.Episode != 5 {
		t.Errorf("got season %d (has=%v) episode %d, want S02E05 via season-episode rule",
			got.Season, got.HasSeason, got.Episode)
	}
	if got.Show != "Show 101" {
		t.Errorf("show: got %q, want %q", got.Show, "Show 101")
	}
}
