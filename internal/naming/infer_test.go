package naming

import "testing"

func TestInferSeason(t *testing.T) {
	seasoned := func(n int) ParsedEpisode {
		return ParsedEpisode{Season: n, HasSeason: true, Episode: 1}
	}
	bare := ParsedEpisode{Episode: 1}

	cases := []struct {
		name   string
		parses []ParsedEpisode
		want   int
		wantOK bool
	}{
		{
			name:   "single season across siblings",
			parses: []ParsedEpisode{seasoned(2), bare, seasoned(2), bare},
			want:   2, wantOK: true,
		},
		{
			name:   "all seasoned same value",
			parses: []ParsedEpisode{seasoned(1), seasoned(1)},
			want:   1, wantOK: true,
		},
		{
			name:   "conflicting seasons",
			parses: []ParsedEpisode{seasoned(1), seasoned(2)},
			wantOK: false,
		},
		{
			name:   "no seasons at all",
			parses: []ParsedEpisode{bare, bare},
			wantOK: false,
		},
		{
			name:   "empty input",
			parses: nil,
			wantOK: false,
		},
		{
			name:   "season zero counts",
			parses: []ParsedEpisode{seasoned(0), bare},
			want:   0, wantOK: true,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := InferSeason(tc.parses)
			if ok != tc.wantOK {
				t.Fatalf("ok: got %v, want %v", ok, tc.wantOK)
			}
			if ok && got != tc.want {
				t.Errorf("season: got %d, want %d", got, tc.want)
			}
		})
	}
}
