package karaoke

import "testing"

func TestLookupSong(t *testing.T) {
	s, ok := LookupSong("Joy to the world")
	if !ok {
		t.Fatal("LookupSong(Joy to the world) = false, want true")
	}
	if s.Lines() != 20 {
		t.Fatalf("Lines() = %d, want 20", s.Lines())
	}
	if s.Line(0) != "Joy to the world, the Lord has come" {
		t.Fatalf("Line(0) = %q", s.Line(0))
	}
	if s.Line(-1) != "" || s.Line(s.Lines()) != "" {
		t.Fatal("out-of-range Line() should be empty")
	}

	if _, ok := LookupSong("no such song"); ok {
		t.Fatal("LookupSong(no such song) = true, want false")
	}
}

func TestSongsSortedAndComplete(t *testing.T) {
	songs := Songs()
	if len(songs) != len(catalog) {
		t.Fatalf("Songs() returned %d entries, want %d", len(songs), len(catalog))
	}
	for i := 1; i < len(songs); i++ {
		if songs[i-1].Title >= songs[i].Title {
			t.Fatalf("Songs() not sorted: %q before %q", songs[i-1].Title, songs[i].Title)
		}
	}
	for _, s := range songs {
		if s.Reference == "" {
			t.Fatalf("song %q has no reference track", s.Title)
		}
		if len(s.Lyrics) == 0 {
			t.Fatalf("song %q has no lyrics", s.Title)
		}
	}
}
