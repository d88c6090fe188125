package karaoke

import "sort"

// Song is a catalog entry: the lyric lines sung one per voice clip and the
// reference recording the performance is scored against.
type Song struct {
	Title     string
	Lyrics    []string // one line per recording prompt
	Reference string   // reference track path within the engine store
}

// Lines returns the number of lyric lines (recordings) in the song.
func (s *Song) Lines() int { return len(s.Lyrics) }

// Line returns the lyric at index i, or "" when out of range.
func (s *Song) Line(i int) string {
	if i < 0 || i >= len(s.Lyrics) {
		return ""
	}
	return s.Lyrics[i]
}

// LookupSong returns the built-in song with the given title.
func LookupSong(title string) (*Song, bool) {
	s, ok := catalog[title]
	return s, ok
}

// Songs returns the built-in catalog sorted by title.
func Songs() []*Song {
	out := make([]*Song, 0, len(catalog))
	for _, s := range catalog {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	return out
}

var catalog = map[string]*Song{
	"Joy to the world": {
		Title:     "Joy to the world",
		Reference: "mp3/joytotheworld.mp3",
		Lyrics: []string{
			"Joy to the world, the Lord has come",
			"Let earth receive her King",
			"Let every heart prepare Him room",
			"And heaven and nature sing, and heaven and nature sing",
			"And heaven, and heaven and nature sing",
			"Joy to the earth, the Savior reigns",
			"Let men their songs employ",
			"While fields and floods, rocks, hills, and plains",
			"Repeat the sounding joy, repeat the sounding joy",
			"Repeat, repeat the sounding joy",
			"No more let sins and sorrows grow",
			"Nor thorns infest the ground",
			"He comes to make His blessings flow",
			"Far as the curse is found, far as the curse is found",
			"Far as, far as the curse is found",
			"He rules the world with truth and grace",
			"And makes the nations prove",
			"The glories of His righteousness",
			"And wonders of His love, and wonders of His love",
			"And wonders, wonders of His love",
		},
	},
	"Silent Night": {
		Title:     "Silent Night",
		Reference: "mp3/silentnight.mp3",
		Lyrics: []string{
			"Silent night, holy night",
			"All is calm, all is bright",
			"Round yon Virgin, Mother and Child",
			"Holy Infant so tender and mild",
			"Sleep in heavenly peace",
			"Sleep in heavenly peace",
		},
	},
	"Jingle Bells": {
		Title:     "Jingle Bells",
		Reference: "mp3/jinglebells.mp3",
		Lyrics: []string{
			"Dashing through the snow",
			"In a one-horse open sleigh",
			"All the fields we go",
			"Laughing all the way",
			"Bells on bobtails ring",
			"Making spirits bright",
			"What fun it is to ride and sing",
			"A sleighing song tonight",
			"Oh! Jingle bells, jingle bells",
			"Jingle all the way",
			"Oh, what fun it is to ride",
			"In a one-horse open sleigh, hey",
			"Jingle bells, jingle bells",
			"Jingle all the way",
			"Oh, what fun it is to ride",
			"In a one-horse open sleigh",
		},
	},
	"Jingle Bells (chorus)": {
		Title:     "Jingle Bells (chorus)",
		Reference: "mp3/jinglebellschorus.mp3",
		Lyrics: []string{
			"Jingle bells, jingle bells",
			"Jingle all the way",
			"Oh, what fun it is to ride",
			"In a one-horse open sleigh, hey",
			"Jingle bells, jingle bells",
			"Jingle all the way",
			"Oh, what fun it is to ride",
			"In a one-horse open sleigh",
		},
	},
	"I want it that way": {
		Title:     "I want it that way",
		Reference: "mp3/iwantitthatway.mp3",
		Lyrics: []string{
			"You are my fire",
			"The one desire",
			"Believe when I say",
			"I want it that way",
			"But we are two worlds apart",
			"Can't reach to your heart",
			"When you say",
			"That I want it that way",
			"Tell me why",
			"Ain't nothing but a heartache",
			"Tell me why",
			"Ain't nothing but a mistake",
			"Tell me why",
			"I never wanna hear you say",
			"I want it that way",
		},
	},
}
