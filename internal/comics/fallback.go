package comics

import "vanquish/pkg/models"

// Fallback returns a copy of the bundled comics dataset with the fallback
// provenance tag applied.
func Fallback() []models.Comic {
	out := make([]models.Comic, len(fallbackComics))
	copy(out, fallbackComics)
	for i := range out {
		out[i].Source = models.ComicSourceFallback
	}
	return out
}

var fallbackComics = []models.Comic{
	{
		ID:            1,
		Title:         "The Amazing Spider-Man #1",
		IssueNumber:   "1",
		Description:   "Peter Parker juggles his double life as the Marvel universe's friendly neighborhood Spider-Man faces the Chameleon.",
		CoverImageURL: "https://images.example.com/covers/amazing-spider-man-1.jpg",
		ReleaseDate:   "1963-03-01",
		Creators: models.Creators{
			Writer: []string{"Stan Lee"},
			Artist: []string{"Steve Ditko"},
		},
		Characters: []models.CharacterRef{{ID: 3, Name: "Spider-Man"}},
		DownloadLinks: map[string]string{
			models.ReadOnlineKey: "https://getcomics.info/",
		},
	},
	{
		ID:            2,
		Title:         "Batman: The Killing Joke",
		Description:   "Alan Moore's DC classic: one bad day is all that separates the sane from the Joker.",
		CoverImageURL: "https://images.example.com/covers/killing-joke.jpg",
		ReleaseDate:   "1988-03-01",
		Creators: models.Creators{
			Writer: []string{"Alan Moore"},
			Artist: []string{"Brian Bolland"},
		},
		Characters: []models.CharacterRef{{ID: 1, Name: "Batman"}, {ID: 12, Name: "Joker"}},
		DownloadLinks: map[string]string{
			models.ReadOnlineKey: "https://getcomics.info/",
		},
	},
	{
		ID:            3,
		Title:         "Superman: Red Son #1",
		IssueNumber:   "1",
		Description:   "A DC Elseworlds tale: the Man of Steel's rocket lands in the Soviet Union instead of Kansas.",
		CoverImageURL: "https://images.example.com/covers/red-son-1.jpg",
		ReleaseDate:   "2003-04-01",
		Creators: models.Creators{
			Writer: []string{"Mark Millar"},
			Artist: []string{"Dave Johnson"},
		},
		Characters: []models.CharacterRef{{ID: 2, Name: "Superman"}},
	},
	{
		ID:            4,
		Title:         "The Infinity Gauntlet #1",
		IssueNumber:   "1",
		Description:   "Thanos assembles the Infinity Gems and half the Marvel universe vanishes with a snap.",
		CoverImageURL: "https://images.example.com/covers/infinity-gauntlet-1.jpg",
		ReleaseDate:   "1991-07-01",
		Creators: models.Creators{
			Writer: []string{"Jim Starlin"},
			Artist: []string{"George Pérez", "Ron Lim"},
		},
		Characters: []models.CharacterRef{{ID: 5, Name: "Iron Man"}, {ID: 7, Name: "Thor"}},
		DownloadLinks: map[string]string{
			models.ReadOnlineKey: "https://getcomics.info/",
		},
	},
	{
		ID:            5,
		Title:         "Watchmen #1",
		IssueNumber:   "1",
		Description:   "DC's deconstruction of the superhero: who watches the Watchmen?",
		CoverImageURL: "https://images.example.com/covers/watchmen-1.jpg",
		ReleaseDate:   "1986-09-01",
		Creators: models.Creators{
			Writer: []string{"Alan Moore"},
			Artist: []string{"Dave Gibbons"},
		},
		Characters: []models.CharacterRef{},
	},
	{
		ID:            6,
		Title:         "Saga #1",
		IssueNumber:   "1",
		Description:   "Image Comics' sprawling space opera about two soldiers from opposite sides of a galactic war raising a family.",
		CoverImageURL: "https://images.example.com/covers/saga-1.jpg",
		ReleaseDate:   "2012-03-01",
		Creators: models.Creators{
			Writer: []string{"Brian K. Vaughan"},
			Artist: []string{"Fiona Staples"},
		},
		Characters: []models.CharacterRef{},
	},
	{
		ID:            7,
		Title:         "The Flash: Rebirth #1",
		IssueNumber:   "1",
		Description:   "Barry Allen returns to the DC universe and the Speed Force has never been more dangerous.",
		CoverImageURL: "https://images.example.com/covers/flash-rebirth-1.jpg",
		ReleaseDate:   "2009-04-01",
		Creators: models.Creators{
			Writer: []string{"Geoff Johns"},
			Artist: []string{"Ethan Van Sciver"},
		},
		Characters: []models.CharacterRef{{ID: 6, Name: "The Flash"}},
	},
	{
		ID:            8,
		Title:         "Deadpool: Merc with a Mouth #1",
		IssueNumber:   "1",
		Description:   "Marvel's regenerating degenerate takes a job that goes sideways immediately. Chimichangas are involved.",
		CoverImageURL: "https://images.example.com/covers/deadpool-merc-1.jpg",
		ReleaseDate:   "2009-07-01",
		Creators: models.Creators{
			Writer: []string{"Victor Gischler"},
			Artist: []string{"Bong Dazo"},
		},
		Characters: []models.CharacterRef{{ID: 13, Name: "Deadpool"}},
		DownloadLinks: map[string]string{
			models.ReadOnlineKey: "https://getcomics.info/",
		},
	},
	{
		ID:            9,
		Title:         "Wonder Woman: Year One",
		Description:   "Diana of Themyscira leaves paradise for man's world in this definitive DC origin retelling.",
		CoverImageURL: "https://images.example.com/covers/ww-year-one.jpg",
		ReleaseDate:   "2016-06-01",
		Creators: models.Creators{
			Writer: []string{"Greg Rucka"},
			Artist: []string{"Nicola Scott"},
		},
		Characters: []models.CharacterRef{{ID: 4, Name: "Wonder Woman"}},
	},
	{
		ID:            10,
		Title:         "Silver Surfer: Parable #1",
		IssueNumber:   "1",
		Description:   "Galactus returns to Earth and only the Silver Surfer stands against his former master in this Marvel classic.",
		CoverImageURL: "https://images.example.com/covers/silver-surfer-parable-1.jpg",
		ReleaseDate:   "1988-12-01",
		Creators: models.Creators{
			Writer: []string{"Stan Lee"},
			Artist: []string{"Moebius"},
		},
		Characters: []models.CharacterRef{{ID: 14, Name: "Silver Surfer"}},
	},
	{
		ID:            11,
		Title:         "Spawn #1",
		IssueNumber:   "1",
		Description:   "Al Simmons returns from the dead as Image Comics' hellspawn antihero.",
		CoverImageURL: "https://images.example.com/covers/spawn-1.jpg",
		ReleaseDate:   "1992-05-01",
		Creators: models.Creators{
			Writer: []string{"Todd McFarlane"},
			Artist: []string{"Todd McFarlane"},
		},
		Characters: []models.CharacterRef{},
	},
	{
		ID:            12,
		Title:         "Captain America: Winter Soldier #1",
		IssueNumber:   "1",
		Description:   "Steve Rogers confronts a ghost from his past in this modern Marvel espionage thriller.",
		CoverImageURL: "https://images.example.com/covers/winter-soldier-1.jpg",
		ReleaseDate:   "2005-01-01",
		Creators: models.Creators{
			Writer: []string{"Ed Brubaker"},
			Artist: []string{"Steve Epting"},
		},
		Characters: []models.CharacterRef{{ID: 11, Name: "Captain America"}},
	},
}
