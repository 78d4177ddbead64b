package characters

import "vanquish/pkg/models"

// Fallback returns a copy of the bundled character dataset, served whenever
// the live provider is unavailable or returns nothing.
func Fallback() []models.Character {
	out := make([]models.Character, len(fallbackCharacters))
	copy(out, fallbackCharacters)
	return out
}

// silverSable is injected into fallback search results for queries
// containing "silver" that would otherwise come back empty.
func silverSable() models.Character {
	return models.Character{
		ID:   "15",
		Name: "Silver Sable",
		Powerstats: models.Powerstats{
			Intelligence: "75", Strength: "45", Speed: "55",
			Durability: "60", Power: "60", Combat: "85",
		},
		Biography: models.Biography{
			FullName:        "Silver Sablinova",
			AlterEgos:       "No alter egos found.",
			Aliases:         []string{"Silvija Sablinova", "CEO of Silver Sable International"},
			PlaceOfBirth:    "Symkaria",
			FirstAppearance: "Amazing Spider-Man #265",
			Publisher:       "Marvel Comics",
			Alignment:       "neutral",
		},
		Appearance: models.Appearance{
			Gender: "Female", Race: "Human",
			Height:   []string{"5'10", "178 cm"},
			Weight:   []string{"150 lb", "68 kg"},
			EyeColor: "Blue", HairColor: "Silver",
		},
		Work: models.Work{
			Occupation: "Mercenary, CEO of Silver Sable International",
			Base:       "Symkaria, New York City",
		},
		Connections: models.Connections{
			GroupAffiliation: "Wild Pack, Outlaws",
			Relatives:        "Ernst Sablinova (father, deceased)",
		},
		Image: models.Image{URL: "https://www.superherodb.com/pictures2/portraits/10/100/1041.jpg"},
	}
}

var fallbackCharacters = []models.Character{
	{
		ID:   "1",
		Name: "Batman",
		Powerstats: models.Powerstats{
			Intelligence: "100", Strength: "26", Speed: "27",
			Durability: "50", Power: "47", Combat: "100",
		},
		Biography: models.Biography{
			FullName:        "Bruce Wayne",
			AlterEgos:       "No alter egos found.",
			Aliases:         []string{"Matches Malone", "The Dark Knight", "The Caped Crusader"},
			PlaceOfBirth:    "Gotham City",
			FirstAppearance: "Detective Comics #27",
			Publisher:       "DC Comics",
			Alignment:       "good",
		},
		Appearance: models.Appearance{
			Gender: "Male", Race: "Human",
			Height:   []string{"6'2", "188 cm"},
			Weight:   []string{"210 lb", "95 kg"},
			EyeColor: "Blue", HairColor: "Black",
		},
		Work: models.Work{
			Occupation: "Businessman",
			Base:       "Batcave, Stately Wayne Manor, Gotham City",
		},
		Connections: models.Connections{
			GroupAffiliation: "Justice League, Batman Family",
			Relatives:        "Thomas Wayne (father, deceased), Martha Wayne (mother, deceased), Alfred Pennyworth (surrogate father)",
		},
		Image: models.Image{URL: "https://www.superherodb.com/pictures2/portraits/10/100/639.jpg"},
	},
	{
		ID:   "13",
		Name: "Deadpool",
		Powerstats: models.Powerstats{
			Intelligence: "69", Strength: "32", Speed: "50",
			Durability: "100", Power: "100", Combat: "100",
		},
		Biography: models.Biography{
			FullName:        "Wade Wilson",
			AlterEgos:       "No alter egos found.",
			Aliases:         []string{"Merc with a Mouth", "Regenerating Degenerate", "Captain Deadpool"},
			PlaceOfBirth:    "Canada",
			FirstAppearance: "New Mutants #98",
			Publisher:       "Marvel Comics",
			Alignment:       "neutral",
		},
		Appearance: models.Appearance{
			Gender: "Male", Race: "Mutant",
			Height:   []string{"6'2", "188 cm"},
			Weight:   []string{"210 lb", "95 kg"},
			EyeColor: "Brown", HairColor: "No Hair",
		},
		Work: models.Work{
			Occupation: "Mercenary",
			Base:       "Mobile",
		},
		Connections: models.Connections{
			GroupAffiliation: "X-Force, Avengers",
			Relatives:        "Unknown",
		},
		Image: models.Image{URL: "https://www.superherodb.com/pictures2/portraits/10/100/835.jpg"},
	},
	{
		ID:   "14",
		Name: "Silver Surfer",
		Powerstats: models.Powerstats{
			Intelligence: "80", Strength: "100", Speed: "100",
			Durability: "90", Power: "100", Combat: "70",
		},
		Biography: models.Biography{
			FullName:        "Norrin Radd",
			AlterEgos:       "No alter egos found.",
			Aliases:         []string{"Sentinel of the Spaceways", "Herald of Galactus", "Norrin Radd"},
			PlaceOfBirth:    "Zenn-La",
			FirstAppearance: "Fantastic Four #48",
			Publisher:       "Marvel Comics",
			Alignment:       "good",
		},
		Appearance: models.Appearance{
			Gender: "Male", Race: "Alien",
			Height:   []string{"6'4", "193 cm"},
			Weight:   []string{"225 lb", "102 kg"},
			EyeColor: "White", HairColor: "No Hair",
		},
		Work: models.Work{
			Occupation: "Herald of Galactus",
			Base:       "Mobile throughout the universe",
		},
		Connections: models.Connections{
			GroupAffiliation: "Former member of Defenders, former herald of Galactus",
			Relatives:        "Shalla-Bal (wife, deceased)",
		},
		Image: models.Image{URL: "https://www.superherodb.com/pictures2/portraits/10/100/127.jpg"},
	},
	{
		ID:   "2",
		Name: "Superman",
		Powerstats: models.Powerstats{
			Intelligence: "94", Strength: "100", Speed: "100",
			Durability: "100", Power: "100", Combat: "85",
		},
		Biography: models.Biography{
			FullName:        "Clark Kent",
			AlterEgos:       "Superman Prime One-Million",
			Aliases:         []string{"The Man of Steel", "The Man of Tomorrow", "Kal-El"},
			PlaceOfBirth:    "Krypton",
			FirstAppearance: "Action Comics #1",
			Publisher:       "DC Comics",
			Alignment:       "good",
		},
		Appearance: models.Appearance{
			Gender: "Male", Race: "Kryptonian",
			Height:   []string{"6'3", "191 cm"},
			Weight:   []string{"225 lb", "101 kg"},
			EyeColor: "Blue", HairColor: "Black",
		},
		Work: models.Work{
			Occupation: "Reporter",
			Base:       "Metropolis",
		},
		Connections: models.Connections{
			GroupAffiliation: "Justice League of America, The Legion of Super-Heroes (pre-Crisis as Superboy)",
			Relatives:        "Jor-El (father, deceased), Lara (mother, deceased), Jonathan Kent (adoptive father), Martha Kent (adoptive mother)",
		},
		Image: models.Image{URL: "https://www.superherodb.com/pictures2/portraits/10/100/791.jpg"},
	},
	{
		ID:   "3",
		Name: "Spider-Man",
		Powerstats: models.Powerstats{
			Intelligence: "90", Strength: "55", Speed: "67",
			Durability: "75", Power: "74", Combat: "85",
		},
		Biography: models.Biography{
			FullName:        "Peter Parker",
			AlterEgos:       "No alter egos found.",
			Aliases:         []string{"Spidey", "Wall-crawler", "Webhead"},
			PlaceOfBirth:    "Queens, New York City",
			FirstAppearance: "Amazing Fantasy #15",
			Publisher:       "Marvel Comics",
			Alignment:       "good",
		},
		Appearance: models.Appearance{
			Gender: "Male", Race: "Human",
			Height:   []string{"5'10", "178 cm"},
			Weight:   []string{"165 lb", "75 kg"},
			EyeColor: "Hazel", HairColor: "Brown",
		},
		Work: models.Work{
			Occupation: "Freelance photographer, teacher",
			Base:       "New York City",
		},
		Connections: models.Connections{
			GroupAffiliation: "Avengers, formerly the Secret Defenders, New Fantastic Four",
			Relatives:        "Richard Parker (father, deceased), Mary Parker (mother, deceased), Uncle Ben (deceased), Aunt May",
		},
		Image: models.Image{URL: "https://www.superherodb.com/pictures2/portraits/10/100/133.jpg"},
	},
	{
		ID:   "4",
		Name: "Wonder Woman",
		Powerstats: models.Powerstats{
			Intelligence: "88", Strength: "100", Speed: "79",
			Durability: "100", Power: "100", Combat: "100",
		},
		Biography: models.Biography{
			FullName:        "Diana Prince",
			AlterEgos:       "No alter egos found.",
			Aliases:         []string{"Princess Diana", "The Amazon Princess"},
			PlaceOfBirth:    "Themyscira",
			FirstAppearance: "All Star Comics #8",
			Publisher:       "DC Comics",
			Alignment:       "good",
		},
		Appearance: models.Appearance{
			Gender: "Female", Race: "Amazon",
			Height:   []string{"6'0", "183 cm"},
			Weight:   []string{"165 lb", "75 kg"},
			EyeColor: "Blue", HairColor: "Black",
		},
		Work: models.Work{
			Occupation: "Diplomat, Adventurer",
			Base:       "Themyscira, Gateway City, Washington DC",
		},
		Connections: models.Connections{
			GroupAffiliation: "Justice League of America, Justice Society of America (pre-Crisis)",
			Relatives:        "Queen Hippolyta (mother)",
		},
		Image: models.Image{URL: "https://www.superherodb.com/pictures2/portraits/10/100/807.jpg"},
	},
	{
		ID:   "5",
		Name: "Iron Man",
		Powerstats: models.Powerstats{
			Intelligence: "100", Strength: "85", Speed: "58",
			Durability: "85", Power: "100", Combat: "64",
		},
		Biography: models.Biography{
			FullName:        "Tony Stark",
			AlterEgos:       "No alter egos found.",
			Aliases:         []string{"Iron Knight", "Shellhead", "Armored Avenger"},
			PlaceOfBirth:    "Long Island, New York",
			FirstAppearance: "Tales of Suspense #39",
			Publisher:       "Marvel Comics",
			Alignment:       "good",
		},
		Appearance: models.Appearance{
			Gender: "Male", Race: "Human",
			Height:   []string{"6'6", "198 cm"},
			Weight:   []string{"425 lb", "191 kg"},
			EyeColor: "Blue", HairColor: "Black",
		},
		Work: models.Work{
			Occupation: "Inventor, Industrialist, CEO of Stark Industries",
			Base:       "Stark Tower, New York City",
		},
		Connections: models.Connections{
			GroupAffiliation: "Avengers, S.H.I.E.L.D.",
			Relatives:        "Howard Stark (father, deceased), Maria Stark (mother, deceased)",
		},
		Image: models.Image{URL: "https://www.superherodb.com/pictures2/portraits/10/100/85.jpg"},
	},
	{
		ID:   "6",
		Name: "The Flash",
		Powerstats: models.Powerstats{
			Intelligence: "88", Strength: "48", Speed: "100",
			Durability: "60", Power: "100", Combat: "60",
		},
		Biography: models.Biography{
			FullName:        "Barry Allen",
			AlterEgos:       "No alter egos found.",
			Aliases:         []string{"The Scarlet Speedster", "The Fastest Man Alive"},
			PlaceOfBirth:    "Fallville, Iowa",
			FirstAppearance: "Showcase #4",
			Publisher:       "DC Comics",
			Alignment:       "good",
		},
		Appearance: models.Appearance{
			Gender: "Male", Race: "Human",
			Height:   []string{"6'0", "183 cm"},
			Weight:   []string{"190 lb", "86 kg"},
			EyeColor: "Blue", HairColor: "Blond",
		},
		Work: models.Work{
			Occupation: "Forensic Scientist",
			Base:       "Central City",
		},
		Connections: models.Connections{
			GroupAffiliation: "Justice League of America, Flash Family",
			Relatives:        "Henry Allen (father), Nora Allen (mother, deceased)",
		},
		Image: models.Image{URL: "https://www.superherodb.com/pictures2/portraits/10/100/892.jpg"},
	},
	{
		ID:   "7",
		Name: "Thor",
		Powerstats: models.Powerstats{
			Intelligence: "69", Strength: "100", Speed: "83",
			Durability: "100", Power: "100", Combat: "100",
		},
		Biography: models.Biography{
			FullName:        "Thor Odinson",
			AlterEgos:       "Rune King Thor",
			Aliases:         []string{"God of Thunder", "Donald Blake"},
			PlaceOfBirth:    "Asgard",
			FirstAppearance: "Journey into Mystery #83",
			Publisher:       "Marvel Comics",
			Alignment:       "good",
		},
		Appearance: models.Appearance{
			Gender: "Male", Race: "Asgardian",
			Height:   []string{"6'6", "198 cm"},
			Weight:   []string{"640 lb", "288 kg"},
			EyeColor: "Blue", HairColor: "Blond",
		},
		Work: models.Work{
			Occupation: "King of Asgard, Physician",
			Base:       "Asgard, New York City",
		},
		Connections: models.Connections{
			GroupAffiliation: "Avengers",
			Relatives:        "Odin (father), Frigga (mother), Loki (adopted brother)",
		},
		Image: models.Image{URL: "https://www.superherodb.com/pictures2/portraits/10/100/140.jpg"},
	},
	{
		ID:   "8",
		Name: "Hulk",
		Powerstats: models.Powerstats{
			Intelligence: "88", Strength: "100", Speed: "63",
			Durability: "100", Power: "98", Combat: "85",
		},
		Biography: models.Biography{
			FullName:        "Bruce Banner",
			AlterEgos:       "No alter egos found.",
			Aliases:         []string{"Annihilator", "Green Scar", "World-Breaker"},
			PlaceOfBirth:    "Dayton, Ohio",
			FirstAppearance: "Incredible Hulk #1",
			Publisher:       "Marvel Comics",
			Alignment:       "good",
		},
		Appearance: models.Appearance{
			Gender: "Male", Race: "Human / Radiation",
			Height:   []string{"8'0", "244 cm"},
			Weight:   []string{"1400 lb", "630 kg"},
			EyeColor: "Green", HairColor: "Green",
		},
		Work: models.Work{
			Occupation: "Nuclear physicist, Agent of S.H.I.E.L.D.",
			Base:       "New Mexico",
		},
		Connections: models.Connections{
			GroupAffiliation: "Avengers, former member of the Defenders",
			Relatives:        "Betty Ross (wife), Brian Banner (father, deceased)",
		},
		Image: models.Image{URL: "https://www.superherodb.com/pictures2/portraits/10/100/83.jpg"},
	},
	{
		ID:   "9",
		Name: "Black Widow",
		Powerstats: models.Powerstats{
			Intelligence: "75", Strength: "13", Speed: "33",
			Durability: "30", Power: "36", Combat: "100",
		},
		Biography: models.Biography{
			FullName:        "Natasha Romanoff",
			AlterEgos:       "No alter egos found.",
			Aliases:         []string{"Natalia Romanova", "Natalia Ivanovna Romanova"},
			PlaceOfBirth:    "Stalingrad, Russia",
			FirstAppearance: "Tales of Suspense #52",
			Publisher:       "Marvel Comics",
			Alignment:       "good",
		},
		Appearance: models.Appearance{
			Gender: "Female", Race: "Human",
			Height:   []string{"5'7", "170 cm"},
			Weight:   []string{"131 lb", "59 kg"},
			EyeColor: "Green", HairColor: "Red",
		},
		Work: models.Work{
			Occupation: "Spy, Agent of S.H.I.E.L.D.",
			Base:       "Mobile",
		},
		Connections: models.Connections{
			GroupAffiliation: "Avengers, formerly KGB",
			Relatives:        "Unknown",
		},
		Image: models.Image{URL: "https://www.superherodb.com/pictures2/portraits/10/100/248.jpg"},
	},
	{
		ID:   "10",
		Name: "Green Lantern",
		Powerstats: models.Powerstats{
			Intelligence: "80", Strength: "90", Speed: "53",
			Durability: "64", Power: "100", Combat: "74",
		},
		Biography: models.Biography{
			FullName:        "Hal Jordan",
			AlterEgos:       "No alter egos found.",
			Aliases:         []string{"Green Lantern", "Parallax", "Spectre"},
			PlaceOfBirth:    "Coast City, California",
			FirstAppearance: "Showcase #22",
			Publisher:       "DC Comics",
			Alignment:       "good",
		},
		Appearance: models.Appearance{
			Gender: "Male", Race: "Human",
			Height:   []string{"6'2", "188 cm"},
			Weight:   []string{"200 lb", "90 kg"},
			EyeColor: "Brown", HairColor: "Brown",
		},
		Work: models.Work{
			Occupation: "Test Pilot",
			Base:       "Coast City, California",
		},
		Connections: models.Connections{
			GroupAffiliation: "Green Lantern Corps, Justice League of America",
			Relatives:        "Martin Jordan (father, deceased), Jessica Jordan (mother), Jack Jordan (brother), Jim Jordan (brother)",
		},
		Image: models.Image{URL: "https://www.superherodb.com/pictures2/portraits/10/100/697.jpg"},
	},
	{
		ID:   "11",
		Name: "Captain America",
		Powerstats: models.Powerstats{
			Intelligence: "69", Strength: "19", Speed: "38",
			Durability: "55", Power: "60", Combat: "100",
		},
		Biography: models.Biography{
			FullName:        "Steve Rogers",
			AlterEgos:       "No alter egos found.",
			Aliases:         []string{"Nomad", "The Captain"},
			PlaceOfBirth:    "Manhattan, New York",
			FirstAppearance: "Captain America Comics #1",
			Publisher:       "Marvel Comics",
			Alignment:       "good",
		},
		Appearance: models.Appearance{
			Gender: "Male", Race: "Human",
			Height:   []string{"6'2", "188 cm"},
			Weight:   []string{"240 lb", "108 kg"},
			EyeColor: "Blue", HairColor: "Blond",
		},
		Work: models.Work{
			Occupation: "Adventurer, federal official, intelligence operative, former soldier",
			Base:       "New York City",
		},
		Connections: models.Connections{
			GroupAffiliation: "Avengers, formerly Secret Avengers",
			Relatives:        "Joseph Rogers (father, deceased), Sarah Rogers (mother, deceased)",
		},
		Image: models.Image{URL: "https://www.superherodb.com/pictures2/portraits/10/100/274.jpg"},
	},
	{
		ID:   "12",
		Name: "Joker",
		Powerstats: models.Powerstats{
			Intelligence: "100", Strength: "10", Speed: "12",
			Durability: "60", Power: "43", Combat: "70",
		},
		Biography: models.Biography{
			FullName:        "Unknown",
			AlterEgos:       "No alter egos found.",
			Aliases:         []string{"Red Hood", "Clown Prince of Crime", "Harlequin of Hate"},
			PlaceOfBirth:    "Unknown",
			FirstAppearance: "Batman #1",
			Publisher:       "DC Comics",
			Alignment:       "bad",
		},
		Appearance: models.Appearance{
			Gender: "Male", Race: "Human",
			Height:   []string{"6'5", "196 cm"},
			Weight:   []string{"192 lb", "86 kg"},
			EyeColor: "Green", HairColor: "Green",
		},
		Work: models.Work{
			Occupation: "Criminal, Former Chemical Engineer",
			Base:       "Arkham Asylum, Gotham City",
		},
		Connections: models.Connections{
			GroupAffiliation: "Injustice Gang, Injustice League, formerly Harley Quinn",
			Relatives:        "Unknown",
		},
		Image: models.Image{URL: "https://www.superherodb.com/pictures2/portraits/10/100/719.jpg"},
	},
}
