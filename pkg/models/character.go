package models

// Character mirrors the superhero-database record shape the UI already
// consumes. Field names on the wire (hyphenated keys, string-typed stats)
// come from the upstream provider and are kept as-is.
type Character struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Powerstats  Powerstats  `json:"powerstats"`
	Biography   Biography   `json:"biography"`
	Appearance  Appearance  `json:"appearance"`
	Work        Work        `json:"work"`
	Connections Connections `json:"connections"`
	Image       Image       `json:"image"`
}

// Powerstats are nominally 0-100 but arrive as strings and may be empty
// or "null"; they are only coerced to numbers at sort/compare time.
type Powerstats struct {
	Intelligence string `json:"intelligence"`
	Strength     string `json:"strength"`
	Speed        string `json:"speed"`
	Durability   string `json:"durability"`
	Power        string `json:"power"`
	Combat       string `json:"combat"`
}

type Biography struct {
	FullName        string   `json:"full-name"`
	AlterEgos       string   `json:"alter-egos"`
	Aliases         []string `json:"aliases"`
	PlaceOfBirth    string   `json:"place-of-birth"`
	FirstAppearance string   `json:"first-appearance"`
	Publisher       string   `json:"publisher"`
	Alignment       string   `json:"alignment"` // good | bad | neutral
}

type Appearance struct {
	Gender string `json:"gender"`
	Race   string `json:"race"`
	// Height and Weight are parallel unit pairs, e.g. ["6'2", "188 cm"].
	Height    []string `json:"height"`
	Weight    []string `json:"weight"`
	EyeColor  string   `json:"eye-color"`
	HairColor string   `json:"hair-color"`
}

type Work struct {
	Occupation string `json:"occupation"`
	Base       string `json:"base"`
}

type Connections struct {
	GroupAffiliation string `json:"group-affiliation"`
	Relatives        string `json:"relatives"`
}

type Image struct {
	URL string `json:"url"`
}
