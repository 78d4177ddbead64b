package compare

import (
	"math"
	"strconv"
	"strings"

	"vanquish/pkg/models"
)

const statCount = 6

// ParseStat coerces a raw powerstat string to an integer in [0,100].
// Missing or unparseable values count as 0, which lowers averages rather
// than being excluded from them.
func ParseStat(raw string) int {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.EqualFold(raw, "null") {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	if n < 0 {
		return 0
	}
	if n > 100 {
		return 100
	}
	return n
}

// StatWinner reports which side wins one attribute: 1 or 2 on a strict
// greater-than, 0 on a tie.
func StatWinner(a, b int) int {
	switch {
	case a > b:
		return 1
	case b > a:
		return 2
	default:
		return 0
	}
}

// PowerLevel is the rounded arithmetic mean of all six powerstats.
// Zero-valued stats stay in the denominator.
func PowerLevel(c models.Character) int {
	stats := statValues(c)
	sum := 0
	for _, v := range stats {
		sum += v
	}
	return int(math.Round(float64(sum) / statCount))
}

// TotalWins counts attribute outcomes across the six powerstats. The
// triple always sums to six.
func TotalWins(a, b models.Character) (wins1, wins2, ties int) {
	as, bs := statValues(a), statValues(b)
	for i := range as {
		switch StatWinner(as[i], bs[i]) {
		case 1:
			wins1++
		case 2:
			wins2++
		default:
			ties++
		}
	}
	return wins1, wins2, ties
}

// Row is one line of the comparison table. Display-only rows carry a zero
// winner regardless of their values.
type Row struct {
	Attribute   string `json:"attribute"`
	FirstValue  string `json:"char1Value"`
	SecondValue string `json:"char2Value"`
	Winner      int    `json:"winner"`
}

var statNames = [statCount]string{
	"Intelligence", "Strength", "Speed", "Durability", "Power", "Combat",
}

// CompareAttributes builds the full table: six powerstat rows, an Overall
// Power row, then display-only Height, Weight and Publisher rows.
func CompareAttributes(a, b models.Character) []Row {
	as, bs := statValues(a), statValues(b)

	rows := make([]Row, 0, statCount+4)
	for i, name := range statNames {
		rows = append(rows, Row{
			Attribute:   name,
			FirstValue:  strconv.Itoa(as[i]),
			SecondValue: strconv.Itoa(bs[i]),
			Winner:      StatWinner(as[i], bs[i]),
		})
	}

	pa, pb := PowerLevel(a), PowerLevel(b)
	rows = append(rows, Row{
		Attribute:   "Overall Power",
		FirstValue:  strconv.Itoa(pa),
		SecondValue: strconv.Itoa(pb),
		Winner:      StatWinner(pa, pb),
	})

	rows = append(rows,
		Row{Attribute: "Height", FirstValue: lastUnit(a.Appearance.Height), SecondValue: lastUnit(b.Appearance.Height)},
		Row{Attribute: "Weight", FirstValue: lastUnit(a.Appearance.Weight), SecondValue: lastUnit(b.Appearance.Weight)},
		Row{Attribute: "Publisher", FirstValue: a.Biography.Publisher, SecondValue: b.Biography.Publisher},
	)
	return rows
}

func statValues(c models.Character) [statCount]int {
	return [statCount]int{
		ParseStat(c.Powerstats.Intelligence),
		ParseStat(c.Powerstats.Strength),
		ParseStat(c.Powerstats.Speed),
		ParseStat(c.Powerstats.Durability),
		ParseStat(c.Powerstats.Power),
		ParseStat(c.Powerstats.Combat),
	}
}

// lastUnit picks the metric entry from a unit-pair list like
// ["6'2", "188 cm"].
func lastUnit(units []string) string {
	if len(units) == 0 {
		return "Unknown"
	}
	return units[len(units)-1]
}
