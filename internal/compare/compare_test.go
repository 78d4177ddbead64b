package compare

import (
	"testing"

	"github.com/stretchr/testify/require"

	"vanquish/pkg/models"
)

func char(stats [6]string) models.Character {
	return models.Character{
		Powerstats: models.Powerstats{
			Intelligence: stats[0],
			Strength:     stats[1],
			Speed:        stats[2],
			Durability:   stats[3],
			Power:        stats[4],
			Combat:       stats[5],
		},
	}
}

func TestParseStat(t *testing.T) {
	require.Equal(t, 50, ParseStat("50"))
	require.Equal(t, 0, ParseStat(""))
	require.Equal(t, 0, ParseStat("null"))
	require.Equal(t, 0, ParseStat("NULL"))
	require.Equal(t, 0, ParseStat("abc"))
	require.Equal(t, 0, ParseStat("-5"))
	require.Equal(t, 100, ParseStat("150"))
	require.Equal(t, 100, ParseStat("100"))
}

func TestStatWinner(t *testing.T) {
	require.Equal(t, 1, StatWinner(80, 40))
	require.Equal(t, 2, StatWinner(40, 80))
	require.Equal(t, 0, StatWinner(50, 50))
}

func TestPowerLevelIncludesZeros(t *testing.T) {
	// missing stats stay in the denominator
	c := char([6]string{"60", "60", "60", "", "null", ""})
	require.Equal(t, 30, PowerLevel(c))

	full := char([6]string{"100", "100", "100", "100", "100", "100"})
	require.Equal(t, 100, PowerLevel(full))

	empty := char([6]string{})
	require.Equal(t, 0, PowerLevel(empty))
}

func TestTotalWinsSumsToSix(t *testing.T) {
	a := char([6]string{"90", "10", "50", "", "70", "30"})
	b := char([6]string{"10", "90", "50", "null", "30", "70"})

	w1, w2, ties := TotalWins(a, b)
	require.Equal(t, 6, w1+w2+ties)
	require.Equal(t, 2, w1)
	require.Equal(t, 2, w2)
	require.Equal(t, 2, ties)
}

func TestCompareAttributesAntisymmetric(t *testing.T) {
	a := char([6]string{"90", "10", "50", "80", "70", "30"})
	b := char([6]string{"10", "90", "50", "20", "30", "70"})

	forward := CompareAttributes(a, b)
	backward := CompareAttributes(b, a)
	require.Len(t, forward, len(backward))

	for i := range forward {
		switch forward[i].Winner {
		case 1:
			require.Equal(t, 2, backward[i].Winner, forward[i].Attribute)
		case 2:
			require.Equal(t, 1, backward[i].Winner, forward[i].Attribute)
		default:
			require.Equal(t, 0, backward[i].Winner, forward[i].Attribute)
		}
	}
}

func TestCompareAttributesDisplayRows(t *testing.T) {
	a := char([6]string{"100", "100", "100", "100", "100", "100"})
	a.Appearance.Height = []string{"6'2", "188 cm"}
	a.Appearance.Weight = []string{"210 lb", "95 kg"}
	a.Biography.Publisher = "Marvel Comics"
	b := char([6]string{})
	b.Biography.Publisher = "DC Comics"

	rows := CompareAttributes(a, b)
	require.Len(t, rows, 10)

	byName := map[string]Row{}
	for _, r := range rows {
		byName[r.Attribute] = r
	}

	require.Equal(t, 1, byName["Overall Power"].Winner)
	require.Equal(t, "100", byName["Overall Power"].FirstValue)
	require.Equal(t, "0", byName["Overall Power"].SecondValue)

	// display rows never produce a winner
	require.Equal(t, 0, byName["Height"].Winner)
	require.Equal(t, "188 cm", byName["Height"].FirstValue)
	require.Equal(t, "Unknown", byName["Height"].SecondValue)
	require.Equal(t, 0, byName["Weight"].Winner)
	require.Equal(t, 0, byName["Publisher"].Winner)
	require.Equal(t, "Marvel Comics", byName["Publisher"].FirstValue)
}
