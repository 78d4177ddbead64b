package comics

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStableIDDeterministic(t *testing.T) {
	a := StableID("Saga #1", "https://cdn.example.com/saga-1.jpg")
	b := StableID("Saga #1", "https://cdn.example.com/saga-1.jpg")
	require.Equal(t, a, b)
	require.Positive(t, a)
}

func TestStableIDIgnoresQueryAndCase(t *testing.T) {
	base := StableID("Saga #1", "https://cdn.example.com/saga-1.jpg")

	require.Equal(t, base, StableID("Saga #1", "HTTPS://CDN.Example.COM/saga-1.jpg"))
	require.Equal(t, base, StableID("Saga #1", "https://cdn.example.com/saga-1.jpg?cache=123"))
	require.Equal(t, base, StableID("Saga #1", "https://cdn.example.com/saga-1.jpg#frag"))
	require.Equal(t, base, StableID("  Saga #1  ", "https://cdn.example.com/saga-1.jpg"))
}

func TestStableIDDistinguishesRecords(t *testing.T) {
	a := StableID("Saga #1", "https://cdn.example.com/saga-1.jpg")
	b := StableID("Saga #2", "https://cdn.example.com/saga-2.jpg")
	require.NotEqual(t, a, b)

	// same cover, different title still differs
	c := StableID("Saga #2", "https://cdn.example.com/saga-1.jpg")
	require.NotEqual(t, a, c)
}

func TestStableIDPathCaseSignificant(t *testing.T) {
	a := StableID("Saga #1", "https://cdn.example.com/Saga-1.jpg")
	b := StableID("Saga #1", "https://cdn.example.com/saga-1.jpg")
	require.NotEqual(t, a, b)
}
