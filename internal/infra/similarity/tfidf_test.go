package similarity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	assert.Equal(t, []string{"esp32", "wi", "fi", "board"}, Tokenize("ESP32 Wi-Fi board!"))
	assert.Equal(t, []string{"fundi", "bomba"}, Tokenize("a Fundi  bomba"))
	assert.Empty(t, Tokenize("a b c"))
}

func TestScores(t *testing.T) {
	scorer := NewTFIDF()

	t.Run("identical text scores one", func(t *testing.T) {
		scores := scorer.Scores("plumbing repair", []string{"plumbing repair"})
		require.Len(t, scores, 1)
		assert.InDelta(t, 1.0, scores[0], 1e-9)
	})

	t.Run("disjoint text scores zero", func(t *testing.T) {
		scores := scorer.Scores("plumbing repair", []string{"wedding photography"})
		assert.InDelta(t, 0.0, scores[0], 1e-9)
	})

	t.Run("closer documents score higher", func(t *testing.T) {
		scores := scorer.Scores("leaking kitchen pipe repair", []string{
			"wedding photography",
			"pipe repair and plumbing",
			"kitchen pipe repair for leaking sinks",
		})
		require.Len(t, scores, 3)
		assert.Greater(t, scores[2], scores[1])
		assert.Greater(t, scores[1], scores[0])
		for _, s := range scores {
			assert.False(t, math.IsNaN(s))
			assert.LessOrEqual(t, s, 1.0+1e-9)
		}
	})

	t.Run("matches smoothed idf weighting", func(t *testing.T) {
		// n=3, "repair" in all docs (idf 1), "pipe" in two (idf ln(4/3)+1).
		scores := scorer.Scores("pipe repair", []string{"pipe repair", "repair"})
		idfPipe := math.Log(4.0/3.0) + 1
		want := 1 / math.Sqrt(idfPipe*idfPipe+1)
		assert.InDelta(t, 1.0, scores[0], 1e-9)
		assert.InDelta(t, want, scores[1], 1e-9)
	})

	t.Run("no documents", func(t *testing.T) {
		assert.Empty(t, scorer.Scores("anything", nil))
	})

	t.Run("empty query", func(t *testing.T) {
		assert.Equal(t, []float64{0, 0}, scorer.Scores("", []string{"pipe", "drill"}))
	})
}
