package scoring

import (
	"math/rand"
	"testing"

	"github.com/evamed/evamed/internal/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fourAreaBank has one question per area whose score list covers the exact
// percentages the verdict boundaries need.
const fourAreaBank = `
areas:
  a: {name: "Area A", dimensions: {d: "Dim A"}}
  b: {name: "Area B", dimensions: {d: "Dim B"}}
  c: {name: "Area C", dimensions: {d: "Dim C"}}
  e: {name: "Area E", dimensions: {d: "Dim E"}}
questions:
  - {id: 1, area: a, dimension: d, text: "qa", options: ["0", "1", "2", "3", "4", "5"], scores: [100, 70, 49, 41, 39, 0]}
  - {id: 2, area: b, dimension: d, text: "qb", options: ["0", "1", "2", "3", "4", "5"], scores: [100, 70, 49, 41, 39, 0]}
  - {id: 3, area: c, dimension: d, text: "qc", options: ["0", "1", "2", "3", "4", "5"], scores: [100, 70, 49, 41, 39, 0]}
  - {id: 4, area: e, dimension: d, text: "qe", options: ["0", "1", "2", "3", "4", "5"], scores: [100, 70, 49, 41, 39, 0]}
`

func mustBank(t *testing.T, yaml string) *catalog.Catalog {
	t.Helper()
	bank, err := catalog.Parse([]byte(yaml))
	require.NoError(t, err)
	return bank
}

// picks maps option indexes (per question id 1..4) onto answers.
func picks(indexes ...int) []Answer {
	answers := make([]Answer, len(indexes))
	for i, idx := range indexes {
		answers[i] = Answer{QuestionID: i + 1, OptionIndex: idx}
	}
	return answers
}

func TestCompute_AllMaxIsApto(t *testing.T) {
	bank := mustBank(t, fourAreaBank)

	result := Compute(picks(0, 0, 0, 0), bank)

	assert.Equal(t, 100, result.OverallPct)
	assert.Equal(t, VerdictApto, result.Verdict)
	assert.Equal(t, ColorGreen, result.VerdictColor)
	require.Len(t, result.Areas, 4)
	for _, area := range result.Areas {
		assert.Equal(t, 100.0, area.Pct)
		assert.Equal(t, ColorGreen, area.Color)
		for _, dim := range area.Dimensions {
			assert.Equal(t, 100.0, dim.Pct)
		}
	}
}

func TestCompute_VerdictBoundaries(t *testing.T) {
	bank := mustBank(t, fourAreaBank)

	cases := []struct {
		name        string
		answers     []Answer
		wantOverall int
		wantVerdict string
		wantColor   string
	}{
		{
			// 70 everywhere, nothing critical.
			name:        "overall exactly 70 all areas above floor",
			answers:     picks(1, 1, 1, 1),
			wantOverall: 70,
			wantVerdict: VerdictApto,
			wantColor:   ColorGreen,
		},
		{
			// 39 + 100 + 100 + 41 averages to 70, but the 39 area blocks APTO.
			name:        "overall 70 with one area below critical floor",
			answers:     picks(4, 0, 0, 3),
			wantOverall: 70,
			wantVerdict: VerdictConditional,
			wantColor:   ColorYellow,
		},
		{
			name:        "overall 49 is not apto",
			answers:     picks(2, 2, 2, 2),
			wantOverall: 49,
			wantVerdict: VerdictNotApto,
			wantColor:   ColorRed,
		},
		{
			name:        "overall between 50 and 70 is conditional",
			answers:     picks(2, 2, 2, 0), // 49, 49, 49, 100 -> 61.75 ~ 62
			wantOverall: 62,
			wantVerdict: VerdictConditional,
			wantColor:   ColorYellow,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := Compute(tc.answers, bank)
			assert.Equal(t, tc.wantOverall, result.OverallPct)
			assert.Equal(t, tc.wantVerdict, result.Verdict)
			assert.Equal(t, tc.wantColor, result.VerdictColor)
		})
	}
}

func TestCompute_OverallRoundsHalfUp(t *testing.T) {
	bank := mustBank(t, fourAreaBank)

	// 39 + 70 + 70 + 100 = 279 -> 69.75 rounds to 70. The sub-critical area
	// still forces the conditional verdict.
	result := Compute(picks(4, 1, 1, 0), bank)
	assert.Equal(t, 70, result.OverallPct)
	assert.Equal(t, VerdictConditional, result.Verdict)
}

func TestCompute_AreaBanding(t *testing.T) {
	bank := mustBank(t, fourAreaBank)

	result := Compute(picks(0, 1, 2, 5), bank) // 100, 70, 49, 0
	bands := map[string]string{}
	for _, area := range result.Areas {
		bands[area.Key] = area.Color
	}
	assert.Equal(t, ColorGreen, bands["a"])
	assert.Equal(t, ColorGreen, bands["b"])
	assert.Equal(t, ColorRed, bands["c"]) // 49 is below the yellow floor
	assert.Equal(t, ColorRed, bands["e"])
}

func TestCompute_DimensionWeighting(t *testing.T) {
	bank := mustBank(t, `
areas:
  a: {name: "A", dimensions: {d: "D"}}
questions:
  - {id: 1, area: a, dimension: d, text: "x", options: ["si", "tal vez", "no"], scores: [2, 1, 0]}
  - {id: 2, area: a, dimension: d, text: "y", options: ["si", "tal vez", "no"], scores: [2, 1, 0], weight: 3.0}
`)

	// earned 2*1 + 0*3 = 2 of max 2*1 + 2*3 = 8.
	result := Compute([]Answer{
		{QuestionID: 1, OptionIndex: 0},
		{QuestionID: 2, OptionIndex: 2},
	}, bank)

	require.Len(t, result.Areas, 1)
	assert.Equal(t, 25.0, result.Areas[0].Pct)
}

func TestCompute_DimensionsWeighEquallyWithinArea(t *testing.T) {
	bank := mustBank(t, `
areas:
  a: {name: "A", dimensions: {many: "Many", few: "Few"}}
questions:
  - {id: 1, area: a, dimension: many, text: "m1", options: ["si", "no"], scores: [1, 0]}
  - {id: 2, area: a, dimension: many, text: "m2", options: ["si", "no"], scores: [1, 0]}
  - {id: 3, area: a, dimension: many, text: "m3", options: ["si", "no"], scores: [1, 0]}
  - {id: 4, area: a, dimension: few, text: "f1", options: ["si", "no"], scores: [1, 0]}
`)

	// Three perfect answers in one dimension, one zero answer in the other:
	// the area averages its dimensions, not its questions.
	result := Compute([]Answer{
		{QuestionID: 1, OptionIndex: 0},
		{QuestionID: 2, OptionIndex: 0},
		{QuestionID: 3, OptionIndex: 0},
		{QuestionID: 4, OptionIndex: 1},
	}, bank)

	require.Len(t, result.Areas, 1)
	assert.Equal(t, 50.0, result.Areas[0].Pct)
}

func TestCompute_OrderIndependent(t *testing.T) {
	bank, err := catalog.Load("")
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(7))
	answers := make([]Answer, 0, bank.Size())
	for _, q := range bank.Questions {
		answers = append(answers, Answer{QuestionID: q.ID, OptionIndex: rng.Intn(len(q.Options))})
	}

	baseline := Compute(answers, bank)
	for i := 0; i < 10; i++ {
		shuffled := make([]Answer, len(answers))
		copy(shuffled, answers)
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })
		assert.Equal(t, baseline, Compute(shuffled, bank))
	}
}

func TestCompute_EmbeddedBankAllBest(t *testing.T) {
	bank, err := catalog.Load("")
	require.NoError(t, err)

	answers := make([]Answer, 0, bank.Size())
	for _, q := range bank.Questions {
		best := 0
		for i, s := range q.Scores {
			if s > q.Scores[best] {
				best = i
			}
		}
		answers = append(answers, Answer{QuestionID: q.ID, OptionIndex: best})
	}

	result := Compute(answers, bank)
	assert.Equal(t, 100, result.OverallPct)
	assert.Equal(t, VerdictApto, result.Verdict)
	assert.Equal(t, ColorGreen, result.VerdictColor)
}
