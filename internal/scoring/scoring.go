package scoring

import (
	"math"

	"github.com/evamed/evamed/internal/catalog"
)

// Verdict values and their severity colors.
const (
	VerdictApto        = "APTO"
	VerdictConditional = "CONDICIONALMENTE APTO"
	VerdictNotApto     = "NO APTO"

	ColorGreen  = "green"
	ColorYellow = "yellow"
	ColorRed    = "red"
)

// Thresholds for the overall verdict and per-area banding.
const (
	aptoFloor        = 70.0 // overall at or above this is APTO material
	conditionalFloor = 50.0 // overall at or above this avoids NO APTO
	criticalFloor    = 40.0 // any area below this blocks a full APTO
)

// Answer is one recorded response as the engine sees it.
type Answer struct {
	QuestionID  int
	OptionIndex int
}

// DimensionScore is the scored outcome of one dimension.
type DimensionScore struct {
	Key  string  `json:"key"`
	Name string  `json:"name"`
	Pct  float64 `json:"pct"`
}

// AreaScore aggregates the dimensions of one area. Color is the qualitative
// band used for narrative text and is independent of the overall verdict.
type AreaScore struct {
	Key        string                    `json:"key"`
	Name       string                    `json:"name"`
	Pct        float64                   `json:"pct"`
	Color      string                    `json:"color"`
	Dimensions map[string]DimensionScore `json:"dimensions"`
}

// Result is the full scored outcome of a completed evaluation.
type Result struct {
	OverallPct   int         `json:"overall_pct"`
	Verdict      string      `json:"verdict"`
	VerdictColor string      `json:"verdict_color"`
	Areas        []AreaScore `json:"areas"`
}

// Compute aggregates recorded answers into dimension, area and overall
// percentages with a verdict. It is a pure function of its inputs: the same
// answer set always yields a bit-identical Result, regardless of the order
// answers were submitted in.
//
// Dimension pct is the weighted share of earned contribution over the
// maximum attainable within that dimension. Area pct is the plain mean of
// its dimension pcts (equal weight per dimension, so an area is not biased
// toward dimensions with more questions), and the overall pct is the plain
// mean of area pcts.
func Compute(answers []Answer, cat *catalog.Catalog) Result {
	chosen := make(map[int]int, len(answers))
	for _, a := range answers {
		chosen[a.QuestionID] = a.OptionIndex
	}

	type dimAccum struct {
		earned float64
		max    float64
	}

	var areas []AreaScore
	var areaPcts []float64

	for _, areaKey := range cat.AreaOrder {
		dims := make(map[string]*dimAccum)
		var dimOrder []string

		for _, q := range cat.Questions {
			if q.Area != areaKey {
				continue
			}
			idx, ok := chosen[q.ID]
			if !ok || idx < 0 || idx >= len(q.Scores) {
				continue
			}
			acc := dims[q.Dimension]
			if acc == nil {
				acc = &dimAccum{}
				dims[q.Dimension] = acc
				dimOrder = append(dimOrder, q.Dimension)
			}
			acc.earned += q.Scores[idx] * q.Weight
			acc.max += q.MaxScore() * q.Weight
		}
		if len(dims) == 0 {
			continue
		}

		dimScores := make(map[string]DimensionScore, len(dims))
		dimSum := 0.0
		for _, dk := range dimOrder {
			acc := dims[dk]
			pct := roundTenth(acc.earned / acc.max * 100)
			dimScores[dk] = DimensionScore{
				Key:  dk,
				Name: cat.DimensionName(areaKey, dk),
				Pct:  pct,
			}
			dimSum += pct
		}

		areaPct := roundTenth(dimSum / float64(len(dimOrder)))
		areaPcts = append(areaPcts, areaPct)
		areas = append(areas, AreaScore{
			Key:        areaKey,
			Name:       cat.AreaName(areaKey),
			Pct:        areaPct,
			Color:      band(areaPct),
			Dimensions: dimScores,
		})
	}

	overallSum := 0.0
	for _, p := range areaPcts {
		overallSum += p
	}
	overall := 0
	if len(areaPcts) > 0 {
		overall = roundInt(overallSum / float64(len(areaPcts)))
	}

	verdict, color := verdictFor(overall, areaPcts)
	return Result{
		OverallPct:   overall,
		Verdict:      verdict,
		VerdictColor: color,
		Areas:        areas,
	}
}

// verdictFor applies the pass/fail rule: a sub-critical area disqualifies a
// full APTO no matter how high the overall score is.
func verdictFor(overall int, areaPcts []float64) (string, string) {
	anyCritical := false
	for _, p := range areaPcts {
		if p < criticalFloor {
			anyCritical = true
			break
		}
	}
	switch {
	case float64(overall) >= aptoFloor && !anyCritical:
		return VerdictApto, ColorGreen
	case float64(overall) >= conditionalFloor:
		return VerdictConditional, ColorYellow
	default:
		return VerdictNotApto, ColorRed
	}
}

// band assigns the qualitative color for one area percentage.
func band(pct float64) string {
	switch {
	case pct >= aptoFloor:
		return ColorGreen
	case pct >= conditionalFloor:
		return ColorYellow
	default:
		return ColorRed
	}
}

// Half-up rounding. Inputs are always non-negative percentages.
func roundTenth(x float64) float64 {
	return math.Floor(x*10+0.5) / 10
}

func roundInt(x float64) int {
	return int(math.Floor(x + 0.5))
}
