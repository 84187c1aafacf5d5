package catalog

import (
	"fmt"
)

// Question is one immutable catalog entry. Options and Scores are parallel:
// Scores[i] is the contribution earned by choosing Options[i].
type Question struct {
	ID        int       `yaml:"id"`
	Area      string    `yaml:"area"`
	Dimension string    `yaml:"dimension"`
	Text      string    `yaml:"text"`
	Options   []string  `yaml:"options"`
	Scores    []float64 `yaml:"scores"`
	Weight    float64   `yaml:"weight"`
}

// MaxScore returns the highest contribution any option of q can earn.
func (q Question) MaxScore() float64 {
	max := 0.0
	for _, s := range q.Scores {
		if s > max {
			max = s
		}
	}
	return max
}

// Area groups dimensions under one top-level psychometric category.
type Area struct {
	Name       string            `yaml:"name"`
	Dimensions map[string]string `yaml:"dimensions"` // dimension key -> display name
}

// Catalog is the ordered question bank an evaluation is created against.
// It is loaded once at startup and never mutated afterwards; every
// evaluation snapshots Size() as its total.
type Catalog struct {
	Areas     map[string]Area
	AreaOrder []string
	Questions []Question

	byID map[int]Question
}

// Size returns the number of questions in the bank.
func (c *Catalog) Size() int {
	return len(c.Questions)
}

// Question looks up a catalog entry by id.
func (c *Catalog) Question(id int) (Question, bool) {
	q, ok := c.byID[id]
	return q, ok
}

// AreaName returns the display name for an area key.
func (c *Catalog) AreaName(key string) string {
	return c.Areas[key].Name
}

// DimensionName returns the display name for a dimension within an area.
func (c *Catalog) DimensionName(areaKey, dimKey string) string {
	return c.Areas[areaKey].Dimensions[dimKey]
}

// NextUnanswered returns the first question in catalog order whose id is not
// in answeredIDs, or nil when every question has been answered. It is the
// delivery policy for all sessions: deterministic, side-effect free, and
// stable across repeated calls with the same answered set.
func (c *Catalog) NextUnanswered(answeredIDs map[int]bool) *Question {
	for i := range c.Questions {
		if !answeredIDs[c.Questions[i].ID] {
			q := c.Questions[i]
			return &q
		}
	}
	return nil
}

// Validate checks the structural invariants the engine relies on. It is run
// at startup so a broken bank fails the process instead of a mid-session
// request.
func (c *Catalog) Validate() error {
	if len(c.Questions) == 0 {
		return fmt.Errorf("catalog has no questions")
	}
	if len(c.Areas) == 0 {
		return fmt.Errorf("catalog defines no areas")
	}
	seen := make(map[int]bool, len(c.Questions))
	for _, q := range c.Questions {
		if q.ID <= 0 {
			return fmt.Errorf("question id %d is not positive", q.ID)
		}
		if seen[q.ID] {
			return fmt.Errorf("duplicate question id %d", q.ID)
		}
		seen[q.ID] = true

		area, ok := c.Areas[q.Area]
		if !ok {
			return fmt.Errorf("question %d references unknown area %q", q.ID, q.Area)
		}
		if _, ok := area.Dimensions[q.Dimension]; !ok {
			return fmt.Errorf("question %d references unknown dimension %q in area %q", q.ID, q.Dimension, q.Area)
		}
		if len(q.Options) == 0 {
			return fmt.Errorf("question %d has no options", q.ID)
		}
		if len(q.Scores) != len(q.Options) {
			return fmt.Errorf("question %d has %d scores for %d options", q.ID, len(q.Scores), len(q.Options))
		}
		if q.MaxScore() <= 0 {
			return fmt.Errorf("question %d has no positive score option", q.ID)
		}
		if q.Weight <= 0 {
			return fmt.Errorf("question %d has non-positive weight %v", q.ID, q.Weight)
		}
	}
	return nil
}

func (c *Catalog) index() {
	c.byID = make(map[int]Question, len(c.Questions))
	for _, q := range c.Questions {
		c.byID[q.ID] = q
	}
}
