package scoring

// gradeBand maps a minimum score to a letter grade. Bands are contiguous and
// exhaustive over [0, 100].
type gradeBand struct {
	min   float64
	grade string
}

var gradeBands = []gradeBand{
	{97, "A+"},
	{93, "A"},
	{90, "A-"},
	{87, "B+"},
	{83, "B"},
	{80, "B-"},
	{77, "C+"},
	{73, "C"},
	{70, "C-"},
	{67, "D+"},
	{63, "D"},
	{60, "D-"},
	{0, "F"},
}

// Grade returns the letter grade for a 0-100 score.
func Grade(score float64) string {
	for _, band := range gradeBands {
		if score >= band.min {
			return band.grade
		}
	}
	return "F"
}
