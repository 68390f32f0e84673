// Package scoring implements the PSS-10 scoring rules: reverse-scored
// items, summation and the three-way stress level classification.
package scoring

// NumQuestions is the number of items in the instrument.
const NumQuestions = 10

// Unanswered is the sentinel stored in an answer slot before the user
// has picked an option for that question.
const Unanswered = -1

// MaxScore is the highest total a fully answered vector can reach.
const MaxScore = 40

// reversedPositions holds the 1-based question numbers whose raw answer
// is inverted before summation. Fixed property of the instrument.
var reversedPositions = map[int]bool{4: true, 5: true, 7: true, 8: true}

// reverseTable maps a raw answer value to its reverse-scored value.
var reverseTable = [5]int{4, 3, 2, 1, 0}

// IsReversed reports whether the 1-based question number is reverse-scored.
func IsReversed(question int) bool {
	return reversedPositions[question]
}

// CalculateScore sums the contributions of a 10-slot answer vector.
// Unanswered slots contribute zero rather than failing, so a partial
// vector can be scored mid-test; callers presenting a final score must
// first ensure the vector is complete (see IsComplete).
func CalculateScore(answers []int) int {
	total := 0
	for i, v := range answers {
		if v == Unanswered {
			continue
		}
		if reversedPositions[i+1] {
			total += reverseTable[v]
		} else {
			total += v
		}
	}
	return total
}

// IsComplete reports whether every slot holds a valid answer in [0,4].
func IsComplete(answers []int) bool {
	if len(answers) != NumQuestions {
		return false
	}
	for _, v := range answers {
		if v < 0 || v > 4 {
			return false
		}
	}
	return true
}

// Level is the ordinal stress classification of a total score.
type Level string

const (
	LevelRendah Level = "Rendah"
	LevelSedang Level = "Sedang"
	LevelTinggi Level = "Tinggi"
)

// Classify maps a total score to its stress level. The boundaries are
// fixed constants of the instrument: 0-13 Rendah, 14-26 Sedang and
// everything above Tinggi. Out-of-range input never errors; negative
// scores fall into the first bucket and anything past 40 stays Tinggi.
func Classify(score int) Level {
	switch {
	case score <= 13:
		return LevelRendah
	case score <= 26:
		return LevelSedang
	default:
		return LevelTinggi
	}
}

// NewAnswerVector returns a fresh 10-slot vector with every position
// set to the Unanswered sentinel.
func NewAnswerVector() []int {
	answers := make([]int, NumQuestions)
	for i := range answers {
		answers[i] = Unanswered
	}
	return answers
}
