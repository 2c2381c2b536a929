// Package combo holds the pure scoring math over five dice values.
package combo

import (
	"yambo_backend/internal/model"
)

// Fixed scores for the lower-section combination rows.
const (
	FullHouseScore = 20
	StraightScore  = 30
	YamboScore     = 40
)

// Counts returns the number of occurrences of each face 1..6.
// The six entries always sum to 5.
func Counts(values [5]int) [6]int {
	var counts [6]int
	for _, v := range values {
		counts[v-1]++
	}
	return counts
}

// Total is the sum of all five dice.
func Total(values [5]int) int {
	sum := 0
	for _, v := range values {
		sum += v
	}
	return sum
}

// UpperScore scores an upper-section row: count of the face times the face.
func UpperScore(values [5]int, face int) int {
	return Counts(values)[face-1] * face
}

// IsThreeOfAKind reports whether any face occurs exactly three times.
func IsThreeOfAKind(values [5]int) bool {
	return hasCount(Counts(values), 3)
}

// IsFourOfAKind reports whether any face occurs exactly four times.
func IsFourOfAKind(values [5]int) bool {
	return hasCount(Counts(values), 4)
}

// IsFullHouse reports a three-plus-two split. Five of a kind counts as a
// full house as well.
func IsFullHouse(values [5]int) bool {
	counts := Counts(values)
	if hasCount(counts, 5) {
		return true
	}
	return hasCount(counts, 3) && hasCount(counts, 2)
}

// IsStraight reports five faces in a row: 2,3,4,5 all present plus
// either a 1 or a 6.
func IsStraight(values [5]int) bool {
	counts := Counts(values)
	for face := 2; face <= 5; face++ {
		if counts[face-1] == 0 {
			return false
		}
	}
	return counts[0] >= 1 || counts[5] >= 1
}

// IsYambo reports five of a kind.
func IsYambo(values [5]int) bool {
	return hasCount(Counts(values), 5)
}

// Detect flags every named combination the dice currently form.
func Detect(values [5]int) model.Combinations {
	return model.Combinations{
		ThreeOfAKind: IsThreeOfAKind(values),
		FourOfAKind:  IsFourOfAKind(values),
		FullHouse:    IsFullHouse(values),
		Straight:     IsStraight(values),
		Yambo:        IsYambo(values),
	}
}

// CandidateScores computes the would-be score of every row for the given
// dice. Chance rows both carry the plain total; their ordering rule is
// checked only when a value is committed.
func CandidateScores(values [5]int) map[model.RowID]int {
	scores := map[model.RowID]int{
		model.RowOnes:   UpperScore(values, 1),
		model.RowTwos:   UpperScore(values, 2),
		model.RowThrees: UpperScore(values, 3),
		model.RowFours:  UpperScore(values, 4),
		model.RowFives:  UpperScore(values, 5),
		model.RowSixes:  UpperScore(values, 6),

		model.RowFullHouse:   0,
		model.RowStraight:    0,
		model.RowChancePlus:  Total(values),
		model.RowChanceMinus: Total(values),
		model.RowYambo:       0,
	}
	if IsFullHouse(values) {
		scores[model.RowFullHouse] = FullHouseScore
	}
	if IsStraight(values) {
		scores[model.RowStraight] = StraightScore
	}
	if IsYambo(values) {
		scores[model.RowYambo] = YamboScore
	}
	return scores
}

func hasCount(counts [6]int, n int) bool {
	for _, c := range counts {
		if c == n {
			return true
		}
	}
	return false
}
