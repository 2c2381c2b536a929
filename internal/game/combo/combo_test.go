package combo

import (
	"math/rand"
	"testing"

	"yambo_backend/internal/model"
)

// TestCountsSumToFive checks the count invariant over random rolls.
func TestCountsSumToFive(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 1000; i++ {
		var values [5]int
		for j := range values {
			values[j] = rng.Intn(6) + 1
		}
		counts := Counts(values)
		sum := 0
		for _, c := range counts {
			sum += c
		}
		if sum != 5 {
			t.Fatalf("Counts(%v) sums to %d, want 5", values, sum)
		}
	}
}

func TestUpperScore(t *testing.T) {
	values := [5]int{2, 2, 2, 3, 4}
	for _, tt := range []struct {
		face int
		want int
	}{
		{1, 0},
		{2, 6},
		{3, 3},
		{4, 4},
		{5, 0},
	} {
		if got := UpperScore(values, tt.face); got != tt.want {
			t.Fatalf("UpperScore(%v, %d) = %d, want %d", values, tt.face, got, tt.want)
		}
	}
}

func TestIsFullHouse(t *testing.T) {
	for _, tt := range []struct {
		values [5]int
		want   bool
	}{
		{[5]int{1, 1, 1, 2, 2}, true},
		{[5]int{1, 1, 1, 1, 1}, true}, // five of a kind counts
		{[5]int{1, 1, 2, 2, 3}, false},
		{[5]int{4, 4, 4, 4, 2}, false},
	} {
		if got := IsFullHouse(tt.values); got != tt.want {
			t.Fatalf("IsFullHouse(%v) = %v, want %v", tt.values, got, tt.want)
		}
	}
}

func TestIsStraight(t *testing.T) {
	for _, tt := range []struct {
		values [5]int
		want   bool
	}{
		{[5]int{2, 3, 4, 5, 1}, true},
		{[5]int{2, 3, 4, 5, 6}, true},
		{[5]int{5, 4, 3, 2, 6}, true}, // order does not matter
		{[5]int{1, 1, 2, 3, 4}, false},
		{[5]int{1, 3, 4, 5, 6}, false}, // missing 2
	} {
		if got := IsStraight(tt.values); got != tt.want {
			t.Fatalf("IsStraight(%v) = %v, want %v", tt.values, got, tt.want)
		}
	}
}

func TestIsYambo(t *testing.T) {
	if !IsYambo([5]int{4, 4, 4, 4, 4}) {
		t.Fatal("IsYambo(4,4,4,4,4) = false, want true")
	}
	if IsYambo([5]int{4, 4, 4, 4, 5}) {
		t.Fatal("IsYambo(4,4,4,4,5) = true, want false")
	}
}

func TestThreeAndFourOfAKind(t *testing.T) {
	if !IsThreeOfAKind([5]int{6, 6, 6, 1, 2}) {
		t.Fatal("IsThreeOfAKind(6,6,6,1,2) = false, want true")
	}
	if IsThreeOfAKind([5]int{6, 6, 6, 6, 2}) {
		t.Fatal("IsThreeOfAKind on four of a kind = true, want false")
	}
	if !IsFourOfAKind([5]int{6, 6, 6, 6, 2}) {
		t.Fatal("IsFourOfAKind(6,6,6,6,2) = false, want true")
	}
}

func TestCandidateScores(t *testing.T) {
	values := [5]int{1, 1, 1, 2, 2} // full house, total 7
	scores := CandidateScores(values)

	for _, tt := range []struct {
		row  model.RowID
		want int
	}{
		{model.RowOnes, 3},
		{model.RowTwos, 4},
		{model.RowThrees, 0},
		{model.RowFullHouse, FullHouseScore},
		{model.RowStraight, 0},
		{model.RowChancePlus, 7},
		{model.RowChanceMinus, 7},
		{model.RowYambo, 0},
	} {
		if got := scores[tt.row]; got != tt.want {
			t.Fatalf("CandidateScores(%v)[%s] = %d, want %d", values, tt.row, got, tt.want)
		}
	}
	if len(scores) != 11 {
		t.Fatalf("expected a candidate for all 11 rows, got %d", len(scores))
	}
}

func TestCandidateScoresYambo(t *testing.T) {
	scores := CandidateScores([5]int{6, 6, 6, 6, 6})
	if scores[model.RowYambo] != YamboScore {
		t.Fatalf("yambo candidate = %d, want %d", scores[model.RowYambo], YamboScore)
	}
	if scores[model.RowFullHouse] != FullHouseScore {
		t.Fatalf("full house candidate = %d, want %d", scores[model.RowFullHouse], FullHouseScore)
	}
	if scores[model.RowSixes] != 30 {
		t.Fatalf("sixes candidate = %d, want 30", scores[model.RowSixes])
	}
}
