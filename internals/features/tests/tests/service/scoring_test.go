package service

import (
	"testing"

	"learnify_backend/internals/features/tests/tests/dto"
)

func q(correct, selected string) dto.SubmittedQuestion {
	return dto.SubmittedQuestion{
		Question:       "q",
		Options:        []string{"A", "B", "C", "D"},
		CorrectAnswer:  correct,
		SelectedAnswer: selected,
	}
}

func TestScoreTest(t *testing.T) {
	cases := []struct {
		name      string
		questions []dto.SubmittedQuestion
		want      int
	}{
		{"all correct", []dto.SubmittedQuestion{q("A", "A"), q("B", "B")}, 2},
		{"all wrong", []dto.SubmittedQuestion{q("A", "B"), q("B", "C")}, 0},
		{"three of five", []dto.SubmittedQuestion{q("A", "A"), q("B", "B"), q("C", "C"), q("D", "A"), q("A", "")}, 3},
		{"unanswered scores zero even when correct is empty", []dto.SubmittedQuestion{{Question: "q", CorrectAnswer: "", SelectedAnswer: ""}}, 0},
		{"no questions", nil, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ScoreTest(tc.questions); got != tc.want {
				t.Errorf("ScoreTest() = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestPercentageScore(t *testing.T) {
	cases := []struct {
		score, total, want int
	}{
		{3, 5, 60},
		{5, 5, 100},
		{0, 5, 0},
		{2, 3, 66}, // integer division floors
		{1, 0, 0},  // degenerate total
	}

	for _, tc := range cases {
		if got := PercentageScore(tc.score, tc.total); got != tc.want {
			t.Errorf("PercentageScore(%d, %d) = %d, want %d", tc.score, tc.total, got, tc.want)
		}
	}
}
