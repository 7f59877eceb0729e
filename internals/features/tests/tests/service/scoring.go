// internals/features/tests/tests/service/scoring.go
package service

import "learnify_backend/internals/features/tests/tests/dto"

// ScoreTest tallies the positions where the selected answer equals the
// correct one. No partial credit; a missing selection is simply a non-match.
func ScoreTest(questions []dto.SubmittedQuestion) int {
	score := 0
	for _, q := range questions {
		if q.SelectedAnswer != "" && q.SelectedAnswer == q.CorrectAnswer {
			score++
		}
	}
	return score
}

// PercentageScore derives the persisted percentage once at save time.
// Integer division floors, so 2/3 correct stores 66.
func PercentageScore(score, total int) int {
	if total <= 0 {
		return 0
	}
	return score * 100 / total
}
