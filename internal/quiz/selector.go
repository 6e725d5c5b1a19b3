// Package quiz picks the next question of a quiz round.
package quiz

import (
	"math/rand/v2"

	"github.com/zizouhuweidi/trivia/internal/domain"
)

// Eligible returns the candidates whose IDs are not in excluded, keeping their order.
func Eligible(candidates []domain.Question, excluded []int64) []domain.Question {
	seen := make(map[int64]struct{}, len(excluded))
	for _, id := range excluded {
		seen[id] = struct{}{}
	}

	eligible := make([]domain.Question, 0, len(candidates))
	for _, q := range candidates {
		if _, ok := seen[q.ID]; !ok {
			eligible = append(eligible, q)
		}
	}
	return eligible
}

// NextQuestion draws uniformly at random from the candidates not yet seen.
// It returns nil when no candidate is left.
func NextQuestion(candidates []domain.Question, excluded []int64) *domain.Question {
	eligible := Eligible(candidates, excluded)
	if len(eligible) == 0 {
		return nil
	}
	q := eligible[rand.IntN(len(eligible))]
	return &q
}
