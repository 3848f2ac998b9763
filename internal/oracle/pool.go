// Package oracle holds the fixed answer pool and draws from it.
package oracle

import (
	"errors"
	"math/rand"
	"slices"
)

var ErrEmptyPool = errors.New("oracle: empty answer pool")

// Pool draws answers uniformly with replacement.
type Pool struct {
	answers []string
	rng     *rand.Rand
}

// NewPool copies answers so later edits to the source slice do not leak in.
func NewPool(rng *rand.Rand, answers []string) (*Pool, error) {
	if len(answers) == 0 {
		return nil, ErrEmptyPool
	}
	return &Pool{answers: slices.Clone(answers), rng: rng}, nil
}

// Draw returns one answer; repeats across draws are allowed.
func (p *Pool) Draw() string {
	return p.answers[p.rng.Intn(len(p.answers))]
}

func (p *Pool) Len() int {
	return len(p.answers)
}

func (p *Pool) Contains(answer string) bool {
	return slices.Contains(p.answers, answer)
}
