package model

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sandeepkv93/habitd/internal/datekey"
)

var ErrInvalidTarget = errors.New("model: invalid weekly target")

const (
	MinTargetPerWeek = 1
	MaxTargetPerWeek = 7
)

type Habit struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	TargetPerWeek int    `json:"targetPerWeek"`
	Active        bool   `json:"active"`
	CreatedAt     string `json:"createdAt"`
	Notes         string `json:"notes"`
}

// NewHabit builds an active habit with a fresh id, created on the day of now.
// The weekly target is clamped to the valid range.
func NewHabit(name string, targetPerWeek int, now time.Time) Habit {
	return Habit{
		ID:            uuid.NewString(),
		Name:          strings.TrimSpace(name),
		TargetPerWeek: ClampTarget(targetPerWeek),
		Active:        true,
		CreatedAt:     datekey.Format(now),
	}
}

// ClampTarget forces a weekly target into [1,7].
func ClampTarget(n int) int {
	if n < MinTargetPerWeek {
		return MinTargetPerWeek
	}
	if n > MaxTargetPerWeek {
		return MaxTargetPerWeek
	}
	return n
}

// SetTargetPerWeek writes the target through the clamp. All mutation paths
// go through here so a stored habit never violates the range.
func (h *Habit) SetTargetPerWeek(n int) {
	h.TargetPerWeek = ClampTarget(n)
}

func (h Habit) Validate() error {
	if strings.TrimSpace(h.ID) == "" {
		return errors.New("model: habit id is required")
	}
	if strings.TrimSpace(h.Name) == "" {
		return errors.New("model: habit name is required")
	}
	if h.TargetPerWeek < MinTargetPerWeek || h.TargetPerWeek > MaxTargetPerWeek {
		return fmt.Errorf("%w: %d", ErrInvalidTarget, h.TargetPerWeek)
	}
	if h.CreatedAt != "" {
		if _, err := datekey.Parse(h.CreatedAt); err != nil {
			return fmt.Errorf("model: habit created_at: %w", err)
		}
	}
	return nil
}
