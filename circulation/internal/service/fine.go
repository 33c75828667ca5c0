package service

import (
	"time"

	"github.com/Astemirdum/library-circulation/circulation/internal/model"
)

func IsOverdue(b model.Borrow, now time.Time) bool {
	return !b.Returned && b.DueDate != nil && now.After(*b.DueDate)
}

// FineAmount is FinePerDay for every full day past the due date of an unreturned borrow.
func FineAmount(b model.Borrow, now time.Time) int64 {
	if !IsOverdue(b, now) {
		return 0
	}
	days := int64(now.Sub(*b.DueDate) / (24 * time.Hour))
	return FinePerDay * days
}

func withDerived(b model.Borrow, now time.Time) model.Borrow {
	b.Overdue = IsOverdue(b, now)
	b.FineAmount = FineAmount(b, now)
	return b
}

func withDerivedAll(borrows []model.Borrow, now time.Time) []model.Borrow {
	out := make([]model.Borrow, 0, len(borrows))
	for _, b := range borrows {
		out = append(out, withDerived(b, now))
	}
	return out
}
