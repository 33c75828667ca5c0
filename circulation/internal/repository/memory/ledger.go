package memory

import (
	"context"
	"sort"
	"time"

	"github.com/Astemirdum/library-circulation/circulation/internal/errs"
	"github.com/Astemirdum/library-circulation/circulation/internal/model"
)

func (m *Store) borrowsWhere(pred func(model.Borrow) bool) []model.Borrow {
	var out []model.Borrow
	for _, b := range m.st.borrows {
		if pred(b) {
			b.BookTitle = m.st.books[b.BookID].Title
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].BorrowedAt.Equal(out[j].BorrowedAt) {
			return out[i].BorrowedAt.After(out[j].BorrowedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out
}

func (m *Store) ActiveBorrows(_ context.Context, readerID int64) ([]model.Borrow, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.borrowsWhere(func(b model.Borrow) bool {
		return b.ReaderID == readerID && !b.Returned
	}), nil
}

func (m *Store) ReaderBorrows(_ context.Context, readerID int64) ([]model.Borrow, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.borrowsWhere(func(b model.Borrow) bool {
		return b.ReaderID == readerID
	}), nil
}

func (m *Store) OverdueBorrows(_ context.Context, now time.Time) ([]model.OverdueBorrow, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	borrows := m.borrowsWhere(func(b model.Borrow) bool {
		return !b.Returned && b.DueDate != nil && b.DueDate.Before(now)
	})
	sort.Slice(borrows, func(i, j int) bool {
		if !borrows[i].DueDate.Equal(*borrows[j].DueDate) {
			return borrows[i].DueDate.Before(*borrows[j].DueDate)
		}
		return borrows[i].ID < borrows[j].ID
	})
	out := make([]model.OverdueBorrow, 0, len(borrows))
	for _, b := range borrows {
		r := m.st.readers[b.ReaderID]
		out = append(out, model.OverdueBorrow{Borrow: b, Username: r.Username, Email: r.Email})
	}
	return out, nil
}

func (m *Store) GetReader(_ context.Context, id int64) (model.Reader, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	r, ok := m.st.readers[id]
	if !ok {
		return model.Reader{}, errs.ErrNotFound
	}
	return r, nil
}

func (m *Store) GetReaderByUsername(_ context.Context, username string) (model.Reader, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, r := range m.st.readers {
		if r.Username == username {
			return r, nil
		}
	}
	return model.Reader{}, errs.ErrNotFound
}

func (m *Store) ListReaders(_ context.Context) ([]model.ReaderWithProfile, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]model.ReaderWithProfile, 0, len(m.st.readers))
	for id, r := range m.st.readers {
		p := m.st.profiles[id]
		p.ReaderID = id
		out = append(out, model.ReaderWithProfile{Reader: r, Profile: p})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *Store) GetProfile(_ context.Context, readerID int64) (model.Profile, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.st.profiles[readerID]
	if !ok {
		return model.Profile{}, errs.ErrNotFound
	}
	return p, nil
}

func (m *Store) UpdateProfile(_ context.Context, p model.Profile) (model.Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.st.profiles[p.ReaderID]; !ok {
		return model.Profile{}, errs.ErrNotFound
	}
	m.st.profiles[p.ReaderID] = p
	return p, nil
}

func (m *Store) CountBooks(_ context.Context) (total, available int64, err error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, b := range m.st.books {
		total++
		if b.Available {
			available++
		}
	}
	return total, available, nil
}

func (m *Store) CountBorrows(_ context.Context, now time.Time) (active, overdue, borrowers int64, err error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	seen := make(map[int64]struct{})
	for _, b := range m.st.borrows {
		seen[b.ReaderID] = struct{}{}
		if b.Returned {
			continue
		}
		active++
		if b.DueDate != nil && b.DueDate.Before(now) {
			overdue++
		}
	}
	return active, overdue, int64(len(seen)), nil
}

func (m *Store) TopBooks(_ context.Context, n int) ([]model.BookStat, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	counts := make(map[int64]int64)
	for _, b := range m.st.borrows {
		counts[b.BookID]++
	}
	stats := make([]model.BookStat, 0, len(counts))
	for id, c := range counts {
		stats = append(stats, model.BookStat{BookID: id, Title: m.st.books[id].Title, Borrows: c})
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Borrows != stats[j].Borrows {
			return stats[i].Borrows > stats[j].Borrows
		}
		return stats[i].BookID < stats[j].BookID
	})
	return stats[:min(n, len(stats))], nil
}

func (m *Store) TopReaders(_ context.Context, n int) ([]model.ReaderStat, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	counts := make(map[int64]int64)
	for _, b := range m.st.borrows {
		counts[b.ReaderID]++
	}
	stats := make([]model.ReaderStat, 0, len(counts))
	for id, c := range counts {
		stats = append(stats, model.ReaderStat{ReaderID: id, Username: m.st.readers[id].Username, Borrows: c})
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Borrows != stats[j].Borrows {
			return stats[i].Borrows > stats[j].Borrows
		}
		return stats[i].ReaderID < stats[j].ReaderID
	})
	return stats[:min(n, len(stats))], nil
}
