// Package memory is an in-process Repository used by tests and STORAGE=memory runs.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/Astemirdum/library-circulation/circulation/internal/errs"
	"github.com/Astemirdum/library-circulation/circulation/internal/model"
	"github.com/Astemirdum/library-circulation/circulation/internal/repository"
)

type state struct {
	books    map[int64]model.Book
	borrows  map[int64]model.Borrow
	history  []model.BorrowHistory
	bags     map[int64][]int64
	readers  map[int64]model.Reader
	profiles map[int64]model.Profile

	bookSeq, borrowSeq, historySeq, readerSeq int64
}

func newState() *state {
	return &state{
		books:    make(map[int64]model.Book),
		borrows:  make(map[int64]model.Borrow),
		bags:     make(map[int64][]int64),
		readers:  make(map[int64]model.Reader),
		profiles: make(map[int64]model.Profile),
	}
}

func (s *state) clone() *state {
	c := &state{
		books:      make(map[int64]model.Book, len(s.books)),
		borrows:    make(map[int64]model.Borrow, len(s.borrows)),
		history:    append([]model.BorrowHistory(nil), s.history...),
		bags:       make(map[int64][]int64, len(s.bags)),
		readers:    make(map[int64]model.Reader, len(s.readers)),
		profiles:   make(map[int64]model.Profile, len(s.profiles)),
		bookSeq:    s.bookSeq,
		borrowSeq:  s.borrowSeq,
		historySeq: s.historySeq,
		readerSeq:  s.readerSeq,
	}
	for k, v := range s.books {
		c.books[k] = v
	}
	for k, v := range s.borrows {
		c.borrows[k] = v
	}
	for k, v := range s.bags {
		c.bags[k] = append([]int64(nil), v...)
	}
	for k, v := range s.readers {
		c.readers[k] = v
	}
	for k, v := range s.profiles {
		c.profiles[k] = v
	}
	return c
}

// Store serializes transactions with a single mutex; a transaction works on a copy
// that replaces the committed state only when fn succeeds.
type Store struct {
	mu sync.RWMutex
	st *state
}

var _ repository.Repository = (*Store)(nil)

func NewStore() *Store {
	return &Store{st: newState()}
}

func (m *Store) InTx(ctx context.Context, fn func(ctx context.Context, tx repository.Tx) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return err
	}
	work := m.st.clone()
	if err := fn(ctx, &tx{st: work}); err != nil {
		return err
	}
	m.st = work
	return nil
}

func timePtr(t time.Time) *time.Time {
	return &t
}

type tx struct {
	st *state
}

var _ repository.Tx = (*tx)(nil)

func (t *tx) GetBookForUpdate(_ context.Context, id int64) (model.Book, error) {
	b, ok := t.st.books[id]
	if !ok {
		return model.Book{}, errs.ErrNotFound
	}
	return b, nil
}

func (t *tx) SetAvailability(_ context.Context, id int64, available bool) error {
	b, ok := t.st.books[id]
	if !ok {
		return errs.ErrNotFound
	}
	b.Available = available
	t.st.books[id] = b
	return nil
}

func (t *tx) InsertBorrow(_ context.Context, b model.Borrow) (model.Borrow, error) {
	if _, ok := t.st.books[b.BookID]; !ok {
		return model.Borrow{}, errs.ErrNotFound
	}
	if _, ok := t.st.readers[b.ReaderID]; !ok {
		return model.Borrow{}, errs.ErrNotFound
	}
	for _, other := range t.st.borrows {
		if other.BookID == b.BookID && !other.Returned {
			return model.Borrow{}, errs.ErrUnavailable
		}
	}
	t.st.borrowSeq++
	b.ID = t.st.borrowSeq
	b.Returned, b.ReturnedAt, b.FinePaid = false, nil, false
	b.Overdue, b.FineAmount = false, 0
	t.st.borrows[b.ID] = b
	return b, nil
}

func (t *tx) GetBorrowForUpdate(_ context.Context, id int64) (model.Borrow, error) {
	b, ok := t.st.borrows[id]
	if !ok {
		return model.Borrow{}, errs.ErrNotFound
	}
	b.BookTitle = t.st.books[b.BookID].Title
	return b, nil
}

func (t *tx) MarkReturned(_ context.Context, id int64, at time.Time) error {
	b, ok := t.st.borrows[id]
	if !ok {
		return errs.ErrNotFound
	}
	if b.Returned {
		return errs.ErrAlreadyReturned
	}
	b.Returned = true
	b.ReturnedAt = timePtr(at)
	t.st.borrows[id] = b
	return nil
}

func (t *tx) MarkFinePaid(_ context.Context, id int64) error {
	b, ok := t.st.borrows[id]
	if !ok {
		return errs.ErrNotFound
	}
	b.FinePaid = true
	t.st.borrows[id] = b
	return nil
}

func (t *tx) AppendHistory(_ context.Context, h model.BorrowHistory) error {
	t.st.historySeq++
	h.ID = t.st.historySeq
	t.st.history = append(t.st.history, h)
	return nil
}

func (t *tx) CloseHistory(_ context.Context, bookID, readerID int64, at time.Time) error {
	for i, h := range t.st.history {
		if h.BookID == bookID && h.ReaderID == readerID && h.Status == model.HistoryBorrowed {
			h.Status = model.HistoryReturned
			h.ReturnDate = timePtr(at)
			t.st.history[i] = h
		}
	}
	return nil
}

func (t *tx) GetBag(_ context.Context, readerID int64) ([]int64, error) {
	ids := append([]int64(nil), t.st.bags[readerID]...)
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

func (t *tx) ClearBag(_ context.Context, readerID int64) error {
	delete(t.st.bags, readerID)
	return nil
}

func (t *tx) CreateReader(_ context.Context, r model.Reader) (model.Reader, error) {
	for _, other := range t.st.readers {
		if other.Username == r.Username {
			return model.Reader{}, errs.ErrUsernameTaken
		}
	}
	t.st.readerSeq++
	r.ID = t.st.readerSeq
	t.st.readers[r.ID] = r
	return r, nil
}

func (t *tx) CreateProfile(_ context.Context, p model.Profile) error {
	if _, ok := t.st.readers[p.ReaderID]; !ok {
		return errs.ErrNotFound
	}
	t.st.profiles[p.ReaderID] = p
	return nil
}

func (m *Store) CreateBook(_ context.Context, in model.BookInput) (model.Book, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.st.bookSeq++
	b := model.Book{
		ID:          m.st.bookSeq,
		Title:       in.Title,
		Author:      in.Author,
		Description: in.Description,
		Genre:       in.Genre,
		Available:   true,
	}
	m.st.books[b.ID] = b
	return b, nil
}

func (m *Store) UpdateBook(_ context.Context, id int64, in model.BookInput) (model.Book, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.st.books[id]
	if !ok {
		return model.Book{}, errs.ErrNotFound
	}
	b.Title, b.Author, b.Description, b.Genre = in.Title, in.Author, in.Description, in.Genre
	m.st.books[id] = b
	return b, nil
}

func (m *Store) DeleteBook(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.st.books[id]
	if !ok {
		return errs.ErrNotFound
	}
	if !b.Available {
		return errs.ErrUnavailable
	}
	delete(m.st.books, id)
	for bid, br := range m.st.borrows {
		if br.BookID == id {
			delete(m.st.borrows, bid)
		}
	}
	history := m.st.history[:0]
	for _, h := range m.st.history {
		if h.BookID != id {
			history = append(history, h)
		}
	}
	m.st.history = history
	for reader, ids := range m.st.bags {
		m.st.bags[reader] = without(ids, id)
	}
	return nil
}

func (m *Store) GetBook(_ context.Context, id int64) (model.Book, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	b, ok := m.st.books[id]
	if !ok {
		return model.Book{}, errs.ErrNotFound
	}
	return b, nil
}

func (m *Store) ListBooks(_ context.Context, f model.BookFilter) (model.ListBooks, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	q := strings.ToLower(f.Query)
	books := make([]model.Book, 0)
	for _, b := range m.st.books {
		if q != "" && !strings.Contains(strings.ToLower(b.Title), q) && !strings.Contains(strings.ToLower(b.Author), q) {
			continue
		}
		if f.Genre != "" && b.Genre != f.Genre {
			continue
		}
		if f.Available != nil && b.Available != *f.Available {
			continue
		}
		books = append(books, b)
	}
	sort.Slice(books, func(i, j int) bool { return books[i].ID < books[j].ID })
	total := len(books)
	if f.Page != 0 && f.Size != 0 {
		from := min((f.Page-1)*f.Size, total)
		books = books[from:min(from+f.Size, total)]
	}
	return model.ListBooks{
		Paging: model.Paging{Page: f.Page, PageSize: f.Size, TotalElements: total},
		Items:  books,
	}, nil
}

func (m *Store) BookHistory(_ context.Context, bookID int64) ([]model.BorrowHistory, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []model.BorrowHistory
	for _, h := range m.st.history {
		if h.BookID == bookID {
			out = append(out, h)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].BorrowDate.Equal(out[j].BorrowDate) {
			return out[i].BorrowDate.After(out[j].BorrowDate)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (m *Store) AddToBag(_ context.Context, readerID, bookID int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.st.readers[readerID]; !ok {
		return false, errs.ErrNotFound
	}
	if _, ok := m.st.books[bookID]; !ok {
		return false, errs.ErrNotFound
	}
	for _, id := range m.st.bags[readerID] {
		if id == bookID {
			return false, nil
		}
	}
	m.st.bags[readerID] = append(m.st.bags[readerID], bookID)
	return true, nil
}

func (m *Store) RemoveFromBag(_ context.Context, readerID, bookID int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	ids := m.st.bags[readerID]
	rest := without(ids, bookID)
	m.st.bags[readerID] = rest
	return len(rest) != len(ids), nil
}

func (m *Store) ListBag(ctx context.Context, readerID int64) ([]int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return (&tx{st: m.st}).GetBag(ctx, readerID)
}

func without(ids []int64, id int64) []int64 {
	out := make([]int64, 0, len(ids))
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
