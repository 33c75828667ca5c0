package repository

import (
	"context"
	"time"

	"github.com/Astemirdum/library-circulation/circulation/internal/errs"
	"github.com/Astemirdum/library-circulation/circulation/internal/model"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type txRepository struct {
	q   querier
	log *zap.Logger
}

func (t *txRepository) GetBookForUpdate(ctx context.Context, id int64) (model.Book, error) {
	rows, err := query(ctx, t.q, qb.Select(bookColumns...).
		From(booksTableName).
		Where(sq.Eq{"id": id}).
		Suffix("FOR UPDATE"))
	return collectOne[model.Book](rows, err)
}

func (t *txRepository) SetAvailability(ctx context.Context, id int64, available bool) error {
	n, err := exec(ctx, t.q, qb.Update(booksTableName).
		Set("available", available).
		Where(sq.Eq{"id": id}))
	if err != nil {
		return errors.Wrap(err, "set availability")
	}
	if n == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func (t *txRepository) InsertBorrow(ctx context.Context, b model.Borrow) (model.Borrow, error) {
	const q = `
insert into borrows (reader_id, book_id, borrowed_at, due_date, returned, fine_paid)
values (@reader_id, @book_id, @borrowed_at, @due_date, false, false)
returning id`
	err := t.q.QueryRow(ctx, q, pgx.NamedArgs{
		"reader_id":   b.ReaderID,
		"book_id":     b.BookID,
		"borrowed_at": b.BorrowedAt,
		"due_date":    b.DueDate,
	}).Scan(&b.ID)
	if err != nil {
		return model.Borrow{}, mapError(errors.Wrap(err, "insert borrow"))
	}
	b.Returned, b.ReturnedAt, b.FinePaid = false, nil, false
	return b, nil
}

func (t *txRepository) GetBorrowForUpdate(ctx context.Context, id int64) (model.Borrow, error) {
	rows, err := query(ctx, t.q, borrowSelect().
		Where(sq.Eq{"br.id": id}).
		Suffix("FOR UPDATE OF br"))
	return collectOne[model.Borrow](rows, err)
}

func (t *txRepository) MarkReturned(ctx context.Context, id int64, at time.Time) error {
	n, err := exec(ctx, t.q, qb.Update(borrowsTableName).
		Set("returned", true).
		Set("returned_at", at).
		Where(sq.Eq{"id": id, "returned": false}))
	if err != nil {
		return errors.Wrap(err, "mark returned")
	}
	if n == 0 {
		return errs.ErrAlreadyReturned
	}
	return nil
}

func (t *txRepository) MarkFinePaid(ctx context.Context, id int64) error {
	n, err := exec(ctx, t.q, qb.Update(borrowsTableName).
		Set("fine_paid", true).
		Where(sq.Eq{"id": id}))
	if err != nil {
		return errors.Wrap(err, "mark fine paid")
	}
	if n == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func (t *txRepository) AppendHistory(ctx context.Context, h model.BorrowHistory) error {
	_, err := exec(ctx, t.q, qb.Insert(historyTableName).
		Columns("book_id", "reader_id", "borrow_date", "return_date", "status").
		Values(h.BookID, h.ReaderID, h.BorrowDate, h.ReturnDate, h.Status))
	return errors.Wrap(err, "append history")
}

func (t *txRepository) CloseHistory(ctx context.Context, bookID, readerID int64, at time.Time) error {
	_, err := exec(ctx, t.q, qb.Update(historyTableName).
		Set("return_date", at).
		Set("status", model.HistoryReturned).
		Where(sq.Eq{"book_id": bookID, "reader_id": readerID, "status": model.HistoryBorrowed}))
	return errors.Wrap(err, "close history")
}

func (t *txRepository) GetBag(ctx context.Context, readerID int64) ([]int64, error) {
	return listBag(ctx, t.q, readerID)
}

func (t *txRepository) ClearBag(ctx context.Context, readerID int64) error {
	_, err := exec(ctx, t.q, qb.Delete(bagTableName).Where(sq.Eq{"reader_id": readerID}))
	return errors.Wrap(err, "clear bag")
}

func (t *txRepository) CreateReader(ctx context.Context, r model.Reader) (model.Reader, error) {
	const q = `
insert into readers (username, email, password_hash, role, created_at)
values (@username, @email, @password_hash, @role, @created_at)
returning id`
	err := t.q.QueryRow(ctx, q, pgx.NamedArgs{
		"username":      r.Username,
		"email":         r.Email,
		"password_hash": r.PasswordHash,
		"role":          r.Role,
		"created_at":    r.CreatedAt,
	}).Scan(&r.ID)
	if err != nil {
		return model.Reader{}, mapError(errors.Wrap(err, "create reader"))
	}
	return r, nil
}

func (t *txRepository) CreateProfile(ctx context.Context, p model.Profile) error {
	_, err := exec(ctx, t.q, qb.Insert(profilesTableName).
		Columns("reader_id", "full_name", "contact", "reference_id", "address").
		Values(p.ReaderID, p.FullName, p.Contact, p.ReferenceID, p.Address))
	return errors.Wrap(err, "create profile")
}
