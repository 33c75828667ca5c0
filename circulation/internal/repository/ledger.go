package repository

import (
	"context"
	"time"

	"github.com/Astemirdum/library-circulation/circulation/internal/model"
	sq "github.com/Masterminds/squirrel"
)

func (r *repository) ActiveBorrows(ctx context.Context, readerID int64) ([]model.Borrow, error) {
	rows, err := query(ctx, r.db, borrowSelect().
		Where(sq.Eq{"br.reader_id": readerID, "br.returned": false}).
		OrderBy("br.borrowed_at DESC", "br.id DESC"))
	return collectAll[model.Borrow](rows, err)
}

func (r *repository) ReaderBorrows(ctx context.Context, readerID int64) ([]model.Borrow, error) {
	rows, err := query(ctx, r.db, borrowSelect().
		Where(sq.Eq{"br.reader_id": readerID}).
		OrderBy("br.borrowed_at DESC", "br.id DESC"))
	return collectAll[model.Borrow](rows, err)
}

func (r *repository) OverdueBorrows(ctx context.Context, now time.Time) ([]model.OverdueBorrow, error) {
	rows, err := query(ctx, r.db, qb.Select(append(borrowColumns, "u.username", "u.email")...).
		From(borrowsTableName+" br").
		Join(booksTableName+" b ON b.id = br.book_id").
		Join(readersTableName+" u ON u.id = br.reader_id").
		Where(sq.Eq{"br.returned": false}).
		Where(sq.Lt{"br.due_date": now}).
		OrderBy("br.due_date", "br.id"))
	return collectAll[model.OverdueBorrow](rows, err)
}
