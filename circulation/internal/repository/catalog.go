package repository

import (
	"context"

	"github.com/Astemirdum/library-circulation/circulation/internal/errs"
	"github.com/Astemirdum/library-circulation/circulation/internal/model"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

func (r *repository) CreateBook(ctx context.Context, in model.BookInput) (model.Book, error) {
	rows, err := query(ctx, r.db, qb.Insert(booksTableName).
		Columns("title", "author", "description", "genre", "available").
		Values(in.Title, in.Author, in.Description, in.Genre, true).
		Suffix("RETURNING id, title, author, description, genre, available"))
	book, err := collectOne[model.Book](rows, err)
	return book, errors.Wrap(err, "create book")
}

// UpdateBook changes descriptive fields only; availability belongs to the workflow engine.
func (r *repository) UpdateBook(ctx context.Context, id int64, in model.BookInput) (model.Book, error) {
	rows, err := query(ctx, r.db, qb.Update(booksTableName).
		Set("title", in.Title).
		Set("author", in.Author).
		Set("description", in.Description).
		Set("genre", in.Genre).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING id, title, author, description, genre, available"))
	return collectOne[model.Book](rows, err)
}

func (r *repository) DeleteBook(ctx context.Context, id int64) error {
	n, err := exec(ctx, r.db, qb.Delete(booksTableName).Where(sq.Eq{"id": id, "available": true}))
	if err != nil {
		return errors.Wrap(err, "delete book")
	}
	if n > 0 {
		return nil
	}
	if _, err = r.GetBook(ctx, id); err != nil {
		return err
	}
	return errs.ErrUnavailable
}

func (r *repository) GetBook(ctx context.Context, id int64) (model.Book, error) {
	rows, err := query(ctx, r.db, qb.Select(bookColumns...).
		From(booksTableName).
		Where(sq.Eq{"id": id}))
	return collectOne[model.Book](rows, err)
}

func (r *repository) ListBooks(ctx context.Context, f model.BookFilter) (model.ListBooks, error) {
	where := sq.And{}
	if f.Query != "" {
		pattern := "%" + f.Query + "%"
		where = append(where, sq.Or{sq.ILike{"title": pattern}, sq.ILike{"author": pattern}})
	}
	if f.Genre != "" {
		where = append(where, sq.Eq{"genre": f.Genre})
	}
	if f.Available != nil {
		where = append(where, sq.Eq{"available": *f.Available})
	}

	countSQL, countArgs, err := qb.Select("count(*)").From(booksTableName).Where(where).ToSql()
	if err != nil {
		return model.ListBooks{}, err
	}
	var total int
	if err = r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return model.ListBooks{}, errors.Wrap(err, "count books")
	}

	q := qb.Select(bookColumns...).
		From(booksTableName).
		Where(where).
		OrderBy("id")
	if f.Page != 0 && f.Size != 0 {
		q = q.Limit(uint64(f.Size)).Offset(uint64((f.Page - 1) * f.Size))
	}
	r.log.Debug("ListBooks", zap.Any("filter", f))

	books, err := collectAll[model.Book](query(ctx, r.db, q))
	if err != nil {
		return model.ListBooks{}, errors.Wrap(err, "list books")
	}
	return model.ListBooks{
		Paging: model.Paging{
			Page:          f.Page,
			PageSize:      f.Size,
			TotalElements: total,
		},
		Items: books,
	}, nil
}

func (r *repository) BookHistory(ctx context.Context, bookID int64) ([]model.BorrowHistory, error) {
	rows, err := query(ctx, r.db, qb.Select(historyColumns...).
		From(historyTableName).
		Where(sq.Eq{"book_id": bookID}).
		OrderBy("borrow_date DESC", "id DESC"))
	return collectAll[model.BorrowHistory](rows, err)
}

func listBag(ctx context.Context, q querier, readerID int64) ([]int64, error) {
	rows, err := query(ctx, q, qb.Select("book_id").
		From(bagTableName).
		Where(sq.Eq{"reader_id": readerID}).
		OrderBy("book_id"))
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowTo[int64])
}

func (r *repository) AddToBag(ctx context.Context, readerID, bookID int64) (bool, error) {
	n, err := exec(ctx, r.db, qb.Insert(bagTableName).
		Columns("reader_id", "book_id").
		Values(readerID, bookID).
		Suffix("ON CONFLICT DO NOTHING"))
	if err != nil {
		return false, errors.Wrap(err, "add to bag")
	}
	return n > 0, nil
}

func (r *repository) RemoveFromBag(ctx context.Context, readerID, bookID int64) (bool, error) {
	n, err := exec(ctx, r.db, qb.Delete(bagTableName).Where(sq.Eq{"reader_id": readerID, "book_id": bookID}))
	if err != nil {
		return false, errors.Wrap(err, "remove from bag")
	}
	return n > 0, nil
}

func (r *repository) ListBag(ctx context.Context, readerID int64) ([]int64, error) {
	return listBag(ctx, r.db, readerID)
}
