package repository

import (
	"context"
	"time"

	"github.com/Astemirdum/library-circulation/circulation/internal/model"
	"github.com/pkg/errors"
)

func (r *repository) CountBooks(ctx context.Context) (total, available int64, err error) {
	const q = `select count(*), count(*) filter (where available) from books`
	err = r.db.QueryRow(ctx, q).Scan(&total, &available)
	return total, available, errors.Wrap(err, "count books")
}

func (r *repository) CountBorrows(ctx context.Context, now time.Time) (active, overdue, borrowers int64, err error) {
	const q = `
select count(*) filter (where not returned),
       count(*) filter (where not returned and due_date < $1),
       count(distinct reader_id)
from borrows`
	err = r.db.QueryRow(ctx, q, now).Scan(&active, &overdue, &borrowers)
	return active, overdue, borrowers, errors.Wrap(err, "count borrows")
}

func (r *repository) TopBooks(ctx context.Context, n int) ([]model.BookStat, error) {
	const q = `
select b.id as book_id, b.title, count(br.id) as borrows
from borrows br
         join books b on b.id = br.book_id
group by b.id, b.title
order by borrows desc, b.id
limit $1`
	return collectAll[model.BookStat](r.db.Query(ctx, q, n))
}

func (r *repository) TopReaders(ctx context.Context, n int) ([]model.ReaderStat, error) {
	const q = `
select u.id as reader_id, u.username, count(br.id) as borrows
from borrows br
         join readers u on u.id = br.reader_id
group by u.id, u.username
order by borrows desc, u.id
limit $1`
	return collectAll[model.ReaderStat](r.db.Query(ctx, q, n))
}
