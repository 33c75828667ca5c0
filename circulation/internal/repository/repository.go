package repository

import (
	"context"
	"time"

	"github.com/Astemirdum/library-circulation/circulation/internal/errs"
	"github.com/Astemirdum/library-circulation/circulation/internal/model"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Tx is the transaction-scoped view the workflow engine mutates state through.
type Tx interface {
	GetBookForUpdate(ctx context.Context, id int64) (model.Book, error)
	SetAvailability(ctx context.Context, id int64, available bool) error

	InsertBorrow(ctx context.Context, b model.Borrow) (model.Borrow, error)
	GetBorrowForUpdate(ctx context.Context, id int64) (model.Borrow, error)
	MarkReturned(ctx context.Context, id int64, at time.Time) error
	MarkFinePaid(ctx context.Context, id int64) error
	AppendHistory(ctx context.Context, h model.BorrowHistory) error
	CloseHistory(ctx context.Context, bookID, readerID int64, at time.Time) error

	GetBag(ctx context.Context, readerID int64) ([]int64, error)
	ClearBag(ctx context.Context, readerID int64) error

	CreateReader(ctx context.Context, r model.Reader) (model.Reader, error)
	CreateProfile(ctx context.Context, p model.Profile) error
}

type Repository interface {
	// InTx runs fn in one serializable transaction. Serialization failures surface as errs.ErrConflict.
	InTx(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error

	CreateBook(ctx context.Context, in model.BookInput) (model.Book, error)
	UpdateBook(ctx context.Context, id int64, in model.BookInput) (model.Book, error)
	DeleteBook(ctx context.Context, id int64) error
	GetBook(ctx context.Context, id int64) (model.Book, error)
	ListBooks(ctx context.Context, f model.BookFilter) (model.ListBooks, error)
	BookHistory(ctx context.Context, bookID int64) ([]model.BorrowHistory, error)

	AddToBag(ctx context.Context, readerID, bookID int64) (bool, error)
	RemoveFromBag(ctx context.Context, readerID, bookID int64) (bool, error)
	ListBag(ctx context.Context, readerID int64) ([]int64, error)

	ActiveBorrows(ctx context.Context, readerID int64) ([]model.Borrow, error)
	ReaderBorrows(ctx context.Context, readerID int64) ([]model.Borrow, error)
	OverdueBorrows(ctx context.Context, now time.Time) ([]model.OverdueBorrow, error)

	GetReader(ctx context.Context, id int64) (model.Reader, error)
	GetReaderByUsername(ctx context.Context, username string) (model.Reader, error)
	ListReaders(ctx context.Context) ([]model.ReaderWithProfile, error)
	GetProfile(ctx context.Context, readerID int64) (model.Profile, error)
	UpdateProfile(ctx context.Context, p model.Profile) (model.Profile, error)

	CountBooks(ctx context.Context) (total, available int64, err error)
	CountBorrows(ctx context.Context, now time.Time) (active, overdue, borrowers int64, err error)
	TopBooks(ctx context.Context, n int) ([]model.BookStat, error)
	TopReaders(ctx context.Context, n int) ([]model.ReaderStat, error)
}

type repository struct {
	db  *pgxpool.Pool
	log *zap.Logger
}

func NewRepository(db *pgxpool.Pool, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

const (
	booksTableName    = `books`
	borrowsTableName  = `borrows`
	historyTableName  = `borrow_history`
	bagTableName      = `bag_items`
	readersTableName  = `readers`
	profilesTableName = `reader_profiles`

	activeBorrowIndex = `borrows_active_book_uidx`
	usernameIndex     = `readers_username_key`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var (
	bookColumns   = []string{"id", "title", "author", "description", "genre", "available"}
	borrowColumns = []string{
		"br.id", "br.reader_id", "br.book_id", "b.title AS book_title", "br.borrowed_at",
		"br.due_date", "br.returned", "br.returned_at", "br.fine_paid",
	}
	historyColumns = []string{"id", "book_id", "reader_id", "borrow_date", "return_date", "status"}
)

type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

func (r *repository) InTx(ctx context.Context, fn func(ctx context.Context, tx Tx) error) (err error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return errors.Wrap(err, "begin tx")
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
				r.log.Warn("rollback", zap.Error(rbErr))
			}
		}
	}()

	if err = fn(ctx, &txRepository{q: tx, log: r.log}); err != nil {
		return mapError(err)
	}
	if err = tx.Commit(ctx); err != nil {
		return mapError(errors.Wrap(err, "commit"))
	}
	return nil
}

// mapError translates driver errors the callers are expected to branch on.
func mapError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case pgerrcode.SerializationFailure, pgerrcode.DeadlockDetected:
		return errs.ErrConflict
	case pgerrcode.UniqueViolation:
		switch pgErr.ConstraintName {
		case activeBorrowIndex:
			return errs.ErrUnavailable
		case usernameIndex:
			return errs.ErrUsernameTaken
		}
	case pgerrcode.ForeignKeyViolation:
		return errs.ErrNotFound
	}
	return err
}

func collectOne[T any](rows pgx.Rows, err error) (T, error) {
	var zero T
	if err != nil {
		return zero, err
	}
	v, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[T])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return zero, errs.ErrNotFound
		}
		return zero, err
	}
	return v, nil
}

func collectAll[T any](rows pgx.Rows, err error) ([]T, error) {
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[T])
}

func query(ctx context.Context, q querier, b sq.Sqlizer) (pgx.Rows, error) {
	sql, args, err := b.ToSql()
	if err != nil {
		return nil, err
	}
	return q.Query(ctx, sql, args...)
}

func exec(ctx context.Context, q querier, b sq.Sqlizer) (int64, error) {
	sql, args, err := b.ToSql()
	if err != nil {
		return 0, err
	}
	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return 0, mapError(err)
	}
	return tag.RowsAffected(), nil
}

func borrowSelect() sq.SelectBuilder {
	return qb.Select(borrowColumns...).
		From(borrowsTableName + " br").
		Join(booksTableName + " b ON b.id = br.book_id")
}
