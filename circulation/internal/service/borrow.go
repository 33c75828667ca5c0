package service

import (
	"context"
	"sort"
	"time"

	"github.com/Astemirdum/library-circulation/circulation/internal/errs"
	"github.com/Astemirdum/library-circulation/circulation/internal/model"
	"github.com/Astemirdum/library-circulation/circulation/internal/notify"
	"github.com/Astemirdum/library-circulation/circulation/internal/repository"
	"github.com/Astemirdum/library-circulation/pkg/auth"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

func lend(ctx context.Context, tx repository.Tx, readerID int64, book model.Book, now, due time.Time) (model.Borrow, error) {
	b, err := tx.InsertBorrow(ctx, model.Borrow{
		ReaderID:   readerID,
		BookID:     book.ID,
		BookTitle:  book.Title,
		BorrowedAt: now,
		DueDate:    &due,
	})
	if err != nil {
		return model.Borrow{}, err
	}
	if err = tx.SetAvailability(ctx, book.ID, false); err != nil {
		return model.Borrow{}, err
	}
	if err = tx.AppendHistory(ctx, model.BorrowHistory{
		BookID:     book.ID,
		ReaderID:   readerID,
		BorrowDate: now,
		Status:     model.HistoryBorrowed,
	}); err != nil {
		return model.Borrow{}, err
	}
	return b, nil
}

func (s *Service) BorrowSingle(ctx context.Context, p auth.Principal, bookID int64) (model.Borrow, error) {
	if err := checkPrincipal(p); err != nil {
		return model.Borrow{}, err
	}

	var borrow model.Borrow
	err := s.runTx(ctx, func(ctx context.Context, tx repository.Tx) error {
		book, err := tx.GetBookForUpdate(ctx, bookID)
		if err != nil {
			return err
		}
		if !book.Available {
			return errs.ErrUnavailable
		}
		now := s.now()
		borrow, err = lend(ctx, tx, p.ReaderID, book, now, now.Add(LoanPeriod))
		return err
	})
	if err != nil {
		return model.Borrow{}, err
	}
	s.log.Info("borrowed", zap.Int64("reader_id", p.ReaderID), zap.Int64("book_id", bookID), zap.Int64("borrow_id", borrow.ID))

	s.notifyReader(ctx, p.ReaderID, func(email string) notify.Message {
		return notify.BorrowConfirmation(email, borrow.BookTitle, *borrow.DueDate)
	})
	return withDerived(borrow, s.now()), nil
}

func (s *Service) ReturnSingle(ctx context.Context, p auth.Principal, borrowID int64) (model.Borrow, error) {
	if err := checkPrincipal(p); err != nil {
		return model.Borrow{}, err
	}

	var borrow model.Borrow
	err := s.runTx(ctx, func(ctx context.Context, tx repository.Tx) error {
		b, err := tx.GetBorrowForUpdate(ctx, borrowID)
		if err != nil {
			return err
		}
		if !p.CanActFor(b.ReaderID) {
			return errs.ErrForbidden
		}
		if b.Returned {
			return errs.ErrAlreadyReturned
		}
		now := s.now()
		if err = tx.MarkReturned(ctx, b.ID, now); err != nil {
			return err
		}
		if err = tx.SetAvailability(ctx, b.BookID, true); err != nil {
			return err
		}
		if err = tx.CloseHistory(ctx, b.BookID, b.ReaderID, now); err != nil {
			return err
		}
		b.Returned, b.ReturnedAt = true, &now
		borrow = b
		return nil
	})
	if err != nil {
		return model.Borrow{}, err
	}
	s.log.Info("returned", zap.Int64("reader_id", borrow.ReaderID), zap.Int64("borrow_id", borrow.ID))

	s.notifyReader(ctx, borrow.ReaderID, func(email string) notify.Message {
		return notify.ReturnConfirmation(email, borrow.BookTitle)
	})
	return withDerived(borrow, s.now()), nil
}

// CheckoutBag borrows every available book of the caller's bag under one due date.
// Unavailable or deleted ids are skipped and reported; the bag is cleared only on success.
func (s *Service) CheckoutBag(ctx context.Context, p auth.Principal) (model.CheckoutResult, error) {
	if err := checkPrincipal(p); err != nil {
		return model.CheckoutResult{}, err
	}

	var res model.CheckoutResult
	err := s.runTx(ctx, func(ctx context.Context, tx repository.Tx) error {
		res = model.CheckoutResult{Borrows: []model.Borrow{}, Skipped: []int64{}}
		ids, err := tx.GetBag(ctx, p.ReaderID)
		if err != nil {
			return err
		}
		if len(ids) == 0 {
			return errs.ErrBagEmpty
		}
		sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

		now := s.now()
		due := now.Add(LoanPeriod)
		for _, id := range ids {
			book, err := tx.GetBookForUpdate(ctx, id)
			if errors.Is(err, errs.ErrNotFound) || (err == nil && !book.Available) {
				res.Skipped = append(res.Skipped, id)
				continue
			}
			if err != nil {
				return err
			}
			b, err := lend(ctx, tx, p.ReaderID, book, now, due)
			if err != nil {
				return err
			}
			res.Borrows = append(res.Borrows, b)
		}
		if len(res.Borrows) == 0 {
			return errs.ErrNoneAvailable
		}
		return tx.ClearBag(ctx, p.ReaderID)
	})
	if err != nil {
		return model.CheckoutResult{}, err
	}
	s.log.Info("checkout", zap.Int64("reader_id", p.ReaderID),
		zap.Int("borrowed", len(res.Borrows)), zap.Int64s("skipped", res.Skipped))

	titles := make([]string, 0, len(res.Borrows))
	for _, b := range res.Borrows {
		titles = append(titles, b.BookTitle)
	}
	due := *res.Borrows[0].DueDate
	s.notifyReader(ctx, p.ReaderID, func(email string) notify.Message {
		return notify.CheckoutConfirmation(email, titles, due)
	})
	res.Borrows = withDerivedAll(res.Borrows, s.now())
	return res, nil
}

// PayFine settles an outstanding fine. Nothing to pay is a no-op result, not an error.
func (s *Service) PayFine(ctx context.Context, p auth.Principal, borrowID int64) (model.PayFineResult, error) {
	if err := checkPrincipal(p); err != nil {
		return model.PayFineResult{}, err
	}

	var res model.PayFineResult
	err := s.runTx(ctx, func(ctx context.Context, tx repository.Tx) error {
		res = model.PayFineResult{}
		b, err := tx.GetBorrowForUpdate(ctx, borrowID)
		if err != nil {
			return err
		}
		if !p.CanActFor(b.ReaderID) {
			return errs.ErrForbidden
		}
		amount := FineAmount(b, s.now())
		if amount == 0 || b.FinePaid {
			return nil
		}
		if err = tx.MarkFinePaid(ctx, b.ID); err != nil {
			return err
		}
		res = model.PayFineResult{Paid: true, Amount: amount}
		return nil
	})
	if err != nil {
		return model.PayFineResult{}, err
	}
	if res.Paid {
		s.log.Info("fine paid", zap.Int64("borrow_id", borrowID), zap.Int64("amount", res.Amount))
	}
	return res, nil
}
