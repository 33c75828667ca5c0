package service

import (
	"context"

	"github.com/Astemirdum/library-circulation/circulation/internal/model"
	"github.com/Astemirdum/library-circulation/pkg/auth"
)

func normalizeBook(in model.BookInput) model.BookInput {
	if in.Genre == "" {
		in.Genre = model.GenreOther
	}
	return in
}

func (s *Service) CreateBook(ctx context.Context, p auth.Principal, in model.BookInput) (model.Book, error) {
	if err := checkStaff(p); err != nil {
		return model.Book{}, err
	}
	return s.repo.CreateBook(ctx, normalizeBook(in))
}

func (s *Service) UpdateBook(ctx context.Context, p auth.Principal, id int64, in model.BookInput) (model.Book, error) {
	if err := checkStaff(p); err != nil {
		return model.Book{}, err
	}
	return s.repo.UpdateBook(ctx, id, normalizeBook(in))
}

func (s *Service) DeleteBook(ctx context.Context, p auth.Principal, id int64) error {
	if err := checkStaff(p); err != nil {
		return err
	}
	return s.repo.DeleteBook(ctx, id)
}

func (s *Service) GetBook(ctx context.Context, id int64) (model.Book, error) {
	return s.repo.GetBook(ctx, id)
}

func (s *Service) ListBooks(ctx context.Context, f model.BookFilter) (model.ListBooks, error) {
	if f.Page <= 0 {
		f.Page = 1
	}
	if f.Size <= 0 {
		f.Size = defaultPageSize
	}
	if f.Size > maxPageSize {
		f.Size = maxPageSize
	}
	return s.repo.ListBooks(ctx, f)
}

func (s *Service) BookHistory(ctx context.Context, p auth.Principal, bookID int64) ([]model.BorrowHistory, error) {
	if err := checkStaff(p); err != nil {
		return nil, err
	}
	if _, err := s.repo.GetBook(ctx, bookID); err != nil {
		return nil, err
	}
	return s.repo.BookHistory(ctx, bookID)
}

// AddToBag reports whether the id was new to the bag.
func (s *Service) AddToBag(ctx context.Context, p auth.Principal, bookID int64) (bool, error) {
	if err := checkPrincipal(p); err != nil {
		return false, err
	}
	return s.repo.AddToBag(ctx, p.ReaderID, bookID)
}

func (s *Service) RemoveFromBag(ctx context.Context, p auth.Principal, bookID int64) (bool, error) {
	if err := checkPrincipal(p); err != nil {
		return false, err
	}
	return s.repo.RemoveFromBag(ctx, p.ReaderID, bookID)
}

func (s *Service) GetBag(ctx context.Context, p auth.Principal) (model.Bag, error) {
	if err := checkPrincipal(p); err != nil {
		return model.Bag{}, err
	}
	ids, err := s.repo.ListBag(ctx, p.ReaderID)
	if err != nil {
		return model.Bag{}, err
	}
	if ids == nil {
		ids = []int64{}
	}
	return model.Bag{ReaderID: p.ReaderID, BookIDs: ids}, nil
}

func (s *Service) ActiveBorrows(ctx context.Context, p auth.Principal) ([]model.Borrow, error) {
	if err := checkPrincipal(p); err != nil {
		return nil, err
	}
	borrows, err := s.repo.ActiveBorrows(ctx, p.ReaderID)
	if err != nil {
		return nil, err
	}
	return withDerivedAll(borrows, s.now()), nil
}

func (s *Service) BorrowHistory(ctx context.Context, p auth.Principal) ([]model.Borrow, error) {
	if err := checkPrincipal(p); err != nil {
		return nil, err
	}
	borrows, err := s.repo.ReaderBorrows(ctx, p.ReaderID)
	if err != nil {
		return nil, err
	}
	return withDerivedAll(borrows, s.now()), nil
}

func (s *Service) OverdueBorrows(ctx context.Context, p auth.Principal) ([]model.OverdueBorrow, error) {
	if err := checkStaff(p); err != nil {
		return nil, err
	}
	now := s.now()
	overdue, err := s.repo.OverdueBorrows(ctx, now)
	if err != nil {
		return nil, err
	}
	for i := range overdue {
		overdue[i].Borrow = withDerived(overdue[i].Borrow, now)
	}
	return overdue, nil
}
