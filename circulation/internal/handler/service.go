package handler

import (
	"context"

	"github.com/Astemirdum/library-circulation/circulation/internal/model"
	"github.com/Astemirdum/library-circulation/circulation/internal/service"
	"github.com/Astemirdum/library-circulation/pkg/auth"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type CirculationService interface {
	BorrowSingle(ctx context.Context, p auth.Principal, bookID int64) (model.Borrow, error)
	ReturnSingle(ctx context.Context, p auth.Principal, borrowID int64) (model.Borrow, error)
	CheckoutBag(ctx context.Context, p auth.Principal) (model.CheckoutResult, error)
	PayFine(ctx context.Context, p auth.Principal, borrowID int64) (model.PayFineResult, error)
	RemindNow(ctx context.Context, p auth.Principal) (model.ReminderReport, error)

	ActiveBorrows(ctx context.Context, p auth.Principal) ([]model.Borrow, error)
	BorrowHistory(ctx context.Context, p auth.Principal) ([]model.Borrow, error)
	OverdueBorrows(ctx context.Context, p auth.Principal) ([]model.OverdueBorrow, error)

	AddToBag(ctx context.Context, p auth.Principal, bookID int64) (bool, error)
	RemoveFromBag(ctx context.Context, p auth.Principal, bookID int64) (bool, error)
	GetBag(ctx context.Context, p auth.Principal) (model.Bag, error)
}

type CatalogService interface {
	CreateBook(ctx context.Context, p auth.Principal, in model.BookInput) (model.Book, error)
	UpdateBook(ctx context.Context, p auth.Principal, id int64, in model.BookInput) (model.Book, error)
	DeleteBook(ctx context.Context, p auth.Principal, id int64) error
	GetBook(ctx context.Context, id int64) (model.Book, error)
	ListBooks(ctx context.Context, f model.BookFilter) (model.ListBooks, error)
	BookHistory(ctx context.Context, p auth.Principal, bookID int64) ([]model.BorrowHistory, error)
	Report(ctx context.Context, p auth.Principal, top int) (model.Report, error)
}

type ReaderService interface {
	Register(ctx context.Context, req model.RegisterRequest, role auth.Role) (model.Reader, error)
	Authenticate(ctx context.Context, creds model.Credentials) (model.Reader, error)
	ListReaders(ctx context.Context, p auth.Principal) ([]model.ReaderWithProfile, error)
	GetProfile(ctx context.Context, p auth.Principal, readerID int64) (model.Profile, error)
	UpdateProfile(ctx context.Context, p auth.Principal, profile model.Profile) (model.Profile, error)
}

var (
	_ CirculationService = (*service.Service)(nil)
	_ CatalogService     = (*service.Service)(nil)
	_ ReaderService      = (*service.Service)(nil)
)
