package model

import (
	"time"
)

type Paging struct {
	Page          int `json:"page"`
	PageSize      int `json:"pageSize"`
	TotalElements int `json:"totalElements"`
}

type Genre string

const (
	GenreFiction    Genre = "fiction"
	GenreNonFiction Genre = "non_fiction"
	GenreScience    Genre = "science"
	GenreHistory    Genre = "history"
	GenreBiography  Genre = "biography"
	GenreSelfHelp   Genre = "self_help"
	GenreChildren   Genre = "children"
	GenreOther      Genre = "other"
)

func (g Genre) Valid() bool {
	switch g {
	case GenreFiction, GenreNonFiction, GenreScience, GenreHistory,
		GenreBiography, GenreSelfHelp, GenreChildren, GenreOther:
		return true
	}
	return false
}

type Book struct {
	ID          int64  `json:"id" db:"id"`
	Title       string `json:"title" db:"title"`
	Author      string `json:"author" db:"author"`
	Description string `json:"description" db:"description"`
	Genre       Genre  `json:"genre" db:"genre"`
	Available   bool   `json:"available" db:"available"`
}

type BookInput struct {
	Title       string `json:"title" validate:"required,max=255,singleline"`
	Author      string `json:"author" validate:"required,max=255,singleline"`
	Description string `json:"description"`
	Genre       Genre  `json:"genre" validate:"omitempty,oneof=fiction non_fiction science history biography self_help children other"`
}

type BookFilter struct {
	Query     string `query:"q"`
	Genre     Genre  `query:"genre"`
	Available *bool  `query:"available"`
	Page      int    `query:"page"`
	Size      int    `query:"size"`
}

type ListBooks struct {
	Paging `json:",inline"`
	Items  []Book `json:"items"`
}

type Borrow struct {
	ID         int64      `json:"id" db:"id"`
	ReaderID   int64      `json:"readerId" db:"reader_id"`
	BookID     int64      `json:"bookId" db:"book_id"`
	BookTitle  string     `json:"bookTitle" db:"book_title"`
	BorrowedAt time.Time  `json:"borrowedAt" db:"borrowed_at"`
	DueDate    *time.Time `json:"dueDate" db:"due_date"`
	Returned   bool       `json:"returned" db:"returned"`
	ReturnedAt *time.Time `json:"returnedAt" db:"returned_at"`
	FinePaid   bool       `json:"finePaid" db:"fine_paid"`

	Overdue    bool  `json:"overdue" db:"-"`
	FineAmount int64 `json:"fineAmount" db:"-"`
}

type HistoryStatus string

const (
	HistoryBorrowed HistoryStatus = "borrowed"
	HistoryReturned HistoryStatus = "returned"
)

type BorrowHistory struct {
	ID         int64         `json:"id" db:"id"`
	BookID     int64         `json:"bookId" db:"book_id"`
	ReaderID   int64         `json:"readerId" db:"reader_id"`
	BorrowDate time.Time     `json:"borrowDate" db:"borrow_date"`
	ReturnDate *time.Time    `json:"returnDate" db:"return_date"`
	Status     HistoryStatus `json:"status" db:"status"`
}

type CheckoutResult struct {
	Borrows []Borrow `json:"borrows"`
	Skipped []int64  `json:"skipped"`
}

type PayFineResult struct {
	Paid   bool  `json:"paid"`
	Amount int64 `json:"amount"`
}

type ReminderReport struct {
	Overdue int `json:"overdue"`
	Sent    int `json:"sent"`
	Skipped int `json:"skipped"`
	Failed  int `json:"failed"`
}

// OverdueBorrow is an active borrow past its due date joined with its reader.
type OverdueBorrow struct {
	Borrow   `json:",inline"`
	Username string `json:"username" db:"username"`
	Email    string `json:"email" db:"email"`
}

type Bag struct {
	ReaderID int64   `json:"readerId"`
	BookIDs  []int64 `json:"bookIds"`
}
