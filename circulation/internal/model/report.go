package model

type BookStat struct {
	BookID  int64  `json:"bookId" db:"book_id"`
	Title   string `json:"title" db:"title"`
	Borrows int64  `json:"borrows" db:"borrows"`
}

type ReaderStat struct {
	ReaderID int64  `json:"readerId" db:"reader_id"`
	Username string `json:"username" db:"username"`
	Borrows  int64  `json:"borrows" db:"borrows"`
}

type Report struct {
	TotalBooks       int64        `json:"totalBooks"`
	AvailableBooks   int64        `json:"availableBooks"`
	ActiveBorrows    int64        `json:"activeBorrows"`
	OverdueBorrows   int64        `json:"overdueBorrows"`
	DistinctBorrowers int64       `json:"distinctBorrowers"`
	TopBooks         []BookStat   `json:"topBooks"`
	TopReaders       []ReaderStat `json:"topReaders"`
}
