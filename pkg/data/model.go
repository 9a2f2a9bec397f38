package data

// DateLayout is the calendar date format used for borrow dates.
const DateLayout = "2006-01-02"

type Status string

const (
	StatusAvailable Status = "Available"
	StatusBorrowed  Status = "Borrowed"
	StatusReserved  Status = "Reserved"
)

type Book struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Author     string `json:"author"`
	Genre      string `json:"genre"`
	Published  int    `json:"published"`
	Borrowed   bool   `json:"borrowed"`
	BorrowedBy string `json:"borrowedBy"`
	BorrowDate string `json:"borrowDate"` // YYYY-MM-DD, reset when a fine is paid
	Reserved   bool   `json:"reserved"`
	ReservedBy string `json:"reservedBy"`
}

// Status reports what the catalog shows for the book. A borrowed book shows
// as borrowed even when it also carries a reservation.
func (b *Book) Status() Status {
	switch {
	case b.Borrowed:
		return StatusBorrowed
	case b.Reserved:
		return StatusReserved
	default:
		return StatusAvailable
	}
}
