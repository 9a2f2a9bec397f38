package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/kerbaras/librarian/pkg/data"
	"github.com/kerbaras/librarian/pkg/sources"
)

var (
	ErrBookNotFound    = data.ErrBookNotFound
	ErrInvalidBook     = errors.New("invalid book")
	ErrInvalidUser     = errors.New("invalid user")
	ErrAlreadyBorrowed = errors.New("book is already borrowed")
	ErrNotBorrowed     = errors.New("book is not borrowed")
	ErrAlreadyReserved = errors.New("book is already reserved")
	ErrReservedByOther = errors.New("book is reserved by another reader")
	ErrNoFine          = errors.New("no fine is due")
)

// Repository interface needed by the library
type Repository interface {
	AddBook(book *data.Book) error
	AddBooks(books []*data.Book) error
	SaveBook(book *data.Book) error
	GetBook(id string) (*data.Book, error)
	ListBooks() ([]*data.Book, error)
}

// BookView is a book together with the values derived from it at a given time.
type BookView struct {
	data.Book
	Status data.Status `json:"status"`
	Fine   int         `json:"fine"`
}

// BookInput carries the editable fields of a book.
type BookInput struct {
	Title     string
	Author    string
	Genre     string
	Published int
}

// LibraryConfig tunes a Library. A nil FinePolicy means DefaultFinePolicy;
// a zero policy is kept as is and charges nothing.
type LibraryConfig struct {
	Quantity    int
	FinePolicy  *data.FinePolicy
	DefaultUser string
	Now         func() time.Time
}

// Library holds the session catalog and every action the UI can take on it.
type Library struct {
	source   sources.Source
	repo     Repository
	quantity int
	policy   data.FinePolicy
	now      func() time.Time

	mu   sync.RWMutex
	user string
}

func NewLibrary(source sources.Source, repo Repository, config LibraryConfig) *Library {
	if config.Quantity <= 0 {
		config.Quantity = 10
	}
	policy := data.DefaultFinePolicy
	if config.FinePolicy != nil {
		policy = *config.FinePolicy
	}
	if config.Now == nil {
		config.Now = time.Now
	}
	return &Library{
		source:   source,
		repo:     repo,
		quantity: config.Quantity,
		policy:   policy,
		now:      config.Now,
		user:     config.DefaultUser,
	}
}

// Load fetches the initial catalog and stores it in one step. A failed fetch
// or store is logged and leaves the catalog empty.
func (l *Library) Load(ctx context.Context) (int, error) {
	books, err := l.source.FetchBooks(ctx, l.quantity)
	if err != nil {
		log.Printf("Failed to fetch books: %v", err)
		return 0, fmt.Errorf("failed to fetch books: %w", err)
	}
	if err := l.repo.AddBooks(books); err != nil {
		log.Printf("Failed to store books: %v", err)
		return 0, fmt.Errorf("failed to store books: %w", err)
	}
	log.Printf("Loaded %d books", len(books))
	return len(books), nil
}

func (l *Library) view(b *data.Book) BookView {
	v := BookView{Book: *b, Status: b.Status()}
	if b.Borrowed {
		v.Fine = l.policy.Calculate(b.BorrowDate, l.now())
	}
	return v
}

func (l *Library) Books(filter data.Filter) ([]BookView, error) {
	books, err := l.repo.ListBooks()
	if err != nil {
		return nil, err
	}
	books = filter.Apply(books)
	out := make([]BookView, len(books))
	for i, b := range books {
		out[i] = l.view(b)
	}
	return out, nil
}

func (l *Library) Book(id string) (*BookView, error) {
	b, err := l.get(id)
	if err != nil {
		return nil, err
	}
	v := l.view(b)
	return &v, nil
}

func (l *Library) GenreOptions() ([]string, error) {
	books, err := l.repo.ListBooks()
	if err != nil {
		return nil, err
	}
	return data.GenreOptions(books), nil
}

func (l *Library) YearOptions() ([]string, error) {
	books, err := l.repo.ListBooks()
	if err != nil {
		return nil, err
	}
	return data.YearOptions(books), nil
}

func (l *Library) validate(in BookInput) (BookInput, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.Author = strings.TrimSpace(in.Author)
	in.Genre = strings.TrimSpace(in.Genre)
	if in.Title == "" {
		return in, fmt.Errorf("%w: title is required", ErrInvalidBook)
	}
	if in.Author == "" {
		return in, fmt.Errorf("%w: author is required", ErrInvalidBook)
	}
	if maxYear := l.now().Year() + 1; in.Published < 0 || in.Published > maxYear {
		return in, fmt.Errorf("%w: year must be between 0 and %d", ErrInvalidBook, maxYear)
	}
	return in, nil
}

func (l *Library) AddBook(in BookInput) (*data.Book, error) {
	in, err := l.validate(in)
	if err != nil {
		return nil, err
	}
	book := &data.Book{
		ID:        uuid.NewString(),
		Title:     in.Title,
		Author:    in.Author,
		Genre:     in.Genre,
		Published: in.Published,
	}
	if err := l.repo.AddBook(book); err != nil {
		return nil, err
	}
	return book, nil
}

func (l *Library) EditBook(id string, in BookInput) error {
	in, err := l.validate(in)
	if err != nil {
		return err
	}
	book, err := l.get(id)
	if err != nil {
		return err
	}
	book.Title = in.Title
	book.Author = in.Author
	book.Genre = in.Genre
	book.Published = in.Published
	return l.repo.SaveBook(book)
}

// Borrow lends the book to borrower, or to the current user when borrower is
// empty. A reservation only lets its holder borrow the book, and is consumed
// when they do.
func (l *Library) Borrow(id, borrower string) error {
	borrower = l.actor(borrower)
	if borrower == "" {
		return fmt.Errorf("%w: borrower name is required", ErrInvalidUser)
	}
	book, err := l.get(id)
	if err != nil {
		return err
	}
	if book.Borrowed {
		return ErrAlreadyBorrowed
	}
	if book.Reserved {
		if book.ReservedBy != borrower {
			return ErrReservedByOther
		}
		book.Reserved = false
		book.ReservedBy = ""
	}
	book.Borrowed = true
	book.BorrowedBy = borrower
	book.BorrowDate = data.FormatDate(l.now())
	return l.repo.SaveBook(book)
}

func (l *Library) Return(id string) error {
	book, err := l.get(id)
	if err != nil {
		return err
	}
	if !book.Borrowed {
		return ErrNotBorrowed
	}
	book.Borrowed = false
	book.BorrowedBy = ""
	book.BorrowDate = ""
	return l.repo.SaveBook(book)
}

func (l *Library) Reserve(id, user string) error {
	user = l.actor(user)
	if user == "" {
		return fmt.Errorf("%w: reader name is required", ErrInvalidUser)
	}
	book, err := l.get(id)
	if err != nil {
		return err
	}
	if book.Reserved {
		return ErrAlreadyReserved
	}
	if book.Borrowed {
		return ErrAlreadyBorrowed
	}
	book.Reserved = true
	book.ReservedBy = user
	return l.repo.SaveBook(book)
}

// PayFine settles the fine on a borrowed book. The book stays borrowed; its
// borrow date moves to today so the fine starts accruing again after a full
// borrow period.
func (l *Library) PayFine(id string) (int, error) {
	book, err := l.get(id)
	if err != nil {
		return 0, err
	}
	if !book.Borrowed {
		return 0, ErrNoFine
	}
	now := l.now()
	fine := l.policy.Calculate(book.BorrowDate, now)
	if fine <= 0 {
		return 0, ErrNoFine
	}
	book.BorrowDate = data.FormatDate(now)
	if err := l.repo.SaveBook(book); err != nil {
		return 0, err
	}
	return fine, nil
}

// Stats counts the catalog by status.
type Stats struct {
	Total     int
	Available int
	Borrowed  int
	Reserved  int
	FinesDue  int
}

func (l *Library) Stats() (Stats, error) {
	books, err := l.Books(data.Filter{})
	if err != nil {
		return Stats{}, err
	}
	s := Stats{Total: len(books)}
	for _, b := range books {
		switch b.Status {
		case data.StatusBorrowed:
			s.Borrowed++
		case data.StatusReserved:
			s.Reserved++
		default:
			s.Available++
		}
		s.FinesDue += b.Fine
	}
	return s, nil
}

func (l *Library) FinePolicy() data.FinePolicy {
	return l.policy
}

func (l *Library) User() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.user
}

// Login switches the acting reader. Credentials are not checked.
func (l *Library) Login(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidUser)
	}
	l.mu.Lock()
	l.user = name
	l.mu.Unlock()
	log.Printf("Logged in as %s", name)
	return nil
}

// SignUp validates a registration form and logs the new reader in.
func (l *Library) SignUp(name, email, password, confirm string) error {
	email = strings.TrimSpace(email)
	if email == "" || !strings.Contains(email, "@") {
		return fmt.Errorf("%w: a valid email is required", ErrInvalidUser)
	}
	if password == "" {
		return fmt.Errorf("%w: password is required", ErrInvalidUser)
	}
	if password != confirm {
		return fmt.Errorf("%w: passwords do not match", ErrInvalidUser)
	}
	return l.Login(name)
}

func (l *Library) actor(name string) string {
	if name = strings.TrimSpace(name); name != "" {
		return name
	}
	return l.User()
}

func (l *Library) get(id string) (*data.Book, error) {
	book, err := l.repo.GetBook(id)
	if err != nil {
		return nil, err
	}
	if book == nil {
		return nil, ErrBookNotFound
	}
	return book, nil
}
