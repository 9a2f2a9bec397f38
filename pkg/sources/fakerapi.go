package sources

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/kerbaras/librarian/pkg/data"
	"github.com/kerbaras/librarian/pkg/utils"
)

const DefaultFakerAPIURL = "https://fakerapi.it"

// Book is a record of the /api/v1/books resource.
type Book struct {
	Title       string `json:"title"`
	Author      string `json:"author"`
	Genre       string `json:"genre"`
	Description string `json:"description"`
	ISBN        string `json:"isbn"`
	Image       string `json:"image"`
	Published   string `json:"published"`
	Publisher   string `json:"publisher"`
}

// ToBook maps the record to a fresh, available catalog entry.
func (b *Book) ToBook() *data.Book {
	return &data.Book{
		ID:        uuid.NewString(),
		Title:     b.Title,
		Author:    b.Author,
		Genre:     b.Genre,
		Published: publishedYear(b.Published),
	}
}

func publishedYear(s string) int {
	if t, ok := data.ParseDate(s); ok {
		return t.Year()
	}
	if y, err := strconv.Atoi(s); err == nil {
		return y
	}
	return 0
}

type FakerAPI struct {
	api *utils.API
}

func NewFakerAPI(baseURL string, timeout time.Duration) *FakerAPI {
	if baseURL == "" {
		baseURL = DefaultFakerAPIURL
	}
	return &FakerAPI{api: utils.NewAPI(baseURL, timeout)}
}

func (f *FakerAPI) FetchBooks(ctx context.Context, quantity int) ([]*data.Book, error) {
	params := url.Values{}
	params.Set("_quantity", strconv.Itoa(quantity))

	var resp struct {
		Status string `json:"status"`
		Code   int    `json:"code"`
		Total  int    `json:"total"`
		Data   []Book `json:"data"`
	}
	if err := f.api.Get(ctx, "/api/v1/books", params, &resp); err != nil {
		return nil, err
	}

	out := make([]*data.Book, len(resp.Data))
	for i := range resp.Data {
		out[i] = resp.Data[i].ToBook()
	}
	return out, nil
}
