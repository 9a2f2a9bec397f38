package cmd

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	jsoniter "github.com/json-iterator/go"
	"github.com/kerbaras/librarian/pkg/app/components"
	"github.com/kerbaras/librarian/pkg/data"
	"github.com/kerbaras/librarian/pkg/services"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Fetch the catalog and print it",
	Long:  "Fetch a fresh catalog and display the books matching the filters in a formatted table",
	Run: func(cmd *cobra.Command, args []string) {
		genres, _ := cmd.Flags().GetStringSlice("genre")
		years, _ := cmd.Flags().GetStringSlice("year")
		search, _ := cmd.Flags().GetString("search")
		asJSON, _ := cmd.Flags().GetBool("json")

		library, closeFn := openLibrary(cmd.Context())
		defer closeFn()

		books, err := library.Books(data.Filter{Genres: genres, Years: years, Search: search})
		if err != nil {
			cobra.CheckErr(err)
		}

		if asJSON {
			enc := jsoniter.ConfigCompatibleWithStandardLibrary.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			cobra.CheckErr(enc.Encode(books))
			return
		}

		if len(books) == 0 {
			fmt.Println("📚 No books match the filters.")
			return
		}

		var (
			purple = lipgloss.Color("99")

			headerStyle = lipgloss.NewStyle().Foreground(purple).Bold(true).Align(lipgloss.Center)
			cellStyle   = lipgloss.NewStyle().Padding(0, 1)
		)

		t := table.New().
			Border(lipgloss.NormalBorder()).
			BorderStyle(lipgloss.NewStyle().Foreground(purple)).
			StyleFunc(func(row, col int) lipgloss.Style {
				switch {
				case row == table.HeaderRow:
					return headerStyle
				default:
					return cellStyle
				}
			}).
			Headers("#", "Title", "Author", "Genre", "Published", "Status", "Reserved By", "Borrow Date", "Fine")

		for i, book := range books {
			row := components.BookRow(book)
			t.Row(append([]string{strconv.Itoa(i + 1)}, row...)...)
		}

		fmt.Printf("\n📚 Library (%d books)\n\n", len(books))
		fmt.Println(t)
	},
}

var genresCmd = &cobra.Command{
	Use:   "genres",
	Short: "List the genre filter options",
	Run: func(cmd *cobra.Command, args []string) {
		library, closeFn := openLibrary(cmd.Context())
		defer closeFn()

		genres, err := library.GenreOptions()
		cobra.CheckErr(err)
		for _, g := range genres {
			fmt.Println(g)
		}
	},
}

func init() {
	listCmd.Flags().StringSliceP("genre", "g", nil, "Only show these genres (repeatable)")
	listCmd.Flags().StringSliceP("year", "y", nil, "Only show books published in these years (repeatable)")
	listCmd.Flags().StringP("search", "s", "", "Case-insensitive title/author search")
	listCmd.Flags().Bool("json", false, "Print JSON instead of a table")
}

// openLibrary builds a library and runs the startup fetch.
func openLibrary(ctx context.Context) (*services.Library, func() error) {
	library, closeFn, err := services.NewLibraryFromConfig(cfg)
	if err != nil {
		cobra.CheckErr(fmt.Errorf("failed to open catalog: %w", err))
	}

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	// a failed fetch is logged by Load and leaves the catalog empty
	_, _ = library.Load(ctx)
	return library, closeFn
}
