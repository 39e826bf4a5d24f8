package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"shophub/cmd/shophub/ui"
	"shophub/internal/api"
	"shophub/internal/catalog"
	"shophub/internal/logging"
	"shophub/internal/query"
	"shophub/internal/types"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Open the interactive storefront",
	Long: `Opens the full-screen storefront. Browse the catalog, search and filter
products, and add them to your cart.

  ↑/↓    move        /      search      a/enter  add to cart
  c      category    s      sort        r        reload
  q      quit`,
	RunE: runBrowse,
}

// catalogLoadedMsg carries the fetched catalog into the model.
type catalogLoadedMsg struct {
	products   []types.Product
	categories []string
}

type catalogErrMsg struct{ err error }

type statusExpiredMsg struct{ seq int }

// browseModel is the storefront TUI state.
type browseModel struct {
	styles  ui.Styles
	spinner spinner.Model
	search  textinput.Model

	products   []types.Product
	categories []string
	view       []types.Product

	// catIdx indexes categories; -1 means all. sortIdx indexes
	// catalog.SortKeys().
	catIdx  int
	sortIdx int
	cursor  int

	loading   bool
	searching bool
	err       error
	status    string
	statusSeq int

	width  int
	height int
}

func newBrowseModel() browseModel {
	styles := appStyles()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Spinner

	search := textinput.New()
	search.Placeholder = "search products..."
	search.CharLimit = 64
	search.Width = 32

	return browseModel{
		styles:  styles,
		spinner: sp,
		search:  search,
		catIdx:  -1,
		loading: true,
	}
}

func loadCatalog(refetch bool) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		key := query.Key("products", 0, "")
		fetch := func(ctx context.Context) ([]types.Product, error) {
			return app.client.ListProducts(ctx, api.ListOptions{})
		}

		var products []types.Product
		var err error
		if refetch {
			products, err = app.products.Refetch(ctx, key, fetch)
		} else {
			products, err = app.products.Get(ctx, key, fetch)
		}
		if err != nil {
			return catalogErrMsg{err}
		}

		categories, err := fetchCategories(ctx)
		if err != nil {
			// The list still renders without the category cycle.
			logging.UI("categories unavailable: %v", err)
			categories = catalog.Categories(products)
		}
		return catalogLoadedMsg{products: products, categories: categories}
	}
}

func expireStatus(seq int) tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return statusExpiredMsg{seq: seq}
	})
}

func (m browseModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, loadCatalog(false))
}

// criteria assembles the current filter state.
func (m browseModel) criteria() catalog.Criteria {
	c := catalog.Criteria{
		Search: m.search.Value(),
		Sort:   catalog.SortKeys()[m.sortIdx],
	}
	if m.catIdx >= 0 && m.catIdx < len(m.categories) {
		c.Categories = []string{m.categories[m.catIdx]}
	}
	return c
}

func (m *browseModel) refreshView() {
	m.view = catalog.DeriveView(m.products, m.criteria())
	if m.cursor >= len(m.view) {
		m.cursor = len(m.view) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *browseModel) setStatus(s string) tea.Cmd {
	m.status = s
	m.statusSeq++
	return expireStatus(m.statusSeq)
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case catalogLoadedMsg:
		m.loading = false
		m.err = nil
		m.products = msg.products
		m.categories = msg.categories
		m.refreshView()
		return m, nil

	case catalogErrMsg:
		m.loading = false
		m.err = msg.err
		return m, nil

	case statusExpiredMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
		}
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.searching {
			switch msg.String() {
			case "esc":
				m.searching = false
				m.search.Blur()
				m.search.SetValue("")
				m.refreshView()
				return m, nil
			case "enter":
				m.searching = false
				m.search.Blur()
				return m, nil
			default:
				var cmd tea.Cmd
				m.search, cmd = m.search.Update(msg)
				m.refreshView()
				return m, cmd
			}
		}
		return m.handleKey(msg)
	}

	return m, nil
}

func (m browseModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "/":
		m.searching = true
		m.search.Focus()
		return m, textinput.Blink

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(m.view)-1 {
			m.cursor++
		}

	case "c":
		// Cycle all -> each category -> all.
		m.catIdx++
		if m.catIdx >= len(m.categories) {
			m.catIdx = -1
		}
		m.refreshView()

	case "s":
		m.sortIdx = (m.sortIdx + 1) % len(catalog.SortKeys())
		m.refreshView()

	case "r":
		m.loading = true
		m.err = nil
		return m, tea.Batch(m.spinner.Tick, loadCatalog(true))

	case "a", "enter":
		if m.cursor < len(m.view) {
			p := m.view[m.cursor]
			app.cart.Add(p, 1)
			return m, m.setStatus(fmt.Sprintf("Added %s", truncate(p.Title, 40)))
		}
	}
	return m, nil
}

func (m browseModel) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Header.Render("ShopHub"))
	b.WriteString("  ")
	b.WriteString(m.styles.Muted.Render(fmt.Sprintf("cart: %d items, %s",
		app.cart.ItemCount(), formatPrice(app.cart.Total()))))
	b.WriteString("\n\n")

	if m.loading {
		b.WriteString(fmt.Sprintf("%s loading catalog...\n", m.spinner.View()))
		return b.String()
	}
	if m.err != nil {
		b.WriteString(m.styles.Error.Render("Failed to fetch products. Please try again later."))
		b.WriteString("\n")
		b.WriteString(m.styles.Muted.Render("press r to retry, q to quit"))
		b.WriteString("\n")
		return b.String()
	}

	category := "all"
	if m.catIdx >= 0 && m.catIdx < len(m.categories) {
		category = m.categories[m.catIdx]
	}
	b.WriteString(fmt.Sprintf("%s %s   %s %s   %s %s\n",
		m.styles.Bold.Render("search:"), m.searchView(),
		m.styles.Bold.Render("category:"), m.styles.Info.Render(category),
		m.styles.Bold.Render("sort:"), m.styles.Info.Render(string(catalog.SortKeys()[m.sortIdx]))))
	b.WriteString("\n")

	if len(m.view) == 0 {
		b.WriteString(m.styles.Muted.Render("No products match. Try adjusting your filters or search query."))
		b.WriteString("\n")
	}

	rows := m.visibleRows()
	for i, p := range m.view {
		if i < rows.start || i >= rows.end {
			continue
		}
		marker := "  "
		line := fmt.Sprintf("%-4d %-50s %-18s %10s  %s",
			p.ID, truncate(p.Title, 50), p.Category,
			formatPrice(p.Price), formatRating(p.Rating.Rate, p.Rating.Count))
		if app.cart.Contains(p.ID) {
			line += " " + m.styles.Badge.Render("in cart")
		}
		if i == m.cursor {
			b.WriteString(m.styles.Bold.Render("> " + line))
		} else {
			b.WriteString(marker + m.styles.Body.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(m.styles.Success.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(m.styles.Footer.Render(
		"↑/↓ move · / search · c category · s sort · a add to cart · r reload · q quit"))
	b.WriteString("\n")
	return b.String()
}

func (m browseModel) searchView() string {
	if m.searching {
		return m.search.View()
	}
	if v := m.search.Value(); v != "" {
		return m.styles.Info.Render(v)
	}
	return m.styles.Muted.Render("(none)")
}

type rowRange struct{ start, end int }

// visibleRows windows the product list around the cursor so it fits the
// terminal height.
func (m browseModel) visibleRows() rowRange {
	max := m.height - 10
	if max < 5 {
		max = 5
	}
	if len(m.view) <= max {
		return rowRange{0, len(m.view)}
	}
	start := m.cursor - max/2
	if start < 0 {
		start = 0
	}
	end := start + max
	if end > len(m.view) {
		end = len(m.view)
		start = end - max
	}
	return rowRange{start, end}
}

func runBrowse(cmd *cobra.Command, args []string) error {
	logging.UI("starting storefront")
	p := tea.NewProgram(newBrowseModel(), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("storefront failed: %w", err)
	}
	return nil
}
