package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"expenzo/internal/cli"
	"expenzo/internal/core"
	"expenzo/internal/log"
	"expenzo/internal/services"
	"expenzo/internal/storage"
)

func main() {
	cli.LoadEnvFile()
	logger := cli.SetupLogger(os.Getenv("LOG_LEVEL"))
	cfg := cli.LoadAndValidateConfig(logger)
	store := cli.OpenStore(logger, cfg)

	code := run(context.Background(), logger, store)
	if err := store.Close(); err != nil {
		logger.Error("Failed to close store", log.FieldError, err)
	}
	os.Exit(code)
}

func run(ctx context.Context, logger *log.Logger, store storage.Store) int {
	expenses := services.NewExpenseService(store)
	if err := expenses.Load(ctx); err != nil {
		logger.Error("Failed to load expenses", log.FieldError, err)
		return 1
	}
	settings := services.NewSettingsService(store)
	if err := settings.Load(ctx); err != nil {
		logger.Error("Failed to load settings", log.FieldError, err)
		return 1
	}

	args := os.Args[1:]
	if len(args) == 0 {
		printUsage()
		return 2
	}

	var err error
	switch args[0] {
	case "add":
		err = runAdd(ctx, expenses, args[1:])
	case "list":
		err = runList(expenses, args[1:])
	case "summary":
		err = runSummary(expenses, args[1:])
	case "breakdown":
		err = runBreakdown(expenses)
	case "delete":
		err = runDelete(ctx, expenses, args[1:])
	case "darkmode":
		err = runDarkMode(ctx, settings, args[1:])
	case "categories":
		for _, c := range core.Categories() {
			fmt.Println(c)
		}
	default:
		printUsage()
		return 2
	}

	if err != nil {
		logger.Error("Command failed", "command", args[0], log.FieldError, err)
		return 1
	}
	return 0
}

func runAdd(ctx context.Context, svc *services.ExpenseService, args []string) error {
	fs := flag.NewFlagSet("add", flag.ExitOnError)
	amount := fs.String("amount", "", "expense amount, e.g. 12.50")
	description := fs.String("description", "", "what the money went to")
	category := fs.String("category", string(core.Food), "one of the fixed categories")
	date := fs.String("date", "", "occurrence date (2006-01-02), defaults to now")
	if err := fs.Parse(args); err != nil {
		return err
	}

	amt, err := core.ParseAmount(*amount)
	if err != nil {
		return fmt.Errorf("parse amount %q: %w", *amount, err)
	}

	draft := core.Draft{
		Amount:      amt,
		Description: *description,
		Category:    core.Category(*category),
	}
	if *date != "" {
		d, err := time.ParseInLocation("2006-01-02", *date, time.Local)
		if err != nil {
			return fmt.Errorf("parse date %q: %w", *date, err)
		}
		draft.Date = d
	}

	tx, err := svc.Add(ctx, draft)
	if err != nil {
		return err
	}
	fmt.Printf("Recorded expense #%d: %s %s (%s)\n",
		tx.ID, tx.Amount.StringFixed(2), tx.Description, tx.Category)
	return nil
}

func runList(svc *services.ExpenseService, args []string) error {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	category := fs.String("category", core.AllCategories, "category filter")
	search := fs.String("search", "", "substring of description or category")
	dateRange := fs.String("range", string(core.RangeAll), "all|today|last7days|thisMonth|thisYear|custom")
	from := fs.String("from", "", "custom range start (2006-01-02)")
	to := fs.String("to", "", "custom range end (2006-01-02), inclusive")
	min := fs.String("min", "", "minimum amount")
	max := fs.String("max", "", "maximum amount")
	sortBy := fs.String("sort", string(core.SortByDate), "date|amount|description|category")
	order := fs.String("order", string(core.Descending), "asc|desc")
	if err := fs.Parse(args); err != nil {
		return err
	}

	q := core.Query{
		Category:    *category,
		Search:      *search,
		DateRange:   core.DateRange(*dateRange),
		CustomStart: *from,
		CustomEnd:   *to,
		MinAmount:   *min,
		MaxAmount:   *max,
		SortBy:      core.SortField(*sortBy),
		SortOrder:   core.SortOrder(*order),
	}

	txs := q.Apply(svc.List(), time.Now())
	if len(txs) == 0 {
		fmt.Println("No expenses match.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDATE\tDESCRIPTION\tCATEGORY\tAMOUNT")
	for _, t := range txs {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
			t.ID, t.Date.Format("2006-01-02"), t.Description, t.Category, t.Amount.StringFixed(2))
	}
	return w.Flush()
}

func runSummary(svc *services.ExpenseService, args []string) error {
	fs := flag.NewFlagSet("summary", flag.ExitOnError)
	window := fs.String("window", string(core.WindowMonth), "week|month|year|all")
	if err := fs.Parse(args); err != nil {
		return err
	}

	switch core.Window(*window) {
	case core.WindowWeek, core.WindowMonth, core.WindowYear, core.WindowAll:
	default:
		return fmt.Errorf("unknown window %q", *window)
	}

	s := core.Summarize(svc.List(), core.Window(*window), time.Now())
	fmt.Printf("Total spent:  %s\n", s.Total.StringFixed(2))
	fmt.Printf("Transactions: %d\n", s.Count)
	fmt.Printf("Average:      %s\n", s.Average.StringFixed(2))
	if s.TopCategory == "" {
		fmt.Println("Top category: None")
	} else {
		fmt.Printf("Top category: %s (%s)\n", s.TopCategory, s.TopCategoryAmount.StringFixed(2))
	}
	return nil
}

func runBreakdown(svc *services.ExpenseService) error {
	b := core.GroupByCategory(svc.List())
	if len(b.ByCategory) == 0 {
		fmt.Println("Add some expenses to see your spending breakdown.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CATEGORY\tAMOUNT\tSHARE")
	for _, e := range b.ByCategory {
		fmt.Fprintf(w, "%s\t%s\t%s%%\n",
			e.Category, e.Amount.StringFixed(2), b.Percent(e.Category).StringFixed(1))
	}
	fmt.Fprintf(w, "Total\t%s\t\n", b.Total.StringFixed(2))
	return w.Flush()
}

func runDelete(ctx context.Context, svc *services.ExpenseService, args []string) error {
	fs := flag.NewFlagSet("delete", flag.ExitOnError)
	id := fs.Int64("id", 0, "transaction id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == 0 {
		return fmt.Errorf("missing -id")
	}
	if err := svc.Delete(ctx, *id); err != nil {
		return err
	}
	fmt.Printf("Deleted expense #%d (if it existed).\n", *id)
	return nil
}

func runDarkMode(ctx context.Context, svc *services.SettingsService, args []string) error {
	if len(args) > 0 && args[0] == "toggle" {
		v, err := svc.Toggle(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("Dark mode: %v\n", v)
		return nil
	}
	fmt.Printf("Dark mode: %v\n", svc.DarkMode())
	return nil
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `usage: expenzo <command> [flags]

Commands:
  add         record a new expense
  list        show expenses with filters and sorting
  summary     dashboard statistics for a time window
  breakdown   per-category spending with shares
  delete      remove an expense by id
  darkmode    show or toggle the dark mode flag
  categories  print the fixed category set

Run 'expenzo <command> -h' for command flags.`)
}
