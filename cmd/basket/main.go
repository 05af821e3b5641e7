// Command basket prices shopping baskets against a configured catalog,
// delivery tier table, and offer list.
//
// Price one basket from its product codes:
//
//	basket B01 G01
//
// Or price many baskets from a file, one comma-separated basket per line:
//
//	basket -scenarios baskets.txt
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"strings"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/xenking/acme-basket-challenge/internal/app"
	"github.com/xenking/acme-basket-challenge/internal/domain/basket"
)

func main() {
	var (
		configFile    string
		scenariosFile string
	)

	flag.StringVar(&configFile, "config", "", "path to YAML pricing config (default: built-in example catalog)")
	flag.StringVar(&scenariosFile, "scenarios", "", "file with one basket per line, product codes comma-separated")
	flag.Parse()

	lg, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintln(os.Stderr, "create logger:", err)
		os.Exit(1)
	}
	defer func() { _ = lg.Sync() }()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := run(ctx, lg, configFile, scenariosFile, flag.Args()); err != nil {
		lg.Error("basket pricing failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, lg *zap.Logger, configFile, scenariosFile string, codes []string) error {
	var files []string
	if configFile != "" {
		files = append(files, configFile)
	}

	cfg, err := app.LoadConfig(files...)
	if err != nil {
		return err
	}
	pricing, err := app.BuildPricing(cfg)
	if err != nil {
		return err
	}

	lg.Info("pricing configured",
		zap.Int("products", pricing.Catalog.Len()),
		zap.Int("offers", len(pricing.Offers)))

	if scenariosFile != "" {
		return runScenarios(ctx, lg, pricing, scenariosFile)
	}
	return priceBasket(lg, pricing, codes)
}

// priceBasket prices a single basket from positional codes and prints its
// receipt to stdout.
func priceBasket(lg *zap.Logger, pricing *app.Pricing, codes []string) error {
	b := pricing.NewBasket()
	for _, code := range codes {
		if err := b.Add(code); err != nil {
			return err
		}
	}

	lg.Info("basket priced",
		zap.String("basket", b.ID()),
		zap.Int("items", len(codes)))

	printReceipt(os.Stdout, b.Receipt())
	return nil
}

func printReceipt(w io.Writer, r basket.Receipt) {
	for _, item := range r.Items {
		fmt.Fprintf(w, "%-5s %-38s %9s\n", item.Code, item.Name, item.Price.StringFixed(2))
	}
	fmt.Fprintf(w, "%-44s %9s\n", "subtotal", r.Subtotal.StringFixed(2))
	for _, d := range r.Discounts {
		fmt.Fprintf(w, "%-44s %9s\n", d.Description, d.Amount.Neg().StringFixed(2))
	}
	fmt.Fprintf(w, "%-44s %9s\n", "delivery", r.Delivery.StringFixed(2))
	fmt.Fprintf(w, "%-44s %9s\n", "total", r.Total.StringFixed(2))
}

// runScenarios prices one basket per non-empty line of the given file.
// Baskets are independent and the pricing collaborators are immutable, so
// scenarios are priced in parallel.
func runScenarios(ctx context.Context, lg *zap.Logger, pricing *app.Pricing, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "open scenarios")
	}
	defer f.Close()

	var scenarios [][]string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		scenarios = append(scenarios, splitCodes(line))
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrap(err, "read scenarios")
	}

	totals := make([]decimal.Decimal, len(scenarios))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, codes := range scenarios {
		i, codes := i, codes
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			b := pricing.NewBasket()
			for _, code := range codes {
				if err := b.Add(code); err != nil {
					return errors.Wrapf(err, "scenario %d", i+1)
				}
			}
			totals[i] = b.Total()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, codes := range scenarios {
		fmt.Printf("%-44s %9s\n", strings.Join(codes, ","), totals[i].StringFixed(2))
	}

	lg.Info("scenarios priced", zap.Int("count", len(scenarios)))
	return nil
}

func splitCodes(line string) []string {
	parts := strings.Split(line, ",")
	codes := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			codes = append(codes, p)
		}
	}
	return codes
}
