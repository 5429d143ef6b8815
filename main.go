package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"dividendfinder/internal/config"
	"dividendfinder/internal/coordinator"
	"dividendfinder/internal/dividend"
	"dividendfinder/internal/logger"
	"dividendfinder/internal/metrics"
	"dividendfinder/internal/ratelimit"
	"dividendfinder/internal/render"
	"dividendfinder/internal/server"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// app is what every subcommand needs, built once from the configuration
type app struct {
	cfg   *config.Config
	coord *coordinator.Coordinator
}

func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger.Init(os.Stderr, cfg.LogLevel, cfg.LogFormat)

	client := dividend.NewClient(cfg.BaseURL, ratelimit.New(cfg.RequestsPerSecond))
	return &app{
		cfg:   cfg,
		coord: coordinator.New(client),
	}, nil
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "dividendfinder",
		Short:         "Find dividend ETFs and stocks and the deposit needed for a target income",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(newSearchCmd(), newServeCmd())
	return root
}

func newSearchCmd() *cobra.Command {
	var (
		params       dividend.Params
		income       string
		incomePeriod string
	)

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Fetch one page of results and print the deposit needed per instrument",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}

			amount, err := decimal.NewFromString(income)
			if err != nil || !amount.IsPositive() {
				return fmt.Errorf("invalid income %q: must be a positive number", income)
			}
			freq, ok := metrics.ParseFrequency(incomePeriod)
			if !ok {
				return fmt.Errorf("invalid income period %q: use monthly or yearly", incomePeriod)
			}

			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			filter := dividend.ParseFilter(params)
			page := a.coord.FetchPage(ctx, filter)
			if page == nil {
				return errors.New("search failed: the provider did not return a usable page")
			}

			target := metrics.IncomeTarget{Amount: amount, Frequency: freq}
			rows := metrics.Evaluate(page.Records, target, metrics.Options{DepositPrecision: a.cfg.DepositPrecision})
			style := table.StyleLight
			render.Table(cmd.OutOrStdout(), page, rows, render.Options{Style: &style})
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&params.Feature, "feature", string(dividend.ETF), "instrument class: Etf or Stock")
	f.StringVar(&params.Period, "period", string(dividend.All), "payout frequency: All, Monthly, Bi-Monthly, Quarterly, Semi Annually, Annually")
	f.StringVar(&params.SortBy, "sort-by", string(dividend.SortDividendYield), "sort field: DividendYieldCurrent or MarketCap")
	f.StringVar(&params.OrderBy, "order-by", string(dividend.Desc), "sort direction: asc or desc")
	f.StringVar(&params.Page, "page", "1", "page number")
	f.StringVar(&income, "income", "1000", "target dividend income")
	f.StringVar(&incomePeriod, "income-period", string(metrics.Yearly), "period of the target income: Monthly or Yearly")
	return cmd
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the search pipeline over HTTP at /api/data",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}

			// Create context with cancellation for graceful shutdown
			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			h := server.New(a.coord, metrics.Options{DepositPrecision: a.cfg.DepositPrecision})
			srv := &http.Server{
				Addr:              a.cfg.ListenAddr,
				Handler:           h.Routes(),
				ReadHeaderTimeout: 10 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				slog.Info("listening", "addr", a.cfg.ListenAddr, "upstream", a.cfg.BaseURL)
				errCh <- srv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if !errors.Is(err, http.ErrServerClosed) {
					return fmt.Errorf("server failed: %w", err)
				}
				return nil
			case <-ctx.Done():
				slog.Info("received interrupt signal, shutting down")
			}

			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer shutdownCancel()
			return srv.Shutdown(shutdownCtx)
		},
	}
}
