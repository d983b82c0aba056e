package app

import (
	"context"
	"fmt"

	"github.com/specialistvlad/taqueria/internal/ctxlog"
	"github.com/specialistvlad/taqueria/internal/order"
)

// Run executes the main application logic: it either lists the menu or
// takes one order until the input stream ends.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if a.config.ListMenu {
		if err := a.menu.Fprint(a.streams.Out); err != nil {
			return fmt.Errorf("failed to list menu: %w", err)
		}
		return nil
	}

	ctx = ctxlog.With(ctx, "menu", menuSource(a.config.MenuPath))
	loop := order.New(a.menu, a.streams.In, a.streams.Out,
		order.WithPrompt(a.config.Prompt),
		order.WithReceipt(a.config.Receipt),
	)
	summary, err := loop.Run(ctx)
	if err != nil {
		return fmt.Errorf("order failed: %w", err)
	}

	a.logger.Info("Order complete.", "items", len(summary.Items), "ignored", summary.Ignored, "total", order.FormatAmount(summary.Total))
	a.logger.Debug("App.Run method finished.")
	return nil
}
