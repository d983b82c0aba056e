package order

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"github.com/specialistvlad/taqueria/internal/ctxlog"
	"github.com/specialistvlad/taqueria/internal/menu"
)

// DefaultPrompt is written before every read.
const DefaultPrompt = "Items: "

// maxLineLength bounds the part of an input line that is kept. Longer
// lines cannot name a menu item; they are read through and ignored.
const maxLineLength = 1 << 20

// Summary describes a finished order.
type Summary struct {
	Total   decimal.Decimal
	Items   []string // matched item names, in input order
	Ignored int      // lines that matched nothing
}

// Loop reads item names from an input stream and keeps a running total.
// A Loop holds no order state between calls to Run; the total lives in Run.
type Loop struct {
	menu    *menu.Menu
	in      *bufio.Reader
	readErr error
	out     io.Writer
	prompt  string
	receipt bool
}

// Option configures a Loop.
type Option func(*Loop)

// WithPrompt replaces the prompt written before each read.
func WithPrompt(prompt string) Option {
	return func(l *Loop) { l.prompt = prompt }
}

// WithReceipt makes Run print an itemised receipt after the order ends.
func WithReceipt(enabled bool) Option {
	return func(l *Loop) { l.receipt = enabled }
}

// New returns a Loop that matches lines from in against m and writes totals
// to out.
func New(m *menu.Menu, in io.Reader, out io.Writer, opts ...Option) *Loop {
	l := &Loop{
		menu:   m,
		in:     bufio.NewReaderSize(in, 4096),
		out:    out,
		prompt: DefaultPrompt,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Run drives the order until the input is exhausted. End of input is the
// normal way for an order to finish and is not reported as an error; only
// read or write failures and context cancellation are.
func (l *Loop) Run(ctx context.Context) (Summary, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Order loop started.", "menu_items", l.menu.Len())

	var sum Summary
	for {
		if err := ctx.Err(); err != nil {
			return sum, err
		}
		if _, err := io.WriteString(l.out, l.prompt); err != nil {
			return sum, fmt.Errorf("failed to write prompt: %w", err)
		}

		line, oversized, ok := l.next()
		if !ok {
			break
		}
		if oversized {
			sum.Ignored++
			logger.Debug("Input ignored: line too long.", "limit", maxLineLength)
			continue
		}

		name := menu.Normalize(line)
		price, found := l.menu.Lookup(name)
		if !found {
			sum.Ignored++
			logger.Debug("Input ignored.", "input", line)
			continue
		}

		sum.Total = sum.Total.Add(price)
		sum.Items = append(sum.Items, name)
		logger.Debug("Item added.", "item", name, "price", price.String(), "total", sum.Total.String())

		if _, err := fmt.Fprintf(l.out, "Total: $%s\n", FormatAmount(sum.Total)); err != nil {
			return sum, fmt.Errorf("failed to write total: %w", err)
		}
	}

	if l.readErr != nil {
		return sum, fmt.Errorf("failed to read input: %w", l.readErr)
	}

	// One newline ends the pending prompt, the second leaves a blank line.
	if _, err := io.WriteString(l.out, "\n\n"); err != nil {
		return sum, fmt.Errorf("failed to write trailer: %w", err)
	}
	if l.receipt {
		if err := l.writeReceipt(sum); err != nil {
			return sum, fmt.Errorf("failed to write receipt: %w", err)
		}
	}

	logger.Debug("Order loop finished.", "items", len(sum.Items), "ignored", sum.Ignored, "total", sum.Total.String())
	return sum, nil
}

// next returns the next input line without its line ending. oversized
// reports a line longer than maxLineLength, whose content is dropped. ok is
// false once the input is exhausted or the reader failed; l.readErr tells
// the two apart.
func (l *Loop) next() (line string, oversized bool, ok bool) {
	var buf []byte
	started := false
	for {
		chunk, isPrefix, err := l.in.ReadLine()
		if err != nil {
			if err != io.EOF {
				l.readErr = err
				return "", false, false
			}
			// A line that exactly filled the buffer before EOF is still a line.
			return string(buf), oversized, started
		}
		started = true

		if !oversized {
			if len(buf)+len(chunk) > maxLineLength {
				oversized = true
				buf = nil
			} else {
				buf = append(buf, chunk...)
			}
		}
		if !isPrefix {
			return string(buf), oversized, true
		}
	}
}

func (l *Loop) writeReceipt(sum Summary) error {
	tw := tabwriter.NewWriter(l.out, 0, 0, 2, ' ', 0)
	for _, name := range sum.Items {
		price, _ := l.menu.Lookup(name)
		if _, err := fmt.Fprintf(tw, "%s\t$%s\n", name, FormatAmount(price)); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(tw, "Total:\t$%s\n", FormatAmount(sum.Total)); err != nil {
		return err
	}
	return tw.Flush()
}

// FormatAmount renders d with exactly two fractional digits, rounding half
// to even.
func FormatAmount(d decimal.Decimal) string {
	return d.StringFixedBank(2)
}
