package console

import (
	"bufio"
	"context"
	"fmt"
	"io"

	exchangev1 "github.com/joker6198/stock-project/internal/domain/exchange/v1"
	"github.com/joker6198/stock-project/internal/usecase/command"
	"github.com/joker6198/stock-project/internal/usecase/render"
	"github.com/joker6198/stock-project/pkg/logger"
	"github.com/joker6198/stock-project/pkg/util"
)

// Console reads commands line by line and writes their results.
type Console struct {
	exchange  exchangev1.Exchange
	in        io.Reader
	out       io.Writer
	prompt    string
	sessionID string
	logger    *logger.Logger
}

// Option configures a Console.
type Option func(*Console)

// WithPrompt sets the text written before each line is read.
func WithPrompt(prompt string) Option {
	return func(c *Console) {
		c.prompt = prompt
	}
}

// NewConsole creates a console session bound to ex.
func NewConsole(ex exchangev1.Exchange, in io.Reader, out io.Writer, logger *logger.Logger, opts ...Option) *Console {
	c := &Console{
		exchange:  ex,
		in:        in,
		out:       out,
		sessionID: util.NewID(),
		logger:    logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Run processes lines until QUIT, end of input or ctx is cancelled.
// User errors are printed and do not end the session.
func (c *Console) Run(ctx context.Context) error {
	ctx = util.WithSessionID(ctx, c.sessionID)
	scanner := bufio.NewScanner(c.in)

	c.logger.InfoContext(ctx, "session started")
	defer c.logger.InfoContext(ctx, "session ended")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := c.writePrompt(); err != nil {
			return err
		}
		if !scanner.Scan() {
			return scanner.Err()
		}

		quit, err := c.handle(util.WithRequestID(ctx, ""), scanner.Text())
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
}

// handle executes one line. The returned error is an output failure, never a user error.
func (c *Console) handle(ctx context.Context, line string) (bool, error) {
	cmd, err := command.Parse(line)
	if err != nil {
		c.logger.WarnContext(ctx, "invalid command",
			logger.NewField("line", line),
			logger.NewField("error", err.Error()),
		)
		return false, c.println(render.Error(err))
	}
	if cmd == nil {
		return false, nil
	}

	ctx = util.WithCommand(ctx, string(cmd.Type))

	switch cmd.Type {
	case command.TypePlace:
		if _, err := c.exchange.PlaceOrder(ctx, cmd.Place); err != nil {
			return false, c.println(render.Error(err))
		}
	case command.TypeQuote:
		return false, c.println(render.Quote(c.exchange.Quote(cmd.Symbol)))
	case command.TypeViewOrders:
		return false, render.Orders(c.out, c.exchange.ViewOrders())
	case command.TypeQuit:
		c.logger.DebugContext(ctx, "quit requested")
		return true, nil
	}
	return false, nil
}

func (c *Console) writePrompt() error {
	if c.prompt == "" {
		return nil
	}
	_, err := fmt.Fprint(c.out, c.prompt)
	return err
}

func (c *Console) println(s string) error {
	_, err := fmt.Fprintln(c.out, s)
	return err
}
