package console

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
)

// Console reads moves from and renders the game to a text terminal.
type Console struct {
	logger *slog.Logger

	reader *bufio.Reader
	writer io.Writer
}

func New(logger *slog.Logger, in io.Reader, out io.Writer) *Console {
	return &Console{
		logger: logger.With("component", "console"),
		reader: bufio.NewReader(in),
		writer: out,
	}
}

func (that *Console) printf(format string, args ...any) {
	if _, err := fmt.Fprintf(that.writer, format, args...); err != nil {
		that.logger.Warn("could not write to console", "error", err)
	}
}
