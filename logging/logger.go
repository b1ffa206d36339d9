// Package logging builds the zap logger used by the statement command.
package logging

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/warp/statement-engine/billing"
)

// New returns a JSON production logger at the given level
// (debug, info, warn, error), writing to os.Stderr.
func New(level string) (*zap.Logger, error) {
	return NewWithWriter(level, os.Stderr)
}

// NewWithWriter is New with the log sink supplied by the caller.
func NewWithWriter(level string, w io.Writer) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		zapcore.AddSync(w),
		zap.NewAtomicLevelAt(lvl),
	)
	return zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel)), nil
}

// StatementFields summarizes a computed statement for a log entry.
func StatementFields(result *billing.StatementResult) []zap.Field {
	if result == nil {
		return nil
	}
	return []zap.Field{
		zap.String("customer", result.Customer),
		zap.Int("line_items", len(result.LineItems)),
		zap.Int64("total_amount_cents", int64(result.TotalAmount)),
		zap.Int("total_credits", result.TotalCredits),
	}
}
