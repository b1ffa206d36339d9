/*
main.go - Statement command entry point

PURPOSE:
  Computes one customer statement and writes it in the requested format.
  Handles configuration, input loading and output; all pricing happens in
  the billing package.

RUN SEQUENCE:
  1. Load config file + env, then apply command-line flags
  2. Load catalog and invoice (files or a built-in scenario)
  3. Compute the statement
  4. Render/export and write to stdout or -out

COMMAND-LINE FLAGS:
  -config    YAML config file (default: $STATEMENT_CONFIG)
  -catalog   Catalog file (.json, .yaml, .yml)
  -invoice   Invoice file (.json, .yaml, .yml)
  -scenario  Built-in scenario instead of files (bigco, bigco-legacy)
  -format    text, xml, pdf or xlsx (default: text)
  -out       Output file (default: stdout)
  -log-level debug, info, warn, error (default: info)

EXAMPLES:
  ./statement -scenario=bigco
  ./statement -catalog=plays.yaml -invoice=invoice.json -format=xml
  ./statement -scenario=bigco -format=pdf -out=bigco.pdf

EXIT CODES:
  0 success, 1 runtime failure, 2 invalid input or configuration

SEE ALSO:
  - config/config.go: Config file and env variables
  - factory/factory.go: Input documents
*/
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/warp/statement-engine/billing"
	"github.com/warp/statement-engine/config"
	"github.com/warp/statement-engine/factory"
	"github.com/warp/statement-engine/logging"
	"github.com/warp/statement-engine/render"
	"github.com/warp/statement-engine/theater"
)

// errUsage marks failures caused by flags or configuration.
var errUsage = errors.New("usage")

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := parseConfig(args, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "statement: %v\n", err)
		return 2
	}

	logger, err := logging.NewWithWriter(cfg.LogLevel, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "statement: %v\n", err)
		return 2
	}
	defer logger.Sync() //nolint:errcheck

	if err := execute(cfg, stdout, logger); err != nil {
		logger.Error("statement failed", zap.Error(err))
		if errors.Is(err, errUsage) || billing.IsClientError(err) {
			return 2
		}
		return 1
	}
	return 0
}

// parseConfig layers flags over the config file and environment.
func parseConfig(args []string, stderr io.Writer) (config.Config, error) {
	fs := flag.NewFlagSet("statement", flag.ContinueOnError)
	fs.SetOutput(stderr)

	configPath := fs.String("config", "", "YAML config file")
	catalogPath := fs.String("catalog", "", "catalog file (.json, .yaml, .yml)")
	invoicePath := fs.String("invoice", "", "invoice file (.json, .yaml, .yml)")
	scenario := fs.String("scenario", "", fmt.Sprintf("built-in scenario %v", theater.ScenarioIDs()))
	format := fs.String("format", "", "output format: text, xml, pdf, xlsx")
	out := fs.String("out", "", "output file (default stdout)")
	logLevel := fs.String("log-level", "", "log level: debug, info, warn, error")

	if err := fs.Parse(args); err != nil {
		return config.Config{}, err
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return cfg, err
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "catalog":
			cfg.CatalogPath = *catalogPath
		case "invoice":
			cfg.InvoicePath = *invoicePath
		case "scenario":
			cfg.Scenario = *scenario
		case "format":
			cfg.Format = *format
		case "out":
			cfg.OutputPath = *out
		case "log-level":
			cfg.LogLevel = *logLevel
		}
	})

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func execute(cfg config.Config, stdout io.Writer, logger *zap.Logger) error {
	format, err := render.ParseFormat(cfg.Format)
	if err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}

	invoice, catalog, err := loadInputs(cfg)
	if err != nil {
		return err
	}
	logger.Debug("inputs loaded",
		zap.String("customer", invoice.Customer),
		zap.Int("performances", len(invoice.Performances)),
		zap.Int("plays", catalog.Len()),
	)

	result, err := billing.ComputeStatement(invoice, catalog)
	if err != nil {
		return err
	}
	logger.Info("statement computed", logging.StatementFields(result)...)

	out, err := render.Encode(result, format)
	if err != nil {
		return err
	}

	if cfg.OutputPath == "" {
		_, err = stdout.Write(out)
		return err
	}
	if err := os.WriteFile(cfg.OutputPath, out, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	logger.Info("statement written", zap.String("path", cfg.OutputPath), zap.String("format", string(format)))
	return nil
}

func loadInputs(cfg config.Config) (billing.Invoice, *billing.PlayCatalog, error) {
	if cfg.Scenario != "" {
		sc, err := theater.LookupScenario(cfg.Scenario)
		if err != nil {
			return billing.Invoice{}, nil, fmt.Errorf("%w: %v", errUsage, err)
		}
		return sc.Invoice, sc.Catalog, nil
	}

	catalog, err := factory.LoadCatalog(cfg.CatalogPath)
	if err != nil {
		return billing.Invoice{}, nil, err
	}
	invoice, err := factory.LoadInvoice(cfg.InvoicePath)
	if err != nil {
		return billing.Invoice{}, nil, err
	}
	return invoice, catalog, nil
}
