// Command httpmethod reports how method names are validated, canonicalized
// and encoded on the wire.
//
// Usage:
//
//	httpmethod [-format text|json] [-wire] [METHOD...]
//
// With no arguments the well-known methods are listed.
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/shapestone/shape-httpmethod/internal/method"
	"github.com/shapestone/shape-httpmethod/internal/qpack"
	"github.com/shapestone/shape-httpmethod/pkg/http"
)

type config struct {
	format string
	wire   bool
	names  []string
}

func parseFlags(args []string) (*config, error) {
	fs := flag.NewFlagSet("httpmethod", flag.ContinueOnError)
	cfg := &config{}
	fs.StringVar(&cfg.format, "format", "text", "log output format: text or json")
	fs.BoolVar(&cfg.wire, "wire", false, "include HTTP/2 and HTTP/3 :method encodings")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if cfg.format != "text" && cfg.format != "json" {
		return nil, fmt.Errorf("unknown format %q", cfg.format)
	}
	cfg.names = fs.Args()
	return cfg, nil
}

func main() {
	// Set logging output level
	if os.Getenv("DEBUG") == "true" {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}
	log.SetOutput(os.Stdout)

	cfg, err := parseFlags(os.Args[1:])
	if err != nil {
		log.WithError(err).Fatal("unable to parse flags")
	}

	if cfg.format == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	}

	if failed := run(log.StandardLogger(), cfg); failed > 0 {
		log.Debugf("%d method(s) rejected", failed)
		os.Exit(1)
	}
}

// run describes each configured method and returns the number rejected.
func run(logger *log.Logger, cfg *config) int {
	if len(cfg.names) == 0 {
		for _, m := range method.Known() {
			describe(logger, m, cfg.wire)
		}
		return 0
	}

	failed := 0
	for _, name := range cfg.names {
		m, err := http.NewMethod(name)
		if err != nil {
			logger.WithError(err).WithField("input", name).Error("invalid method")
			failed++
			continue
		}
		describe(logger, m, cfg.wire)
	}
	return failed
}

func describe(logger *log.Logger, m *http.Method, wire bool) {
	normalized := http.NormalizeMethod(m)
	entry := logger.WithFields(log.Fields{
		"method":        m,
		"normalized":    normalized,
		"canonical":     normalized.EncodedBytes() != nil,
		"requires_body": http.RequiresRequestBody(normalized),
	})

	if wire {
		h3 := http.AppendQPACKMethod(nil, normalized)
		entry = entry.WithFields(log.Fields{
			"qpack": hex.EncodeToString(h3),
			"hpack": hex.EncodeToString(http.AppendHPACKMethod(nil, normalized)),
		})
		if f, _, err := qpack.DecodeFieldLine(h3); err != nil {
			entry.WithError(err).Warn("qpack field line does not decode")
		} else {
			entry.Debugf("qpack decodes to %s: %s", f.Name, f.Value)
		}
	}

	entry.Info("method")
}
