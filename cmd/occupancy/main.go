// Command occupancy prints the occupancy table of one floor from an offline
// dataset: a SQL dump (one INSERT per line) or the JSON document served by /api/data.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/m04kA/SMC-RoomOccupancy/internal/config"
	"github.com/m04kA/SMC-RoomOccupancy/internal/domain"
	"github.com/m04kA/SMC-RoomOccupancy/internal/occupancy"
	"github.com/m04kA/SMC-RoomOccupancy/internal/records"
	"github.com/m04kA/SMC-RoomOccupancy/internal/sqldump"
	"github.com/m04kA/SMC-RoomOccupancy/internal/view"
	"github.com/m04kA/SMC-RoomOccupancy/pkg/logger"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "occupancy: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("occupancy", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		input      = fs.String("data", "", "path to a SQL dump (.sql) or a JSON dataset (.json)")
		configPath = fs.String("config", "", "optional config.toml with the [[floors]] table")
		day        = fs.String("day", "", "day of week (default: first available)")
		period     = fs.String("period", "", "period (default: first available)")
		floor      = fs.Int("floor", 0, "floor number, may be negative (default: lowest floor)")
		logLevel   = fs.String("log-level", "error", "log level")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *input == "" {
		fs.Usage()
		return fmt.Errorf("-data is required")
	}

	log, err := logger.New("", *logLevel)
	if err != nil {
		return err
	}
	defer log.Close()

	var floors domain.FloorCatalog
	if *configPath != "" {
		cfg, err := config.Load(*configPath)
		if err != nil {
			return err
		}
		floors = domain.NewFloorCatalog(cfg.FloorConfigs())
	}

	doc, err := readDocument(*input, log)
	if err != nil {
		return err
	}

	ds, rejected := records.Normalize(doc)
	for _, rowErr := range rejected {
		fmt.Fprintf(stderr, "rejected: %v\n", rowErr)
	}

	ctrl := view.NewController(occupancy.Build(ds), floors)
	change := view.Change{}
	if *day != "" {
		change.Day = day
	}
	if *period != "" {
		change.Period = period
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "floor" {
			change.Floor = floor
		}
	})
	ctrl.Update(change)

	return printFrame(stdout, ctrl.Render(view.Viewport{}))
}

func readDocument(path string, log *logger.Logger) (*records.Document, error) {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		var doc records.Document
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}
		return &doc, nil
	}

	return sqldump.NewFileSource(path, log).LoadDocument(context.Background())
}

func printFrame(w io.Writer, frame view.Frame) error {
	sel := frame.Selection
	fmt.Fprintf(w, "%s, %s, period %s\n\n", frame.FloorLabel, sel.Day, sel.Period)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ROOM\tSTATUS")
	for _, row := range frame.Table {
		fmt.Fprintf(tw, "%s\t%s\n", row.RoomNumber, row.Detail)
	}
	return tw.Flush()
}
