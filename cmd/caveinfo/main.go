// Package main provides the caveinfo binary, which prints the prepared unit
// list of a sublevel and records or verifies it against a reference ordering.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/gookit/color"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/cory-johannsen/cavegen/internal/caveinfo"
	"github.com/cory-johannsen/cavegen/internal/config"
	"github.com/cory-johannsen/cavegen/internal/observability"
	"github.com/cory-johannsen/cavegen/internal/storage/postgres"
	"github.com/cory-johannsen/cavegen/internal/sublevel"
)

func main() {
	configPath := flag.String("config", "configs/dev.yaml", "path to configuration file")
	cavesDir := flag.String("caves", "", "override content.caves_dir")
	id := flag.String("sublevel", "", "sublevel to prepare, e.g. SCx7 or SH-2")
	record := flag.Bool("record", false, "record the prepared ordering as the reference")
	verify := flag.Bool("verify", false, "compare the prepared ordering with the latest recorded reference")
	list := flag.Bool("list", false, "list every known sublevel and exit")
	flag.Parse()

	if *id == "" && !*list {
		fmt.Fprintln(os.Stderr, "usage: caveinfo -sublevel <id> [-config <path>] [-caves <dir>] [-record | -verify] | -list")
		os.Exit(1)
	}
	if *record && *verify {
		fmt.Fprintln(os.Stderr, "-record and -verify are mutually exclusive")
		os.Exit(1)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}
	if *cavesDir != "" {
		cfg.Content.CavesDir = *cavesDir
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	registry := sublevel.NewRegistry(sublevel.DirSource{Dir: cfg.Content.CavesDir}, logger)
	if err := registry.EnsureInitialized(); err != nil {
		logger.Fatal("loading sublevels", zap.String("dir", cfg.Content.CavesDir), zap.Error(err))
	}

	if *list {
		for _, name := range registry.Names() {
			fmt.Println(name)
		}
		return
	}

	floor, err := registry.Lookup(*id)
	if errors.Is(err, sublevel.ErrNotFound) {
		logger.Fatal("unknown sublevel", zap.String("sublevel", *id), zap.Strings("known", registry.Names()))
	}
	if err != nil {
		logger.Fatal("looking up sublevel", zap.Error(err))
	}

	printUnits(os.Stdout, floor, term.IsTerminal(int(os.Stdout.Fd())))

	if !*record && !*verify {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		logger.Fatal("connecting to database", zap.Error(err))
	}
	defer pool.Close()
	repo := pool.Orderings()

	key, err := caveinfo.FloorKey(floor)
	if err != nil {
		logger.Fatal("naming sublevel", zap.Error(err))
	}
	keys := caveinfo.Keys(floor.CaveUnits)

	if *record {
		orderingID, err := repo.Save(ctx, key, keys)
		if err != nil {
			logger.Fatal("recording ordering", zap.Error(err))
		}
		logger.Info("recorded reference ordering",
			zap.String("sublevel", key),
			zap.Stringer("id", orderingID),
			zap.Int("units", len(keys)),
		)
		return
	}

	ref, err := repo.Latest(ctx, key)
	if err != nil {
		logger.Fatal("loading reference ordering", zap.String("sublevel", key), zap.Error(err))
	}
	if err := caveinfo.VerifyOrdering(ref.Units, floor.CaveUnits); err != nil {
		logger.Error("ordering diverges from reference",
			zap.String("sublevel", key),
			zap.Stringer("reference", ref.ID),
			observability.Ordering(keys),
			zap.Error(err),
		)
		os.Exit(2)
	}
	logger.Info("ordering matches reference",
		zap.String("sublevel", key),
		zap.Stringer("reference", ref.ID),
	)
}

var roomTypeStyles = map[caveinfo.RoomType]color.Style{
	caveinfo.RoomTypeDeadEnd: {color.FgGray},
	caveinfo.RoomTypeRoom:    {color.FgGreen, color.OpBold},
	caveinfo.RoomTypeHallway: {color.FgCyan},
}

// printUnits writes one line per prepared unit. Room types are colored when styled is set.
func printUnits(w io.Writer, floor *caveinfo.FloorInfo, styled bool) {
	name, _ := floor.Name()
	fmt.Fprintf(w, "%s: %d units (max %d doors in one unit)\n", name, len(floor.CaveUnits), floor.MaxNumDoorsSingleUnit())
	for i, u := range floor.CaveUnits {
		rt := fmt.Sprintf("%-8s", u.RoomType)
		if style, ok := roomTypeStyles[u.RoomType]; ok && styled {
			rt = style.Sprint(rt)
		}
		fmt.Fprintf(w, "%4d  %-32s r%d  %dx%d  %s doors=%d\n",
			i, u.UnitFolderName, u.Rotation, u.Width, u.Height, rt, u.NumDoors)
	}
}
