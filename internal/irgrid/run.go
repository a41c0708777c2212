package irgrid

import (
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
)

func Run(cfgPath string) error {
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return err
	}

	prims := cfg.Primitives()
	if len(prims) == 0 {
		return fmt.Errorf("config %s: no primitives", cfgPath)
	}
	DebugLog("Scene: %d primitives", len(prims))

	start := time.Now()
	grid := BuildGrid(prims, cfg.Density, cfg.Shift, cfg.SubdivThreshold)
	DebugLog("Built grid: dims=%v shift=%d cells=%d refs=%d, time: %s",
		grid.Dims, grid.Shift, grid.NumCells(), grid.NumRefs(), time.Since(start))

	start = time.Now()
	ExpandGrid(nil, grid, prims, cfg.Iterations)
	elapsed := time.Since(start)

	fmt.Printf("[STATS] cells: %s, refs: %s, entries: %s, memory: %s, expansion time: %s\n",
		humanize.Comma(int64(grid.NumCells())),
		humanize.Comma(int64(grid.NumRefs())),
		humanize.Comma(int64(grid.NumEntries())),
		humanize.Bytes(grid.MemUsage()),
		elapsed)

	if cfg.Compress {
		if err := grid.Compress(); err != nil {
			return err
		}
		fmt.Printf("[STATS] compressed memory: %s\n", humanize.Bytes(grid.MemUsage()))
	}

	if cfg.GridOut != "" {
		f, err := os.Create(cfg.GridOut)
		if err != nil {
			return fmt.Errorf("creating %s: %w", cfg.GridOut, err)
		}
		defer f.Close()
		if err := SaveGrid(f, grid); err != nil {
			return err
		}
		DebugLog("Saved grid to %s", cfg.GridOut)
	}
	return nil
}
