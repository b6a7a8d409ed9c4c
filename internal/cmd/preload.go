package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/jimezsa/zupro/internal/models"
	"github.com/jimezsa/zupro/internal/preload"
	"github.com/jimezsa/zupro/internal/ui"
)

type PreloadCmd struct {
	Images  []string `arg:"" optional:"" help:"Image paths or URLs (default: configured hero images)."`
	Proxies string   `help:"Comma-separated proxy URLs." env:"ZUPRO_PROXIES"`
}

type preloadRow struct {
	Ref      string `json:"ref"`
	Resolved string `json:"resolved,omitempty"`
	Bytes    int    `json:"bytes"`
	Error    string `json:"error,omitempty"`
}

func (p *PreloadCmd) Run(ctx *Context) error {
	heroes := ctx.Config.Heroes()
	if len(p.Images) > 0 {
		heroes = make([]models.HeroImage, 0, len(p.Images))
		for _, ref := range p.Images {
			heroes = append(heroes, models.HeroImage{Ref: ref})
		}
	}
	if len(heroes) == 0 {
		return fmt.Errorf("no hero images configured")
	}

	preloader, err := newPreloader(ctx, p.Proxies)
	if err != nil {
		return err
	}

	spinner := ui.StartSpinner(ctx.Err, "Preloading...")
	report := preloader.Warm(context.Background(), heroes)
	spinner.Stop()

	return writePreloadReport(ctx, report)
}

func writePreloadReport(ctx *Context, report preload.Report) error {
	rows := make([]preloadRow, 0, len(report.Results))
	for _, res := range report.Results {
		row := preloadRow{Ref: res.Ref, Bytes: res.Bytes}
		if res.Resolved != res.Ref {
			row.Resolved = res.Resolved
		}
		if res.Err != nil {
			row.Error = res.Err.Error()
		}
		rows = append(rows, row)
	}

	if ctx.JSONOutput {
		enc := json.NewEncoder(ctx.Out)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	}

	tw := tabwriter.NewWriter(ctx.Out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ref\tsize\tresolved\terror")
	total := 0
	for _, row := range rows {
		size := "-"
		if row.Error == "" {
			size = humanize.Bytes(uint64(row.Bytes))
			total += row.Bytes
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", row.Ref, size, row.Resolved, row.Error)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if failed := report.Failed(); failed > 0 {
		ctx.UI.Warnf("%d of %d images failed to preload", failed, len(rows))
	} else {
		ctx.UI.Successf("Preloaded %d images (%s)", report.Warmed(), humanize.Bytes(uint64(total)))
	}
	return nil
}
