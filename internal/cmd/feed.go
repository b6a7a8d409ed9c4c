package cmd

import (
	"io"
	"os"
	"path/filepath"

	"github.com/jimezsa/zupro/internal/feed"
	"github.com/jimezsa/zupro/internal/render"
	"github.com/jimezsa/zupro/internal/ui"
)

type FeedCmd struct {
	Skip   []string `help:"Job IDs to skip (comma-separated)."`
	Format string   `help:"Output format: table, csv, tsv, json, md." enum:",table,csv,tsv,json,md" default:""`
	Output string   `name:"output" short:"o" help:"Write output to a file."`
	Seed   string   `help:"Seed file with the jobs to show (JSON5)." type:"path"`
}

func (f *FeedCmd) Run(ctx *Context) error {
	seed, err := loadSeed(ctx, f.Seed)
	if err != nil {
		return err
	}

	store := feed.NewStore(seed)
	store.Initialize()
	for _, id := range f.Skip {
		store.Remove(id)
	}

	format, err := resolveFormat(ctx, f.Format, f.Output)
	if err != nil {
		return err
	}

	out := ctx.Out
	var file *os.File
	if f.Output != "" {
		if err := os.MkdirAll(filepath.Dir(f.Output), 0o755); err != nil {
			return err
		}
		file, err = os.Create(f.Output)
		if err != nil {
			return err
		}
		defer file.Close()
		out = file
	}

	opts := render.Options{}
	if file == nil && format == render.FormatTable && ctx.UI != nil {
		opts.ColorEnabled = ctx.UI.ColorEnabled
		opts.Hyperlinks = isTTY(out)
	}
	if err := render.WriteJobs(out, store.Jobs(), format, opts); err != nil {
		return err
	}

	if file != nil {
		ctx.UI.Successf("Wrote %d jobs to %s", store.Len(), f.Output)
	} else if store.Empty() && format == render.FormatTable {
		ctx.UI.Infof("%s %s", render.EmptyTitle, render.EmptyHint)
	}
	return nil
}

func resolveFormat(ctx *Context, format string, outputPath string) (render.Format, error) {
	if ctx.JSONOutput {
		return render.FormatJSON, nil
	}
	if ctx.PlainText {
		return render.FormatTSV, nil
	}
	if format != "" {
		return render.ParseFormat(format)
	}
	if outputPath != "" {
		return render.FormatCSV, nil
	}
	if isTTY(ctx.Out) {
		return render.FormatTable, nil
	}
	return render.FormatCSV, nil
}

func isTTY(out io.Writer) bool {
	if out == nil {
		return false
	}
	return ui.IsTTY(out)
}
