package cmd

import (
	"fmt"

	"github.com/jimezsa/zupro/internal/feed"
	"github.com/jimezsa/zupro/internal/maps"
	"github.com/jimezsa/zupro/internal/models"
)

type OpenCmd struct {
	ID   string `arg:"" help:"Job ID."`
	Seed string `help:"Seed file with the jobs to show (JSON5)." type:"path"`
}

// Run mirrors the card's map action: an unavailable maps app is a notice,
// not a failure.
func (o *OpenCmd) Run(ctx *Context) error {
	seed, err := loadSeed(ctx, o.Seed)
	if err != nil {
		return err
	}
	job, ok := feed.NewStore(seed).Find(o.ID)
	if !ok {
		return fmt.Errorf("job %q not found", o.ID)
	}

	openJobMap(ctx, job, maps.NewBrowserOpener())
	return nil
}

func openJobMap(ctx *Context, job models.Job, opener maps.Opener) bool {
	if !maps.OpenOrNotify(opener, job.MapURL, ctx.UI, ctx.Logger) {
		return false
	}
	ctx.UI.Infof("Opened %s", ctx.UI.LinkText(job.MapURL))
	return true
}
