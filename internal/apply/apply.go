// Package apply confirms job applications. There is no backend yet, so an
// application is only acknowledged to the user.
package apply

import (
	"fmt"

	"github.com/jimezsa/zupro/internal/models"
	"github.com/rs/zerolog"
)

const Title = "Applied"

// Notifier shows a user-visible notice.
type Notifier interface {
	Notify(title, message string)
}

type Applier struct {
	notifier Notifier
	logger   zerolog.Logger
}

func New(notifier Notifier, logger zerolog.Logger) *Applier {
	return &Applier{notifier: notifier, logger: logger}
}

func (a *Applier) Apply(job models.Job) {
	a.logger.Debug().Str("job_id", job.ID).Str("title", job.Title).Msg("apply")
	if a.notifier == nil {
		return
	}
	a.notifier.Notify(Title, Message(job))
}

func Message(job models.Job) string {
	return fmt.Sprintf("Request sent for %s.", job.Title)
}
