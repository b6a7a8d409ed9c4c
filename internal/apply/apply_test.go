package apply

import (
	"testing"

	"github.com/jimezsa/zupro/internal/models"
	"github.com/rs/zerolog"
)

type recorder struct {
	titles   []string
	messages []string
}

func (r *recorder) Notify(title, message string) {
	r.titles = append(r.titles, title)
	r.messages = append(r.messages, message)
}

func TestApplyNotifies(t *testing.T) {
	rec := &recorder{}
	New(rec, zerolog.Nop()).Apply(models.Job{ID: "1", Title: "Tile Mason"})

	if len(rec.titles) != 1 || rec.titles[0] != "Applied" {
		t.Fatalf("titles = %v", rec.titles)
	}
	if rec.messages[0] != "Request sent for Tile Mason." {
		t.Fatalf("message = %q", rec.messages[0])
	}
}

func TestApplyWithoutNotifier(t *testing.T) {
	New(nil, zerolog.Nop()).Apply(models.Job{Title: "x"})
}
