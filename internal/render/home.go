package render

import (
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/jimezsa/zupro/internal/bootstrap"
	"github.com/jimezsa/zupro/internal/carousel"
	"github.com/jimezsa/zupro/internal/header"
	"github.com/jimezsa/zupro/internal/home"
	"github.com/jimezsa/zupro/internal/models"
	"github.com/jimezsa/zupro/internal/pay"
	"github.com/muesli/termenv"
)

const (
	EmptyTitle    = "No more jobs in this feed."
	EmptyHint     = "Pull to refresh to check for new postings."
	Refreshing    = "Refreshing..."
	LoadingJobs   = "Loading jobs..."
	InfoTitle     = "How Zupro works"
	accentColor   = "#FF7A00"
	inactiveColor = "#9E9E9E"
)

// Painter writes home view frames to a terminal.
type Painter struct {
	w      io.Writer
	output *termenv.Output
	opts   Options
}

func NewPainter(w io.Writer, opts Options) *Painter {
	return &Painter{w: w, output: termenv.NewOutput(w), opts: opts}
}

func (p *Painter) Splash() error {
	_, err := fmt.Fprintf(p.w, "%s\n%s\n", p.accent("zupro"), bootstrap.SplashBadge)
	return err
}

// Home draws one full frame of the home view.
func (p *Painter) Home(v home.View) error {
	var b strings.Builder
	p.header(&b, v.Header, v.Spinner)
	p.hero(&b, v)
	b.WriteString("\n")

	switch {
	case v.Loading:
		b.WriteString(LoadingJobs + "\n")
	case v.Empty:
		b.WriteString(p.bold(EmptyTitle) + "\n")
		b.WriteString(EmptyHint + "\n")
	default:
		for _, job := range v.Jobs {
			p.card(&b, job)
		}
	}
	if v.Header.InfoVisible {
		p.info(&b)
	}

	_, err := io.WriteString(p.w, b.String())
	return err
}

func (p *Painter) header(b *strings.Builder, st header.State, spinner bool) {
	if st.Mode == header.ModeExpanded {
		fmt.Fprintf(b, "Search: %s_   [close]\n", st.Query)
	} else {
		fmt.Fprintf(b, "%s   [search] [refresh] [info]\n", p.bold(header.Title))
	}
	if spinner {
		b.WriteString(p.accent(Refreshing) + "\n")
	}
}

func (p *Painter) hero(b *strings.Builder, v home.View) {
	if len(v.Heroes) == 0 {
		return
	}
	cs := v.Carousel
	active := cs.ActiveIndex
	if active >= len(v.Heroes) {
		active = 0
	}
	item := v.Heroes[active]
	name := item.Alt
	if name == "" {
		name = path.Base(item.Ref)
	}
	status := ""
	if cs.Held {
		status = " (held)"
	}
	fmt.Fprintf(b, "[%d/%d] %s%s\n", active+1, len(v.Heroes), name, status)
	b.WriteString(p.dots(v.Dots) + "\n")
}

// Dots renders indicators: the dot nearest the offset is filled.
func (p *Painter) dots(dots []carousel.Dot) string {
	parts := make([]string, 0, len(dots))
	for _, dot := range dots {
		if dot.Active {
			parts = append(parts, p.accent("●"))
			continue
		}
		parts = append(parts, p.color("○", inactiveColor))
	}
	return strings.Join(parts, " ")
}

func (p *Painter) card(b *strings.Builder, job models.Job) {
	label := pay.Parse(job.PayLabel)
	fmt.Fprintf(b, "%s  (%s)\n", p.bold(safe(job.Title)), safe(job.ID))
	fmt.Fprintf(b, "  %s · Joining %s\n", dash(job.Location), dash(job.JoiningDate))
	fmt.Fprintf(b, "  %s: %s\n", label.Heading(), dash(label.Amount))
	fmt.Fprintf(b, "  [skip] [apply] [map %s]\n\n", mapLink(p.output, job.MapURL, p.opts))
}

func (p *Painter) info(b *strings.Builder) {
	b.WriteString(p.bold(InfoTitle) + "\n")
	for i, step := range header.Steps {
		fmt.Fprintf(b, "  %d. %s: %s\n", i+1, step.Label, step.Desc)
	}
}

func (p *Painter) bold(text string) string {
	if !p.opts.ColorEnabled {
		return text
	}
	return p.output.String(text).Bold().String()
}

func (p *Painter) accent(text string) string {
	return p.color(text, accentColor)
}

func (p *Painter) color(text, hex string) string {
	if !p.opts.ColorEnabled {
		return text
	}
	return p.output.String(text).Foreground(p.output.Color(hex)).String()
}

// Signature identifies what a frame shows, ignoring animation progress, so
// callers can skip redrawing identical frames.
func Signature(v home.View) string {
	ids := make([]string, 0, len(v.Jobs))
	for _, job := range v.Jobs {
		ids = append(ids, job.ID)
	}
	return fmt.Sprintf("%d|%s|%t|%t|%t|%s|%d|%q|%t",
		v.Carousel.ActiveIndex,
		v.Carousel.Phase,
		v.Carousel.Held,
		v.Loading,
		v.Spinner,
		strings.Join(ids, ","),
		v.Header.Mode,
		v.Header.Query,
		v.Header.InfoVisible,
	)
}
