package cmd

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/jimezsa/zupro/internal/home"
	"github.com/jimezsa/zupro/internal/render"
)

const homeHelp = `commands:
  skip <id>        hide a job until the next refresh
  apply <id>       apply for a job
  map <id>         open the job location in maps
  refresh | pull   reload the feed
  search           open the search field
  type <text>      replace the search text
  submit           submit the search
  close            close the search field
  info             toggle "How Zupro works"
  hold | release   touch down / up on the carousel
  scroll <px>      drag the carousel to an offset
  settle <px>      end a scroll at an offset
  next             advance the carousel now
  show             redraw
  quit`

// homeSession maps typed commands onto the home screen. It runs on the
// event loop only.
type homeSession struct {
	ctx     *Context
	screen  *home.Screen
	painter *render.Painter
	lastSig string
	quit    func()
}

func newHomeSession(ctx *Context, screen *home.Screen, painter *render.Painter) *homeSession {
	s := &homeSession{ctx: ctx, screen: screen, painter: painter}
	screen.Subscribe(func(home.View) { s.redraw(false) })
	return s
}

func (s *homeSession) splash() {
	if err := s.painter.Splash(); err != nil {
		s.ctx.Logger.Debug().Err(err).Msg("draw splash")
	}
}

// redraw paints the view when what it shows changed; animation frames that
// only move the offset are skipped.
func (s *homeSession) redraw(force bool) {
	if !s.screen.Mounted() {
		return
	}
	view := s.screen.View()
	sig := render.Signature(view)
	if !force && sig == s.lastSig {
		return
	}
	s.lastSig = sig
	if err := s.painter.Home(view); err != nil {
		s.ctx.Logger.Debug().Err(err).Msg("draw home")
	}
}

// Exec runs one command line. It reports false when the line was rejected.
func (s *homeSession) Exec(line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return true
	}
	name, args := strings.ToLower(fields[0]), fields[1:]

	if name == "quit" || name == "exit" {
		if s.quit != nil {
			s.quit()
		}
		return true
	}
	if name == "help" {
		fmt.Fprintln(s.ctx.Out, homeHelp)
		return true
	}
	if !s.screen.Mounted() {
		s.ctx.UI.Warnf("still loading")
		return false
	}

	switch name {
	case "skip", "apply", "map":
		if len(args) != 1 {
			return s.usage("%s <id>", name)
		}
		return s.jobAction(name, args[0])
	case "refresh":
		return s.screen.Refresh()
	case "pull":
		return s.screen.Pull()
	case "search":
		s.screen.Header().Expand()
	case "type":
		s.screen.Header().SetQuery(strings.Join(args, " "))
	case "submit":
		_, ok := s.screen.Header().Submit()
		return ok
	case "close":
		s.screen.Header().Close()
	case "info":
		if s.screen.Header().InfoVisible() {
			s.screen.Header().HideInfo()
		} else {
			s.screen.Header().ShowInfo()
		}
	case "hold":
		s.screen.Carousel().Hold()
	case "release":
		s.screen.Carousel().Release()
	case "scroll", "settle":
		if len(args) != 1 {
			return s.usage("%s <px>", name)
		}
		offset, err := strconv.ParseFloat(args[0], 64)
		if err != nil || math.IsNaN(offset) || math.IsInf(offset, 0) {
			return s.usage("%s <px>", name)
		}
		if name == "scroll" {
			s.screen.Carousel().ScrollTo(offset)
		} else {
			s.screen.Carousel().SettleAt(offset)
		}
	case "next":
		return s.screen.Carousel().Advance()
	case "show":
		s.redraw(true)
	default:
		s.ctx.UI.Warnf("unknown command: %s (try help)", name)
		return false
	}
	return true
}

func (s *homeSession) jobAction(name, id string) bool {
	var ok bool
	switch name {
	case "skip":
		ok = s.screen.Skip(id)
	case "apply":
		ok = s.screen.Apply(id)
	case "map":
		if _, found := s.screen.Store().Find(id); !found {
			break
		}
		// A failed open has already shown its notice.
		s.screen.OpenMap(id)
		return true
	}
	if !ok {
		s.ctx.UI.Warnf("no job %q in the feed", id)
	}
	return ok
}

func (s *homeSession) usage(format string, args ...any) bool {
	s.ctx.UI.Warnf("usage: "+format, args...)
	return false
}
