package bootstrap

import (
	"time"

	"github.com/jimezsa/zupro/internal/anim"
	"github.com/jimezsa/zupro/internal/eventloop"
)

const (
	SplashBadge        = "Ab Job milna hoga aasaan !"
	SplashExitDuration = 420 * time.Millisecond
	SplashExitOffset   = -420
)

// Splash is the exit transition of the splash view: it slides left and
// fades out, then hands over to the home view.
type Splash struct {
	sched      eventloop.Scheduler
	translateX float64
	opacity    float64
	tween      *anim.Handle
	exited     bool
}

func NewSplash(sched eventloop.Scheduler) *Splash {
	return &Splash{sched: sched, opacity: 1}
}

// Exit runs the transition and calls onComplete when it finishes. Calling
// Exit again while exiting is a no-op.
func (s *Splash) Exit(onComplete func()) {
	if s.tween != nil || s.exited {
		return
	}
	s.tween = anim.Start(s.sched, anim.Tween{
		From:     0,
		To:       1,
		Duration: SplashExitDuration,
		Easing:   anim.Linear,
	}, func(p float64) {
		s.translateX = SplashExitOffset * anim.EaseInOutCubic(p)
		s.opacity = 1 - anim.EaseOutQuad(p)
	}, func() {
		s.tween = nil
		s.exited = true
		if onComplete != nil {
			onComplete()
		}
	})
}

// Cancel stops the transition without calling onComplete.
func (s *Splash) Cancel() {
	if s.tween != nil {
		s.tween.Cancel()
		s.tween = nil
	}
}

func (s *Splash) TranslateX() float64 { return s.translateX }

func (s *Splash) Opacity() float64 { return s.opacity }

func (s *Splash) Exited() bool { return s.exited }
