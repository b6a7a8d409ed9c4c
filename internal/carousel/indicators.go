package carousel

import "math"

// Dot is one page indicator. Opacity and Scale are continuous in the scroll
// offset so they follow the finger and the autoplay animation frame by
// frame.
type Dot struct {
	Index   int
	Opacity float64
	Scale   float64
	Active  bool
}

const (
	dotMinOpacity = 0.5
	dotMaxScale   = 1.3
)

func Indicators(offset, width float64, count int) []Dot {
	if count <= 0 {
		return nil
	}
	active := IndexAt(offset, width, count)
	dots := make([]Dot, count)
	for i := range dots {
		distance := 1.0
		if width > 0 {
			distance = math.Min(math.Abs(offset-float64(i)*width)/width, 1)
		}
		dots[i] = Dot{
			Index:   i,
			Opacity: 1 - (1-dotMinOpacity)*distance,
			Scale:   1 + (dotMaxScale-1)*(1-distance),
			Active:  i == active,
		}
	}
	return dots
}
