package header

import (
	"testing"

	"github.com/jimezsa/zupro/internal/models"
)

const location = "Mumbai, Maharashtra"

func TestExpandPrefillsDefaultLocation(t *testing.T) {
	c := New(location, nil)
	if c.Mode() != ModeCollapsed {
		t.Fatalf("initial Mode() = %v, want collapsed", c.Mode())
	}
	c.Expand()
	if c.Mode() != ModeExpanded || c.Query() != location {
		t.Fatalf("after Expand mode=%v query=%q", c.Mode(), c.Query())
	}
}

func TestSubmitTrimsAndForwards(t *testing.T) {
	var got []models.SearchParams
	c := New(location, SearchFunc(func(p models.SearchParams) { got = append(got, p) }))

	if _, ok := c.Submit(); ok {
		t.Fatalf("Submit() while collapsed ok = true")
	}

	c.Expand()
	c.SetQuery("  Andheri East \t")
	params, ok := c.Submit()
	if !ok {
		t.Fatalf("Submit() ok = false")
	}
	if params.Query != "Andheri East" || params.Location != location {
		t.Fatalf("Submit() = %+v", params)
	}
	if len(got) != 1 || got[0] != params {
		t.Fatalf("handler got %+v, want one call with %+v", got, params)
	}
	if c.Mode() != ModeExpanded {
		t.Fatalf("Submit() collapsed the field")
	}
}

func TestCloseDiscardsEditWithoutSubmitting(t *testing.T) {
	calls := 0
	c := New(location, SearchFunc(func(models.SearchParams) { calls++ }))

	c.Expand()
	c.SetQuery("Thane")
	c.Close()

	if calls != 0 {
		t.Fatalf("Close() submitted %d times", calls)
	}
	if c.Mode() != ModeCollapsed || c.Query() != location {
		t.Fatalf("after Close mode=%v query=%q", c.Mode(), c.Query())
	}

	c.SetQuery("ignored")
	if c.Query() != location {
		t.Fatalf("SetQuery while collapsed changed query to %q", c.Query())
	}

	c.Expand()
	if c.Query() != location {
		t.Fatalf("re-opened field has %q, want default", c.Query())
	}
}

func TestSubscribeSeesModeChanges(t *testing.T) {
	c := New(location, nil)
	var modes []Mode
	stop := c.Subscribe(func(s State) { modes = append(modes, s.Mode) })

	c.Expand()
	c.Expand()
	c.Close()
	stop()
	c.Expand()

	if len(modes) != 2 || modes[0] != ModeExpanded || modes[1] != ModeCollapsed {
		t.Fatalf("modes = %v", modes)
	}
}

func TestInfoSheet(t *testing.T) {
	c := New(location, nil)
	c.ShowInfo()
	if !c.InfoVisible() {
		t.Fatalf("InfoVisible() = false after ShowInfo")
	}
	c.HideInfo()
	if c.InfoVisible() {
		t.Fatalf("InfoVisible() = true after HideInfo")
	}
	if len(Steps) != 4 {
		t.Fatalf("len(Steps) = %d, want 4", len(Steps))
	}
}
