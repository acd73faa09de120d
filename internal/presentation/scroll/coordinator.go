package scroll

import (
	"github.com/mwynn/careerdeck/internal/core/model"
)

// Bounds marks where a section starts inside the virtual document. A
// negative Top means the section could not be located in the current
// document; such sections are skipped during evaluation, which is not an
// error condition.
type Bounds struct {
	ID  model.SectionID
	Top int
}

// Coordinator tracks the scroll position of the virtual document and
// derives the currently active section. It is the sole writer of the
// active-section state; the navigation bar observes it through the
// onChange callback and Active().
//
// The activation rule biases toward the section dominating the view: a
// section qualifies once the scroll offset plus a third of the viewport
// height has passed its top boundary, and among all qualifying sections
// the last one in document order wins.
type Coordinator struct {
	bounds    []Bounds
	docHeight int
	viewport  int
	offset    int
	target    int
	active    model.SectionID
	onChange  func(model.SectionID)
}

// NewCoordinator creates a coordinator publishing active-section changes
// through onChange (which may be nil).
func NewCoordinator(onChange func(model.SectionID)) *Coordinator {
	return &Coordinator{onChange: onChange}
}

// SetDocument installs the section boundaries and total document height,
// then re-evaluates eagerly so the active section is never a stale default.
func (c *Coordinator) SetDocument(bounds []Bounds, docHeight int) {
	c.bounds = bounds
	c.docHeight = docHeight
	c.clamp()
	c.evaluate()
}

// SetViewport updates the visible height and re-evaluates.
func (c *Coordinator) SetViewport(height int) {
	if height < 1 {
		height = 1
	}
	c.viewport = height
	c.clamp()
	c.evaluate()
}

// Offset returns the current scroll offset (top visible document line).
func (c *Coordinator) Offset() int {
	return c.offset
}

// Active returns the currently active section.
func (c *Coordinator) Active() model.SectionID {
	return c.active
}

// ScrollBy moves the offset by delta lines and cancels any in-flight
// smooth scroll.
func (c *Coordinator) ScrollBy(delta int) {
	c.ScrollTo(c.offset + delta)
}

// ScrollTo jumps directly to the given offset.
func (c *Coordinator) ScrollTo(offset int) {
	c.offset = offset
	c.clamp()
	c.target = c.offset
	c.evaluate()
}

// ScrollToSection starts a smooth scroll toward the section's top
// boundary. The actual movement happens over subsequent Animate calls.
func (c *Coordinator) ScrollToSection(id model.SectionID) {
	for _, b := range c.bounds {
		if b.ID == id && b.Top >= 0 {
			c.target = c.clampValue(b.Top)
			return
		}
	}
}

// Animate advances an in-flight smooth scroll by one frame and reports
// whether the offset moved. Each frame covers a third of the remaining
// distance, at least one line, which converges in a handful of frames.
func (c *Coordinator) Animate() bool {
	remaining := c.target - c.offset
	if remaining == 0 {
		return false
	}

	step := remaining / 3
	if step == 0 {
		if remaining > 0 {
			step = 1
		} else {
			step = -1
		}
	}

	c.offset += step
	c.clamp()
	c.evaluate()
	return true
}

// MaxOffset returns the largest valid scroll offset.
func (c *Coordinator) MaxOffset() int {
	max := c.docHeight - c.viewport
	if max < 0 {
		max = 0
	}
	return max
}

func (c *Coordinator) clamp() {
	c.offset = c.clampValue(c.offset)
	c.target = c.clampValue(c.target)
}

func (c *Coordinator) clampValue(v int) int {
	if v < 0 {
		return 0
	}
	if max := c.MaxOffset(); v > max {
		return max
	}
	return v
}

// evaluate computes the active section. O(len(bounds)) per call; the
// active field and the onChange publication are untouched when the result
// is unchanged, so observers see no redundant updates.
func (c *Coordinator) evaluate() {
	threshold := c.offset + c.viewport/3

	// Iterate bottom-up: the last qualifying section in document order wins.
	for i := len(c.bounds) - 1; i >= 0; i-- {
		b := c.bounds[i]
		if b.Top < 0 {
			continue
		}
		if threshold >= b.Top {
			c.publish(b.ID)
			return
		}
	}
}

func (c *Coordinator) publish(id model.SectionID) {
	if id == c.active {
		return
	}
	c.active = id
	if c.onChange != nil {
		c.onChange(id)
	}
}
