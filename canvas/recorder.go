package canvas

import "image/color"

// Op is a drawing operation recorded by a Recorder.
type Op struct {
	Name     string
	Args     []float64
	Color    color.NRGBA
	Gradient *LinearGradient
	// LineWidth is the line width in effect for Stroke operations.
	LineWidth float64
}

// Recorder is a Surface that records drawing operations instead of
// rendering them.
type Recorder struct {
	width, height int
	Ops           []Op
	Clears        int
}

func NewRecorder(width, height int) *Recorder {
	return &Recorder{width: width, height: height}
}

func (r *Recorder) Width() int  { return r.width }
func (r *Recorder) Height() int { return r.height }

func (r *Recorder) Clear() {
	r.Ops = nil
	r.Clears++
}

func (r *Recorder) Draw(fn func(ctx Context, width, height float64)) {
	ctx := &recordingContext{recorder: r, stateStack: stateStack{state: defaultState()}}
	fn(ctx, float64(r.width), float64(r.height))
}

// Count returns the number of recorded operations with the given name.
func (r *Recorder) Count(name string) int {
	n := 0
	for _, op := range r.Ops {
		if op.Name == name {
			n++
		}
	}
	return n
}

// Find returns the recorded operations with the given name.
func (r *Recorder) Find(name string) []Op {
	var ops []Op
	for _, op := range r.Ops {
		if op.Name == name {
			ops = append(ops, op)
		}
	}
	return ops
}

type recordingContext struct {
	stateStack
	recorder *Recorder
}

func (c *recordingContext) record(op Op) {
	c.recorder.Ops = append(c.recorder.Ops, op)
}

func (c *recordingContext) BeginPath()          { c.record(Op{Name: "beginPath"}) }
func (c *recordingContext) ClosePath()          { c.record(Op{Name: "closePath"}) }
func (c *recordingContext) MoveTo(x, y float64) { c.record(Op{Name: "moveTo", Args: []float64{x, y}}) }
func (c *recordingContext) LineTo(x, y float64) { c.record(Op{Name: "lineTo", Args: []float64{x, y}}) }

func (c *recordingContext) Arc(x, y, radius, startAngle, endAngle float64) {
	c.record(Op{Name: "arc", Args: []float64{x, y, radius, startAngle, endAngle}})
}

func (c *recordingContext) Stroke() {
	c.record(Op{Name: "stroke", Color: c.stroke.color, Gradient: c.stroke.gradient, LineWidth: c.lineWidth})
}

func (c *recordingContext) Fill() {
	c.record(Op{Name: "fill", Color: c.fill.color})
}
