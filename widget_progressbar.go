package popup

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"golang.org/x/time/rate"
)

// ProgressBar shows completion of a long-running job. Update is meant to be
// called from worker goroutines; redraw requests are rate-limited so a tight
// worker loop cannot flood the host.
type ProgressBar struct {
	WidgetBase
	Current  float64
	MaxValue float64
	Text     string

	ShowPercentage bool
	ShowValues     bool

	limiter *rate.Limiter
}

const (
	progressBarHeight = 30
	progressPadding   = 6
	redrawInterval    = 200 * time.Millisecond
)

// NewProgressBar returns a bar counting up to maxValue, showing percentage.
func NewProgressBar(maxValue float64) *ProgressBar {
	return &ProgressBar{
		MaxValue:       maxValue,
		ShowPercentage: true,
		limiter:        rate.NewLimiter(rate.Every(redrawInterval), 1),
	}
}

// Update sets the current value and requests a redraw. Requests are
// throttled unless force is set or the bar reaches completion.
func (p *ProgressBar) Update(current float64, force bool) {
	p.Current = current
	if force || current >= p.MaxValue || p.allowRedraw() {
		p.requestRedraw()
	}
}

// SetText replaces the bar's caption.
func (p *ProgressBar) SetText(text string) {
	p.Text = text
	p.requestRedraw()
}

// SetMax replaces the completion value.
func (p *ProgressBar) SetMax(maxValue float64) {
	p.MaxValue = maxValue
	p.requestRedraw()
}

func (p *ProgressBar) allowRedraw() bool {
	if p.limiter == nil {
		p.limiter = rate.NewLimiter(rate.Every(redrawInterval), 1)
	}
	return p.limiter.Allow()
}

func (p *ProgressBar) requestRedraw() {
	if pp := rootPopup(p); pp != nil {
		pp.RequestRedraw()
	}
}

func (p *ProgressBar) Layout(ctx *Context, availWidth float32) {
	p.Width = availWidth
	p.Height = progressBarHeight
}

func (p *ProgressBar) Draw(ctx *Context) {
	pos := p.GlobalPos(ctx)
	s := ctx.Scale()
	w := p.Width * s
	h := p.Height * s

	ctx.Backend.DrawRect(pos.X, pos.Y, w, h, ctx.Theme.ProgressBackColor)
	ratio := float32(0)
	if p.MaxValue > 0 {
		ratio = clampf(float32(p.Current/p.MaxValue), 0, 1)
	}
	if ratio > 0 {
		ctx.Backend.DrawRect(pos.X, pos.Y, w*ratio, h, ctx.Theme.ProgressFillColor)
	}
	ctx.Backend.DrawRectBorder(pos.X, pos.Y, w, h, ctx.Theme.InputBorderColor, 1)

	label := p.label()
	if label == "" {
		return
	}
	fontPx := ctx.Metrics.BaseFontSize() * progressFontScale * s
	pad := progressPadding * s
	sz := ctx.Metrics.MeasureText(label, fontPx)
	x := pos.X + (w-sz.X)/2
	if sz.X > w-2*pad {
		// Keep the tail visible: drop leading characters and right-align.
		label = truncateLeft(ctx.Metrics, label, fontPx, w-2*pad)
		sz = ctx.Metrics.MeasureText(label, fontPx)
		x = pos.X + w - pad - sz.X
	}
	ctx.Backend.DrawText(label, x, pos.Y+(h-sz.Y)/2, fontPx, ctx.Theme.ProgressTextColor)
}

func (p *ProgressBar) label() string {
	parts := make([]string, 0, 3)
	if p.Text != "" {
		parts = append(parts, p.Text)
	}
	if p.ShowPercentage && p.MaxValue > 0 {
		pct := int(clampf(float32(p.Current/p.MaxValue), 0, 1) * 100)
		parts = append(parts, fmt.Sprintf("%d%%", pct))
	}
	if p.ShowValues {
		parts = append(parts, fmt.Sprintf("(%s/%s)", humanize.Ftoa(p.Current), humanize.Ftoa(p.MaxValue)))
	}
	return strings.Join(parts, " ")
}

func truncateLeft(m MetricsProvider, s string, fontPx, maxWidth float32) string {
	r := []rune(s)
	for len(r) > 1 && m.MeasureText(string(r), fontPx).X > maxWidth {
		r = r[1:]
	}
	return string(r)
}
