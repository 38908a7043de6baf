// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package textfx provides terminal text effects for interactive shells:
// 24-bit coloring, two-color gradients, typewriter-paced output, and
// small string animations (spinner, dots, progress bar).
//
// The package is presentation-only; it never reads input and holds no
// shell state.
package textfx

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/muesli/termenv"
	"golang.org/x/time/rate"
)

// =============================================================================
// COLORS
// =============================================================================

// Color is a 24-bit RGB color.
type Color struct {
	R, G, B uint8
}

// RGB builds a Color from components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// Hex parses "RRGGBB" or "#RRGGBB".
func Hex(s string) (Color, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return Color{}, fmt.Errorf("invalid hex color %q", s)
	}
	var c Color
	if _, err := fmt.Sscanf(s, "%02x%02x%02x", &c.R, &c.G, &c.B); err != nil {
		return Color{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return c, nil
}

func (c Color) termenv() termenv.RGBColor {
	return termenv.RGBColor(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
}

// Colored wraps text in a truecolor foreground escape.
func Colored(text string, c Color) string {
	return termenv.String(text).Foreground(c.termenv()).String()
}

// Gradient colors text with a linear interpolation from start to end.
// With an empty sep every rune is a gradient step; otherwise the text
// is split on sep and each segment gets one step.
func Gradient(text string, start, end Color, sep string) string {
	var segments []string
	if sep == "" {
		for _, r := range text {
			segments = append(segments, string(r))
		}
	} else {
		segments = strings.Split(text, sep)
	}
	if len(segments) == 0 {
		return ""
	}

	steps := len(segments) - 1
	if steps < 1 {
		steps = 1
	}
	lerp := func(a, b uint8, i int) uint8 {
		return uint8(int(a) + (int(b)-int(a))*i/steps)
	}

	var b strings.Builder
	for i, seg := range segments {
		if sep != "" && i < len(segments)-1 {
			seg += sep
		}
		b.WriteString(Colored(seg, Color{
			R: lerp(start.R, end.R, i),
			G: lerp(start.G, end.G, i),
			B: lerp(start.B, end.B, i),
		}))
	}
	return b.String()
}

// =============================================================================
// TYPEWRITER OUTPUT
// =============================================================================

// Echoer writes lines with an optional typewriter animation and
// foreground color. The zero value writes plain, unpaced text.
type Echoer struct {
	// Out receives the output. Nil falls back to io.Discard.
	Out io.Writer

	// Duration is the time a whole line takes to appear. Zero disables
	// the animation.
	Duration time.Duration

	// Color, when non-nil, is applied to everything written.
	Color *Color
}

// Println writes one line, pacing characters evenly across Duration.
// The context cancels a line mid-animation.
func (e *Echoer) Println(ctx context.Context, text string) error {
	out := e.Out
	if out == nil {
		out = io.Discard
	}
	paint := func(s string) string {
		if e.Color != nil {
			return Colored(s, *e.Color)
		}
		return s
	}

	runes := []rune(text)
	if e.Duration <= 0 || len(runes) == 0 {
		_, err := fmt.Fprintln(out, paint(text))
		return err
	}

	limiter := rate.NewLimiter(rate.Every(e.Duration/time.Duration(len(runes))), 1)
	for _, r := range runes {
		if err := limiter.Wait(ctx); err != nil {
			return err
		}
		if _, err := io.WriteString(out, paint(string(r))); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(out)
	return err
}

// Printf formats and writes one line through Println.
func (e *Echoer) Printf(ctx context.Context, format string, a ...any) error {
	return e.Println(ctx, strings.TrimRight(fmt.Sprintf(format, a...), "\n"))
}

// =============================================================================
// STRING ANIMATIONS
// =============================================================================

var spinnerFrames = []string{"|", "/", "-", `\`}

// Spinner cycles the classic | / - \ frames.
type Spinner struct {
	frame int
}

// Next returns the next frame.
func (s *Spinner) Next() string {
	f := spinnerFrames[s.frame]
	s.frame = (s.frame + 1) % len(spinnerFrames)
	return f
}

// Dots cycles ".", "..", "..." right-padded to constant width.
type Dots struct {
	n int
}

// Next returns the next frame.
func (d *Dots) Next() string {
	d.n = d.n%3 + 1
	return strings.Repeat(".", d.n) + strings.Repeat(" ", 3-d.n)
}

// Bar renders a fixed-width progress bar like "███████   ".
func Bar(value, total float64, width int, char rune) string {
	if total <= 0 || width <= 0 {
		return strings.Repeat(" ", max(width, 0))
	}
	if value < 0 {
		value = 0
	}
	if value > total {
		value = total
	}
	filled := int(value / total * float64(width))
	return strings.Repeat(string(char), filled) + strings.Repeat(" ", width-filled)
}
