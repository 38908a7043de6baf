// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// wizcli.go - The CLI session object and its read-tokenize-resolve-
// dispatch loop.
//
// One CLI owns one Registry; nothing is process-global, so several
// independent shells can coexist in one process. The loop is strictly
// sequential: one full cycle completes before the next line is read,
// and handlers run synchronously on the loop goroutine. Every failure
// below the loop is contained and rendered as a single diagnostic line.

package wizcli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/peterh/liner"
	"golang.org/x/text/unicode/norm"

	"github.com/jeranaias/wizcli/clilog"
	"github.com/jeranaias/wizcli/internal/termio"
	"github.com/jeranaias/wizcli/textfx"
)

// DefaultPrompt is the prompt format; it receives the user name and the
// session working path, in that order.
const DefaultPrompt = `[%s]@[%s]\> `

var diagStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))

// =============================================================================
// SESSION OBJECT
// =============================================================================

// CLI is one interactive shell session. Construct with New, register
// commands, then Run. The registry is owned by the session; it is
// populated during setup and may also accept registrations from inside
// a handler (the loop resolves against the map only between cycles, so
// insertion never invalidates an in-progress resolution).
type CLI struct {
	registry *Registry

	user         string
	promptFormat string
	home         string
	path         string
	title        string

	anim  bool
	cool  time.Duration
	color *textfx.Color

	out    io.Writer
	in     io.Reader
	logger *clilog.Logger
}

// Option configures a CLI at construction time.
type Option func(*CLI)

// WithUser sets the user name shown in the prompt.
func WithUser(user string) Option {
	return func(c *CLI) { c.user = user }
}

// WithPrompt sets the prompt format. It must contain two %s verbs,
// receiving the user name and the working path.
func WithPrompt(format string) Option {
	return func(c *CLI) { c.promptFormat = format }
}

// WithHome sets the home path: the initial working path and the
// default target of change-directory.
func WithHome(path string) Option {
	return func(c *CLI) { c.home = path }
}

// WithTitle sets the terminal window title for the session.
func WithTitle(title string) Option {
	return func(c *CLI) { c.title = title }
}

// WithAnimation enables typewriter output; each line takes perLine to
// appear. Animation only applies when stdout is a terminal.
func WithAnimation(perLine time.Duration) Option {
	return func(c *CLI) { c.anim = true; c.cool = perLine }
}

// WithColor sets the foreground color of all shell output.
func WithColor(color textfx.Color) Option {
	return func(c *CLI) { c.color = &color }
}

// WithOutput redirects shell output. Defaults to os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(c *CLI) { c.out = w }
}

// WithInput reads lines from r instead of the interactive terminal.
// Line editing and history are unavailable in this mode.
func WithInput(r io.Reader) Option {
	return func(c *CLI) { c.in = r }
}

// WithLogger attaches a session logger.
func WithLogger(l *clilog.Logger) Option {
	return func(c *CLI) { c.logger = l }
}

// New creates a shell session with the built-in commands registered.
func New(opts ...Option) *CLI {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	c := &CLI{
		registry:     NewRegistry(),
		user:         "wizcli",
		promptFormat: DefaultPrompt,
		home:         home,
		out:          os.Stdout,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.path = c.home
	return c
}

// Registry returns the session's command registry.
func (c *CLI) Registry() *Registry {
	return c.registry
}

// Command registers a command on the session registry.
func (c *CLI) Command(cmd Command) error {
	return c.registry.Register(cmd)
}

// SetBuiltin toggles a built-in command before the session starts
// accepting input.
func (c *CLI) SetBuiltin(name string, enabled bool) {
	c.registry.SetBuiltin(name, enabled)
}

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Context gives handlers access to the session without coupling them
// to the CLI construction site.
type Context struct {
	cli *CLI
	ctx context.Context
}

// Context returns the context of the running dispatch.
func (h *Context) Context() context.Context {
	if h.ctx == nil {
		return context.Background()
	}
	return h.ctx
}

// Printf writes plain formatted output to the shell.
func (h *Context) Printf(format string, a ...any) {
	fmt.Fprintf(h.cli.out, format, a...)
}

// Echo writes a line through the session's output settings (color and
// typewriter animation when enabled).
func (h *Context) Echo(text string) {
	h.cli.echoLine(h.Context(), text)
}

// User returns the session user name.
func (h *Context) User() string { return h.cli.user }

// Home returns the configured home path.
func (h *Context) Home() string { return h.cli.home }

// Path returns the session working path shown in the prompt.
func (h *Context) Path() string { return h.cli.path }

// SetPath replaces the session working path.
func (h *Context) SetPath(path string) { h.cli.path = path }

// Registry returns the session registry, e.g. for help rendering or
// for registering commands from inside a handler.
func (h *Context) Registry() *Registry { return h.cli.registry }

// ClearScreen resets the terminal display.
func (h *Context) ClearScreen() {
	termio.ClearScreen(h.cli.out)
}

// =============================================================================
// REPL LOOP
// =============================================================================

// Run drives the shell until quit, end of input, an interrupt, or
// context cancellation. Parse errors, unknown commands and handler
// failures are reported as diagnostics and never end the loop.
func (c *CLI) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if c.title != "" {
		if f, ok := c.out.(*os.File); ok && termio.IsTTY(f) {
			termio.SetWindowTitle(c.out, c.title)
		}
	}
	c.logger.Printf("session started user=%s home=%s", c.user, c.home)

	reader := c.newLineReader()
	defer reader.Close()

	for {
		if ctx.Err() != nil {
			c.logger.Printf("session interrupted")
			return nil
		}

		line, err := reader.ReadLine(c.renderPrompt())
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
				c.logger.Printf("session ended")
				return nil
			}
			return err
		}

		line = norm.NFC.String(strings.TrimSpace(line))
		tokens := Tokenize(line)
		if len(tokens) == 0 {
			continue
		}
		c.logger.Printf("input: %s", line)

		rec, err := c.registry.Resolve(tokens[0])
		if err != nil {
			c.diag(ctx, fmt.Sprintf("%s doesn't exist.\nDo help to get the list of existing commands.", tokens[0]))
			continue
		}

		if err := c.Dispatch(ctx, rec, tokens); err != nil {
			if errors.Is(err, ErrQuit) {
				c.logger.Printf("session ended")
				return nil
			}
			c.diag(ctx, err.Error())
		}
	}
}

// Dispatch parses tokens against the resolved record and either invokes
// the handler once, emits the cached help text (on -?), or returns one
// parse error. Never more than one of the three.
func (c *CLI) Dispatch(ctx context.Context, rec *CommandRecord, tokens []string) error {
	args, wantHelp, err := parseArgs(rec, tokens)
	if err != nil {
		return err
	}
	if wantHelp {
		c.echoLine(ctx, rec.Help)
		return nil
	}
	return c.invoke(ctx, rec, args)
}

// invoke runs the handler, containing panics so a misbehaving command
// surfaces as a diagnostic instead of tearing down the loop.
func (c *CLI) invoke(ctx context.Context, rec *CommandRecord, args Args) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%s: panic: %v", rec.Name, r)
		}
	}()
	if rec.Handler == nil {
		return nil
	}
	return rec.Handler(&Context{cli: c, ctx: ctx}, args)
}

func (c *CLI) renderPrompt() string {
	return fmt.Sprintf(c.promptFormat, c.user, c.path)
}

// echoLine writes one line honoring the session color and animation.
func (c *CLI) echoLine(ctx context.Context, text string) {
	e := textfx.Echoer{Out: c.out, Color: c.color}
	if c.anim {
		if f, ok := c.out.(*os.File); ok && termio.IsTTY(f) {
			e.Duration = c.cool
		}
	}
	// A canceled context only cuts the animation short; the text is
	// already on screen up to that point.
	_ = e.Println(ctx, text)
}

// diag reports one recoverable failure as a single styled line.
func (c *CLI) diag(ctx context.Context, msg string) {
	c.logger.Printf("error: %s", msg)
	if c.color == nil {
		msg = diagStyle.Render(msg)
	}
	c.echoLine(ctx, msg)
}

// =============================================================================
// LINE INPUT
// =============================================================================

// lineReader abstracts the blocking one-line read: liner on a real
// terminal, a buffered reader for pipes and tests.
type lineReader interface {
	ReadLine(prompt string) (string, error)
	Close() error
}

func (c *CLI) newLineReader() lineReader {
	if c.in != nil {
		return &bufferedReader{out: c.out, r: bufio.NewReader(c.in)}
	}
	if termio.IsTTY(os.Stdin) {
		state := liner.NewLiner()
		state.SetCtrlCAborts(true)
		return &linerReader{state: state}
	}
	return &bufferedReader{out: c.out, r: bufio.NewReader(os.Stdin)}
}

// linerReader reads with line editing and in-session history.
type linerReader struct {
	state *liner.State
}

func (l *linerReader) ReadLine(prompt string) (string, error) {
	input, err := l.state.Prompt(prompt)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(input) != "" {
		l.state.AppendHistory(input)
	}
	return input, nil
}

func (l *linerReader) Close() error {
	return l.state.Close()
}

// bufferedReader reads plain lines, echoing the prompt itself.
type bufferedReader struct {
	out io.Writer
	r   *bufio.Reader
}

func (b *bufferedReader) ReadLine(prompt string) (string, error) {
	fmt.Fprint(b.out, prompt)
	line, err := b.r.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (b *bufferedReader) Close() error { return nil }
