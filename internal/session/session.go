// Package session runs one interactive round of the game over line-based
// input and output.
//
// A Session publishes the commitment digest, shows the menu, then reads lines
// until the user picks a move or exits. Help and invalid input re-prompt
// without touching the commitment, so the key revealed at the end is always
// the one the digest was computed with.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/rpsfair/internal/fairness"
	"github.com/lox/rpsfair/internal/moveset"
	"github.com/lox/rpsfair/internal/outcome"
)

// Input commands
const (
	ExitCommand = "0"
	HelpCommand = "?"
)

// ErrClosed is returned when Run is called on a closed session.
var ErrClosed = errors.New("session closed")

// Result describes how a session ended.
type Result int

const (
	// Exited means the user left without playing.
	Exited Result = iota
	// Played means the user chose a move and the key was revealed.
	Played
)

func (r Result) String() string {
	switch r {
	case Exited:
		return "exited"
	case Played:
		return "played"
	default:
		return "unknown"
	}
}

// Round holds the moves of a completed game.
type Round struct {
	UserMove     int
	ComputerMove int
	Outcome      outcome.Outcome
}

// Session is a single game between the user and the computer.
type Session struct {
	moves   moveset.MoveSet
	commit *fairness.Commitment
	input  *lineReader
	closer io.Closer
	out    io.Writer
	styles *Styles
	logger *log.Logger

	round  *Round
	closed bool
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the diagnostic logger.
func WithLogger(logger *log.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// WithStyles overrides the output styles.
func WithStyles(styles *Styles) Option {
	return func(s *Session) {
		s.styles = styles
	}
}

// New creates a session reading user input from in and writing to out. If in
// is an io.Closer the session owns it and closes it in Close.
func New(ms moveset.MoveSet, commit *fairness.Commitment, in io.Reader, out io.Writer, opts ...Option) *Session {
	s := &Session{
		moves:  ms,
		commit: commit,
		input:  newLineReader(in),
		out:    out,
	}
	if c, ok := in.(io.Closer); ok {
		s.closer = c
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.styles == nil {
		s.styles = NewStyles(out, false)
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}
	return s
}

// Close stops reading input and closes the input if it is an io.Closer.
// It is safe to call more than once.
func (s *Session) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.input.stop()
	s.logger.Debug("Session closed")
	if s.closer != nil {
		return s.closer.Close()
	}
	return nil
}

// LastRound returns the completed round, or nil if the user did not play.
func (s *Session) LastRound() *Round {
	return s.round
}

// Run plays the session to completion and closes it on every return path.
// End of input is treated like the exit command. Cancelling ctx ends the
// session even while it waits for a line.
func (s *Session) Run(ctx context.Context) (Result, error) {
	if s.closed {
		return Exited, ErrClosed
	}
	defer s.Close()

	s.logger.Info("Session started", "moves", s.moves.Len())
	s.showCommitment()
	s.showMenu()

	s.input.start()
	for {
		if err := ctx.Err(); err != nil {
			return Exited, s.cancelled(err)
		}

		fmt.Fprint(s.out, s.styles.Prompt.Render("Enter your move:")+" ")

		var res lineResult
		select {
		case <-ctx.Done():
			fmt.Fprintln(s.out)
			return Exited, s.cancelled(ctx.Err())
		case res = <-s.input.lines:
		}

		switch {
		case errors.Is(res.err, errLineTooLong):
			s.logger.Debug("Input line too long", "max", MaxLineLength)
			fmt.Fprintln(s.out, s.styles.Error.Render("Invalid input. Please try again."))
			continue
		case errors.Is(res.err, io.EOF):
			fmt.Fprintln(s.out)
			s.logger.Debug("Input closed, exiting")
			s.exit()
			return Exited, nil
		case res.err != nil:
			return Exited, fmt.Errorf("failed to read input: %w", res.err)
		}
		line := strings.TrimSpace(res.line)

		switch line {
		case ExitCommand:
			s.exit()
			return Exited, nil
		case HelpCommand:
			s.logger.Debug("Help requested")
			fmt.Fprintln(s.out, RenderHelp(s.moves, s.styles))
			continue
		}

		choice, ok := s.parseMove(line)
		if !ok {
			s.logger.Debug("Invalid input", "input", line)
			fmt.Fprintln(s.out, s.styles.Error.Render("Invalid input. Please try again."))
			continue
		}

		s.play(choice)
		return Played, nil
	}
}

func (s *Session) cancelled(err error) error {
	s.logger.Warn("Session cancelled", "error", err)
	return err
}

// parseMove maps a 1-based menu entry to a move index.
func (s *Session) parseMove(line string) (int, bool) {
	n, err := strconv.Atoi(line)
	if err != nil {
		return 0, false
	}
	if !s.moves.Contains(n - 1) {
		return 0, false
	}
	return n - 1, true
}

func (s *Session) showCommitment() {
	fmt.Fprintf(s.out, "HMAC: %s\n", s.styles.Digest.Render(s.commit.Digest()))
}

func (s *Session) showMenu() {
	fmt.Fprintln(s.out, s.styles.Header.Render("Available moves:"))
	for i, name := range s.moves.Names() {
		fmt.Fprintln(s.out, s.styles.Menu.Render(fmt.Sprintf("%d - %s", i+1, name)))
	}
	fmt.Fprintln(s.out, s.styles.Info.Render(ExitCommand+" - exit"))
	fmt.Fprintln(s.out, s.styles.Info.Render(HelpCommand+" - help"))
}

func (s *Session) exit() {
	s.logger.Info("Game exited without a move")
	fmt.Fprintln(s.out, "Game exited.")
}

func (s *Session) play(user int) {
	computer := s.commit.Move()
	result := outcome.Resolve(user, computer, s.moves.Len())
	s.round = &Round{
		UserMove:     user,
		ComputerMove: computer,
		Outcome:      result,
	}
	s.logger.Info("Round resolved",
		"user", s.moves.Name(user),
		"computer", s.moves.Name(computer),
		"outcome", result)

	fmt.Fprintf(s.out, "Your move: %s\n", s.moves.Name(user))
	fmt.Fprintf(s.out, "Computer move: %s\n", s.commit.MoveName())
	fmt.Fprintln(s.out, s.verdictStyle(result).Render(result.Verdict()))
	fmt.Fprintf(s.out, "HMAC key: %s\n", s.commit.Reveal())
}

func (s *Session) verdictStyle(o outcome.Outcome) lipgloss.Style {
	switch o {
	case outcome.Win:
		return s.styles.Win
	case outcome.Lose:
		return s.styles.Lose
	default:
		return s.styles.Draw
	}
}
