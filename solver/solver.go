// Package solver drives an external SMT-LIB v2 solver process: it writes
// commands to the solver's stdin using the printer and reads back one
// response per command using the parser's response-kind entry points. The
// wire format is the same textual grammar the ast/lexer/parser/printer
// packages implement; this package only adds the process plumbing.
package solver

import (
	"bufio"
	"context"
	"io"
	"log"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/alttpo/smtlib/ast"
	"github.com/alttpo/smtlib/parser"
	"github.com/alttpo/smtlib/printer"
)

// Options configures how a solver process is launched.
type Options struct {
	// Binary is the solver executable name or path, e.g. "z3" or
	// "cvc5". Resolved via exec.LookPath. Defaults to "z3".
	Binary string
	// Args are extra command-line arguments passed to the solver, e.g.
	// []string{"-in", "-smt2"}.
	Args []string
	// StartTimeout bounds how long launching the process may take.
	// Zero means no timeout beyond ctx's own deadline, if any.
	StartTimeout time.Duration
	// Logger records process lifecycle events (start, exit, kill).
	// Defaults to log.Default() when nil.
	Logger *log.Logger
}

// Solver is a live connection to a solver subprocess.
type Solver struct {
	cmd      *exec.Cmd
	stdinRaw io.WriteCloser
	stdin    *bufio.Writer
	stdout   *bufio.Reader
	p        *parser.Parser
	log      *log.Logger
}

// Start launches the solver process described by opts. The caller must
// call Close (or Kill) when done to release the process.
func Start(ctx context.Context, opts Options) (*Solver, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	bin := strings.TrimSpace(opts.Binary)
	if bin == "" {
		bin = "z3"
	}
	resolved, err := exec.LookPath(bin)
	if err != nil {
		return nil, &StartError{Binary: bin, Err: err}
	}

	if opts.StartTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.StartTimeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, resolved, opts.Args...)
	stdinPipe, err := cmd.StdinPipe()
	if err != nil {
		return nil, &StartError{Binary: bin, Err: err}
	}
	stdoutPipe, err := cmd.StdoutPipe()
	if err != nil {
		return nil, &StartError{Binary: bin, Err: err}
	}
	if err := cmd.Start(); err != nil {
		return nil, &StartError{Binary: filepath.Base(resolved), Err: err}
	}
	logger.Printf("solver: started %s (pid %d)", filepath.Base(resolved), cmd.Process.Pid)

	return &Solver{
		cmd:      cmd,
		stdinRaw: stdinPipe,
		stdin:    bufio.NewWriter(stdinPipe),
		stdout:   bufio.NewReader(stdoutPipe),
		log:      logger,
	}, nil
}

// Exec sends cmd to the solver and reads back the one response it produces.
// A parse failure on the response stream is reported as an ast.Error
// response, except for CheckSat, where it is reported as
// CheckSatResponse{Status: Unknown} — a solver that emits a malformed
// check-sat answer is behaving exactly like one that ran out of resources.
func (s *Solver) Exec(cmd ast.Command) (ast.Response, error) {
	if err := printer.AsStackSafe.Command(s.stdin, cmd); err != nil {
		return nil, err
	}
	if err := s.stdin.Flush(); err != nil {
		return nil, err
	}
	if s.p == nil {
		p, err := parser.New(s.stdout)
		if err != nil {
			return nil, err
		}
		s.p = p
	}

	resp, err := s.parseResponseFor(cmd)
	if err != nil {
		if _, isCheckSat := cmd.(ast.CheckSat); isCheckSat {
			return ast.CheckSatResponse{Status: ast.Unknown}, nil
		}
		return ast.Error{Message: err.Error()}, nil
	}
	return resp, nil
}

func (s *Solver) parseResponseFor(cmd ast.Command) (ast.Response, error) {
	switch cmd.(type) {
	case ast.CheckSat:
		return s.p.ParseCheckSatResponse()
	case ast.GetAssertions:
		return s.p.ParseGetAssertionsResponse()
	case ast.GetProof:
		return s.p.ParseGetProofResponse()
	case ast.GetUnsatCore:
		return s.p.ParseGetUnsatCoreResponse()
	case ast.GetValue:
		return s.p.ParseGetValueResponse()
	case ast.GetAssignment:
		return s.p.ParseGetAssignmentResponse()
	case ast.GetOption:
		return s.p.ParseGetOptionResponse()
	case ast.GetInfo:
		return s.p.ParseGetInfoResponse()
	case ast.GetModel:
		return s.p.ParseGetModelResponse()
	default:
		return s.p.ParseGenResponse()
	}
}

// Close prints "(exit)" and closes stdin so the solver sees end-of-input,
// then waits for the process to exit on its own. Exit is print-only: a
// solver given "(exit)" terminates without producing a response, so unlike
// Exec this never tries to read one back.
func (s *Solver) Close() error {
	printErr := printer.AsStackSafe.Command(s.stdin, ast.Exit{})
	_ = s.stdin.Flush()
	_ = s.stdinRaw.Close()
	waitErr := s.cmd.Wait()
	s.logf("solver: exited: %v", waitErr)
	if printErr != nil {
		return printErr
	}
	return waitErr
}

// Kill terminates the solver process without waiting for a graceful exit.
func (s *Solver) Kill() error {
	if s.cmd.Process == nil {
		return nil
	}
	s.logf("solver: killing pid %d", s.cmd.Process.Pid)
	return s.cmd.Process.Kill()
}

// logf logs through the configured logger, or discards silently when a
// Solver was constructed without one (e.g. in tests around in-memory pipes).
func (s *Solver) logf(format string, args ...interface{}) {
	if s.log == nil {
		return
	}
	s.log.Printf(format, args...)
}
