package solver

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"os"
	"os/exec"
	"strings"
	"testing"

	"github.com/alttpo/smtlib/ast"
)

// newTestSolver builds a Solver around in-memory buffers instead of a real
// subprocess, so Exec's write/read/dispatch logic can be exercised without
// spawning a solver binary. stdoutText is what the "solver" has already
// produced by the time Exec reads its response.
func newTestSolver(stdoutText string) (*Solver, *bytes.Buffer) {
	var in bytes.Buffer
	return &Solver{
		stdin:  bufio.NewWriter(&in),
		stdout: bufio.NewReader(strings.NewReader(stdoutText)),
	}, &in
}

func TestExecDispatchesResponseParser(t *testing.T) {
	tests := []struct {
		name       string
		cmd        ast.Command
		stdoutText string
		want       ast.Response
	}{
		{"check-sat", ast.CheckSat{}, "sat\n", ast.CheckSatResponse{Status: ast.Sat}},
		{"get-assertions", ast.GetAssertions{}, "((> x 0))\n", nil},
		{"get-value", ast.NewGetValue(ast.NewQualifiedIdentifier(ast.SimpleIdentifier{Symbol: ast.NewSymbol("x")})),
			"((x 1))\n", nil},
		{"get-option", ast.GetOption{Option: ast.NewKeyword("print-success")}, "true\n", nil},
		{"assert falls back to gen response", ast.Assert{Term: ast.NewQualifiedIdentifier(ast.SimpleIdentifier{Symbol: ast.NewSymbol("true")})},
			"success\n", ast.Success{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sv, _ := newTestSolver(tt.stdoutText)
			got, err := sv.Exec(tt.cmd)
			if err != nil {
				t.Fatalf("Exec error: %v", err)
			}
			if tt.want != nil && got != tt.want {
				t.Errorf("Exec(%T) = %#v, want %#v", tt.cmd, got, tt.want)
			}
			if got == nil {
				t.Errorf("Exec(%T) returned nil response", tt.cmd)
			}
		})
	}
}

func TestExecWritesCommandBeforeReadingResponse(t *testing.T) {
	sv, in := newTestSolver("success\n")
	if _, err := sv.Exec(ast.CheckSat{}); err != nil {
		t.Fatalf("Exec error: %v", err)
	}
	if got := in.String(); got != "(check-sat)\n" {
		t.Errorf("written command = %q, want %q", got, "(check-sat)\n")
	}
}

func TestExecCheckSatParseFailureMapsToUnknown(t *testing.T) {
	sv, _ := newTestSolver("not-a-valid-status\n")
	resp, err := sv.Exec(ast.CheckSat{})
	if err != nil {
		t.Fatalf("Exec error: %v", err)
	}
	got, ok := resp.(ast.CheckSatResponse)
	if !ok {
		t.Fatalf("Exec(CheckSat) = %#v, want ast.CheckSatResponse", resp)
	}
	if got.Status != ast.Unknown {
		t.Errorf("Status = %v, want Unknown", got.Status)
	}
}

func TestExecOtherCommandParseFailureMapsToError(t *testing.T) {
	sv, _ := newTestSolver("(this is not a get-value response")
	resp, err := sv.Exec(ast.NewGetValue(ast.NewQualifiedIdentifier(ast.SimpleIdentifier{Symbol: ast.NewSymbol("x")})))
	if err != nil {
		t.Fatalf("Exec error: %v", err)
	}
	if _, ok := resp.(ast.Error); !ok {
		t.Errorf("Exec(GetValue) with malformed output = %#v, want ast.Error", resp)
	}
}

func TestExecReusesParserAcrossCalls(t *testing.T) {
	sv, _ := newTestSolver("sat\nunsat\n")
	first, err := sv.Exec(ast.CheckSat{})
	if err != nil {
		t.Fatalf("first Exec error: %v", err)
	}
	if first.(ast.CheckSatResponse).Status != ast.Sat {
		t.Fatalf("first response = %v, want Sat", first)
	}
	second, err := sv.Exec(ast.CheckSat{})
	if err != nil {
		t.Fatalf("second Exec error: %v", err)
	}
	if second.(ast.CheckSatResponse).Status != ast.Unsat {
		t.Fatalf("second response = %v, want Unsat", second)
	}
}

// TestExitHelperProcess is not a real test; it is re-executed as a child
// process by TestCloseWritesExitWithoutReadingAResponse, following the same
// pattern os/exec's own tests use to get a real, controllable subprocess.
// It echoes whatever it reads from stdin back to stdout and exits once
// stdin is closed, never producing output before that point.
func TestExitHelperProcess(t *testing.T) {
	if os.Getenv("SMTLIB_WANT_HELPER_PROCESS") != "1" {
		return
	}
	data, _ := io.ReadAll(os.Stdin)
	os.Stdout.Write(data)
	os.Exit(0)
}

func TestCloseWritesExitWithoutReadingAResponse(t *testing.T) {
	cmd := exec.Command(os.Args[0], "-test.run=TestExitHelperProcess")
	cmd.Env = append(os.Environ(), "SMTLIB_WANT_HELPER_PROCESS=1")
	stdinPipe, err := cmd.StdinPipe()
	if err != nil {
		t.Fatalf("StdinPipe: %v", err)
	}
	// The child's stdout is a pipe the test owns rather than cmd.StdoutPipe,
	// because Close waits for the process and Wait closes any pipe that
	// StdoutPipe created, which would leave nothing to read afterwards.
	stdoutRead, stdoutWrite, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe: %v", err)
	}
	defer stdoutRead.Close()
	cmd.Stdout = stdoutWrite
	if err := cmd.Start(); err != nil {
		t.Fatalf("starting helper process: %v", err)
	}
	stdoutWrite.Close()

	sv := &Solver{
		cmd:      cmd,
		stdinRaw: stdinPipe,
		stdin:    bufio.NewWriter(stdinPipe),
		stdout:   bufio.NewReader(stdoutRead),
	}

	// The helper only writes anything after it observes EOF on its stdin.
	// If Close tried to read a response before closing stdin (the bug being
	// fixed), this call would block forever waiting on a byte the child
	// cannot produce yet.
	if err := sv.Close(); err != nil {
		t.Fatalf("Close error: %v", err)
	}

	echoed, err := io.ReadAll(sv.stdout)
	if err != nil {
		t.Fatalf("reading echoed stdin: %v", err)
	}
	if string(echoed) != "(exit)\n" {
		t.Errorf("child received %q, want %q", echoed, "(exit)\n")
	}
}

func TestStartErrorMessageAndUnwrap(t *testing.T) {
	errPathNotFound := errors.New("executable file not found in $PATH")
	inner := &StartError{Binary: "nonexistent-solver-binary", Err: errPathNotFound}
	if !strings.Contains(inner.Error(), "nonexistent-solver-binary") {
		t.Errorf("Error() = %q, want it to mention the binary name", inner.Error())
	}
	if inner.Unwrap() != errPathNotFound {
		t.Errorf("Unwrap() = %v, want %v", inner.Unwrap(), errPathNotFound)
	}
}
