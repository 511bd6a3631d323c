// Command smtsh is a small interactive front end for driving an SMT-LIB v2
// solver: each line typed at the prompt is parsed as a single command,
// forwarded to the solver process, and its response is printed back.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/peterh/liner"

	"github.com/alttpo/smtlib/ast"
	"github.com/alttpo/smtlib/parser"
	"github.com/alttpo/smtlib/printer"
	"github.com/alttpo/smtlib/solver"
)

const (
	historyFile = ".smtsh_history"
	prompt      = "smt> "
)

func main() {
	binary := flag.String("solver", "z3", "solver binary to launch (must accept SMT-LIB v2 on stdin/stdout)")
	timeout := flag.Duration("timeout", 5*time.Second, "timeout for launching the solver process")
	flag.Parse()

	os.Exit(run(*binary, *timeout))
}

func run(binary string, startTimeout time.Duration) (ret int) {
	ctx := context.Background()
	sv, err := solver.Start(ctx, solver.Options{
		Binary:       binary,
		Args:         []string{"-in", "-smt2"},
		StartTimeout: startTimeout,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "smtsh: %v\n", err)
		return 1
	}
	defer sv.Close()

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		_ = sv.Kill()
		ln.Close()
		os.Exit(130)
	}()

	for {
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			fmt.Println()
			return 0
		}
		if err != nil {
			return 0
		}
		if line == "" {
			continue
		}
		ln.AppendHistory(line)

		cmd, err := parser.ParseCommandFromString(line)
		if err != nil {
			fmt.Fprintf(os.Stderr, "parse error: %v\n", err)
			continue
		}

		resp, err := sv.Exec(cmd)
		if err != nil {
			fmt.Fprintf(os.Stderr, "solver error: %v\n", err)
			continue
		}
		printResponse(resp)
	}
}

func printResponse(resp ast.Response) {
	if err := printer.AsStackSafe.Response(os.Stdout, resp); err != nil {
		fmt.Fprintf(os.Stderr, "print error: %v\n", err)
		return
	}
	fmt.Println()
}
