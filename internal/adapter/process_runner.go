package adapter

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

const (
	maxLineSize      = 1024 * 1024
	defaultWaitDelay = 5 * time.Second
)

// Command describes one external process invocation.
type Command struct {
	Name string
	Args []string
	Dir  string
	// Env is appended to the current process environment.
	Env []string
}

func (c Command) String() string {
	return strings.TrimSpace(c.Name + " " + strings.Join(c.Args, " "))
}

// RunResult holds the captured output of a finished process.
type RunResult struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Combined returns stdout followed by stderr.
func (r RunResult) Combined() string {
	switch {
	case r.Stdout == "":
		return r.Stderr
	case r.Stderr == "":
		return r.Stdout
	}

	return r.Stdout + "\n" + r.Stderr
}

// LineFunc receives one output line without its terminator.
type LineFunc func(line string)

// ProcessRunner executes external commands.
type ProcessRunner interface {
	// Run executes the command to completion and captures its output. A
	// non-zero exit is reported through RunResult.ExitCode, not as an error.
	Run(ctx context.Context, cmd Command) (RunResult, error)

	// RunStreaming executes the command and delivers every stdout and stderr
	// line to onLine as it is produced. onLine is never called concurrently.
	RunStreaming(ctx context.Context, cmd Command, onLine LineFunc) (int, error)
}

// LocalProcessRunner runs commands through os/exec without a visible console.
type LocalProcessRunner struct {
	timeout   time.Duration
	waitDelay time.Duration
}

// NewLocalProcessRunner constructs a LocalProcessRunner. A zero timeout means
// the caller's context is the only deadline.
func NewLocalProcessRunner(timeout time.Duration) *LocalProcessRunner {
	return &LocalProcessRunner{
		timeout:   timeout,
		waitDelay: defaultWaitDelay,
	}
}

// Run executes the command and captures stdout and stderr separately.
func (r *LocalProcessRunner) Run(ctx context.Context, cmd Command) (RunResult, error) {
	var stdout, stderr []string

	code, err := r.stream(ctx, cmd,
		func(line string) { stdout = append(stdout, line) },
		func(line string) { stderr = append(stderr, line) },
	)

	result := RunResult{
		ExitCode: code,
		Stdout:   strings.Join(stdout, "\n"),
		Stderr:   strings.Join(stderr, "\n"),
	}

	return result, err
}

// RunStreaming executes the command and forwards output lines in arrival order.
func (r *LocalProcessRunner) RunStreaming(ctx context.Context, cmd Command, onLine LineFunc) (int, error) {
	var mu sync.Mutex

	deliver := func(line string) {
		if onLine == nil {
			return
		}

		mu.Lock()
		defer mu.Unlock()

		onLine(line)
	}

	return r.stream(ctx, cmd, deliver, deliver)
}

func (r *LocalProcessRunner) stream(ctx context.Context, c Command, onStdout, onStderr LineFunc) (int, error) {
	if err := ctx.Err(); err != nil {
		return -1, err
	}

	if r.timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	// #nosec G204 - the command is assembled from resolved tool paths
	cmd := exec.CommandContext(ctx, c.Name, c.Args...)
	cmd.Dir = c.Dir
	cmd.SysProcAttr = sysProcAttr()
	cmd.WaitDelay = r.waitDelay

	if len(c.Env) > 0 {
		cmd.Env = append(os.Environ(), c.Env...)
	}

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return -1, fmt.Errorf("stdout pipe for %s: %w", c.Name, err)
	}

	stderr, err := cmd.StderrPipe()
	if err != nil {
		return -1, fmt.Errorf("stderr pipe for %s: %w", c.Name, err)
	}

	if err := cmd.Start(); err != nil {
		return -1, fmt.Errorf("start %s: %w", c.Name, err)
	}

	var group errgroup.Group

	group.Go(func() error { return scanLines(stdout, onStdout) })
	group.Go(func() error { return scanLines(stderr, onStderr) })

	drainErr := group.Wait()
	waitErr := cmd.Wait()

	if ctxErr := ctx.Err(); ctxErr != nil {
		return -1, fmt.Errorf("%s: %w", c.Name, ctxErr)
	}

	if waitErr != nil {
		var exitErr *exec.ExitError
		if errors.As(waitErr, &exitErr) {
			return exitErr.ExitCode(), nil
		}

		return -1, fmt.Errorf("wait %s: %w", c.Name, waitErr)
	}

	if drainErr != nil {
		return 0, fmt.Errorf("read output of %s: %w", c.Name, drainErr)
	}

	return 0, nil
}

func scanLines(r io.Reader, onLine LineFunc) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if onLine != nil {
			onLine(line)
		}
	}

	err := scanner.Err()
	if err != nil {
		// keep the child from blocking on a full pipe
		_, _ = io.Copy(io.Discard, r)
	}

	if errors.Is(err, os.ErrClosed) {
		return nil
	}

	return err
}
