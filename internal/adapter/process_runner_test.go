package adapter

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestHelperProcess is not a real test. It is re-executed by the tests below
// to act as a child process.
func TestHelperProcess(t *testing.T) {
	if os.Getenv("APKREPACK_HELPER_PROCESS") != "1" {
		return
	}

	args := os.Args
	for len(args) > 0 && args[0] != "--" {
		args = args[1:]
	}

	if len(args) < 2 {
		os.Exit(2)
	}

	mode, rest := args[1], args[2:]

	switch mode {
	case "echo":
		for _, a := range rest {
			fmt.Fprintln(os.Stdout, a)
		}
	case "mixed":
		fmt.Fprint(os.Stdout, "out-1\r\n")
		fmt.Fprintln(os.Stderr, "err-1")
		fmt.Fprintln(os.Stdout, "out-2")
	case "exit":
		code, _ := strconv.Atoi(rest[0])
		fmt.Fprintln(os.Stderr, "failing")
		os.Exit(code)
	case "sleep":
		time.Sleep(30 * time.Second)
	}

	os.Exit(0)
}

func helperCommand(mode string, args ...string) Command {
	return Command{
		Name: os.Args[0],
		Args: append([]string{"-test.run=TestHelperProcess", "--", mode}, args...),
		Env:  []string{"APKREPACK_HELPER_PROCESS=1"},
	}
}

func TestLocalProcessRunner_Run(t *testing.T) {
	runner := NewLocalProcessRunner(0)

	result, err := runner.Run(context.Background(), helperCommand("mixed"))

	require.NoError(t, err)
	assert.Equal(t, 0, result.ExitCode)
	assert.Equal(t, "out-1\nout-2", result.Stdout)
	assert.Equal(t, "err-1", result.Stderr)
	assert.Equal(t, "out-1\nout-2\nerr-1", result.Combined())
}

func TestLocalProcessRunner_RunNonZeroExit(t *testing.T) {
	runner := NewLocalProcessRunner(0)

	result, err := runner.Run(context.Background(), helperCommand("exit", "3"))

	require.NoError(t, err)
	assert.Equal(t, 3, result.ExitCode)
	assert.Equal(t, "failing", result.Stderr)
}

func TestLocalProcessRunner_RunMissingBinary(t *testing.T) {
	runner := NewLocalProcessRunner(0)

	result, err := runner.Run(context.Background(), Command{Name: "apkrepack-definitely-missing-binary"})

	require.Error(t, err)
	assert.Equal(t, -1, result.ExitCode)
}

func TestLocalProcessRunner_RunStreaming(t *testing.T) {
	runner := NewLocalProcessRunner(0)

	var lines []string
	code, err := runner.RunStreaming(context.Background(), helperCommand("mixed"), func(line string) {
		lines = append(lines, line)
	})

	require.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.ElementsMatch(t, []string{"out-1", "out-2", "err-1"}, lines)

	for _, line := range lines {
		assert.False(t, strings.HasSuffix(line, "\r"), "line terminators are stripped")
	}
}

func TestLocalProcessRunner_RunStreamingPreservesStdoutOrder(t *testing.T) {
	runner := NewLocalProcessRunner(0)

	var lines []string
	_, err := runner.RunStreaming(context.Background(), helperCommand("echo", "a", "b", "c"), func(line string) {
		lines = append(lines, line)
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, lines)
}

func TestLocalProcessRunner_Cancellation(t *testing.T) {
	runner := NewLocalProcessRunner(0)

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	start := time.Now()
	code, err := runner.RunStreaming(ctx, helperCommand("sleep"), nil)

	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, -1, code)
	assert.Less(t, time.Since(start), 20*time.Second)
}

func TestLocalProcessRunner_AlreadyCancelled(t *testing.T) {
	runner := NewLocalProcessRunner(0)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := runner.Run(ctx, helperCommand("echo", "x"))

	require.ErrorIs(t, err, context.Canceled)
}

func TestCommand_String(t *testing.T) {
	cmd := Command{Name: "java", Args: []string{"-jar", "tool.jar", "info"}}
	assert.Equal(t, "java -jar tool.jar info", cmd.String())
}
