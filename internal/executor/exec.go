// Package executor wraps the two external scanning tools (agentic-radar
// and semgrep) behind a common finding-producing contract. All detection
// logic lives in the tools; this package only invokes them and normalizes
// their output.
package executor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"
)

// DefaultTimeout bounds each tool invocation's wall-clock time.
const DefaultTimeout = 60 * time.Second

// FailureKind classifies why a tool invocation failed.
type FailureKind int

const (
	FailureNotFound FailureKind = iota
	FailureTimeout
	FailureExit
	FailureConfig
)

// ToolError reports a recoverable tool failure. The orchestrator degrades
// it to an empty finding list for that tool only; it never aborts the
// overall analysis.
type ToolError struct {
	Tool string
	Kind FailureKind
	Msg  string
}

func (e *ToolError) Error() string {
	return e.Tool + ": " + e.Msg
}

// execResult carries a finished subprocess's exit status and captured output.
type execResult struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// execTool runs one external tool with a wall-clock deadline. A non-zero
// exit is returned in the result, not as an error, so each adapter can
// apply its own success policy. Only failures to complete at all (missing
// binary, timeout, spawn error) produce a *ToolError.
func execTool(ctx context.Context, tool string, timeout time.Duration, bin string, args ...string) (execResult, error) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(runCtx, bin, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	// Without this, Wait can block forever on the output pipes if a killed
	// tool leaves children holding them open.
	cmd.WaitDelay = 5 * time.Second

	err := cmd.Run()
	res := execResult{Stdout: stdout.String(), Stderr: stderr.String()}
	if err == nil {
		return res, nil
	}

	if runCtx.Err() == context.DeadlineExceeded {
		return res, &ToolError{Tool: tool, Kind: FailureTimeout,
			Msg: fmt.Sprintf("execution timed out after %s", timeout)}
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		res.ExitCode = exitErr.ExitCode()
		return res, nil
	}

	if errors.Is(err, exec.ErrNotFound) {
		return res, &ToolError{Tool: tool, Kind: FailureNotFound,
			Msg: fmt.Sprintf("%s not found. Is it installed?", bin)}
	}

	return res, &ToolError{Tool: tool, Kind: FailureExit,
		Msg: fmt.Sprintf("execution error: %v", err)}
}

func stringOr(m map[string]any, key, fallback string) string {
	if s, ok := m[key].(string); ok && s != "" {
		return s
	}
	return fallback
}
