package backend

import (
	"errors"
	"fmt"
	"strings"
)

// Shader failures reported by CompileProgram, matched with errors.Is.
var (
	ErrCompile = errors.New("shader compile failed")
	ErrLink    = errors.New("shader link failed")
)

// CompileError carries the driver's diagnostics for one shader stage.
type CompileError struct {
	Stage string
	Log   string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("%s shader: %s", e.Stage, strings.TrimRight(e.Log, "\x00\n "))
}

// Is reports ErrCompile.
func (e *CompileError) Is(target error) bool {
	return target == ErrCompile
}

// LinkError carries the driver's diagnostics for a failed link.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return "link: " + strings.TrimRight(e.Log, "\x00\n ")
}

// Is reports ErrLink.
func (e *LinkError) Is(target error) bool {
	return target == ErrLink
}
