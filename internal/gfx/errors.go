package gfx

import (
	"errors"
	"fmt"
)

var (
	ErrResourceCreation = errors.New("graphics resource creation failed")
	ErrShaderCompile    = errors.New("shader compile failed")
	ErrProgramLink      = errors.New("program link failed")
	ErrNotReady         = errors.New("surface context not created")
)

// Stage names one step of the surface bring-up.
type Stage int

const (
	StageDisplay Stage = iota
	StageInitialize
	StageConfig
	StageSurface
	StageContext
	StageMakeCurrent
)

func (s Stage) String() string {
	switch s {
	case StageDisplay:
		return "get display"
	case StageInitialize:
		return "initialize display"
	case StageConfig:
		return "choose config"
	case StageSurface:
		return "create window surface"
	case StageContext:
		return "create context"
	case StageMakeCurrent:
		return "make current"
	}
	return fmt.Sprintf("stage(%d)", int(s))
}

// ResourceError reports which bring-up stage failed.
type ResourceError struct {
	Stage Stage
	Err   error
}

func (e *ResourceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Stage, e.Err)
	}
	return fmt.Sprintf("%s: invalid handle", e.Stage)
}

func (e *ResourceError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrResourceCreation, e.Err}
	}
	return []error{ErrResourceCreation}
}

// ShaderError carries the driver's info log.
type ShaderError struct {
	Kind Enum // VertexShader, FragmentShader, or 0 for a link failure
	Log  string
}

func (e *ShaderError) Error() string {
	switch e.Kind {
	case VertexShader:
		return fmt.Sprintf("vertex shader compile failed: %s", e.Log)
	case FragmentShader:
		return fmt.Sprintf("fragment shader compile failed: %s", e.Log)
	}
	return fmt.Sprintf("program link failed: %s", e.Log)
}

func (e *ShaderError) Unwrap() error {
	if e.Kind == 0 {
		return ErrProgramLink
	}
	return ErrShaderCompile
}
