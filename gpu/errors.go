// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/glkit/gpu/gl"
)

// Error kinds returned by resource construction and draw execution.
// Errors returned by this package wrap one of these, so callers
// can test with errors.Is.
var (
	ErrEmptyData                    = errors.New("empty data")
	ErrLayoutMismatch               = errors.New("layout mismatch")
	ErrAllocationFailure            = errors.New("allocation failure")
	ErrInvalidIndexRange            = errors.New("invalid index range")
	ErrAttributeNotFound            = errors.New("attribute not found")
	ErrInvalidDimensions            = errors.New("invalid dimensions")
	ErrUnsupportedFormatCombination = errors.New("unsupported format combination")
	ErrFramebufferIncomplete        = errors.New("framebuffer incomplete")
	ErrStencilUnsupported           = errors.New("stencil attachments are not supported")
	ErrShaderDeleted                = errors.New("shader has been deleted")
	ErrShaderStage                  = errors.New("wrong shader stage")
	ErrLinkFailure                  = errors.New("link failure")
	ErrMissingUniformDefault        = errors.New("missing uniform default")
	ErrInvalidRange                 = errors.New("invalid range")
	ErrAttributeTypeMismatch        = errors.New("attribute type mismatch")
	ErrTextureUnitConflict          = errors.New("texture unit conflict")
	ErrUniformUpdateFailure         = errors.New("uniform update failure")
	ErrInvalidInstanceCount         = errors.New("invalid instance count")
	ErrDrawFailure                  = errors.New("draw failure")
	ErrStackEmpty                   = errors.New("framebuffer stack is empty")
	ErrUnsupportedContext           = errors.New("unsupported context")
)

// AttributeTypeMismatchError reports a vertex shader input whose GLSL
// type does not match the numeric shape supplied by the VAO.
type AttributeTypeMismatchError struct {
	// Attribute is the shader input name.
	Attribute string

	// Location is the linked location of the input.
	Location int

	// Actual is the shape the VAO supplies, as a GLSL type name.
	Actual string

	// Expected is the GLSL type the shader declares.
	Expected string
}

func (e *AttributeTypeMismatchError) Error() string {
	return fmt.Sprintf("attribute type mismatch: %q at location %d: VAO supplies %s, shader expects %s", e.Attribute, e.Location, e.Actual, e.Expected)
}

func (e *AttributeTypeMismatchError) Unwrap() error { return ErrAttributeTypeMismatch }

// IncompleteReason is the cause of a framebuffer completeness failure.
type IncompleteReason int32 //enums:enum -trim-prefix Incomplete

const (
	// IncompleteAttachment means an attachment has no usable storage.
	IncompleteAttachment IncompleteReason = iota

	// IncompleteDimensions means attachments differ in size.
	IncompleteDimensions

	// IncompleteMissingAttachment means there are no attachments.
	IncompleteMissingAttachment

	// IncompleteUnsupported means the combination of formats is not
	// renderable on this implementation.
	IncompleteUnsupported

	// IncompleteMultisample means attachments differ in sample count.
	IncompleteMultisample

	// IncompleteUnknown is any other native status.
	IncompleteUnknown
)

// reasonForStatus maps a native completeness status to its reason.
func reasonForStatus(st gl.Enum) IncompleteReason {
	switch st {
	case gl.FRAMEBUFFER_INCOMPLETE_ATTACHMENT:
		return IncompleteAttachment
	case gl.FRAMEBUFFER_INCOMPLETE_DIMENSIONS:
		return IncompleteDimensions
	case gl.FRAMEBUFFER_INCOMPLETE_MISSING_ATTACHMENT:
		return IncompleteMissingAttachment
	case gl.FRAMEBUFFER_UNSUPPORTED:
		return IncompleteUnsupported
	case gl.FRAMEBUFFER_INCOMPLETE_MULTISAMPLE:
		return IncompleteMultisample
	}
	return IncompleteUnknown
}

// FramebufferIncompleteError reports a framebuffer that cannot be
// rendered into.
type FramebufferIncompleteError struct {
	// Name of the framebuffer.
	Name string

	// Reason the framebuffer is incomplete.
	Reason IncompleteReason

	// Status is the native completeness status, or 0 if the problem
	// was found before any native object was created.
	Status gl.Enum

	// Detail describes the offending attachments.
	Detail string
}

func (e *FramebufferIncompleteError) Error() string {
	msg := fmt.Sprintf("gpu.Framebuffer %s: incomplete (%s)", e.Name, e.Reason)
	if e.Status != 0 {
		msg += ": status " + e.Status.String()
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

func (e *FramebufferIncompleteError) Unwrap() error { return ErrFramebufferIncomplete }

// nativeError drains the native error queue, returning the first
// recorded error wrapped with kind, or nil.
func nativeError(ctx gl.Context, kind error, where string) error {
	first := ctx.GetError()
	if first == gl.NO_ERROR {
		return nil
	}
	drainErrors(ctx)
	return fmt.Errorf("%s: %w: %s", where, kind, first)
}

// maxDrain bounds error draining on a lost context, which can
// report an error from every GetError call.
const maxDrain = 64

// drainErrors discards pending native errors so that a later
// nativeError call only reports errors of the following calls.
func drainErrors(ctx gl.Context) {
	for range maxDrain {
		if ctx.GetError() == gl.NO_ERROR {
			return
		}
	}
}
