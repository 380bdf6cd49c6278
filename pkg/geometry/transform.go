package geometry

import (
	"encoding/json"
	"strings"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/df07/go-scene-description/pkg/core"
)

// Transform kinds as they appear in documents
const (
	KindTranslate = "translate"
	KindRotate    = "rotate"
	KindScale     = "scale"
)

// Transform is a single affine operation in a transform stack
type Transform interface {
	json.Marshaler
	// Kind returns the document discriminant
	Kind() string
	// Validate checks the operation's parameters
	Validate() error
	// Matrix returns the operation as a homogeneous matrix
	Matrix() mgl64.Mat4
	isTransform()
}

// Translate moves by a fixed offset
type Translate struct {
	Offset core.Vec3
}

// NewTranslate creates a new translation
func NewTranslate(offset core.Vec3) Translate {
	return Translate{Offset: offset}
}

func (t Translate) Kind() string { return KindTranslate }
func (t Translate) isTransform() {}

func (t Translate) Validate() error {
	return validatePoint(KindTranslate, "offset", t.Offset)
}

func (t Translate) Matrix() mgl64.Mat4 {
	return mgl64.Translate3D(t.Offset.X, t.Offset.Y, t.Offset.Z)
}

func (t Translate) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind   string    `json:"kind"`
		Offset core.Vec3 `json:"offset"`
	}{KindTranslate, t.Offset})
}

// Rotate turns by Angle degrees about Axis, counter-clockwise when looking
// down the axis toward the origin
type Rotate struct {
	Axis  core.Vec3
	Angle float64 // degrees
}

// NewRotate creates a new rotation about an arbitrary axis
func NewRotate(axis core.Vec3, angle float64) Rotate {
	return Rotate{Axis: axis, Angle: angle}
}

// NewRotateX creates a rotation about the X axis
func NewRotateX(angle float64) Rotate { return Rotate{Axis: AxisX, Angle: angle} }

// NewRotateY creates a rotation about the Y axis
func NewRotateY(angle float64) Rotate { return Rotate{Axis: AxisY, Angle: angle} }

// NewRotateZ creates a rotation about the Z axis
func NewRotateZ(angle float64) Rotate { return Rotate{Axis: AxisZ, Angle: angle} }

func (r Rotate) Kind() string { return KindRotate }
func (r Rotate) isTransform() {}

func (r Rotate) Validate() error {
	if err := validateDirection(KindRotate, "axis", r.Axis); err != nil {
		return err
	}
	if !core.NewVec3(r.Angle, 0, 0).IsFinite() {
		return core.NewValidationError(KindRotate, "angle", "must be finite, got %g", r.Angle)
	}
	return nil
}

func (r Rotate) Matrix() mgl64.Mat4 {
	axis := mgl64.Vec3{r.Axis.X, r.Axis.Y, r.Axis.Z}.Normalize()
	return mgl64.HomogRotate3D(mgl64.DegToRad(r.Angle), axis)
}

func (r Rotate) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind  string    `json:"kind"`
		Axis  core.Vec3 `json:"axis"`
		Angle float64   `json:"angle"`
	}{KindRotate, r.Axis, r.Angle})
}

// Scale multiplies each axis by its own factor
type Scale struct {
	Factors core.Vec3
}

// NewScale creates a new per-axis scale
func NewScale(factors core.Vec3) Scale {
	return Scale{Factors: factors}
}

// NewUniformScale creates a scale with the same factor on every axis
func NewUniformScale(factor float64) Scale {
	return Scale{Factors: core.NewVec3(factor, factor, factor)}
}

func (s Scale) Kind() string { return KindScale }
func (s Scale) isTransform() {}

// Validate rejects zero factors, which would collapse the shape
func (s Scale) Validate() error {
	if err := validatePoint(KindScale, "factors", s.Factors); err != nil {
		return err
	}
	if s.Factors.X == 0 || s.Factors.Y == 0 || s.Factors.Z == 0 {
		return core.NewValidationError(KindScale, "factors", "must all be non-zero, got %v", s.Factors)
	}
	return nil
}

func (s Scale) Matrix() mgl64.Mat4 {
	return mgl64.Scale3D(s.Factors.X, s.Factors.Y, s.Factors.Z)
}

func (s Scale) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind    string    `json:"kind"`
		Factors core.Vec3 `json:"factors"`
	}{KindScale, s.Factors})
}

// Unit axes accepted by name in rotate operations
var (
	AxisX = core.NewVec3(1, 0, 0)
	AxisY = core.NewVec3(0, 1, 0)
	AxisZ = core.NewVec3(0, 0, 1)
)

// ParseAxis converts a named axis ("X", "y", ...) into its unit vector
func ParseAxis(name string) (core.Vec3, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "X":
		return AxisX, nil
	case "Y":
		return AxisY, nil
	case "Z":
		return AxisZ, nil
	}
	return core.Vec3{}, core.NewValidationError(KindRotate, "axis", "unknown axis %q, expected X, Y or Z", name)
}

// TransformStack is an ordered list of operations. The first operation is
// applied to the shape first; each later one acts on the already transformed
// result.
type TransformStack []Transform

// Append returns a new stack with ops applied after the existing ones.
// The receiver is never modified.
func (s TransformStack) Append(ops ...Transform) TransformStack {
	out := make(TransformStack, 0, len(s)+len(ops))
	out = append(out, s...)
	return append(out, ops...)
}

// Validate checks every operation in the stack
func (s TransformStack) Validate() error {
	for _, op := range s {
		if op == nil {
			return core.NewValidationError("transform", "", "stack contains a nil operation")
		}
		if err := op.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Matrix returns the effective matrix op_n * ... * op_2 * op_1
func (s TransformStack) Matrix() mgl64.Mat4 {
	m := mgl64.Ident4()
	for _, op := range s {
		m = op.Matrix().Mul4(m)
	}
	return m
}

// Apply transforms a point through the whole stack
func (s TransformStack) Apply(p core.Vec3) core.Vec3 {
	v := mgl64.TransformCoordinate(mgl64.Vec3{p.X, p.Y, p.Z}, s.Matrix())
	return core.NewVec3(v[0], v[1], v[2])
}

// MarshalJSON always emits a list, never null
func (s TransformStack) MarshalJSON() ([]byte, error) {
	if s == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]Transform(s))
}
