package geometry

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/df07/go-scene-description/pkg/core"
)

func TestTransformStackApplyOrder(t *testing.T) {
	rotate := NewRotateY(90)
	translate := NewTranslate(core.NewVec3(1, 0, 0))
	p := core.NewVec3(1, 0, 0)

	// rotate first: (1,0,0) -> (0,0,-1) -> (1,0,-1)
	got := TransformStack{rotate, translate}.Apply(p)
	assert.True(t, got.ApproxEqual(core.NewVec3(1, 0, -1), 1e-9), "got %v", got)

	// translate first: (1,0,0) -> (2,0,0) -> (0,0,-2)
	got = TransformStack{translate, rotate}.Apply(p)
	assert.True(t, got.ApproxEqual(core.NewVec3(0, 0, -2), 1e-9), "got %v", got)

	a := TransformStack{rotate, translate}.Matrix()
	b := TransformStack{translate, rotate}.Matrix()
	assert.False(t, a.ApproxEqualThreshold(b, 1e-9), "non-commuting ops must give different matrices")
}

func TestTransformStackScaleThenTranslate(t *testing.T) {
	stack := TransformStack{NewUniformScale(2), NewTranslate(core.NewVec3(1, 0, 0))}
	got := stack.Apply(core.NewVec3(1, 1, 1))
	assert.True(t, got.ApproxEqual(core.NewVec3(3, 2, 2), 1e-9), "got %v", got)
}

func TestTransformStackEmpty(t *testing.T) {
	var stack TransformStack
	assert.True(t, stack.Matrix().ApproxEqual(mgl64.Ident4()))
	assert.Equal(t, core.NewVec3(1, 2, 3), stack.Apply(core.NewVec3(1, 2, 3)))

	data, err := json.Marshal(stack)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestTransformStackAppendDoesNotAlias(t *testing.T) {
	base := make(TransformStack, 1, 4)
	base[0] = NewRotateX(10)

	a := base.Append(NewTranslate(core.NewVec3(1, 0, 0)))
	b := base.Append(NewTranslate(core.NewVec3(0, 1, 0)))

	require.Len(t, a, 2)
	require.Len(t, b, 2)
	assert.Equal(t, NewTranslate(core.NewVec3(1, 0, 0)), a[1])
	assert.Equal(t, NewTranslate(core.NewVec3(0, 1, 0)), b[1])
	assert.Len(t, base, 1)
}

func TestTransformValidate(t *testing.T) {
	tests := []struct {
		name      string
		op        Transform
		wantField string
	}{
		{"translate", NewTranslate(core.NewVec3(1, 2, 3)), ""},
		{"rotate", NewRotate(core.NewVec3(1, 1, 0), 45), ""},
		{"rotate zero axis", NewRotate(core.Vec3{}, 45), "axis"},
		{"scale", NewScale(core.NewVec3(1, 2, -1)), ""},
		{"scale zero factor", NewScale(core.NewVec3(1, 0, 1)), "factors"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.op.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			var verr *core.ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.wantField, verr.Field)
		})
	}

	assert.Error(t, TransformStack{NewTranslate(core.Vec3{}), nil}.Validate())
	assert.Error(t, TransformStack{NewScale(core.Vec3{})}.Validate())
}

func TestParseAxis(t *testing.T) {
	for name, want := range map[string]core.Vec3{"X": AxisX, "y": AxisY, " Z ": AxisZ} {
		got, err := ParseAxis(name)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseAxis("W")
	assert.Error(t, err)
}

func TestTransformMarshalJSON(t *testing.T) {
	stack := TransformStack{NewRotateY(90), NewTranslate(core.NewVec3(1, 0, 0)), NewUniformScale(2)}
	data, err := json.Marshal(stack)
	require.NoError(t, err)
	assert.JSONEq(t, `[
		{"kind":"rotate","axis":[0,1,0],"angle":90},
		{"kind":"translate","offset":[1,0,0]},
		{"kind":"scale","factors":[2,2,2]}
	]`, string(data))
}
