// Copyright (c) 2026, Science Mechatronics Poster Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import "cogentcore.org/core/math32"

// Pose contains the full specification of position and orientation,
// always relative to the parent node. Units are scene units (millimeters).
type Pose struct {

	// Pos is the position of the node relative to its parent.
	Pos math32.Vector3

	// Scale is the scale relative to the parent, per axis.
	Scale math32.Vector3

	// Quat is the rotation relative to the parent, as a quaternion.
	Quat math32.Quat

	// Matrix is the local transform matrix, computed from Pos, Quat, Scale.
	Matrix math32.Matrix4 `json:"-"`

	// ParMatrix is the parent's world matrix, cached from the last
	// world-transform evaluation pass.
	ParMatrix math32.Matrix4 `json:"-"`

	// WorldMatrix is the full world transform matrix, relative to the
	// root of the evaluated graph. Only valid after an evaluation pass
	// while the node is attached to that graph.
	WorldMatrix math32.Matrix4 `json:"-"`
}

// Defaults sets defaults only if current values are nil.
func (ps *Pose) Defaults() {
	if ps.Scale == (math32.Vector3{}) {
		ps.Scale.Set(1, 1, 1)
	}
	if ps.Quat.IsNil() {
		ps.Quat.SetIdentity()
	}
}

// CopyFrom copies the pose information from the other pose, critically
// not copying the ParMatrix so that is preserved in the receiver.
func (ps *Pose) CopyFrom(op *Pose) {
	ps.Pos = op.Pos
	ps.Scale = op.Scale
	ps.Quat = op.Quat
	ps.UpdateMatrix()
}

// SetIdentity resets the pose to the identity transform.
func (ps *Pose) SetIdentity() {
	ps.Pos.SetZero()
	ps.Scale.Set(1, 1, 1)
	ps.Quat.SetIdentity()
	ps.UpdateMatrix()
}

// UpdateMatrix updates the local transform matrix based on the current
// Pos, Quat, and Scale values, checking for degenerate nil values.
func (ps *Pose) UpdateMatrix() {
	ps.Defaults()
	ps.Matrix.SetTransform(ps.Pos, ps.Quat, ps.Scale)
}

// UpdateWorldMatrix updates the world transform matrix from the local
// Matrix and the parent's world matrix. Does NOT call UpdateMatrix,
// so that can include other factors as needed.
func (ps *Pose) UpdateWorldMatrix(parWorld *math32.Matrix4) {
	if parWorld != nil {
		ps.ParMatrix.CopyFrom(parWorld)
	}
	ps.WorldMatrix.MulMatrices(&ps.ParMatrix, &ps.Matrix)
}

// SetEulerRotation sets the rotation in Euler angles (degrees),
// applied in intrinsic X, Y, Z order.
func (ps *Pose) SetEulerRotation(x, y, z float32) {
	ps.Quat.SetFromEuler(math32.Vec3(x, y, z).MulScalar(math32.DegToRadFactor))
}

// SetEulerRotationRad sets the rotation in Euler angles (radians).
func (ps *Pose) SetEulerRotationRad(x, y, z float32) {
	ps.Quat.SetFromEuler(math32.Vec3(x, y, z))
}

// EulerRotation returns the current rotation in Euler angles (degrees).
func (ps *Pose) EulerRotation() math32.Vector3 {
	return ps.Quat.ToEuler().MulScalar(math32.RadToDegFactor)
}

// SetAxisRotation sets rotation from local axis and angle in degrees.
func (ps *Pose) SetAxisRotation(x, y, z, angle float32) {
	ps.Quat.SetFromAxisAngle(math32.Vec3(x, y, z), math32.DegToRad(angle))
}

// WorldPos returns the world position from the last evaluation pass.
func (ps *Pose) WorldPos() math32.Vector3 {
	pos := math32.Vector3{}
	pos.SetFromMatrixPos(&ps.WorldMatrix)
	return pos
}

// WorldScale returns the world scale from the last evaluation pass.
func (ps *Pose) WorldScale() math32.Vector3 {
	_, _, scale := ps.WorldMatrix.Decompose()
	return scale
}
