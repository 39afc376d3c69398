package math

// Transform holds a position, rotation and scale and an optional parent.
// The local matrix is rebuilt lazily after any change.
type Transform struct {
	position Vector3
	rotation Quaternion
	scale    Vector3
	isDirty  bool
	local    Matrix
	Parent   *Transform
}

func NewTransform() *Transform {
	return NewTransformFromPositionRotationScale(Vector3Zero(), QuaternionIdentity(), Vector3One())
}

func NewTransformFromPosition(position Vector3) *Transform {
	return NewTransformFromPositionRotationScale(position, QuaternionIdentity(), Vector3One())
}

func NewTransformFromRotation(rotation Quaternion) *Transform {
	return NewTransformFromPositionRotationScale(Vector3Zero(), rotation, Vector3One())
}

func NewTransformFromPositionRotation(position Vector3, rotation Quaternion) *Transform {
	return NewTransformFromPositionRotationScale(position, rotation, Vector3One())
}

func NewTransformFromPositionRotationScale(position Vector3, rotation Quaternion, scale Vector3) *Transform {
	t := &Transform{local: MatrixIdentity()}
	t.SetPositionRotationScale(position, rotation, scale)
	return t
}

func (t *Transform) Position() Vector3    { return t.position }
func (t *Transform) Rotation() Quaternion { return t.rotation }
func (t *Transform) Scale() Vector3       { return t.scale }

func (t *Transform) SetPosition(position Vector3) {
	t.position = position
	t.isDirty = true
}

func (t *Transform) Translate(translation Vector3) {
	t.position = t.position.Add(translation)
	t.isDirty = true
}

func (t *Transform) SetRotation(rotation Quaternion) {
	t.rotation = rotation
	t.isDirty = true
}

// Rotate applies rotation after the current one.
func (t *Transform) Rotate(rotation Quaternion) {
	t.rotation = QuaternionConcatenate(t.rotation, rotation)
	t.isDirty = true
}

func (t *Transform) SetScale(scale Vector3) {
	t.scale = scale
	t.isDirty = true
}

// ScaleBy multiplies the current scale componentwise.
func (t *Transform) ScaleBy(scale Vector3) {
	t.scale = t.scale.Mul(scale)
	t.isDirty = true
}

func (t *Transform) SetPositionRotation(position Vector3, rotation Quaternion) {
	t.position = position
	t.rotation = rotation
	t.isDirty = true
}

func (t *Transform) SetPositionRotationScale(position Vector3, rotation Quaternion, scale Vector3) {
	t.position = position
	t.rotation = rotation
	t.scale = scale
	t.isDirty = true
}

func (t *Transform) TranslateRotate(translation Vector3, rotation Quaternion) {
	t.Translate(translation)
	t.Rotate(rotation)
}

// Local returns scale × rotation × translation. A nil transform is the
// identity.
func (t *Transform) Local() Matrix {
	if t == nil {
		return MatrixIdentity()
	}
	if t.isDirty {
		t.local = CreateScaleVector(t.scale).
			Mul(CreateFromQuaternion(t.rotation)).
			Mul(CreateTranslation(t.position))
		t.isDirty = false
	}
	return t.local
}

// World returns the local matrix followed by every parent's world matrix.
func (t *Transform) World() Matrix {
	if t == nil {
		return MatrixIdentity()
	}
	local := t.Local()
	if t.Parent != nil {
		return local.Mul(t.Parent.World())
	}
	return local
}
