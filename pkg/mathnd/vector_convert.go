package mathnd

import "github.com/go-gl/mathgl/mgl64"

// FromVec2 creates a 2D VectorN from an engine-native Vec2.
func FromVec2(v mgl64.Vec2) VectorN {
	return VectorN{v[0], v[1]}
}

// FromVec3 creates a 3D VectorN from an engine-native Vec3.
func FromVec3(v mgl64.Vec3) VectorN {
	return VectorN{v[0], v[1], v[2]}
}

// FromVec4 creates a 4D VectorN from an engine-native Vec4.
func FromVec4(v mgl64.Vec4) VectorN {
	return VectorN{v[0], v[1], v[2], v[3]}
}

// ToVec2 truncates or zero-extends v to an engine-native Vec2.
func (v VectorN) ToVec2() mgl64.Vec2 {
	return mgl64.Vec2{v.ValueOnAxis(0), v.ValueOnAxis(1)}
}

// ToVec3 truncates or zero-extends v to an engine-native Vec3.
func (v VectorN) ToVec3() mgl64.Vec3 {
	return mgl64.Vec3{v.ValueOnAxis(0), v.ValueOnAxis(1), v.ValueOnAxis(2)}
}

// ToVec4 truncates or zero-extends v to an engine-native Vec4.
func (v VectorN) ToVec4() mgl64.Vec4 {
	return mgl64.Vec4{v.ValueOnAxis(0), v.ValueOnAxis(1), v.ValueOnAxis(2), v.ValueOnAxis(3)}
}
