package utils

import "math"

// Vec3 三维向量（Y 轴向上）
type Vec3 struct {
	X, Y, Z float64
}

// Add 向量相加
func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// Sub 向量相减
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

// Scale 数乘
func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

// Dot 点积
func (v Vec3) Dot(o Vec3) float64 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

// Length 长度
func (v Vec3) Length() float64 { return math.Sqrt(v.Dot(v)) }

// Normalize 单位化，零向量原样返回
func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.Scale(1 / l)
}

// ViewDirection 根据偏航角和俯仰角计算视线方向（单位向量）
// yaw = 0 时朝向 +Z，yaw 增大向左转
func ViewDirection(yaw, pitch float64) Vec3 {
	cp := math.Cos(pitch)
	return Vec3{
		X: math.Sin(yaw) * cp,
		Y: math.Sin(pitch),
		Z: math.Cos(yaw) * cp,
	}
}

// PlanarForward 水平面内的前方向
func PlanarForward(yaw float64) (x, z float64) {
	return math.Sin(yaw), math.Cos(yaw)
}

// PlanarRight 水平面内的右方向（与 PlanarForward 垂直）
func PlanarRight(yaw float64) (x, z float64) {
	fx, fz := PlanarForward(yaw)
	return -fz, fx
}

// DistanceSq 平面距离的平方
func DistanceSq(ax, az, bx, bz float64) float64 {
	dx := bx - ax
	dz := bz - az
	return dx*dx + dz*dz
}

// Distance 平面距离
func Distance(ax, az, bx, bz float64) float64 {
	return math.Sqrt(DistanceSq(ax, az, bx, bz))
}

// Clamp 将 v 限制在 [min, max]
func Clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
