package utils

import "math"

// Ray 射线，Dir 应为单位向量
type Ray struct {
	Origin Vec3
	Dir    Vec3
}

// AABB 轴对齐包围盒
type AABB struct {
	Min Vec3
	Max Vec3
}

// Box 以底面中心 (x, z) 为基准，构造半宽 halfWidth、高 height 的包围盒
func Box(x, z, halfWidth, height float64) AABB {
	return AABB{
		Min: Vec3{x - halfWidth, 0, z - halfWidth},
		Max: Vec3{x + halfWidth, height, z + halfWidth},
	}
}

// At 返回射线上距离为 t 的点
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Dir.Scale(t))
}

// IntersectAABB 使用 slab 方法求射线与包围盒的最近交点距离
// 起点在盒内时返回 0；未相交或交点在起点之后返回 false
func (r Ray) IntersectAABB(b AABB) (float64, bool) {
	tmin := math.Inf(-1)
	tmax := math.Inf(1)

	origin := [3]float64{r.Origin.X, r.Origin.Y, r.Origin.Z}
	dir := [3]float64{r.Dir.X, r.Dir.Y, r.Dir.Z}
	lo := [3]float64{b.Min.X, b.Min.Y, b.Min.Z}
	hi := [3]float64{b.Max.X, b.Max.Y, b.Max.Z}

	for axis := 0; axis < 3; axis++ {
		if dir[axis] == 0 {
			// 平行于该轴的平面：起点必须落在 slab 内
			if origin[axis] < lo[axis] || origin[axis] > hi[axis] {
				return 0, false
			}
			continue
		}
		inv := 1 / dir[axis]
		t1 := (lo[axis] - origin[axis]) * inv
		t2 := (hi[axis] - origin[axis]) * inv
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = math.Max(tmin, t1)
		tmax = math.Min(tmax, t2)
		if tmin > tmax {
			return 0, false
		}
	}

	if tmax < 0 {
		return 0, false
	}
	if tmin < 0 {
		return 0, true
	}
	return tmin, true
}
