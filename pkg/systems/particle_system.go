package systems

import (
	"math"

	"github.com/KanaWorksAI/ZOutbreak/pkg/components"
	"github.com/KanaWorksAI/ZOutbreak/pkg/utils"
)

// 粒子池参数
const (
	MuzzlePoolSize  = 15
	BloodPoolSize   = 600
	BloodBurstSize  = 25
	particleGravity = 9.8
)

// ParticleSystem 管理枪口火光和命中血雾两个固定大小的对象池
// 粒子对象循环复用，运行期间不分配内存
type ParticleSystem struct {
	rng    *utils.RNG
	muzzle [MuzzlePoolSize]components.Particle
	blood  [BloodPoolSize]components.Particle
}

// NewParticleSystem 创建粒子系统
func NewParticleSystem(rng *utils.RNG) *ParticleSystem {
	ps := &ParticleSystem{rng: rng}
	for i := range ps.muzzle {
		ps.muzzle[i].Kind = components.ParticleMuzzle
	}
	for i := range ps.blood {
		ps.blood[i].Kind = components.ParticleBlood
	}
	return ps
}

// EmitMuzzle 开火时激活所有空闲的火光粒子，沿视线方向呈锥形喷出
func (ps *ParticleSystem) EmitMuzzle(origin, forward utils.Vec3) {
	rx, rz := utils.PlanarRight(math.Atan2(forward.X, forward.Z))
	right := utils.Vec3{X: rx, Z: rz}
	up := utils.Vec3{Y: 1}

	for i := range ps.muzzle {
		p := &ps.muzzle[i]
		if p.Active {
			continue
		}
		angle := ps.rng.Float64() * 2 * math.Pi
		spread := ps.rng.Float64() * 0.5
		speed := 5 + ps.rng.Float64()*5
		vel := forward.Scale(speed).
			Add(right.Scale(math.Cos(angle) * spread)).
			Add(up.Scale(math.Sin(angle) * spread))

		*p = components.Particle{
			Kind:   components.ParticleMuzzle,
			Active: true,
			X:      origin.X,
			Y:      origin.Y,
			Z:      origin.Z,
			VX:     vel.X,
			VY:     vel.Y,
			VZ:     vel.Z,
			Life:   0.1 + ps.rng.Float64()*0.1,
			Size:   0.5 + ps.rng.Float64()*0.5,
		}
	}
}

// EmitBlood 在命中点激活一簇血雾粒子（最多 BloodBurstSize 个）
// 池满时能激活多少算多少，返回实际数量
func (ps *ParticleSystem) EmitBlood(at utils.Vec3) int {
	spawned := 0
	for i := range ps.blood {
		if spawned >= BloodBurstSize {
			break
		}
		p := &ps.blood[i]
		if p.Active {
			continue
		}

		// 向上、向外喷溅
		dir := utils.Vec3{
			X: (ps.rng.Float64() - 0.5) * 4,
			Y: ps.rng.Float64()*3 + 1,
			Z: (ps.rng.Float64() - 0.5) * 4,
		}.Normalize().Scale(3 + ps.rng.Float64()*4)

		life := 0.4 + ps.rng.Float64()*0.4
		*p = components.Particle{
			Kind:   components.ParticleBlood,
			Active: true,
			X:      at.X,
			Y:      at.Y,
			Z:      at.Z,
			VX:     dir.X,
			VY:     dir.Y,
			VZ:     dir.Z,
			Life:   life,
			Size:   life * 1.5,
		}
		spawned++
	}
	return spawned
}

// Update 推进所有活动粒子
func (ps *ParticleSystem) Update(deltaTime float64) {
	for i := range ps.muzzle {
		p := &ps.muzzle[i]
		if !p.Active {
			continue
		}
		p.Age += deltaTime
		if p.Age >= p.Life {
			p.Active = false
			continue
		}
		p.X += p.VX * deltaTime
		p.Y += p.VY * deltaTime
		p.Z += p.VZ * deltaTime
		p.Size = math.Max(0, p.Size-deltaTime*5)
	}

	for i := range ps.blood {
		p := &ps.blood[i]
		if !p.Active {
			continue
		}
		p.Age += deltaTime
		if p.Age >= p.Life {
			p.Active = false
			continue
		}
		p.VY -= particleGravity * deltaTime
		p.X += p.VX * deltaTime
		p.Y += p.VY * deltaTime
		p.Z += p.VZ * deltaTime
		p.Size = (p.Life - p.Age) * 1.5
	}
}

// Active 返回所有活动粒子的副本（用于绘制）
func (ps *ParticleSystem) Active() []components.Particle {
	out := make([]components.Particle, 0, ps.ActiveCount())
	for i := range ps.muzzle {
		if ps.muzzle[i].Active {
			out = append(out, ps.muzzle[i])
		}
	}
	for i := range ps.blood {
		if ps.blood[i].Active {
			out = append(out, ps.blood[i])
		}
	}
	return out
}

// ActiveCount 活动粒子数量
func (ps *ParticleSystem) ActiveCount() int {
	n := 0
	for i := range ps.muzzle {
		if ps.muzzle[i].Active {
			n++
		}
	}
	for i := range ps.blood {
		if ps.blood[i].Active {
			n++
		}
	}
	return n
}

// Reset 回收所有粒子
func (ps *ParticleSystem) Reset() {
	for i := range ps.muzzle {
		ps.muzzle[i].Active = false
	}
	for i := range ps.blood {
		ps.blood[i].Active = false
	}
}
