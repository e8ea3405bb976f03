package components

// ParticleKind 粒子种类
type ParticleKind int

const (
	// ParticleMuzzle 枪口火光
	ParticleMuzzle ParticleKind = iota
	// ParticleBlood 命中血雾
	ParticleBlood
)

// Particle 对象池中的单个粒子
// Active 为 false 的粒子可被复用
type Particle struct {
	Kind   ParticleKind
	Active bool

	X, Y, Z    float64 // 世界坐标
	VX, VY, VZ float64 // 速度（单位/秒）

	Age  float64 // 已存活时间（秒）
	Life float64 // 总寿命（秒）
	Size float64
}

// Remaining 剩余寿命比例 [0, 1]
func (p *Particle) Remaining() float64 {
	if p.Life <= 0 {
		return 0
	}
	r := 1 - p.Age/p.Life
	if r < 0 {
		return 0
	}
	return r
}
