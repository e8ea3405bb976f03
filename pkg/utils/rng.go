// Package utils 提供模拟与表现层共用的工具：
// 可设定种子的随机数服务、平面/空间向量运算、射线与包围盒求交。
package utils

import (
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
)

// RNG 可设定种子的随机数服务
// 整个模拟共用一个实例，使用相同种子可以完全复现一局游戏。
// 计时器回调可能在其他 goroutine 上运行，因此内部加锁。
type RNG struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRNG 创建随机数服务
// 种子为 0 时使用当前时间
func NewRNG(seed int64) *RNG {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &RNG{rng: rand.New(rand.NewSource(seed))}
}

// Intn 返回 [0, n) 内的随机整数，n <= 0 时返回 0
func (r *RNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.Intn(n)
}

// Float64 返回 [0, 1) 内的随机浮点数
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.Float64()
}

// Range 返回 [min, max) 内的随机浮点数
func (r *RNG) Range(min, max float64) float64 {
	return min + r.Float64()*(max-min)
}

// Chance 以概率 p 返回 true
func (r *RNG) Chance(p float64) bool {
	return r.Float64() < p
}

// Read 实现 io.Reader，供 uuid 生成使用
func (r *RNG) Read(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.Read(p)
}

// NewID 生成一个由本服务驱动的随机 UUID（v4）
// 相同种子得到相同的 ID 序列
func (r *RNG) NewID() string {
	id, err := uuid.NewRandomFromReader(r)
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
