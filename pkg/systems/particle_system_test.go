package systems

import (
	"testing"

	"github.com/KanaWorksAI/ZOutbreak/pkg/components"
	"github.com/KanaWorksAI/ZOutbreak/pkg/utils"
)

// TestParticleSystemBlood 血雾每簇 25 个，池满时能放多少放多少
func TestParticleSystemBlood(t *testing.T) {
	ps := NewParticleSystem(utils.NewRNG(1))
	at := utils.Vec3{Y: 1}

	if n := ps.EmitBlood(at); n != BloodBurstSize {
		t.Fatalf("first burst: got %d, want %d", n, BloodBurstSize)
	}

	total := BloodBurstSize
	for i := 0; i < 30; i++ {
		total += ps.EmitBlood(at)
	}
	if total != BloodPoolSize {
		t.Errorf("total emitted: got %d, want %d", total, BloodPoolSize)
	}
	if n := ps.EmitBlood(at); n != 0 {
		t.Errorf("burst on full pool: got %d, want 0", n)
	}

	for _, p := range ps.Active() {
		if p.Kind != components.ParticleBlood {
			t.Fatalf("unexpected kind %v", p.Kind)
		}
		if p.VY <= 0 {
			t.Errorf("blood should spray upward, vy=%v", p.VY)
		}
		if p.Life < 0.4 || p.Life > 0.8 {
			t.Errorf("life out of range: %v", p.Life)
		}
	}
}

// TestParticleSystemExpiry 粒子在生命结束后回收
func TestParticleSystemExpiry(t *testing.T) {
	ps := NewParticleSystem(utils.NewRNG(2))
	ps.EmitMuzzle(utils.Vec3{Y: 1.7}, utils.Vec3{Z: 1})
	ps.EmitBlood(utils.Vec3{Z: 5, Y: 1})

	if got := ps.ActiveCount(); got != MuzzlePoolSize+BloodBurstSize {
		t.Fatalf("active: got %d, want %d", got, MuzzlePoolSize+BloodBurstSize)
	}

	ps.Update(0.25)
	for _, p := range ps.Active() {
		if p.Kind == components.ParticleMuzzle {
			t.Fatal("muzzle flash outlived 0.2s")
		}
	}
	if got := ps.ActiveCount(); got != BloodBurstSize {
		t.Errorf("active blood after 0.25s: got %d, want %d", got, BloodBurstSize)
	}

	ps.Update(0.25)
	ps.Update(0.25)
	ps.Update(0.25)
	if got := ps.ActiveCount(); got != 0 {
		t.Errorf("active after 1s: got %d, want 0", got)
	}

	// 回收后可以再次发射
	if n := ps.EmitBlood(utils.Vec3{}); n != BloodBurstSize {
		t.Errorf("burst after recycle: got %d", n)
	}
}

// TestParticleSystemMuzzle 枪口火光沿视线方向喷出
func TestParticleSystemMuzzle(t *testing.T) {
	ps := NewParticleSystem(utils.NewRNG(3))
	ps.EmitMuzzle(utils.Vec3{Y: 1.7}, utils.Vec3{Z: 1})

	for _, p := range ps.Active() {
		if p.VZ < 5 {
			t.Errorf("muzzle velocity along view: got %v, want >= 5", p.VZ)
		}
		if p.Life < 0.1 || p.Life > 0.2 {
			t.Errorf("muzzle life out of range: %v", p.Life)
		}
	}

	// 火光全部激活时再次开火不会重复激活
	ps.EmitMuzzle(utils.Vec3{Y: 1.7}, utils.Vec3{Z: 1})
	if got := ps.ActiveCount(); got != MuzzlePoolSize {
		t.Errorf("active: got %d, want %d", got, MuzzlePoolSize)
	}

	ps.Reset()
	if got := ps.ActiveCount(); got != 0 {
		t.Errorf("active after reset: got %d, want 0", got)
	}
}

// TestParticleSystemGravity 血雾受重力影响
func TestParticleSystemGravity(t *testing.T) {
	ps := NewParticleSystem(utils.NewRNG(4))
	ps.EmitBlood(utils.Vec3{})

	before := ps.Active()
	ps.Update(0.1)
	after := ps.Active()

	for i := range after {
		want := before[i].VY - 9.8*0.1
		if diff := after[i].VY - want; diff > 1e-9 || diff < -1e-9 {
			t.Errorf("particle %d vy: got %v, want %v", i, after[i].VY, want)
		}
	}
}
