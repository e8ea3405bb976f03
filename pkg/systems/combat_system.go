package systems

import (
	"math"

	"github.com/KanaWorksAI/ZOutbreak/pkg/components"
	"github.com/KanaWorksAI/ZOutbreak/pkg/config"
	"github.com/KanaWorksAI/ZOutbreak/pkg/game"
	"github.com/KanaWorksAI/ZOutbreak/pkg/types"
	"github.com/KanaWorksAI/ZOutbreak/pkg/utils"
)

// AimTarget 自动瞄准的命中结果
type AimTarget struct {
	EnemyID  string
	Point    utils.Vec3 // 射线与命中盒的交点
	Distance float64
}

// CombatSystem 自动瞄准射击
//
// 从眼睛位置沿视线发射射线，命中射程内最近的存活敌人时开火：
// 消耗一发子弹、造成 12 点伤害、发出 CueShot，并在交点喷出血雾。
// 两次开火之间至少间隔 FireRate。
type CombatSystem struct {
	gameState *game.GameState
	cues      game.CueSink
	particles *ParticleSystem // 可为 nil

	lastShotAt float64 // 上次开火的模拟时间（秒）
}

// NewCombatSystem 创建战斗系统
func NewCombatSystem(gs *game.GameState, cues game.CueSink, particles *ParticleSystem) *CombatSystem {
	return &CombatSystem{
		gameState:  gs,
		cues:       cues,
		particles:  particles,
		lastShotAt: math.Inf(-1),
	}
}

// Update 检查准星下的目标并在冷却结束时开火
// 返回本帧是否开火
func (s *CombatSystem) Update(deltaTime float64) bool {
	snap := s.gameState.Snapshot()
	if snap.Status != types.StatusPlaying || snap.IsReloading || snap.Ammo <= 0 {
		return false
	}

	target, ok := FindAimTarget(snap.Pose, snap.Enemies)
	if !ok {
		return false
	}

	now := snap.Clock
	if now-s.lastShotAt+timeEpsilon < config.FireRate.Seconds() {
		return false
	}
	s.lastShotAt = now

	s.gameState.ShootAmmo()
	s.gameState.DamageEnemy(target.EnemyID, config.ShotDamage)
	if s.cues != nil {
		s.cues.PlayCue(game.CueShot)
	}

	if s.particles != nil {
		eye := eyePosition(snap.Pose)
		forward := utils.ViewDirection(snap.Pose.Yaw, snap.Pose.Pitch)
		s.particles.EmitMuzzle(eye.Add(forward.Scale(0.6)), forward)
		s.particles.EmitBlood(target.Point)
	}
	return true
}

// eyePosition 玩家眼睛的世界坐标
func eyePosition(pose components.PlayerPose) utils.Vec3 {
	return utils.Vec3{X: pose.X, Y: config.PlayerEyeHeight, Z: pose.Z}
}

// EnemyHitbox 敌人的命中盒，尺寸随类型缩放
func EnemyHitbox(enemy components.Enemy) utils.AABB {
	scale := 1.0
	if stats, ok := config.GetEnemyStats(enemy.Type); ok {
		scale = stats.HitboxScale
	}
	return utils.Box(enemy.X, enemy.Z, config.HitboxHalfWidth*scale, config.HitboxHeight*scale)
}

// FindAimTarget 返回视线射线命中的最近存活敌人
// 只有敌人会遮挡射线，死亡敌人和超出射程的命中被忽略
func FindAimTarget(pose components.PlayerPose, enemies []components.Enemy) (AimTarget, bool) {
	ray := utils.Ray{
		Origin: eyePosition(pose),
		Dir:    utils.ViewDirection(pose.Yaw, pose.Pitch),
	}

	best := AimTarget{Distance: math.Inf(1)}
	found := false
	for _, enemy := range enemies {
		if enemy.IsDead {
			continue
		}
		t, hit := ray.IntersectAABB(EnemyHitbox(enemy))
		if !hit || t > config.ShotRange || t >= best.Distance {
			continue
		}
		best = AimTarget{EnemyID: enemy.ID, Point: ray.At(t), Distance: t}
		found = true
	}
	return best, found
}
