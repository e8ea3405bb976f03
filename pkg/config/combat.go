package config

import "time"

// 玩家相关常量
const (
	PlayerMaxHP        = 100 // 玩家最大生命
	PlayerMaxAmmo      = 20  // 弹匣容量
	LevelClearHeal     = 20  // 过关回血
	PlayerMoveSpeed    = 5.0 // 玩家移动速度（单位/秒）
	PlayerEyeHeight    = 1.7 // 摄像机高度
	PlayerPitchLimit   = 1.5 // 俯仰角上限（弧度）
	CoinPickupRadius   = 2.0 // 金币拾取半径
	CoinPickupRadiusSq = CoinPickupRadius * CoinPickupRadius
)

// 射击相关常量
const (
	FireRate        = 100 * time.Millisecond  // 两次射击最小间隔
	ShotDamage      = 12                      // 单发伤害
	ShotRange       = 50.0                    // 自动瞄准射程
	ReloadTime      = 3000 * time.Millisecond // 换弹耗时
	HitboxHalfWidth = 0.35                    // 单位缩放下的命中盒半宽
	HitboxHeight    = 1.8                     // 单位缩放下的命中盒高度
)

// 敌人相关常量
const (
	MeleeRange     = 1.5 // 近战距离（平面）
	AttackCooldown = 1.5 // 近战攻击间隔（秒）
	SpawnMinRadius = 30.0
	SpawnMaxRadius = 50.0
)

// 雷达与音乐
const (
	RadarRange    = 40.0
	RadarRadius   = 50.0
	MusicInterval = 2500 * time.Millisecond
)
