package config

import "github.com/KanaWorksAI/ZOutbreak/pkg/types"

// EnemyStats 单个敌人类型的固定属性
type EnemyStats struct {
	Health      int     // 生命值（同时作为 MaxHP）
	Speed       float64 // 移动速度（单位/秒）
	MeleeDamage int     // 近战伤害
	ScoreValue  int     // 击杀得分
	CoinValue   int     // 掉落金币面值
	HitboxScale float64 // 命中体积缩放（渲染模型的缩放系数）
}

// GetEnemyStats 返回指定敌人类型的属性
// 对四种有效类型穷举；未知类型返回 false
func GetEnemyStats(enemyType types.EnemyType) (EnemyStats, bool) {
	switch enemyType {
	case types.EnemyNormal:
		return EnemyStats{Health: 30, Speed: 3.5, MeleeDamage: 34, ScoreValue: 50, CoinValue: 5, HitboxScale: 1.0}, true
	case types.EnemyFast:
		return EnemyStats{Health: 20, Speed: 7.0, MeleeDamage: 34, ScoreValue: 50, CoinValue: 5, HitboxScale: 0.9}, true
	case types.EnemyTank:
		return EnemyStats{Health: 100, Speed: 2.0, MeleeDamage: 34, ScoreValue: 100, CoinValue: 10, HitboxScale: 1.6}, true
	case types.EnemyBoss:
		return EnemyStats{Health: 1200, Speed: 3.0, MeleeDamage: 50, ScoreValue: 500, CoinValue: 50, HitboxScale: 3.5}, true
	default:
		return EnemyStats{}, false
	}
}

// MustEnemyStats 与 GetEnemyStats 相同，但未知类型会 panic
// 仅用于类型已经过校验的调用路径
func MustEnemyStats(enemyType types.EnemyType) EnemyStats {
	stats, ok := GetEnemyStats(enemyType)
	if !ok {
		panic("config: no stats for enemy type " + enemyType.String())
	}
	return stats
}
