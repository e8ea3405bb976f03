package systems

import (
	"log"

	"github.com/KanaWorksAI/ZOutbreak/pkg/config"
	"github.com/KanaWorksAI/ZOutbreak/pkg/game"
	"github.com/KanaWorksAI/ZOutbreak/pkg/types"
	"github.com/KanaWorksAI/ZOutbreak/pkg/utils"
)

// EnemyBehaviorSystem 敌人追击与近战
//
// 存活敌人在近战距离外直线走向玩家；进入距离后停下，
// 冷却结束即造成类型对应的伤害。同一帧多个敌人的攻击会累加。
type EnemyBehaviorSystem struct {
	gameState *game.GameState
	cues      game.CueSink
}

// NewEnemyBehaviorSystem 创建敌人行为系统
func NewEnemyBehaviorSystem(gs *game.GameState, cues game.CueSink) *EnemyBehaviorSystem {
	return &EnemyBehaviorSystem{
		gameState: gs,
		cues:      cues,
	}
}

// Update 移动敌人并结算近战
func (s *EnemyBehaviorSystem) Update(deltaTime float64) {
	snap := s.gameState.Snapshot()
	if snap.Status != types.StatusPlaying {
		return
	}

	now := snap.Clock
	px, pz := snap.Pose.X, snap.Pose.Z

	for _, enemy := range snap.Enemies {
		if enemy.IsDead {
			continue
		}

		dist := utils.Distance(enemy.X, enemy.Z, px, pz)
		if dist >= config.MeleeRange {
			step := enemy.Speed * deltaTime
			s.gameState.MoveEnemy(enemy.ID,
				enemy.X+(px-enemy.X)/dist*step,
				enemy.Z+(pz-enemy.Z)/dist*step)
			continue
		}

		if now-enemy.LastAttackAt+timeEpsilon < config.AttackCooldown {
			continue
		}

		stats := config.MustEnemyStats(enemy.Type)
		s.gameState.MarkEnemyAttack(enemy.ID, now)
		s.gameState.TakeDamage(stats.MeleeDamage)
		if s.cues != nil {
			s.cues.PlayCue(game.CueHit)
		}

		if s.gameState.Status() != types.StatusPlaying {
			log.Printf("[EnemyBehaviorSystem] player killed by %s", enemy.Type)
			return
		}
	}
}
