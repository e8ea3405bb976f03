package game

import (
	"slices"

	"github.com/KanaWorksAI/ZOutbreak/pkg/components"
	"github.com/KanaWorksAI/ZOutbreak/pkg/types"
)

// Snapshot 游戏状态的只读副本
// 切片是深拷贝，修改它们不会影响 GameState
type Snapshot struct {
	Status      types.GameStatus
	Level       int
	Score       int
	HP          int
	MaxHP       int
	Ammo        int
	MaxAmmo     int
	Coins       int
	IsReloading bool

	Enemies      []components.Enemy
	DroppedCoins []components.CoinDrop

	Pose   components.PlayerPose
	Intent components.MoveIntent

	Clock      float64
	Generation uint64
}

// Snapshot 返回当前状态的一致副本
func (gs *GameState) Snapshot() Snapshot {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	return Snapshot{
		Status:       gs.status,
		Level:        gs.level,
		Score:        gs.score,
		HP:           gs.hp,
		MaxHP:        gs.maxHP,
		Ammo:         gs.ammo,
		MaxAmmo:      gs.maxAmmo,
		Coins:        gs.coins,
		IsReloading:  gs.isReloading,
		Enemies:      slices.Clone(gs.enemies),
		DroppedCoins: slices.Clone(gs.droppedCoins),
		Pose:         gs.pose,
		Intent:       gs.intent,
		Clock:        gs.clock,
		Generation:   gs.generation,
	}
}

// LiveEnemies 存活敌人
func (s *Snapshot) LiveEnemies() []components.Enemy {
	live := make([]components.Enemy, 0, len(s.Enemies))
	for _, e := range s.Enemies {
		if !e.IsDead {
			live = append(live, e)
		}
	}
	return live
}

// AllEnemiesDead 列表中的敌人是否全部死亡（空列表为 true）
func (s *Snapshot) AllEnemiesDead() bool {
	for _, e := range s.Enemies {
		if !e.IsDead {
			return false
		}
	}
	return true
}
