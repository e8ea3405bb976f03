package systems

import (
	"github.com/KanaWorksAI/ZOutbreak/pkg/config"
	"github.com/KanaWorksAI/ZOutbreak/pkg/game"
	"github.com/KanaWorksAI/ZOutbreak/pkg/types"
	"github.com/KanaWorksAI/ZOutbreak/pkg/utils"
)

// CoinCollectionSystem 玩家靠近金币时自动拾取
type CoinCollectionSystem struct {
	gameState *game.GameState
}

// NewCoinCollectionSystem 创建金币拾取系统
func NewCoinCollectionSystem(gs *game.GameState) *CoinCollectionSystem {
	return &CoinCollectionSystem{gameState: gs}
}

// Update 拾取玩家 2 单位范围内的所有金币，返回拾取数量
func (s *CoinCollectionSystem) Update(deltaTime float64) int {
	snap := s.gameState.Snapshot()
	if snap.Status != types.StatusPlaying {
		return 0
	}

	collected := 0
	for _, coin := range snap.DroppedCoins {
		if utils.DistanceSq(snap.Pose.X, snap.Pose.Z, coin.X, coin.Z) < config.CoinPickupRadiusSq {
			if s.gameState.CollectCoin(coin.ID) {
				collected++
			}
		}
	}
	return collected
}
