package systems

import (
	"math"

	"github.com/KanaWorksAI/ZOutbreak/pkg/config"
	"github.com/KanaWorksAI/ZOutbreak/pkg/game"
	"github.com/KanaWorksAI/ZOutbreak/pkg/types"
	"github.com/KanaWorksAI/ZOutbreak/pkg/utils"
)

// PlayerMovementSystem 按 WASD 意图在水平面内移动玩家
// 方向相对当前朝向，斜向移动不会更快
type PlayerMovementSystem struct {
	gameState *game.GameState
}

// NewPlayerMovementSystem 创建玩家移动系统
func NewPlayerMovementSystem(gs *game.GameState) *PlayerMovementSystem {
	return &PlayerMovementSystem{gameState: gs}
}

// Update 移动玩家
func (s *PlayerMovementSystem) Update(deltaTime float64) {
	snap := s.gameState.Snapshot()
	if snap.Status != types.StatusPlaying || snap.Intent.IsZero() {
		return
	}

	fx, fz := utils.PlanarForward(snap.Pose.Yaw)
	rx, rz := utils.PlanarRight(snap.Pose.Yaw)

	var dx, dz float64
	if snap.Intent.Forward {
		dx += fx
		dz += fz
	}
	if snap.Intent.Backward {
		dx -= fx
		dz -= fz
	}
	if snap.Intent.Right {
		dx += rx
		dz += rz
	}
	if snap.Intent.Left {
		dx -= rx
		dz -= rz
	}

	length := math.Hypot(dx, dz)
	if length == 0 {
		return
	}
	step := config.PlayerMoveSpeed * deltaTime / length
	s.gameState.MovePlayer(dx*step, dz*step)
}
