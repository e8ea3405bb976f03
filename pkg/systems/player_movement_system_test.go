package systems

import (
	"math"
	"testing"

	"github.com/KanaWorksAI/ZOutbreak/pkg/components"
	"github.com/KanaWorksAI/ZOutbreak/pkg/types"
)

// TestPlayerMovement 相对朝向的 WASD 移动
func TestPlayerMovement(t *testing.T) {
	diag := 5 / math.Sqrt2

	tests := []struct {
		name         string
		yaw          float64
		intent       components.MoveIntent
		wantX, wantZ float64
	}{
		{name: "前进", intent: components.MoveIntent{Forward: true}, wantZ: 5},
		{name: "后退", intent: components.MoveIntent{Backward: true}, wantZ: -5},
		{name: "右移", intent: components.MoveIntent{Right: true}, wantX: -5},
		{name: "左移", intent: components.MoveIntent{Left: true}, wantX: 5},
		{name: "斜向不加速", intent: components.MoveIntent{Forward: true, Left: true}, wantX: diag, wantZ: diag},
		{name: "前后抵消", intent: components.MoveIntent{Forward: true, Backward: true}},
		{name: "转向后前进", yaw: math.Pi / 2, intent: components.MoveIntent{Forward: true}, wantX: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gs := newTestGameState(t, nil)
			gs.SetAim(tt.yaw, 0)
			gs.SetMoveIntent(tt.intent)

			NewPlayerMovementSystem(gs).Update(1)

			pose := gs.Pose()
			if math.Abs(pose.X-tt.wantX) > 1e-9 || math.Abs(pose.Z-tt.wantZ) > 1e-9 {
				t.Errorf("position: got (%v, %v), want (%v, %v)", pose.X, pose.Z, tt.wantX, tt.wantZ)
			}
		})
	}
}

// TestPlayerMovementOnlyWhilePlaying 非战斗状态不移动
func TestPlayerMovementOnlyWhilePlaying(t *testing.T) {
	gs := newTestGameState(t, nil)
	gs.SetMoveIntent(components.MoveIntent{Forward: true})
	gs.SetStatus(types.StatusVictory)

	NewPlayerMovementSystem(gs).Update(1)

	if pose := gs.Pose(); pose.X != 0 || pose.Z != 0 {
		t.Errorf("player moved: (%v, %v)", pose.X, pose.Z)
	}
}
