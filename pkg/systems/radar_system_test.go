package systems

import (
	"math"
	"testing"

	"github.com/KanaWorksAI/ZOutbreak/pkg/components"
	"github.com/KanaWorksAI/ZOutbreak/pkg/game"
	"github.com/KanaWorksAI/ZOutbreak/pkg/types"
)

// TestProjectRadar 敌人投影到朝向为上的雷达
func TestProjectRadar(t *testing.T) {
	tests := []struct {
		name         string
		pose         components.PlayerPose
		enemy        components.Enemy
		wantX, wantY float64
	}{
		{
			name:  "正前方显示在上方",
			enemy: components.Enemy{Z: 20},
			wantY: -25,
		},
		{
			name:  "身后显示在下方",
			enemy: components.Enemy{Z: -8},
			wantY: 10,
		},
		{
			name:  "右侧显示在右边",
			enemy: components.Enemy{X: -20},
			wantX: 25,
		},
		{
			name:  "超出范围贴边",
			enemy: components.Enemy{Z: 100},
			wantY: -50,
		},
		{
			name:  "斜向超出范围按比例贴边",
			enemy: components.Enemy{X: -60, Z: 80},
			wantX: 30,
			wantY: -40,
		},
		{
			name:  "相对玩家位置和朝向",
			pose:  components.PlayerPose{X: 10, Z: 10, Yaw: math.Pi / 2},
			enemy: components.Enemy{X: 30, Z: 10},
			wantY: -25,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := game.Snapshot{Pose: tt.pose, Enemies: []components.Enemy{tt.enemy}}

			blips := ProjectRadar(snap)
			if len(blips) != 1 {
				t.Fatalf("blips: got %d, want 1", len(blips))
			}
			if math.Abs(blips[0].X-tt.wantX) > 1e-9 || math.Abs(blips[0].Y-tt.wantY) > 1e-9 {
				t.Errorf("blip: got (%v, %v), want (%v, %v)", blips[0].X, blips[0].Y, tt.wantX, tt.wantY)
			}
		})
	}
}

// TestProjectRadarSkipsDead 死亡敌人不显示，首领单独标记
func TestProjectRadarSkipsDead(t *testing.T) {
	snap := game.Snapshot{Enemies: []components.Enemy{
		{Z: 5, IsDead: true},
		{Z: 10, Type: types.EnemyBoss},
		{Z: 15, Type: types.EnemyFast},
	}}

	blips := ProjectRadar(snap)
	if len(blips) != 2 {
		t.Fatalf("blips: got %d, want 2", len(blips))
	}
	if !blips[0].IsBoss() || blips[1].IsBoss() {
		t.Errorf("boss flags: %v %v", blips[0].IsBoss(), blips[1].IsBoss())
	}
	for _, b := range blips {
		if math.Hypot(b.X, b.Y) > 50 {
			t.Errorf("blip outside radar: %+v", b)
		}
	}
}
