package systems

import (
	"math"
	"testing"

	"github.com/KanaWorksAI/ZOutbreak/pkg/components"
	"github.com/KanaWorksAI/ZOutbreak/pkg/game"
	"github.com/KanaWorksAI/ZOutbreak/pkg/game/mocks"
	"github.com/KanaWorksAI/ZOutbreak/pkg/types"
	"github.com/KanaWorksAI/ZOutbreak/pkg/utils"
	"go.uber.org/mock/gomock"
)

// TestFindAimTarget 射线选取最近的存活敌人
func TestFindAimTarget(t *testing.T) {
	ahead := components.PlayerPose{}

	tests := []struct {
		name    string
		pose    components.PlayerPose
		enemies []components.Enemy
		wantID  string
		wantHit bool
	}{
		{
			name:    "正前方命中",
			pose:    ahead,
			enemies: []components.Enemy{{ID: "a", Z: 10, Type: types.EnemyNormal}},
			wantID:  "a",
			wantHit: true,
		},
		{
			name: "选择最近的敌人",
			pose: ahead,
			enemies: []components.Enemy{
				{ID: "far", Z: 20, Type: types.EnemyNormal},
				{ID: "near", Z: 8, Type: types.EnemyNormal},
			},
			wantID:  "near",
			wantHit: true,
		},
		{
			name: "死亡敌人不遮挡",
			pose: ahead,
			enemies: []components.Enemy{
				{ID: "dead", Z: 5, Type: types.EnemyNormal, IsDead: true},
				{ID: "live", Z: 15, Type: types.EnemyNormal},
			},
			wantID:  "live",
			wantHit: true,
		},
		{
			name:    "超出射程",
			pose:    ahead,
			enemies: []components.Enemy{{ID: "a", Z: 60, Type: types.EnemyNormal}},
		},
		{
			name:    "身后的敌人",
			pose:    ahead,
			enemies: []components.Enemy{{ID: "a", Z: -10, Type: types.EnemyNormal}},
		},
		{
			name:    "偏离普通命中盒",
			pose:    ahead,
			enemies: []components.Enemy{{ID: "a", X: 1, Z: 10, Type: types.EnemyNormal}},
		},
		{
			name:    "首领命中盒更大",
			pose:    ahead,
			enemies: []components.Enemy{{ID: "boss", X: 1, Z: 10, Type: types.EnemyBoss}},
			wantID:  "boss",
			wantHit: true,
		},
		{
			name:    "抬头越过头顶",
			pose:    components.PlayerPose{Pitch: 0.5},
			enemies: []components.Enemy{{ID: "a", Z: 10, Type: types.EnemyNormal}},
		},
		{
			name:    "转向后命中侧面敌人",
			pose:    components.PlayerPose{Yaw: math.Pi / 2},
			enemies: []components.Enemy{{ID: "side", X: 12, Type: types.EnemyNormal}},
			wantID:  "side",
			wantHit: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target, ok := FindAimTarget(tt.pose, tt.enemies)
			if ok != tt.wantHit {
				t.Fatalf("hit: got %v, want %v", ok, tt.wantHit)
			}
			if ok && target.EnemyID != tt.wantID {
				t.Errorf("target: got %s, want %s", target.EnemyID, tt.wantID)
			}
		})
	}
}

// TestFindAimTargetDistance 命中距离是到命中盒前表面的距离
func TestFindAimTargetDistance(t *testing.T) {
	target, ok := FindAimTarget(components.PlayerPose{}, []components.Enemy{{ID: "a", Z: 10, Type: types.EnemyNormal}})
	if !ok {
		t.Fatal("expected hit")
	}
	if math.Abs(target.Distance-9.65) > 1e-9 {
		t.Errorf("distance: got %v, want 9.65", target.Distance)
	}
	if math.Abs(target.Point.Y-1.7) > 1e-9 {
		t.Errorf("hit point height: got %v, want 1.7", target.Point.Y)
	}
}

// TestCombatSystemFires 命中时扣弹、伤害、发出射击提示
func TestCombatSystemFires(t *testing.T) {
	ctrl := gomock.NewController(t)
	sink := mocks.NewMockCueSink(ctrl)
	sink.EXPECT().PlayCue(game.CueShot).Times(1)

	gs := newTestGameState(t, nil)
	enemy := spawnAt(t, gs, types.EnemyNormal, 0, 10)
	particles := NewParticleSystem(utils.NewRNG(1))
	cs := NewCombatSystem(gs, sink, particles)

	if !cs.Update(0.016) {
		t.Fatal("expected the system to fire")
	}

	if got := gs.Ammo(); got != 19 {
		t.Errorf("ammo: got %d, want 19", got)
	}
	if got := enemyByID(t, gs, enemy.ID).HP; got != 18 {
		t.Errorf("enemy hp: got %d, want 18", got)
	}
	if got := particles.ActiveCount(); got != MuzzlePoolSize+BloodBurstSize {
		t.Errorf("particles: got %d, want %d", got, MuzzlePoolSize+BloodBurstSize)
	}
}

// TestCombatSystemFireRate 两次开火间隔不小于 100ms
func TestCombatSystemFireRate(t *testing.T) {
	gs := newTestGameState(t, nil)
	spawnAt(t, gs, types.EnemyTank, 0, 10)
	cs := NewCombatSystem(gs, nil, nil)

	if !cs.Update(0) {
		t.Fatal("first shot should fire")
	}

	gs.AdvanceClock(0.05)
	if cs.Update(0.05) {
		t.Error("fired after 50ms")
	}

	gs.AdvanceClock(0.05)
	if !cs.Update(0.05) {
		t.Error("did not fire after 100ms")
	}

	// 10 个 0.01 秒的帧累加后仍然满足间隔
	for i := 0; i < 10; i++ {
		gs.AdvanceClock(0.01)
	}
	if !cs.Update(0.01) {
		t.Error("did not fire after ten 10ms frames")
	}

	if got := gs.Ammo(); got != 17 {
		t.Errorf("ammo: got %d, want 17", got)
	}
}

// TestCombatSystemHoldsFire 没有目标、换弹中或没有子弹时不开火
func TestCombatSystemHoldsFire(t *testing.T) {
	tests := []struct {
		name  string
		setup func(gs *game.GameState)
	}{
		{
			name:  "没有目标",
			setup: func(gs *game.GameState) {},
		},
		{
			name: "换弹中",
			setup: func(gs *game.GameState) {
				gs.SpawnEnemyOfType(types.EnemyNormal, 0, 10)
				gs.StartReload()
			},
		},
		{
			name: "弹匣为空",
			setup: func(gs *game.GameState) {
				gs.SpawnEnemyOfType(types.EnemyNormal, 0, 10)
				for i := 0; i < 20; i++ {
					gs.ShootAmmo()
				}
			},
		},
		{
			name: "游戏结束",
			setup: func(gs *game.GameState) {
				gs.SpawnEnemyOfType(types.EnemyNormal, 0, 10)
				gs.SetStatus(types.StatusGameOver)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gs := newTestGameState(t, nil)
			tt.setup(gs)
			ammo := gs.Ammo()

			cs := NewCombatSystem(gs, nil, nil)
			if cs.Update(0.1) {
				t.Error("system fired")
			}
			if got := gs.Ammo(); got != ammo {
				t.Errorf("ammo changed: %d -> %d", ammo, got)
			}
		})
	}
}

// TestCombatSystemKill 击杀加分并掉落金币
func TestCombatSystemKill(t *testing.T) {
	gs := newTestGameState(t, nil)
	enemy := spawnAt(t, gs, types.EnemyFast, 0, 10)
	cs := NewCombatSystem(gs, nil, nil)

	cs.Update(0)
	gs.AdvanceClock(0.1)
	cs.Update(0.1)

	snap := gs.Snapshot()
	if !snap.Enemies[0].IsDead || snap.Enemies[0].HP != 0 {
		t.Fatalf("enemy after two shots: %+v", snap.Enemies[0])
	}
	if snap.Score != 50 {
		t.Errorf("score: got %d, want 50", snap.Score)
	}
	if len(snap.DroppedCoins) != 1 || snap.DroppedCoins[0].Value != 5 {
		t.Fatalf("dropped coins: %+v", snap.DroppedCoins)
	}
	if snap.DroppedCoins[0].X != enemy.X || snap.DroppedCoins[0].Z != enemy.Z {
		t.Errorf("coin position: got (%v, %v)", snap.DroppedCoins[0].X, snap.DroppedCoins[0].Z)
	}

	// 死亡敌人不再被瞄准
	gs.AdvanceClock(0.1)
	if cs.Update(0.1) {
		t.Error("fired at a dead enemy")
	}
}
