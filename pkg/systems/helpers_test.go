package systems

import (
	"fmt"
	"sync"
	"testing"

	"github.com/KanaWorksAI/ZOutbreak/pkg/components"
	"github.com/KanaWorksAI/ZOutbreak/pkg/game"
	"github.com/KanaWorksAI/ZOutbreak/pkg/types"
)

// cueRecorder 记录收到的提示，测试辅助
type cueRecorder struct {
	mu   sync.Mutex
	cues []game.Cue
}

func (r *cueRecorder) PlayCue(cue game.Cue) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cues = append(r.cues, cue)
}

// count 返回某个提示出现的次数
func (r *cueRecorder) count(cue game.Cue) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, c := range r.cues {
		if c == cue {
			n++
		}
	}
	return n
}

// newTestGameState 创建处于 PLAYING 状态、ID 可预测的游戏状态
func newTestGameState(t *testing.T, cues game.CueSink) *game.GameState {
	t.Helper()
	n := 0
	gs := game.NewGameState(
		game.WithCueSink(cues),
		game.WithIDGenerator(func() string {
			n++
			return fmt.Sprintf("e%d", n)
		}),
	)
	gs.StartGame()
	return gs
}

// spawnAt 在指定位置生成敌人，失败时终止测试
func spawnAt(t *testing.T, gs *game.GameState, enemyType types.EnemyType, x, z float64) components.Enemy {
	t.Helper()
	enemy, ok := gs.SpawnEnemyOfType(enemyType, x, z)
	if !ok {
		t.Fatalf("SpawnEnemyOfType(%v) failed", enemyType)
	}
	return enemy
}

// killAll 杀死所有存活敌人
func killAll(gs *game.GameState) {
	snap := gs.Snapshot()
	for _, e := range snap.Enemies {
		if !e.IsDead {
			gs.DamageEnemy(e.ID, e.HP)
		}
	}
}

// enemyByID 从快照中查找敌人
func enemyByID(t *testing.T, gs *game.GameState, id string) components.Enemy {
	t.Helper()
	for _, e := range gs.Snapshot().Enemies {
		if e.ID == id {
			return e
		}
	}
	t.Fatalf("enemy %s not found", id)
	return components.Enemy{}
}
