package systems

import (
	"log"

	"github.com/KanaWorksAI/ZOutbreak/pkg/config"
	"github.com/KanaWorksAI/ZOutbreak/pkg/game"
	"github.com/KanaWorksAI/ZOutbreak/pkg/types"
)

// ReloadSystem 换弹流程
//
// 弹匣打空且未在换弹时自动开始换弹；玩家也可以在弹匣未满时手动换弹。
// 换弹完成由调度器在 ReloadTime 后触发，回调携带开始时的状态代数，
// 新的一局开始后旧回调不会生效。
type ReloadSystem struct {
	gameState *game.GameState
	scheduler game.Scheduler
	task      game.Task
}

// NewReloadSystem 创建换弹系统
func NewReloadSystem(gs *game.GameState, scheduler game.Scheduler) *ReloadSystem {
	return &ReloadSystem{
		gameState: gs,
		scheduler: scheduler,
	}
}

// Update 自动换弹检查
func (s *ReloadSystem) Update(deltaTime float64) {
	snap := s.gameState.Snapshot()
	if snap.Status != types.StatusPlaying {
		return
	}
	if snap.Ammo == 0 && !snap.IsReloading {
		s.begin()
	}
}

// RequestReload 手动换弹，仅在未换弹且弹匣未满时生效
func (s *ReloadSystem) RequestReload() bool {
	snap := s.gameState.Snapshot()
	if snap.Status != types.StatusPlaying || snap.IsReloading || snap.Ammo >= snap.MaxAmmo {
		return false
	}
	return s.begin()
}

func (s *ReloadSystem) begin() bool {
	if !s.gameState.StartReload() {
		return false
	}

	generation := s.gameState.Generation()
	gs := s.gameState
	s.task = s.scheduler.AfterFunc(config.ReloadTime, func() {
		if !gs.FinishReloadFor(generation) {
			log.Printf("[ReloadSystem] stale reload callback ignored (generation %d)", generation)
		}
	})
	return true
}

// Cancel 取消进行中的换弹计时器
func (s *ReloadSystem) Cancel() {
	if s.task != nil {
		s.task.Cancel()
		s.task = nil
	}
}
