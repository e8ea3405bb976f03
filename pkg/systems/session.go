package systems

import (
	"log"
	"time"

	"github.com/KanaWorksAI/ZOutbreak/pkg/components"
	"github.com/KanaWorksAI/ZOutbreak/pkg/game"
	"github.com/KanaWorksAI/ZOutbreak/pkg/utils"
)

// timeEpsilon 浮点时间比较的容差，累加的帧时间不会因舍入错过冷却边界
const timeEpsilon = 1e-9

// advancer 由调用方推进时间的调度器（ManualScheduler）
type advancer interface {
	Advance(d time.Duration)
}

// SessionConfig Session 的依赖
type SessionConfig struct {
	Scheduler    game.Scheduler // 必填
	RNG          *utils.RNG     // 为 nil 时按时间取种
	Cues         game.CueSink   // 为 nil 时静音
	MaxDeltaTime float64        // 单帧最大步长（秒），0 表示不限制
}

// Session 一局游戏的驱动器
//
// 持有状态存储和全部系统，每帧按固定顺序执行：
// 时钟 → 玩家移动 → 自动瞄准射击 → 自动换弹 → 敌人移动与近战 → 拾取金币 → 波次 → 粒子。
// 后面的步骤能看到前面步骤的结果。
//
// Session 只应在一个 goroutine 上调用（ebiten 的 Update 或无界面循环）。
type Session struct {
	gameState *game.GameState
	scheduler game.Scheduler
	cues      game.CueSink
	maxDelta  float64

	movement  *PlayerMovementSystem
	combat    *CombatSystem
	reload    *ReloadSystem
	behavior  *EnemyBehaviorSystem
	coins     *CoinCollectionSystem
	waves     *WaveSystem
	particles *ParticleSystem
	music     *MusicSystem
}

// NewSession 创建处于 START 状态的会话
func NewSession(cfg SessionConfig) *Session {
	rng := cfg.RNG
	if rng == nil {
		rng = utils.NewRNG(0)
	}
	scheduler := cfg.Scheduler
	if scheduler == nil {
		scheduler = game.NewRealScheduler()
	}

	gs := game.NewGameState(
		game.WithCueSink(cfg.Cues),
		game.WithIDGenerator(rng.NewID),
	)
	particles := NewParticleSystem(rng)

	return &Session{
		gameState: gs,
		scheduler: scheduler,
		cues:      cfg.Cues,
		maxDelta:  cfg.MaxDeltaTime,
		movement:  NewPlayerMovementSystem(gs),
		combat:    NewCombatSystem(gs, cfg.Cues, particles),
		reload:    NewReloadSystem(gs, scheduler),
		behavior:  NewEnemyBehaviorSystem(gs, cfg.Cues),
		coins:     NewCoinCollectionSystem(gs),
		waves:     NewWaveSystem(gs, rng, cfg.Cues),
		particles: particles,
		music:     NewMusicSystem(scheduler, cfg.Cues),
	}
}

// StartGame 开始新的一局，取消上一局的计时器
func (s *Session) StartGame() {
	s.reload.Cancel()
	s.particles.Reset()
	s.gameState.StartGame()
	s.music.Start()
	log.Printf("[Session] game started")
}

// ResetGame 回到开始界面
func (s *Session) ResetGame() {
	s.reload.Cancel()
	s.music.Stop()
	s.particles.Reset()
	s.gameState.ResetGame()
	log.Printf("[Session] game reset")
}

// Close 释放计时器，会话不再使用
func (s *Session) Close() {
	s.reload.Cancel()
	s.music.Stop()
}

// RequestReload 手动换弹
func (s *Session) RequestReload() bool {
	return s.reload.RequestReload()
}

// SetMoveIntent 设置 WASD 意图
func (s *Session) SetMoveIntent(intent components.MoveIntent) {
	s.gameState.SetMoveIntent(intent)
}

// Aim 按增量转动视角（弧度）
// 正的 deltaYaw 向左转，正的 deltaPitch 抬头
func (s *Session) Aim(deltaYaw, deltaPitch float64) {
	pose := s.gameState.Pose()
	s.gameState.SetAim(pose.Yaw+deltaYaw, pose.Pitch+deltaPitch)
}

// Update 推进一帧
func (s *Session) Update(deltaTime float64) {
	if deltaTime < 0 {
		deltaTime = 0
	}
	if s.maxDelta > 0 && deltaTime > s.maxDelta {
		deltaTime = s.maxDelta
	}

	// 手动调度器与模拟时钟同步推进，换弹完成在本帧逻辑之前生效
	if adv, ok := s.scheduler.(advancer); ok {
		adv.Advance(time.Duration(deltaTime * float64(time.Second)))
	}

	s.gameState.AdvanceClock(deltaTime)
	s.movement.Update(deltaTime)
	s.combat.Update(deltaTime)
	s.reload.Update(deltaTime)
	s.behavior.Update(deltaTime)
	s.coins.Update(deltaTime)
	s.waves.Update(deltaTime)
	s.particles.Update(deltaTime)
}

// State 状态存储
func (s *Session) State() *game.GameState {
	return s.gameState
}

// Snapshot 当前状态的副本
func (s *Session) Snapshot() game.Snapshot {
	return s.gameState.Snapshot()
}

// Radar 雷达标记
func (s *Session) Radar() []RadarBlip {
	return ProjectRadar(s.gameState.Snapshot())
}

// Particles 活动粒子
func (s *Session) Particles() []components.Particle {
	return s.particles.Active()
}

// Waves 波次系统（只读查询）
func (s *Session) Waves() *WaveSystem {
	return s.waves
}
