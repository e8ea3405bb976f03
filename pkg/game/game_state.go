package game

import (
	"log"
	"math"
	"sync"

	"github.com/KanaWorksAI/ZOutbreak/pkg/components"
	"github.com/KanaWorksAI/ZOutbreak/pkg/config"
	"github.com/KanaWorksAI/ZOutbreak/pkg/types"
	"github.com/google/uuid"
)

// DamageOutcome DamageEnemy 的结果
type DamageOutcome int

const (
	// DamageIgnored 未知 ID 或敌人已死亡，状态未改变
	DamageIgnored DamageOutcome = iota
	// DamageApplied 扣血但未击杀
	DamageApplied
	// DamageKilled 本次伤害击杀了敌人
	DamageKilled
)

// GameState 存储一局游戏的全部权威状态
//
// 所有动作都在同一把锁内完成，外部永远看不到半更新的状态。
// 换弹计时器的回调运行在其他 goroutine 上，因此必须加锁。
// 表现层通过 Snapshot() 读取深拷贝。
//
// 所有动作都是全函数：无效 ID 或非法时机只会成为空操作，不返回错误。
type GameState struct {
	mu sync.Mutex

	status      types.GameStatus
	level       int
	score       int
	hp          int
	maxHP       int
	ammo        int
	maxAmmo     int
	coins       int
	isReloading bool

	enemies      []components.Enemy
	enemyIndex   map[string]int
	droppedCoins []components.CoinDrop

	pose   components.PlayerPose
	intent components.MoveIntent

	// clock 模拟时钟（秒），单调递增，重开不归零
	clock float64
	// generation 每次 StartGame/ResetGame 递增，用于识别过期的计时器回调
	generation uint64

	cues  CueSink
	newID func() string
}

// Option 配置 GameState
type Option func(*GameState)

// WithCueSink 设置音效提示接收方，nil 表示丢弃
func WithCueSink(sink CueSink) Option {
	return func(gs *GameState) {
		gs.cues = sink
	}
}

// WithIDGenerator 设置敌人和金币的 ID 生成函数
func WithIDGenerator(newID func() string) Option {
	return func(gs *GameState) {
		if newID != nil {
			gs.newID = newID
		}
	}
}

// NewGameState 创建处于 START 状态的游戏状态
func NewGameState(opts ...Option) *GameState {
	gs := &GameState{
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(gs)
	}
	gs.resetLocked(types.StatusStart)
	return gs
}

// resetLocked 整体重置一局的状态，调用方必须持有锁
func (gs *GameState) resetLocked(status types.GameStatus) {
	gs.status = status
	gs.level = 1
	gs.score = 0
	gs.maxHP = config.PlayerMaxHP
	gs.hp = gs.maxHP
	gs.maxAmmo = config.PlayerMaxAmmo
	gs.ammo = gs.maxAmmo
	gs.coins = 0
	gs.isReloading = false
	gs.enemies = nil
	gs.enemyIndex = make(map[string]int)
	gs.droppedCoins = nil
	gs.pose = components.PlayerPose{}
	gs.intent = components.MoveIntent{}
	gs.generation++
}

// emit 在锁外发送提示
func (gs *GameState) emit(cue Cue) {
	if gs.cues != nil {
		gs.cues.PlayCue(cue)
	}
}

// StartGame 开始新的一局：第 1 关、满血满弹、清空列表，状态切换为 PLAYING
func (gs *GameState) StartGame() {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	gs.resetLocked(types.StatusPlaying)
	log.Printf("[GameState] StartGame: generation=%d", gs.generation)
}

// ResetGame 与 StartGame 相同的重置，但状态回到 START
func (gs *GameState) ResetGame() {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	gs.resetLocked(types.StatusStart)
	log.Printf("[GameState] ResetGame: generation=%d", gs.generation)
}

// NextLevel 进入下一关：清空敌人列表，回复 20 点生命（不超过上限）
// 地上的金币保留
func (gs *GameState) NextLevel() {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	gs.level++
	gs.enemies = nil
	gs.enemyIndex = make(map[string]int)
	gs.hp = min(gs.hp+config.LevelClearHeal, gs.maxHP)
	log.Printf("[GameState] NextLevel: level=%d hp=%d", gs.level, gs.hp)
}

// SetStatus 直接设置状态
func (gs *GameState) SetStatus(status types.GameStatus) {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	if gs.status != status {
		log.Printf("[GameState] status %s -> %s", gs.status, status)
	}
	gs.status = status
}

// TakeDamage 玩家受到伤害
// 仅在 PLAYING 时生效；生命不会低于 0，首次降到 0 时切换为 GAME_OVER
func (gs *GameState) TakeDamage(amount int) {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	if gs.status != types.StatusPlaying || amount <= 0 {
		return
	}
	gs.hp = max(gs.hp-amount, 0)
	if gs.hp == 0 {
		gs.status = types.StatusGameOver
		log.Printf("[GameState] player died at level %d, score=%d", gs.level, gs.score)
	}
}

// SpawnEnemy 追加一个敌人记录
// ID 为空时自动生成；ID 重复时忽略并返回 false
func (gs *GameState) SpawnEnemy(enemy components.Enemy) (string, bool) {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	return gs.spawnLocked(enemy)
}

func (gs *GameState) spawnLocked(enemy components.Enemy) (string, bool) {
	if enemy.ID == "" {
		enemy.ID = gs.newID()
	}
	if _, exists := gs.enemyIndex[enemy.ID]; exists {
		return "", false
	}
	gs.enemyIndex[enemy.ID] = len(gs.enemies)
	gs.enemies = append(gs.enemies, enemy)
	return enemy.ID, true
}

// SpawnEnemyOfType 按类型属性表在 (x, z) 生成一个敌人
// 近战计时按“已冷却”初始化，贴身后可以立刻攻击
func (gs *GameState) SpawnEnemyOfType(enemyType types.EnemyType, x, z float64) (components.Enemy, bool) {
	stats, ok := config.GetEnemyStats(enemyType)
	if !ok {
		return components.Enemy{}, false
	}

	gs.mu.Lock()
	defer gs.mu.Unlock()

	enemy := components.Enemy{
		X:            x,
		Z:            z,
		HP:           stats.Health,
		MaxHP:        stats.Health,
		Speed:        stats.Speed,
		Type:         enemyType,
		LastAttackAt: gs.clock - config.AttackCooldown,
	}
	id, ok := gs.spawnLocked(enemy)
	if !ok {
		return components.Enemy{}, false
	}
	enemy.ID = id
	return enemy, true
}

// DamageEnemy 对存活敌人造成伤害
// 生命降到 0 及以下时标记死亡、加分，并在原地掉落金币
func (gs *GameState) DamageEnemy(id string, amount int) DamageOutcome {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	idx, ok := gs.enemyIndex[id]
	if !ok || amount < 0 {
		return DamageIgnored
	}
	enemy := &gs.enemies[idx]
	if enemy.IsDead {
		return DamageIgnored
	}

	enemy.HP -= amount
	if enemy.HP > 0 {
		return DamageApplied
	}

	enemy.HP = 0
	enemy.IsDead = true

	stats, _ := config.GetEnemyStats(enemy.Type)
	gs.score += stats.ScoreValue
	gs.droppedCoins = append(gs.droppedCoins, components.CoinDrop{
		ID:    gs.newID(),
		X:     enemy.X,
		Z:     enemy.Z,
		Value: stats.CoinValue,
	})
	return DamageKilled
}

// ShootAmmo 消耗一发子弹，不低于 0
func (gs *GameState) ShootAmmo() {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	gs.ammo = max(gs.ammo-1, 0)
}

// StartReload 开始换弹，已在换弹时返回 false
// 成功时发出 CueReload
func (gs *GameState) StartReload() bool {
	gs.mu.Lock()
	if gs.isReloading {
		gs.mu.Unlock()
		return false
	}
	gs.isReloading = true
	gs.mu.Unlock()

	gs.emit(CueReload)
	return true
}

// FinishReload 结束换弹，弹匣补满
func (gs *GameState) FinishReload() {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	gs.isReloading = false
	gs.ammo = gs.maxAmmo
}

// FinishReloadFor 仅当仍处于 generation 这一局且正在换弹时结束换弹
// 返回是否生效
func (gs *GameState) FinishReloadFor(generation uint64) bool {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	if gs.generation != generation || !gs.isReloading {
		return false
	}
	gs.isReloading = false
	gs.ammo = gs.maxAmmo
	return true
}

// CollectCoin 拾取金币并发出 CueCoin，未知 ID 为空操作
func (gs *GameState) CollectCoin(id string) bool {
	gs.mu.Lock()
	found := -1
	for i := range gs.droppedCoins {
		if gs.droppedCoins[i].ID == id {
			found = i
			break
		}
	}
	if found < 0 {
		gs.mu.Unlock()
		return false
	}
	gs.coins += gs.droppedCoins[found].Value
	gs.droppedCoins = append(gs.droppedCoins[:found], gs.droppedCoins[found+1:]...)
	gs.mu.Unlock()

	gs.emit(CueCoin)
	return true
}

// SetMoveIntent 设置移动意图
func (gs *GameState) SetMoveIntent(intent components.MoveIntent) {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	gs.intent = intent
}

// SetAim 设置视角，俯仰角被限制在 ±PlayerPitchLimit
func (gs *GameState) SetAim(yaw, pitch float64) {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	gs.pose.Yaw = math.Remainder(yaw, 2*math.Pi)
	gs.pose.Pitch = math.Max(-config.PlayerPitchLimit, math.Min(config.PlayerPitchLimit, pitch))
}

// MovePlayer 平移玩家
func (gs *GameState) MovePlayer(dx, dz float64) {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	gs.pose.X += dx
	gs.pose.Z += dz
}

// MoveEnemy 设置存活敌人的位置，死亡或未知敌人忽略
func (gs *GameState) MoveEnemy(id string, x, z float64) bool {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	idx, ok := gs.enemyIndex[id]
	if !ok || gs.enemies[idx].IsDead {
		return false
	}
	gs.enemies[idx].X = x
	gs.enemies[idx].Z = z
	return true
}

// MarkEnemyAttack 记录存活敌人的攻击时间
func (gs *GameState) MarkEnemyAttack(id string, at float64) bool {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	idx, ok := gs.enemyIndex[id]
	if !ok || gs.enemies[idx].IsDead {
		return false
	}
	gs.enemies[idx].LastAttackAt = at
	return true
}

// AdvanceClock 推进模拟时钟并返回新的时间
func (gs *GameState) AdvanceClock(dt float64) float64 {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	if dt > 0 {
		gs.clock += dt
	}
	return gs.clock
}

// Status 当前状态
func (gs *GameState) Status() types.GameStatus {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	return gs.status
}

// Level 当前关卡
func (gs *GameState) Level() int {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	return gs.level
}

// HP 当前生命
func (gs *GameState) HP() int {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	return gs.hp
}

// Ammo 当前弹药
func (gs *GameState) Ammo() int {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	return gs.ammo
}

// IsReloading 是否正在换弹
func (gs *GameState) IsReloading() bool {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	return gs.isReloading
}

// Clock 模拟时钟（秒）
func (gs *GameState) Clock() float64 {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	return gs.clock
}

// Generation 当前局的代数
func (gs *GameState) Generation() uint64 {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	return gs.generation
}

// Pose 玩家位姿
func (gs *GameState) Pose() components.PlayerPose {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	return gs.pose
}
