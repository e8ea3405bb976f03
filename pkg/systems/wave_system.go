package systems

import (
	"log"
	"math"

	"github.com/KanaWorksAI/ZOutbreak/pkg/config"
	"github.com/KanaWorksAI/ZOutbreak/pkg/game"
	"github.com/KanaWorksAI/ZOutbreak/pkg/types"
	"github.com/KanaWorksAI/ZOutbreak/pkg/utils"
)

// WaveSystem 按关卡表生成敌人，并在清场后推进关卡
//
// 每帧执行，仅在 PLAYING 时生效：
//   - 已生成数量达到本关上限且列表中所有敌人死亡 → 过关（第 10 关 → 胜利）
//   - 否则累积时间，达到刷怪间隔时在 30~50 的环带上生成一个敌人
//
// 私有计数器在状态代数变化（新的一局）时清零，重开不会继承上一局的进度。
type WaveSystem struct {
	gameState *game.GameState
	rng       *utils.RNG
	cues      game.CueSink

	generation  uint64
	spawned     int     // 本关已生成数量
	accumulator float64 // 距上次生成的毫秒数
}

// NewWaveSystem 创建波次系统
func NewWaveSystem(gs *game.GameState, rng *utils.RNG, cues game.CueSink) *WaveSystem {
	return &WaveSystem{
		gameState:  gs,
		rng:        rng,
		cues:       cues,
		generation: gs.Generation(),
	}
}

// Spawned 本关已生成的敌人数量
func (s *WaveSystem) Spawned() int {
	return s.spawned
}

// Update 推进刷怪与关卡状态
func (s *WaveSystem) Update(deltaTime float64) {
	snap := s.gameState.Snapshot()
	if snap.Status != types.StatusPlaying {
		return
	}

	if snap.Generation != s.generation {
		s.generation = snap.Generation
		s.resetCounters()
	}

	level := config.GetLevelDefinition(snap.Level)

	if s.spawned >= level.Count && snap.AllEnemiesDead() {
		if snap.Level >= config.FinalLevel {
			log.Printf("[WaveSystem] level %d cleared, victory (score=%d)", snap.Level, snap.Score)
			s.gameState.SetStatus(types.StatusVictory)
		} else {
			log.Printf("[WaveSystem] level %d cleared, advancing", snap.Level)
			s.gameState.NextLevel()
		}
		s.resetCounters()
		return
	}

	if s.spawned >= level.Count {
		return
	}

	s.accumulator += deltaTime * 1000
	if s.accumulator+timeEpsilon < float64(level.SpawnInterval.Milliseconds()) {
		return
	}

	s.accumulator = 0
	s.spawned++
	s.spawn(level)
}

func (s *WaveSystem) resetCounters() {
	s.spawned = 0
	s.accumulator = 0
}

// spawn 在环带上生成一个敌人
// 首领关的第一只必为首领，其余从本关类型中均匀抽取
func (s *WaveSystem) spawn(level config.LevelDefinition) {
	angle := s.rng.Float64() * 2 * math.Pi
	radius := s.rng.Range(config.SpawnMinRadius, config.SpawnMaxRadius)
	x := math.Sin(angle) * radius
	z := math.Cos(angle) * radius

	enemyType := level.Types[s.rng.Intn(len(level.Types))]
	if level.IsBossLevel && s.spawned == 1 {
		enemyType = types.EnemyBoss
	}

	enemy, ok := s.gameState.SpawnEnemyOfType(enemyType, x, z)
	if !ok {
		log.Printf("[WaveSystem] Warning: failed to spawn %s", enemyType)
		return
	}

	if s.cues != nil {
		s.cues.PlayCue(game.CueGroan)
	}
	if enemyType == types.EnemyBoss {
		log.Printf("[WaveSystem] boss spawned at (%.1f, %.1f), id=%s", enemy.X, enemy.Z, enemy.ID)
	}
}
