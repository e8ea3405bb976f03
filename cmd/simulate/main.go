// simulate 无界面运行一局游戏
//
// 使用手动调度器和固定步长驱动 Session，由一个简单的机器人操作：
// 始终瞄准最近的存活敌人，敌人贴近时后退。结束后打印结果。
//
// 用法：
//
//	go run ./cmd/simulate --seed 42
//	go run ./cmd/simulate --seed 7 --duration 20m --verbose
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"sync"
	"time"

	"github.com/KanaWorksAI/ZOutbreak/pkg/components"
	"github.com/KanaWorksAI/ZOutbreak/pkg/config"
	"github.com/KanaWorksAI/ZOutbreak/pkg/game"
	"github.com/KanaWorksAI/ZOutbreak/pkg/systems"
	"github.com/KanaWorksAI/ZOutbreak/pkg/types"
	"github.com/KanaWorksAI/ZOutbreak/pkg/utils"
)

var (
	verbose    = flag.Bool("verbose", false, "显示详细日志")
	seed       = flag.Int64("seed", 1, "随机种子")
	configPath = flag.String("config", "", "运行时配置文件路径（默认使用内置默认值）")
	duration   = flag.Duration("duration", 15*time.Minute, "最长模拟时间")
	retreat    = flag.Float64("retreat", 6, "敌人距离小于此值时后退（0 关闭）")
)

// cueCounter 统计各类提示的次数
type cueCounter struct {
	mu     sync.Mutex
	counts map[game.Cue]int
}

func (c *cueCounter) PlayCue(cue game.Cue) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.counts[cue]++
}

func (c *cueCounter) get(cue game.Cue) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.counts[cue]
}

// steer 瞄准最近的存活敌人，返回其距离
func steer(session *systems.Session) float64 {
	snap := session.Snapshot()
	nearest := math.Inf(1)
	var target components.Enemy
	for _, e := range snap.LiveEnemies() {
		d := utils.Distance(snap.Pose.X, snap.Pose.Z, e.X, e.Z)
		if d < nearest {
			nearest = d
			target = e
		}
	}
	if math.IsInf(nearest, 1) {
		session.SetMoveIntent(components.MoveIntent{})
		return nearest
	}

	yaw := math.Atan2(target.X-snap.Pose.X, target.Z-snap.Pose.Z)
	delta := math.Remainder(yaw-snap.Pose.Yaw, 2*math.Pi)
	session.Aim(delta, -snap.Pose.Pitch)

	session.SetMoveIntent(components.MoveIntent{Backward: nearest < *retreat})
	return nearest
}

func main() {
	flag.Parse()

	if !*verbose {
		log.SetOutput(io.Discard)
	}

	cfg := config.DefaultGameConfig()
	if *configPath != "" {
		loaded, err := config.LoadGameConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "配置加载失败: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	step := cfg.Simulation.HeadlessStep

	counter := &cueCounter{counts: make(map[game.Cue]int)}
	scheduler := game.NewManualScheduler()
	session := systems.NewSession(systems.SessionConfig{
		Scheduler:    scheduler,
		RNG:          utils.NewRNG(*seed),
		Cues:         counter,
		MaxDeltaTime: cfg.Simulation.MaxDeltaTime,
	})
	defer session.Close()

	session.StartGame()

	start := time.Now()
	ticks := 0
	lastLevel := 1
	for session.State().Status() == types.StatusPlaying {
		if session.State().Clock() >= duration.Seconds() {
			break
		}
		steer(session)
		session.Update(step)
		ticks++

		if level := session.State().Level(); level != lastLevel {
			snap := session.Snapshot()
			fmt.Printf("  %7.1fs  level %d reached (hp=%d score=%d)\n", snap.Clock, level, snap.HP, snap.Score)
			lastLevel = level
		}
	}

	snap := session.Snapshot()
	fmt.Println("=== Z-OUTBREAK headless run ===")
	fmt.Printf("seed:        %d\n", *seed)
	fmt.Printf("result:      %s\n", snap.Status)
	fmt.Printf("level:       %d/%d\n", snap.Level, config.FinalLevel)
	fmt.Printf("score:       %d\n", snap.Score)
	fmt.Printf("coins:       %d\n", snap.Coins)
	fmt.Printf("hp:          %d/%d\n", snap.HP, snap.MaxHP)
	fmt.Printf("shots:       %d\n", counter.get(game.CueShot))
	fmt.Printf("hits taken:  %d\n", counter.get(game.CueHit))
	fmt.Printf("reloads:     %d\n", counter.get(game.CueReload))
	fmt.Printf("sim time:    %.1fs (%d ticks, step %.4fs)\n", snap.Clock, ticks, step)
	fmt.Printf("wall time:   %s\n", time.Since(start).Round(time.Millisecond))

	if snap.Status == types.StatusGameOver {
		os.Exit(2)
	}
}
