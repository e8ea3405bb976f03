package systems

import (
	"log"

	"github.com/KanaWorksAI/ZOutbreak/pkg/config"
	"github.com/KanaWorksAI/ZOutbreak/pkg/game"
)

// MusicSystem 环境音乐
// 启动时立即发出一个音符，之后每 2.5 秒一个，直到停止
type MusicSystem struct {
	scheduler game.Scheduler
	cues      game.CueSink
	task      game.Task
}

// NewMusicSystem 创建环境音乐系统
func NewMusicSystem(scheduler game.Scheduler, cues game.CueSink) *MusicSystem {
	return &MusicSystem{
		scheduler: scheduler,
		cues:      cues,
	}
}

// Start 开始播放，已在播放时先停止旧的循环
func (s *MusicSystem) Start() {
	s.Stop()
	if s.cues == nil {
		return
	}

	cues := s.cues
	cues.PlayCue(game.CueMusicNote)
	s.task = s.scheduler.Every(config.MusicInterval, func() {
		cues.PlayCue(game.CueMusicNote)
	})
	log.Printf("[MusicSystem] ambient loop started")
}

// Stop 停止循环
func (s *MusicSystem) Stop() {
	if s.task != nil {
		s.task.Cancel()
		s.task = nil
	}
}

// IsPlaying 循环是否在运行
func (s *MusicSystem) IsPlaying() bool {
	return s.task != nil
}
