package game

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/KanaWorksAI/ZOutbreak/pkg/types"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

const (
	recordsObject   = "records"
	recordsProperty = "best"
)

// SaveData 跨局保存的战绩
type SaveData struct {
	BestScore    int       `yaml:"bestScore"`    // 最高分
	BestLevel    int       `yaml:"bestLevel"`    // 到达过的最高关卡
	Victories    int       `yaml:"victories"`    // 通关次数
	RunsPlayed   int       `yaml:"runsPlayed"`   // 已结束的局数
	TotalCoins   int       `yaml:"totalCoins"`   // 累计金币
	LastPlayedAt time.Time `yaml:"lastPlayedAt"` // 最近一局结束时间
}

// SaveManager 战绩管理器
//
// 职责：
//   - 在一局结束（失败或胜利）时记录结果
//   - 通过 gdata 持久化为 YAML，与 SettingsManager 共用同一个存储
//
// gdataManager 为 nil 时只在内存中记录。
type SaveManager struct {
	mu           sync.Mutex
	gdataManager *gdata.Manager
	data         SaveData
}

// NewSaveManager 创建战绩管理器并加载已有记录
// 加载失败不是致命错误，会记录警告并从空白记录开始
func NewSaveManager(gdataManager *gdata.Manager) *SaveManager {
	sm := &SaveManager{gdataManager: gdataManager}
	if err := sm.Load(); err != nil {
		log.Printf("[SaveManager] Warning: Failed to load records: %v (starting fresh)", err)
	}
	return sm
}

// Load 从 gdata 加载战绩
func (sm *SaveManager) Load() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.data = SaveData{}
	if sm.gdataManager == nil || !sm.gdataManager.ObjectPropExists(recordsObject, recordsProperty) {
		return nil
	}

	raw, err := sm.gdataManager.LoadObjectProp(recordsObject, recordsProperty)
	if err != nil {
		return fmt.Errorf("failed to load records: %w", err)
	}

	var loaded SaveData
	if err := yaml.Unmarshal(raw, &loaded); err != nil {
		return fmt.Errorf("failed to parse records: %w", err)
	}
	sm.data = loaded
	return nil
}

// Save 保存战绩
func (sm *SaveManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}

	sm.mu.Lock()
	raw, err := yaml.Marshal(sm.data)
	sm.mu.Unlock()
	if err != nil {
		return fmt.Errorf("failed to marshal records: %w", err)
	}

	if err := sm.gdataManager.SaveObjectProp(recordsObject, recordsProperty, raw); err != nil {
		return fmt.Errorf("failed to save records: %w", err)
	}
	return nil
}

// Data 返回当前战绩的副本
func (sm *SaveManager) Data() SaveData {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.data
}

// RecordRun 记录一局已结束的游戏并保存
//
// 只接受 GAME_OVER 和 VICTORY 的快照，其余状态返回 false。
// 返回值表示本局是否刷新了最高分。
func (sm *SaveManager) RecordRun(snap Snapshot, at time.Time) bool {
	if snap.Status != types.StatusGameOver && snap.Status != types.StatusVictory {
		return false
	}

	sm.mu.Lock()
	newBest := snap.Score > sm.data.BestScore
	if newBest {
		sm.data.BestScore = snap.Score
	}
	sm.data.BestLevel = max(sm.data.BestLevel, snap.Level)
	if snap.Status == types.StatusVictory {
		sm.data.Victories++
	}
	sm.data.RunsPlayed++
	sm.data.TotalCoins += snap.Coins
	sm.data.LastPlayedAt = at
	sm.mu.Unlock()

	log.Printf("[SaveManager] run recorded: status=%s level=%d score=%d newBest=%v", snap.Status, snap.Level, snap.Score, newBest)
	if err := sm.Save(); err != nil {
		log.Printf("[SaveManager] Warning: %v", err)
	}
	return newBest
}
