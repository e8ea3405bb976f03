package config

import (
	"time"

	"github.com/KanaWorksAI/ZOutbreak/pkg/types"
)

// LevelDefinition 描述一个关卡的刷怪参数
type LevelDefinition struct {
	Count         int               // 本关敌人总数
	SpawnInterval time.Duration     // 刷怪间隔
	Types         []types.EnemyType // 允许随机出现的类型
	IsBossLevel   bool              // 首只必为首领
}

// FinalLevel 最终关卡编号，清场即胜利
const FinalLevel = 10

// levelSchedule 十关固定配置（编译期常量，不对外开放修改）
var levelSchedule = [FinalLevel]LevelDefinition{
	{Count: 40, SpawnInterval: 800 * time.Millisecond, Types: []types.EnemyType{types.EnemyNormal}},
	{Count: 60, SpawnInterval: 700 * time.Millisecond, Types: []types.EnemyType{types.EnemyNormal, types.EnemyFast}},
	{Count: 1, SpawnInterval: 1000 * time.Millisecond, Types: []types.EnemyType{types.EnemyBoss}, IsBossLevel: true},
	{Count: 80, SpawnInterval: 600 * time.Millisecond, Types: []types.EnemyType{types.EnemyNormal, types.EnemyFast}},
	{Count: 100, SpawnInterval: 500 * time.Millisecond, Types: []types.EnemyType{types.EnemyFast, types.EnemyTank}},
	{Count: 1, SpawnInterval: 1000 * time.Millisecond, Types: []types.EnemyType{types.EnemyBoss}, IsBossLevel: true},
	{Count: 150, SpawnInterval: 400 * time.Millisecond, Types: []types.EnemyType{types.EnemyNormal, types.EnemyTank, types.EnemyFast}},
	{Count: 200, SpawnInterval: 300 * time.Millisecond, Types: []types.EnemyType{types.EnemyFast}},
	{Count: 2, SpawnInterval: 1000 * time.Millisecond, Types: []types.EnemyType{types.EnemyBoss}, IsBossLevel: true},
	{Count: 300, SpawnInterval: 200 * time.Millisecond, Types: []types.EnemyType{types.EnemyNormal, types.EnemyFast, types.EnemyTank, types.EnemyBoss}},
}

// GetLevelDefinition 返回指定关卡（从1开始）的配置
// 超出范围的关卡号会被夹到 [1, FinalLevel]
func GetLevelDefinition(level int) LevelDefinition {
	index := level - 1
	if index < 0 {
		index = 0
	}
	if index > len(levelSchedule)-1 {
		index = len(levelSchedule) - 1
	}
	return levelSchedule[index]
}

// LevelCount 返回关卡总数
func LevelCount() int {
	return len(levelSchedule)
}
