// Package components 定义模拟使用的纯数据记录
// 这些结构体不包含行为，由 game 包的状态存储和 systems 包读写。
package components

import "github.com/KanaWorksAI/ZOutbreak/pkg/types"

// Enemy 敌人记录
// 死亡后记录保持不变，直到关卡切换时整体清空
type Enemy struct {
	ID           string          // 不透明标识
	X            float64         // 平面位置 X
	Z            float64         // 平面位置 Z
	HP           int             // 当前生命，范围 [0, MaxHP]
	MaxHP        int             // 最大生命
	Speed        float64         // 移动速度（单位/秒）
	Type         types.EnemyType // 敌人类型
	IsDead       bool            // 是否已死亡
	LastAttackAt float64         // 上次近战攻击的模拟时间（秒）
}

// IsAlive 是否仍参与战斗和移动
func (e *Enemy) IsAlive() bool {
	return !e.IsDead
}
