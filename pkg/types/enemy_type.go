// Package types 定义共享的基础类型
// 这个包不依赖任何其他业务包，用于解决循环引用问题
package types

// EnemyType 定义敌人的类型
type EnemyType int

const (
	// EnemyUnknown 未知敌人类型
	EnemyUnknown EnemyType = iota
	// EnemyNormal 普通丧尸
	EnemyNormal
	// EnemyFast 快速丧尸
	EnemyFast
	// EnemyTank 重装丧尸
	EnemyTank
	// EnemyBoss 首领
	EnemyBoss
)

// AllEnemyTypes 按声明顺序列出全部有效敌人类型
var AllEnemyTypes = []EnemyType{EnemyNormal, EnemyFast, EnemyTank, EnemyBoss}

// String 返回敌人类型的配置字符串表示
func (e EnemyType) String() string {
	switch e {
	case EnemyNormal:
		return "normal"
	case EnemyFast:
		return "fast"
	case EnemyTank:
		return "tank"
	case EnemyBoss:
		return "boss"
	default:
		return "unknown"
	}
}

// IsValid 判断是否为四种有效类型之一
func (e EnemyType) IsValid() bool {
	return e >= EnemyNormal && e <= EnemyBoss
}

// EnemyTypeFromString 将配置字符串转换为 EnemyType
func EnemyTypeFromString(s string) EnemyType {
	for _, t := range AllEnemyTypes {
		if t.String() == s {
			return t
		}
	}
	return EnemyUnknown
}
