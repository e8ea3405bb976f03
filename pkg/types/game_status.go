package types

// GameStatus 游戏整体状态
type GameStatus int

const (
	// StatusStart 标题界面，等待开始
	StatusStart GameStatus = iota
	// StatusPlaying 战斗中
	StatusPlaying
	// StatusGameOver 玩家生命归零
	StatusGameOver
	// StatusVictory 第10关清场
	StatusVictory
)

// String 返回状态名
func (s GameStatus) String() string {
	switch s {
	case StatusStart:
		return "START"
	case StatusPlaying:
		return "PLAYING"
	case StatusGameOver:
		return "GAME_OVER"
	case StatusVictory:
		return "VICTORY"
	default:
		return "UNKNOWN"
	}
}

// IsTerminal 是否为结束状态（失败或胜利）
func (s GameStatus) IsTerminal() bool {
	return s == StatusGameOver || s == StatusVictory
}
