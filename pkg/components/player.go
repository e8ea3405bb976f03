package components

// PlayerPose 玩家在平面上的位置与视角
type PlayerPose struct {
	X     float64
	Z     float64
	Yaw   float64 // 偏航角（弧度），0 朝向 +Z
	Pitch float64 // 俯仰角（弧度），正值向上
}

// MoveIntent 当前帧的移动意图（WASD）
type MoveIntent struct {
	Forward  bool
	Backward bool
	Left     bool
	Right    bool
}

// IsZero 没有任何方向键按下
func (m MoveIntent) IsZero() bool {
	return !m.Forward && !m.Backward && !m.Left && !m.Right
}
