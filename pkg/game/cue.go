package game

//go:generate go tool mockgen -destination=./mocks/cue_sink_mock.go -package=mocks . CueSink

// Cue 音效提示
// 模拟层只发出提示，是否播放、如何播放由接收方决定
type Cue int

const (
	// CueShot 开火
	CueShot Cue = iota
	// CueHit 玩家被近战命中
	CueHit
	// CueCoin 拾取金币
	CueCoin
	// CueReload 开始换弹
	CueReload
	// CueGroan 敌人出现时的低吼
	CueGroan
	// CueMusicNote 环境音乐的一个音符
	CueMusicNote
)

// String 返回提示名称，用于日志
func (c Cue) String() string {
	switch c {
	case CueShot:
		return "shot"
	case CueHit:
		return "hit"
	case CueCoin:
		return "coin"
	case CueReload:
		return "reload"
	case CueGroan:
		return "groan"
	case CueMusicNote:
		return "music-note"
	default:
		return "unknown"
	}
}

// CueSink 音效提示的接收方
// PlayCue 不得阻塞，调用方不关心结果
type CueSink interface {
	PlayCue(cue Cue)
}

// CueSinkFunc 允许普通函数作为 CueSink
type CueSinkFunc func(cue Cue)

// PlayCue 实现 CueSink
func (f CueSinkFunc) PlayCue(cue Cue) {
	f(cue)
}
