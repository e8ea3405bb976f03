package scenes

import (
	"log"
	"time"

	"github.com/KanaWorksAI/ZOutbreak/pkg/components"
	"github.com/KanaWorksAI/ZOutbreak/pkg/config"
	"github.com/KanaWorksAI/ZOutbreak/pkg/game"
	"github.com/KanaWorksAI/ZOutbreak/pkg/systems"
	"github.com/KanaWorksAI/ZOutbreak/pkg/types"
	"github.com/KanaWorksAI/ZOutbreak/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// GameScene 战斗场景
//
// 俯视战术视图：玩家固定在屏幕中央，朝向始终向上。
// 场景只负责读取输入和绘制，所有规则都在 Session 中执行。
//
// 操作：
//   - Enter 开始 / 重新开始
//   - WASD 移动，鼠标（锁定指针）或方向键转向
//   - R 手动换弹，Esc 释放鼠标，F3 调试信息
type GameScene struct {
	session  *systems.Session
	settings *game.SettingsManager // 可为 nil
	records  *game.SaveManager     // 可为 nil
	cfg      config.GameConfig

	hudFont *text.GoXFace

	// 锁定指针时用两帧光标位置之差作为鼠标位移
	lastCursorX  int
	lastCursorY  int
	cursorPrimed bool

	showDebug bool
	newBest   bool // 上一局刷新了最高分
}

// frameInput 一帧内采集到的输入
type frameInput struct {
	Intent components.MoveIntent
	Start  bool
	Reload bool

	// 鼠标位移（像素），向右、向下为正
	LookX float64
	LookY float64

	TurnLeft  bool
	TurnRight bool
	LookUp    bool
	LookDown  bool
}

// NewGameScene 创建战斗场景
func NewGameScene(session *systems.Session, settings *game.SettingsManager, records *game.SaveManager, cfg config.GameConfig) *GameScene {
	log.Printf("[GameScene] created (%dx%d)", cfg.Window.Width, cfg.Window.Height)
	return &GameScene{
		session:  session,
		settings: settings,
		records:  records,
		cfg:      cfg,
		hudFont:  text.NewGoXFace(basicfont.Face7x13),
	}
}

// Update 读取输入并推进会话
func (s *GameScene) Update(deltaTime float64) {
	in := s.readInput()
	s.applyInput(in, deltaTime)
	s.updateCursorMode()

	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		s.showDebug = !s.showDebug
	}

	before := s.session.State().Status()
	s.session.Update(deltaTime)
	s.recordFinishedRun(before)
}

// recordFinishedRun 本帧对局结束时记录战绩
func (s *GameScene) recordFinishedRun(before types.GameStatus) {
	if before != types.StatusPlaying || s.records == nil {
		return
	}
	snap := s.session.Snapshot()
	if snap.Status == types.StatusPlaying {
		return
	}
	s.newBest = s.records.RecordRun(snap, time.Now())
}

// Close 释放会话持有的计时器
func (s *GameScene) Close() {
	s.session.Close()
	ebiten.SetCursorMode(ebiten.CursorModeVisible)
	log.Printf("[GameScene] closed")
}

// readInput 从 ebiten 采集输入
func (s *GameScene) readInput() frameInput {
	in := frameInput{
		Intent: components.MoveIntent{
			Forward:  ebiten.IsKeyPressed(ebiten.KeyW),
			Backward: ebiten.IsKeyPressed(ebiten.KeyS),
			Left:     ebiten.IsKeyPressed(ebiten.KeyA),
			Right:    ebiten.IsKeyPressed(ebiten.KeyD),
		},
		Start:     inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter),
		Reload:    inpututil.IsKeyJustPressed(ebiten.KeyR),
		TurnLeft:  ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		TurnRight: ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		LookUp:    ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		LookDown:  ebiten.IsKeyPressed(ebiten.KeyArrowDown),
	}

	if ebiten.CursorMode() == ebiten.CursorModeCaptured {
		x, y := ebiten.CursorPosition()
		if s.cursorPrimed {
			in.LookX = float64(x - s.lastCursorX)
			in.LookY = float64(y - s.lastCursorY)
		}
		s.lastCursorX, s.lastCursorY = x, y
		s.cursorPrimed = true
	} else {
		s.cursorPrimed = false
	}
	return in
}

// applyInput 将输入转换为会话操作
func (s *GameScene) applyInput(in frameInput, deltaTime float64) {
	status := s.session.State().Status()

	if status != types.StatusPlaying {
		s.session.SetMoveIntent(components.MoveIntent{})
		if in.Start {
			s.session.StartGame()
		}
		return
	}

	if in.Reload {
		s.session.RequestReload()
	}
	s.session.SetMoveIntent(in.Intent)

	// 鼠标右移向右转（yaw 减小），上移抬头
	sensitivity := s.mouseSensitivity()
	deltaYaw := -in.LookX * sensitivity
	deltaPitch := -in.LookY * sensitivity

	turn := s.cfg.Input.TurnSpeed * deltaTime
	if in.TurnLeft {
		deltaYaw += turn
	}
	if in.TurnRight {
		deltaYaw -= turn
	}
	if in.LookUp {
		deltaPitch += turn
	}
	if in.LookDown {
		deltaPitch -= turn
	}

	if deltaYaw != 0 || deltaPitch != 0 {
		s.session.Aim(deltaYaw, deltaPitch)
	}
}

// mouseSensitivity 用户设置优先，其次是配置文件
func (s *GameScene) mouseSensitivity() float64 {
	if s.settings != nil {
		if v := s.settings.GetSettings().MouseSensitivity; v > 0 {
			return v
		}
	}
	return s.cfg.Input.MouseSensitivity
}

// updateCursorMode 战斗中锁定指针，其余状态释放
// 移动端没有指针，不做处理
func (s *GameScene) updateCursorMode() {
	if utils.IsMobile() {
		return
	}
	playing := s.session.State().Status() == types.StatusPlaying
	mode := ebiten.CursorMode()

	switch {
	case !playing && mode != ebiten.CursorModeVisible:
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
	case playing && inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
	case playing && mode != ebiten.CursorModeCaptured &&
		(inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) || inpututil.IsKeyJustPressed(ebiten.KeyEnter)):
		ebiten.SetCursorMode(ebiten.CursorModeCaptured)
	}
}
