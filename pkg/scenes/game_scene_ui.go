package scenes

import (
	"fmt"
	"image/color"

	"github.com/KanaWorksAI/ZOutbreak/pkg/config"
	"github.com/KanaWorksAI/ZOutbreak/pkg/game"
	"github.com/KanaWorksAI/ZOutbreak/pkg/systems"
	"github.com/KanaWorksAI/ZOutbreak/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// HUD 布局
const (
	hudMargin     = 16.0
	hudLineHeight = 18.0
	radarMargin   = 20.0
)

// Draw 绘制整个场景
func (s *GameScene) Draw(screen *ebiten.Image) {
	snap := s.session.Snapshot()

	s.drawWorld(screen, snap)
	s.drawParticles(screen, snap.Pose, s.session.Particles())

	if snap.Status == types.StatusPlaying {
		s.drawCrosshair(screen, snap)
		s.drawHUD(screen, snap)
		s.drawRadar(screen, snap)
	}
	s.drawOverlay(screen, snap)

	if s.showDebug {
		s.drawDebugInfo(screen, snap)
	}
}

// hudLines HUD 左上角显示的文本
func hudLines(snap game.Snapshot) []string {
	ammo := fmt.Sprintf("AMMO %d/%d", snap.Ammo, snap.MaxAmmo)
	if snap.IsReloading {
		ammo = "AMMO RELOADING..."
	}
	return []string{
		fmt.Sprintf("LEVEL %d/%d", snap.Level, config.FinalLevel),
		fmt.Sprintf("HP %d/%d", snap.HP, snap.MaxHP),
		ammo,
		fmt.Sprintf("SCORE %d", snap.Score),
		fmt.Sprintf("COINS %d", snap.Coins),
	}
}

// overlayText 非战斗状态的标题与提示
// PLAYING 时返回 ok=false
func overlayText(snap game.Snapshot) (title, hint string, ok bool) {
	switch snap.Status {
	case types.StatusStart:
		return "Z-OUTBREAK", "Press ENTER to start  (WASD move, mouse aim, R reload)", true
	case types.StatusGameOver:
		return "GAME OVER", fmt.Sprintf("Level %d  Score %d  -  Press ENTER to restart", snap.Level, snap.Score), true
	case types.StatusVictory:
		return "VICTORY", fmt.Sprintf("Score %d  Coins %d  -  Press ENTER to play again", snap.Score, snap.Coins), true
	default:
		return "", "", false
	}
}

// drawText 在 (x, y) 绘制一行文本
func (s *GameScene) drawText(screen *ebiten.Image, str string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, s.hudFont, op)
}

// drawCenteredText 以 cx 为中心绘制文本，scale 放大字号
func (s *GameScene) drawCenteredText(screen *ebiten.Image, str string, cx, y, scale float64, clr color.Color) {
	width := text.Advance(str, s.hudFont) * scale
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(cx-width/2, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, s.hudFont, op)
}

// drawHUD 左上角状态信息与血条
func (s *GameScene) drawHUD(screen *ebiten.Image, snap game.Snapshot) {
	lines := hudLines(snap)
	height := float64(len(lines))*hudLineHeight + 18
	vector.DrawFilledRect(screen, float32(hudMargin-6), float32(hudMargin-6), 180, float32(height), color.RGBA{A: 150}, false)

	for i, line := range lines {
		clr := color.Color(color.White)
		if i == 1 && snap.HP <= snap.MaxHP/4 {
			clr = color.RGBA{R: 255, G: 80, B: 80, A: 255}
		}
		if i == 2 && snap.IsReloading {
			clr = color.RGBA{R: 255, G: 200, B: 60, A: 255}
		}
		s.drawText(screen, line, hudMargin, hudMargin+float64(i)*hudLineHeight, clr)
	}

	// 血条
	barY := hudMargin + float64(len(lines))*hudLineHeight
	ratio := float64(snap.HP) / float64(max(snap.MaxHP, 1))
	vector.DrawFilledRect(screen, float32(hudMargin), float32(barY), 160, 6, color.RGBA{R: 60, G: 0, B: 0, A: 255}, false)
	vector.DrawFilledRect(screen, float32(hudMargin), float32(barY), float32(160*ratio), 6, color.RGBA{R: 220, G: 30, B: 30, A: 255}, false)
}

// drawRadar 右下角雷达
func (s *GameScene) drawRadar(screen *ebiten.Image, snap game.Snapshot) {
	cx := float64(s.cfg.Window.Width) - config.RadarRadius - radarMargin
	cy := float64(s.cfg.Window.Height) - config.RadarRadius - radarMargin

	vector.DrawFilledCircle(screen, float32(cx), float32(cy), config.RadarRadius, color.RGBA{R: 0, G: 30, B: 0, A: 180}, true)
	vector.StrokeCircle(screen, float32(cx), float32(cy), config.RadarRadius, 1.5, color.RGBA{R: 0, G: 200, B: 0, A: 255}, true)
	vector.StrokeLine(screen, float32(cx), float32(cy), float32(cx), float32(cy-config.RadarRadius), 1, color.RGBA{R: 0, G: 90, B: 0, A: 255}, true)

	for _, blip := range systems.ProjectRadar(snap) {
		r := float32(2.5)
		clr := color.RGBA{R: 255, G: 60, B: 60, A: 255}
		if blip.IsBoss() {
			r = 5
			clr = color.RGBA{R: 220, G: 80, B: 255, A: 255}
		}
		vector.DrawFilledCircle(screen, float32(cx+blip.X), float32(cy+blip.Y), r, clr, true)
	}
	vector.DrawFilledCircle(screen, float32(cx), float32(cy), 2.5, color.White, true)
}

// drawOverlay 开始、失败和胜利界面
func (s *GameScene) drawOverlay(screen *ebiten.Image, snap game.Snapshot) {
	title, hint, ok := overlayText(snap)
	if !ok {
		return
	}

	w := float32(s.cfg.Window.Width)
	h := float32(s.cfg.Window.Height)
	backdrop := color.RGBA{A: 170}
	titleColor := color.Color(color.White)
	switch snap.Status {
	case types.StatusGameOver:
		backdrop = color.RGBA{R: 70, A: 190}
		titleColor = color.RGBA{R: 255, G: 70, B: 70, A: 255}
	case types.StatusVictory:
		titleColor = color.RGBA{R: 80, G: 255, B: 120, A: 255}
	}
	vector.DrawFilledRect(screen, 0, 0, w, h, backdrop, false)

	cx := float64(w) / 2
	cy := float64(h) / 2
	s.drawCenteredText(screen, title, cx, cy-60, 4, titleColor)
	s.drawCenteredText(screen, hint, cx, cy+20, 1.5, color.RGBA{R: 200, G: 200, B: 200, A: 255})

	if s.records != nil {
		line := recordLine(s.records.Data(), s.newBest && snap.Status != types.StatusStart)
		s.drawCenteredText(screen, line, cx, cy+60, 1.5, color.RGBA{R: 255, G: 210, B: 40, A: 255})
	}
}

// recordLine 覆盖层底部的战绩
func recordLine(data game.SaveData, newBest bool) string {
	if data.RunsPlayed == 0 {
		return "No runs recorded yet"
	}
	line := fmt.Sprintf("Best score %d  Best level %d  Victories %d", data.BestScore, data.BestLevel, data.Victories)
	if newBest {
		line = "NEW BEST!  " + line
	}
	return line
}

// drawDebugInfo F3 调试信息
func (s *GameScene) drawDebugInfo(screen *ebiten.Image, snap game.Snapshot) {
	msg := fmt.Sprintf("FPS %.0f  TPS %.0f\npos (%.1f, %.1f) yaw %.2f pitch %.2f\nenemies %d/%d spawned  particles %d  clock %.1fs",
		ebiten.ActualFPS(), ebiten.ActualTPS(),
		snap.Pose.X, snap.Pose.Z, snap.Pose.Yaw, snap.Pose.Pitch,
		len(snap.LiveEnemies()), s.session.Waves().Spawned(), len(s.session.Particles()), snap.Clock)
	ebitenutil.DebugPrintAt(screen, msg, int(hudMargin), s.cfg.Window.Height-60)
}
