package scenes

import (
	"image/color"
	"math"

	"github.com/KanaWorksAI/ZOutbreak/pkg/components"
	"github.com/KanaWorksAI/ZOutbreak/pkg/config"
	"github.com/KanaWorksAI/ZOutbreak/pkg/game"
	"github.com/KanaWorksAI/ZOutbreak/pkg/systems"
	"github.com/KanaWorksAI/ZOutbreak/pkg/types"
	"github.com/KanaWorksAI/ZOutbreak/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 俯视图参数
const (
	pixelsPerUnit = 10.0 // 1 个世界单位对应的像素
	gridSpacing   = 5.0  // 地面网格间距（世界单位）
	gridExtent    = 80.0 // 网格绘制范围（世界单位）
)

var (
	backgroundColor = color.RGBA{R: 18, G: 20, B: 16, A: 255}
	gridColor       = color.RGBA{R: 40, G: 46, B: 36, A: 255}
	playerColor     = color.RGBA{R: 90, G: 170, B: 255, A: 255}
	aimLineColor    = color.RGBA{R: 40, G: 40, B: 40, A: 40}
	coinColor       = color.RGBA{R: 255, G: 210, B: 40, A: 255}
	corpseColor     = color.RGBA{R: 70, G: 20, B: 20, A: 255}
	muzzleColor     = color.RGBA{R: 255, G: 230, B: 120, A: 255}
	bloodColor      = color.RGBA{R: 170, G: 0, B: 0, A: 255}
)

// enemyColor 各类敌人的颜色
func enemyColor(t types.EnemyType) color.RGBA {
	switch t {
	case types.EnemyFast:
		return color.RGBA{R: 200, G: 220, B: 60, A: 255}
	case types.EnemyTank:
		return color.RGBA{R: 60, G: 120, B: 60, A: 255}
	case types.EnemyBoss:
		return color.RGBA{R: 150, G: 40, B: 160, A: 255}
	default:
		return color.RGBA{R: 90, G: 160, B: 80, A: 255}
	}
}

// worldToScreen 将世界坐标投影到以玩家为中心、朝向为上的俯视图
func worldToScreen(pose components.PlayerPose, x, z, cx, cy float64) (float64, float64) {
	fx, fz := utils.PlanarForward(pose.Yaw)
	rx, rz := utils.PlanarRight(pose.Yaw)
	dx := x - pose.X
	dz := z - pose.Z
	return cx + (dx*rx+dz*rz)*pixelsPerUnit, cy - (dx*fx+dz*fz)*pixelsPerUnit
}

// viewCenter 玩家在屏幕上的位置
func (s *GameScene) viewCenter() (float64, float64) {
	return float64(s.cfg.Window.Width) / 2, float64(s.cfg.Window.Height) / 2
}

// drawWorld 绘制地面、金币、敌人和玩家
func (s *GameScene) drawWorld(screen *ebiten.Image, snap game.Snapshot) {
	screen.Fill(backgroundColor)
	cx, cy := s.viewCenter()

	s.drawGrid(screen, snap.Pose, cx, cy)

	for _, coin := range snap.DroppedCoins {
		x, y := worldToScreen(snap.Pose, coin.X, coin.Z, cx, cy)
		vector.DrawFilledCircle(screen, float32(x), float32(y), 4, coinColor, true)
	}

	// 先画尸体，活着的敌人压在上面
	for _, enemy := range snap.Enemies {
		if !enemy.IsDead {
			continue
		}
		x, y := worldToScreen(snap.Pose, enemy.X, enemy.Z, cx, cy)
		r := float32(enemyRadius(enemy) * 0.8)
		vector.DrawFilledCircle(screen, float32(x), float32(y), r, corpseColor, true)
	}
	for _, enemy := range snap.Enemies {
		if enemy.IsDead {
			continue
		}
		s.drawEnemy(screen, snap.Pose, enemy, cx, cy)
	}

	// 玩家和射程内的瞄准线
	vector.StrokeLine(screen, float32(cx), float32(cy), float32(cx), float32(cy-config.ShotRange*pixelsPerUnit), 1, aimLineColor, true)
	vector.DrawFilledCircle(screen, float32(cx), float32(cy), 7, playerColor, true)
	vector.StrokeLine(screen, float32(cx), float32(cy), float32(cx), float32(cy-14), 3, playerColor, true)
}

// drawGrid 绘制随玩家移动和旋转的地面网格
func (s *GameScene) drawGrid(screen *ebiten.Image, pose components.PlayerPose, cx, cy float64) {
	originX := math.Floor(pose.X/gridSpacing) * gridSpacing
	originZ := math.Floor(pose.Z/gridSpacing) * gridSpacing

	for offset := -gridExtent; offset <= gridExtent; offset += gridSpacing {
		x0, y0 := worldToScreen(pose, originX+offset, originZ-gridExtent, cx, cy)
		x1, y1 := worldToScreen(pose, originX+offset, originZ+gridExtent, cx, cy)
		vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), 1, gridColor, false)

		x0, y0 = worldToScreen(pose, originX-gridExtent, originZ+offset, cx, cy)
		x1, y1 = worldToScreen(pose, originX+gridExtent, originZ+offset, cx, cy)
		vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), 1, gridColor, false)
	}
}

// enemyRadius 敌人在屏幕上的半径（像素），与命中盒宽度一致
func enemyRadius(enemy components.Enemy) float64 {
	box := systems.EnemyHitbox(enemy)
	return (box.Max.X - box.Min.X) / 2 * pixelsPerUnit
}

// drawEnemy 绘制敌人及受伤后的血条
func (s *GameScene) drawEnemy(screen *ebiten.Image, pose components.PlayerPose, enemy components.Enemy, cx, cy float64) {
	x, y := worldToScreen(pose, enemy.X, enemy.Z, cx, cy)
	r := enemyRadius(enemy)
	vector.DrawFilledCircle(screen, float32(x), float32(y), float32(r), enemyColor(enemy.Type), true)

	if enemy.HP >= enemy.MaxHP || enemy.MaxHP <= 0 {
		return
	}
	width := math.Max(r*2, 12)
	ratio := float64(enemy.HP) / float64(enemy.MaxHP)
	barX := x - width/2
	barY := y - r - 6
	vector.DrawFilledRect(screen, float32(barX), float32(barY), float32(width), 3, color.RGBA{R: 60, G: 0, B: 0, A: 200}, false)
	vector.DrawFilledRect(screen, float32(barX), float32(barY), float32(width*ratio), 3, color.RGBA{R: 230, G: 40, B: 40, A: 255}, false)
}

// drawParticles 绘制火光与血雾，高度越高越大
func (s *GameScene) drawParticles(screen *ebiten.Image, pose components.PlayerPose, particles []components.Particle) {
	cx, cy := s.viewCenter()
	for _, p := range particles {
		x, y := worldToScreen(pose, p.X, p.Z, cx, cy)
		r := float32(math.Max(1, p.Size*2))
		clr := bloodColor
		if p.Kind == components.ParticleMuzzle {
			clr = muzzleColor
		}
		// 随剩余寿命淡出
		clr = fade(clr, math.Min(1, p.Remaining()*2))
		vector.DrawFilledCircle(screen, float32(x), float32(y), r, clr, true)
	}
}

// fade 按比例缩放颜色（预乘 alpha）
func fade(c color.RGBA, k float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * k),
		G: uint8(float64(c.G) * k),
		B: uint8(float64(c.B) * k),
		A: uint8(float64(c.A) * k),
	}
}

// drawCrosshair 屏幕中央上方的准星，有目标时变红
func (s *GameScene) drawCrosshair(screen *ebiten.Image, snap game.Snapshot) {
	cx, cy := s.viewCenter()
	clr := color.RGBA{R: 220, G: 220, B: 220, A: 200}
	if _, ok := systems.FindAimTarget(snap.Pose, snap.Enemies); ok {
		clr = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	}
	y := cy - 60
	vector.StrokeLine(screen, float32(cx-8), float32(y), float32(cx+8), float32(y), 2, clr, true)
	vector.StrokeLine(screen, float32(cx), float32(y-8), float32(cx), float32(y+8), 2, clr, true)
}
