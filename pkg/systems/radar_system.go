package systems

import (
	"math"

	"github.com/KanaWorksAI/ZOutbreak/pkg/config"
	"github.com/KanaWorksAI/ZOutbreak/pkg/game"
	"github.com/KanaWorksAI/ZOutbreak/pkg/types"
	"github.com/KanaWorksAI/ZOutbreak/pkg/utils"
)

// RadarBlip 雷达上的一个敌人标记
// X 向右、Y 向下（屏幕坐标），以雷达中心为原点，单位为像素
type RadarBlip struct {
	X, Y float64
	Type types.EnemyType
}

// IsBoss 首领标记绘制得更大
func (b RadarBlip) IsBoss() bool {
	return b.Type == types.EnemyBoss
}

// ProjectRadar 将存活敌人投影到以玩家为中心、朝向为上的雷达上
// 40 单位映射到 50 像素，超出范围的敌人贴在边缘
func ProjectRadar(snap game.Snapshot) []RadarBlip {
	fx, fz := utils.PlanarForward(snap.Pose.Yaw)
	rx, rz := utils.PlanarRight(snap.Pose.Yaw)
	scale := config.RadarRadius / config.RadarRange

	blips := make([]RadarBlip, 0, len(snap.Enemies))
	for _, enemy := range snap.Enemies {
		if enemy.IsDead {
			continue
		}
		dx := enemy.X - snap.Pose.X
		dz := enemy.Z - snap.Pose.Z

		x := (dx*rx + dz*rz) * scale
		y := -(dx*fx + dz*fz) * scale

		if d := math.Hypot(x, y); d > config.RadarRadius {
			x *= config.RadarRadius / d
			y *= config.RadarRadius / d
		}
		blips = append(blips, RadarBlip{X: x, Y: y, Type: enemy.Type})
	}
	return blips
}
