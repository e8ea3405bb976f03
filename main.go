package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/KanaWorksAI/ZOutbreak/pkg/app"
	"github.com/KanaWorksAI/ZOutbreak/pkg/config"
	"github.com/KanaWorksAI/ZOutbreak/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	verbose    = flag.Bool("verbose", false, "显示详细日志")
	seed       = flag.Int64("seed", 0, "随机种子（0 表示使用配置文件或按时间取种）")
	configPath = flag.String("config", "", "运行时配置文件路径（默认使用内置配置）")
)

func main() {
	flag.Parse()

	embedded.Init(dataFS)

	gameCfg, err := config.LoadGameConfig(*configPath)
	if err != nil {
		log.Fatalf("配置加载失败: %v", err)
	}

	gameApp, err := app.NewApp(app.Config{
		Verbose: *verbose,
		Game:    gameCfg,
		Seed:    *seed,
	})
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}
	defer gameApp.Close()

	window := gameApp.WindowConfig()
	ebiten.SetWindowSize(window.Width, window.Height)
	ebiten.SetWindowTitle(window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(gameApp); err != nil {
		gameApp.Close()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
