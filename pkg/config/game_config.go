package config

import (
	"fmt"
	"os"

	"github.com/KanaWorksAI/ZOutbreak/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// DefaultGameConfigPath 嵌入的默认配置路径
const DefaultGameConfigPath = "data/config/game.yaml"

// WindowConfig 窗口配置
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// SimulationConfig 模拟循环配置
type SimulationConfig struct {
	Seed         int64   `yaml:"seed"`         // 随机种子，0 表示按时间取种
	MaxDeltaTime float64 `yaml:"maxDeltaTime"` // 单帧最大步长（秒）
	HeadlessStep float64 `yaml:"headlessStep"` // 无界面模式固定步长（秒）
}

// InputConfig 输入配置
type InputConfig struct {
	MouseSensitivity float64 `yaml:"mouseSensitivity"` // 每像素转动弧度
	TurnSpeed        float64 `yaml:"turnSpeed"`        // 方向键转向速度（弧度/秒）
}

// GameConfig 运行时配置
type GameConfig struct {
	Window     WindowConfig     `yaml:"window"`
	Simulation SimulationConfig `yaml:"simulation"`
	Input      InputConfig      `yaml:"input"`
}

// DefaultGameConfig 返回全部字段取默认值的配置
func DefaultGameConfig() *GameConfig {
	cfg := &GameConfig{}
	applyDefaults(cfg)
	return cfg
}

// LoadGameConfig 加载运行时配置
// path 为空时读取嵌入的默认配置，否则从磁盘读取
func LoadGameConfig(path string) (*GameConfig, error) {
	var (
		data []byte
		err  error
	)
	if path == "" {
		path = DefaultGameConfigPath
		data, err = embedded.ReadFile(path)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read game config %s: %w", path, err)
	}

	cfg, err := ParseGameConfig(data)
	if err != nil {
		return nil, fmt.Errorf("invalid game config %s: %w", path, err)
	}
	return cfg, nil
}

// ParseGameConfig 解析 YAML 数据，补全默认值并校验
func ParseGameConfig(data []byte) (*GameConfig, error) {
	var cfg GameConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	applyDefaults(&cfg)

	if err := validateGameConfig(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// applyDefaults 为零值字段填充默认值
func applyDefaults(cfg *GameConfig) {
	if cfg.Window.Width == 0 {
		cfg.Window.Width = 1280
	}
	if cfg.Window.Height == 0 {
		cfg.Window.Height = 720
	}
	if cfg.Window.Title == "" {
		cfg.Window.Title = "Z-OUTBREAK"
	}
	if cfg.Simulation.MaxDeltaTime == 0 {
		cfg.Simulation.MaxDeltaTime = 0.1
	}
	if cfg.Simulation.HeadlessStep == 0 {
		cfg.Simulation.HeadlessStep = 1.0 / 60.0
	}
	if cfg.Input.MouseSensitivity == 0 {
		cfg.Input.MouseSensitivity = 0.002
	}
	if cfg.Input.TurnSpeed == 0 {
		cfg.Input.TurnSpeed = 2.5
	}
}

// validateGameConfig 验证配置的合法性
func validateGameConfig(cfg *GameConfig) error {
	if cfg.Window.Width < 0 || cfg.Window.Height < 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Simulation.MaxDeltaTime < 0 {
		return fmt.Errorf("maxDeltaTime cannot be negative, got %v", cfg.Simulation.MaxDeltaTime)
	}
	if cfg.Simulation.HeadlessStep < 0 || cfg.Simulation.HeadlessStep > cfg.Simulation.MaxDeltaTime {
		return fmt.Errorf("headlessStep must be in (0, maxDeltaTime], got %v", cfg.Simulation.HeadlessStep)
	}
	if cfg.Input.MouseSensitivity < 0 {
		return fmt.Errorf("mouseSensitivity cannot be negative, got %v", cfg.Input.MouseSensitivity)
	}
	if cfg.Input.TurnSpeed < 0 {
		return fmt.Errorf("turnSpeed cannot be negative, got %v", cfg.Input.TurnSpeed)
	}
	return nil
}
