package game

import (
	"log"
	"math"
	"sync"

	"github.com/KanaWorksAI/ZOutbreak/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// groanChance 每次生成敌人时发出低吼的概率
const groanChance = 0.3

// octaveDropChance 音符降八度的概率
const octaveDropChance = 0.2

// AudioManager 音频管理器
// 职责：
//   - 实现 CueSink，把模拟层的提示转换为合成音色并播放
//   - 实现音量控制（从 SettingsManager 读取设置）
//   - 缓存已渲染的 PCM，避免每次播放重新合成
//
// audio.Context 为 nil 时进入静音模式（无界面运行、测试）。
// PlayCue 可能被计时器 goroutine 调用，内部加锁。
type AudioManager struct {
	mu              sync.Mutex
	context         *audio.Context   // 音频上下文，可为 nil
	settingsManager *SettingsManager // 设置管理器（用于读取音量设置，可为 nil）
	rng             *utils.RNG       // 低吼概率与音符选择
	cache           map[cacheKey][]byte
}

type cacheKey struct {
	cue  Cue
	freq int
}

// NewAudioManager 创建新的音频管理器
//
// 参数：
//   - ctx: ebiten 音频上下文，nil 表示静音
//   - sm: SettingsManager 实例（可为 nil，使用默认设置）
//   - rng: 随机数服务
func NewAudioManager(ctx *audio.Context, sm *SettingsManager, rng *utils.RNG) *AudioManager {
	if rng == nil {
		rng = utils.NewRNG(0)
	}
	return &AudioManager{
		context:         ctx,
		settingsManager: sm,
		rng:             rng,
		cache:           make(map[cacheKey][]byte),
	}
}

// PlayCue 实现 CueSink
func (am *AudioManager) PlayCue(cue Cue) {
	pcm, volume, ok := am.prepare(cue)
	if !ok || am.context == nil {
		return
	}

	player := am.context.NewPlayerFromBytes(pcm)
	player.SetVolume(volume)
	player.Play()
}

// prepare 决定是否播放并返回 PCM 与音量
func (am *AudioManager) prepare(cue Cue) ([]byte, float64, bool) {
	settings := DefaultSettings()
	if am.settingsManager != nil {
		settings = am.settingsManager.GetSettings()
	}

	var volume float64
	if cue == CueMusicNote {
		if !settings.MusicEnabled {
			return nil, 0, false
		}
		volume = settings.MusicVolume
	} else {
		if !settings.SoundEnabled {
			return nil, 0, false
		}
		volume = settings.SoundVolume
	}

	var (
		key  = cacheKey{cue: cue}
		tone toneSpec
	)
	switch cue {
	case CueShot:
		tone = shotTone
	case CueHit:
		tone = hitTone
	case CueCoin:
		tone = coinTone
	case CueReload:
		tone = reloadTone
	case CueGroan:
		if !am.rng.Chance(groanChance) {
			return nil, 0, false
		}
		// 频率取整后缓存，最多 50 种
		key.freq = 50 + am.rng.Intn(50)
		tone = groanTone(float64(key.freq))
	case CueMusicNote:
		freq := pickNote(am.rng)
		key.freq = int(math.Round(freq * 100))
		tone = noteTone(freq)
	default:
		log.Printf("[AudioManager] Warning: unknown cue %d", cue)
		return nil, 0, false
	}

	return am.rendered(key, tone), volume, true
}

func (am *AudioManager) rendered(key cacheKey, tone toneSpec) []byte {
	am.mu.Lock()
	defer am.mu.Unlock()
	if pcm, ok := am.cache[key]; ok {
		return pcm
	}
	pcm := tone.render()
	am.cache[key] = pcm
	return pcm
}

// pickNote 从五声音阶中随机选一个音，20% 概率降八度
func pickNote(rng *utils.RNG) float64 {
	freq := pentatonicScale[rng.Intn(len(pentatonicScale))]
	if rng.Chance(octaveDropChance) {
		freq /= 2
	}
	return freq
}
