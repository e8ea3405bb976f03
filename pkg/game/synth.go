package game

import (
	"encoding/binary"
	"math"
)

// SampleRate 音频上下文采样率
const SampleRate = 48000

// waveform 振荡器波形
type waveform int

const (
	waveSine waveform = iota
	waveSquare
	waveSawtooth
	waveTriangle
)

// sample 返回相位 p（周期数）处的波形值，范围 [-1, 1]
func (w waveform) sample(p float64) float64 {
	frac := p - math.Floor(p)
	switch w {
	case waveSquare:
		if frac < 0.5 {
			return 1
		}
		return -1
	case waveSawtooth:
		return 2*frac - 1
	case waveTriangle:
		return 1 - 4*math.Abs(frac-0.5)
	default:
		return math.Sin(2 * math.Pi * frac)
	}
}

// rampKind 到达某个控制点的方式
type rampKind int

const (
	rampStep rampKind = iota // 到达时刻直接跳变
	rampLinear
	rampExponential
)

// point 参数曲线上的控制点
type point struct {
	at    float64 // 相对音色起点的秒数
	value float64
	ramp  rampKind
}

// curve 分段参数曲线，控制点按时间升序
type curve []point

// valueAt 计算 t 秒处的值
// 指数段要求两端同号且非零，否则退化为线性
func (c curve) valueAt(t float64) float64 {
	if len(c) == 0 {
		return 0
	}
	if t <= c[0].at {
		return c[0].value
	}
	for i := 1; i < len(c); i++ {
		next := c[i]
		if t >= next.at {
			continue
		}
		prev := c[i-1]
		span := next.at - prev.at
		if span <= 0 || next.ramp == rampStep {
			return prev.value
		}
		frac := (t - prev.at) / span
		if next.ramp == rampExponential && prev.value*next.value > 0 {
			return prev.value * math.Pow(next.value/prev.value, frac)
		}
		return prev.value + (next.value-prev.value)*frac
	}
	return c[len(c)-1].value
}

// toneSpec 一个振荡器加一个增益包络
type toneSpec struct {
	wave     waveform
	duration float64 // 秒
	freq     curve   // Hz
	gain     curve   // 线性增益
}

// render 渲染为 16 位小端立体声 PCM
func (s toneSpec) render() []byte {
	n := int(math.Ceil(s.duration * SampleRate))
	buf := make([]byte, n*4)
	phase := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		v := s.wave.sample(phase) * s.gain.valueAt(t)
		phase += s.freq.valueAt(t) / SampleRate

		v = math.Max(-1, math.Min(1, v))
		sample := uint16(int16(v * math.MaxInt16))
		binary.LittleEndian.PutUint16(buf[i*4:], sample)
		binary.LittleEndian.PutUint16(buf[i*4+2:], sample)
	}
	return buf
}

// 各提示的音色
var (
	shotTone = toneSpec{
		wave:     waveSawtooth,
		duration: 0.1,
		freq:     curve{{0, 800, rampStep}, {0.1, 100, rampExponential}},
		gain:     curve{{0, 0.3, rampStep}, {0.1, 0.01, rampExponential}},
	}

	hitTone = toneSpec{
		wave:     waveSquare,
		duration: 0.1,
		freq:     curve{{0, 150, rampStep}, {0.1, 50, rampExponential}},
		gain:     curve{{0, 0.5, rampStep}, {0.1, 0.01, rampExponential}},
	}

	coinTone = toneSpec{
		wave:     waveSine,
		duration: 0.4,
		freq:     curve{{0, 1200, rampStep}, {0.1, 1800, rampExponential}},
		gain:     curve{{0, 0.2, rampStep}, {0.4, 0.01, rampExponential}},
	}

	// 退弹匣、装弹匣、拉枪栓三段
	reloadTone = toneSpec{
		wave:     waveTriangle,
		duration: 3.0,
		freq: curve{
			{0, 400, rampStep},
			{0.1, 300, rampLinear},
			{2.2, 300, rampStep},
			{2.4, 500, rampLinear},
			{2.6, 600, rampStep},
			{2.8, 200, rampExponential},
		},
		gain: curve{
			{0, 0.2, rampStep},
			{0.2, 0, rampLinear},
			{2.2, 0, rampStep},
			{2.25, 0.2, rampLinear},
			{2.4, 0, rampLinear},
			{2.6, 0, rampStep},
			{2.65, 0.2, rampLinear},
			{2.8, 0, rampLinear},
		},
	}
)

// groanTone 敌人低吼，频率 50~100Hz
func groanTone(freq float64) toneSpec {
	return toneSpec{
		wave:     waveSawtooth,
		duration: 0.5,
		freq:     curve{{0, freq, rampStep}},
		gain:     curve{{0, 0.1, rampStep}, {0.5, 0, rampLinear}},
	}
}

// noteTone 环境音乐的长音：慢起、长尾
func noteTone(freq float64) toneSpec {
	return toneSpec{
		wave:     waveSine,
		duration: 4.0,
		freq:     curve{{0, freq, rampStep}},
		gain:     curve{{0, 0, rampStep}, {0.8, 0.08, rampLinear}, {4.0, 0.001, rampExponential}},
	}
}

// pentatonicScale C 大调五声音阶（C4 D4 E4 G4 A4 C5）
var pentatonicScale = []float64{261.63, 293.66, 329.63, 392.00, 440.00, 523.25}
