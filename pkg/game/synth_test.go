package game

import (
	"encoding/binary"
	"math"
	"testing"
)

func TestCurveValueAt(t *testing.T) {
	c := curve{
		{0, 400, rampStep},
		{0.1, 300, rampLinear},
		{2.2, 300, rampStep},
		{2.4, 500, rampLinear},
		{2.6, 600, rampStep},
		{2.8, 200, rampExponential},
	}

	tests := []struct {
		name string
		t    float64
		want float64
	}{
		{"起点之前", -1, 400},
		{"线性中点", 0.05, 350},
		{"保持", 1.0, 300},
		{"第二段中点", 2.3, 400},
		{"跳变之前保持", 2.5, 500},
		{"跳变", 2.6, 600},
		{"指数段终点", 2.8, 200},
		{"结束之后", 5, 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.valueAt(tt.t); math.Abs(got-tt.want) > 1e-6 {
				t.Errorf("valueAt(%v): got %v, want %v", tt.t, got, tt.want)
			}
		})
	}

	// 指数段的几何中点
	mid := c.valueAt(2.7)
	if want := math.Sqrt(600 * 200); math.Abs(mid-want) > 1e-6 {
		t.Errorf("exponential midpoint: got %v, want %v", mid, want)
	}
}

func TestCurveExponentialFallsBackToLinear(t *testing.T) {
	c := curve{{0, 0, rampStep}, {1, 1, rampExponential}}
	if got := c.valueAt(0.5); got != 0.5 {
		t.Errorf("exp ramp from zero: got %v, want 0.5", got)
	}
	if got := (curve{}).valueAt(1); got != 0 {
		t.Errorf("empty curve: got %v, want 0", got)
	}
}

func TestWaveformRange(t *testing.T) {
	for _, w := range []waveform{waveSine, waveSquare, waveSawtooth, waveTriangle} {
		for i := 0; i < 100; i++ {
			v := w.sample(float64(i) * 0.037)
			if v < -1 || v > 1 {
				t.Fatalf("waveform %d: sample out of range: %v", w, v)
			}
		}
	}
}

func TestToneRenderLength(t *testing.T) {
	tests := []struct {
		name string
		tone toneSpec
		secs float64
	}{
		{"shot", shotTone, 0.1},
		{"hit", hitTone, 0.1},
		{"coin", coinTone, 0.4},
		{"reload", reloadTone, 3.0},
		{"groan", groanTone(75), 0.5},
		{"note", noteTone(440), 4.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pcm := tt.tone.render()
			wantSamples := int(math.Ceil(tt.secs * SampleRate))
			if len(pcm) != wantSamples*4 {
				t.Errorf("pcm bytes: got %d, want %d", len(pcm), wantSamples*4)
			}
		})
	}
}

func TestToneRenderStereoAndSilentGap(t *testing.T) {
	pcm := reloadTone.render()

	// 左右声道相同
	for i := 0; i < len(pcm); i += 4 * 997 {
		l := binary.LittleEndian.Uint16(pcm[i:])
		r := binary.LittleEndian.Uint16(pcm[i+2:])
		if l != r {
			t.Fatalf("frame %d: left %d != right %d", i/4, l, r)
		}
	}

	// 退弹匣和装弹匣之间是静音
	frame := int(1.0 * SampleRate)
	if s := int16(binary.LittleEndian.Uint16(pcm[frame*4:])); s != 0 {
		t.Errorf("sample at 1.0s: got %d, want 0", s)
	}
}
