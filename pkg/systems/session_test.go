package systems

import (
	"math"
	"testing"

	"github.com/KanaWorksAI/ZOutbreak/pkg/config"
	"github.com/KanaWorksAI/ZOutbreak/pkg/game"
	"github.com/KanaWorksAI/ZOutbreak/pkg/game/mocks"
	"github.com/KanaWorksAI/ZOutbreak/pkg/types"
	"github.com/KanaWorksAI/ZOutbreak/pkg/utils"
	"go.uber.org/mock/gomock"
)

func newTestSession(t *testing.T, cues game.CueSink) (*Session, *game.ManualScheduler) {
	t.Helper()
	sched := game.NewManualScheduler()
	s := NewSession(SessionConfig{
		Scheduler:    sched,
		RNG:          utils.NewRNG(42),
		Cues:         cues,
		MaxDeltaTime: 0.1,
	})
	t.Cleanup(s.Close)
	return s, sched
}

// aimAtNearest 把视线对准最近的存活敌人
func aimAtNearest(s *Session) {
	snap := s.Snapshot()
	best := math.Inf(1)
	for _, e := range snap.LiveEnemies() {
		d := utils.DistanceSq(snap.Pose.X, snap.Pose.Z, e.X, e.Z)
		if d < best {
			best = d
			s.State().SetAim(math.Atan2(e.X-snap.Pose.X, e.Z-snap.Pose.Z), 0)
		}
	}
}

// TestSessionStartState 新会话停在开始界面，不推进逻辑
func TestSessionStartState(t *testing.T) {
	s, sched := newTestSession(t, nil)

	for i := 0; i < 50; i++ {
		s.Update(0.1)
	}

	snap := s.Snapshot()
	if snap.Status != types.StatusStart {
		t.Errorf("status: got %v, want START", snap.Status)
	}
	if len(snap.Enemies) != 0 {
		t.Errorf("enemies spawned before start: %d", len(snap.Enemies))
	}
	if got := sched.Pending(); got != 0 {
		t.Errorf("pending tasks: got %d, want 0", got)
	}
}

// TestSessionStartGame 开始游戏立即响起音乐
func TestSessionStartGame(t *testing.T) {
	ctrl := gomock.NewController(t)
	sink := mocks.NewMockCueSink(ctrl)
	sink.EXPECT().PlayCue(game.CueMusicNote).Times(1)

	s, _ := newTestSession(t, sink)
	s.StartGame()

	snap := s.Snapshot()
	if snap.Status != types.StatusPlaying || snap.Level != 1 || snap.HP != 100 || snap.Ammo != 20 {
		t.Errorf("unexpected start snapshot: %+v", snap)
	}
}

// TestSessionLastRoundReloadsSameTick 最后一发子弹命中后同一帧开始换弹
func TestSessionLastRoundReloadsSameTick(t *testing.T) {
	rec := &cueRecorder{}
	s, _ := newTestSession(t, rec)
	s.StartGame()

	gs := s.State()
	for i := 0; i < 19; i++ {
		gs.ShootAmmo()
	}
	tank := spawnAt(t, gs, types.EnemyTank, 0, 10)

	s.Update(0.1)

	snap := s.Snapshot()
	if snap.Ammo != 0 {
		t.Errorf("ammo: got %d, want 0", snap.Ammo)
	}
	if !snap.IsReloading {
		t.Error("reload did not start on the same tick")
	}
	if got := enemyByID(t, gs, tank.ID).HP; got != 88 {
		t.Errorf("tank hp: got %d, want 88", got)
	}
	if rec.count(game.CueShot) != 1 || rec.count(game.CueReload) != 1 {
		t.Errorf("cues: shot=%d reload=%d", rec.count(game.CueShot), rec.count(game.CueReload))
	}

	for i := 0; i < 29; i++ {
		s.Update(0.1)
	}
	if !s.Snapshot().IsReloading {
		t.Fatal("reload finished before 3s")
	}

	s.Update(0.1)
	snap = s.Snapshot()
	if snap.IsReloading {
		t.Error("still reloading after 3s")
	}
	if snap.Ammo < 19 {
		t.Errorf("ammo after reload: got %d, want at least 19", snap.Ammo)
	}
}

// TestSessionRestartCancelsReload 重开取消进行中的换弹
func TestSessionRestartCancelsReload(t *testing.T) {
	s, sched := newTestSession(t, &cueRecorder{})
	s.StartGame()
	s.State().ShootAmmo()
	if !s.RequestReload() {
		t.Fatal("RequestReload failed")
	}

	s.StartGame()
	if got := sched.Pending(); got != 1 {
		t.Errorf("pending tasks after restart: got %d, want 1 (music)", got)
	}

	snap := s.Snapshot()
	if snap.IsReloading || snap.Ammo != 20 {
		t.Errorf("restart state: reloading=%v ammo=%d", snap.IsReloading, snap.Ammo)
	}
}

// TestSessionResetGame 回到开始界面并停止所有计时器
func TestSessionResetGame(t *testing.T) {
	s, sched := newTestSession(t, &cueRecorder{})
	s.StartGame()
	for i := 0; i < 20; i++ {
		s.Update(0.1)
	}

	s.ResetGame()

	snap := s.Snapshot()
	if snap.Status != types.StatusStart || len(snap.Enemies) != 0 {
		t.Errorf("reset state: status=%v enemies=%d", snap.Status, len(snap.Enemies))
	}
	if got := sched.Pending(); got != 0 {
		t.Errorf("pending tasks: got %d, want 0", got)
	}
	if got := len(s.Particles()); got != 0 {
		t.Errorf("particles after reset: got %d", got)
	}
}

// TestSessionClampsDelta 单帧步长不超过上限
func TestSessionClampsDelta(t *testing.T) {
	s, sched := newTestSession(t, nil)
	s.StartGame()

	s.Update(5)
	s.Update(-1)

	if got := s.State().Clock(); math.Abs(got-0.1) > 1e-9 {
		t.Errorf("clock: got %v, want 0.1", got)
	}
	if got := sched.Now().Seconds(); math.Abs(got-0.1) > 1e-9 {
		t.Errorf("scheduler time: got %v, want 0.1", got)
	}
}

// TestSessionAim 视角增量与俯仰限制
func TestSessionAim(t *testing.T) {
	s, _ := newTestSession(t, nil)
	s.StartGame()

	s.Aim(0.5, 2)
	s.Aim(0.25, 0)

	pose := s.State().Pose()
	if math.Abs(pose.Yaw-0.75) > 1e-9 {
		t.Errorf("yaw: got %v, want 0.75", pose.Yaw)
	}
	if pose.Pitch != config.PlayerPitchLimit {
		t.Errorf("pitch: got %v, want %v", pose.Pitch, config.PlayerPitchLimit)
	}
}

// TestSessionHeadlessRun 自动瞄准跑一段时间，检查状态始终合法
func TestSessionHeadlessRun(t *testing.T) {
	s, _ := newTestSession(t, &cueRecorder{})
	s.StartGame()

	for i := 0; i < 60*60; i++ {
		aimAtNearest(s)
		s.Update(1.0 / 60)

		snap := s.Snapshot()
		if snap.HP < 0 || snap.HP > snap.MaxHP {
			t.Fatalf("tick %d: hp out of range: %d", i, snap.HP)
		}
		if snap.Ammo < 0 || snap.Ammo > snap.MaxAmmo {
			t.Fatalf("tick %d: ammo out of range: %d", i, snap.Ammo)
		}
		level := config.GetLevelDefinition(snap.Level)
		if s.Waves().Spawned() > level.Count {
			t.Fatalf("tick %d: spawned %d > %d", i, s.Waves().Spawned(), level.Count)
		}
		for _, e := range snap.Enemies {
			if e.HP < 0 || e.HP > e.MaxHP || (e.HP == 0) != e.IsDead {
				t.Fatalf("tick %d: bad enemy %+v", i, e)
			}
		}
		if snap.Status != types.StatusPlaying {
			break
		}
	}

	if got := s.Snapshot().Score; got == 0 {
		t.Error("bot never scored a kill")
	}
}
