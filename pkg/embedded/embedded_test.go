package embedded

import (
	"errors"
	"testing"
	"testing/fstest"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"data/config/game.yaml": &fstest.MapFile{Data: []byte("window:\n  width: 800\n")},
	}
}

// TestIsInitialized 测试初始化状态检测
func TestIsInitialized(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	if IsInitialized() {
		t.Error("Expected IsInitialized() to return false before Init()")
	}

	Init(testFS())

	if !IsInitialized() {
		t.Error("Expected IsInitialized() to return true after Init()")
	}
}

// TestReadFileNotInitialized 测试未初始化时调用 ReadFile
func TestReadFileNotInitialized(t *testing.T) {
	Reset()

	_, err := ReadFile("data/config/game.yaml")
	if !errors.Is(err, ErrNotInitialized) {
		t.Errorf("ReadFile before Init: got %v, want %v", err, ErrNotInitialized)
	}
	if Exists("data/config/game.yaml") {
		t.Error("Expected Exists() to return false before Init()")
	}
}

func TestReadFile(t *testing.T) {
	Init(testFS())
	t.Cleanup(Reset)

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"plain path", "data/config/game.yaml", false},
		{"dot prefix", "./data/config/game.yaml", false},
		{"missing file", "data/config/missing.yaml", true},
		{"wrong prefix", "assets/config/game.yaml", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := ReadFile(tt.path)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ReadFile(%q): expected error", tt.path)
				}
				return
			}
			if err != nil {
				t.Fatalf("ReadFile(%q): unexpected error: %v", tt.path, err)
			}
			if len(data) == 0 {
				t.Errorf("ReadFile(%q): got empty content", tt.path)
			}
		})
	}
}

func TestExists(t *testing.T) {
	Init(testFS())
	t.Cleanup(Reset)

	if !Exists("data/config/game.yaml") {
		t.Error("Exists(game.yaml): got false, want true")
	}
	if Exists("data/config/nope.yaml") {
		t.Error("Exists(nope.yaml): got true, want false")
	}
}
