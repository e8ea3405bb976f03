package components

// CoinDrop 敌人死亡时在原地掉落的金币
type CoinDrop struct {
	ID    string
	X     float64
	Z     float64
	Value int
}
