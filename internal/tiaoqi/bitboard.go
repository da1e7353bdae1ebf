package tiaoqi

import "math/bits"

// Mask 是 81 位占位掩码：bit i 置位表示格子 i 有子。
// 两个 uint64 拼出 128 位，低 64 位在 Lo。值类型，可比较、可作 map 键。
type Mask struct {
	Lo, Hi uint64
}

func bitMask(sq int) Mask {
	if sq < 64 {
		return Mask{Lo: 1 << uint(sq)}
	}
	return Mask{Hi: 1 << uint(sq-64)}
}

func (m Mask) Test(sq int) bool {
	if sq < 64 {
		return m.Lo>>uint(sq)&1 != 0
	}
	return m.Hi>>uint(sq-64)&1 != 0
}

func (m *Mask) Set(sq int) {
	if sq < 64 {
		m.Lo |= 1 << uint(sq)
	} else {
		m.Hi |= 1 << uint(sq-64)
	}
}

func (m *Mask) Clear(sq int) {
	if sq < 64 {
		m.Lo &^= 1 << uint(sq)
	} else {
		m.Hi &^= 1 << uint(sq-64)
	}
}

func (m Mask) Or(o Mask) Mask     { return Mask{m.Lo | o.Lo, m.Hi | o.Hi} }
func (m Mask) And(o Mask) Mask    { return Mask{m.Lo & o.Lo, m.Hi & o.Hi} }
func (m Mask) AndNot(o Mask) Mask { return Mask{m.Lo &^ o.Lo, m.Hi &^ o.Hi} }

func (m Mask) IsZero() bool { return m.Lo == 0 && m.Hi == 0 }

func (m Mask) Count() int {
	return bits.OnesCount64(m.Lo) + bits.OnesCount64(m.Hi)
}

// HighestBit 返回最高置位下标，空掩码返回 -1。
// 棋盘扫描统一从高位到低位。
func (m Mask) HighestBit() int {
	if m.Hi != 0 {
		return 63 + bits.Len64(m.Hi)
	}
	return bits.Len64(m.Lo) - 1
}

// Mirror 把每个格子映射到中心对称格子（sq -> 80-sq）
func (m Mask) Mirror() Mask {
	var out Mask
	for x := m; !x.IsZero(); {
		sq := x.HighestBit()
		x.Clear(sq)
		out.Set(NumCells - 1 - sq)
	}
	return out
}
