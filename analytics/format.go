package analytics

import (
	"fmt"
	"math"
)

// round2 保留两位小数
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// pctChange 计算百分比变化。
// 基数为 0 时：当前也为 0 返回 0，否则返回 100。
func pctChange(prev, cur float64) float64 {
	if prev == 0 {
		if cur == 0 {
			return 0
		}
		return 100
	}
	return (cur - prev) / prev * 100
}

// humanizeCount 把互动量格式化为可读字符串，如 987、1.2K、3.4M
func humanizeCount(n int) string {
	switch {
	case n >= 1000000:
		return fmt.Sprintf("%.1fM", float64(n)/1000000)
	case n >= 1000:
		return fmt.Sprintf("%.1fK", float64(n)/1000)
	default:
		return fmt.Sprintf("%d", n)
	}
}
