package service

import (
	"math"
)

// TrendWindowSize 周趋势取最近 7 个采样点
const TrendWindowSize = 7

// ComputeGrowthTrend 根据最近采样序列计算周增长率
// samples 按采样时间倒序排列，samples[0] 为最新值
// 样本不足一个完整窗口或初始值不为正数时返回 0
func ComputeGrowthTrend(samples []int) float64 {
	if len(samples) < TrendWindowSize {
		return 0
	}

	latest := samples[0]
	initial := samples[TrendWindowSize-1]
	if initial <= 0 {
		return 0
	}

	trend := float64(latest-initial) / float64(initial) * 100
	return math.Round(trend*1000) / 1000
}
