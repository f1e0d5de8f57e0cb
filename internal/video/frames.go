package video

import (
	"math"
	"time"
)

// FrameInterval spaces frames so that a video of the given length yields at most
// maxFrames of them: max(base, duration/maxFrames). Unknown durations use base.
func FrameInterval(durationSeconds float64, base time.Duration, maxFrames int) time.Duration {
	if durationSeconds <= 0 || maxFrames < 1 {
		return base
	}
	spread := time.Duration(durationSeconds / float64(maxFrames) * float64(time.Second))
	if spread > base {
		return spread
	}
	return base
}

// FrameCount is how many frames sampling every interval produces, capped at maxFrames.
func FrameCount(durationSeconds float64, interval time.Duration, maxFrames int) int {
	if durationSeconds <= 0 || interval <= 0 {
		return maxFrames
	}
	n := int(math.Ceil(durationSeconds / interval.Seconds()))
	if n > maxFrames {
		return maxFrames
	}
	return n
}

// SampleEvenly picks at most n entries spread across frames, keeping order.
func SampleEvenly(frames []string, n int) []string {
	if n <= 0 || len(frames) <= n {
		return append([]string(nil), frames...)
	}
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, frames[i*len(frames)/n])
	}
	return out
}
