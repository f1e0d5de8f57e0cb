package video

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFrameInterval(t *testing.T) {
	tests := []struct {
		name      string
		duration  float64
		maxFrames int
		want      time.Duration
	}{
		{"long video spreads frames", 600, 20, 30 * time.Second},
		{"short video keeps base", 30, 20, 5 * time.Second},
		{"exact boundary", 100, 20, 5 * time.Second},
		{"unknown duration", 0, 20, 5 * time.Second},
		{"negative duration", -1, 20, 5 * time.Second},
		{"hour long", 3600, 20, 180 * time.Second},
		{"fractional", 125, 20, 6250 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FrameInterval(tt.duration, 5*time.Second, tt.maxFrames))
		})
	}
}

func TestFrameIntervalNeverExceedsMaxFrames(t *testing.T) {
	for _, duration := range []float64{1, 7, 99, 100, 101, 599, 600, 601, 3599, 7200, 86400} {
		for _, maxFrames := range []int{1, 5, 20, 30} {
			interval := FrameInterval(duration, 5*time.Second, maxFrames)
			assert.GreaterOrEqual(t, interval, 5*time.Second)
			assert.LessOrEqual(t, FrameCount(duration, interval, maxFrames), maxFrames,
				fmt.Sprintf("duration=%v maxFrames=%d", duration, maxFrames))
		}
	}

	interval := FrameInterval(600, 5*time.Second, 20)
	assert.GreaterOrEqual(t, interval, 30*time.Second)
	assert.Equal(t, 20, FrameCount(600, interval, 20))
}

func TestSampleEvenly(t *testing.T) {
	frames := make([]string, 20)
	for i := range frames {
		frames[i] = fmt.Sprintf("frame_%04d.jpg", i+1)
	}

	got := SampleEvenly(frames, 8)
	assert.Len(t, got, 8)
	assert.Equal(t, "frame_0001.jpg", got[0])
	assert.Equal(t, "frame_0018.jpg", got[7])

	assert.Equal(t, frames[:3], SampleEvenly(frames[:3], 8))
	assert.Empty(t, SampleEvenly(nil, 8))
}

func TestBestThumbnail(t *testing.T) {
	assert.Equal(t, "a.jpg", (&Metadata{Thumbnail: "a.jpg", Thumbnails: []string{"b.jpg"}}).BestThumbnail())
	assert.Equal(t, "c.jpg", (&Metadata{Thumbnails: []string{"b.jpg", "c.jpg"}}).BestThumbnail())
	assert.Equal(t, "", (&Metadata{}).BestThumbnail())
}
