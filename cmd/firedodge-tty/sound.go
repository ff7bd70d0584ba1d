package main

import (
	"log"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// hitSound 游戏结束时的提示音
// 音频初始化失败时静默，游戏照常运行
type hitSound struct {
	initialized bool
}

func newHitSound() *hitSound {
	s := &hitSound{}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		log.Printf("[Sound] Audio initialization failed: %v", err)
		return s
	}
	s.initialized = true
	return s
}

// Play 播放一个短促的下降双音
func (s *hitSound) Play() {
	if !s.initialized {
		return
	}

	high, err := generators.SineTone(sampleRate, 660)
	if err != nil {
		log.Printf("[Sound] SineTone failed: %v", err)
		return
	}
	low, err := generators.SineTone(sampleRate, 330)
	if err != nil {
		log.Printf("[Sound] SineTone failed: %v", err)
		return
	}

	speaker.Play(beep.Seq(
		beep.Take(sampleRate.N(80*time.Millisecond), high),
		beep.Take(sampleRate.N(160*time.Millisecond), low),
	))
}

// Close 关闭音频设备
func (s *hitSound) Close() {
	if s.initialized {
		speaker.Close()
	}
}
