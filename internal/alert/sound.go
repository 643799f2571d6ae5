package alert

import (
	"bytes"
	"context"
	"io"
	"math"
	"os"
	"os/exec"
	"strings"

	"github.com/Gunvolt24/resto_admin/internal/ports"
)

// Проверка соответствия порту приложения.
var _ ports.AlertSound = (*SpeakerSound)(nil)

const sampleRate = 44100

// tone — один фрагмент сигнала; freq=0 — пауза.
type tone struct {
	freq float64
	ms   int
}

// SpeakerSound — звук через внешний плеер (aplay/ffplay/...), в stdin которого
// уезжает синтезированный PCM (s16le, mono, 44100 Гц). Если плеер не задан
// или упал — терминальный звонок "\a" как последний рубеж.
type SpeakerSound struct {
	playerCmd []string
	out       io.Writer
	log       ports.Logger
}

// NewSpeakerSound — playerCmd вида «aplay -q -f S16_LE -r 44100 -c 1»;
// пустая строка — сразу терминальный звонок.
func NewSpeakerSound(playerCmd string, log ports.Logger) *SpeakerSound {
	return &SpeakerSound{
		playerCmd: strings.Fields(playerCmd),
		out:       os.Stdout,
		log:       log,
	}
}

// PlayCue — двойной сигнал «есть необработанные заказы».
func (s *SpeakerSound) PlayCue(ctx context.Context) error {
	return s.play(ctx, []tone{{880, 150}, {0, 80}, {880, 150}})
}

// PlayTest — одиночный подтверждающий сигнал при включении звука.
func (s *SpeakerSound) PlayTest(ctx context.Context) error {
	return s.play(ctx, []tone{{660, 200}})
}

func (s *SpeakerSound) play(ctx context.Context, tones []tone) error {
	if len(s.playerCmd) == 0 {
		return s.bell()
	}

	cmd := exec.CommandContext(ctx, s.playerCmd[0], s.playerCmd[1:]...)
	cmd.Stdin = bytes.NewReader(renderPCM(tones))
	if err := cmd.Run(); err != nil {
		s.log.Warnf(ctx, "player %q failed: %v (fallback to terminal bell)", s.playerCmd[0], err)
		return s.bell()
	}
	return nil
}

func (s *SpeakerSound) bell() error {
	_, err := io.WriteString(s.out, "\a")
	return err
}

// renderPCM — синтез сигнала: синус с коротким линейным фейдом по краям,
// чтобы не щёлкало на границах фрагментов.
func renderPCM(tones []tone) []byte {
	var buf []byte
	for _, t := range tones {
		n := sampleRate * t.ms / 1000
		fade := sampleRate / 200 // 5 мс
		for i := 0; i < n; i++ {
			var sample int16
			if t.freq > 0 {
				v := math.Sin(2 * math.Pi * t.freq * float64(i) / sampleRate)
				env := 0.3
				if i < fade {
					env *= float64(i) / float64(fade)
				} else if n-i < fade {
					env *= float64(n-i) / float64(fade)
				}
				sample = int16(v * env * math.MaxInt16)
			}
			buf = append(buf, byte(sample), byte(sample>>8))
		}
	}
	return buf
}
