package audio

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/vovakirdan/taxi-rush/internal/core"
)

func TestSamples(t *testing.T) {
	tests := []struct {
		cue     core.Cue
		seconds float64
	}{
		{core.CueCollision, 0.25},
		{core.CueDelivery, 0.24},
		{core.CueRefuel, 0.3},
	}
	for _, tt := range tests {
		t.Run(tt.cue.String(), func(t *testing.T) {
			buf := Samples(tt.cue)
			if len(buf)%8 != 0 {
				t.Fatalf("length %d is not whole stereo frames", len(buf))
			}
			want := int(tt.seconds*SampleRate) * 8
			if d := len(buf) - want; d < -16 || d > 16 {
				t.Errorf("length = %d bytes, want about %d", len(buf), want)
			}

			loud := false
			for off := 0; off < len(buf); off += 4 {
				v := math.Float32frombits(binary.LittleEndian.Uint32(buf[off:]))
				if v < -1 || v > 1 || math.IsNaN(float64(v)) {
					t.Fatalf("sample %v out of range at byte %d", v, off)
				}
				if math.Abs(float64(v)) > 0.05 {
					loud = true
				}
			}
			if !loud {
				t.Error("cue is silent")
			}
		})
	}
}

func TestSamplesUnknownCue(t *testing.T) {
	if buf := Samples(core.CueNone); buf != nil {
		t.Errorf("CueNone rendered %d bytes", len(buf))
	}
}

func TestNopPlayer(t *testing.T) {
	var p Player = Nop{}
	p.Play(core.CueCollision)
}
