package audio

import (
	"math"

	"github.com/vovakirdan/taxi-rush/internal/core"
)

// Samples renders a cue as interleaved stereo float32 LE frames.
// Unknown cues render as silence of zero length.
func Samples(cue core.Cue) []byte {
	switch cue {
	case core.CueCollision:
		return genCrash()
	case core.CueDelivery:
		return genChime()
	case core.CueRefuel:
		return genFill()
	}
	return nil
}

func frames(d float64) int {
	return int(d * SampleRate)
}

// putStereoF32 writes a [-1,1] sample to both channels of frame i.
func putStereoF32(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	for ch := 0; ch < ChannelCount; ch++ {
		off := i*8 + ch*4
		buf[off] = byte(v)
		buf[off+1] = byte(v >> 8)
		buf[off+2] = byte(v >> 16)
		buf[off+3] = byte(v >> 24)
	}
}

// genCrash is a short burst of decaying noise over a low thump.
func genCrash() []byte {
	n := frames(0.25)
	buf := make([]byte, n*8)
	seed := uint32(0x9e3779b9)
	for i := range n {
		t := float64(i) / SampleRate
		env := math.Exp(-t * 18)
		seed ^= seed << 13
		seed ^= seed >> 17
		seed ^= seed << 5
		noise := float64(seed)/float64(math.MaxUint32)*2 - 1
		thump := math.Sin(2 * math.Pi * 70 * t)
		putStereoF32(buf, i, env*(0.5*noise+0.4*thump))
	}
	return buf
}

// genChime plays two rising notes.
func genChime() []byte {
	notes := []float64{660, 990}
	per := frames(0.12)
	buf := make([]byte, per*len(notes)*8)
	for k, f := range notes {
		for i := range per {
			t := float64(i) / SampleRate
			env := math.Exp(-t * 10)
			putStereoF32(buf, k*per+i, 0.4*env*math.Sin(2*math.Pi*f*t))
		}
	}
	return buf
}

// genFill is an upward sweep, like a tank filling.
func genFill() []byte {
	n := frames(0.3)
	buf := make([]byte, n*8)
	phase := 0.0
	for i := range n {
		p := float64(i) / float64(n)
		f := 220 + 440*p
		phase += 2 * math.Pi * f / SampleRate
		env := math.Sin(math.Pi * p)
		putStereoF32(buf, i, 0.35*env*math.Sin(phase))
	}
	return buf
}
