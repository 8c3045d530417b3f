package raylib

import (
	"errors"
	"testing"
	"unsafe"
)

func resetAudioSlots(t *testing.T) {
	t.Helper()
	reset := func() {
		audio.mu.Lock()
		for i := range audio.slots {
			audio.slots[i] = audioSlot{}
		}
		audio.mu.Unlock()
	}
	reset()
	t.Cleanup(reset)
}

func TestAudioSlotPool(t *testing.T) {
	resetAudioSlots(t)

	audio.mu.Lock()
	defer audio.mu.Unlock()
	handles := make([]ProcessorHandle, 0, audioSlots)
	for i := range audioSlots {
		h, cb, err := claimAudioSlot(audioSlot{kind: slotMixedProcessor, proc: func([]float32) {}})
		if err != nil {
			t.Fatalf("claim %d: %v", i, err)
		}
		if cb == 0 {
			t.Fatalf("claim %d: no native entry point", i)
		}
		handles = append(handles, h)
	}
	if _, _, err := claimAudioSlot(audioSlot{kind: slotMixedProcessor}); !errors.Is(err, ErrCallbackPoolExhausted) {
		t.Fatalf("claim past capacity = %v, want ErrCallbackPoolExhausted", err)
	}

	if _, _, ok := releaseAudioSlot(handles[3], slotStreamProcessor); ok {
		t.Errorf("released a mixed processor as a stream processor")
	}
	_, cb, ok := releaseAudioSlot(handles[3], slotMixedProcessor)
	if !ok || cb != audio.thunks[3] {
		t.Fatalf("release = %v, %v", cb, ok)
	}
	if _, _, ok := releaseAudioSlot(handles[3], slotMixedProcessor); ok {
		t.Errorf("stale handle released twice")
	}

	h, cb2, err := claimAudioSlot(audioSlot{kind: slotMixedProcessor})
	if err != nil || h.slot != 3 || cb2 != cb {
		t.Fatalf("reclaim = %+v, %v, %v", h, cb2 == cb, err)
	}
	if _, _, ok := releaseAudioSlot(handles[3], slotMixedProcessor); ok {
		t.Errorf("old handle released the reused slot")
	}
	if _, _, ok := releaseAudioSlot(ProcessorHandle{slot: -1}, slotMixedProcessor); ok {
		t.Errorf("out of range handle released")
	}
}

func TestDispatchAudio(t *testing.T) {
	resetAudioSlots(t)

	var gotProc, gotMixed int
	var gotBytes int
	audio.mu.Lock()
	audio.slots[0] = audioSlot{
		kind:   slotStreamProcessor,
		stream: AudioStream{Channels: 1, SampleSize: 32},
		proc: func(s []float32) {
			gotProc = len(s)
			for i := range s {
				s[i] *= 2
			}
		},
	}
	audio.slots[1] = audioSlot{kind: slotMixedProcessor, proc: func(s []float32) { gotMixed = len(s) }}
	audio.slots[2] = audioSlot{
		kind:     slotStreamCallback,
		stream:   AudioStream{Channels: 2, SampleSize: 16},
		callback: func(buf []byte, frames uint32) { gotBytes = len(buf) },
	}
	audio.mu.Unlock()

	buf := []float32{1, 2, 3, 4, 5, 6, 7, 8}
	dispatchAudio(0, unsafe.Pointer(&buf[0]), 4)
	if gotProc != 4 || buf[3] != 8 || buf[4] != 5 {
		t.Errorf("stream processor saw %d samples, buf = %v", gotProc, buf)
	}
	dispatchAudio(1, unsafe.Pointer(&buf[0]), 4)
	if gotMixed != 8 {
		t.Errorf("mixed processor saw %d samples, want 8", gotMixed)
	}
	dispatchAudio(2, unsafe.Pointer(&buf[0]), 3)
	if gotBytes != 12 {
		t.Errorf("stream callback got %d bytes, want 12", gotBytes)
	}

	gotProc = 0
	dispatchAudio(0, nil, 4)
	dispatchAudio(5, unsafe.Pointer(&buf[0]), 4)
	if gotProc != 0 {
		t.Errorf("processor ran without a buffer")
	}
}

func TestFrameCount(t *testing.T) {
	tests := []struct {
		samples  int
		channels uint32
		want     int32
	}{
		{0, 2, 0},
		{8, 2, 4},
		{9, 2, 4},
		{6, 1, 6},
		{6, 0, 6},
	}
	for _, tt := range tests {
		if got := frameCount(tt.samples, tt.channels); got != tt.want {
			t.Errorf("frameCount(%d, %d) = %d, want %d", tt.samples, tt.channels, got, tt.want)
		}
	}
}
