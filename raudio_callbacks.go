package raylib

import (
	"sync"
	"unsafe"

	"github.com/gogpu/raylib/internal/bind"
)

// audioSlots is the number of native trampolines shared by stream
// callbacks and audio processors.
const audioSlots = 16

// mixedChannels is the channel count of the device mix raylib hands to
// mixed processors.
const mixedChannels = 2

// AudioProcessor receives interleaved float samples, frames times the
// channel count, and may modify them in place. It runs on the audio
// thread.
type AudioProcessor func(samples []float32)

// AudioStreamCallback fills buf with frames of audio in the stream's own
// sample format. It runs on the audio thread.
type AudioStreamCallback func(buf []byte, frames uint32)

// ProcessorHandle identifies an attached processor.
type ProcessorHandle struct {
	slot int
	gen  uint64
}

type audioSlotKind uint8

const (
	slotFree audioSlotKind = iota
	slotStreamCallback
	slotStreamProcessor
	slotMixedProcessor
)

type audioSlot struct {
	kind     audioSlotKind
	gen      uint64
	stream   AudioStream
	proc     AudioProcessor
	callback AudioStreamCallback
}

var (
	procSetAudioStreamCallback     = bind.New("SetAudioStreamCallback", bind.Void, cAudioStream, bind.Ptr)
	procAttachAudioStreamProcessor = bind.New("AttachAudioStreamProcessor", bind.Void, cAudioStream, bind.Ptr)
	procDetachAudioStreamProcessor = bind.New("DetachAudioStreamProcessor", bind.Void, cAudioStream, bind.Ptr)
	procAttachAudioMixedProcessor  = bind.New("AttachAudioMixedProcessor", bind.Void, bind.Ptr)
	procDetachAudioMixedProcessor  = bind.New("DetachAudioMixedProcessor", bind.Void, bind.Ptr)
)

var audio struct {
	mu     sync.RWMutex
	slots  [audioSlots]audioSlot
	thunks [audioSlots]uintptr
	gen    uint64
}

func init() {
	onUnload(func() {
		audio.mu.Lock()
		for i := range audio.slots {
			audio.slots[i] = audioSlot{}
		}
		audio.mu.Unlock()
	})
}

// audioThunk returns the native entry point of slot i. Callers hold
// audio.mu.
func audioThunk(i int) uintptr {
	if audio.thunks[i] == 0 {
		audio.thunks[i] = bind.NewCallback(func(buf unsafe.Pointer, frames uint32) {
			dispatchAudio(i, buf, frames)
		})
	}
	return audio.thunks[i]
}

func dispatchAudio(i int, buf unsafe.Pointer, frames uint32) {
	audio.mu.RLock()
	s := audio.slots[i]
	audio.mu.RUnlock()
	if buf == nil || frames == 0 {
		return
	}
	switch s.kind {
	case slotStreamCallback:
		if s.callback != nil {
			n := int(frames) * int(s.stream.Channels) * int(s.stream.SampleSize/8)
			s.callback(unsafe.Slice((*byte)(buf), n), frames)
		}
	case slotStreamProcessor:
		if s.proc != nil {
			s.proc(unsafe.Slice((*float32)(buf), int(frames)*int(s.stream.Channels)))
		}
	case slotMixedProcessor:
		if s.proc != nil {
			s.proc(unsafe.Slice((*float32)(buf), int(frames)*mixedChannels))
		}
	}
}

// claimAudioSlot takes a free slot. Callers hold audio.mu.
func claimAudioSlot(s audioSlot) (ProcessorHandle, uintptr, error) {
	for i := range audio.slots {
		if audio.slots[i].kind != slotFree {
			continue
		}
		audio.gen++
		s.gen = audio.gen
		audio.slots[i] = s
		Logger().Debug("raylib: audio slot claimed", "slot", i, "kind", s.kind)
		return ProcessorHandle{slot: i, gen: s.gen}, audioThunk(i), nil
	}
	return ProcessorHandle{}, 0, ErrCallbackPoolExhausted
}

// releaseAudioSlot frees the slot of h if it still holds kind. Callers hold
// audio.mu.
func releaseAudioSlot(h ProcessorHandle, kind audioSlotKind) (audioSlot, uintptr, bool) {
	if h.slot < 0 || h.slot >= audioSlots {
		return audioSlot{}, 0, false
	}
	s := audio.slots[h.slot]
	if s.kind != kind || s.gen != h.gen {
		return audioSlot{}, 0, false
	}
	audio.slots[h.slot] = audioSlot{}
	return s, audio.thunks[h.slot], true
}

// SetAudioStreamCallback makes raylib pull audio for stream from fn. nil
// removes the callback.
func SetAudioStreamCallback(stream AudioStream, fn AudioStreamCallback) error {
	audio.mu.Lock()
	for i, s := range audio.slots {
		if s.kind == slotStreamCallback && s.stream.Buffer == stream.Buffer {
			audio.slots[i] = audioSlot{}
		}
	}
	var cb uintptr
	if fn != nil {
		var err error
		if _, cb, err = claimAudioSlot(audioSlot{kind: slotStreamCallback, stream: stream, callback: fn}); err != nil {
			audio.mu.Unlock()
			return err
		}
	}
	audio.mu.Unlock()
	procSetAudioStreamCallback.Call(nil, unsafe.Pointer(&stream), unsafe.Pointer(&cb))
	return nil
}

// AttachAudioStreamProcessor adds fn to the processing chain of stream.
func AttachAudioStreamProcessor(stream AudioStream, fn AudioProcessor) (ProcessorHandle, error) {
	audio.mu.Lock()
	h, cb, err := claimAudioSlot(audioSlot{kind: slotStreamProcessor, stream: stream, proc: fn})
	audio.mu.Unlock()
	if err != nil {
		return ProcessorHandle{}, err
	}
	procAttachAudioStreamProcessor.Call(nil, unsafe.Pointer(&stream), unsafe.Pointer(&cb))
	return h, nil
}

// DetachAudioStreamProcessor removes a processor added by
// AttachAudioStreamProcessor. Stale handles are ignored.
func DetachAudioStreamProcessor(h ProcessorHandle) {
	audio.mu.Lock()
	s, cb, ok := releaseAudioSlot(h, slotStreamProcessor)
	audio.mu.Unlock()
	if ok {
		procDetachAudioStreamProcessor.Call(nil, unsafe.Pointer(&s.stream), unsafe.Pointer(&cb))
	}
}

// AttachAudioMixedProcessor adds fn to the processing chain of the
// device mix, which is stereo.
func AttachAudioMixedProcessor(fn AudioProcessor) (ProcessorHandle, error) {
	audio.mu.Lock()
	h, cb, err := claimAudioSlot(audioSlot{kind: slotMixedProcessor, proc: fn})
	audio.mu.Unlock()
	if err != nil {
		return ProcessorHandle{}, err
	}
	procAttachAudioMixedProcessor.Call(nil, unsafe.Pointer(&cb))
	return h, nil
}

// DetachAudioMixedProcessor removes a processor added by
// AttachAudioMixedProcessor. Stale handles are ignored.
func DetachAudioMixedProcessor(h ProcessorHandle) {
	audio.mu.Lock()
	_, cb, ok := releaseAudioSlot(h, slotMixedProcessor)
	audio.mu.Unlock()
	if ok {
		procDetachAudioMixedProcessor.Call(nil, unsafe.Pointer(&cb))
	}
}
