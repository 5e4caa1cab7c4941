// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"errors"
	"slices"
	"sync"
	"testing"
)

func TestStream_Frames(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		stream Stream
		want   int
	}{
		{"stereo 16-bit", Stream{Channels: 2, SampleWidth: 2, Data: make([]byte, 16)}, 4},
		{"mono 16-bit", Stream{Channels: 1, SampleWidth: 2, Data: make([]byte, 6)}, 3},
		{"partial frame ignored", Stream{Channels: 2, SampleWidth: 2, Data: make([]byte, 10)}, 2},
		{"empty", Stream{Channels: 2, SampleWidth: 2}, 0},
		{"zero channels", Stream{SampleWidth: 2, Data: make([]byte, 4)}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.stream.Frames(); got != tt.want {
				t.Errorf("Frames() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestStream_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		stream  Stream
		wantErr error
	}{
		{"valid", Stream{Channels: 2, SampleWidth: 2, FrameRate: 8000, Data: make([]byte, 8)}, nil},
		{"no channels", Stream{SampleWidth: 2, FrameRate: 8000}, ErrInvalidChannels},
		{"width too small", Stream{Channels: 1, FrameRate: 8000}, ErrInvalidSampleWidth},
		{"width too large", Stream{Channels: 1, SampleWidth: 5, FrameRate: 8000}, ErrInvalidSampleWidth},
		{"no rate", Stream{Channels: 1, SampleWidth: 2}, ErrInvalidFrameRate},
		{"partial frame", Stream{Channels: 2, SampleWidth: 2, FrameRate: 8000, Data: make([]byte, 6)}, ErrPartialFrame},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.stream.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Validate() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestRegistry(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	if _, ok := reg.Get("wav"); ok {
		t.Fatal("Get() on empty registry returned ok")
	}

	reg.Register("wav", nil)
	reg.Register("mp3", nil)

	if _, ok := reg.Get("wav"); !ok {
		t.Error("Get(wav) not found after Register")
	}

	if got, want := reg.Formats(), []string{"mp3", "wav"}; !slices.Equal(got, want) {
		t.Errorf("Formats() = %v, want %v", got, want)
	}
}

func TestRegistry_Concurrent(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	var wg sync.WaitGroup
	for i := range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			key := string(rune('a' + i))
			reg.Register(key, nil)
			reg.Get(key)
		}()
	}
	wg.Wait()

	if got := len(reg.Formats()); got != 16 {
		t.Errorf("len(Formats()) = %d, want 16", got)
	}
}
