// Package backbutton watches a Linux input device for a hardware back
// key, the kind handheld devices expose through evdev. Presses are
// delivered over a channel so the embedding application can drain them on
// its UI thread and keep navigation calls strictly serialized:
//
//	w, err := backbutton.Watch(backbutton.DefaultDevicePath, evdev.KEY_BACK)
//	...
//	for {
//	    select {
//	    case <-w.Presses():
//	        if nav.CanGoBack() {
//	            nav.Back()
//	        }
//	    ...
//	    }
//	}
package backbutton

import (
	"fmt"

	evdev "github.com/holoplot/go-evdev"
	"go.uber.org/atomic"
)

// DefaultDevicePath is where most supported devices expose their buttons.
const DefaultDevicePath = "/dev/input/event1"

// Watcher reads key events from one input device and reports presses of a
// single key code.
type Watcher struct {
	device  *evdev.InputDevice
	code    evdev.EvCode
	presses chan struct{}
	stopped *atomic.Bool
	done    chan struct{}
}

// Watch opens the input device at devicePath and starts a goroutine that
// reports key-down events for code on the Presses channel. Close releases
// the device and stops the goroutine.
func Watch(devicePath string, code evdev.EvCode) (*Watcher, error) {
	device, err := evdev.Open(devicePath)
	if err != nil {
		return nil, fmt.Errorf("backbutton: opening %s: %w", devicePath, err)
	}

	w := &Watcher{
		device:  device,
		code:    code,
		presses: make(chan struct{}, 1),
		stopped: atomic.NewBool(false),
		done:    make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

// Presses delivers one value per key-down of the watched code. The
// channel has a buffer of one; presses arriving while the consumer is
// busy coalesce rather than queue.
func (w *Watcher) Presses() <-chan struct{} {
	return w.presses
}

func (w *Watcher) loop() {
	defer close(w.done)

	for !w.stopped.Load() {
		ev, err := w.device.ReadOne()
		if err != nil {
			// Device closed or unplugged.
			return
		}
		if ev.Type != evdev.EV_KEY || ev.Code != w.code || ev.Value != 1 {
			continue
		}
		select {
		case w.presses <- struct{}{}:
		default:
		}
	}
}

// Close stops the watcher and releases the device. Safe to call more
// than once.
func (w *Watcher) Close() {
	if w.stopped.Swap(true) {
		return
	}
	w.device.Close() // unblocks ReadOne
	<-w.done
}
