package randomlife

import (
	"testing"
	"time"
)

var (
	flashBody  = Color{R: 1, G: 0.3, B: 0, A: 1}
	flashWhite = Color{R: 1, G: 1, B: 1, A: 1}
)

func TestBumpFlashDisabled(t *testing.T) {
	f := NewBumpFlash(flashBody, flashWhite, 0)
	if f.Enabled() {
		t.Fatal("zero duration flash reports enabled")
	}
	f.Trigger()
	f.Update(0.1)
	if f.Active() {
		t.Error("disabled flash became active")
	}
	if f.Color() != flashBody {
		t.Errorf("Color = %+v, want body %+v", f.Color(), flashBody)
	}
}

func TestBumpFlashFadesBack(t *testing.T) {
	f := NewBumpFlash(flashBody, flashWhite, time.Second)
	f.Trigger()
	if !f.Active() {
		t.Fatal("flash not active after Trigger")
	}
	if f.Color() != flashWhite {
		t.Errorf("Color right after Trigger = %+v, want flash color", f.Color())
	}

	f.Update(0.5)
	mid := f.Color()
	if mid.G <= flashBody.G || mid.G >= flashWhite.G {
		t.Errorf("mid-fade G = %v, want strictly between %v and %v", mid.G, flashBody.G, flashWhite.G)
	}
	if !f.Active() {
		t.Error("flash finished early")
	}

	// Run for full duration using exact halves to avoid float32 accumulation drift.
	f.Update(0.5)
	if f.Active() {
		t.Error("flash still active after full duration")
	}
	if f.Color() != flashBody {
		t.Errorf("Color = %+v, want body %+v", f.Color(), flashBody)
	}
}

func TestBumpFlashRetrigger(t *testing.T) {
	f := NewBumpFlash(flashBody, flashWhite, time.Second)
	f.Trigger()
	f.Update(0.75)
	f.Trigger()
	if f.Color() != flashWhite {
		t.Errorf("retrigger did not restart from flash color: %+v", f.Color())
	}
	f.Update(0.5)
	if !f.Active() {
		t.Error("retriggered flash ended before its own duration")
	}
}
