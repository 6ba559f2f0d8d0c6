package randomlife

import "testing"

func TestNewLogger(t *testing.T) {
	for _, debug := range []bool{false, true} {
		log, err := NewLogger(debug)
		if err != nil {
			t.Fatalf("NewLogger(%v): %v", debug, err)
		}
		if got := log.Core().Enabled(-1); got != debug {
			t.Errorf("NewLogger(%v): debug enabled = %v", debug, got)
		}
	}
}
