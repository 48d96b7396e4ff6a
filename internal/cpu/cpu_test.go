package cpu

import "testing"

func TestCoreFor(t *testing.T) {
	n := NumCPU()

	tests := []struct {
		name     string
		workerID int
		want     int
	}{
		{"first worker", 0, 0},
		{"wraps past core count", n, 0},
		{"wraps with offset", n + 1, 1 % n},
		{"negative id", -1, n - 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := coreFor(tt.workerID); got != tt.want {
				t.Errorf("coreFor(%d) = %d, want %d", tt.workerID, got, tt.want)
			}
		})
	}
}

func TestPin_ReleaseIsCallable(t *testing.T) {
	done := make(chan struct{})
	go func() {
		defer close(done)
		release, err := Pin(0)
		// pinning can be refused inside restricted containers
		if err != nil {
			t.Logf("pin refused: %v", err)
		}
		release()
	}()
	<-done
}
