package autoplay

import (
	"context"
	"testing"
	"time"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestTickerDelivers(t *testing.T) {
	tk := Start(context.Background(), 5*time.Millisecond)
	defer tk.Stop()

	for i := 0; i < 3; i++ {
		select {
		case _, ok := <-tk.C():
			if !ok {
				t.Fatal("channel closed early")
			}
		case <-time.After(time.Second):
			t.Fatal("no tick")
		}
	}
}

func TestTickerStopClosesChannel(t *testing.T) {
	tk := Start(context.Background(), time.Hour)
	tk.Stop()

	select {
	case _, ok := <-tk.C():
		if ok {
			t.Error("expected closed channel")
		}
	case <-time.After(time.Second):
		t.Fatal("channel not closed after stop")
	}
}

func TestTickerStopIdempotent(t *testing.T) {
	tk := Start(context.Background(), time.Millisecond)
	tk.Stop()
	tk.Stop()

	var nilTicker *Ticker
	nilTicker.Stop()
}

func TestTickerContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	tk := Start(ctx, time.Millisecond)
	cancel()

	select {
	case <-tk.Done():
	case <-time.After(time.Second):
		t.Fatal("ticker ignored context cancellation")
	}
	tk.Stop()
}

func TestTickerDropsUnreadTicks(t *testing.T) {
	tk := Start(context.Background(), time.Millisecond)
	time.Sleep(20 * time.Millisecond)

	// nobody read for many periods; stopping must not block
	stopped := make(chan struct{})
	go func() {
		tk.Stop()
		close(stopped)
	}()
	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatal("stop blocked")
	}
}
