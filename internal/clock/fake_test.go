package clock

import (
	"testing"
	"time"
)

var epoch = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

func TestFakeAfter(t *testing.T) {
	c := Fake(epoch)
	ch := c.After(10 * time.Millisecond)

	c.Advance(5 * time.Millisecond)
	select {
	case <-ch:
		t.Fatal("fired before deadline")
	default:
	}

	c.Advance(5 * time.Millisecond)
	select {
	case got := <-ch:
		if !got.Equal(epoch.Add(10 * time.Millisecond)) {
			t.Errorf("expected %v, got %v", epoch.Add(10*time.Millisecond), got)
		}
	default:
		t.Fatal("expected After to fire at deadline")
	}
}

func TestFakeAfterNonPositive(t *testing.T) {
	c := Fake(epoch)
	select {
	case <-c.After(0):
	default:
		t.Fatal("expected immediate receive for zero duration")
	}
	if c.PendingCount() != 0 {
		t.Errorf("expected no pending waiters, got %d", c.PendingCount())
	}
}

func TestFakeTicker(t *testing.T) {
	t.Run("fires once per interval", func(t *testing.T) {
		c := Fake(epoch)
		tk := c.NewTicker(5 * time.Millisecond)
		defer tk.Stop()

		for i := 0; i < 3; i++ {
			c.Advance(5 * time.Millisecond)
			select {
			case <-tk.C:
			default:
				t.Fatalf("expected tick %d", i)
			}
		}
	})

	t.Run("stop removes waiter", func(t *testing.T) {
		c := Fake(epoch)
		tk := c.NewTicker(time.Millisecond)
		tk.Stop()
		if c.PendingCount() != 0 {
			t.Errorf("expected 0 pending, got %d", c.PendingCount())
		}
		c.Advance(time.Second)
		select {
		case <-tk.C:
			t.Error("stopped ticker fired")
		default:
		}
	})

	t.Run("panics on zero interval", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("expected panic")
			}
		}()
		Fake(epoch).NewTicker(0)
	})
}

func TestWaitForTimers(t *testing.T) {
	c := Fake(epoch)
	done := make(chan struct{})
	go func() {
		<-c.After(time.Second)
		close(done)
	}()

	c.WaitForTimers(1)
	c.Advance(time.Second)
	<-done
}
