package emitter

import "testing"

func TestRuntimePool(t *testing.T) {
	rt := NewRuntime()

	ev, reused := rt.acquire("a", true)
	if reused {
		t.Error("expected a new event from an empty pool")
	}
	ev.PreventDefault()
	ev.target = New()
	rt.release(ev)
	if rt.PoolSize() != 1 {
		t.Fatalf("expected 1 pooled event, got %d", rt.PoolSize())
	}
	if ev.Target() != nil {
		t.Error("expected target to be cleared on release")
	}

	ev2, reused := rt.acquire("b", false)
	if !reused || ev2 != ev {
		t.Fatal("expected pooled event to be reused")
	}
	if ev2.Type() != "b" || ev2.Cancelable() || ev2.IsDefaultPrevented() {
		t.Errorf("expected re-initialised event, got %+v", ev2)
	}
	if rt.PoolSize() != 0 {
		t.Errorf("expected empty pool, got %d", rt.PoolSize())
	}
}

func TestRuntimePoolLIFO(t *testing.T) {
	rt := NewRuntime()
	a, _ := rt.acquire("a", false)
	b, _ := rt.acquire("b", false)
	rt.release(a)
	rt.release(b)

	if got, _ := rt.acquire("c", false); got != b {
		t.Error("expected last released event first")
	}
	if got, _ := rt.acquire("c", false); got != a {
		t.Error("expected first released event last")
	}
}

func TestRuntimeDrainOnce(t *testing.T) {
	rt := NewRuntime()
	em := New(WithRuntime(rt))
	var order []int
	fn := func(receiver any, _ Payload) { order = append(order, receiver.(int)) }
	for i := 0; i < 3; i++ {
		em.Once("x", fn, i)
	}
	for _, l := range em.events["x"] {
		rt.queueOnce(l)
	}
	if rt.Pending() != 3 {
		t.Fatalf("expected 3 pending, got %d", rt.Pending())
	}
	rt.drainOnce()
	if rt.Pending() != 0 {
		t.Errorf("expected empty queue, got %d", rt.Pending())
	}
	if em.HasListener("x") {
		t.Error("expected all once listeners to be removed")
	}
	if len(order) != 0 {
		t.Error("expected no listener calls while draining")
	}
}

func TestDefaultRuntime(t *testing.T) {
	var em Emitter
	if em.rt() != DefaultRuntime {
		t.Error("expected zero value emitter to use DefaultRuntime")
	}
	rt := NewRuntime()
	if New(WithRuntime(rt)).rt() != rt {
		t.Error("expected configured runtime")
	}
	if New(WithRuntime(nil)).rt() != DefaultRuntime {
		t.Error("expected nil runtime to be ignored")
	}
}
