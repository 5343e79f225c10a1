package notify_test

import (
	"strconv"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/segment/notify"
	"github.com/npillmayer/segment/split"
	"github.com/npillmayer/segment/styled"
)

func TestRegisterAndNotify(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "segment.notify")
	defer teardown()
	//
	r := notify.New()
	var gotKind split.UnitKind
	var gotCount int
	ok := r.Register("el", func(units []styled.Node, kind split.UnitKind) {
		gotKind = kind
		gotCount = len(units)
	})
	if !ok {
		t.Fatal("expected registration to succeed, didn't")
	}
	res := r.Notify("el", make([]styled.Node, 3), split.Words)
	if !res.Success || res.UnitCount != 3 {
		t.Fatalf("unexpected notification result %+v", res)
	}
	if gotKind != split.Words || gotCount != 3 {
		t.Errorf("callback saw kind %v and %d units", gotKind, gotCount)
	}
}

func TestRegisterRejectsBadCallbacks(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "segment.notify")
	defer teardown()
	//
	r := notify.New()
	if r.Register("a", nil) {
		t.Error("expected nil to be rejected, wasn't")
	}
	if r.Register("b", "not a function") {
		t.Error("expected a non-function to be rejected, wasn't")
	}
	if r.Register("c", func(units []styled.Node) {}) {
		t.Error("expected a one-parameter function to be rejected, wasn't")
	}
	if r.Register("d", func(a int, b string) {}) {
		t.Error("expected mismatched parameter types to be rejected, wasn't")
	}
	if r.Has("a") || r.Has("b") || r.Has("c") || r.Has("d") {
		t.Error("expected no registrations to survive rejection")
	}
}

func TestRegisterGenericSignature(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "segment.notify")
	defer teardown()
	//
	r := notify.New()
	called := false
	ok := r.Register("el", func(units interface{}, kind interface{}) {
		called = true
	})
	if !ok {
		t.Fatal("expected an interface{}-typed callback to be adapted, wasn't")
	}
	if res := r.Notify("el", nil, split.Characters); !res.Success {
		t.Fatalf("notification failed: %s", res.Err)
	}
	if !called {
		t.Error("expected the adapted callback to be invoked, wasn't")
	}
}

func TestNotifyWithoutRegistration(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "segment.notify")
	defer teardown()
	//
	r := notify.New()
	res := r.Notify("ghost", nil, split.Lines)
	if res.Success {
		t.Error("expected a missing registration to be reported, wasn't")
	}
	if res.Err == "" {
		t.Error("expected an error message, have none")
	}
	stats := r.Stats()
	if stats.TotalNotifications != 1 || stats.Failed != 1 {
		t.Errorf("unexpected stats %+v", stats)
	}
}

func TestNotifyIsolatesPanics(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "segment.notify")
	defer teardown()
	//
	r := notify.New()
	r.Register("el", func(units []styled.Node, kind split.UnitKind) {
		panic("consumer went rogue")
	})
	res := r.Notify("el", nil, split.Characters)
	if res.Success {
		t.Error("expected a panicking callback to be reported as failed")
	}
	if res.Err == "" {
		t.Error("expected the panic to surface in the error message")
	}
	stats := r.Stats()
	if stats.Failed != 1 || stats.Successful != 0 {
		t.Errorf("unexpected stats %+v", stats)
	}
}

func TestRegistryCapacity(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "segment.notify")
	defer teardown()
	//
	r := notify.New(notify.MaxElements(2))
	cb := func(units []styled.Node, kind split.UnitKind) {}
	for i := 0; i < 2; i++ {
		if !r.Register("el-"+strconv.Itoa(i), cb) {
			t.Fatalf("expected registration %d to succeed, didn't", i)
		}
	}
	if r.Register("el-2", cb) {
		t.Error("expected the full registry to reject a new id, didn't")
	}
	if !r.Register("el-0", cb) {
		t.Error("expected re-registration of an existing id to succeed, didn't")
	}
	if !r.Unregister("el-1") || r.Unregister("el-1") {
		t.Error("expected unregister to report presence exactly once")
	}
	r.ClearAll()
	if r.Has("el-0") {
		t.Error("expected clear-all to drop all registrations, didn't")
	}
}
