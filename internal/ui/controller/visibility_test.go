package controller_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/bnema/edgedock/internal/application/port"
	"github.com/bnema/edgedock/internal/application/port/mocks"
	"github.com/bnema/edgedock/internal/domain/entity"
	"github.com/bnema/edgedock/internal/infrastructure/scheduler"
	"github.com/bnema/edgedock/internal/logging"
	"github.com/bnema/edgedock/internal/ui/controller"
	"github.com/bnema/edgedock/internal/ui/mainloop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func testCtx() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

// recorder is a VisibilityObserver that keeps every notification.
type recorder struct {
	mu           sync.Mutex
	visibility   []bool
	geometries   []entity.PanelGeometry
	availability []bool
}

func (r *recorder) OnVisibilityChanged(visible bool, _ entity.PanelGeometry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.visibility = append(r.visibility, visible)
}

func (r *recorder) OnGeometryChanged(g entity.PanelGeometry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.geometries = append(r.geometries, g)
}

func (r *recorder) OnAvailabilityChanged(available bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.availability = append(r.availability, available)
}

type harness struct {
	store *controller.SettingsStore
	clock *scheduler.Virtual
	ctrl  *controller.VisibilityController
	rec   *recorder
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	store := controller.NewSettingsStore(
		entity.DefaultDockSettings(),
		entity.SampleDockItems(),
		entity.NewScreen(1000, 800),
	)
	clock := scheduler.NewVirtual(epoch)
	ctrl := controller.NewVisibilityController(testCtx(), store, clock, &mainloop.Inline{})
	rec := &recorder{}
	ctrl.Subscribe(rec)
	t.Cleanup(ctrl.Close)

	return &harness{store: store, clock: clock, ctrl: ctrl, rec: rec}
}

func (h *harness) move(x, y float64) {
	h.ctrl.OnPointerSample(port.PointerSample{
		Position: entity.Point{X: x, Y: y},
		Time:     h.clock.Now(),
	})
}

func (h *harness) state() entity.VisibilityState {
	return h.ctrl.Status().State
}

func TestVisibility_StartsHidden(t *testing.T) {
	h := newHarness(t)

	status := h.ctrl.Status()
	assert.Equal(t, entity.VisibilityHidden, status.State)
	assert.False(t, status.PendingHide)
	assert.False(t, status.Suspended)
}

func TestVisibility_ScenarioA_TriggerZoneShows(t *testing.T) {
	h := newHarness(t)

	h.move(998, 400)

	assert.Equal(t, entity.VisibilityVisible, h.state())
	assert.Equal(t, []bool{true}, h.rec.visibility)
}

func TestVisibility_ScenarioB_HidesAfterDebounce(t *testing.T) {
	h := newHarness(t)
	h.move(998, 400)

	h.move(500, 400)
	assert.True(t, h.ctrl.Status().PendingHide)

	h.clock.Advance(499 * time.Millisecond)
	assert.Equal(t, entity.VisibilityVisible, h.state())

	h.clock.Advance(time.Millisecond)
	assert.Equal(t, entity.VisibilityHidden, h.state())
	assert.False(t, h.ctrl.Status().PendingHide)
	assert.Equal(t, []bool{true, false}, h.rec.visibility)
}

func TestVisibility_ScenarioC_OutsideSampleRestartsDebounce(t *testing.T) {
	h := newHarness(t)
	h.move(998, 400)
	h.move(500, 400)

	h.clock.Advance(300 * time.Millisecond)
	h.move(520, 400)

	// The first timer would have fired at 0.5.
	h.clock.Advance(499 * time.Millisecond)
	assert.Equal(t, entity.VisibilityVisible, h.state())

	h.clock.Advance(time.Millisecond)
	assert.Equal(t, entity.VisibilityHidden, h.state())
	assert.Equal(t, epoch.Add(800*time.Millisecond), h.clock.Now())
}

func TestVisibility_ScenarioD_OffsetChangeRepositionsWithoutHiding(t *testing.T) {
	h := newHarness(t)
	h.move(998, 400)
	before := h.ctrl.CurrentGeometry()

	h.store.SetEdgeOffset(20)

	after := h.ctrl.CurrentGeometry()
	assert.InDelta(t, -20, after.Anchor.X-before.Anchor.X, 1e-9)
	assert.Equal(t, before.Anchor.Y, after.Anchor.Y)
	assert.Equal(t, entity.VisibilityVisible, h.state())
	assert.Equal(t, []bool{true}, h.rec.visibility)
	require.Len(t, h.rec.geometries, 1)
	assert.Equal(t, after, h.rec.geometries[0])
}

func TestVisibility_ShowIsIdempotent(t *testing.T) {
	h := newHarness(t)
	h.move(998, 400)
	h.move(500, 400)
	require.True(t, h.ctrl.Status().PendingHide)

	h.ctrl.Show()
	h.ctrl.Show()

	status := h.ctrl.Status()
	assert.Equal(t, entity.VisibilityVisible, status.State)
	assert.False(t, status.PendingHide)
	assert.Zero(t, h.clock.Pending())
	assert.Equal(t, []bool{true}, h.rec.visibility)
}

func TestVisibility_HideCancelsPendingHide(t *testing.T) {
	h := newHarness(t)
	h.move(998, 400)
	h.move(500, 400)

	h.ctrl.Hide()

	assert.Equal(t, entity.VisibilityHidden, h.state())
	assert.False(t, h.ctrl.Status().PendingHide)
	assert.Zero(t, h.clock.Pending())

	h.clock.Advance(time.Second)
	assert.Equal(t, []bool{true, false}, h.rec.visibility)
}

func TestVisibility_DebounceCancelledByPanelOrZone(t *testing.T) {
	tests := []struct {
		name string
		x, y float64
	}{
		{name: "inside panel rect", x: 950, y: 400},
		{name: "back in trigger zone", x: 999, y: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			h.move(998, 400)
			h.move(500, 400)

			h.clock.Advance(200 * time.Millisecond)
			h.move(tt.x, tt.y)
			assert.False(t, h.ctrl.Status().PendingHide)

			h.clock.Advance(time.Second)
			assert.Equal(t, entity.VisibilityVisible, h.state())
			assert.Equal(t, []bool{true}, h.rec.visibility)
		})
	}
}

func TestVisibility_HiddenIgnoresPanelRectAndFarSamples(t *testing.T) {
	h := newHarness(t)

	h.move(950, 400)
	h.move(500, 400)
	h.move(1200, 400)

	assert.Equal(t, entity.VisibilityHidden, h.state())
	assert.False(t, h.ctrl.Status().PendingHide)
	assert.Empty(t, h.rec.visibility)
}

func TestVisibility_GenerationAdvancesOnArmAndCancel(t *testing.T) {
	h := newHarness(t)
	h.move(998, 400)
	start := h.ctrl.Status().Generation

	h.move(500, 400)
	armed := h.ctrl.Status().Generation
	assert.Greater(t, armed, start)

	h.move(950, 400)
	assert.Greater(t, h.ctrl.Status().Generation, armed)
}

// leakyScheduler never cancels anything, so every armed callback can still
// fire after the controller stopped it.
type leakyScheduler struct {
	fns []func()
}

type leakyTimer struct{}

func (leakyTimer) Stop() bool { return false }

func (s *leakyScheduler) AfterFunc(_ time.Duration, fn func()) port.Timer {
	s.fns = append(s.fns, fn)
	return leakyTimer{}
}

func TestVisibility_StaleTimerIsNoop(t *testing.T) {
	store := controller.NewSettingsStore(entity.DefaultDockSettings(), entity.SampleDockItems(), entity.NewScreen(1000, 800))
	sched := &leakyScheduler{}
	ctrl := controller.NewVisibilityController(testCtx(), store, sched, &mainloop.Inline{})
	defer ctrl.Close()

	sample := func(x, y float64) {
		ctrl.OnPointerSample(port.PointerSample{Position: entity.Point{X: x, Y: y}})
	}

	sample(998, 400)
	sample(500, 400)
	sample(999, 400)
	require.Len(t, sched.fns, 1)

	// The first timer fires after the zone re-entry cancelled it.
	sched.fns[0]()
	assert.Equal(t, entity.VisibilityVisible, ctrl.Status().State)

	// A second arm supersedes the first; only the newest timer hides.
	sample(500, 400)
	sample(510, 400)
	require.Len(t, sched.fns, 3)
	sched.fns[1]()
	assert.Equal(t, entity.VisibilityVisible, ctrl.Status().State)
	sched.fns[2]()
	assert.Equal(t, entity.VisibilityHidden, ctrl.Status().State)
}

func TestVisibility_SuspendedWhileUnavailable(t *testing.T) {
	h := newHarness(t)
	h.move(998, 400)
	h.move(500, 400)

	h.ctrl.SetAvailability(false)

	status := h.ctrl.Status()
	assert.True(t, status.Suspended)
	assert.Equal(t, entity.VisibilityHidden, status.State)
	assert.False(t, status.PendingHide)
	assert.Zero(t, h.clock.Pending())

	h.move(998, 400)
	h.ctrl.Show()
	assert.Equal(t, entity.VisibilityHidden, h.state())

	h.ctrl.SetAvailability(true)
	status = h.ctrl.Status()
	assert.False(t, status.Suspended)
	assert.Equal(t, entity.VisibilityHidden, status.State)

	h.move(998, 400)
	assert.Equal(t, entity.VisibilityVisible, h.state())

	assert.Equal(t, []bool{false, true}, h.rec.availability)
	assert.Equal(t, []bool{true, false, true}, h.rec.visibility)
}

func TestVisibility_RepeatedAvailabilityIsDeduplicated(t *testing.T) {
	h := newHarness(t)

	h.ctrl.SetAvailability(true)
	h.ctrl.SetAvailability(false)
	h.ctrl.SetAvailability(false)

	assert.Equal(t, []bool{false}, h.rec.availability)
}

func TestVisibility_SuspendResume(t *testing.T) {
	h := newHarness(t)
	h.move(998, 400)

	h.ctrl.Suspend()
	assert.True(t, h.ctrl.Status().Suspended)
	assert.Equal(t, entity.VisibilityHidden, h.state())

	h.ctrl.Resume()
	assert.False(t, h.ctrl.Status().Suspended)
	assert.Equal(t, entity.VisibilityHidden, h.state())
	assert.Empty(t, h.rec.availability)
}

func TestVisibility_SettingsChangeWhileHiddenDoesNotNotify(t *testing.T) {
	h := newHarness(t)

	h.store.SetEdgeOffset(10)
	h.store.SetItems(entity.SampleDockItems()[:2])

	assert.Empty(t, h.rec.geometries)
	assert.Equal(t, entity.VisibilityHidden, h.state())
}

func TestVisibility_NonGeometryChangeDoesNotReposition(t *testing.T) {
	h := newHarness(t)
	h.move(998, 400)

	h.store.SetHideDelay(time.Second)
	h.store.SetTriggerDistance(8)

	assert.Empty(t, h.rec.geometries)
}

func TestVisibility_EdgeChangeUsesFreshGeometry(t *testing.T) {
	h := newHarness(t)
	h.move(998, 400)

	require.NoError(t, h.store.SetEdge(entity.EdgeLeft))
	require.Len(t, h.rec.geometries, 1)
	assert.Equal(t, entity.EdgeLeft, h.rec.geometries[0].Edge)

	// The old right-edge strip no longer counts; the panel is now on the left.
	h.move(998, 400)
	assert.True(t, h.ctrl.Status().PendingHide)

	h.move(2, 400)
	assert.False(t, h.ctrl.Status().PendingHide)
	assert.Equal(t, entity.VisibilityVisible, h.state())
}

func TestVisibility_ItemCountChangeResizesPanelRect(t *testing.T) {
	h := newHarness(t)
	h.move(998, 400)

	// Six items span y in [175, 625); y=200 is inside.
	h.move(950, 200)
	assert.False(t, h.ctrl.Status().PendingHide)

	// Two items span y in [315, 485); y=200 is now outside.
	h.store.SetItems(entity.SampleDockItems()[:2])
	h.move(950, 200)
	assert.True(t, h.ctrl.Status().PendingHide)
}

func TestVisibility_UnsubscribeStopsNotifications(t *testing.T) {
	h := newHarness(t)
	extra := &recorder{}
	unsubscribe := h.ctrl.Subscribe(extra)

	h.move(998, 400)
	unsubscribe()
	h.ctrl.Hide()

	assert.Equal(t, []bool{true}, extra.visibility)
	assert.Equal(t, []bool{true, false}, h.rec.visibility)
}

func TestVisibility_CloseDropsFurtherWork(t *testing.T) {
	h := newHarness(t)
	h.move(998, 400)
	h.move(500, 400)

	h.ctrl.Close()
	assert.False(t, h.ctrl.Status().PendingHide)

	h.clock.Advance(time.Second)
	h.ctrl.Hide()
	h.store.SetEdgeOffset(30)

	assert.Equal(t, entity.VisibilityVisible, h.state())
	assert.Empty(t, h.rec.geometries)
}

func TestVisibility_NotifiesObserverMock(t *testing.T) {
	store := controller.NewSettingsStore(entity.DefaultDockSettings(), entity.SampleDockItems(), entity.NewScreen(1000, 800))
	ctrl := controller.NewVisibilityController(testCtx(), store, scheduler.NewVirtual(epoch), &mainloop.Inline{})
	defer ctrl.Close()

	obs := mocks.NewMockVisibilityObserver(t)
	obs.EXPECT().
		OnVisibilityChanged(true, mock.MatchedBy(func(g entity.PanelGeometry) bool {
			return g.Anchor == entity.Point{X: 960, Y: 400}
		})).
		Once()
	ctrl.Subscribe(obs)

	ctrl.OnPointerSample(port.PointerSample{Position: entity.Point{X: 998, Y: 400}})
	ctrl.OnPointerSample(port.PointerSample{Position: entity.Point{X: 999, Y: 400}})
}

func TestVisibility_SerializesOnLoop(t *testing.T) {
	store := controller.NewSettingsStore(entity.DefaultDockSettings(), entity.SampleDockItems(), entity.NewScreen(1000, 800))
	loop := mainloop.NewLoop()
	ctrl := controller.NewVisibilityController(testCtx(), store, scheduler.NewClock(), loop)
	defer ctrl.Close()

	rec := &recorder{}
	ctrl.Subscribe(rec)

	ctx, cancel := context.WithCancel(testCtx())
	done := make(chan error, 1)
	go func() { done <- ctrl.Run(ctx) }()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				ctrl.OnPointerSample(port.PointerSample{Position: entity.Point{X: 997, Y: float64(100 + i*j%500)}})
				_ = ctrl.Status()
			}
		}(i)
	}
	wg.Wait()

	require.Eventually(t, func() bool {
		return ctrl.Status().State == entity.VisibilityVisible && loop.Len() == 0
	}, time.Second, 5*time.Millisecond)

	cancel()
	require.ErrorIs(t, <-done, context.Canceled)

	rec.mu.Lock()
	defer rec.mu.Unlock()
	assert.Equal(t, []bool{true}, rec.visibility)
}

// placementRecorder keeps the geometry delivered with each show.
type placementRecorder struct {
	mu    sync.Mutex
	shown []entity.PanelGeometry
}

func (r *placementRecorder) OnVisibilityChanged(visible bool, g entity.PanelGeometry) {
	if !visible {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.shown = append(r.shown, g)
}

func (r *placementRecorder) OnGeometryChanged(entity.PanelGeometry) {}
func (r *placementRecorder) OnAvailabilityChanged(bool)             {}

func TestVisibilityController_ShowReportsGeometryItWasDecidedOn(t *testing.T) {
	store := controller.NewSettingsStore(
		entity.DefaultDockSettings(),
		entity.SampleDockItems(),
		entity.NewScreen(1000, 800),
	)
	require.NoError(t, store.SetEdge(entity.EdgeRight))

	loop := mainloop.NewLoop()
	ctrl := controller.NewVisibilityController(testCtx(), store, scheduler.NewVirtual(epoch), loop)
	t.Cleanup(ctrl.Close)
	rec := &placementRecorder{}
	ctrl.Subscribe(rec)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = loop.Run(ctx) }()

	// (999,400) is inside the right trigger strip only, so every show is a
	// right-edge decision even while another goroutine flips the edge.
	stop := make(chan struct{})
	flipped := make(chan struct{})
	go func() {
		defer close(flipped)
		edges := []entity.Edge{entity.EdgeLeft, entity.EdgeRight}
		for i := 0; ; i++ {
			select {
			case <-stop:
				return
			default:
				_ = store.SetEdge(edges[i%2])
			}
		}
	}()

	for range 300 {
		ctrl.OnPointerSample(port.PointerSample{Position: entity.Point{X: 999, Y: 400}, Time: epoch})
		ctrl.Hide()
	}
	close(stop)
	<-flipped

	drained := make(chan struct{})
	require.True(t, loop.Post(func() { close(drained) }))
	select {
	case <-drained:
	case <-time.After(5 * time.Second):
		t.Fatal("loop did not drain")
	}

	rec.mu.Lock()
	defer rec.mu.Unlock()
	for _, g := range rec.shown {
		assert.Equal(t, entity.EdgeRight, g.Edge)
	}
}
