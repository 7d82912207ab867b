package cache

import (
	"context"
	"testing"
	"time"

	"github.com/Taishi66/podterm/internal/config"
	"github.com/Taishi66/podterm/internal/domain"
)

func newTestCache() (*CachedGateway, *domain.MockGateway) {
	mock := &domain.MockGateway{
		ContextVal:   "test",
		ServerURLVal: "https://test:6443",
		NamespaceVal: "default",
		Pods:         []domain.PodInfo{{Name: "web-1"}},
		Namespaces:   []domain.NamespaceInfo{{Name: "default"}},
	}
	cfg := config.CacheConfig{
		PodsTTL:       100 * time.Millisecond,
		NamespacesTTL: 100 * time.Millisecond,
	}
	return NewCachedGateway(mock, cfg), mock
}

func TestCachedGateway_CachesListPods(t *testing.T) {
	c, mock := newTestCache()
	ctx := context.Background()

	_, _ = c.ListPods(ctx)
	_, _ = c.ListPods(ctx)

	if mock.ListPodsCalls != 1 {
		t.Errorf("ListPodsCalls = %d, want 1 (should cache)", mock.ListPodsCalls)
	}
}

func TestCachedGateway_ExpiresAfterTTL(t *testing.T) {
	c, mock := newTestCache()
	ctx := context.Background()

	_, _ = c.ListPods(ctx)
	time.Sleep(150 * time.Millisecond)
	_, _ = c.ListPods(ctx)

	if mock.ListPodsCalls != 2 {
		t.Errorf("ListPodsCalls = %d, want 2 (TTL expired)", mock.ListPodsCalls)
	}
}

func TestCachedGateway_ErrorNotCached(t *testing.T) {
	c, mock := newTestCache()
	ctx := context.Background()
	mock.ListPodsErr = &domain.APIError{Type: domain.ErrUnreachable, Message: "down"}

	if _, err := c.ListPods(ctx); err == nil {
		t.Fatal("expected error")
	}
	mock.ListPodsErr = nil
	pods, err := c.ListPods(ctx)
	if err != nil || len(pods) != 1 {
		t.Fatalf("ListPods() = %v, %v", pods, err)
	}
	if mock.ListPodsCalls != 2 {
		t.Errorf("ListPodsCalls = %d, want 2", mock.ListPodsCalls)
	}
}

func TestCachedGateway_InvalidatePods(t *testing.T) {
	c, mock := newTestCache()
	ctx := context.Background()

	_, _ = c.ListPods(ctx)
	c.InvalidatePods()
	_, _ = c.ListPods(ctx)

	if mock.ListPodsCalls != 2 {
		t.Errorf("ListPodsCalls = %d, want 2 (cache invalidated)", mock.ListPodsCalls)
	}
}

func TestCachedGateway_SetNamespace_InvalidatesAll(t *testing.T) {
	c, mock := newTestCache()
	ctx := context.Background()

	_, _ = c.ListPods(ctx)
	_, _ = c.ListNamespaces(ctx)
	c.SetNamespace("other")
	_, _ = c.ListPods(ctx)
	_, _ = c.ListNamespaces(ctx)

	if mock.ListPodsCalls != 2 {
		t.Errorf("ListPodsCalls = %d, want 2", mock.ListPodsCalls)
	}
	if mock.ListNamespacesCalls != 2 {
		t.Errorf("ListNamespacesCalls = %d, want 2", mock.ListNamespacesCalls)
	}
	if mock.NamespaceVal != "other" {
		t.Errorf("NamespaceVal = %q, want other", mock.NamespaceVal)
	}
}

func TestCachedGateway_WatchPassesThrough(t *testing.T) {
	c, mock := newTestCache()
	ch := make(chan domain.WatchEvent)
	mock.WatchPodsCh = ch

	got, err := c.WatchPods(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if got != (<-chan domain.WatchEvent)(ch) {
		t.Error("WatchPods should pass through to delegate")
	}
}

func TestCachedGateway_LogsAndExecPassThrough(t *testing.T) {
	c, mock := newTestCache()
	mock.LogContent = "line"

	out, err := c.GetPodLogs(context.Background(), "web-1", "app", 10, false)
	if err != nil || out != "line" {
		t.Fatalf("GetPodLogs() = %q, %v", out, err)
	}
	_, _ = c.BuildExecCmd("default", "web-1", "app", "/bin/sh")
	if mock.ExecPod != "web-1" || mock.ExecContainer != "app" {
		t.Errorf("exec target = %s/%s", mock.ExecPod, mock.ExecContainer)
	}
}

func TestCachedGateway_Reconnect_InvalidatesAll(t *testing.T) {
	c, mock := newTestCache()
	ctx := context.Background()

	_, _ = c.ListPods(ctx)
	_ = c.Reconnect()
	_, _ = c.ListPods(ctx)

	if mock.ListPodsCalls != 2 {
		t.Errorf("ListPodsCalls = %d, want 2", mock.ListPodsCalls)
	}
	if mock.ReconnectCalls != 1 {
		t.Errorf("ReconnectCalls = %d, want 1", mock.ReconnectCalls)
	}
}

func TestCachedGateway_CachesNamespaces(t *testing.T) {
	c, mock := newTestCache()
	ctx := context.Background()

	_, _ = c.ListNamespaces(ctx)
	_, _ = c.ListNamespaces(ctx)

	if mock.ListNamespacesCalls != 1 {
		t.Errorf("ListNamespacesCalls = %d, want 1", mock.ListNamespacesCalls)
	}
}
