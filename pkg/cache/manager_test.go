package cache

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	patternerrors "github.com/patternworks/patterns/pkg/errors"
)

func TestGetInstance_ReturnsSameInstance(t *testing.T) {
	a := GetInstance()
	b := GetInstance()

	if a != b {
		t.Fatalf("expected GetInstance to return the same instance, got %p and %p", a, b)
	}

	// A value set through one handle is visible through the other.
	a.Set("shared", "value")
	if v, ok := b.Get("shared"); !ok || v != "value" {
		t.Errorf("expected shared value through second handle, got %q (present=%v)", v, ok)
	}
}

func TestGetInstance_ConcurrentFirstAccess(t *testing.T) {
	const goroutines = 50

	instances := make([]*Manager, goroutines)
	var wg sync.WaitGroup
	wg.Add(goroutines)

	for i := 0; i < goroutines; i++ {
		go func(i int) {
			defer wg.Done()
			instances[i] = GetInstance()
		}(i)
	}
	wg.Wait()

	for i := 1; i < goroutines; i++ {
		if instances[i] != instances[0] {
			t.Fatalf("goroutine %d observed a different instance", i)
		}
	}
}

func TestManager_SetGet(t *testing.T) {
	tests := []struct {
		name   string
		ops    func(m *Manager)
		key    string
		want   string
		wantOK bool
	}{
		{
			name:   "set then get",
			ops:    func(m *Manager) { m.Set("k", "v") },
			key:    "k",
			want:   "v",
			wantOK: true,
		},
		{
			name:   "overwrite returns latest value",
			ops:    func(m *Manager) { m.Set("k", "v1"); m.Set("k", "v2") },
			key:    "k",
			want:   "v2",
			wantOK: true,
		},
		{
			name:   "missing key",
			ops:    func(m *Manager) {},
			key:    "never-set",
			want:   "",
			wantOK: false,
		},
		{
			name:   "deleted key",
			ops:    func(m *Manager) { m.Set("k", "v"); m.Delete("k") },
			key:    "k",
			want:   "",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New()
			tt.ops(m)

			got, ok := m.Get(tt.key)
			if ok != tt.wantOK {
				t.Errorf("expected present=%v, got %v", tt.wantOK, ok)
			}
			if got != tt.want {
				t.Errorf("expected value %q, got %q", tt.want, got)
			}
		})
	}
}

func TestManager_GetValue(t *testing.T) {
	m := New()
	m.Set("k", "v")

	if v, err := m.GetValue("k"); err != nil || v != "v" {
		t.Errorf("expected (v, nil), got (%q, %v)", v, err)
	}

	_, err := m.GetValue("missing")
	if err == nil {
		t.Fatal("expected error for missing key")
	}
	if !errors.Is(err, patternerrors.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestManager_ConcurrentMutation(t *testing.T) {
	m := New()
	var wg sync.WaitGroup

	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := fmt.Sprintf("key-%d", i)
			m.Set(key, "v")
			m.Get(key)
			m.Len()
		}(i)
	}
	wg.Wait()

	if m.Len() != 20 {
		t.Errorf("expected 20 entries, got %d", m.Len())
	}
}

func TestManager_DeleteAbsentIsNoop(t *testing.T) {
	m := New()
	m.Set("k", "v")
	m.Delete("never-set")

	if m.Len() != 1 {
		t.Errorf("expected 1 entry after deleting absent key, got %d", m.Len())
	}
}
