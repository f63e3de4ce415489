package apperr

import (
	"errors"
	"fmt"
	"testing"
)

func TestStorage_KeepsDomainSentinels(t *testing.T) {
	err := fmt.Errorf("repo: %w", ErrNotFound)
	if got := Storage(err); !errors.Is(got, ErrNotFound) || errors.Is(got, ErrUnavailable) {
		t.Fatalf("expected not found to pass through, got %v", got)
	}
}

func TestStorage_WrapsInfraErrors(t *testing.T) {
	got := Storage(errors.New("connection refused"))
	if !errors.Is(got, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", got)
	}
	if Storage(nil) != nil {
		t.Fatalf("expected nil for nil")
	}
}
