package store_test

import (
	"testing"

	"go.uber.org/zap"

	"github.com/Alex2003763/caltrack/internal/store"
)

func TestDefaultLanguageFollowsDeviceLocale(t *testing.T) {
	t.Setenv("LC_ALL", "")
	t.Setenv("LC_MESSAGES", "")

	t.Setenv("LANG", "zh_TW.UTF-8")
	s := store.Open(newTestDB(t), zap.NewNop())
	if s.State().Language != "zh-TW" {
		t.Fatalf("expected zh-TW for Taiwanese locale, got %q", s.State().Language)
	}

	t.Setenv("LANG", "en_US.UTF-8")
	s = store.Open(newTestDB(t), zap.NewNop())
	if s.State().Language != "en" {
		t.Fatalf("expected en for US locale, got %q", s.State().Language)
	}
}

func TestStoredLanguageBeatsLocale(t *testing.T) {
	t.Setenv("LANG", "zh_TW.UTF-8")

	sqldb := newTestDB(t)
	seedState(t, sqldb, `{"language": "en"}`)
	s := store.Open(sqldb, zap.NewNop())
	if s.State().Language != "en" {
		t.Fatalf("expected stored language to win, got %q", s.State().Language)
	}
}

func TestInvalidStoredLanguageFallsBackToLocale(t *testing.T) {
	t.Setenv("LC_ALL", "")
	t.Setenv("LC_MESSAGES", "")
	t.Setenv("LANG", "zh_HK.UTF-8")

	sqldb := newTestDB(t)
	seedState(t, sqldb, `{"language": "fr"}`)
	s := store.Open(sqldb, zap.NewNop())
	if s.State().Language != "zh-TW" {
		t.Fatalf("expected locale heuristic for invalid stored language, got %q", s.State().Language)
	}
}
