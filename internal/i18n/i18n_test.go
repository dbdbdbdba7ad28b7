package i18n

import (
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestNewRejectsUnsupportedLanguage(t *testing.T) {
	t.Parallel()
	if _, err := New("fr", zap.NewNop()); err == nil {
		t.Fatalf("expected error for unsupported language")
	}
}

func TestTranslateEnglish(t *testing.T) {
	t.Parallel()
	tr, err := New(LangEN, zap.NewNop())
	if err != nil {
		t.Fatalf("new translator: %v", err)
	}
	got := tr.T("food.added", "Apple", 95, "lunch", "2024-05-01")
	if got != "Added Apple (95 kcal) to lunch on 2024-05-01" {
		t.Fatalf("unexpected message %q", got)
	}
}

func TestTranslateChineseIndexedArgs(t *testing.T) {
	t.Parallel()
	tr, err := New(LangZhTW, zap.NewNop())
	if err != nil {
		t.Fatalf("new translator: %v", err)
	}
	// zh-TW reorders the date before the name with indexed verbs.
	got := tr.T("food.removed", "abc123", "2024-05-01")
	if got == "food.removed" {
		t.Fatalf("key did not resolve")
	}
	if !strings.Contains(got, "2024-05-01") || !strings.Contains(got, "abc123") {
		t.Fatalf("expected both args in message, got %q", got)
	}
}

func TestTranslateFallsBackToKey(t *testing.T) {
	t.Parallel()
	tr, err := New(LangEN, zap.NewNop())
	if err != nil {
		t.Fatalf("new translator: %v", err)
	}
	if got := tr.T("no.such.key"); got != "no.such.key" {
		t.Fatalf("expected key echo, got %q", got)
	}
}

func TestTranslateMissingKeyFallsBackToEnglish(t *testing.T) {
	t.Parallel()
	tr := &Translator{
		lang:     LangZhTW,
		messages: map[string]string{},
		fallback: map[string]string{"only.english": "hello"},
		logger:   zap.NewNop(),
	}
	if got := tr.T("only.english"); got != "hello" {
		t.Fatalf("expected English fallback, got %q", got)
	}
}

func TestFlattenTree(t *testing.T) {
	t.Parallel()
	tree := map[string]any{
		"app": map[string]any{
			"title": "CalTrack",
			"nested": map[string]any{
				"deep": "value",
			},
		},
		"top": "level",
	}
	out := map[string]string{}
	flattenTree("", tree, out)

	want := map[string]string{
		"app.title":       "CalTrack",
		"app.nested.deep": "value",
		"top":             "level",
	}
	for key, val := range want {
		if out[key] != val {
			t.Fatalf("key %s: got %q, want %q", key, out[key], val)
		}
	}
	if len(out) != len(want) {
		t.Fatalf("expected %d keys, got %d", len(want), len(out))
	}
}

func TestCatalogsInSync(t *testing.T) {
	t.Parallel()
	report, err := Validate()
	if err != nil {
		t.Fatalf("validate catalogs: %v", err)
	}
	if !report.InSync() {
		t.Fatalf("catalogs out of sync: missing=%v extra=%v empty=%v",
			report.MissingKeys, report.ExtraKeys, report.EmptyKeys)
	}
}

func TestDetectLanguage(t *testing.T) {
	cases := []struct {
		name string
		env  map[string]string
		want string
	}{
		{"taiwan", map[string]string{"LANG": "zh_TW.UTF-8"}, LangZhTW},
		{"hong kong", map[string]string{"LANG": "zh_HK"}, LangZhTW},
		{"hant script", map[string]string{"LANG": "zh-Hant"}, LangZhTW},
		{"simplified", map[string]string{"LANG": "zh_CN.UTF-8"}, LangEN},
		{"english", map[string]string{"LANG": "en_US.UTF-8"}, LangEN},
		{"lc all wins", map[string]string{"LC_ALL": "zh_TW.UTF-8", "LANG": "en_US.UTF-8"}, LangZhTW},
		{"posix skipped", map[string]string{"LC_ALL": "C", "LANG": "zh_TW.UTF-8"}, LangZhTW},
		{"unset", map[string]string{}, LangEN},
		{"garbage", map[string]string{"LANG": "not a locale"}, LangEN},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for _, name := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
				t.Setenv(name, "")
				if v, ok := tc.env[name]; ok {
					t.Setenv(name, v)
				}
			}
			if got := DetectLanguage(); got != tc.want {
				t.Fatalf("got %s, want %s", got, tc.want)
			}
		})
	}
}
