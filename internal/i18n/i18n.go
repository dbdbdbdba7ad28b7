package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/text/language"
)

const (
	LangEN   = "en"
	LangZhTW = "zh-TW"
)

// BaseLang is the canonical source locale; missing keys in other catalogs
// fall back to it.
const BaseLang = LangEN

//go:embed locales/*.json
var localeFS embed.FS

var (
	cacheMu sync.Mutex
	cache   = map[string]map[string]string{}
)

// Translator resolves dot-addressable message keys for one language.
type Translator struct {
	lang     string
	messages map[string]string
	fallback map[string]string
	logger   *zap.Logger
}

// New loads the catalog for lang (and the English fallback catalog when lang
// is not English). Catalogs are cached process-wide for the session.
func New(lang string, logger *zap.Logger) (*Translator, error) {
	if lang != LangEN && lang != LangZhTW {
		return nil, fmt.Errorf("unsupported language %q", lang)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	messages, err := loadCatalog(lang)
	if err != nil {
		return nil, err
	}
	t := &Translator{lang: lang, messages: messages, logger: logger}
	if lang != BaseLang {
		fallback, err := loadCatalog(BaseLang)
		if err != nil {
			return nil, err
		}
		t.fallback = fallback
	}
	return t, nil
}

func (t *Translator) Lang() string {
	return t.lang
}

// T resolves key to its localized message, formatting with args when given.
// Missing keys fall back to English; a key missing in both catalogs resolves
// to the key string itself.
func (t *Translator) T(key string, args ...any) string {
	msg, ok := t.messages[key]
	if !ok && t.fallback != nil {
		t.logger.Warn("missing translation key", zap.String("lang", t.lang), zap.String("key", key))
		msg, ok = t.fallback[key]
	}
	if !ok {
		t.logger.Warn("translation key not found in any catalog", zap.String("key", key))
		msg = key
	}
	if len(args) == 0 {
		return msg
	}
	return fmt.Sprintf(msg, args...)
}

func loadCatalog(lang string) (map[string]string, error) {
	cacheMu.Lock()
	defer cacheMu.Unlock()
	if messages, ok := cache[lang]; ok {
		return messages, nil
	}
	raw, err := localeFS.ReadFile("locales/" + lang + ".json")
	if err != nil {
		return nil, fmt.Errorf("read locale catalog %s: %w", lang, err)
	}
	var tree map[string]any
	if err := json.Unmarshal(raw, &tree); err != nil {
		return nil, fmt.Errorf("parse locale catalog %s: %w", lang, err)
	}
	messages := map[string]string{}
	flattenTree("", tree, messages)
	cache[lang] = messages
	return messages, nil
}

// flattenTree collapses a nested catalog object into dot-addressable keys.
func flattenTree(prefix string, tree map[string]any, out map[string]string) {
	for key, value := range tree {
		full := key
		if prefix != "" {
			full = prefix + "." + key
		}
		switch v := value.(type) {
		case map[string]any:
			flattenTree(full, v, out)
		case string:
			out[full] = v
		default:
			out[full] = fmt.Sprintf("%v", v)
		}
	}
}

// Keys returns the sorted key set of the catalog for lang.
func Keys(lang string) ([]string, error) {
	messages, err := loadCatalog(lang)
	if err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(messages))
	for key := range messages {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys, nil
}

// DetectLanguage applies the device-locale heuristic: Traditional-Chinese
// locales (Taiwan, Hong Kong, or explicit Hant script) select zh-TW,
// everything else selects English.
func DetectLanguage() string {
	for _, name := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		raw := strings.TrimSpace(os.Getenv(name))
		if raw == "" || raw == "C" || raw == "POSIX" {
			continue
		}
		if isTraditionalChinese(raw) {
			return LangZhTW
		}
		return LangEN
	}
	return LangEN
}

func isTraditionalChinese(locale string) bool {
	// "zh_TW.UTF-8" -> "zh-TW"
	if i := strings.IndexAny(locale, ".@"); i >= 0 {
		locale = locale[:i]
	}
	locale = strings.ReplaceAll(locale, "_", "-")
	tag, err := language.Parse(locale)
	if err != nil {
		return false
	}
	base, _ := tag.Base()
	if base.String() != "zh" {
		return false
	}
	if script, conf := tag.Script(); conf >= language.High && script.String() == "Hant" {
		return true
	}
	region, _ := tag.Region()
	return region.String() == "TW" || region.String() == "HK"
}
