package i18n

import "sort"

// Report lists the differences between the English catalog and a translated
// catalog. Nothing in the application depends on it; it backs the dev-time
// catalog check only.
type Report struct {
	MissingKeys []string // present in en, absent in the translation
	ExtraKeys   []string // present in the translation, absent in en
	EmptyKeys   []string // present but empty in either catalog
}

func (r Report) InSync() bool {
	return len(r.MissingKeys) == 0 && len(r.ExtraKeys) == 0 && len(r.EmptyKeys) == 0
}

// Validate diffs the key trees of the English and zh-TW catalogs.
func Validate() (Report, error) {
	var report Report
	base, err := loadCatalog(BaseLang)
	if err != nil {
		return report, err
	}
	translated, err := loadCatalog(LangZhTW)
	if err != nil {
		return report, err
	}

	for key, value := range base {
		if _, ok := translated[key]; !ok {
			report.MissingKeys = append(report.MissingKeys, key)
		}
		if value == "" {
			report.EmptyKeys = append(report.EmptyKeys, key)
		}
	}
	for key, value := range translated {
		if _, ok := base[key]; !ok {
			report.ExtraKeys = append(report.ExtraKeys, key)
		}
		if value == "" {
			report.EmptyKeys = append(report.EmptyKeys, key)
		}
	}

	sort.Strings(report.MissingKeys)
	sort.Strings(report.ExtraKeys)
	sort.Strings(report.EmptyKeys)
	return report, nil
}
