package i18n

import (
	"fmt"
	"strings"
)

type pluralRule int

const (
	pluralNotOne pluralRule = iota // n != 1
	pluralOverOne                  // n > 1
	pluralNone                     // 0
)

func parsePluralRule(s string) (pluralRule, error) {
	switch strings.Join(strings.Fields(s), "") {
	case "", "n!=1":
		return pluralNotOne, nil
	case "n>1":
		return pluralOverOne, nil
	case "0":
		return pluralNone, nil
	default:
		return 0, fmt.Errorf("unsupported plural rule %q", s)
	}
}

func (r pluralRule) index(n int) int {
	switch r {
	case pluralOverOne:
		if n > 1 {
			return 1
		}
		return 0
	case pluralNone:
		return 0
	default:
		if n != 1 {
			return 1
		}
		return 0
	}
}

func (r pluralRule) forms() int {
	if r == pluralNone {
		return 1
	}
	return 2
}
