// Copyright (c) 2026 ArtStudy. All rights reserved.
// Author: lin.wanqing.art@gmail.com

// Package zhcollate provides locale-aware ordering for mixed Chinese/Latin text.
//
// # Usage
//
// Facet option lists (decks, regions, styles, categories) are sorted with
// Chinese collation so that 汉字 values order by pinyin rather than by raw
// code point, matching how the values read to a Chinese-speaking student.
package zhcollate

import (
	"strings"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// collator construction is not cheap, so one shared instance is lazily built.
// collate.Collator is not safe for concurrent use; the mutex serializes it.
var (
	once     sync.Once
	mu       sync.Mutex
	collator *collate.Collator
)

func zh() *collate.Collator {
	once.Do(func() {
		collator = collate.New(language.Chinese)
	})
	return collator
}

// Compare returns -1, 0, or +1 comparing a and b under zh collation.
func Compare(a, b string) int {
	mu.Lock()
	defer mu.Unlock()
	return zh().CompareString(a, b)
}

// Sort orders values in place under zh collation.
func Sort(values []string) {
	mu.Lock()
	defer mu.Unlock()
	zh().SortStrings(values)
}

// Unique trims every value, discards empties, deduplicates, and returns the
// survivors sorted under zh collation. The input is not modified.
func Unique(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	result := make([]string, 0, len(values))

	for _, value := range values {
		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			continue
		}
		if _, dup := seen[trimmed]; dup {
			continue
		}
		seen[trimmed] = struct{}{}
		result = append(result, trimmed)
	}

	Sort(result)
	return result
}
