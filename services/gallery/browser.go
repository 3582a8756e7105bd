package gallery

import (
	"strconv"
	"strings"
)

// Browser is a cursor over the scan result. The cursor wraps around in both
// directions and is reset whenever the result is replaced. Not safe for concurrent use.
type Browser struct {
	ids    []string
	cursor int
}

func NewBrowser() *Browser {
	return &Browser{}
}

// Reset replaces the sequence and moves the cursor to the first element.
func (b *Browser) Reset(ids []string) {
	b.ids = append([]string(nil), ids...)
	b.cursor = 0
}

func (b *Browser) Len() int {
	return len(b.ids)
}

func (b *Browser) IDs() []string {
	return append([]string{}, b.ids...)
}

func (b *Browser) Cursor() int {
	return b.cursor
}

// Current returns the ID under the cursor, or "" when the sequence is empty.
func (b *Browser) Current() string {
	if len(b.ids) == 0 {
		return ""
	}
	return b.ids[b.cursor]
}

func (b *Browser) Next() string {
	if len(b.ids) == 0 {
		return ""
	}
	b.cursor = (b.cursor + 1) % len(b.ids)
	return b.Current()
}

func (b *Browser) Prev() string {
	if len(b.ids) == 0 {
		return ""
	}
	b.cursor = (b.cursor - 1 + len(b.ids)) % len(b.ids)
	return b.Current()
}

// SelectByID moves the cursor to id and reports whether it was found.
// The cursor is left untouched otherwise.
func (b *Browser) SelectByID(id string) bool {
	for i, candidate := range b.ids {
		if candidate == id {
			b.cursor = i
			return true
		}
	}
	return false
}

// NormalizeSearchInput maps raw search box input to the value the search box holds.
// Empty input clears it. Input without a leading integer leaves search unchanged.
// Negative numbers fall back to the current ID and numbers above the range are clamped
// to its maximum.
func NormalizeSearchInput(value string, search string, currentID string, tokenRange TokenRange) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}

	n, ok := parseLeadingInt(value)
	if !ok {
		return search
	}
	if n < 0 {
		return currentID
	}
	if uint64(n) > tokenRange.Max {
		return strconv.FormatUint(tokenRange.Max, 10)
	}
	return strconv.FormatInt(n, 10)
}

// parseLeadingInt parses an optionally signed run of decimal digits at the start of s.
func parseLeadingInt(s string) (int64, bool) {
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, false
	}
	n, err := strconv.ParseInt(s[:end], 10, 64)
	if err != nil {
		// Out of int64 range: saturate so the caller can clamp.
		if s[0] == '-' {
			return -1, true
		}
		return int64(^uint64(0) >> 1), true
	}
	return n, true
}

// ShortAddress renders a hex address as its first six and last four characters.
func ShortAddress(address string) string {
	if len(address) <= 10 {
		return address
	}
	return address[:6] + "…" + address[len(address)-4:]
}
