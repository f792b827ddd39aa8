package utils

import (
	rndm "math/rand"
	"net/http"
	"strconv"
	"strings"
)

// --- Random String and ID Generators ---

var letterRunes = []rune("abcdefghijklmnopqrstuvwxyz0123456789_ABCDEFGHIJKLMNOPQRSTUVWXYZ")

// GenerateRandomString creates a random alphanumeric string of length n.
func GenerateRandomString(n int) string {
	b := make([]rune, n)
	for i := range b {
		b[i] = letterRunes[rndm.Intn(len(letterRunes))]
	}
	return string(b)
}

// --- Pagination ---

// ParsePagination reads ?page and ?limit, clamping limit to maxLimit.
func ParsePagination(r *http.Request, defaultLimit, maxLimit int) (skip, limit int64) {
	q := r.URL.Query()

	page, _ := strconv.Atoi(q.Get("page"))
	if page < 1 {
		page = 1
	}

	l, _ := strconv.Atoi(q.Get("limit"))
	if l < 1 {
		l = defaultLimit
	}
	if l > maxLimit {
		l = maxLimit
	}

	return int64((page - 1) * l), int64(l)
}

// --- String Helpers ---

func ContainsIgnoreCase(str, substr string) bool {
	return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
}

// SplitCSV takes a comma-separated string and returns trimmed non-empty parts.
func SplitCSV(input string) []string {
	if input == "" {
		return []string{}
	}
	var out []string
	for _, p := range strings.Split(input, ",") {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
