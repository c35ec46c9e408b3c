package utils

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sysu-ecnc-dev/salon-agenda/backend/internal/domain"
)

// ParseClock 将 HH:MM 解析为从零点开始的分钟数
func ParseClock(s string) (int, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 || len(parts[0]) == 0 || len(parts[0]) > 2 || len(parts[1]) != 2 {
		return 0, &domain.TimeParseError{Value: s}
	}
	// strconv.Atoi 接受正负号，这里只允许数字
	if !isDigits(parts[0]) || !isDigits(parts[1]) {
		return 0, &domain.TimeParseError{Value: s}
	}

	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, &domain.TimeParseError{Value: s}
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, &domain.TimeParseError{Value: s}
	}

	return h*60 + m, nil
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// FormatClock 是 ParseClock 的逆操作，超过 24 点的分钟数不会回绕
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// Overlaps 判断两个半开区间 [aStart, aEnd) 和 [bStart, bEnd) 是否相交
func Overlaps(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && bStart < aEnd
}
