package models

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ComputeTotal returns the course price. An explicit Total wins, even when it
// is zero; otherwise the sub-amounts are summed, missing parts counting as 0.
func ComputeTotal(p Price) int {
	if p.Total != nil {
		return *p.Total
	}
	sum := deref(p.Transport) + deref(p.Accommodation) + deref(p.Tickets)
	if sum > 0 {
		return sum
	}
	return 0
}

func deref(n *int) int {
	if n == nil {
		return 0
	}
	return *n
}

var krw = message.NewPrinter(language.Korean)

// FormatKRW renders n with ko-KR digit grouping and the 원 suffix.
func FormatKRW(n int) string {
	return krw.Sprintf("%d원", n)
}

// DifficultyText buckets a 1-5 level into Easy, Medium or Hard.
func DifficultyText(n int) string {
	if n <= 1 {
		return "Easy"
	}
	if n <= 3 {
		return "Medium"
	}
	return "Hard"
}

// DifficultyDescription is the Korean sentence shown under a difficulty bucket.
func DifficultyDescription(text string) string {
	switch text {
	case "Easy":
		return "쉬운 코스입니다"
	case "Hard":
		return "어려운 코스입니다"
	default:
		return "보통 난이도입니다"
	}
}

// DifficultyScale returns five flags, the first n of which are set.
func DifficultyScale(n int) [5]bool {
	var scale [5]bool
	for i := range scale {
		scale[i] = i < n
	}
	return scale
}
