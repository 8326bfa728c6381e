// Package chatbot is the scripted help assistant: a fixed FAQ plus keyword
// rules checked in order, first match wins.
package chatbot

import (
	"errors"
	"regexp"
	"strings"

	"travelmaker/metrics"
)

// Greeting is the assistant's opening message.
const Greeting = "안녕하세요! 저는 티미예요. TRAVEL MAKER 사용을 도와드릴게요 😊"

// Fallback is returned when no rule matches.
const Fallback = "죄송해요, 잘 이해하지 못했어요. 다시 질문해 주시겠어요?"

// ErrEmptyMessage is returned for a blank message.
var ErrEmptyMessage = errors.New("chatbot: empty message")

// FAQEntry is a canned question and its answer.
type FAQEntry struct {
	ID       int    `json:"id"`
	Question string `json:"q"`
	Answer   string `json:"a"`
}

// FAQ is the fixed help list.
var FAQ = []FAQEntry{
	{1, "고객센터 전화번호가 궁금해요", "고객센터 전화번호는 02-1234-5678 입니다."},
	{2, "상품 등록이 안돼요", "코스 등록 페이지에서 제목/지역/일정/이미지 등 필수 항목을 확인해 주세요."},
	{3, "가격은 자동 계산되나요?", "교통비/입장료/숙박을 입력하면 총액이 자동 계산됩니다."},
	{4, "반려동물 코스만 보고 싶어요", "상단 카테고리에서 '반려동물'을 선택하면 관련 코스만 볼 수 있어요."},
	{5, "여행 코스 수정은 어떻게 하나요?", "내 코스 상세 오른쪽 상단 '수정' 버튼으로 편집할 수 있어요."},
	{6, "구독은 어떻게 하나요?", "크리에이터 프로필의 '구독' 버튼을 누르면 새 코스 알림을 받아요."},
	{7, "알림 키워드 설정", "검색창 우측 종 아이콘에서 키워드/지역 알림을 설정할 수 있어요."},
	{8, "결제는 지원하나요?", "졸업작품 데모라 결제는 미지원, 문의만 가능합니다."},
	{9, "인증 마크가 뭔가요?", "할랄/공식 인증 정보를 카드와 상세페이지에서 동일하게 확인할 수 있어요."},
	{10, "문의 남기고 싶어요", "아래 '고객센터 문의하기'를 눌러 티미와 대화를 시작해 주세요."},
}

// Rule answers messages matching Pattern.
type Rule struct {
	Pattern *regexp.Regexp
	Reply   string
}

// Rules are checked in order.
var Rules = []Rule{
	{regexp.MustCompile(`전화|번호|고객센터`), "고객센터 02-1234-5678 (평일 09:00~18:00)."},
	{regexp.MustCompile(`가격|비용|얼마`), "가격은 예상 총액(교통/입장/숙박 합)으로 표시돼요."},
	{regexp.MustCompile(`반려동물|펫|강아지|고양이`), "'반려동물' 카테고리에서 관련 코스를 확인해 보세요."},
	{regexp.MustCompile(`등록|업로드|올리`), "코스 등록 페이지에서 제목/지역/일정/이미지를 입력해 주세요."},
	{regexp.MustCompile(`수정|편집`), "내 코스 상세의 '수정' 버튼으로 변경할 수 있어요."},
}

// Answer is a chatbot reply.
type Answer struct {
	Text    string `json:"text"`
	Matched bool   `json:"matched"`
}

// Reply answers message with the first matching rule, or Fallback.
func Reply(message string) (Answer, error) {
	text := strings.TrimSpace(message)
	if text == "" {
		return Answer{}, ErrEmptyMessage
	}
	for _, r := range Rules {
		if r.Pattern.MatchString(text) {
			metrics.ChatReplies.WithLabelValues("scripted").Inc()
			return Answer{Text: r.Reply, Matched: true}, nil
		}
	}
	metrics.ChatReplies.WithLabelValues("fallback").Inc()
	return Answer{Text: Fallback}, nil
}

// LookupFAQ returns the entry with id.
func LookupFAQ(id int) (FAQEntry, bool) {
	for _, e := range FAQ {
		if e.ID == id {
			return e, true
		}
	}
	return FAQEntry{}, false
}
