package chatbot

import (
	"errors"
	"testing"
)

func TestReply(t *testing.T) {
	tests := []struct {
		message string
		want    string
		matched bool
	}{
		{"고객센터 연락처 알려주세요", "고객센터 02-1234-5678 (평일 09:00~18:00).", true},
		{"이 코스 얼마예요?", "가격은 예상 총액(교통/입장/숙박 합)으로 표시돼요.", true},
		{"강아지랑 갈 수 있나요", "'반려동물' 카테고리에서 관련 코스를 확인해 보세요.", true},
		{"코스를 올리고 싶어요", "코스 등록 페이지에서 제목/지역/일정/이미지를 입력해 주세요.", true},
		{"편집은요?", "내 코스 상세의 '수정' 버튼으로 변경할 수 있어요.", true},
		// 번호 hits the first rule before 가격.
		{"가격 문의 번호", "고객센터 02-1234-5678 (평일 09:00~18:00).", true},
		{"날씨 어때요", Fallback, false},
	}
	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			got, err := Reply(tt.message)
			if err != nil {
				t.Fatalf("Reply() error = %v", err)
			}
			if got.Text != tt.want || got.Matched != tt.matched {
				t.Errorf("Reply(%q) = %+v, want %q (matched=%v)", tt.message, got, tt.want, tt.matched)
			}
		})
	}
}

func TestReplyEmpty(t *testing.T) {
	if _, err := Reply("   "); !errors.Is(err, ErrEmptyMessage) {
		t.Errorf("Reply(blank) error = %v", err)
	}
}

func TestFAQ(t *testing.T) {
	if len(FAQ) != 10 {
		t.Fatalf("len(FAQ) = %d", len(FAQ))
	}
	e, ok := LookupFAQ(8)
	if !ok || e.Answer != "졸업작품 데모라 결제는 미지원, 문의만 가능합니다." {
		t.Errorf("LookupFAQ(8) = %+v, %v", e, ok)
	}
	if _, ok := LookupFAQ(11); ok {
		t.Error("LookupFAQ(11) should miss")
	}
}
