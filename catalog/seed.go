package catalog

import "travelmaker/models"

func won(n int) *int { return &n }

// Seed partitions stand in for an empty specialty or goods partition. They are
// also the whole catalog when the source cannot be fetched. There is no
// travel seed.
var (
	seedSpecialty = []models.Course{
		{
			ID:                9001,
			Title:             "순천 야생화 꿀 세트",
			Region:            "순천",
			Province:          models.Jeolla,
			Category:          "지역특산품",
			CategoryType:      models.CategorySpecialty,
			Description:       "순천만 인근 양봉 농가에서 채밀한 야생화 꿀 선물 세트",
			Image:             "/honey-jar-flowers.png",
			Price:             models.Price{Total: won(32000)},
			Likes:             128,
			Rating:            4.8,
			Comments:          21,
			OfficialCertified: true,
			Hashtags:          []string{"#특산품", "#순천", "#꿀"},
			CreatedAt:         "2024-09-01",
		},
		{
			ID:           9002,
			Title:        "완도 재래김 선물세트",
			Region:       "전남 완도",
			Province:     models.Jeolla,
			Category:     "지역특산품",
			CategoryType: models.CategorySpecialty,
			Description:  "완도 청정 해역에서 자란 재래김을 전통 방식으로 구웠습니다",
			Image:        "/seaweed-gift-set.jpg",
			Price:        models.Price{Total: won(25000)},
			Likes:        96,
			Rating:       4.7,
			Comments:     14,
			Hashtags:     []string{"#특산품", "#완도", "#김"},
			CreatedAt:    "2024-08-20",
		},
		{
			ID:                9003,
			Title:             "보성 유기농 녹차 티백",
			Region:            "보성",
			Province:          models.Jeolla,
			Category:          "지역특산품",
			CategoryType:      models.CategorySpecialty,
			Description:       "보성 차밭에서 수확한 유기농 녹차 티백 50입",
			Image:             "/boseong-green-tea.jpg",
			Price:             models.Price{Total: won(18000)},
			Likes:             74,
			Rating:            4.6,
			Comments:          9,
			HalalCertified:    true,
			OfficialCertified: true,
			Hashtags:          []string{"#특산품", "#보성", "#녹차"},
			CreatedAt:         "2024-07-15",
		},
		{
			ID:           9004,
			Title:        "강릉 커피콩빵 박스",
			Region:       "강릉",
			Province:     models.Gangwon,
			Category:     "지역특산품",
			CategoryType: models.CategorySpecialty,
			Description:  "강릉 로스터리 원두로 만든 커피콩빵 12입",
			Image:        "/gangneung-coffee-bread.jpg",
			Price:        models.Price{Total: won(15000)},
			Likes:        152,
			Rating:       4.9,
			Comments:     33,
			Hashtags:     []string{"#특산품", "#강릉", "#로컬카페"},
			CreatedAt:    "2024-10-02",
		},
	}

	seedGoods = []models.Course{
		{
			ID:           9101,
			Title:        "핸드메이드 머그·굿즈",
			Region:       "전주",
			Province:     models.Jeolla,
			Category:     "굿즈",
			CategoryType: models.CategoryGoods,
			Description:  "전주 공방 작가가 빚은 한정판 머그컵",
			Image:        "/handmade-ceramic-mug.jpg",
			Price:        models.Price{Total: won(22000)},
			Likes:        88,
			Rating:       4.7,
			Comments:     12,
			Hashtags:     []string{"#굿즈", "#전주", "#공방"},
			CreatedAt:    "2024-09-10",
		},
		{
			ID:           9102,
			Title:        "TRAVEL MAKER 여행 스티커 팩",
			Region:       "전국",
			Category:     "굿즈",
			CategoryType: models.CategoryGoods,
			Description:  "전국 로컬 명소 일러스트 스티커 24종",
			Image:        "/travel-sticker-pack.jpg",
			Price:        models.Price{Total: won(6000)},
			Likes:        61,
			Rating:       4.5,
			Comments:     7,
			Hashtags:     []string{"#굿즈", "#스티커"},
			CreatedAt:    "2024-06-30",
		},
		{
			ID:           9103,
			Title:        "제주 감귤 에코백",
			Region:       "제주시",
			Province:     models.Jeju,
			Category:     "기념품",
			CategoryType: models.CategoryGoods,
			Description:  "제주 감귤 패턴을 담은 캔버스 에코백",
			Image:        "/jeju-tangerine-ecobag.jpg",
			Price:        models.Price{Total: won(19000)},
			Likes:        103,
			Rating:       4.8,
			Comments:     18,
			Hashtags:     []string{"#굿즈", "#제주", "#기념품"},
			CreatedAt:    "2024-08-05",
		},
	}
)

// SeedSpecialty returns a copy of the specialty seed partition.
func SeedSpecialty() []models.Course {
	return cloneCourses(seedSpecialty)
}

// SeedGoods returns a copy of the merchandise seed partition.
func SeedGoods() []models.Course {
	return cloneCourses(seedGoods)
}

// Fallback is the list served when the catalog source is unavailable:
// specialty seeds followed by goods seeds.
func Fallback() []models.Course {
	out := make([]models.Course, 0, len(seedSpecialty)+len(seedGoods))
	out = append(out, seedSpecialty...)
	out = append(out, seedGoods...)
	return out
}

func cloneCourses(in []models.Course) []models.Course {
	out := make([]models.Course, len(in))
	copy(out, in)
	return out
}
