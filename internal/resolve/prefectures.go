package resolve

import (
	"fmt"
	"strings"
)

// Prefecture is one entry of the JIS X 0401 code table.
type Prefecture struct {
	Code   string
	NameJa string
	NameEn string
}

var prefectures = []Prefecture{
	{"01", "北海道", "Hokkaido"},
	{"02", "青森県", "Aomori"},
	{"03", "岩手県", "Iwate"},
	{"04", "宮城県", "Miyagi"},
	{"05", "秋田県", "Akita"},
	{"06", "山形県", "Yamagata"},
	{"07", "福島県", "Fukushima"},
	{"08", "茨城県", "Ibaraki"},
	{"09", "栃木県", "Tochigi"},
	{"10", "群馬県", "Gunma"},
	{"11", "埼玉県", "Saitama"},
	{"12", "千葉県", "Chiba"},
	{"13", "東京都", "Tokyo"},
	{"14", "神奈川県", "Kanagawa"},
	{"15", "新潟県", "Niigata"},
	{"16", "富山県", "Toyama"},
	{"17", "石川県", "Ishikawa"},
	{"18", "福井県", "Fukui"},
	{"19", "山梨県", "Yamanashi"},
	{"20", "長野県", "Nagano"},
	{"21", "岐阜県", "Gifu"},
	{"22", "静岡県", "Shizuoka"},
	{"23", "愛知県", "Aichi"},
	{"24", "三重県", "Mie"},
	{"25", "滋賀県", "Shiga"},
	{"26", "京都府", "Kyoto"},
	{"27", "大阪府", "Osaka"},
	{"28", "兵庫県", "Hyogo"},
	{"29", "奈良県", "Nara"},
	{"30", "和歌山県", "Wakayama"},
	{"31", "鳥取県", "Tottori"},
	{"32", "島根県", "Shimane"},
	{"33", "岡山県", "Okayama"},
	{"34", "広島県", "Hiroshima"},
	{"35", "山口県", "Yamaguchi"},
	{"36", "徳島県", "Tokushima"},
	{"37", "香川県", "Kagawa"},
	{"38", "愛媛県", "Ehime"},
	{"39", "高知県", "Kochi"},
	{"40", "福岡県", "Fukuoka"},
	{"41", "佐賀県", "Saga"},
	{"42", "長崎県", "Nagasaki"},
	{"43", "熊本県", "Kumamoto"},
	{"44", "大分県", "Oita"},
	{"45", "宮崎県", "Miyazaki"},
	{"46", "鹿児島県", "Kagoshima"},
	{"47", "沖縄県", "Okinawa"},
}

// Prefectures returns the full JIS code table in code order.
func Prefectures() []Prefecture {
	out := make([]Prefecture, len(prefectures))
	copy(out, prefectures)
	return out
}

// PrefectureName returns the Japanese name for a 2-digit code.
func PrefectureName(code string) (string, bool) {
	for _, p := range prefectures {
		if p.Code == code {
			return p.NameJa, true
		}
	}
	return "", false
}

// PrefectureCode resolves a prefecture given as a code, a Japanese name
// (with or without the 県/都/府 suffix), or an English name. Partial
// names go through fuzzy matching.
func PrefectureCode(query string) (string, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return "", ErrEmptyQuery
	}

	if isDigits(query) && len(query) <= 2 {
		code := query
		if len(code) == 1 {
			code = "0" + code
		}
		if _, ok := PrefectureName(code); !ok {
			return "", fmt.Errorf("unknown prefecture code %q", query)
		}
		return code, nil
	}

	for _, p := range prefectures {
		if query == p.NameJa || query == trimPrefSuffix(p.NameJa) || strings.EqualFold(query, p.NameEn) {
			return p.Code, nil
		}
	}

	items := make([]Named, 0, len(prefectures)*2)
	for _, p := range prefectures {
		items = append(items, Named{Code: p.Code, Name: p.NameJa})
		items = append(items, Named{Code: p.Code, Name: p.NameEn})
	}
	return FuzzyMatch(query, items)
}

// trimPrefSuffix drops the administrative suffix: 東京都 -> 東京.
// 北海道 has no such suffix and passes through unchanged.
func trimPrefSuffix(name string) string {
	for _, suffix := range []string{"県", "都", "府"} {
		if trimmed, ok := strings.CutSuffix(name, suffix); ok {
			return trimmed
		}
	}
	return name
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
