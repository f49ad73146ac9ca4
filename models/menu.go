package models

// ServiceMenus is the fixed service catalog bookings choose from.
var ServiceMenus = []string{
	"カット",
	"カラー",
	"パーマ",
	"トリートメント",
	"カット+カラー",
	"カット+パーマ",
	"カット+トリートメント",
	"縮毛矯正",
	"ヘッドスパ",
	"その他",
}

// ValidMenu reports whether menu is part of the service catalog.
func ValidMenu(menu string) bool {
	for _, m := range ServiceMenus {
		if m == menu {
			return true
		}
	}
	return false
}
