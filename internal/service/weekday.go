package service

import "strings"

// weekDays 星期名称的展示顺序
var weekDays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// weekdayIndex 返回星期名称的序号（Monday=0 … Sunday=6），无法识别时返回 -1
func weekdayIndex(day string) int {
	for i, d := range weekDays {
		if d == day {
			return i
		}
	}
	return -1
}

// weekdaySortKey 排序键：合法星期按序号排，无法识别的排到末尾
func weekdaySortKey(day string) int {
	if idx := weekdayIndex(day); idx != -1 {
		return idx
	}
	return len(weekDays)
}

// normalizeDay 去除首尾空白并将首字母大写（"monday " → "Monday"）
func normalizeDay(day string) string {
	day = strings.TrimSpace(day)
	if day == "" {
		return day
	}
	return strings.ToUpper(day[:1]) + day[1:]
}
