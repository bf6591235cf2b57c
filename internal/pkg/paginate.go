package pkg

import "strconv"

// PerPage 分页固定每页条数
const PerPage = 10

type PageMeta struct {
	Total int `json:"total"`
	Pages int `json:"pages"`
	Page  int `json:"page"`
}

// ParsePage 缺省或非法时回落到第 1 页
func ParsePage(raw string) int {
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}
	return page
}

func Offset(page int) int {
	return (page - 1) * PerPage
}

func NewPageMeta(total, page int) PageMeta {
	return PageMeta{
		Total: total,
		Pages: (total + PerPage - 1) / PerPage,
		Page:  page,
	}
}
