package dto

// PageQuery 分页查询参数
type PageQuery struct {
	Page     int `form:"page,default=1"`
	PageSize int `form:"page_size,default=10"`
}

func (p *PageQuery) Normalize() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 || p.PageSize > 100 {
		p.PageSize = 10
	}
}

// PagedResult 分页结果
type PagedResult struct {
	Total       int64       `json:"total"`
	CurrentPage int         `json:"current_page"`
	PageSize    int         `json:"page_size"`
	TotalPages  int64       `json:"total_pages"`
	Data        interface{} `json:"data"`
}

func NewPagedResult(total int64, page, pageSize int, data interface{}) PagedResult {
	pages := total / int64(pageSize)
	if total%int64(pageSize) != 0 {
		pages++
	}
	return PagedResult{
		Total:       total,
		CurrentPage: page,
		PageSize:    pageSize,
		TotalPages:  pages,
		Data:        data,
	}
}
