package dto

type CommonResp struct {
	Success bool              `json:"success"`
	Code    int               `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
	Data    any               `json:"data,omitempty"`
}

type PageReq struct {
	Page     int `query:"page" validate:"omitempty,min=1,max=1000000"`
	PageSize int `query:"page_size" validate:"omitempty,min=1,max=100"`
}

type PageResp struct {
	Page     int   `json:"page"`
	PageSize int   `json:"page_size"`
	Total    int64 `json:"total"`
}
