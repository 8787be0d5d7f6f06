package dto

type VenueBody struct {
	Name      string `json:"name" validate:"required,max=255"`
	Address   string `json:"address" validate:"required,max=255"`
	City      string `json:"city" validate:"required,max=128"`
	State     string `json:"state" validate:"required,max=128"`
	Country   string `json:"country" validate:"required,max=128"`
	ZipCode   string `json:"zip_code" validate:"required,max=32"`
	Capacity  int    `json:"capacity" validate:"min=0"`
	Website   string `json:"website" validate:"omitempty,url,max=512"`
	TechSpecs string `json:"tech_specs"`
	Notes     string `json:"notes"`
}

type CreateVenueReq struct {
	VenueBody
}

type UpdateVenueReq struct {
	ID string `path:"id" validate:"required"`
	VenueBody
}

type VenueIDReq struct {
	ID string `path:"id" validate:"required"`
}

type ListVenuesReq struct {
	PageReq
}

type VenueResp struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Address   string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	Country   string `json:"country"`
	ZipCode   string `json:"zip_code"`
	Capacity  int    `json:"capacity"`
	Website   string `json:"website"`
	TechSpecs string `json:"tech_specs"`
	Notes     string `json:"notes"`
	CreatedAt int64  `json:"created_at"`
	UpdatedAt int64  `json:"updated_at"`
}

type ListVenuesResp struct {
	PageResp
	Venues []VenueResp `json:"venues"`
}

type DeleteVenueResp struct{}
