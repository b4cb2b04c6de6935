package models

// DescriptionType is a lookup keyed by a unique description
// (gender, marital status, racial type, income range, ...).
type DescriptionType struct {
	ID          int64  `json:"id"`
	Description string `json:"description"`
}

type Country struct {
	ID      int64   `json:"id"`
	ISOCode string  `json:"iso_code"`
	NameEN  string  `json:"name_en"`
	NameTH  *string `json:"name_th,omitempty"`
}

type IndustryType struct {
	ID          int64  `json:"id"`
	NAISC       string `json:"naisc"`
	Description string `json:"description"`
}

// MacText maps a device MAC address to a description.
type MacText struct {
	ID          int64  `json:"id"`
	MacAddress  string `json:"mac_address"`
	Description string `json:"description"`
}
