package models

// Address is the school's postal address.
type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	Postal  string `json:"postal"`
	Country string `json:"country"`
}

// OfficeHours is one row of the office hours table.
type OfficeHours struct {
	Day  string `json:"day"`
	Time string `json:"time"`
}

// SchoolHours is one row of the school day table.
type SchoolHours struct {
	Label string `json:"label"`
	Time  string `json:"time"`
}

// ContactInfo is the singleton contact document.
type ContactInfo struct {
	Email       string        `json:"email" validate:"required,email"`
	Phone       string        `json:"phone" validate:"required,schoolphone"`
	Address     Address       `json:"address"`
	OfficeHours []OfficeHours `json:"officeHours"`
	SchoolHours []SchoolHours `json:"schoolHours"`
}
